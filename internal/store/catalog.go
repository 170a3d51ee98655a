package store

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/OsuohaNnamdi/warelink-admin/internal/domain/catalog"
	"github.com/OsuohaNnamdi/warelink-admin/internal/notify"
)

// CatalogAPI is the slice of the backend client the products screen needs.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	ProductsByCategory(ctx context.Context, categoryID int64) ([]catalog.Product, error)
	SetProductPromo(ctx context.Context, id int64, upd catalog.PromoUpdate) (*catalog.Product, error)
}

// Catalog is the products screen session: the product list, the
// category list, and the local search term.
type Catalog struct {
	tracker
	api      CatalogAPI
	notifier notify.Notifier
	lg       *zap.Logger

	products   []catalog.Product
	categories []catalog.Category
	search     string
}

// NewCatalog creates a catalog store.
func NewCatalog(api CatalogAPI, notifier notify.Notifier, lg *zap.Logger) *Catalog {
	return &Catalog{api: api, notifier: notifier, lg: lg}
}

// Load fetches products and categories in parallel; both must succeed
// for either to be applied.
func (c *Catalog) Load(ctx context.Context) error {
	g := c.begin()

	var (
		products   []catalog.Product
		categories []catalog.Category
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		products, err = c.api.ListProducts(egCtx)
		return errors.Wrap(err, "list products")
	})
	eg.Go(func() error {
		var err error
		categories, err = c.api.ListCategories(egCtx)
		return errors.Wrap(err, "list categories")
	})
	err := eg.Wait()

	if !c.finish(g) {
		c.lg.Debug("Discarding stale catalog load")
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		c.notifier.Notify(notify.Error("Oops...", "Failed to fetch products!"))
		return err
	}
	c.products = products
	c.categories = categories
	c.mu.Unlock()
	return nil
}

// FilterByCategory replaces the product list with one category's
// products; zero restores the full catalog.
func (c *Catalog) FilterByCategory(ctx context.Context, categoryID int64) error {
	g := c.begin()
	var (
		products []catalog.Product
		err      error
	)
	if categoryID == 0 {
		products, err = c.api.ListProducts(ctx)
	} else {
		products, err = c.api.ProductsByCategory(ctx, categoryID)
	}
	if !c.finish(g) {
		c.lg.Debug("Discarding stale category filter", zap.Int64("category_id", categoryID))
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		c.notifier.Notify(notify.Error("Oops...", "Failed to fetch products!"))
		return errors.Wrap(err, "filter products")
	}
	c.products = products
	c.mu.Unlock()
	return nil
}

// SetSearch stages the local name filter applied by Products.
func (c *Catalog) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = term
}

// Products returns the held products matching the search term.
func (c *Catalog) Products() []catalog.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.search == "" {
		out := make([]catalog.Product, len(c.products))
		copy(out, c.products)
		return out
	}
	term := strings.ToLower(c.search)
	var out []catalog.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns a copy of the held category list.
func (c *Catalog) Categories() []catalog.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]catalog.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// EnablePromo puts a product on promotion at the given price.
func (c *Catalog) EnablePromo(ctx context.Context, id int64, price decimal.Decimal) error {
	return c.applyPromo(ctx, id, catalog.PromoUpdate{Promo: true, PromoPrice: price}, "Promo has been enabled.")
}

// DisablePromo takes a product off promotion.
func (c *Catalog) DisablePromo(ctx context.Context, id int64) error {
	return c.applyPromo(ctx, id, catalog.PromoUpdate{Promo: false}, "Promo has been removed.")
}

func (c *Catalog) applyPromo(ctx context.Context, id int64, upd catalog.PromoUpdate, successText string) error {
	g := c.begin()
	p, err := c.api.SetProductPromo(ctx, id, upd)
	if !c.finish(g) {
		c.lg.Debug("Discarding stale promo update", zap.Int64("product_id", id))
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		c.notifier.Notify(notify.Error("Oops...", "Failed to update product!"))
		return errors.Wrap(err, "update promo")
	}
	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = *p
			break
		}
	}
	c.mu.Unlock()
	c.notifier.Notify(notify.Success("Updated!", successText))
	return nil
}

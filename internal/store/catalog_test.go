package store

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/OsuohaNnamdi/warelink-admin/internal/domain/catalog"
	"github.com/OsuohaNnamdi/warelink-admin/internal/notify"
)

// --- Mock implementations ---

type mockCatalogAPI struct {
	listProducts       func(ctx context.Context) ([]catalog.Product, error)
	listCategories     func(ctx context.Context) ([]catalog.Category, error)
	productsByCategory func(ctx context.Context, categoryID int64) ([]catalog.Product, error)
	setProductPromo    func(ctx context.Context, id int64, upd catalog.PromoUpdate) (*catalog.Product, error)
}

func (m *mockCatalogAPI) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	return m.listProducts(ctx)
}

func (m *mockCatalogAPI) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	return m.listCategories(ctx)
}

func (m *mockCatalogAPI) ProductsByCategory(ctx context.Context, categoryID int64) ([]catalog.Product, error) {
	return m.productsByCategory(ctx, categoryID)
}

func (m *mockCatalogAPI) SetProductPromo(ctx context.Context, id int64, upd catalog.PromoUpdate) (*catalog.Product, error) {
	return m.setProductPromo(ctx, id, upd)
}

// --- Helpers ---

func testProduct(id int64, name string) catalog.Product {
	return catalog.Product{ID: id, Name: name, Price: decimal.NewFromInt(2000)}
}

func workingCatalogAPI(products []catalog.Product, categories []catalog.Category) *mockCatalogAPI {
	return &mockCatalogAPI{
		listProducts: func(_ context.Context) ([]catalog.Product, error) {
			return products, nil
		},
		listCategories: func(_ context.Context) ([]catalog.Category, error) {
			return categories, nil
		},
	}
}

func newCatalog(api *mockCatalogAPI) (*Catalog, *recordingNotifier) {
	n := &recordingNotifier{}
	return NewCatalog(api, n, zap.NewNop()), n
}

// --- Tests ---

func TestCatalogLoad_FetchesBoth(t *testing.T) {
	api := workingCatalogAPI(
		[]catalog.Product{testProduct(1, "Mug"), testProduct(2, "Desk Mat")},
		[]catalog.Category{{ID: 3, Name: "Office"}},
	)
	c, _ := newCatalog(api)

	require.NoError(t, c.Load(context.Background()))

	assert.Len(t, c.Products(), 2)
	assert.Len(t, c.Categories(), 1)
	assert.False(t, c.Loading())
}

func TestCatalogLoad_PartialFailureAppliesNothing(t *testing.T) {
	api := workingCatalogAPI([]catalog.Product{testProduct(1, "Mug")}, nil)
	api.listCategories = func(_ context.Context) ([]catalog.Category, error) {
		return nil, errors.New("503")
	}
	c, n := newCatalog(api)

	require.Error(t, c.Load(context.Background()))

	assert.Empty(t, c.Products(), "products are not applied when the paired fetch fails")
	assert.Equal(t, 1, n.count(notify.LevelError))
	assert.False(t, c.Loading())
}

func TestCatalogSearch_FiltersByName(t *testing.T) {
	api := workingCatalogAPI(
		[]catalog.Product{testProduct(1, "Coffee Mug"), testProduct(2, "Desk Mat"), testProduct(3, "Travel mug")},
		nil,
	)
	c, _ := newCatalog(api)
	require.NoError(t, c.Load(context.Background()))

	c.SetSearch("mug")
	got := c.Products()
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	c.SetSearch("")
	assert.Len(t, c.Products(), 3)
}

func TestCatalogFilterByCategory(t *testing.T) {
	api := workingCatalogAPI([]catalog.Product{testProduct(1, "Mug"), testProduct(2, "Desk Mat")}, nil)
	api.productsByCategory = func(_ context.Context, categoryID int64) ([]catalog.Product, error) {
		assert.Equal(t, int64(9), categoryID)
		return []catalog.Product{testProduct(2, "Desk Mat")}, nil
	}
	c, _ := newCatalog(api)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.FilterByCategory(context.Background(), 9))
	assert.Len(t, c.Products(), 1)

	// Zero restores the full catalog.
	require.NoError(t, c.FilterByCategory(context.Background(), 0))
	assert.Len(t, c.Products(), 2)
}

func TestCatalogEnablePromo_UpdatesInPlace(t *testing.T) {
	api := workingCatalogAPI([]catalog.Product{testProduct(1, "Mug")}, nil)
	api.setProductPromo = func(_ context.Context, id int64, upd catalog.PromoUpdate) (*catalog.Product, error) {
		assert.True(t, upd.Promo)
		p := testProduct(id, "Mug")
		p.Promo = true
		p.PromoPrice = upd.PromoPrice
		return &p, nil
	}
	c, n := newCatalog(api)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.EnablePromo(context.Background(), 1, decimal.NewFromInt(1500)))

	got := c.Products()
	require.Len(t, got, 1)
	assert.True(t, got[0].Promo)
	assert.True(t, decimal.NewFromInt(1500).Equal(got[0].PromoPrice))
	assert.Equal(t, 1, n.count(notify.LevelSuccess))
}

func TestCatalogDisablePromo_FailureKeepsProduct(t *testing.T) {
	promoted := testProduct(1, "Mug")
	promoted.Promo = true
	api := workingCatalogAPI([]catalog.Product{promoted}, nil)
	api.setProductPromo = func(_ context.Context, _ int64, _ catalog.PromoUpdate) (*catalog.Product, error) {
		return nil, errors.New("500")
	}
	c, n := newCatalog(api)
	require.NoError(t, c.Load(context.Background()))

	require.Error(t, c.DisablePromo(context.Background(), 1))

	assert.True(t, c.Products()[0].Promo, "held product unchanged on failure")
	assert.Equal(t, 1, n.count(notify.LevelError))
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/OsuohaNnamdi/warelink-admin/internal/domain/catalog"
)

// Collaborator resources: products, categories, vendors, support
// tickets. Their payloads are flat, so tag-driven encoding/json is
// enough here.

// ListProducts fetches the full product catalog.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var out []catalog.Product
	return out, c.getJSON(ctx, "/product/", nil, &out)
}

// ProductsByCategory fetches the products of a single category.
func (c *Client) ProductsByCategory(ctx context.Context, categoryID int64) ([]catalog.Product, error) {
	query := url.Values{}
	query.Set("category", strconv.FormatInt(categoryID, 10))
	var out []catalog.Product
	return out, c.getJSON(ctx, "/product/search_by_category/", query, &out)
}

// SetProductPromo toggles a product's promotion flag and price,
// returning the updated product.
func (c *Client) SetProductPromo(ctx context.Context, id int64, upd catalog.PromoUpdate) (*catalog.Product, error) {
	body, err := json.Marshal(upd)
	if err != nil {
		return nil, errors.Wrap(err, "encode promo update")
	}
	req, err := c.newRequest(ctx, http.MethodPatch, fmt.Sprintf("/product/%d/", id), nil, body, "application/json")
	if err != nil {
		return nil, err
	}
	data, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var p catalog.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "decode product")
	}
	return &p, nil
}

// ListCategories fetches all product categories.
func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var out []catalog.Category
	return out, c.getJSON(ctx, "/category/", nil, &out)
}

// ListVendors fetches all vendor accounts.
func (c *Client) ListVendors(ctx context.Context) ([]catalog.Vendor, error) {
	var out []catalog.Vendor
	return out, c.getJSON(ctx, "/vendor/", nil, &out)
}

// UpdateVendor replaces a vendor record and returns the stored result.
func (c *Client) UpdateVendor(ctx context.Context, v catalog.Vendor) (*catalog.Vendor, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode vendor")
	}
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/vendor/%d/", v.ID), nil, body, "application/json")
	if err != nil {
		return nil, err
	}
	data, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var out catalog.Vendor
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "decode vendor")
	}
	return &out, nil
}

// DeleteVendor removes a vendor account.
func (c *Client) DeleteVendor(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/vendor/%d/", id), nil, nil, "")
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

// ListTickets fetches all support tickets.
func (c *Client) ListTickets(ctx context.Context) ([]catalog.Ticket, error) {
	var out []catalog.Ticket
	return out, c.getJSON(ctx, "/support/", nil, &out)
}

// ResolveTicket marks a ticket resolved.
func (c *Client) ResolveTicket(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodPatch, fmt.Sprintf("/support/%d/", id), nil, []byte(`{"is_resolved":true}`), "application/json")
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

// DeleteTicket removes a ticket.
func (c *Client) DeleteTicket(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/support/%d/", id), nil, nil, "")
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

// getJSON fetches path and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	data, err := c.do(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	return nil
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-faster/errors"

	"github.com/OsuohaNnamdi/warelink-admin/internal/domain/order"
)

// ListOrders fetches order summaries, optionally filtered by status.
// A zero status fetches all orders.
func (c *Client) ListOrders(ctx context.Context, status order.Status) ([]order.Order, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	req, err := c.newRequest(ctx, http.MethodGet, "/orders/", query, nil, "")
	if err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	orders, err := decodeOrders(body)
	if err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}
	return orders, nil
}

// GetOrder fetches one order with its full item detail.
func (c *Client) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	req, err := c.newRequest(ctx, http.MethodGet, orderPath(id), nil, nil, "")
	if err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return decodeOrderBytes(body)
}

// UpdateOrder sends the partial {status, notes} write and returns the
// server's post-write representation, which is authoritative.
func (c *Client) UpdateOrder(ctx context.Context, id string, upd order.Update) (*order.Order, error) {
	req, err := c.newRequest(ctx, http.MethodPatch, orderPath(id), nil, encodeOrderUpdate(upd), "application/json")
	if err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return decodeOrderBytes(body)
}

// DeleteOrder removes an order.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, orderPath(id), nil, nil, "")
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func orderPath(id string) string {
	return fmt.Sprintf("/orders/%s/", url.PathEscape(id))
}

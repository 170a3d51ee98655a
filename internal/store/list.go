package store

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/OsuohaNnamdi/warelink-admin/internal/domain/order"
	"github.com/OsuohaNnamdi/warelink-admin/internal/notify"
)

// OrderListAPI is the slice of the backend client the list screen needs.
type OrderListAPI interface {
	ListOrders(ctx context.Context, status order.Status) ([]order.Order, error)
	GetOrder(ctx context.Context, id string) (*order.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// List is the order-list screen session: the loaded collection, the
// status filter, and the delete-confirmation modal state.
type List struct {
	tracker
	api      OrderListAPI
	notifier notify.Notifier
	lg       *zap.Logger

	orders       []order.Order
	statusFilter order.Status

	// Modal state is an explicit closed/open-for variant, never a
	// bare nullable id.
	confirmOpen bool
	confirmID   string
}

// NewList creates a list store.
func NewList(api OrderListAPI, notifier notify.Notifier, lg *zap.Logger) *List {
	return &List{api: api, notifier: notifier, lg: lg}
}

// SetStatusFilter stages the status filter for the next Load. Zero
// means all statuses.
func (l *List) SetStatusFilter(s order.Status) error {
	if s != "" && !s.Valid() {
		return &order.UnknownStatusError{Value: string(s)}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.statusFilter = s
	return nil
}

// Load fetches the order collection honoring the status filter. On
// failure the previously loaded collection is kept.
func (l *List) Load(ctx context.Context) error {
	l.mu.Lock()
	filter := l.statusFilter
	l.mu.Unlock()

	g := l.begin()
	orders, err := l.api.ListOrders(ctx, filter)
	if !l.finish(g) {
		l.lg.Debug("Discarding stale order list load")
		return nil
	}
	if err != nil {
		l.mu.Unlock()
		l.notifier.Notify(notify.Error("Oops...", "Failed to fetch orders!"))
		return errors.Wrap(err, "load orders")
	}
	l.orders = orders
	l.mu.Unlock()
	return nil
}

// Search looks up a single order by id and shows it as a one-element
// list. An empty query falls back to Load.
func (l *List) Search(ctx context.Context, query string) error {
	if query == "" {
		return l.Load(ctx)
	}

	g := l.begin()
	o, err := l.api.GetOrder(ctx, query)
	if !l.finish(g) {
		l.lg.Debug("Discarding stale order search", zap.String("query", query))
		return nil
	}
	if err != nil {
		l.mu.Unlock()
		l.notifier.Notify(notify.Error("Oops...", "Failed to fetch orders!"))
		return errors.Wrap(err, "search order")
	}
	l.orders = []order.Order{*o}
	l.mu.Unlock()
	return nil
}

// OpenDeleteConfirm opens the confirmation modal for one order.
func (l *List) OpenDeleteConfirm(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.confirmOpen = true
	l.confirmID = id
}

// CloseDeleteConfirm dismisses the confirmation modal.
func (l *List) CloseDeleteConfirm() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.confirmOpen = false
	l.confirmID = ""
}

// DeleteConfirm reports the modal state: the order it is open for,
// and whether it is open at all.
func (l *List) DeleteConfirm() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.confirmID, l.confirmOpen
}

// ConfirmRemove deletes the order the confirmation modal is open for,
// closing the modal whatever the outcome.
func (l *List) ConfirmRemove(ctx context.Context) error {
	id, open := l.DeleteConfirm()
	if !open {
		return nil
	}
	defer l.CloseDeleteConfirm()
	return l.Remove(ctx, id)
}

// Remove deletes an order and drops it from the held collection. On
// failure the collection is left unchanged.
func (l *List) Remove(ctx context.Context, id string) error {
	g := l.begin()
	err := l.api.DeleteOrder(ctx, id)
	if !l.finish(g) {
		l.lg.Debug("Discarding stale order delete", zap.String("order_id", id))
		return nil
	}
	if err != nil {
		l.mu.Unlock()
		l.notifier.Notify(notify.Error("Oops...", "Failed to delete order!"))
		return errors.Wrap(err, "delete order")
	}
	kept := l.orders[:0]
	for _, o := range l.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	l.orders = kept
	l.mu.Unlock()
	l.notifier.Notify(notify.Success("Deleted!", "Your order has been deleted."))
	return nil
}

// Orders returns a copy of the held collection.
func (l *List) Orders() []order.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]order.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

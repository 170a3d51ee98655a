package store

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/OsuohaNnamdi/warelink-admin/internal/domain/order"
	"github.com/OsuohaNnamdi/warelink-admin/internal/invoice"
	"github.com/OsuohaNnamdi/warelink-admin/internal/notify"
)

// OrderAPI is the slice of the backend client the detail screen needs.
type OrderAPI interface {
	GetOrder(ctx context.Context, id string) (*order.Order, error)
	UpdateOrder(ctx context.Context, id string, upd order.Update) (*order.Order, error)
}

var (
	// ErrNoOrder means an operation needs a loaded order and none is held.
	ErrNoOrder = errors.New("no order loaded")
	// ErrStatusLocked is the local gate rejection; no request was sent.
	ErrStatusLocked = errors.New("order status is locked until all items are delivered")
)

// Detail is the order-detail screen session: the single source of
// truth for the held order and its editable status/notes fields.
type Detail struct {
	tracker
	api      OrderAPI
	notifier notify.Notifier
	lg       *zap.Logger

	orderID string
	order   *order.Order
	status  order.Status
	notes   string
	loadErr error
}

// NewDetail creates a detail store.
func NewDetail(api OrderAPI, notifier notify.Notifier, lg *zap.Logger) *Detail {
	return &Detail{api: api, notifier: notifier, lg: lg}
}

// Load fetches the order and initializes the editable fields from the
// fetched record. On failure the previously held order stays visible
// (stale data plus error state) and an error notification is emitted.
func (d *Detail) Load(ctx context.Context, id string) error {
	g := d.begin()
	o, err := d.api.GetOrder(ctx, id)
	if !d.finish(g) {
		d.lg.Debug("Discarding stale order load", zap.String("order_id", id))
		return nil
	}
	if err != nil {
		d.loadErr = err
		d.mu.Unlock()
		d.notifier.Notify(notify.Error("Oops...", "Failed to fetch order details!"))
		return errors.Wrap(err, "load order")
	}
	d.orderID = id
	d.order = o
	d.status = o.Status
	d.notes = o.Notes
	d.loadErr = nil
	d.mu.Unlock()
	return nil
}

// SetStatus stages a new aggregate status locally; nothing is sent
// until Save.
func (d *Detail) SetStatus(s order.Status) error {
	if !s.Valid() {
		return &order.UnknownStatusError{Value: string(s)}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = s
	return nil
}

// SetNotes stages new notes locally.
func (d *Detail) SetNotes(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notes = text
}

// CanMutateStatus evaluates the gate against the currently held order.
// With no order loaded there is nothing to mutate.
func (d *Detail) CanMutateStatus() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.order != nil && order.CanMutateStatus(d.order)
}

// Save writes the staged {status, notes} back. It fails fast with a
// warning notification — no request is issued — while the gate forbids
// mutation. On success the held order is replaced by the server's
// returned representation.
func (d *Detail) Save(ctx context.Context) error {
	d.mu.Lock()
	if d.order == nil {
		d.mu.Unlock()
		return ErrNoOrder
	}
	if !order.CanMutateStatus(d.order) {
		d.mu.Unlock()
		d.notifier.Notify(notify.Warning(
			"Cannot Update Status",
			"All order items must be delivered before updating the order status.",
		))
		return ErrStatusLocked
	}
	id := d.orderID
	upd := order.Update{Status: d.status, Notes: d.notes}
	d.gen++
	g := d.gen
	d.loading++
	d.mu.Unlock()

	o, err := d.api.UpdateOrder(ctx, id, upd)
	if !d.finish(g) {
		d.lg.Debug("Discarding stale order save", zap.String("order_id", id))
		return nil
	}
	if err != nil {
		d.mu.Unlock()
		d.notifier.Notify(notify.Error("Oops...", "Failed to update order!"))
		return errors.Wrap(err, "save order")
	}
	d.order = o
	d.status = o.Status
	d.notes = o.Notes
	d.mu.Unlock()
	d.notifier.Notify(notify.Success("Updated!", "Your order has been updated."))
	return nil
}

// Invoice generates the printable invoice for the held order. The
// artifact is produced fully in memory; on failure nothing is returned
// and an error notification is emitted.
func (d *Detail) Invoice() (string, []byte, error) {
	d.mu.Lock()
	o := d.order
	if o == nil {
		d.mu.Unlock()
		return "", nil, ErrNoOrder
	}
	d.loading++
	d.mu.Unlock()

	name, data, err := invoice.Generate(o)

	d.mu.Lock()
	d.loading--
	d.mu.Unlock()
	if err != nil {
		d.notifier.Notify(notify.Error("Error", "Failed to generate invoice!"))
		return "", nil, errors.Wrap(err, "generate invoice")
	}
	return name, data, nil
}

// Order returns the held order, or nil before the first successful
// load. Callers must treat it as read-only.
func (d *Detail) Order() *order.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.order
}

// Status returns the staged editable status.
func (d *Detail) Status() order.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// Notes returns the staged editable notes.
func (d *Detail) Notes() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.notes
}

// Err returns the load error state, cleared by the next successful load.
func (d *Detail) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loadErr
}

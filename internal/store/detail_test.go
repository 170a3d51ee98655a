package store

import (
	"context"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/OsuohaNnamdi/warelink-admin/internal/domain/order"
	"github.com/OsuohaNnamdi/warelink-admin/internal/notify"
)

// --- Mock implementations ---

type recordingNotifier struct {
	mu    sync.Mutex
	notes []notify.Notification
}

func (r *recordingNotifier) Notify(n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func (r *recordingNotifier) last() (notify.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return notify.Notification{}, false
	}
	return r.notes[len(r.notes)-1], true
}

func (r *recordingNotifier) count(level notify.Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, note := range r.notes {
		if note.Level == level {
			n++
		}
	}
	return n
}

type mockOrderAPI struct {
	mu          sync.Mutex
	getOrder    func(ctx context.Context, id string) (*order.Order, error)
	updateOrder func(ctx context.Context, id string, upd order.Update) (*order.Order, error)
	updates     []order.Update
}

func (m *mockOrderAPI) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	return m.getOrder(ctx, id)
}

func (m *mockOrderAPI) UpdateOrder(ctx context.Context, id string, upd order.Update) (*order.Order, error) {
	m.mu.Lock()
	m.updates = append(m.updates, upd)
	m.mu.Unlock()
	return m.updateOrder(ctx, id, upd)
}

func (m *mockOrderAPI) updateCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.updates)
}

// --- Helpers ---

func testOrder(id string, status order.Status, itemStatuses ...order.Status) *order.Order {
	items := make([]order.Item, len(itemStatuses))
	for i, s := range itemStatuses {
		items[i] = order.Item{
			Quantity: 1,
			Total:    decimal.NewFromInt(1000),
			Status:   s,
			Product: order.ProductSnapshot{
				Name:  "Widget",
				Price: decimal.NewFromInt(1000),
			},
		}
	}
	return &order.Order{
		ID:         id,
		Status:     status,
		TotalPrice: decimal.NewFromInt(int64(len(items)) * 1000),
		Items:      items,
	}
}

func fixedAPI(o *order.Order) *mockOrderAPI {
	return &mockOrderAPI{
		getOrder: func(_ context.Context, _ string) (*order.Order, error) {
			return o, nil
		},
		updateOrder: func(_ context.Context, _ string, _ order.Update) (*order.Order, error) {
			return o, nil
		},
	}
}

func newDetail(api *mockOrderAPI) (*Detail, *recordingNotifier) {
	n := &recordingNotifier{}
	return NewDetail(api, n, zap.NewNop()), n
}

// --- Tests ---

func TestDetailLoad_InitializesEditableFields(t *testing.T) {
	o := testOrder("42", order.StatusShipped, order.StatusDelivered)
	o.Notes = "fragile"
	d, _ := newDetail(fixedAPI(o))

	require.NoError(t, d.Load(context.Background(), "42"))

	assert.Equal(t, order.StatusShipped, d.Status())
	assert.Equal(t, "fragile", d.Notes())
	assert.False(t, d.Loading())
	assert.NoError(t, d.Err())
}

func TestDetailLoad_FailureKeepsPriorOrder(t *testing.T) {
	o := testOrder("42", order.StatusShipped, order.StatusDelivered)
	boom := errors.New("connection refused")
	calls := 0
	api := &mockOrderAPI{
		getOrder: func(_ context.Context, _ string) (*order.Order, error) {
			calls++
			if calls == 1 {
				return o, nil
			}
			return nil, boom
		},
	}
	d, n := newDetail(api)

	require.NoError(t, d.Load(context.Background(), "42"))
	err := d.Load(context.Background(), "42")
	require.ErrorIs(t, err, boom)

	assert.Equal(t, o, d.Order(), "prior order retained on failed reload")
	assert.Error(t, d.Err())
	assert.False(t, d.Loading())
	last, ok := n.last()
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, last.Level)
}

func TestDetailLoad_StaleResponseDiscarded(t *testing.T) {
	slow := testOrder("1", order.StatusPending, order.StatusPending)
	fast := testOrder("2", order.StatusShipped, order.StatusDelivered)
	started := make(chan struct{})
	release := make(chan struct{})
	api := &mockOrderAPI{
		getOrder: func(_ context.Context, id string) (*order.Order, error) {
			if id == "1" {
				close(started)
				<-release
				return slow, nil
			}
			return fast, nil
		},
	}
	d, _ := newDetail(api)

	done := make(chan error, 1)
	go func() { done <- d.Load(context.Background(), "1") }()
	<-started

	require.NoError(t, d.Load(context.Background(), "2"))
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, "2", d.Order().ID, "late response must not clobber newer state")
	assert.False(t, d.Loading())
}

func TestDetailSave_GateBlocksWithoutNetworkCall(t *testing.T) {
	o := testOrder("42", order.StatusPending, order.StatusPending)
	api := fixedAPI(o)
	d, n := newDetail(api)
	require.NoError(t, d.Load(context.Background(), "42"))

	err := d.Save(context.Background())

	require.ErrorIs(t, err, ErrStatusLocked)
	assert.Zero(t, api.updateCount(), "no PATCH may be sent while the gate is closed")
	last, ok := n.last()
	require.True(t, ok)
	assert.Equal(t, notify.LevelWarning, last.Level)
	assert.False(t, d.Loading())
}

func TestDetailSave_SendsStagedFields(t *testing.T) {
	held := testOrder("42", order.StatusShipped, order.StatusDelivered, order.StatusDelivered)
	saved := testOrder("42", order.StatusDelivered, order.StatusDelivered, order.StatusDelivered)
	saved.Notes = "server normalized"
	api := &mockOrderAPI{
		getOrder: func(_ context.Context, _ string) (*order.Order, error) { return held, nil },
		updateOrder: func(_ context.Context, id string, _ order.Update) (*order.Order, error) {
			assert.Equal(t, "42", id)
			return saved, nil
		},
	}
	d, n := newDetail(api)
	require.NoError(t, d.Load(context.Background(), "42"))
	require.NoError(t, d.SetStatus(order.StatusDelivered))
	d.SetNotes("leave with guard")

	require.NoError(t, d.Save(context.Background()))

	require.Equal(t, 1, api.updateCount())
	assert.Equal(t, order.Update{Status: order.StatusDelivered, Notes: "leave with guard"}, api.updates[0])
	// Server representation is authoritative post-write.
	assert.Equal(t, saved, d.Order())
	assert.Equal(t, order.StatusDelivered, d.Status())
	assert.Equal(t, "server normalized", d.Notes())
	assert.Equal(t, 1, n.count(notify.LevelSuccess))
}

func TestDetailSave_FailureKeepsState(t *testing.T) {
	held := testOrder("42", order.StatusShipped, order.StatusDelivered)
	api := &mockOrderAPI{
		getOrder: func(_ context.Context, _ string) (*order.Order, error) { return held, nil },
		updateOrder: func(_ context.Context, _ string, _ order.Update) (*order.Order, error) {
			return nil, errors.New("500")
		},
	}
	d, n := newDetail(api)
	require.NoError(t, d.Load(context.Background(), "42"))
	require.NoError(t, d.SetStatus(order.StatusDelivered))

	require.Error(t, d.Save(context.Background()))

	assert.Equal(t, held, d.Order())
	assert.Equal(t, order.StatusDelivered, d.Status(), "staged edit survives a failed save")
	assert.Equal(t, 1, n.count(notify.LevelError))
	assert.False(t, d.Loading())
}

func TestDetailSave_NoOrderLoaded(t *testing.T) {
	d, _ := newDetail(fixedAPI(nil))
	require.ErrorIs(t, d.Save(context.Background()), ErrNoOrder)
}

func TestDetailSetStatus_RejectsUnknown(t *testing.T) {
	d, _ := newDetail(fixedAPI(nil))
	var uerr *order.UnknownStatusError
	require.ErrorAs(t, d.SetStatus("misplaced"), &uerr)
}

func TestDetailInvoice(t *testing.T) {
	o := testOrder("42", order.StatusDelivered, order.StatusDelivered)
	d, _ := newDetail(fixedAPI(o))
	require.NoError(t, d.Load(context.Background(), "42"))

	name, data, err := d.Invoice()
	require.NoError(t, err)
	assert.Equal(t, "invoice_42.pdf", name)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.False(t, d.Loading())
}

func TestDetailInvoice_NoOrder(t *testing.T) {
	d, _ := newDetail(fixedAPI(nil))
	_, _, err := d.Invoice()
	require.ErrorIs(t, err, ErrNoOrder)
}

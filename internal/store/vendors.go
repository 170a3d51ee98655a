package store

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/OsuohaNnamdi/warelink-admin/internal/domain/catalog"
	"github.com/OsuohaNnamdi/warelink-admin/internal/notify"
)

// VendorAPI is the slice of the backend client the vendors screen needs.
type VendorAPI interface {
	ListVendors(ctx context.Context) ([]catalog.Vendor, error)
	UpdateVendor(ctx context.Context, v catalog.Vendor) (*catalog.Vendor, error)
	DeleteVendor(ctx context.Context, id int64) error
}

// Vendors is the vendors screen session.
type Vendors struct {
	tracker
	api      VendorAPI
	notifier notify.Notifier
	lg       *zap.Logger

	vendors []catalog.Vendor
}

// NewVendors creates a vendors store.
func NewVendors(api VendorAPI, notifier notify.Notifier, lg *zap.Logger) *Vendors {
	return &Vendors{api: api, notifier: notifier, lg: lg}
}

// Load fetches the vendor list; failure keeps the prior list.
func (v *Vendors) Load(ctx context.Context) error {
	g := v.begin()
	vendors, err := v.api.ListVendors(ctx)
	if !v.finish(g) {
		v.lg.Debug("Discarding stale vendor load")
		return nil
	}
	if err != nil {
		v.mu.Unlock()
		v.notifier.Notify(notify.Error("Oops...", "Failed to fetch vendors!"))
		return errors.Wrap(err, "load vendors")
	}
	v.vendors = vendors
	v.mu.Unlock()
	return nil
}

// SetApproved flips a vendor's approval and writes the full record
// back; the server's returned representation replaces the held one.
func (v *Vendors) SetApproved(ctx context.Context, id int64, approved bool) error {
	v.mu.Lock()
	var target *catalog.Vendor
	for i := range v.vendors {
		if v.vendors[i].ID == id {
			vendor := v.vendors[i]
			target = &vendor
			break
		}
	}
	v.mu.Unlock()
	if target == nil {
		return errors.Errorf("vendor %d not loaded", id)
	}
	target.Approved = approved

	g := v.begin()
	updated, err := v.api.UpdateVendor(ctx, *target)
	if !v.finish(g) {
		v.lg.Debug("Discarding stale vendor update", zap.Int64("vendor_id", id))
		return nil
	}
	if err != nil {
		v.mu.Unlock()
		v.notifier.Notify(notify.Error("Oops...", "Failed to update vendor!"))
		return errors.Wrap(err, "update vendor")
	}
	for i := range v.vendors {
		if v.vendors[i].ID == updated.ID {
			v.vendors[i] = *updated
			break
		}
	}
	v.mu.Unlock()
	v.notifier.Notify(notify.Success("Updated!", "Vendor has been updated."))
	return nil
}

// Remove deletes a vendor and drops it from the held list; failure
// leaves the list untouched.
func (v *Vendors) Remove(ctx context.Context, id int64) error {
	g := v.begin()
	err := v.api.DeleteVendor(ctx, id)
	if !v.finish(g) {
		v.lg.Debug("Discarding stale vendor delete", zap.Int64("vendor_id", id))
		return nil
	}
	if err != nil {
		v.mu.Unlock()
		v.notifier.Notify(notify.Error("Oops...", "Failed to delete vendor!"))
		return errors.Wrap(err, "delete vendor")
	}
	kept := v.vendors[:0]
	for _, vd := range v.vendors {
		if vd.ID != id {
			kept = append(kept, vd)
		}
	}
	v.vendors = kept
	v.mu.Unlock()
	v.notifier.Notify(notify.Success("Deleted!", "The vendor has been deleted."))
	return nil
}

// Vendors returns a copy of the held list.
func (v *Vendors) Vendors() []catalog.Vendor {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]catalog.Vendor, len(v.vendors))
	copy(out, v.vendors)
	return out
}

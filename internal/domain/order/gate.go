package order

// CanMutateStatus reports whether the order's aggregate status may be
// edited right now. The rule guards against premature aggregate
// advancement: every line item must individually reach delivered
// before the order-level status is unlocked. An order with no items
// is trivially mutable.
//
// This is a pure function of the order; callers re-evaluate it
// whenever the held order is replaced.
func CanMutateStatus(o *Order) bool {
	for _, item := range o.Items {
		if item.Status != StatusDelivered {
			return false
		}
	}
	return true
}

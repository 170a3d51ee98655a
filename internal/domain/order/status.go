package order

import "fmt"

// Status is the lifecycle state of an order or a single line item.
// There is no transition graph at the model level; whether the
// aggregate status may change is decided by CanMutateStatus.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusCancelled  Status = "cancelled"
	StatusDelivered  Status = "delivered"
)

// Statuses lists every valid status in display order.
func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusProcessing,
		StatusShipped,
		StatusCancelled,
		StatusDelivered,
	}
}

// UnknownStatusError indicates a status string outside the enum.
type UnknownStatusError struct {
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown order status %q", e.Value)
}

// ParseStatus converts a wire string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusCancelled, StatusDelivered:
		return Status(s), nil
	}
	return "", &UnknownStatusError{Value: s}
}

// Valid reports whether s is one of the enum values.
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

func (s Status) String() string {
	return string(s)
}

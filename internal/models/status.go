package models

// OrderStatus is the lifecycle state reported by the fulfillment service.
// The values are wire strings and must not be renamed.
type OrderStatus string

const (
	StatusOrderPlaced OrderStatus = "Order Placed"
	StatusProcessing  OrderStatus = "Processing"
	StatusShipped     OrderStatus = "Shipped"
	StatusDelivered   OrderStatus = "Delivered"
	StatusCancelled   OrderStatus = "Cancelled"
)

// ProgressSteps is the ordered delivery sequence rendered as a progress bar.
// Cancelled is deliberately absent: it renders as a distinct terminal
// indicator, not a position in the sequence.
var ProgressSteps = []OrderStatus{
	StatusOrderPlaced,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
}

func (s OrderStatus) Known() bool {
	switch s {
	case StatusOrderPlaced, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition can occur.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ProgressIndex returns the zero-based position of s in ProgressSteps, or -1
// for Cancelled and unrecognized statuses.
func (s OrderStatus) ProgressIndex() int {
	for i, step := range ProgressSteps {
		if step == s {
			return i
		}
	}
	return -1
}

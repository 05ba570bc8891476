package checkout

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/fulfillment"
	"storefront/internal/models"
)

var (
	ErrOrderNotSeen          = errors.New("order not in the fetched list")
	ErrOrderNotCancellable   = errors.New("order can no longer be cancelled")
	ErrNoPendingCancellation = errors.New("no cancellation pending for this order")
)

// CancellationPrompt is returned when a cancellation becomes armed. The
// caller must echo the order id back through ConfirmCancellation after
// showing the warning.
type CancellationPrompt struct {
	OrderID string `json:"orderId"`
	Warning string `json:"warning"`
}

// ListOrders fetches the caller's order history and remembers each order's
// last seen status for local cancellation eligibility checks.
func (s *Session) ListOrders(ctx context.Context, client fulfillment.Client, credential string) ([]models.OrderSummary, error) {
	orders, err := client.ListOrders(ctx, credential)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.statuses == nil {
		s.statuses = make(map[string]models.OrderStatus, len(orders))
	}
	for _, o := range orders {
		s.statuses[o.OrderID] = o.Status
	}
	return orders, nil
}

// GetOrder fetches one order's detail and records its status.
func (s *Session) GetOrder(ctx context.Context, client fulfillment.Client, credential, orderID string) (*models.OrderDetail, error) {
	detail, err := client.GetOrder(ctx, orderID, credential)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.statuses == nil {
		s.statuses = make(map[string]models.OrderStatus, 1)
	}
	s.statuses[detail.OrderID] = detail.Status
	return detail, nil
}

// RequestCancellation arms a cancellation for an order whose last seen
// status is still "Order Placed". Anything further along is rejected here,
// locally, with no network call: once fulfillment has progressed only the
// backend decides cancellability. The returned prompt carries the explicit
// irreversibility warning the caller must confirm against.
func (s *Session) RequestCancellation(orderID string) (*CancellationPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, seen := s.statuses[orderID]
	if !seen {
		return nil, ErrOrderNotSeen
	}
	if status != models.StatusOrderPlaced {
		return nil, ErrOrderNotCancellable
	}

	s.pendingCancel = orderID
	return &CancellationPrompt{
		OrderID: orderID,
		Warning: fmt.Sprintf("This action cannot be undone. Order ID: %s", orderID),
	}, nil
}

// ConfirmCancellation issues the cancel call for the armed order, then
// refetches the list. The confirmation is consumed either way. The refreshed
// list is returned rather than an optimistic local status flip: a successful
// cancel does not guarantee the exact resulting status.
func (s *Session) ConfirmCancellation(ctx context.Context, client fulfillment.Client, credential, orderID string) ([]models.OrderSummary, error) {
	s.mu.Lock()
	if s.pendingCancel == "" || s.pendingCancel != orderID {
		s.mu.Unlock()
		return nil, ErrNoPendingCancellation
	}
	s.pendingCancel = ""
	s.mu.Unlock()

	if err := client.CancelOrder(ctx, orderID, credential); err != nil {
		return nil, err
	}
	return s.ListOrders(ctx, client, credential)
}

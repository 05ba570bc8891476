// Package fulfillment talks to the external fulfillment service that owns
// catalog stock, order persistence and the order lifecycle.
package fulfillment

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/models"
)

// Client is the consumed fulfillment interface. Every authenticated call
// attaches the caller's opaque bearer credential; this side never inspects it.
type Client interface {
	FetchCatalogStock(ctx context.Context) ([]models.ProductStock, error)
	SubmitOrder(ctx context.Context, draft models.OrderDraft, credential string) (orderID string, err error)
	ListOrders(ctx context.Context, credential string) ([]models.OrderSummary, error)
	GetOrder(ctx context.Context, orderID, credential string) (*models.OrderDetail, error)
	CancelOrder(ctx context.Context, orderID, credential string) error
}

// ErrUnauthorized marks a missing or rejected credential. Callers should
// prompt for re-authentication; no retry is implied.
var ErrUnauthorized = errors.New("unauthorized")

// RejectionError is a definitive backend rejection. The message is surfaced
// verbatim and no retry is implied.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// TransientError wraps network failures and unexpected upstream statuses.
// The request may be retried.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("fulfillment unavailable: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

package checkout

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/fulfillment"
	"storefront/internal/models"
)

// DeliveryFee is a flat rate in pesos, charged on every order.
const DeliveryFee = 60.00

var (
	ErrNoWalletConfirmation = errors.New("no wallet confirmation pending")
	ErrWalletDetailsMissing = errors.New("payer name and account number are required")
)

// CheckoutResult reports the outcome of a checkout intent. Exactly one of
// the three branches is populated: field errors kept the session at idle,
// AwaitingWallet opened the confirmation surface, or OrderID was placed.
type CheckoutResult struct {
	FieldErrors    FieldErrors
	AwaitingWallet bool
	OrderID        string
	Total          float64
}

// RequestCheckout drives Idle -> Validating -> {AwaitingWalletConfirmation |
// Submitting}. A second intent while a submission or wallet confirmation is
// outstanding fails with ErrCheckoutInFlight. Validation failures return
// per-field errors without touching the network.
func (s *Session) RequestCheckout(ctx context.Context, client fulfillment.Client, credential string) (*CheckoutResult, error) {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return nil, ErrCheckoutInFlight
	}
	if s.cart.Len() == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}

	if errs := ValidateBilling(s.billing); len(errs) > 0 {
		s.mu.Unlock()
		return &CheckoutResult{FieldErrors: errs}, nil
	}

	draft := s.buildDraftLocked()

	if s.payment == models.PaymentMobileWallet {
		// No backend order exists yet; the draft waits for the payer's
		// confirmation and is discarded on dismissal.
		s.draft = &draft
		s.state = StateAwaitingWallet
		s.mu.Unlock()
		return &CheckoutResult{AwaitingWallet: true, Total: draft.Total}, nil
	}

	return s.submit(ctx, client, credential, draft, StateIdle)
}

// ConfirmWalletPayment attaches the payer details to the pending draft and
// submits it. Missing details leave the confirmation open.
func (s *Session) ConfirmWalletPayment(ctx context.Context, client fulfillment.Client, credential, payerName, accountNumber string) (*CheckoutResult, error) {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return nil, ErrCheckoutInFlight
	}
	if s.state != StateAwaitingWallet || s.draft == nil {
		s.mu.Unlock()
		return nil, ErrNoWalletConfirmation
	}
	if strings.TrimSpace(payerName) == "" || strings.TrimSpace(accountNumber) == "" {
		s.mu.Unlock()
		return nil, ErrWalletDetailsMissing
	}

	draft := *s.draft
	draft.PaymentDetails = &models.PaymentDetails{
		PayerName:     payerName,
		AccountNumber: accountNumber,
	}

	return s.submit(ctx, client, credential, draft, StateAwaitingWallet)
}

// DismissWalletConfirmation abandons the pending draft without any network
// call. The cart is untouched.
func (s *Session) DismissWalletConfirmation() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaitingWallet {
		return ErrNoWalletConfirmation
	}
	s.draft = nil
	s.state = StateIdle
	return nil
}

// submit enters Submitting, releases the lock for the upstream call and
// finalizes. On any error the session returns to its pre-submission state
// with the cart intact so the caller may retry; on success the cart is
// cleared and the draft discarded. Expects s.mu held; returns with it
// released.
func (s *Session) submit(ctx context.Context, client fulfillment.Client, credential string, draft models.OrderDraft, revert State) (*CheckoutResult, error) {
	s.state = StateSubmitting
	s.mu.Unlock()

	orderID, err := client.SubmitOrder(ctx, draft, credential)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = revert
		return nil, err
	}

	s.cart.Clear()
	s.draft = nil
	s.state = StateIdle
	return &CheckoutResult{OrderID: orderID, Total: draft.Total}, nil
}

// buildDraftLocked assembles the submission draft from live cart state.
// Expects s.mu held.
func (s *Session) buildDraftLocked() models.OrderDraft {
	subtotal := s.cart.Subtotal()
	return models.OrderDraft{
		Items:         s.cart.Items(),
		BillingInfo:   s.billing,
		PaymentMethod: s.payment,
		Subtotal:      subtotal,
		DeliveryFee:   DeliveryFee,
		Total:         subtotal + DeliveryFee,
	}
}

package checkout

import (
	"errors"
	"fmt"
	"sync"

	"storefront/internal/geo"
	"storefront/internal/models"
)

// State is the orchestrator phase of a session. Validation happens inline
// inside RequestCheckout, so only the phases that outlive a call are modeled.
type State string

const (
	StateIdle           State = "idle"
	StateAwaitingWallet State = "awaiting_wallet_confirmation"
	StateSubmitting     State = "submitting"
)

var (
	ErrCheckoutInFlight = errors.New("checkout already in progress")
	ErrEmptyCart        = errors.New("cart is empty")
)

// Session is the per-visitor checkout state. A mutex serializes every
// operation; it is released across fulfillment calls so that concurrent
// requests observe the submitting state instead of blocking on it.
type Session struct {
	mu sync.Mutex

	stock   *StockSnapshot
	cart    *Cart
	billing models.BillingInfo
	payment models.PaymentMethod

	state State
	draft *models.OrderDraft

	statuses      map[string]models.OrderStatus
	pendingCancel string
}

func NewSession(stock *StockSnapshot) *Session {
	return &Session{
		stock:   stock,
		cart:    NewCart(stock),
		payment: models.PaymentMobileWallet,
		state:   StateIdle,
	}
}

func (s *Session) AddItem(item models.LineItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.AddItem(item)
}

func (s *Session) SetQuantity(productID string, requested int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SetQuantity(productID, requested)
}

func (s *Session) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(productID)
}

// CartView is the cart with its running totals, computed the same way a
// submission draft computes them.
type CartView struct {
	Items       []models.LineItem `json:"items"`
	Subtotal    float64           `json:"subtotal"`
	DeliveryFee float64           `json:"deliveryFee"`
	Total       float64           `json:"total"`
}

func (s *Session) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	subtotal := s.cart.Subtotal()
	return CartView{
		Items:       s.cart.Items(),
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Total:       subtotal + DeliveryFee,
	}
}

func (s *Session) UpdateBillingField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return applyBillingField(&s.billing, field, value)
}

// SelectCity sets city and stateProvince atomically from the coverage table.
func (s *Session) SelectCity(city string) error {
	province, ok := geo.ProvinceFor(city)
	if !ok {
		return fmt.Errorf("city %q is outside the delivery area", city)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.billing.City = city
	s.billing.StateProvince = province
	return nil
}

func (s *Session) SelectPaymentMethod(method models.PaymentMethod) error {
	if !method.Valid() {
		return fmt.Errorf("unknown payment method %q", method)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payment = method
	return nil
}

func (s *Session) Billing() models.BillingInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.billing
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

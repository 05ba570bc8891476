package models

import "time"

// OrderDraft is the not-yet-persisted order assembled at submission time.
// It exists only for the duration of a checkout and is discarded on success
// or when a wallet confirmation is dismissed.
type OrderDraft struct {
	Items          []LineItem      `json:"cartItems"`
	BillingInfo    BillingInfo     `json:"billingInfo"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
	Subtotal       float64         `json:"subtotal"`
	DeliveryFee    float64         `json:"delivery"`
	Total          float64         `json:"total"`
}

// OrderSummary is one row of the order history listing.
type OrderSummary struct {
	OrderID        string      `json:"orderId"`
	Status         OrderStatus `json:"status"`
	TrackingNumber string      `json:"trackingNumber"`
	OrderDate      time.Time   `json:"orderDate"`
	Total          float64     `json:"total"`
}

// OrderDetail is the full persisted order as reported by the fulfillment
// service. Immutable from this side; only the service transitions Status.
type OrderDetail struct {
	OrderID        string        `json:"orderId"`
	Status         OrderStatus   `json:"status"`
	TrackingNumber string        `json:"trackingNumber"`
	OrderDate      time.Time     `json:"orderDate"`
	Items          []LineItem    `json:"items"`
	BillingInfo    BillingInfo   `json:"billingInfo"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	Subtotal       float64       `json:"subtotal"`
	DeliveryFee    float64       `json:"delivery"`
	Total          float64       `json:"total"`
}

package models

// Delivery address labels accepted on the billing form.
const (
	DeliveryLabelHome = "Home"
	DeliveryLabelWork = "Work"
)

// BillingInfo captures the billing form state. StateProvince is always
// derived from the selected city, never entered directly.
type BillingInfo struct {
	FullName      string `json:"fullName"`
	PhoneNumber   string `json:"phoneNumber"`
	Address       string `json:"address"`
	City          string `json:"city"`
	StateProvince string `json:"stateProvince"`
	PostalCode    string `json:"postalCode"`
	DeliveryLabel string `json:"deliveryLabel"`
}

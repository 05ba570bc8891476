package models

// PaymentMethod selects the checkout flow: cash on delivery submits in a
// single phase, a mobile wallet payment requires a confirmation phase first.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentMobileWallet   PaymentMethod = "wallet"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCashOnDelivery || m == PaymentMobileWallet
}

// PaymentDetails carries the extra data a wallet payment requires. Cash on
// delivery submissions carry none.
type PaymentDetails struct {
	PayerName     string `json:"payerName"`
	AccountNumber string `json:"accountNumber"`
}

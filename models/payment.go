package models

type PaymentMethodType string

const (
	PaymentMethodCard      PaymentMethodType = "card"
	PaymentMethodPayPal    PaymentMethodType = "paypal"
	PaymentMethodApplePay  PaymentMethodType = "apple_pay"
	PaymentMethodGooglePay PaymentMethodType = "google_pay"
)

type PaymentMethod struct {
	ID   string            `json:"id"`
	Type PaymentMethodType `json:"type"`
	Name string            `json:"name"`
	Icon string            `json:"icon"`
}

type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Name   string `json:"name"`
}

// PaymentState tracks a checkout session. Re-selecting a method is allowed
// in any state before submitting; submitting is terminal until confirmed.
type PaymentState string

const (
	PaymentAwaitingMethod PaymentState = "awaiting_method_selection"
	PaymentMethodSelected PaymentState = "method_selected"
	PaymentAwaitingCard   PaymentState = "awaiting_card_details"
	PaymentSubmitting     PaymentState = "submitting"
	PaymentConfirmed      PaymentState = "confirmed"
)

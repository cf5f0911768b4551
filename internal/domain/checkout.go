package domain

// CheckoutForm is the transient checkout form payload. The two e-money
// fields only matter when PaymentMethod is PaymentEMoney.
type CheckoutForm struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	ZipCode       string        `json:"zipCode"`
	City          string        `json:"city"`
	Country       string        `json:"country"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	EMoneyNumber  string        `json:"eMoneyNumber"`
	EMoneyPin     string        `json:"eMoneyPin"`
}

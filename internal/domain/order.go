package domain

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Customer struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

type ShippingInfo struct {
	Address string `json:"address" bson:"address"`
	ZipCode string `json:"zipCode" bson:"zip_code"`
	City    string `json:"city" bson:"city"`
	Country string `json:"country" bson:"country"`
}

type PaymentMethod string

const (
	PaymentEMoney PaymentMethod = "e-money"
	PaymentCash   PaymentMethod = "cash"
)

// EMoneyDetails exists only for the e-money payment method.
type EMoneyDetails struct {
	Number string `json:"eMoneyNumber" bson:"number"`
	PIN    string `json:"eMoneyPin" bson:"pin"`
}

// Payment is a tagged union over the payment method: EMoney is non-nil
// if and only if Method is PaymentEMoney.
type Payment struct {
	Method PaymentMethod  `json:"method" bson:"method"`
	EMoney *EMoneyDetails `json:"eMoney,omitempty" bson:"e_money,omitempty"`
}

type OrderTotals struct {
	Subtotal   int `json:"subtotal" bson:"subtotal"`
	Shipping   int `json:"shipping" bson:"shipping"`
	VAT        int `json:"vat" bson:"vat"`
	GrandTotal int `json:"grandTotal" bson:"grand_total"`
}

// Order is the durable record produced by checkout. ID is assigned by the
// persistence layer; only Status and UpdatedAt change after creation.
type Order struct {
	ID        string       `json:"orderId,omitempty" bson:"-"`
	Customer  Customer     `json:"customer" bson:"customer"`
	Shipping  ShippingInfo `json:"shipping" bson:"shipping"`
	Payment   Payment      `json:"payment" bson:"payment"`
	Items     []CartItem   `json:"items" bson:"items"`
	Totals    OrderTotals  `json:"totals" bson:"totals"`
	Status    string       `json:"status" bson:"status"`
	CreatedAt string       `json:"createdAt" bson:"created_at"`
	UpdatedAt string       `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}

package checkout

import (
	"math"
	"time"

	"github.com/Lilianobi/audiophile/internal/domain"
)

const (
	// ShippingFee is the flat shipping charge in currency units.
	ShippingFee = 50
	// VATRate applies to the subtotal; the VAT is presented as included.
	VATRate = 0.2
)

// ComputeTotals derives the order totals from the current line items.
// VAT is rounded on the whole-order subtotal, not per line.
func ComputeTotals(items []domain.CartItem) domain.OrderTotals {
	subtotal := domain.CartTotal(items)
	vat := int(math.Round(float64(subtotal) * VATRate))

	return domain.OrderTotals{
		Subtotal:   subtotal,
		Shipping:   ShippingFee,
		VAT:        vat,
		GrandTotal: subtotal + ShippingFee + vat,
	}
}

// Assemble combines validated form data and cart contents into the order
// record: pending status, RFC 3339 timestamp, and the e-money details
// carried only for the e-money payment method.
func Assemble(form domain.CheckoutForm, items []domain.CartItem, now time.Time) domain.Order {
	payment := domain.Payment{Method: form.PaymentMethod}
	if form.PaymentMethod == domain.PaymentEMoney {
		payment.EMoney = &domain.EMoneyDetails{
			Number: form.EMoneyNumber,
			PIN:    form.EMoneyPin,
		}
	}

	return domain.Order{
		Customer: domain.Customer{
			Name:  form.Name,
			Email: form.Email,
			Phone: form.Phone,
		},
		Shipping: domain.ShippingInfo{
			Address: form.Address,
			ZipCode: form.ZipCode,
			City:    form.City,
			Country: form.Country,
		},
		Payment:   payment,
		Items:     items,
		Totals:    ComputeTotals(items),
		Status:    string(domain.OrderStatusPending),
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}

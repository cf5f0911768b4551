package email

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/Lilianobi/audiophile/internal/domain"
)

// ReceiptData feeds the order confirmation template.
type ReceiptData struct {
	OrderID  string
	Customer domain.Customer
	Items    []domain.CartItem
	Totals   domain.OrderTotals
	Shipping domain.ShippingInfo
	AppURL   string
	Year     int
}

// Subject builds the confirmation subject from the short order badge.
func Subject(orderID string) string {
	return fmt.Sprintf("Order Confirmation #%s", shortID(orderID, 8))
}

// RenderReceipt produces the HTML receipt: order badge, line items,
// the four totals, shipping address, and the confirmation-page link.
func RenderReceipt(data ReceiptData) (string, error) {
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	var sb strings.Builder
	if err := receiptTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render receipt: %w", err)
	}
	return sb.String(), nil
}

func shortID(id string, n int) string {
	if len(id) > n {
		id = id[:n]
	}
	return strings.ToUpper(id)
}

// money renders an integer amount with thousands separators, e.g. 2999 -> $2,999.
func money(amount int) string {
	s := fmt.Sprintf("%d", amount)
	if amount < 0 {
		return "-" + money(-amount)
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "$" + strings.Join(parts, ",")
}

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": money,
	"badge": func(id string) string { return shortID(id, 12) },
	"lineTotal": func(item domain.CartItem) string {
		return money(item.Price * item.Quantity)
	},
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Order Confirmation</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Manrope', -apple-system, 'Segoe UI', sans-serif; background-color: #F1F1F1;">
  <table width="100%" cellpadding="0" cellspacing="0" style="background-color: #F1F1F1; padding: 40px 20px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" style="background-color: #FFFFFF; border-radius: 8px; overflow: hidden; max-width: 100%;">
          <tr>
            <td style="background-color: #D87D4A; padding: 48px 40px; text-align: center;">
              <h1 style="margin: 0; color: #FFFFFF; font-size: 36px; font-weight: 700; letter-spacing: 2px; text-transform: uppercase;">THANK YOU!</h1>
              <p style="margin: 12px 0 0; color: #FFFFFF; font-size: 16px; letter-spacing: 1px; text-transform: uppercase;">Your Order Has Been Confirmed</p>
            </td>
          </tr>
          <tr>
            <td style="padding: 40px;">
              <h2 style="margin: 0 0 16px; font-size: 24px; color: #101010;">Hi {{.Customer.Name}}!</h2>
              <p style="margin: 0 0 24px; line-height: 25px; color: #101010; opacity: 0.7; font-size: 15px;">
                We're excited to let you know that we've received your order and it's being processed.
                You'll receive a shipping confirmation email once your items are on their way.
              </p>

              <table width="100%" cellpadding="0" cellspacing="0" style="margin: 0 0 32px; background-color: #FAFAFA; border-radius: 8px; padding: 20px;">
                <tr>
                  <td>
                    <strong style="color: #101010; font-size: 13px; display: block; margin-bottom: 4px; text-transform: uppercase; letter-spacing: 1px;">Order ID</strong>
                    <span style="color: #101010; opacity: 0.7; font-size: 14px; font-family: monospace;">#{{badge .OrderID}}</span>
                  </td>
                </tr>
              </table>

              <h3 style="margin: 0 0 20px; font-size: 18px; color: #101010; letter-spacing: 1.29px; text-transform: uppercase;">Order Summary</h3>
              <table width="100%" cellpadding="0" cellspacing="0" style="border: 1px solid #f1f1f1; border-radius: 8px; margin-bottom: 32px;">
                {{range .Items}}
                <tr>
                  <td style="padding: 15px 10px; border-bottom: 1px solid #f1f1f1;">
                    <table cellpadding="0" cellspacing="0">
                      <tr>
                        <td style="padding-right: 15px;">
                          <img src="{{.Image}}" alt="{{.Name}}" style="width: 64px; height: 64px; border-radius: 8px; object-fit: cover; display: block;" />
                        </td>
                        <td>
                          <strong style="color: #101010; font-size: 15px; display: block; margin-bottom: 5px;">{{.Name}}</strong>
                          <span style="color: #888; font-size: 14px; font-weight: 700;">{{money .Price}}</span>
                        </td>
                      </tr>
                    </table>
                  </td>
                  <td style="padding: 15px 10px; text-align: center; border-bottom: 1px solid #f1f1f1;">
                    <span style="color: #888; font-weight: 700;">x{{.Quantity}}</span>
                  </td>
                  <td style="padding: 15px 10px; text-align: right; border-bottom: 1px solid #f1f1f1;">
                    <strong style="color: #101010; font-size: 16px;">{{lineTotal .}}</strong>
                  </td>
                </tr>
                {{end}}
              </table>

              <table width="100%" cellpadding="0" cellspacing="0" style="border-top: 2px solid #f1f1f1; margin-bottom: 32px;">
                <tr>
                  <td style="padding: 8px 0;"><span style="color: #101010; opacity: 0.6; font-size: 15px;">Subtotal</span></td>
                  <td style="text-align: right; padding: 8px 0;"><strong style="color: #101010; font-size: 16px;">{{money .Totals.Subtotal}}</strong></td>
                </tr>
                <tr>
                  <td style="padding: 8px 0;"><span style="color: #101010; opacity: 0.6; font-size: 15px;">Shipping</span></td>
                  <td style="text-align: right; padding: 8px 0;"><strong style="color: #101010; font-size: 16px;">{{money .Totals.Shipping}}</strong></td>
                </tr>
                <tr>
                  <td style="padding: 8px 0;"><span style="color: #101010; opacity: 0.6; font-size: 15px;">VAT (Included)</span></td>
                  <td style="text-align: right; padding: 8px 0;"><strong style="color: #101010; font-size: 16px;">{{money .Totals.VAT}}</strong></td>
                </tr>
                <tr style="border-top: 2px solid #D87D4A;">
                  <td style="padding: 20px 0 0;"><strong style="color: #101010; font-size: 16px; text-transform: uppercase; letter-spacing: 1px;">Grand Total</strong></td>
                  <td style="text-align: right; padding: 20px 0 0;"><strong style="color: #D87D4A; font-size: 20px;">{{money .Totals.GrandTotal}}</strong></td>
                </tr>
              </table>

              <h3 style="margin: 0 0 16px; font-size: 18px; color: #101010; letter-spacing: 1.29px; text-transform: uppercase;">Shipping Address</h3>
              <div style="background-color: #FAFAFA; padding: 20px; border-radius: 8px; margin-bottom: 32px;">
                <p style="margin: 0; line-height: 24px; color: #101010; opacity: 0.8; font-size: 15px;">
                  {{.Shipping.Address}}<br />
                  {{.Shipping.City}}, {{.Shipping.ZipCode}}<br />
                  {{.Shipping.Country}}
                </p>
              </div>

              <table width="100%" cellpadding="0" cellspacing="0" style="margin: 0 0 32px;">
                <tr>
                  <td align="center">
                    <a href="{{.AppURL}}/confirmation?orderId={{.OrderID}}"
                       style="display: inline-block; padding: 16px 40px; background-color: #D87D4A; color: #FFFFFF; text-decoration: none; font-weight: 700; font-size: 13px; letter-spacing: 1px; text-transform: uppercase;">
                      VIEW YOUR ORDER
                    </a>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="background-color: #101010; padding: 32px 40px; text-align: center;">
              <p style="margin: 0 0 12px; color: #FFFFFF; font-size: 14px; opacity: 0.8; line-height: 22px;">
                Questions? We're here to help!<br />
                Contact us at <a href="mailto:support@audiophile.com" style="color: #D87D4A; text-decoration: none;">support@audiophile.com</a>
              </p>
              <p style="margin: 0; color: #FFFFFF; font-size: 12px; opacity: 0.6;">&copy; {{.Year}} Audiophile. All Rights Reserved.</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`))

package email

import (
	"context"
	"fmt"

	"github.com/Lilianobi/audiophile/internal/domain"
)

// Notifier renders and sends the order confirmation receipt. It satisfies
// the order service's notifier interface; all error handling policy
// (swallow, log) lives with the caller.
type Notifier struct {
	mailer Mailer
	appURL string
}

func NewNotifier(mailer Mailer, appURL string) *Notifier {
	return &Notifier{mailer: mailer, appURL: appURL}
}

func (n *Notifier) SendOrderConfirmation(ctx context.Context, orderID string, order domain.Order) error {
	html, err := RenderReceipt(ReceiptData{
		OrderID:  orderID,
		Customer: order.Customer,
		Items:    order.Items,
		Totals:   order.Totals,
		Shipping: order.Shipping,
		AppURL:   n.appURL,
	})
	if err != nil {
		return err
	}

	if err := n.mailer.Send(ctx, order.Customer.Email, Subject(orderID), html); err != nil {
		return fmt.Errorf("failed to send confirmation for order %s: %w", orderID, err)
	}
	return nil
}

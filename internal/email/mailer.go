package email

import "context"

// Mailer dispatches one HTML email through the delivery provider.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

package email

import (
	"context"
	"fmt"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/sony/gobreaker/v2"
)

// ResendMailer sends through the Resend transactional API behind a
// circuit breaker that opens after repeated provider failures.
type ResendMailer struct {
	client  *resend.Client
	from    string
	breaker *gobreaker.CircuitBreaker[*resend.SendEmailResponse]
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	settings := gobreaker.Settings{
		Name:    "resend",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &ResendMailer{
		client:  resend.NewClient(apiKey),
		from:    from,
		breaker: gobreaker.NewCircuitBreaker[*resend.SendEmailResponse](settings),
	}
}

func (m *ResendMailer) Send(ctx context.Context, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	_, err := m.breaker.Execute(func() (*resend.SendEmailResponse, error) {
		return m.client.Emails.SendWithContext(ctx, params)
	})
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	return nil
}

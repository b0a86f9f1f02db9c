// Package mailer sends transactional email. Delivery is synchronous and
// best-effort: the provider's immediate accept/reject is all the caller gets,
// there is no queue and no retry.
package mailer

import (
	"context"
	"log"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Console logs messages instead of sending them. Used for local development
// when no provider key is configured.
type Console struct {
	From string
}

func NewConsole(from string) *Console {
	return &Console{From: from}
}

func (m *Console) Send(_ context.Context, to, subject, htmlBody string) error {
	log.Printf("mail from=%s to=%s subject=%q body=%q", m.From, to, subject, htmlBody)
	return nil
}

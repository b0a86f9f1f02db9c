package notification

import (
	"context"

	"futsalcourt/internal/mailer"
)

// Fixed approval template. The sender address comes from the mailer's
// configuration.
const (
	approvedSubject = "Booking Approved ✅"
	approvedBody    = "<p>Your futsal booking has been approved. See you on the court!</p>"
)

// Dispatcher sends the single approval email. Synchronous, no queue, no
// retry; the provider's accept/reject is the only delivery signal.
type Dispatcher struct {
	mail mailer.Mailer
}

func NewDispatcher(mail mailer.Mailer) *Dispatcher {
	return &Dispatcher{mail: mail}
}

func (d *Dispatcher) NotifyApproved(ctx context.Context, recipientEmail string) error {
	return d.mail.Send(ctx, recipientEmail, approvedSubject, approvedBody)
}

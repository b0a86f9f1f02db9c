package mailer

import (
	"context"
	"sync"
)

// Recorder captures sent messages for assertions in tests.
type Recorder struct {
	mu   sync.Mutex
	sent []RecordedMail
	Err  error // returned from Send when set
}

type RecordedMail struct {
	To      string
	Subject string
	Body    string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (m *Recorder) Send(_ context.Context, to, subject, htmlBody string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.sent = append(m.sent, RecordedMail{To: to, Subject: subject, Body: htmlBody})
	m.mu.Unlock()
	return nil
}

func (m *Recorder) Sent() []RecordedMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedMail, len(m.sent))
	copy(out, m.sent)
	return out
}

package servicetest

import "sync"

// SentMail records one dispatched message.
type SentMail struct {
	To          string
	Subject     string
	TemplateKey string
	Data        map[string]string
}

// MailRecorder implements mailer.Dispatcher and records messages instead of
// delivering them.
type MailRecorder struct {
	mu   sync.Mutex
	sent []SentMail
}

func (m *MailRecorder) Send(toAddress, subject, templateKey string, data map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMail{To: toAddress, Subject: subject, TemplateKey: templateKey, Data: data})
}

// Sent returns a copy of everything recorded so far.
func (m *MailRecorder) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

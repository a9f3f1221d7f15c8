// Package mailer provides outbound email dispatch.
// This file defines the dispatcher interface; implementations live in their
// own files. Delivery is best-effort: the triggering operation never fails
// because a mail could not be sent.
package mailer

// Dispatcher abstracts outbound notification mail.
// Services depend on this interface, never on a concrete transport.
type Dispatcher interface {
	// Send queues one message. templateKey selects the body template,
	// data fills its placeholders. Always returns immediately; delivery
	// failures are logged, never surfaced.
	Send(toAddress, subject, templateKey string, data map[string]string)
}

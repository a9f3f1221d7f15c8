package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"gather_server/internal/config"
	"gather_server/pkg/constants"

	"go.uber.org/zap"
)

// Template keys used by the invitation flows.
const (
	TemplateFriendInvitation = "friend-invitation"
	TemplateEventInvitation  = "event-invitation"
)

// Body templates, filled by simple placeholder substitution. Placeholders
// use {{key}} form against the data map.
var templates = map[string]string{
	TemplateFriendInvitation: "Hi {{targetName}},\n\n{{senderName}} wants to add you as a friend on {{appName}}.\nLog in to answer the request.\n",
	TemplateEventInvitation:  "Hi {{targetName}},\n\n{{organizerName}} invited you to \"{{eventName}}\" on {{eventDate}}.\nLog in to accept or decline.\n",
}

// smtpDispatcher delivers queued mail over SMTP with a background worker.
type smtpDispatcher struct {
	cfg     config.MailConfig
	appName string
	queue   chan outboundMail
}

type outboundMail struct {
	to       string
	subject  string
	template string
	data     map[string]string
}

var _ Dispatcher = (*smtpDispatcher)(nil)

// mockDispatcher logs instead of delivering; used when no SMTP host is
// configured so local development works without a mail server.
type mockDispatcher struct{}

func (mockDispatcher) Send(toAddress, subject, templateKey string, data map[string]string) {
	zap.L().Info("[MockMail] outbound mail",
		zap.String("to", toAddress),
		zap.String("subject", subject),
		zap.String("template", templateKey),
	)
}

// New builds the dispatcher from MailConfig and starts its worker.
func New(cfg config.MailConfig, appName string) Dispatcher {
	if strings.TrimSpace(cfg.Host) == "" {
		zap.L().Warn("mail host not configured, using mock dispatcher")
		return mockDispatcher{}
	}

	d := &smtpDispatcher{
		cfg:     cfg,
		appName: appName,
		queue:   make(chan outboundMail, constants.MAIL_QUEUE_SIZE),
	}
	go d.worker()
	return d
}

// Send queues the message. When the queue is full the mail is dropped with a
// log entry; notification mail is best-effort and must not block requests.
func (d *smtpDispatcher) Send(toAddress, subject, templateKey string, data map[string]string) {
	select {
	case d.queue <- outboundMail{to: toAddress, subject: subject, template: templateKey, data: data}:
	default:
		zap.L().Warn("mail queue full, dropping message",
			zap.String("to", toAddress),
			zap.String("template", templateKey),
		)
	}
}

func (d *smtpDispatcher) worker() {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("mail worker panic", zap.Any("recover", r))
			go d.worker()
		}
	}()

	for m := range d.queue {
		if err := d.deliver(m); err != nil {
			zap.L().Error("mail delivery failed",
				zap.String("to", m.to),
				zap.String("template", m.template),
				zap.Error(err),
			)
		}
	}
}

// renderTemplate fills the template's placeholders from data.
func renderTemplate(templateKey string, data map[string]string) (string, error) {
	body, ok := templates[templateKey]
	if !ok {
		return "", fmt.Errorf("unknown mail template %q", templateKey)
	}
	for key, value := range data {
		body = strings.ReplaceAll(body, "{{"+key+"}}", value)
	}
	return body, nil
}

func (d *smtpDispatcher) deliver(m outboundMail) error {
	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data["appName"] = d.appName
	body, err := renderTemplate(m.template, m.data)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		d.cfg.From, m.to, m.subject, body)

	addr := fmt.Sprintf("%s:%d", d.cfg.Host, d.cfg.Port)
	var auth smtp.Auth
	if d.cfg.Username != "" {
		auth = smtp.PlainAuth("", d.cfg.Username, d.cfg.Password, d.cfg.Host)
	}
	return smtp.SendMail(addr, auth, d.cfg.From, []string{m.to}, []byte(msg))
}

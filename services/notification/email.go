package notification

import (
	"fmt"
	"net/smtp"
	"strings"
)

// EmailSender delivers a plain-text message.
type EmailSender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends email via unauthenticated SMTP (relay- and
// Mailpit-compatible).
type SMTPSender struct {
	addr string
	from string
}

// NewSMTPSender builds a sender for the given host/port.
func NewSMTPSender(host, port, from string) *SMTPSender {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@barberbook.local"
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", host, port),
		from: from,
	}
}

// Send delivers one message.
func (s *SMTPSender) Send(to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	return smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}

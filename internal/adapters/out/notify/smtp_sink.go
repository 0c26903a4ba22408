// Package notify delivers operational alerts over email. It backs the
// NotificationSink port used for low-stock warnings.
package notify

import (
	"context"

	"gopkg.in/gomail.v2"
)

const alertSubject = "Storefront inventory alert"

// SMTPSink sends alert messages through an SMTP relay using gomail. Sends are
// best-effort: callers log failures and move on.
type SMTPSink struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

// NewSMTPSink creates a sink for the given relay and recipient.
func NewSMTPSink(host string, port int, username, password, from, to string) *SMTPSink {
	return &SMTPSink{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
	}
}

// Send delivers one alert message. gomail dials synchronously and has no
// context support, so cancellation is only checked before the dial.
func (s *SMTPSink) Send(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", alertSubject)
	m.SetBody("text/plain", message)

	dialer := gomail.NewDialer(s.host, s.port, s.username, s.password)
	return dialer.DialAndSend(m)
}

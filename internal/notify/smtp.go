package notify

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
)

const (
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 465
)

// SMTPSender submits mail over implicit TLS with PLAIN auth
type SMTPSender struct {
	Host string
	Port int
}

func NewSMTPSender(host string, port int) *SMTPSender {
	if host == "" {
		host = DefaultSMTPHost
	}
	if port == 0 {
		port = DefaultSMTPPort
	}
	return &SMTPSender{Host: host, Port: port}
}

func (s *SMTPSender) Send(ctx context.Context, creds Credentials, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return errors.Wrap(err, "set sender address")
	}
	if err := m.To(msg.To); err != nil {
		return errors.Wrap(err, "set recipient address")
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	client, err := mail.NewClient(s.Host,
		mail.WithPort(s.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(creds.Sender),
		mail.WithPassword(creds.Password),
	)
	if err != nil {
		return errors.Wrap(err, "create smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return errors.Wrapf(err, "send via %s:%d", s.Host, s.Port)
	}
	return nil
}

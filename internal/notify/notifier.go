package notify

import (
	"context"
	"fmt"

	"github.com/khrees2412/careerpivot/internal/logger"
	"github.com/khrees2412/careerpivot/pkg/models"
	"github.com/pkg/errors"
)

// ErrMissingCredentials means a sender address, sender secret or recipient
// address is not configured.
var ErrMissingCredentials = errors.New("mail credentials not configured")

// NotificationError reports which step of a notification failed
type NotificationError struct {
	Stage string
	Err   error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification %s: %v", e.Stage, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

// Credentials are the mail account and destination
type Credentials struct {
	Sender    string
	Password  string
	Recipient string
}

// CredentialsFunc resolves credentials at send time
type CredentialsFunc func() Credentials

// Message is one plain-text mail
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Sender delivers a message, authenticating as creds.Sender.
type Sender interface {
	Send(ctx context.Context, creds Credentials, msg Message) error
}

// Notifier emails a report of each record to the operator
type Notifier struct {
	creds  CredentialsFunc
	sender Sender
	log    *logger.Logger
}

func New(creds CredentialsFunc, sender Sender, log *logger.Logger) *Notifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{creds: creds, sender: sender, log: log.With("component", "notify")}
}

// Notify sends one report for rec. Failures are returned in the outcome,
// never raised; there is no retry.
func (n *Notifier) Notify(ctx context.Context, rec *models.Record) models.Outcome {
	if err := n.notify(ctx, rec); err != nil {
		n.log.Warn("assessment notification failed", "error", err)
		return models.Failed(err)
	}
	n.log.Info("assessment notification sent", "name", rec.PersonalInfo.Name)
	return models.Succeeded()
}

func (n *Notifier) notify(ctx context.Context, rec *models.Record) error {
	var creds Credentials
	if n.creds != nil {
		creds = n.creds()
	}
	if creds.Sender == "" || creds.Password == "" || creds.Recipient == "" {
		return &NotificationError{Stage: "credentials", Err: ErrMissingCredentials}
	}

	body, err := FormatReport(rec)
	if err != nil {
		return &NotificationError{Stage: "format", Err: err}
	}

	if n.sender == nil {
		return &NotificationError{Stage: "send", Err: errors.New("no sender configured")}
	}
	msg := Message{
		From:    creds.Sender,
		To:      creds.Recipient,
		Subject: Subject(rec),
		Body:    body,
	}
	if err := n.sender.Send(ctx, creds, msg); err != nil {
		return &NotificationError{Stage: "send", Err: err}
	}
	return nil
}

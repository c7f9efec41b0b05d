package smtp

import (
	"context"
	"fmt"

	"courier-network/internal/entities"
	"courier-network/internal/pkg/config"
	"courier-network/pkg/logger"

	"github.com/wneessen/go-mail"
)

type Mailer struct {
	client sender
	from   string
}

func NewClient(cfg *config.SMTP) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return client, nil
}

func New(client sender, from string) *Mailer {
	return &Mailer{
		client: client,
		from:   from,
	}
}

func (m *Mailer) Send(ctx context.Context, email entities.Email) error {
	msg, err := BuildMessage(m.from, email)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", email.To, err)
	}
	return nil
}

func BuildMessage(from string, email entities.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("smtp from %q: %w", from, err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, fmt.Errorf("smtp to %q: %w", email.To, err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Body)
	return msg, nil
}

// LogMailer пишет письма в лог, когда SMTP_HOST не задан.
type LogMailer struct {
	log handlerLogger
}

func NewLogMailer(log handlerLogger) *LogMailer {
	return &LogMailer{
		log: log.With(logger.NewField("component", "log-mailer")),
	}
}

func (m *LogMailer) Send(_ context.Context, email entities.Email) error {
	m.log.With(
		logger.NewField("to", email.To),
		logger.NewField("subject", email.Subject),
	).Info("email not sent: smtp is not configured")
	return nil
}

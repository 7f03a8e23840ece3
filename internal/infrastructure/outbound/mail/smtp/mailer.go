package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/config"

	"github.com/wneessen/go-mail"
)

const sendTimeout = 15 * time.Second

type Mailer struct {
	cfg config.Mail
	log ports.Logger
}

func NewMailer(cfg config.Mail, log ports.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

func (m *Mailer) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTimeout(sendTimeout),
	}
	if m.cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}
	return opts
}

func buildMessage(msg *model.EmailMessage) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", msg.From, err)
	}
	if err := out.To(msg.To...); err != nil {
		return nil, fmt.Errorf("invalid recipients: %w", err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Body)
	return out, nil
}

// Send delivers the message in a single SMTP session. There is no retry.
func (m *Mailer) Send(ctx context.Context, msg *model.EmailMessage) error {
	out, err := buildMessage(msg)
	if err != nil {
		m.log.Error("Failed to build mail message", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", custom_errors.ErrMailSendFailed, err)
	}

	client, err := mail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		m.log.Error("Failed to create SMTP client", slog.String("host", m.cfg.Host), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", custom_errors.ErrMailSendFailed, err)
	}

	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		m.log.Error("Failed to send mail",
			slog.String("host", m.cfg.Host),
			slog.Int("port", m.cfg.Port),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", custom_errors.ErrMailSendFailed, err)
	}

	m.log.Info("Mail sent", slog.Any("to", msg.To), slog.String("subject", msg.Subject))
	return nil
}

package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

// Mailer writes messages to an io.Writer instead of delivering them.
// It is the development default.
type Mailer struct {
	mu  sync.Mutex
	out io.Writer
	log ports.Logger
}

func NewMailer(out io.Writer, log ports.Logger) *Mailer {
	return &Mailer{out: out, log: log}
}

func (m *Mailer) Send(ctx context.Context, msg *model.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := fmt.Fprintf(m.out,
		"From: %s\nTo: %s\nSubject: %s\n\n%s\n%s\n",
		msg.From,
		strings.Join(msg.To, ", "),
		msg.Subject,
		msg.Body,
		strings.Repeat("-", 72),
	)
	if err != nil {
		m.log.Error("Failed to write mail to console", slog.String("error", err.Error()))
		return fmt.Errorf("failed to write mail: %w", err)
	}

	m.log.Debug("Mail written to console", slog.Any("to", msg.To))
	return nil
}

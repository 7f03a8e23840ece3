package console

import (
	"bytes"
	"context"
	"testing"

	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailer_Send(t *testing.T) {
	var buf bytes.Buffer
	mailer := NewMailer(&buf, logger.New("test"))

	err := mailer.Send(context.Background(), &model.EmailMessage{
		From:    "blog@example.com",
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Ann recommends you read Hello",
		Body:    "Read Hello at http://localhost/blog/2024/3/7/hello/",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "From: blog@example.com\n")
	assert.Contains(t, out, "To: a@example.com, b@example.com\n")
	assert.Contains(t, out, "Subject: Ann recommends you read Hello\n\n")
	assert.Contains(t, out, "Read Hello at http://localhost/blog/2024/3/7/hello/\n")
}

func TestMailer_SendCanceled(t *testing.T) {
	var buf bytes.Buffer
	mailer := NewMailer(&buf, logger.New("test"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.Send(ctx, &model.EmailMessage{From: "blog@example.com", To: []string{"a@example.com"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

package ports

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Mailer --dir . --output ../../../../mocks/mail --outpkg mocks --filename Mailer.go
type Mailer interface {
	Send(ctx context.Context, msg *model.EmailMessage) error
}

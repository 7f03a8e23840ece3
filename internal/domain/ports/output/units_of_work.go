package ports

import (
	"context"

	comment_repository "blog-service/internal/domain/ports/output/comment"
	post_repository "blog-service/internal/domain/ports/output/post"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../mocks/uow --outpkg mocks --filename UnitOfWork.go
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

//go:generate mockery --name Transaction --dir . --output ../../../../mocks/uow --outpkg mocks --filename Transaction.go
type Transaction interface {
	PostRepository() post_repository.Repository
	CommentRepository() comment_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

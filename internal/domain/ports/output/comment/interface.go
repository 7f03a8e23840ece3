package comment_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

type Repository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	ListActiveByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}

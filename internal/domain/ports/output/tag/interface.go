package tag_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

type Repository interface {
	GetBySlug(ctx context.Context, slug string) (*model.Tag, error)
	FindByPost(ctx context.Context, postID int64) ([]*model.Tag, error)
}

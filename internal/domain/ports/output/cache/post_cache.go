package cache

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name PostCache --dir . --output ../../../../../mocks/cache --outpkg mocks --filename PostCache.go
type PostCache interface {
	GetPostDetail(ctx context.Context, key model.PostKey) (*model.PostDetail, error)
	SetPostDetail(ctx context.Context, key model.PostKey, detail *model.PostDetail) error
	DeletePostDetail(ctx context.Context, key model.PostKey) error
}

package post_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

// Repository reads published posts. Every method filters on
// status = published and publish <= now; drafts and scheduled posts never leave it.
type Repository interface {
	ListPublished(ctx context.Context, filters model.PostFilters) ([]*model.Post, error)
	CountPublished(ctx context.Context, filters model.PostFilters) (int, error)
	GetPublishedByID(ctx context.Context, id int64) (*model.Post, error)
	GetPublishedByIDs(ctx context.Context, ids []int64) ([]*model.Post, error)
	GetPublishedByKey(ctx context.Context, key model.PostKey) (*model.Post, error)
	ListSimilar(ctx context.Context, postID int64, limit int) ([]*model.SimilarPost, error)
	Search(ctx context.Context, query string) ([]*model.Post, error)
}

package post_service

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/post --outpkg mocks --filename Service.go
type Service interface {
	ListPosts(ctx context.Context, tagSlug string, page string) (*model.PostList, error)
	GetPostDetail(ctx context.Context, key model.PostKey) (*model.PostDetail, error)
	SharePost(ctx context.Context, postID int64, form *model.EmailPostForm, baseURL string) (*model.PostShare, error)
	AddComment(ctx context.Context, postID int64, form *model.CommentForm) (*model.CommentResult, error)
	Search(ctx context.Context, query *string) (*model.SearchResult, error)
}

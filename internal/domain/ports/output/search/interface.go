package search

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Searcher --dir . --output ../../../../../mocks/search --outpkg mocks --filename Searcher.go

// Searcher runs a full-text query over the title and body of published posts
// and returns them best match first.
type Searcher interface {
	Search(ctx context.Context, query string) ([]*model.Post, error)
}

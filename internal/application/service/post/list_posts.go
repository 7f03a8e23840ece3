package post_service

import (
	"context"
	"errors"
	"log/slog"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
)

// ListPosts returns one page of published posts, newest first, optionally
// restricted to a tag. Bad page values never fail: see model.ResolvePage.
func (s *PostService) ListPosts(ctx context.Context, tagSlug string, page string) (*model.PostList, error) {
	var filters model.PostFilters
	var tag *model.Tag

	if tagSlug != "" {
		found, err := s.tagRepo.GetBySlug(ctx, tagSlug)
		if err != nil {
			s.metrics.IncrementPostOperations("list", false)
			if errors.Is(err, custom_errors.ErrTagNotFound) {
				s.log.Debug("Tag not found for listing", slog.String("tag_slug", tagSlug))
				return nil, custom_errors.ErrTagNotFound
			}
			s.log.Error("Failed to get tag for listing", slog.String("tag_slug", tagSlug), slog.String("error", err.Error()))
			return nil, err
		}
		tag = found
		filters.TagID = &found.ID
	}

	count, err := s.postRepo.CountPublished(ctx, filters)
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		s.log.Error("Failed to count published posts", slog.String("error", err.Error()))
		return nil, err
	}

	current := model.ResolvePage(page, count, s.settings.PageSize)
	limit, offset := current.PerPage, current.Offset()
	filters.Limit = &limit
	filters.Offset = &offset

	posts, err := s.postRepo.ListPublished(ctx, filters)
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		s.log.Error("Failed to list published posts", slog.String("error", err.Error()))
		return nil, err
	}
	current.Posts = posts

	s.metrics.IncrementPostOperations("list", true)
	s.log.Debug("Listed posts",
		slog.String("tag_slug", tagSlug),
		slog.Int("page", current.Number),
		slog.Int("num_pages", current.NumPages),
		slog.Int("count", count))
	return &model.PostList{Page: &current, Tag: tag}, nil
}

package post_service

import (
	"context"
	"errors"
	"log/slog"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
)

func (s *PostService) GetPostDetail(ctx context.Context, key model.PostKey) (*model.PostDetail, error) {
	post, err := s.postRepo.GetPublishedByKey(ctx, key)
	if err != nil {
		s.metrics.IncrementPostOperations("detail", false)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.String("key", key.String()))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post by key", slog.String("key", key.String()), slog.String("error", err.Error()))
		return nil, err
	}

	tags, err := s.tagRepo.FindByPost(ctx, post.ID)
	if err != nil {
		s.metrics.IncrementPostOperations("detail", false)
		s.log.Error("Failed to get post tags", slog.Int64("post_id", post.ID), slog.String("error", err.Error()))
		return nil, err
	}

	comments, err := s.commentRepo.ListActiveByPost(ctx, post.ID)
	if err != nil {
		s.metrics.IncrementPostOperations("detail", false)
		s.log.Error("Failed to get post comments", slog.Int64("post_id", post.ID), slog.String("error", err.Error()))
		return nil, err
	}

	similar, err := s.postRepo.ListSimilar(ctx, post.ID, s.settings.SimilarLimit)
	if err != nil {
		s.metrics.IncrementPostOperations("detail", false)
		s.log.Error("Failed to get similar posts", slog.Int64("post_id", post.ID), slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("detail", true)
	return &model.PostDetail{
		Post:         post,
		Tags:         tags,
		Comments:     comments,
		Form:         &model.CommentForm{},
		SimilarPosts: similar,
	}, nil
}

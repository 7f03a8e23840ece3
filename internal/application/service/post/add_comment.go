package post_service

import (
	"context"
	"errors"
	"log/slog"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/validation"
)

func (s *PostService) AddComment(ctx context.Context, postID int64, form *model.CommentForm) (*model.CommentResult, error) {
	post, err := s.publishedPost(ctx, postID)
	if err != nil {
		s.metrics.IncrementCommentOperations("create", false)
		return nil, err
	}

	if form == nil {
		form = &model.CommentForm{}
	}
	form.Bound = true
	form.Clean()
	form.Errors = validation.FormErrors(s.validate.Struct(form))
	if !form.IsValid() {
		s.log.Debug("Comment form invalid", slog.Int64("post_id", postID), slog.Int("errors", len(form.Errors)))
		return &model.CommentResult{Post: post, Form: form}, nil
	}

	comment, err := s.createComment(ctx, &model.Comment{
		PostID: post.ID,
		Name:   form.Name,
		Email:  form.Email,
		Body:   form.Body,
	})
	if err != nil {
		s.metrics.IncrementCommentOperations("create", false)
		return nil, err
	}

	s.metrics.IncrementCommentOperations("create", true)
	s.log.Info("Comment created", slog.Int64("post_id", post.ID), slog.Int64("comment_id", comment.ID))
	return &model.CommentResult{Post: post, Form: form, Comment: comment}, nil
}

// createComment inserts the comment in a transaction that first re-reads the
// post, so a post unpublished in the meantime cannot gain comments.
func (s *PostService) createComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrTransactionFailed
	}

	var committed bool
	defer func() {
		if committed {
			return
		}
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
		}
	}()

	if _, err := tx.PostRepository().GetPublishedByID(ctx, comment.PostID); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post unpublished before comment was stored", slog.Int64("post_id", comment.PostID))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to re-check post in transaction", slog.Int64("post_id", comment.PostID), slog.String("error", err.Error()))
		return nil, err
	}

	created, err := tx.CommentRepository().Create(ctx, comment)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to create comment", slog.Int64("post_id", comment.PostID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrCommentCreateFailed
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrTransactionFailed
	}
	committed = true
	return created, nil
}

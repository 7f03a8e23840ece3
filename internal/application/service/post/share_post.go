package post_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/validation"
)

// SharePost renders or processes the "recommend by e-mail" form. A nil form
// means the form was only requested; no mail is sent then or when it is invalid.
func (s *PostService) SharePost(ctx context.Context, postID int64, form *model.EmailPostForm, baseURL string) (*model.PostShare, error) {
	post, err := s.publishedPost(ctx, postID)
	if err != nil {
		s.metrics.IncrementPostOperations("share", false)
		return nil, err
	}

	if form == nil {
		return &model.PostShare{Post: post, Form: &model.EmailPostForm{}}, nil
	}

	form.Bound = true
	form.Clean()
	form.Errors = validation.FormErrors(s.validate.Struct(form))
	if !form.IsValid() {
		s.log.Debug("Share form invalid", slog.Int64("post_id", postID), slog.Int("errors", len(form.Errors)))
		return &model.PostShare{Post: post, Form: form}, nil
	}

	msg := composeShareMessage(post, form, s.settings.MailFrom, baseURL)
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.metrics.IncrementMailsSent(false)
		s.metrics.IncrementPostOperations("share", false)
		s.log.Error("Failed to send share mail", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		if errors.Is(err, custom_errors.ErrMailSendFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", custom_errors.ErrMailSendFailed, err)
	}

	s.metrics.IncrementMailsSent(true)
	s.metrics.IncrementPostOperations("share", true)
	s.log.Info("Post shared", slog.Int64("post_id", postID), slog.String("to", form.To))
	return &model.PostShare{Post: post, Form: form, Sent: true}, nil
}

func composeShareMessage(post *model.Post, form *model.EmailPostForm, from, baseURL string) *model.EmailMessage {
	postURL := strings.TrimRight(baseURL, "/") + post.AbsoluteURL()
	return &model.EmailMessage{
		From:    from,
		To:      []string{form.To},
		Subject: fmt.Sprintf("%s recommends you read %s", form.Name, post.Title),
		Body:    fmt.Sprintf("Read %s at %s\n\n%s's comments: %s", post.Title, postURL, form.Name, form.Comments),
	}
}

func (s *PostService) publishedPost(ctx context.Context, postID int64) (*model.Post, error) {
	post, err := s.postRepo.GetPublishedByID(ctx, postID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Published post not found", slog.Int64("post_id", postID))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post by id", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, err
	}
	return post, nil
}

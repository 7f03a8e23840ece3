package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

const (
	postDetailKeyPrefix = "blog:post_detail:"
	defaultPostTTL      = 5 * time.Minute
)

type PostCache struct {
	client *Client
	log    ports.Logger
	ttl    time.Duration
}

func NewPostCache(client *Client, log ports.Logger, ttl time.Duration) *PostCache {
	if ttl <= 0 {
		ttl = defaultPostTTL
	}
	return &PostCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (p *PostCache) GetPostDetail(ctx context.Context, key model.PostKey) (*model.PostDetail, error) {
	var detail model.PostDetail
	err := p.client.getJSON(ctx, postDetailKey(key), &detail)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			p.log.Debug("Post detail cache miss", slog.String("key", key.String()))
			return nil, custom_errors.ErrCacheMiss
		}
		p.log.Error("Failed to get post detail from cache",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get post detail from cache: %w", err)
	}

	p.log.Debug("Post detail cache hit", slog.String("key", key.String()))
	return &detail, nil
}

func (p *PostCache) SetPostDetail(ctx context.Context, key model.PostKey, detail *model.PostDetail) error {
	if detail == nil || detail.Post == nil {
		return fmt.Errorf("post detail cannot be nil")
	}

	if err := p.client.setJSON(ctx, postDetailKey(key), detail, p.ttl); err != nil {
		p.log.Error("Failed to set post detail cache",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set post detail cache: %w", err)
	}

	p.log.Debug("Post detail cached successfully",
		slog.String("key", key.String()),
		slog.Duration("ttl", p.ttl))
	return nil
}

func (p *PostCache) DeletePostDetail(ctx context.Context, key model.PostKey) error {
	removed, err := p.client.del(ctx, postDetailKey(key))
	if err != nil {
		p.log.Error("Failed to delete post detail from cache",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete post detail from cache: %w", err)
	}

	p.log.Debug("Post detail deleted from cache", slog.String("key", key.String()), slog.Int64("removed", removed))
	return nil
}

func postDetailKey(key model.PostKey) string {
	return postDetailKeyPrefix + key.String()
}

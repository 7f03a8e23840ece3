package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	post_service "blog-service/internal/domain/ports/input/post"
	output "blog-service/internal/domain/ports/output"
	"blog-service/internal/domain/ports/output/cache"
	comment_repository "blog-service/internal/domain/ports/output/comment"
	post_repository "blog-service/internal/domain/ports/output/post"
)

// PostServiceCacheDecorator serves post detail pages from cache and drops the
// cached page when a comment is added to the post. A cached page only saves
// the post lookup: publication is rechecked and comments and similar posts
// are reloaded on every hit.
type PostServiceCacheDecorator struct {
	service     post_service.Service
	postCache   cache.PostCache
	postRepo    post_repository.Repository
	commentRepo comment_repository.Repository
	log         output.Logger
	metrics     output.MetricsProvider
}

func NewPostServiceCacheDecorator(
	service post_service.Service,
	postCache cache.PostCache,
	postRepo post_repository.Repository,
	commentRepo comment_repository.Repository,
	log output.Logger,
	metrics output.MetricsProvider,
) post_service.Service {
	return &PostServiceCacheDecorator{
		service:     service,
		postCache:   postCache,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		log:         log,
		metrics:     metrics,
	}
}

func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, tagSlug string, page string) (*model.PostList, error) {
	return d.service.ListPosts(ctx, tagSlug, page)
}

func (d *PostServiceCacheDecorator) GetPostDetail(ctx context.Context, key model.PostKey) (*model.PostDetail, error) {
	d.log.Debug("Getting post detail with cache decorator", slog.String("key", key.String()))

	cacheStart := time.Now()
	cached, err := d.postCache.GetPostDetail(ctx, key)
	d.metrics.RecordCacheOperationDuration("post_detail_get", time.Since(cacheStart))
	switch {
	case err == nil:
		detail, err := d.refresh(ctx, key, cached)
		if err == nil {
			d.log.Debug("Post detail found in cache", slog.String("key", key.String()))
			d.metrics.IncrementCacheHits()
			return detail, nil
		}
		d.metrics.IncrementCacheMisses()
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			d.log.Debug("Cached post is no longer published", slog.String("key", key.String()))
			d.invalidate(ctx, key)
		} else {
			d.log.Warn("Failed to refresh cached post detail",
				slog.String("key", key.String()),
				slog.String("error", err.Error()))
		}
	case errors.Is(err, custom_errors.ErrCacheMiss):
		d.metrics.IncrementCacheMisses()
	default:
		d.log.Warn("Failed to get post detail from cache",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
	}

	detail, err := d.service.GetPostDetail(ctx, key)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.postCache.SetPostDetail(ctx, key, detail); err != nil {
		d.log.Warn("Failed to cache post detail",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_detail_set", time.Since(setStart))

	return detail, nil
}

// refresh rebuilds a cached detail against storage. It reports
// ErrPostNotFound when the post is gone, unpublished or moved to another key.
func (d *PostServiceCacheDecorator) refresh(ctx context.Context, key model.PostKey, cached *model.PostDetail) (*model.PostDetail, error) {
	if cached.Post == nil {
		return nil, custom_errors.ErrPostNotFound
	}

	post, err := d.postRepo.GetPublishedByID(ctx, cached.Post.ID)
	if err != nil {
		return nil, err
	}
	if post.Key() != key {
		return nil, custom_errors.ErrPostNotFound
	}

	comments, err := d.commentRepo.ListActiveByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(cached.SimilarPosts))
	for _, similar := range cached.SimilarPosts {
		if similar != nil && similar.Post != nil {
			ids = append(ids, similar.ID)
		}
	}
	fresh, err := d.postRepo.GetPublishedByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*model.Post, len(fresh))
	for _, p := range fresh {
		byID[p.ID] = p
	}
	similar := make([]*model.SimilarPost, 0, len(ids))
	for _, s := range cached.SimilarPosts {
		if s == nil || s.Post == nil {
			continue
		}
		if p, ok := byID[s.ID]; ok {
			similar = append(similar, &model.SimilarPost{Post: p, SameTags: s.SameTags})
		}
	}

	return &model.PostDetail{
		Post:         post,
		Tags:         cached.Tags,
		Comments:     comments,
		Form:         &model.CommentForm{},
		SimilarPosts: similar,
	}, nil
}

func (d *PostServiceCacheDecorator) invalidate(ctx context.Context, key model.PostKey) {
	start := time.Now()
	if err := d.postCache.DeletePostDetail(ctx, key); err != nil {
		d.log.Warn("Failed to invalidate post detail cache",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_detail_delete", time.Since(start))
}

func (d *PostServiceCacheDecorator) SharePost(ctx context.Context, postID int64, form *model.EmailPostForm, baseURL string) (*model.PostShare, error) {
	return d.service.SharePost(ctx, postID, form, baseURL)
}

func (d *PostServiceCacheDecorator) AddComment(ctx context.Context, postID int64, form *model.CommentForm) (*model.CommentResult, error) {
	result, err := d.service.AddComment(ctx, postID, form)
	if err != nil {
		return nil, err
	}
	if result.Comment == nil || result.Post == nil {
		return result, nil
	}

	d.invalidate(ctx, result.Post.Key())
	return result, nil
}

func (d *PostServiceCacheDecorator) Search(ctx context.Context, query *string) (*model.SearchResult, error) {
	return d.service.Search(ctx, query)
}

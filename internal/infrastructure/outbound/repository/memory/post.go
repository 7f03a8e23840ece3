package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type PostRepository struct {
	log   ports.Logger
	store *Store
}

func NewPostRepository(store *Store, log ports.Logger) *PostRepository {
	return &PostRepository{store: store, log: log}
}

func newestFirst(posts []*model.Post) {
	sort.Slice(posts, func(i, j int) bool {
		a, b := posts[i].Publish.Time, posts[j].Publish.Time
		if a.Equal(b) {
			return posts[i].ID > posts[j].ID
		}
		return a.After(b)
	})
}

func (p *PostRepository) filtered(filters model.PostFilters) []*model.Post {
	now := p.store.now()
	result := make([]*model.Post, 0)
	for _, post := range p.store.posts {
		if !post.IsPublished(now) {
			continue
		}
		if filters.TagID != nil && !p.store.hasTag(post.ID, *filters.TagID) {
			continue
		}
		postCopy := *post
		result = append(result, &postCopy)
	}
	newestFirst(result)
	return result
}

func (p *PostRepository) ListPublished(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	result := p.filtered(filters)
	if filters.Offset != nil {
		if *filters.Offset >= len(result) {
			return []*model.Post{}, nil
		}
		result = result[*filters.Offset:]
	}
	if filters.Limit != nil && *filters.Limit < len(result) {
		result = result[:*filters.Limit]
	}
	return result, nil
}

func (p *PostRepository) CountPublished(ctx context.Context, filters model.PostFilters) (int, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()
	return len(p.filtered(filters)), nil
}

func (p *PostRepository) GetPublishedByID(ctx context.Context, id int64) (*model.Post, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	post, ok := p.store.publishedPost(id)
	if !ok {
		p.log.Debug("Published post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}
	result := *post
	return &result, nil
}

// ListAll returns copies of every stored post, drafts and scheduled ones included, ordered by id.
func (p *PostRepository) ListAll(ctx context.Context) ([]*model.Post, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	result := make([]*model.Post, 0, len(p.store.posts))
	for _, post := range p.store.posts {
		postCopy := *post
		result = append(result, &postCopy)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (p *PostRepository) GetPublishedByIDs(ctx context.Context, ids []int64) ([]*model.Post, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	result := make([]*model.Post, 0, len(ids))
	for _, id := range ids {
		if post, ok := p.store.publishedPost(id); ok {
			postCopy := *post
			result = append(result, &postCopy)
		}
	}
	return result, nil
}

func (p *PostRepository) GetPublishedByKey(ctx context.Context, key model.PostKey) (*model.Post, error) {
	start, end, ok := key.DayRange()
	if !ok {
		return nil, custom_errors.ErrPostNotFound
	}

	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	var match *model.Post
	matches := 0
	now := p.store.now()
	for _, post := range p.store.posts {
		if post.Slug != key.Slug || !post.IsPublished(now) {
			continue
		}
		publish := post.Publish.Time
		if publish.Before(start) || !publish.Before(end) {
			continue
		}
		match = post
		matches++
	}

	if matches != 1 {
		p.log.Debug("Published post not found by key", slog.String("key", key.String()), slog.Int("matches", matches))
		return nil, custom_errors.ErrPostNotFound
	}
	result := *match
	return &result, nil
}

func (p *PostRepository) ListSimilar(ctx context.Context, postID int64, limit int) ([]*model.SimilarPost, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	tagIDs := p.store.postTags[postID]
	now := p.store.now()
	similar := make([]*model.SimilarPost, 0)
	for _, post := range p.store.posts {
		if post.ID == postID || !post.IsPublished(now) {
			continue
		}
		same := 0
		for _, tagID := range tagIDs {
			if p.store.hasTag(post.ID, tagID) {
				same++
			}
		}
		if same == 0 {
			continue
		}
		postCopy := *post
		similar = append(similar, &model.SimilarPost{Post: &postCopy, SameTags: same})
	}

	sort.Slice(similar, func(i, j int) bool {
		if similar[i].SameTags != similar[j].SameTags {
			return similar[i].SameTags > similar[j].SameTags
		}
		a, b := similar[i].Publish.Time, similar[j].Publish.Time
		if a.Equal(b) {
			return similar[i].ID > similar[j].ID
		}
		return a.After(b)
	})
	if limit >= 0 && len(similar) > limit {
		similar = similar[:limit]
	}
	return similar, nil
}

// Search matches posts whose title or body contains every query term,
// ranked by total term occurrences and then by publish date.
func (p *PostRepository) Search(ctx context.Context, query string) ([]*model.Post, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return []*model.Post{}, nil
	}

	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	type hit struct {
		post *model.Post
		rank int
	}
	hits := make([]hit, 0)
	for _, post := range p.filtered(model.PostFilters{}) {
		text := strings.ToLower(post.Title + " " + post.Body)
		rank := 0
		for _, term := range terms {
			n := strings.Count(text, term)
			if n == 0 {
				rank = 0
				break
			}
			rank += n
		}
		if rank > 0 {
			hits = append(hits, hit{post: post, rank: rank})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].rank > hits[j].rank
	})
	result := make([]*model.Post, 0, len(hits))
	for _, h := range hits {
		result = append(result, h.post)
	}
	return result, nil
}

package memory

import (
	"context"
	"log/slog"
	"sort"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type TagRepository struct {
	log   ports.Logger
	store *Store
}

func NewTagRepository(store *Store, log ports.Logger) *TagRepository {
	return &TagRepository{store: store, log: log}
}

func (t *TagRepository) GetBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	for _, tag := range t.store.tags {
		if tag.Slug == slug {
			result := *tag
			return &result, nil
		}
	}
	t.log.Debug("Tag not found by slug", slog.String("slug", slug))
	return nil, custom_errors.ErrTagNotFound
}

func (t *TagRepository) FindByPost(ctx context.Context, postID int64) ([]*model.Tag, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	tags := make([]*model.Tag, 0)
	for _, id := range t.store.postTags[postID] {
		if tag, ok := t.store.tags[id]; ok {
			tagCopy := *tag
			tags = append(tags, &tagCopy)
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
	return tags, nil
}

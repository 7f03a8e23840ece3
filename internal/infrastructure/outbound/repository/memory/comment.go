package memory

import (
	"context"
	"log/slog"
	"sort"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type CommentRepository struct {
	log   ports.Logger
	store *Store
}

func NewCommentRepository(store *Store, log ports.Logger) *CommentRepository {
	return &CommentRepository{store: store, log: log}
}

// Create stores a new active comment. Unknown posts are rejected like a
// foreign key violation would be.
func (c *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if _, ok := c.store.posts[comment.PostID]; !ok {
		c.log.Debug("Comment references missing post", slog.Int64("post_id", comment.PostID))
		return nil, custom_errors.ErrPostNotFound
	}

	created := *comment
	created.Active = true
	created.CreatedAt.Valid = false
	created.UpdatedAt.Valid = false
	return c.store.insertComment(created), nil
}

func (c *CommentRepository) ListActiveByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	comments := make([]*model.Comment, 0)
	for _, comment := range c.store.comments {
		if comment.PostID == postID && comment.Active {
			commentCopy := *comment
			comments = append(comments, &commentCopy)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		a, b := comments[i].CreatedAt.Time, comments[j].CreatedAt.Time
		if a.Equal(b) {
			return comments[i].ID < comments[j].ID
		}
		return a.Before(b)
	})
	return comments, nil
}

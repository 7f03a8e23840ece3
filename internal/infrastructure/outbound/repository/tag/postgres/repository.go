package tag_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
)

type TagRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewTagRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *TagRepository {
	return &TagRepository{db: db, log: log, metrics: metrics}
}

func (t *TagRepository) GetBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	start := time.Now()
	query := `SELECT id, name, slug FROM tags WHERE slug = @slug`
	args := pgx.NamedArgs{"slug": slug}

	var tag model.Tag
	err := t.db.QueryRow(ctx, query, args).Scan(&tag.ID, &tag.Name, &tag.Slug)
	t.metrics.RecordDatabaseQueryDuration("tag_get_by_slug", time.Since(start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			t.metrics.IncrementDatabaseQueries("tag_get_by_slug", true)
			t.log.Debug("Tag not found by slug", slog.String("slug", slug))
			return nil, custom_errors.ErrTagNotFound
		}
		t.metrics.IncrementDatabaseQueries("tag_get_by_slug", false)
		t.log.Error("Error getting tag by slug", slog.String("slug", slug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrTagQueryFailed
	}
	t.metrics.IncrementDatabaseQueries("tag_get_by_slug", true)
	return &tag, nil
}

func (t *TagRepository) FindByPost(ctx context.Context, postID int64) ([]*model.Tag, error) {
	start := time.Now()
	query := `
		SELECT t.id, t.name, t.slug
		FROM tags t
		INNER JOIN posts_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = @post_id
		ORDER BY t.name`

	args := pgx.NamedArgs{"post_id": postID}

	rows, err := t.db.Query(ctx, query, args)
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_find_by_post", false)
		t.metrics.RecordDatabaseQueryDuration("tag_find_by_post", time.Since(start))
		t.log.Error("Error finding tags by post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrTagQueryFailed
	}
	defer rows.Close()

	tags := make([]*model.Tag, 0)
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug); err != nil {
			t.metrics.IncrementDatabaseQueries("tag_find_by_post", false)
			t.log.Error("Error scanning tag row", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		t.metrics.IncrementDatabaseQueries("tag_find_by_post", false)
		t.log.Error("Error iterating tag rows", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrTagQueryFailed
	}

	t.metrics.IncrementDatabaseQueries("tag_find_by_post", true)
	t.metrics.RecordDatabaseQueryDuration("tag_find_by_post", time.Since(start))
	return tags, nil
}

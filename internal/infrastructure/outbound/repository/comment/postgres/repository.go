package comment_repository_postgres

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
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

type CommentRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewCommentRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *CommentRepository {
	return &CommentRepository{db: db, log: log, metrics: metrics}
}

// Create inserts the comment and returns the stored row. The active flag is
// left to the column default.
func (c *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	start := time.Now()
	c.log.Debug("Creating comment", slog.Int64("post_id", comment.PostID), slog.String("name", comment.Name))

	query := `
		INSERT INTO comments (post_id, name, email, body)
		VALUES (@post_id, @name, @email, @body)
		RETURNING id, post_id, name, email, body, active, created_at, updated_at`

	args := pgx.NamedArgs{
		"post_id": comment.PostID,
		"name":    comment.Name,
		"email":   comment.Email,
		"body":    comment.Body,
	}

	var created model.Comment
	err := c.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.PostID,
		&created.Name,
		&created.Email,
		&created.Body,
		&created.Active,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	c.metrics.RecordDatabaseQueryDuration("comment_create", time.Since(start))
	if err != nil {
		c.metrics.IncrementDatabaseQueries("comment_create", false)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			c.log.Debug("Comment references missing post", slog.Int64("post_id", comment.PostID))
			return nil, custom_errors.ErrPostNotFound
		}
		c.log.Error("Error creating comment", slog.Int64("post_id", comment.PostID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrCommentCreateFailed
	}

	c.metrics.IncrementDatabaseQueries("comment_create", true)
	c.log.Debug("Comment created", slog.Int64("id", created.ID), slog.Int64("post_id", created.PostID))
	return &created, nil
}

func (c *CommentRepository) ListActiveByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	start := time.Now()
	query := `
		SELECT id, post_id, name, email, body, active, created_at, updated_at
		FROM comments
		WHERE post_id = @post_id AND active
		ORDER BY created_at ASC, id ASC`

	args := pgx.NamedArgs{"post_id": postID}

	rows, err := c.db.Query(ctx, query, args)
	if err != nil {
		c.metrics.IncrementDatabaseQueries("comment_list_active", false)
		c.metrics.RecordDatabaseQueryDuration("comment_list_active", time.Since(start))
		c.log.Error("Error listing comments", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrCommentQueryFailed
	}
	defer rows.Close()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		var comment model.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.Name,
			&comment.Email,
			&comment.Body,
			&comment.Active,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		)
		if err != nil {
			c.metrics.IncrementDatabaseQueries("comment_list_active", false)
			c.log.Error("Error scanning comment row", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		c.metrics.IncrementDatabaseQueries("comment_list_active", false)
		c.log.Error("Error iterating comment rows", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrCommentQueryFailed
	}

	c.metrics.IncrementDatabaseQueries("comment_list_active", true)
	c.metrics.RecordDatabaseQueryDuration("comment_list_active", time.Since(start))
	return comments, nil
}

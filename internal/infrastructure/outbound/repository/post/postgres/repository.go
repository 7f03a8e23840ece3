package post_repository_postgres

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

const (
	postColumns = `p.id, p.author_id, p.title, p.slug, p.body, p.publish, p.status, p.created_at, p.updated_at`

	// publishedCondition guards every read: drafts and scheduled posts stay invisible.
	publishedCondition = `p.status = 'published' AND p.publish <= now()`
)

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*model.Post, error) {
	var post model.Post
	var status string
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Slug,
		&post.Body,
		&post.Publish,
		&status,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	post.Status = model.PostStatus(status)
	return &post, nil
}

func (p *PostRepository) observe(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func (p *PostRepository) collect(rows pgx.Rows, queryType string) ([]*model.Post, error) {
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.log.Error("Error scanning post", slog.String("query", queryType), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		p.log.Error("Error iterating post rows", slog.String("query", queryType), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return posts, nil
}

func filterClause(filters model.PostFilters, args pgx.NamedArgs) string {
	where := " WHERE " + publishedCondition
	if filters.TagID != nil {
		where += ` AND EXISTS (SELECT 1 FROM posts_tags pt WHERE pt.post_id = p.id AND pt.tag_id = @tag_id)`
		args["tag_id"] = *filters.TagID
	}
	return where
}

func (p *PostRepository) ListPublished(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{}

	query := `SELECT ` + postColumns + ` FROM posts p` + filterClause(filters, args) +
		` ORDER BY p.publish DESC, p.id DESC`
	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.observe("post_list_published", start, false)
		p.log.Error("Error listing published posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	posts, err := p.collect(rows, "post_list_published")
	p.observe("post_list_published", start, err == nil)
	if err != nil {
		return nil, err
	}
	p.log.Debug("Listed published posts", slog.Int("count", len(posts)))
	return posts, nil
}

func (p *PostRepository) CountPublished(ctx context.Context, filters model.PostFilters) (int, error) {
	start := time.Now()
	args := pgx.NamedArgs{}
	query := `SELECT COUNT(*) FROM posts p` + filterClause(filters, args)

	var count int
	if err := p.db.QueryRow(ctx, query, args).Scan(&count); err != nil {
		p.observe("post_count_published", start, false)
		p.log.Error("Error counting published posts", slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}
	p.observe("post_count_published", start, true)
	return count, nil
}

func (p *PostRepository) GetPublishedByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting published post by ID", slog.Int64("id", id))

	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = @id AND ` + publishedCondition

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.observe("post_get_by_id", start, true)
			p.log.Debug("Published post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.observe("post_get_by_id", start, false)
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	p.observe("post_get_by_id", start, true)
	return post, nil
}

// ListAll returns every stored post whatever its status or publish date. It
// feeds search indexes, which filter on publication at query time.
func (p *PostRepository) ListAll(ctx context.Context) ([]*model.Post, error) {
	start := time.Now()
	rows, err := p.db.Query(ctx, `SELECT `+postColumns+` FROM posts p ORDER BY p.id`)
	if err != nil {
		p.observe("post_list_all", start, false)
		p.log.Error("Error listing all posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	posts, err := p.collect(rows, "post_list_all")
	p.observe("post_list_all", start, err == nil)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPublishedByIDs returns the published subset of ids in the order the ids were given.
func (p *PostRepository) GetPublishedByIDs(ctx context.Context, ids []int64) ([]*model.Post, error) {
	if len(ids) == 0 {
		return []*model.Post{}, nil
	}
	start := time.Now()

	args := pgx.NamedArgs{"ids": ids}
	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = ANY(@ids) AND ` + publishedCondition

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.observe("post_get_by_ids", start, false)
		p.log.Error("Error getting posts by ids", slog.Int("ids", len(ids)), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	found, err := p.collect(rows, "post_get_by_ids")
	p.observe("post_get_by_ids", start, err == nil)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Post, len(found))
	for _, post := range found {
		byID[post.ID] = post
	}
	posts := make([]*model.Post, 0, len(found))
	for _, id := range ids {
		if post, ok := byID[id]; ok {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// GetPublishedByKey finds the single published post with the slug on the given
// UTC date. No match and an ambiguous match both count as not found.
func (p *PostRepository) GetPublishedByKey(ctx context.Context, key model.PostKey) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting published post by key", slog.String("key", key.String()))

	dayStart, dayEnd, ok := key.DayRange()
	if !ok {
		return nil, custom_errors.ErrPostNotFound
	}

	args := pgx.NamedArgs{
		"slug":      key.Slug,
		"day_start": dayStart,
		"day_end":   dayEnd,
	}
	query := `SELECT ` + postColumns + ` FROM posts p
		WHERE p.slug = @slug AND p.publish >= @day_start AND p.publish < @day_end AND ` + publishedCondition + `
		LIMIT 2`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.observe("post_get_by_key", start, false)
		p.log.Error("Error getting post by key", slog.String("key", key.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	posts, err := p.collect(rows, "post_get_by_key")
	p.observe("post_get_by_key", start, err == nil)
	if err != nil {
		return nil, err
	}

	switch len(posts) {
	case 1:
		return posts[0], nil
	case 0:
		p.log.Debug("Published post not found by key", slog.String("key", key.String()))
	default:
		p.log.Warn("Post key matched more than one published post", slog.String("key", key.String()))
	}
	return nil, custom_errors.ErrPostNotFound
}

// ListSimilar ranks published posts sharing at least one tag with postID by the
// number of shared tags, newest first on ties.
func (p *PostRepository) ListSimilar(ctx context.Context, postID int64, limit int) ([]*model.SimilarPost, error) {
	start := time.Now()

	args := pgx.NamedArgs{"post_id": postID, "limit": limit}
	query := `SELECT ` + postColumns + `, COUNT(pt.tag_id) AS same_tags
		FROM posts p
		JOIN posts_tags pt ON pt.post_id = p.id
		WHERE pt.tag_id IN (SELECT tag_id FROM posts_tags WHERE post_id = @post_id)
			AND p.id <> @post_id
			AND ` + publishedCondition + `
		GROUP BY p.id
		ORDER BY same_tags DESC, p.publish DESC
		LIMIT @limit`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.observe("post_list_similar", start, false)
		p.log.Error("Error listing similar posts", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	similar := make([]*model.SimilarPost, 0, limit)
	for rows.Next() {
		var post model.Post
		var status string
		var sameTags int
		err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Title,
			&post.Slug,
			&post.Body,
			&post.Publish,
			&status,
			&post.CreatedAt,
			&post.UpdatedAt,
			&sameTags,
		)
		if err != nil {
			p.observe("post_list_similar", start, false)
			p.log.Error("Error scanning similar post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		post.Status = model.PostStatus(status)
		similar = append(similar, &model.SimilarPost{Post: &post, SameTags: sameTags})
	}
	if err := rows.Err(); err != nil {
		p.observe("post_list_similar", start, false)
		p.log.Error("Error iterating similar posts", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_list_similar", start, true)
	return similar, nil
}

// Search delegates matching and ranking to Postgres full-text search over the
// generated search_vector column (title weighted above body).
func (p *PostRepository) Search(ctx context.Context, query string) ([]*model.Post, error) {
	start := time.Now()
	p.log.Debug("Searching posts", slog.String("query", query))

	args := pgx.NamedArgs{"query": query}
	sql := `SELECT ` + postColumns + `
		FROM posts p, plainto_tsquery('english', @query) q
		WHERE p.search_vector @@ q AND ` + publishedCondition + `
		ORDER BY ts_rank(p.search_vector, q) DESC, p.publish DESC`

	rows, err := p.db.Query(ctx, sql, args)
	if err != nil {
		p.observe("post_search", start, false)
		p.log.Error("Error searching posts", slog.String("query", query), slog.String("error", err.Error()))
		return nil, custom_errors.ErrSearchFailed
	}
	posts, err := p.collect(rows, "post_search")
	p.observe("post_search", start, err == nil)
	if err != nil {
		return nil, custom_errors.ErrSearchFailed
	}
	return posts, nil
}

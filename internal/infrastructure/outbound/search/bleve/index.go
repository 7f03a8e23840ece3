package search_bleve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
)

const defaultLimit = 50

// PostStore is what the index needs from post storage: every post for
// indexing, and the published subset of a hit list for answering queries.
type PostStore interface {
	ListAll(ctx context.Context) ([]*model.Post, error)
	GetPublishedByIDs(ctx context.Context, ids []int64) ([]*model.Post, error)
}

// Index is a Bleve full-text index over post titles and bodies. Drafts and
// scheduled posts are indexed too; hits are re-read from the post store, so
// a post becomes searchable the moment it is published.
type Index struct {
	index bleve.Index
	posts PostStore
	log   ports.Logger
	limit int
}

type indexedPost struct {
	Title string
	Body  string
	Text  string
}

// Open opens the index at path, creating it when it does not exist yet.
func Open(path string, posts PostStore, log ports.Logger, limit int) (*Index, error) {
	idx, err := bleve.Open(path)
	if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
		idx, err = bleve.New(path, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create index: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	return newIndex(idx, posts, log, limit), nil
}

func NewInMemory(posts PostStore, log ports.Logger, limit int) (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create memory index: %w", err)
	}
	return newIndex(idx, posts, log, limit), nil
}

func newIndex(idx bleve.Index, posts PostStore, log ports.Logger, limit int) *Index {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Index{index: idx, posts: posts, log: log, limit: limit}
}

func buildIndexMapping() mapping.IndexMapping {
	english := bleve.NewTextFieldMapping()
	english.Analyzer = "en"

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("Title", english)
	docMapping.AddFieldMappingsAt("Body", english)
	docMapping.AddFieldMappingsAt("Text", english)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

func (i *Index) Close() error {
	return i.index.Close()
}

func document(post *model.Post) indexedPost {
	return indexedPost{Title: post.Title, Body: post.Body, Text: post.Title + " " + post.Body}
}

// Reindex writes every stored post into the index in one batch and drops
// documents whose post no longer exists. It returns the number of posts indexed.
func (i *Index) Reindex(ctx context.Context) (int, error) {
	posts, err := i.posts.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list posts: %w", err)
	}

	present := make(map[string]struct{}, len(posts))
	batch := i.index.NewBatch()
	for _, post := range posts {
		id := strconv.FormatInt(post.ID, 10)
		present[id] = struct{}{}
		if err := batch.Index(id, document(post)); err != nil {
			return 0, fmt.Errorf("batch index %d: %w", post.ID, err)
		}
	}

	stale, err := i.staleIDs(ctx, present)
	if err != nil {
		return 0, err
	}
	for _, id := range stale {
		batch.Delete(id)
	}

	if err := i.index.Batch(batch); err != nil {
		return 0, fmt.Errorf("commit batch: %w", err)
	}

	i.log.Debug("Search index rebuilt", slog.Int("posts", len(posts)), slog.Int("removed", len(stale)))
	return len(posts), nil
}

func (i *Index) staleIDs(ctx context.Context, present map[string]struct{}) ([]string, error) {
	count, err := i.index.DocCount()
	if err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	req := bleve.NewSearchRequestOptions(bleve.NewMatchAllQuery(), int(count), 0, false)
	result, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	var stale []string
	for _, hit := range result.Hits {
		if _, ok := present[hit.ID]; !ok {
			stale = append(stale, hit.ID)
		}
	}
	return stale, nil
}

// Run rebuilds the index every interval until ctx is cancelled, so posts
// written after startup become searchable.
func (i *Index) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := i.Reindex(ctx); err != nil && ctx.Err() == nil {
				i.log.Error("Failed to refresh search index", slog.String("error", err.Error()))
			}
		}
	}
}

// Search requires every query term in the title or body and ranks title hits higher.
func (i *Index) Search(ctx context.Context, queryStr string) ([]*model.Post, error) {
	text := bleve.NewMatchQuery(queryStr)
	text.SetField("Text")
	text.SetOperator(query.MatchQueryOperatorAnd)

	title := bleve.NewMatchQuery(queryStr)
	title.SetField("Title")
	title.SetBoost(2)

	q := bleve.NewBooleanQuery()
	q.AddMust(text)
	q.AddShould(title)

	// Unpublished documents are filtered out after the fact, so keep paging
	// until limit published posts are found or the hits run out.
	posts := make([]*model.Post, 0)
	hits := 0
	for from := 0; len(posts) < i.limit; from += i.limit {
		req := bleve.NewSearchRequestOptions(q, i.limit, from, false)
		result, err := i.index.SearchInContext(ctx, req)
		if err != nil {
			i.log.Error("Bleve search failed", slog.String("query", queryStr), slog.String("error", err.Error()))
			return nil, custom_errors.ErrSearchFailed
		}

		ids := make([]int64, 0, len(result.Hits))
		for _, hit := range result.Hits {
			id, err := strconv.ParseInt(hit.ID, 10, 64)
			if err != nil {
				i.log.Warn("Skipping search hit with invalid id", slog.String("id", hit.ID))
				continue
			}
			ids = append(ids, id)
		}
		hits += len(result.Hits)

		published, err := i.posts.GetPublishedByIDs(ctx, ids)
		if err != nil {
			return nil, custom_errors.ErrSearchFailed
		}
		posts = append(posts, published...)

		if len(result.Hits) < i.limit || uint64(from+len(result.Hits)) >= result.Total {
			break
		}
	}
	if len(posts) > i.limit {
		posts = posts[:i.limit]
	}

	i.log.Debug("Bleve search completed", slog.String("query", queryStr), slog.Int("hits", hits), slog.Int("published", len(posts)))
	return posts, nil
}

package post_service

import (
	"context"
	"log/slog"

	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/validation"
)

// Search runs a full-text query. A nil query means the search page was opened
// without submitting; the form is returned unbound and nothing is searched.
func (s *PostService) Search(ctx context.Context, query *string) (*model.SearchResult, error) {
	if query == nil {
		return &model.SearchResult{Form: &model.SearchForm{}, Results: []*model.Post{}}, nil
	}

	form := &model.SearchForm{Query: *query, Bound: true}
	form.Clean()
	form.Errors = validation.FormErrors(s.validate.Struct(form))
	if !form.IsValid() {
		s.log.Debug("Search form invalid", slog.Int("errors", len(form.Errors)))
		return &model.SearchResult{Form: form, Results: []*model.Post{}}, nil
	}

	results, err := s.searcher.Search(ctx, form.Query)
	if err != nil {
		s.metrics.IncrementSearchQueries(s.settings.SearchBackend, false)
		s.log.Error("Search failed",
			slog.String("backend", s.settings.SearchBackend),
			slog.String("query", form.Query),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementSearchQueries(s.settings.SearchBackend, true)
	s.log.Debug("Search completed", slog.String("query", form.Query), slog.Int("results", len(results)))
	return &model.SearchResult{Form: form, Query: &form.Query, Results: results}, nil
}

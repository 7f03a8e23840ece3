package post_http

import (
	"context"
	"log/slog"
	"net/http"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/render"
)

type PostSearcher interface {
	Search(ctx context.Context, query *string) (*model.SearchResult, error)
}

type SearchHandler struct {
	postService PostSearcher
	render      *render.Renderer
	log         ports.Logger
}

func NewSearchHandler(postService PostSearcher, rd *render.Renderer, log ports.Logger) *SearchHandler {
	return &SearchHandler{
		postService: postService,
		render:      rd,
		log:         log,
	}
}

// Search treats a present but empty query parameter as a submitted form, so
// it comes back with a "required" error instead of the blank search page.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var query *string
	if values := r.URL.Query(); values.Has("query") {
		q := values.Get("query")
		query = &q
	}
	h.log.Debug("Handling Search request", slog.Bool("submitted", query != nil))

	result, err := h.postService.Search(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, h.render, h.log, "search", err)
		return
	}

	h.render.Render(w, r, http.StatusOK, render.TemplateSearch, result)
}

package post_http

import (
	"context"
	"log/slog"
	"net/http"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/render"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type PostLister interface {
	ListPosts(ctx context.Context, tagSlug string, page string) (*model.PostList, error)
}

type ListPostsHandler struct {
	postService PostLister
	validate    *validator.Validate
	render      *render.Renderer
	log         ports.Logger
}

func NewListPostsHandler(postService PostLister, validate *validator.Validate, rd *render.Renderer, log ports.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		validate:    validate,
		render:      rd,
		log:         log,
	}
}

type ListPostsRequestInternal struct {
	TagSlug string `validate:"omitempty,max=250"`
}

// ListPosts serves both the full listing and the per-tag listing. The page
// parameter is passed through untouched; the service decides what it means.
func (h *ListPostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	req := &ListPostsRequestInternal{TagSlug: mux.Vars(r)["tag_slug"]}
	page := r.URL.Query().Get("page")
	h.log.Debug("Handling ListPosts request", slog.String("tag", req.TagSlug), slog.String("page", page))

	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("ListPosts validation failed", slog.String("error", err.Error()))
		h.render.Error(w, r, http.StatusNotFound, "tag not found")
		return
	}

	list, err := h.postService.ListPosts(r.Context(), req.TagSlug, page)
	if err != nil {
		writeServiceError(w, r, h.render, h.log, "list_posts", err)
		return
	}

	h.render.Render(w, r, http.StatusOK, render.TemplateList, list)
}

package post_http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/render"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type PostDetailGetter interface {
	GetPostDetail(ctx context.Context, key model.PostKey) (*model.PostDetail, error)
}

type PostDetailHandler struct {
	postService PostDetailGetter
	validate    *validator.Validate
	render      *render.Renderer
	log         ports.Logger
}

func NewPostDetailHandler(postService PostDetailGetter, validate *validator.Validate, rd *render.Renderer, log ports.Logger) *PostDetailHandler {
	return &PostDetailHandler{
		postService: postService,
		validate:    validate,
		render:      rd,
		log:         log,
	}
}

func (h *PostDetailHandler) GetPostDetail(w http.ResponseWriter, r *http.Request) {
	key, ok := postKeyFromVars(mux.Vars(r))
	if !ok {
		h.render.Error(w, r, http.StatusNotFound, "post not found")
		return
	}
	h.log.Debug("Handling GetPostDetail request", slog.String("key", key.String()))

	if err := h.validate.Struct(key); err != nil {
		h.log.Debug("GetPostDetail validation failed", slog.String("key", key.String()), slog.String("error", err.Error()))
		h.render.Error(w, r, http.StatusNotFound, "post not found")
		return
	}

	detail, err := h.postService.GetPostDetail(r.Context(), key)
	if err != nil {
		writeServiceError(w, r, h.render, h.log, "post_detail", err)
		return
	}

	h.render.Render(w, r, http.StatusOK, render.TemplateDetail, detail)
}

func postKeyFromVars(vars map[string]string) (model.PostKey, bool) {
	year, errYear := strconv.Atoi(vars["year"])
	month, errMonth := strconv.Atoi(vars["month"])
	day, errDay := strconv.Atoi(vars["day"])
	if errYear != nil || errMonth != nil || errDay != nil {
		return model.PostKey{}, false
	}
	return model.PostKey{Year: year, Month: month, Day: day, Slug: vars["slug"]}, true
}

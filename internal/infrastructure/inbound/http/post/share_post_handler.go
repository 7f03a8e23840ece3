package post_http

import (
	"context"
	"log/slog"
	"net/http"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/render"

	"github.com/go-playground/validator/v10"
)

type PostSharer interface {
	SharePost(ctx context.Context, postID int64, form *model.EmailPostForm, baseURL string) (*model.PostShare, error)
}

type SharePostHandler struct {
	postService PostSharer
	validate    *validator.Validate
	render      *render.Renderer
	baseURL     string
	log         ports.Logger
}

func NewSharePostHandler(postService PostSharer, validate *validator.Validate, rd *render.Renderer, baseURL string, log ports.Logger) *SharePostHandler {
	return &SharePostHandler{
		postService: postService,
		validate:    validate,
		render:      rd,
		baseURL:     baseURL,
		log:         log,
	}
}

// SharePost shows the share form on GET and sends the recommendation on POST.
func (h *SharePostHandler) SharePost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDVar(r)
	if err != nil || h.validate.Struct(&PostIDRequestInternal{PostID: postID}) != nil {
		h.log.Debug("SharePost invalid post id", slog.String("path", r.URL.Path))
		h.render.Error(w, r, http.StatusNotFound, "post not found")
		return
	}
	h.log.Debug("Handling SharePost request", slog.Int64("post_id", postID), slog.String("method", r.Method))

	var form *model.EmailPostForm
	if r.Method == http.MethodPost {
		form = &model.EmailPostForm{}
		if err := decodeForm(w, r, form, map[string]*string{
			"name":     &form.Name,
			"email":    &form.Email,
			"to":       &form.To,
			"comments": &form.Comments,
		}); err != nil {
			writeServiceError(w, r, h.render, h.log, "share_post", err)
			return
		}
	}

	share, err := h.postService.SharePost(r.Context(), postID, form, requestBaseURL(r, h.baseURL))
	if err != nil {
		writeServiceError(w, r, h.render, h.log, "share_post", err)
		return
	}

	h.render.Render(w, r, http.StatusOK, render.TemplateShare, share)
}

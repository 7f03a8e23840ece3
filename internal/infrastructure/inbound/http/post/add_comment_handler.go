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

type CommentAdder interface {
	AddComment(ctx context.Context, postID int64, form *model.CommentForm) (*model.CommentResult, error)
}

type AddCommentHandler struct {
	postService CommentAdder
	validate    *validator.Validate
	render      *render.Renderer
	log         ports.Logger
}

func NewAddCommentHandler(postService CommentAdder, validate *validator.Validate, rd *render.Renderer, log ports.Logger) *AddCommentHandler {
	return &AddCommentHandler{
		postService: postService,
		validate:    validate,
		render:      rd,
		log:         log,
	}
}

func (h *AddCommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.render.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	postID, err := postIDVar(r)
	if err != nil || h.validate.Struct(&PostIDRequestInternal{PostID: postID}) != nil {
		h.log.Debug("AddComment invalid post id", slog.String("path", r.URL.Path))
		h.render.Error(w, r, http.StatusNotFound, "post not found")
		return
	}
	h.log.Debug("Handling AddComment request", slog.Int64("post_id", postID))

	form := &model.CommentForm{}
	if err := decodeForm(w, r, form, map[string]*string{
		"name":  &form.Name,
		"email": &form.Email,
		"body":  &form.Body,
	}); err != nil {
		writeServiceError(w, r, h.render, h.log, "add_comment", err)
		return
	}

	result, err := h.postService.AddComment(r.Context(), postID, form)
	if err != nil {
		writeServiceError(w, r, h.render, h.log, "add_comment", err)
		return
	}

	h.render.Render(w, r, http.StatusOK, render.TemplateComment, result)
}

package post_http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"blog-service/internal/custom_errors"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/render"

	"github.com/gorilla/mux"
)

const maxFormBytes = 1 << 20

type PostIDRequestInternal struct {
	PostID int64 `validate:"required,gt=0"`
}

func postIDVar(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["post_id"], 10, 64)
}

func isJSONBody(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// decodeForm fills dst from a JSON body or from urlencoded/multipart form
// values, reading each field by its json tag name.
func decodeForm(w http.ResponseWriter, r *http.Request, dst any, fields map[string]*string) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if isJSONBody(r) {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return errors.Join(custom_errors.ErrInvalidInput, err)
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return errors.Join(custom_errors.ErrInvalidInput, err)
	}
	for name, field := range fields {
		*field = r.PostForm.Get(name)
	}
	return nil
}

// requestBaseURL is the scheme and host used to build absolute post links
// when no base URL is configured.
func requestBaseURL(r *http.Request, configured string) string {
	if configured != "" {
		return strings.TrimRight(configured, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

func writeServiceError(w http.ResponseWriter, r *http.Request, rd *render.Renderer, log ports.Logger, op string, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrPostNotFound):
		log.Debug("Post not found", slog.String("op", op))
		rd.Error(w, r, http.StatusNotFound, "post not found")
	case errors.Is(err, custom_errors.ErrTagNotFound):
		log.Debug("Tag not found", slog.String("op", op))
		rd.Error(w, r, http.StatusNotFound, "tag not found")
	case errors.Is(err, custom_errors.ErrInvalidPostKey):
		log.Debug("Invalid post key", slog.String("op", op))
		rd.Error(w, r, http.StatusNotFound, "post not found")
	case errors.Is(err, custom_errors.ErrInvalidInput):
		log.Debug("Invalid request", slog.String("op", op), slog.String("error", err.Error()))
		rd.Error(w, r, http.StatusBadRequest, "invalid request")
	case errors.Is(err, custom_errors.ErrMailSendFailed):
		log.Error("Failed to send mail", slog.String("op", op), slog.String("error", err.Error()))
		rd.Error(w, r, http.StatusInternalServerError, "failed to send e-mail")
	default:
		log.Error("Request failed", slog.String("op", op), slog.String("error", err.Error()))
		rd.Error(w, r, http.StatusInternalServerError, "internal server error")
	}
}

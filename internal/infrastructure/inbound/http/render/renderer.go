package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	ports "blog-service/internal/domain/ports/output"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:embed templates
var templatesFS embed.FS

const (
	TemplateList    = "blog/post/list.html"
	TemplateDetail  = "blog/post/detail.html"
	TemplateShare   = "blog/post/share.html"
	TemplateComment = "blog/post/comment.html"
	TemplateSearch  = "blog/post/search.html"
	TemplateError   = "error.html"
)

var pages = []string{
	TemplateList,
	TemplateDetail,
	TemplateShare,
	TemplateComment,
	TemplateSearch,
	TemplateError,
}

type Renderer struct {
	templates map[string]*template.Template
	log       ports.Logger
}

func NewRenderer(log ports.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New("base.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/base.html",
			"templates/pagination.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return &Renderer{templates: templates, log: log}, nil
}

var funcs = template.FuncMap{
	"date": func(ts pgtype.Timestamptz) string {
		if !ts.Valid {
			return ""
		}
		return ts.Time.UTC().Format("January 2, 2006")
	},
	"datetime": func(ts pgtype.Timestamptz) string {
		if !ts.Valid {
			return ""
		}
		return ts.Time.UTC().Format(time.RFC1123)
	},
	"truncatewords": func(n int, s string) string {
		words := strings.Fields(s)
		if len(words) <= n {
			return s
		}
		return strings.Join(words[:n], " ") + " …"
	},
	"paragraphs": func(s string) []string {
		var out []string
		for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	},
	"add1": func(i int) int {
		return i + 1
	},
	"pluralize": func(n int, singular, plural string) string {
		if n == 1 {
			return singular
		}
		return plural
	},
}

// WantsJSON reports whether the client asked for a JSON representation.
func WantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if mediaType == "application/json" {
			return true
		}
	}
	return false
}

// Render writes data as JSON when requested, otherwise through the named page template.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if WantsJSON(r) {
		rd.JSON(w, status, data)
		return
	}

	tmpl, ok := rd.templates[page]
	if !ok {
		rd.log.Error("Unknown template", slog.String("template", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		rd.log.Error("Failed to execute template", slog.String("template", page), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		rd.log.Warn("Failed to write response", slog.String("error", err.Error()))
	}
}

func (rd *Renderer) JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		rd.log.Warn("Failed to encode json response", slog.String("error", err.Error()))
	}
}

type errorPage struct {
	Status  int    `json:"status"`
	Message string `json:"error"`
}

func (rd *Renderer) Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	rd.Render(w, r, status, TemplateError, errorPage{Status: status, Message: message})
}

package post_http

import (
	"net/http"

	post_service "blog-service/internal/domain/ports/input/post"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/render"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type PostHTTPService struct {
	listPostsHandler  *ListPostsHandler
	postDetailHandler *PostDetailHandler
	sharePostHandler  *SharePostHandler
	addCommentHandler *AddCommentHandler
	searchHandler     *SearchHandler
}

func NewPostHTTPService(postService post_service.Service, validate *validator.Validate, rd *render.Renderer, baseURL string, log ports.Logger) *PostHTTPService {
	return &PostHTTPService{
		listPostsHandler:  NewListPostsHandler(postService, validate, rd, log),
		postDetailHandler: NewPostDetailHandler(postService, validate, rd, log),
		sharePostHandler:  NewSharePostHandler(postService, validate, rd, baseURL, log),
		addCommentHandler: NewAddCommentHandler(postService, validate, rd, log),
		searchHandler:     NewSearchHandler(postService, rd, log),
	}
}

// Register mounts the blog routes. Static segments are registered before the
// patterns that could otherwise shadow them.
func (s *PostHTTPService) Register(router *mux.Router) {
	blog := router.PathPrefix("/blog").Subrouter()
	blog.HandleFunc("/", s.listPostsHandler.ListPosts).Methods(http.MethodGet, http.MethodHead)
	blog.HandleFunc("/search/", s.searchHandler.Search).Methods(http.MethodGet, http.MethodHead)
	blog.HandleFunc("/tag/{tag_slug:[-a-zA-Z0-9_]+}/", s.listPostsHandler.ListPosts).Methods(http.MethodGet, http.MethodHead)
	blog.HandleFunc("/{year:[0-9]+}/{month:[0-9]+}/{day:[0-9]+}/{slug:[-a-zA-Z0-9_]+}/", s.postDetailHandler.GetPostDetail).Methods(http.MethodGet, http.MethodHead)
	blog.HandleFunc("/{post_id:[0-9]+}/share/", s.sharePostHandler.SharePost).Methods(http.MethodGet, http.MethodPost)
	blog.HandleFunc("/{post_id:[0-9]+}/comment/", s.addCommentHandler.AddComment).Methods(http.MethodPost)
}

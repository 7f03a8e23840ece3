package post_service

import (
	ports "blog-service/internal/domain/ports/output"
	comment_repository "blog-service/internal/domain/ports/output/comment"
	post_repository "blog-service/internal/domain/ports/output/post"
	"blog-service/internal/domain/ports/output/search"
	tag_repository "blog-service/internal/domain/ports/output/tag"
	"blog-service/internal/infrastructure/validation"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPageSize     = 3
	defaultSimilarLimit = 4
)

type Settings struct {
	PageSize      int
	SimilarLimit  int
	MailFrom      string
	SearchBackend string
}

type PostService struct {
	postRepo    post_repository.Repository
	tagRepo     tag_repository.Repository
	commentRepo comment_repository.Repository
	searcher    search.Searcher
	mailer      ports.Mailer
	uow         ports.UnitOfWork
	validate    *validator.Validate
	log         ports.Logger
	metrics     ports.MetricsProvider
	settings    Settings
}

func NewPostService(
	postRepo post_repository.Repository,
	tagRepo tag_repository.Repository,
	commentRepo comment_repository.Repository,
	searcher search.Searcher,
	mailer ports.Mailer,
	uow ports.UnitOfWork,
	log ports.Logger,
	metrics ports.MetricsProvider,
	settings Settings,
) *PostService {
	if settings.PageSize <= 0 {
		settings.PageSize = defaultPageSize
	}
	if settings.SimilarLimit <= 0 {
		settings.SimilarLimit = defaultSimilarLimit
	}
	if settings.SearchBackend == "" {
		settings.SearchBackend = "postgres"
	}
	return &PostService{
		postRepo:    postRepo,
		tagRepo:     tagRepo,
		commentRepo: commentRepo,
		searcher:    searcher,
		mailer:      mailer,
		uow:         uow,
		validate:    validation.New(),
		log:         log,
		metrics:     metrics,
		settings:    settings,
	}
}

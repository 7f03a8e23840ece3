package post_service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/domain/ports/output/search"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/metrics/prometheus"
	"blog-service/internal/infrastructure/outbound/repository/memory"
	mail_mock "blog-service/mocks/mail"
	search_mock "blog-service/mocks/search"
	uow_mock "blog-service/mocks/uow"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store   *memory.Store
	service *PostService
	mailer  *mail_mock.Mailer
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWith(t, nil, nil)
}

// newFixtureWith builds the service over a memory store. A nil searcher or
// unit of work falls back to the memory implementation.
func newFixtureWith(t *testing.T, searcher search.Searcher, uow ports.UnitOfWork) *fixture {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()
	store := memory.NewStore()
	store.SetClock(func() time.Time { return testNow })

	posts := memory.NewPostRepository(store, log)
	if searcher == nil {
		searcher = posts
	}
	if uow == nil {
		uow = memory.NewUnitOfWork(store, log)
	}

	f := &fixture{store: store, mailer: mail_mock.NewMailer(t)}
	f.service = NewPostService(
		posts,
		memory.NewTagRepository(store, log),
		memory.NewCommentRepository(store, log),
		searcher,
		f.mailer,
		uow,
		log,
		metrics,
		Settings{MailFrom: "blog@example.com"},
	)
	return f
}

func (f *fixture) publish(title, slug string, at time.Time, tagIDs ...int64) *model.Post {
	return f.store.AddPost(&model.Post{
		AuthorID: 1,
		Title:    title,
		Slug:     slug,
		Body:     title + " body",
		Publish:  pgtype.Timestamptz{Time: at, Valid: true},
		Status:   model.PostStatusPublished,
	}, tagIDs...)
}

func postIDs(posts []*model.Post) []int64 {
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestPostService_ListPosts(t *testing.T) {
	f := newFixture(t)
	golang := f.store.AddTag("Go", "go")
	f.store.AddTag("Empty", "empty")

	var all []*model.Post
	for i := 0; i < 7; i++ {
		var tags []int64
		if i%2 == 0 {
			tags = append(tags, golang.ID)
		}
		all = append(all, f.publish("Post", "post", testNow.Add(-time.Duration(i+1)*time.Hour), tags...))
	}
	draft := &model.Post{Title: "Draft", Slug: "draft", Status: model.PostStatusDraft,
		Publish: pgtype.Timestamptz{Time: testNow.Add(-time.Minute), Valid: true}}
	f.store.AddPost(draft, golang.ID)

	tests := []struct {
		name         string
		tagSlug      string
		page         string
		wantNumber   int
		wantNumPages int
		wantCount    int
		wantIDs      []int64
		wantErr      error
	}{
		{name: "first page by default", wantNumber: 1, wantNumPages: 3, wantCount: 7, wantIDs: postIDs(all[0:3])},
		{name: "explicit second page", page: "2", wantNumber: 2, wantNumPages: 3, wantCount: 7, wantIDs: postIDs(all[3:6])},
		{name: "last page is partial", page: "3", wantNumber: 3, wantNumPages: 3, wantCount: 7, wantIDs: postIDs(all[6:7])},
		{name: "non integer falls back to first", page: "abc", wantNumber: 1, wantNumPages: 3, wantCount: 7, wantIDs: postIDs(all[0:3])},
		{name: "decimal falls back to first", page: "2.0", wantNumber: 1, wantNumPages: 3, wantCount: 7, wantIDs: postIDs(all[0:3])},
		{name: "zero goes to last", page: "0", wantNumber: 3, wantNumPages: 3, wantCount: 7, wantIDs: postIDs(all[6:7])},
		{name: "negative goes to last", page: "-4", wantNumber: 3, wantNumPages: 3, wantCount: 7, wantIDs: postIDs(all[6:7])},
		{name: "too large goes to last", page: "9999", wantNumber: 3, wantNumPages: 3, wantCount: 7, wantIDs: postIDs(all[6:7])},
		{
			name: "filtered by tag", tagSlug: "go", wantNumber: 1, wantNumPages: 2, wantCount: 4,
			wantIDs: []int64{all[0].ID, all[2].ID, all[4].ID},
		},
		{name: "tag without posts has one empty page", tagSlug: "empty", wantNumber: 1, wantNumPages: 1, wantCount: 0, wantIDs: []int64{}},
		{name: "unknown tag", tagSlug: "rust", wantErr: custom_errors.ErrTagNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.service.ListPosts(context.Background(), tt.tagSlug, tt.page)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNumber, got.Page.Number)
			assert.Equal(t, tt.wantNumPages, got.Page.NumPages)
			assert.Equal(t, tt.wantCount, got.Page.Count)
			assert.Equal(t, 3, got.Page.PerPage)
			assert.Equal(t, tt.wantIDs, postIDs(got.Page.Posts))
			if tt.tagSlug != "" {
				require.NotNil(t, got.Tag)
				assert.Equal(t, tt.tagSlug, got.Tag.Slug)
			} else {
				assert.Nil(t, got.Tag)
			}
		})
	}
}

func TestPostService_GetPostDetail(t *testing.T) {
	f := newFixture(t)
	golang := f.store.AddTag("Go", "go")
	web := f.store.AddTag("Web", "web")

	day := time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)
	post := f.publish("Hello", "hello", day, golang.ID, web.ID)
	for i := 0; i < 5; i++ {
		f.publish("Similar", "similar", day.Add(-time.Duration(i+1)*time.Hour), golang.ID)
	}
	both := f.publish("Both", "both", day.Add(-48*time.Hour), golang.ID, web.ID)

	late := f.store.AddComment(&model.Comment{PostID: post.ID, Name: "late", Active: true,
		CreatedAt: pgtype.Timestamptz{Time: day.Add(2 * time.Hour), Valid: true}})
	early := f.store.AddComment(&model.Comment{PostID: post.ID, Name: "early", Active: true,
		CreatedAt: pgtype.Timestamptz{Time: day.Add(time.Hour), Valid: true}})
	f.store.AddComment(&model.Comment{PostID: post.ID, Name: "moderated", Active: false,
		CreatedAt: pgtype.Timestamptz{Time: day.Add(time.Hour), Valid: true}})

	t.Run("found", func(t *testing.T) {
		got, err := f.service.GetPostDetail(context.Background(), model.PostKey{Year: 2024, Month: 3, Day: 7, Slug: "hello"})
		require.NoError(t, err)

		assert.Equal(t, post.ID, got.Post.ID)
		require.Len(t, got.Tags, 2)
		assert.Equal(t, "Go", got.Tags[0].Name)

		require.Len(t, got.Comments, 2)
		assert.Equal(t, early.ID, got.Comments[0].ID)
		assert.Equal(t, late.ID, got.Comments[1].ID)

		require.NotNil(t, got.Form)
		assert.False(t, got.Form.Bound)
		assert.Empty(t, got.Form.Errors)

		require.Len(t, got.SimilarPosts, 4)
		assert.Equal(t, both.ID, got.SimilarPosts[0].ID)
		assert.Equal(t, 2, got.SimilarPosts[0].SameTags)
		for _, s := range got.SimilarPosts[1:] {
			assert.Equal(t, 1, s.SameTags)
			assert.NotEqual(t, post.ID, s.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		got, err := f.service.GetPostDetail(context.Background(), model.PostKey{Year: 2024, Month: 3, Day: 8, Slug: "hello"})
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, got)
	})
}

func TestPostService_SharePost(t *testing.T) {
	day := time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		form       *model.EmailPostForm
		mocks      func(m *mail_mock.Mailer)
		unknown    bool
		wantSent   bool
		wantErrors []string
		wantErr    error
	}{
		{
			name: "form requested",
			form: nil,
		},
		{
			name:       "invalid form sends nothing",
			form:       &model.EmailPostForm{Name: strings.Repeat("n", 26), Email: "bad", To: ""},
			wantErrors: []string{"name", "email", "to"},
		},
		{
			name: "valid form sends mail",
			form: &model.EmailPostForm{Name: " Ann ", Email: "ann@example.com", To: "bob@example.com", Comments: "Worth it"},
			mocks: func(m *mail_mock.Mailer) {
				m.On("Send", mock.Anything, &model.EmailMessage{
					From:    "blog@example.com",
					To:      []string{"bob@example.com"},
					Subject: "Ann recommends you read Hello",
					Body:    "Read Hello at http://blog.local/blog/2024/3/7/hello/\n\nAnn's comments: Worth it",
				}).Return(nil).Once()
			},
			wantSent: true,
		},
		{
			name: "mailer failure propagates",
			form: &model.EmailPostForm{Name: "Ann", Email: "ann@example.com", To: "bob@example.com"},
			mocks: func(m *mail_mock.Mailer) {
				m.On("Send", mock.Anything, mock.AnythingOfType("*model.EmailMessage")).Return(errors.New("smtp down")).Once()
			},
			wantErr: custom_errors.ErrMailSendFailed,
		},
		{
			name:    "unknown post",
			form:    &model.EmailPostForm{Name: "Ann", Email: "ann@example.com", To: "bob@example.com"},
			unknown: true,
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			post := f.publish("Hello", "hello", day)
			if tt.mocks != nil {
				tt.mocks(f.mailer)
			}

			id := post.ID
			if tt.unknown {
				id = 999
			}
			got, err := f.service.SharePost(context.Background(), id, tt.form, "http://blog.local/")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, post.ID, got.Post.ID)
			assert.Equal(t, tt.wantSent, got.Sent)
			require.NotNil(t, got.Form)
			for _, field := range tt.wantErrors {
				assert.True(t, got.Form.Errors.Has(field), field)
			}
			if tt.form == nil {
				assert.False(t, got.Form.Bound)
			}
			f.mailer.AssertExpectations(t)
		})
	}
}

func TestPostService_AddComment(t *testing.T) {
	day := time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)

	t.Run("valid comment is stored active", func(t *testing.T) {
		f := newFixture(t)
		post := f.publish("Hello", "hello", day)

		got, err := f.service.AddComment(context.Background(), post.ID, &model.CommentForm{
			Name: "Ann", Email: "ann@example.com", Body: "  Great post  ",
		})
		require.NoError(t, err)
		require.NotNil(t, got.Comment)
		assert.True(t, got.Comment.Active)
		assert.Equal(t, "Great post", got.Comment.Body)
		assert.Equal(t, post.ID, got.Comment.PostID)
		assert.True(t, got.Form.IsValid())

		detail, err := f.service.GetPostDetail(context.Background(), post.Key())
		require.NoError(t, err)
		require.Len(t, detail.Comments, 1)
		assert.Equal(t, got.Comment.ID, detail.Comments[0].ID)
	})

	t.Run("invalid form stores nothing", func(t *testing.T) {
		f := newFixture(t)
		post := f.publish("Hello", "hello", day)

		got, err := f.service.AddComment(context.Background(), post.ID, &model.CommentForm{
			Name: strings.Repeat("x", 81), Email: "nope",
		})
		require.NoError(t, err)
		assert.Nil(t, got.Comment)
		assert.True(t, got.Form.Errors.Has("name"))
		assert.True(t, got.Form.Errors.Has("email"))
		assert.True(t, got.Form.Errors.Has("body"))

		comments, err := memory.NewCommentRepository(f.store, logger.New("test")).ListActiveByPost(context.Background(), post.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("draft post", func(t *testing.T) {
		f := newFixture(t)
		draft := f.store.AddPost(&model.Post{Title: "Draft", Slug: "draft", Status: model.PostStatusDraft,
			Publish: pgtype.Timestamptz{Time: day, Valid: true}})

		got, err := f.service.AddComment(context.Background(), draft.ID, &model.CommentForm{
			Name: "Ann", Email: "ann@example.com", Body: "hi",
		})
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, got)
	})

	t.Run("begin failure", func(t *testing.T) {
		uow := uow_mock.NewUnitOfWork(t)
		f := newFixtureWith(t, nil, uow)
		post := f.publish("Hello", "hello", day)
		uow.On("Begin", mock.Anything).Return(nil, errors.New("pool exhausted")).Once()

		got, err := f.service.AddComment(context.Background(), post.ID, &model.CommentForm{
			Name: "Ann", Email: "ann@example.com", Body: "hi",
		})
		assert.ErrorIs(t, err, custom_errors.ErrTransactionFailed)
		assert.Nil(t, got)
	})

	t.Run("post unpublished inside transaction rolls back", func(t *testing.T) {
		uow := uow_mock.NewUnitOfWork(t)
		tx := uow_mock.NewTransaction(t)
		f := newFixtureWith(t, nil, uow)
		post := f.publish("Hello", "hello", day)

		empty := memory.NewStore()
		uow.On("Begin", mock.Anything).Return(tx, nil).Once()
		tx.On("PostRepository").Return(memory.NewPostRepository(empty, logger.New("test"))).Once()
		tx.On("Rollback", mock.Anything).Return(nil).Once()

		got, err := f.service.AddComment(context.Background(), post.ID, &model.CommentForm{
			Name: "Ann", Email: "ann@example.com", Body: "hi",
		})
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, got)
	})

	t.Run("commit failure", func(t *testing.T) {
		uow := uow_mock.NewUnitOfWork(t)
		tx := uow_mock.NewTransaction(t)
		f := newFixtureWith(t, nil, uow)
		post := f.publish("Hello", "hello", day)
		log := logger.New("test")

		uow.On("Begin", mock.Anything).Return(tx, nil).Once()
		tx.On("PostRepository").Return(memory.NewPostRepository(f.store, log)).Once()
		tx.On("CommentRepository").Return(memory.NewCommentRepository(f.store, log)).Once()
		tx.On("Commit", mock.Anything).Return(errors.New("serialization failure")).Once()
		tx.On("Rollback", mock.Anything).Return(nil).Once()

		got, err := f.service.AddComment(context.Background(), post.ID, &model.CommentForm{
			Name: "Ann", Email: "ann@example.com", Body: "hi",
		})
		assert.ErrorIs(t, err, custom_errors.ErrTransactionFailed)
		assert.Nil(t, got)
	})
}

func TestPostService_Search(t *testing.T) {
	query := func(s string) *string { return &s }

	t.Run("no query", func(t *testing.T) {
		f := newFixture(t)
		got, err := f.service.Search(context.Background(), nil)
		require.NoError(t, err)
		assert.False(t, got.Form.Bound)
		assert.Nil(t, got.Query)
		assert.Empty(t, got.Results)
	})

	t.Run("blank query is invalid", func(t *testing.T) {
		f := newFixture(t)
		got, err := f.service.Search(context.Background(), query("   "))
		require.NoError(t, err)
		assert.True(t, got.Form.Errors.Has("query"))
		assert.Nil(t, got.Query)
		assert.Empty(t, got.Results)
	})

	t.Run("overlong query is invalid", func(t *testing.T) {
		f := newFixture(t)
		got, err := f.service.Search(context.Background(), query(strings.Repeat("a", 256)))
		require.NoError(t, err)
		assert.True(t, got.Form.Errors.Has("query"))
		assert.Empty(t, got.Results)
	})

	t.Run("matches published posts", func(t *testing.T) {
		f := newFixture(t)
		hit := f.publish("Django forms", "django-forms", testNow.Add(-time.Hour))
		f.publish("Gardening", "gardening", testNow.Add(-time.Hour))

		got, err := f.service.Search(context.Background(), query("django"))
		require.NoError(t, err)
		require.NotNil(t, got.Query)
		assert.Equal(t, "django", *got.Query)
		assert.Equal(t, []int64{hit.ID}, postIDs(got.Results))
	})

	t.Run("backend failure", func(t *testing.T) {
		searcher := search_mock.NewSearcher(t)
		f := newFixtureWith(t, searcher, nil)
		searcher.On("Search", mock.Anything, "django").Return(nil, custom_errors.ErrSearchFailed).Once()

		got, err := f.service.Search(context.Background(), query("django"))
		assert.ErrorIs(t, err, custom_errors.ErrSearchFailed)
		assert.Nil(t, got)
	})
}

package memory

import (
	"sync"
	"time"

	model "blog-service/internal/domain/models"

	"github.com/jackc/pgx/v5/pgtype"
)

// Store is the shared in-memory dataset behind the memory repositories.
// Posts and tags are seeded directly; comments are written through CommentRepository.
type Store struct {
	mu            sync.RWMutex
	posts         map[int64]*model.Post
	tags          map[int64]*model.Tag
	postTags      map[int64][]int64
	comments      map[int64]*model.Comment
	nextPostID    int64
	nextTagID     int64
	nextCommentID int64
	now           func() time.Time
}

func NewStore() *Store {
	return &Store{
		posts:         make(map[int64]*model.Post),
		tags:          make(map[int64]*model.Tag),
		postTags:      make(map[int64][]int64),
		comments:      make(map[int64]*model.Comment),
		nextPostID:    1,
		nextTagID:     1,
		nextCommentID: 1,
		now:           time.Now,
	}
}

// SetClock replaces the time source used for the published check and timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) AddTag(name, slug string) *model.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()

	tag := &model.Tag{ID: s.nextTagID, Name: name, Slug: slug}
	s.nextTagID++
	s.tags[tag.ID] = tag

	result := *tag
	return &result
}

// AddPost stores a copy of post under a fresh ID and links it to tagIDs.
func (s *Store) AddPost(post *model.Post, tagIDs ...int64) *model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := pgtype.Timestamptz{Time: s.now(), Valid: true}
	newPost := *post
	newPost.ID = s.nextPostID
	s.nextPostID++
	if !newPost.CreatedAt.Valid {
		newPost.CreatedAt = now
	}
	if !newPost.UpdatedAt.Valid {
		newPost.UpdatedAt = now
	}
	s.posts[newPost.ID] = &newPost
	s.postTags[newPost.ID] = append([]int64(nil), tagIDs...)

	result := newPost
	return &result
}

// AddComment stores the comment as given, including its active flag.
func (s *Store) AddComment(comment *model.Comment) *model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertComment(*comment)
}

// UpdatePost applies fn to the stored post; it reports false when id is unknown.
func (s *Store) UpdatePost(id int64, fn func(post *model.Post)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return false
	}
	fn(post)
	post.UpdatedAt = pgtype.Timestamptz{Time: s.now(), Valid: true}
	return true
}

// DeletePost removes a post together with its tag links and comments.
func (s *Store) DeletePost(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return false
	}
	delete(s.posts, id)
	delete(s.postTags, id)
	for commentID, comment := range s.comments {
		if comment.PostID == id {
			delete(s.comments, commentID)
		}
	}
	return true
}

// SetCommentActive moderates a stored comment; it reports false when id is unknown.
func (s *Store) SetCommentActive(id int64, active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return false
	}
	comment.Active = active
	return true
}

func (s *Store) insertComment(comment model.Comment) *model.Comment {
	now := pgtype.Timestamptz{Time: s.now(), Valid: true}
	comment.ID = s.nextCommentID
	s.nextCommentID++
	if !comment.CreatedAt.Valid {
		comment.CreatedAt = now
	}
	if !comment.UpdatedAt.Valid {
		comment.UpdatedAt = now
	}
	s.comments[comment.ID] = &comment

	result := comment
	return &result
}

func (s *Store) publishedPost(id int64) (*model.Post, bool) {
	post, ok := s.posts[id]
	if !ok || !post.IsPublished(s.now()) {
		return nil, false
	}
	return post, true
}

func (s *Store) hasTag(postID, tagID int64) bool {
	for _, id := range s.postTags[postID] {
		if id == tagID {
			return true
		}
	}
	return false
}

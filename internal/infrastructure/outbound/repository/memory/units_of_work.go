package memory

import (
	"context"
	"errors"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	comment_repository "blog-service/internal/domain/ports/output/comment"
	post_repository "blog-service/internal/domain/ports/output/post"
)

var ErrTxDone = errors.New("transaction already finished")

type UnitOfWork struct {
	store *Store
	log   ports.Logger
}

func NewUnitOfWork(store *Store, log ports.Logger) ports.UnitOfWork {
	return &UnitOfWork{store: store, log: log}
}

func (u *UnitOfWork) Begin(ctx context.Context) (ports.Transaction, error) {
	return &Transaction{store: u.store, log: u.log}, nil
}

// Transaction writes through to the store and removes its comments again on Rollback.
type Transaction struct {
	store   *Store
	log     ports.Logger
	pending []*model.Comment
	done    bool
}

func (t *Transaction) PostRepository() post_repository.Repository {
	return NewPostRepository(t.store, t.log)
}

func (t *Transaction) CommentRepository() comment_repository.Repository {
	return &txCommentRepository{CommentRepository: NewCommentRepository(t.store, t.log), tx: t}
}

func (t *Transaction) Commit(ctx context.Context) error {
	if t.done {
		return ErrTxDone
	}
	t.done = true
	t.pending = nil
	return nil
}

func (t *Transaction) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, comment := range t.pending {
		delete(t.store.comments, comment.ID)
	}
	t.pending = nil
	return nil
}

type txCommentRepository struct {
	*CommentRepository
	tx *Transaction
}

func (r *txCommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if r.tx.done {
		return nil, ErrTxDone
	}
	created, err := r.CommentRepository.Create(ctx, comment)
	if err != nil {
		return nil, err
	}
	r.tx.pending = append(r.tx.pending, created)
	return created, nil
}

package model

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

func (s PostStatus) IsValid() error {
	switch s {
	case PostStatusDraft, PostStatusPublished:
		return nil
	}
	return fmt.Errorf("invalid post status: %s", s)
}

type Post struct {
	ID        int64              `json:"id"`
	AuthorID  int64              `json:"author_id"`
	Title     string             `json:"title"`
	Slug      string             `json:"slug"`
	Body      string             `json:"body"`
	Publish   pgtype.Timestamptz `json:"publish"`
	Status    PostStatus         `json:"status"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

// IsPublished reports whether the post is visible to readers at the given instant.
func (p *Post) IsPublished(now time.Time) bool {
	return p.Status == PostStatusPublished && p.Publish.Valid && !p.Publish.Time.After(now)
}

// AbsoluteURL is the site-relative detail path, built from the UTC publish date.
func (p *Post) AbsoluteURL() string {
	return p.Key().Path()
}

func (p *Post) Key() PostKey {
	t := p.Publish.Time.UTC()
	return PostKey{Year: t.Year(), Month: int(t.Month()), Day: t.Day(), Slug: p.Slug}
}

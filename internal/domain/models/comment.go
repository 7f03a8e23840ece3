package model

import "github.com/jackc/pgx/v5/pgtype"

type Comment struct {
	ID        int64              `json:"id"`
	PostID    int64              `json:"post_id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Body      string             `json:"body"`
	Active    bool               `json:"active"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

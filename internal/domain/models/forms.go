package model

import "strings"

// FormErrors maps a form field name to its first validation message.
type FormErrors map[string]string

func (e FormErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// EmailPostForm is the "share by e-mail" form.
type EmailPostForm struct {
	Name     string     `json:"name" validate:"required,max=25"`
	Email    string     `json:"email" validate:"required,email,max=254"`
	To       string     `json:"to" validate:"required,email,max=254"`
	Comments string     `json:"comments" validate:"max=5000"`
	Bound    bool       `json:"bound" validate:"-"`
	Errors   FormErrors `json:"errors,omitempty" validate:"-"`
}

func (f *EmailPostForm) Clean() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.To = strings.TrimSpace(f.To)
	f.Comments = strings.TrimSpace(f.Comments)
}

func (f *EmailPostForm) IsValid() bool {
	return f.Bound && len(f.Errors) == 0
}

type CommentForm struct {
	Name   string     `json:"name" validate:"required,max=80"`
	Email  string     `json:"email" validate:"required,email,max=254"`
	Body   string     `json:"body" validate:"required"`
	Bound  bool       `json:"bound" validate:"-"`
	Errors FormErrors `json:"errors,omitempty" validate:"-"`
}

func (f *CommentForm) Clean() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Body = strings.TrimSpace(f.Body)
}

func (f *CommentForm) IsValid() bool {
	return f.Bound && len(f.Errors) == 0
}

type SearchForm struct {
	Query  string     `json:"query" validate:"required,max=255"`
	Bound  bool       `json:"bound" validate:"-"`
	Errors FormErrors `json:"errors,omitempty" validate:"-"`
}

func (f *SearchForm) Clean() {
	f.Query = strings.TrimSpace(f.Query)
}

func (f *SearchForm) IsValid() bool {
	return f.Bound && len(f.Errors) == 0
}

package validation

import (
	"errors"
	"strings"
	"testing"

	model "blog-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestFormErrors(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		form any
		want model.FormErrors
	}{
		{
			name: "valid share form",
			form: &model.EmailPostForm{Name: "Ann", Email: "ann@example.com", To: "bob@example.com"},
			want: nil,
		},
		{
			name: "share form missing fields",
			form: &model.EmailPostForm{Email: "not-an-email"},
			want: model.FormErrors{
				"name":  "This field is required.",
				"email": "Enter a valid email address.",
				"to":    "This field is required.",
			},
		},
		{
			name: "share form name too long",
			form: &model.EmailPostForm{Name: strings.Repeat("ä", 26), Email: "ann@example.com", To: "bob@example.com"},
			want: model.FormErrors{
				"name": "Ensure this value has at most 25 characters (it has 26).",
			},
		},
		{
			name: "comment form missing body",
			form: &model.CommentForm{Name: "Ann", Email: "ann@example.com"},
			want: model.FormErrors{"body": "This field is required."},
		},
		{
			name: "search query too long",
			form: &model.SearchForm{Query: strings.Repeat("q", 256)},
			want: model.FormErrors{"query": "Ensure this value has at most 255 characters (it has 256)."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormErrors(v.Struct(tt.form))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormErrors_NonFieldError(t *testing.T) {
	got := FormErrors(errors.New("boom"))
	assert.Equal(t, model.FormErrors{"__all__": "boom"}, got)
}

func TestPostKeyValidation(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(model.PostKey{Year: 2024, Month: 3, Day: 7, Slug: "hello"}))

	errs := FormErrors(v.Struct(model.PostKey{Year: 2024, Month: 13, Day: 0, Slug: ""}))
	assert.True(t, errs.Has("month"))
	assert.True(t, errs.Has("day"))
	assert.True(t, errs.Has("slug"))
	assert.False(t, errs.Has("year"))
}

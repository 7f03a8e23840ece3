package model

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestPost_IsPublished(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		post Post
		want bool
	}{
		{
			name: "published in the past",
			post: Post{Status: PostStatusPublished, Publish: pgtype.Timestamptz{Time: now.Add(-time.Hour), Valid: true}},
			want: true,
		},
		{
			name: "published exactly now",
			post: Post{Status: PostStatusPublished, Publish: pgtype.Timestamptz{Time: now, Valid: true}},
			want: true,
		},
		{
			name: "scheduled in the future",
			post: Post{Status: PostStatusPublished, Publish: pgtype.Timestamptz{Time: now.Add(time.Minute), Valid: true}},
			want: false,
		},
		{
			name: "draft",
			post: Post{Status: PostStatusDraft, Publish: pgtype.Timestamptz{Time: now.Add(-time.Hour), Valid: true}},
			want: false,
		},
		{
			name: "no publish date",
			post: Post{Status: PostStatusPublished},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.post.IsPublished(now))
		})
	}
}

func TestPost_AbsoluteURL(t *testing.T) {
	post := Post{
		Slug:    "hello-world",
		Publish: pgtype.Timestamptz{Time: time.Date(2023, 1, 5, 23, 30, 0, 0, time.UTC), Valid: true},
	}
	assert.Equal(t, "/blog/2023/1/5/hello-world/", post.AbsoluteURL())

	// Publish dates are keyed in UTC regardless of the stored location.
	loc := time.FixedZone("UTC+3", 3*60*60)
	post.Publish.Time = time.Date(2023, 1, 6, 1, 0, 0, 0, loc)
	assert.Equal(t, "/blog/2023/1/5/hello-world/", post.AbsoluteURL())
}

func TestPostStatus_IsValid(t *testing.T) {
	assert.NoError(t, PostStatusDraft.IsValid())
	assert.NoError(t, PostStatusPublished.IsValid())
	assert.Error(t, PostStatus("archived").IsValid())
}

func TestPostKey_DayRange(t *testing.T) {
	start, end, ok := PostKey{Year: 2023, Month: 1, Day: 5, Slug: "x"}.DayRange()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2023, 1, 6, 0, 0, 0, 0, time.UTC), end)

	_, _, ok = PostKey{Year: 2023, Month: 2, Day: 30, Slug: "x"}.DayRange()
	assert.False(t, ok)

	assert.Equal(t, "2023-01-05/x", PostKey{Year: 2023, Month: 1, Day: 5, Slug: "x"}.String())
}

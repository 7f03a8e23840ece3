package tag_repository_test

import (
	"context"
	"testing"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	tag_repository "blog-service/internal/domain/ports/output/tag"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTagTest(t *testing.T) (tag_repository.Repository, *memory.Store) {
	log := logger.New("test")
	store := memory.NewStore()
	return memory.NewTagRepository(store, log), store
}

func TestTagRepository_GetBySlug(t *testing.T) {
	repo, store := setupTagTest(t)
	store.AddTag("Go", "go")
	store.AddTag("Web Development", "web-development")

	tests := []struct {
		name     string
		slug     string
		wantName string
		wantErr  error
	}{
		{name: "existing tag", slug: "web-development", wantName: "Web Development"},
		{name: "missing tag", slug: "rust", wantErr: custom_errors.ErrTagNotFound},
		{name: "empty slug", slug: "", wantErr: custom_errors.ErrTagNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetBySlug(context.Background(), tt.slug)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.slug, got.Slug)
			assert.NotZero(t, got.ID)
		})
	}
}

func TestTagRepository_FindByPost(t *testing.T) {
	repo, store := setupTagTest(t)
	web := store.AddTag("Web", "web")
	golang := store.AddTag("Go", "go")
	post := store.AddPost(&model.Post{Title: "Tagged", Slug: "tagged"}, web.ID, golang.ID)
	bare := store.AddPost(&model.Post{Title: "Bare", Slug: "bare"})

	got, err := repo.FindByPost(context.Background(), post.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Go", got[0].Name)
	assert.Equal(t, "Web", got[1].Name)

	got, err = repo.FindByPost(context.Background(), bare.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

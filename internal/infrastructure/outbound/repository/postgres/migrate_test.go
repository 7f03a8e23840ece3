package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgresql scheme", "postgresql://u:p@localhost:5432/blog?sslmode=disable", "pgx5://u:p@localhost:5432/blog?sslmode=disable"},
		{"postgres scheme", "postgres://u:p@db/blog", "pgx5://u:p@db/blog"},
		{"already pgx5", "pgx5://u:p@db/blog", "pgx5://u:p@db/blog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, migrateURL(tt.dsn))
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "migrations/000001_create_blog_tables.up.sql")
	assert.Contains(t, files, "migrations/000001_create_blog_tables.down.sql")

	up, err := fs.ReadFile(migrationsFS, "migrations/000001_create_blog_tables.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "active     BOOLEAN NOT NULL DEFAULT TRUE")
	assert.Contains(t, string(up), "USING GIN (search_vector)")
}

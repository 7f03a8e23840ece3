package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Equal(t, 3, cfg.Blog.PageSize)
	assert.Equal(t, 4, cfg.Blog.SimilarLimit)
	assert.Equal(t, "postgres", cfg.Search.Backend)
	assert.Equal(t, time.Minute, cfg.Search.ReindexInterval)
	assert.Equal(t, "console", cfg.Mail.Backend)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.PostTTL)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	yaml := []byte(`
env: prod
http_server:
  port: 9000
mail:
  backend: smtp
  from: editor@example.com
search:
  backend: bleve
  reindex_interval: 30s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), yaml, 0o644))
	t.Setenv("BLOG_DATABASE_HOST", "db.internal")
	t.Setenv("BLOG_REDIS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 9000, cfg.HTTPServer.Port)
	assert.Equal(t, "smtp", cfg.Mail.Backend)
	assert.Equal(t, "editor@example.com", cfg.Mail.From)
	assert.Equal(t, "bleve", cfg.Search.Backend)
	assert.Equal(t, 30*time.Second, cfg.Search.ReindexInterval)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.Redis.Enabled)
}

func TestDatabase_DSN(t *testing.T) {
	db := Database{Username: "u", Password: "p", Host: "h", Port: "5432", DbName: "blog"}
	assert.Equal(t, "postgresql://u:p@h:5432/blog?sslmode=disable", db.DSN())
}

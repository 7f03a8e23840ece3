package redis

import (
	"context"
	"testing"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/config"
	"blog-service/internal/infrastructure/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostDetailKey(t *testing.T) {
	key := model.PostKey{Year: 2024, Month: 3, Day: 7, Slug: "hello-world"}
	assert.Equal(t, "blog:post_detail:2024-03-07/hello-world", postDetailKey(key))
}

func TestNewPostCache_DefaultTTL(t *testing.T) {
	log := logger.New("test")
	cache := NewPostCache(nil, log, 0)
	assert.Equal(t, defaultPostTTL, cache.ttl)

	cache = NewPostCache(nil, log, time.Minute)
	assert.Equal(t, time.Minute, cache.ttl)
}

func TestPostCache_SetPostDetail_RejectsNil(t *testing.T) {
	log := logger.New("test")
	cache := NewPostCache(nil, log, time.Minute)
	key := model.PostKey{Year: 2024, Month: 3, Day: 7, Slug: "hello-world"}

	assert.Error(t, cache.SetPostDetail(context.Background(), key, nil))
	assert.Error(t, cache.SetPostDetail(context.Background(), key, &model.PostDetail{}))
}

func TestPostCache_UnreachableServer(t *testing.T) {
	log := logger.New("test")
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	cache := NewPostCache(NewClientFrom(rdb, log), log, time.Minute)
	key := model.PostKey{Year: 2024, Month: 3, Day: 7, Slug: "hello-world"}

	got, err := cache.GetPostDetail(context.Background(), key)
	require.Error(t, err)
	assert.NotErrorIs(t, err, custom_errors.ErrCacheMiss)
	assert.Nil(t, got)

	assert.Error(t, cache.DeletePostDetail(context.Background(), key))
}

func TestNewClient_FailsWhenServerUnreachable(t *testing.T) {
	log := logger.New("test")
	client, err := NewClient(config.Redis{Address: "127.0.0.1", Port: 1, PoolSize: 1}, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
	assert.Nil(t, client)
}

package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Error().Err(err).Str("key", key).Msg("cache get failed")
		}
		return nil, false
	}
	return val, true
}

func (rc *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := rc.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (rc *RedisCache) Clear(ctx context.Context, key string) {
	if err := rc.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("cache clear failed")
	}
}

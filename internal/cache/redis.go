package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fekuna/menu-service/pkg/logger"
)

type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.ZapLogger
}

var _ Cache = (*Redis)(nil)

func NewRedis(client *redis.Client, ttl time.Duration, log logger.ZapLogger) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func (c *Redis) Get(ctx context.Context, key string, dest any) bool {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache get failed, treating as miss", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(val, dest); err != nil {
		c.logger.Warn("cache entry unreadable, treating as miss", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *Redis) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache set skipped, marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Redis) Invalidate(ctx context.Context, prefixes ...string) {
	for _, prefix := range prefixes {
		keys, err := c.client.Keys(ctx, prefix+"*").Result()
		if err != nil {
			c.logger.Warn("cache invalidation failed", zap.String("prefix", prefix), zap.Error(err))
			continue
		}
		if len(keys) == 0 {
			continue
		}
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			c.logger.Warn("cache delete failed", zap.String("prefix", prefix), zap.Error(err))
		}
	}
}

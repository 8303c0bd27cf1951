package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"

	"shortener-go/constant"
	"shortener-go/internal/model"
	"shortener-go/pkg/logging"
)

// RedisUrlCache keeps active urls by short code. Cached rows carry the counter
// as it was when the entry was written; only FullURL and IsActive are read back.
type RedisUrlCache struct {
	pool *redis.Pool
	ttl  time.Duration
}

func NewRedisUrlCache(pool *redis.Pool, ttl time.Duration) *RedisUrlCache {
	return &RedisUrlCache{pool: pool, ttl: ttl}
}

// Get reports a miss on any redis failure.
func (c *RedisUrlCache) Get(ctx context.Context, shortCode string) (*model.Url, bool) {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		logging.Logger.Warn("Redis connection unavailable", zap.Error(err))
		return nil, false
	}
	defer c.close(conn)

	key := constant.GetUrlKey(shortCode)
	raw, err := redis.Bytes(conn.Do("GET", key))
	if err != nil {
		if !errors.Is(err, redis.ErrNil) {
			logging.Logger.Warn("Redis read failed", zap.String("cache_key", key), zap.Error(err))
		}
		return nil, false
	}

	var url model.Url
	if err := json.Unmarshal(raw, &url); err != nil {
		logging.Logger.Warn("Cached url is corrupt", zap.String("cache_key", key), zap.Error(err))
		return nil, false
	}
	return &url, true
}

func (c *RedisUrlCache) Set(ctx context.Context, url *model.Url) {
	data, err := json.Marshal(url)
	if err != nil {
		return
	}

	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		logging.Logger.Warn("Redis connection unavailable", zap.Error(err))
		return
	}
	defer c.close(conn)

	key := constant.GetUrlKey(url.ShortURL)
	args := []any{key, data}
	if c.ttl > 0 {
		args = append(args, "PX", c.ttl.Milliseconds())
	}
	if _, err := conn.Do("SET", args...); err != nil {
		logging.Logger.Warn("Redis write failed", zap.String("cache_key", key), zap.Error(err))
	}
}

func (c *RedisUrlCache) Delete(ctx context.Context, shortCode string) {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		logging.Logger.Warn("Redis connection unavailable", zap.Error(err))
		return
	}
	defer c.close(conn)

	key := constant.GetUrlKey(shortCode)
	if _, err := conn.Do("DEL", key); err != nil {
		logging.Logger.Warn("Redis delete failed", zap.String("cache_key", key), zap.Error(err))
	}
}

func (c *RedisUrlCache) close(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		logging.Logger.Error("Failed to close Redis connection", zap.Error(err))
	}
}

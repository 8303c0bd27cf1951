package repository

import (
	"time"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"

	"shortener-go/pkg/logging"
)

// InitRedis builds a connection pool for addr. It returns nil when addr is empty.
func InitRedis(addr, password string) *redis.Pool {
	if addr == "" {
		return nil
	}

	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			conn, err := redis.Dial("tcp", addr)
			if err != nil {
				logging.Logger.Error("Failed to connect Redis",
					zap.String("addr", addr),
					zap.Error(err),
				)
				return nil, err
			}

			if password != "" {
				if _, authErr := conn.Do("AUTH", password); authErr != nil {
					if closeErr := conn.Close(); closeErr != nil {
						logging.Logger.Error("Failed to close redis connection after AUTH failure",
							zap.String("addr", addr),
							zap.Error(closeErr),
						)
					}
					logging.Logger.Error("Redis AUTH failed",
						zap.String("addr", addr),
						zap.Error(authErr),
					)
					return nil, authErr
				}
			}

			logging.Logger.Debug("Redis connection established",
				zap.String("addr", addr),
				zap.Bool("auth", password != ""),
			)
			return conn, nil
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			if err != nil {
				logging.Logger.Warn("Redis connection health check failed",
					zap.String("addr", addr),
					zap.Error(err),
				)
			}
			return err
		},
	}
}

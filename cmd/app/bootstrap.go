package main

import (
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shortener-go/internal/config"
	"shortener-go/internal/repository"
	"shortener-go/internal/service"
	"shortener-go/pkg/logging"
)

// application holds what every command needs.
type application struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	redis  *redis.Pool
	urls   *service.UrlService
}

func newApplication() (*application, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.InitLogger(logging.Options{
		Level:      cfg.Log.Level,
		Path:       cfg.Log.Path,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		return nil, err
	}

	db, err := repository.OpenDB(repository.DBOptions{
		DSN:             cfg.DB.DSN,
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		SlowThreshold:   cfg.DB.SlowThreshold,
	}, logger, logging.AtomicLevel)
	if err != nil {
		return nil, err
	}

	urlRepo := repository.NewGormUrlRepository(db)
	clickRepo := repository.NewGormClickRepository(db)
	opts := []service.Option{service.WithPingTimeout(cfg.Ping.Timeout)}

	pool := repository.InitRedis(cfg.Redis.Addr, cfg.Redis.Password)
	if pool != nil {
		opts = append(opts, service.WithCache(repository.NewRedisUrlCache(pool, cfg.Redis.TTL)))
		logger.Info("Redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	return &application{
		cfg:    cfg,
		logger: logger,
		db:     db,
		redis:  pool,
		urls:   service.NewUrlService(urlRepo, service.NewClickService(urlRepo, clickRepo), opts...),
	}, nil
}

func (a *application) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("Redis pool close failed", zap.Error(err))
		}
	}
	if err := repository.CloseDB(a.db); err != nil {
		a.logger.Warn("Database close failed", zap.Error(err))
	}
	_ = a.logger.Sync()
}

package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shortener-go/internal/model"
	"shortener-go/pkg/logging"
)

// DBOptions configures OpenDB.
type DBOptions struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

// NewDialector picks the gorm driver from the shape of dsn:
// postgres URLs or key=value strings, mysql:// or user@tcp(...) strings, anything else is a sqlite path.
func NewDialector(dsn string) gorm.Dialector {
	switch {
	case strings.HasPrefix(dsn, "postgresql+asyncpg://"):
		return postgres.Open("postgresql://" + strings.TrimPrefix(dsn, "postgresql+asyncpg://"))
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.Contains(dsn, "host="):
		return postgres.Open(dsn)
	case strings.HasPrefix(dsn, "mysql://"):
		return mysql.Open(withParam(strings.TrimPrefix(dsn, "mysql://"), "parseTime", "parseTime=true"))
	case strings.Contains(dsn, "@tcp("):
		return mysql.Open(withParam(dsn, "parseTime", "parseTime=true"))
	default:
		dsn = strings.TrimPrefix(dsn, "sqlite://")
		if !strings.Contains(dsn, "_pragma") {
			dsn = withParam(dsn, "_pragma", "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
		}
		return sqlite.Open(dsn)
	}
}

func withParam(dsn, key, param string) string {
	if strings.Contains(dsn, key+"=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}

// OpenDB connects, configures the pool and migrates the schema.
func OpenDB(opts DBOptions, logger *zap.Logger, atomicLogLevel zap.AtomicLevel) (*gorm.DB, error) {
	dialector := NewDialector(opts.DSN)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logging.NewGormLogger(logger, logging.ToGormLogLevel(atomicLogLevel.Level()), opts.SlowThreshold),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s database: %w", dialector.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql database: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.Info("Database connected", zap.String("driver", dialector.Name()))
	return db, nil
}

// Migrate creates or updates the urls and clicks tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Url{}, &model.Click{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// CloseDB releases the connection pool.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

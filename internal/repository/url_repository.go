package repository

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"shortener-go/internal/model"
)

// LookupMode selects the column Get matches against.
type LookupMode int

const (
	ByID LookupMode = iota
	ByFullURL
	ByShortURL
)

func (m LookupMode) column() string {
	switch m {
	case ByFullURL:
		return "full_url"
	case ByShortURL:
		return "short_url"
	default:
		return "id"
	}
}

// UpdateField names the single column Update mutates.
type UpdateField int

const (
	// FieldClicks increments the counter of an active url by one.
	FieldClicks UpdateField = iota + 1
	// FieldIsActive soft-deletes the url.
	FieldIsActive
)

type UrlRepository interface {
	Get(ctx context.Context, value any, mode LookupMode) (*model.Url, error)
	GetMulti(ctx context.Context, skip, limit int) ([]model.Url, error)
	Create(ctx context.Context, url *model.Url) error
	CreateMulti(ctx context.Context, urls []model.Url) error
	Update(ctx context.Context, id uint, field UpdateField) (*model.Url, error)
	SyncClicks(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

type GormUrlRepository struct {
	db *gorm.DB
}

func NewGormUrlRepository(db *gorm.DB) *GormUrlRepository {
	return &GormUrlRepository{db: db}
}

// Get ignores is_active.
func (r *GormUrlRepository) Get(ctx context.Context, value any, mode LookupMode) (*model.Url, error) {
	var url model.Url
	err := r.db.WithContext(ctx).Where(mode.column()+" = ?", value).Take(&url).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get url by %s: %w", mode.column(), err)
	}
	return &url, nil
}

func (r *GormUrlRepository) GetMulti(ctx context.Context, skip, limit int) ([]model.Url, error) {
	var urls []model.Url
	err := r.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&urls).Error
	if err != nil {
		return nil, fmt.Errorf("list urls: %w", err)
	}
	return urls, nil
}

func (r *GormUrlRepository) Create(ctx context.Context, url *model.Url) error {
	if err := r.db.WithContext(ctx).Create(url).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrConflict
		}
		return fmt.Errorf("create url: %w", err)
	}
	return nil
}

// CreateMulti inserts all urls with a single statement. The slice elements receive their ids.
func (r *GormUrlRepository) CreateMulti(ctx context.Context, urls []model.Url) error {
	if len(urls) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&urls).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return ErrConflict
		}
		return fmt.Errorf("create urls: %w", err)
	}
	return nil
}

// Update applies field to the row and returns it re-read. Incrementing the
// counter of an inactive url leaves it untouched and returns ErrInactive.
func (r *GormUrlRepository) Update(ctx context.Context, id uint, field UpdateField) (*model.Url, error) {
	db := r.db.WithContext(ctx).Model(&model.Url{})

	switch field {
	case FieldClicks:
		res := db.Where("id = ? AND is_active = ?", id, true).
			UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))
		if res.Error != nil {
			return nil, fmt.Errorf("increment clicks: %w", res.Error)
		}
		url, err := r.Get(ctx, id, ByID)
		if err != nil {
			return nil, err
		}
		if res.RowsAffected == 0 {
			return url, ErrInactive
		}
		return url, nil
	case FieldIsActive:
		if err := db.Where("id = ?", id).UpdateColumn("is_active", false).Error; err != nil {
			return nil, fmt.Errorf("deactivate url: %w", err)
		}
		return r.Get(ctx, id, ByID)
	default:
		return nil, fmt.Errorf("unsupported update field %d", field)
	}
}

// SyncClicks raises every counter that is below the number of click rows of its url,
// in a single statement, and returns how many urls changed. Counters are never lowered:
// a redirect moves the counter before it writes its click row.
func (r *GormUrlRepository) SyncClicks(ctx context.Context) (int64, error) {
	rowCount := r.db.WithContext(ctx).Model(&model.Click{}).
		Select("COUNT(*)").
		Where("clicks.url_id = urls.id")

	res := r.db.WithContext(ctx).Model(&model.Url{}).
		Where("urls.clicks < (?)", rowCount).
		UpdateColumn("clicks", gorm.Expr("(?)", rowCount))
	if res.Error != nil {
		return 0, fmt.Errorf("sync clicks: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Ping touches both tables concurrently.
func (r *GormUrlRepository) Ping(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, m := range []any{&model.Url{}, &model.Click{}} {
		g.Go(func() error {
			var ids []uint
			return r.db.WithContext(gctx).Model(m).Limit(1).Pluck("id", &ids).Error
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return ctx.Err()
}

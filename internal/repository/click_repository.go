package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"shortener-go/internal/model"
)

type ClickRepository interface {
	Create(ctx context.Context, click *model.Click) error
	GetMulti(ctx context.Context, urlID uint, skip, limit int) ([]model.Click, error)
	Count(ctx context.Context, urlID uint) (int64, error)
}

type GormClickRepository struct {
	db *gorm.DB
}

func NewGormClickRepository(db *gorm.DB) *GormClickRepository {
	return &GormClickRepository{db: db}
}

func (r *GormClickRepository) Create(ctx context.Context, click *model.Click) error {
	if err := r.db.WithContext(ctx).Create(click).Error; err != nil {
		return fmt.Errorf("create click: %w", err)
	}
	return nil
}

// GetMulti returns the clicks of urlID oldest first.
func (r *GormClickRepository) GetMulti(ctx context.Context, urlID uint, skip, limit int) ([]model.Click, error) {
	var clicks []model.Click
	err := r.db.WithContext(ctx).
		Where("url_id = ?", urlID).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&clicks).Error
	if err != nil {
		return nil, fmt.Errorf("list clicks: %w", err)
	}
	return clicks, nil
}

func (r *GormClickRepository) Count(ctx context.Context, urlID uint) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Click{}).Where("url_id = ?", urlID).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count clicks: %w", err)
	}
	return total, nil
}

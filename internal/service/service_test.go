package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"shortener-go/internal/apperrors"
	"shortener-go/internal/model"
	"shortener-go/internal/repository"
	"shortener-go/internal/testutil"
)

type testEnv struct {
	db     *gorm.DB
	urls   *repository.GormUrlRepository
	clicks *repository.GormClickRepository
	svc    *UrlService
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	urls := repository.NewGormUrlRepository(db)
	clicks := repository.NewGormClickRepository(db)
	return &testEnv{
		db:     db,
		urls:   urls,
		clicks: clicks,
		svc:    NewUrlService(urls, NewClickService(urls, clicks), opts...),
	}
}

func assertCode(t *testing.T, err error, code int) {
	t.Helper()
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want AppError with code %d", err, code)
	}
	if appErr.Code != code {
		t.Fatalf("code = %d, want %d (%v)", appErr.Code, code, err)
	}
}

func mustCreate(t *testing.T, svc *UrlService, fullURL string) *model.Url {
	t.Helper()
	url, _, err := svc.CreateUrl(context.Background(), fullURL)
	if err != nil {
		t.Fatalf("CreateUrl(%q): %v", fullURL, err)
	}
	return url
}

// setClicks overwrites a counter directly, bypassing the repository.
func setClicks(t *testing.T, env *testEnv, id uint, n int64) {
	t.Helper()
	if err := env.db.Model(&model.Url{}).Where("id = ?", id).UpdateColumn("clicks", n).Error; err != nil {
		t.Fatalf("set clicks of %d: %v", id, err)
	}
}

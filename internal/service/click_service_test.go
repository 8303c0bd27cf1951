package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"shortener-go/internal/repository"
)

func TestClickServiceRecord(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	url := mustCreate(t, env.svc, "https://example.com/c")

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clicks := NewClickService(env.urls, env.clicks)
	clicks.now = func() time.Time { return fixed }

	got, err := clicks.Record(ctx, url.ID, strings.Repeat("x", 150))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if got.Clicks != 1 {
		t.Errorf("clicks = %d, want 1", got.Clicks)
	}

	rows, err := env.clicks.GetMulti(ctx, url.ID, 0, 10)
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetMulti = %v, %v", rows, err)
	}
	if len(rows[0].Client) != maxClientLength {
		t.Errorf("client stored with %d characters", len(rows[0].Client))
	}
	if !rows[0].Date.Equal(fixed) {
		t.Errorf("date = %v, want %v", rows[0].Date, fixed)
	}
}

func TestClickServiceReconcile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	a := mustCreate(t, env.svc, "https://example.com/a")
	b := mustCreate(t, env.svc, "https://example.com/b")

	for i := 0; i < 3; i++ {
		if _, err := env.svc.Redirect(ctx, a.ShortURL, "192.0.2.1:1"); err != nil {
			t.Fatalf("Redirect: %v", err)
		}
	}

	setClicks(t, env, a.ID, 1)
	// ahead of its rows, as after a failed click insert
	if _, err := env.urls.Update(ctx, b.ID, repository.FieldClicks); err != nil {
		t.Fatalf("Update: %v", err)
	}

	fixed, err := env.svc.Reconcile(ctx)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if fixed != 1 {
		t.Errorf("fixed = %d, want 1", fixed)
	}

	gotA, _ := env.urls.Get(ctx, a.ID, repository.ByID)
	gotB, _ := env.urls.Get(ctx, b.ID, repository.ByID)
	if gotA.Clicks != 3 || gotB.Clicks != 1 {
		t.Errorf("counters = %d, %d; want 3, 1", gotA.Clicks, gotB.Clicks)
	}

	fixed, err = env.svc.Reconcile(ctx)
	if err != nil || fixed != 0 {
		t.Errorf("second Reconcile = %d, %v", fixed, err)
	}
}

// redirectingRepo lands a redirect right before the counters are synced.
type redirectingRepo struct {
	*repository.GormUrlRepository
	redirect func()
}

func (r *redirectingRepo) SyncClicks(ctx context.Context) (int64, error) {
	r.redirect()
	return r.GormUrlRepository.SyncClicks(ctx)
}

func TestClickServiceReconcileKeepsConcurrentClicks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	url := mustCreate(t, env.svc, "https://example.com/busy")

	for i := 0; i < 2; i++ {
		if _, err := env.svc.Redirect(ctx, url.ShortURL, "192.0.2.1:1"); err != nil {
			t.Fatalf("Redirect: %v", err)
		}
	}

	repo := &redirectingRepo{GormUrlRepository: env.urls}
	repo.redirect = func() {
		if _, err := env.svc.Redirect(ctx, url.ShortURL, "192.0.2.9:1"); err != nil {
			t.Errorf("Redirect during reconcile: %v", err)
		}
	}
	clicks := NewClickService(repo, env.clicks)

	fixed, err := clicks.Reconcile(ctx)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if fixed != 0 {
		t.Errorf("fixed = %d, want 0", fixed)
	}

	stored, _ := env.urls.Get(ctx, url.ID, repository.ByID)
	rows, _ := env.clicks.Count(ctx, url.ID)
	if stored.Clicks != 3 || rows != 3 {
		t.Errorf("clicks = %d, rows = %d; want 3, 3", stored.Clicks, rows)
	}
}

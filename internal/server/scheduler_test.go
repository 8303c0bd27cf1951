package server

import (
	"testing"

	"shortener-go/internal/repository"
	"shortener-go/internal/service"
	"shortener-go/internal/testutil"
)

func TestNewScheduler(t *testing.T) {
	db := testutil.NewDB(t)
	urls := repository.NewGormUrlRepository(db)
	svc := service.NewUrlService(urls, service.NewClickService(urls, repository.NewGormClickRepository(db)))

	c, err := NewScheduler("*/10 * * * *", svc)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	if n := len(c.Entries()); n != 1 {
		t.Errorf("entries = %d, want 1", n)
	}

	c, err = NewScheduler("", svc)
	if err != nil {
		t.Fatalf("NewScheduler with empty schedule: %v", err)
	}
	if n := len(c.Entries()); n != 0 {
		t.Errorf("disabled schedule has %d entries", n)
	}

	if _, err := NewScheduler("every now and then", svc); err == nil {
		t.Error("invalid schedule accepted")
	}
}

package repository

import (
	"context"
	"testing"
	"time"

	"shortener-go/internal/model"
	"shortener-go/internal/testutil"
)

func TestClickRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	urls := NewGormUrlRepository(db)
	clicks := NewGormClickRepository(db)

	a := newUrl("https://example.com/a", "aaaaa")
	b := newUrl("https://example.com/b", "bbbbb")
	for _, u := range []*model.Url{a, b} {
		if err := urls.Create(ctx, u); err != nil {
			t.Fatalf("Create url: %v", err)
		}
	}

	now := time.Now()
	for i := 0; i < 5; i++ {
		click := &model.Click{UrlID: a.ID, Date: now.Add(time.Duration(i) * time.Second), Client: "192.0.2.1:5000"}
		if err := clicks.Create(ctx, click); err != nil {
			t.Fatalf("Create click: %v", err)
		}
	}
	if err := clicks.Create(ctx, &model.Click{UrlID: b.ID, Date: now, Client: "192.0.2.2:5000"}); err != nil {
		t.Fatalf("Create click: %v", err)
	}

	total, err := clicks.Count(ctx, a.ID)
	if err != nil || total != 5 {
		t.Fatalf("Count = %d, %v; want 5", total, err)
	}

	page, err := clicks.GetMulti(ctx, a.ID, 3, 10)
	if err != nil {
		t.Fatalf("GetMulti: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("GetMulti(skip=3) returned %d clicks, want 2", len(page))
	}
	if !page[0].Date.Before(page[1].Date) {
		t.Errorf("clicks not ordered oldest first: %v, %v", page[0].Date, page[1].Date)
	}
	for _, c := range page {
		if c.UrlID != a.ID {
			t.Errorf("click of url %d leaked into history of %d", c.UrlID, a.ID)
		}
	}
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"shortener-go/constant"
)

func TestRedisUrlCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	mr.RequireAuth("secret")

	pool := InitRedis(mr.Addr(), "secret")
	t.Cleanup(func() { _ = pool.Close() })
	cache := NewRedisUrlCache(pool, time.Minute)

	if _, ok := cache.Get(ctx, "abcde"); ok {
		t.Fatal("hit on empty cache")
	}

	url := newUrl("https://example.com/a", "abcde")
	url.ID = 7
	cache.Set(ctx, url)

	if !mr.Exists(constant.GetUrlKey("abcde")) {
		t.Fatalf("key %s not written", constant.GetUrlKey("abcde"))
	}
	if ttl := mr.TTL(constant.GetUrlKey("abcde")); ttl != time.Minute {
		t.Errorf("ttl = %v, want 1m", ttl)
	}

	got, ok := cache.Get(ctx, "abcde")
	if !ok || got.ID != 7 || got.FullURL != url.FullURL || !got.IsActive {
		t.Fatalf("Get = %+v, %t", got, ok)
	}

	cache.Delete(ctx, "abcde")
	if _, ok := cache.Get(ctx, "abcde"); ok {
		t.Fatal("hit after Delete")
	}
}

func TestRedisUrlCacheExpiry(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	pool := InitRedis(mr.Addr(), "")
	t.Cleanup(func() { _ = pool.Close() })
	cache := NewRedisUrlCache(pool, time.Second)

	cache.Set(ctx, newUrl("https://example.com/a", "abcde"))
	mr.FastForward(2 * time.Second)

	if _, ok := cache.Get(ctx, "abcde"); ok {
		t.Fatal("hit after expiry")
	}
}

func TestRedisUrlCacheCorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	pool := InitRedis(mr.Addr(), "")
	t.Cleanup(func() { _ = pool.Close() })

	if err := mr.Set(constant.GetUrlKey("abcde"), "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, ok := NewRedisUrlCache(pool, 0).Get(context.Background(), "abcde"); ok {
		t.Fatal("corrupt entry reported as hit")
	}
}

func TestInitRedisWithoutAddr(t *testing.T) {
	if pool := InitRedis("", ""); pool != nil {
		t.Fatal("expected nil pool for empty addr")
	}
}

package cache

import (
	"context"
	"strconv"
	"testing"
	"time"
)

func TestMemoryCache_TTL(t *testing.T) {
	c := NewMemoryCache()
	now := time.Date(2024, 12, 13, 11, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 15*time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(got) != "v" {
		t.Fatalf("expected hit, got %q %v %v", got, ok, err)
	}

	now = now.Add(15 * time.Minute)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatalf("entry must expire after its TTL")
	}
}

func TestMemoryCache_SetEvictsExpiredEntries(t *testing.T) {
	c := NewMemoryCache()
	now := time.Date(2024, 12, 13, 11, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	if _, err := c.Incr(ctx, "gen"); err != nil {
		t.Fatalf("incr: %v", err)
	}
	for i := 0; i < 1000; i++ {
		if err := c.Set(ctx, "resp:1:"+strconv.Itoa(i), []byte("v"), time.Minute); err != nil {
			t.Fatalf("set: %v", err)
		}
	}

	now = now.Add(time.Hour)
	if err := c.Set(ctx, "resp:2:fresh", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	if len(c.items) != 2 {
		t.Fatalf("expected only the counter and the fresh entry to remain, got %d entries", len(c.items))
	}
	if _, ok, _ := c.Get(ctx, "gen"); !ok {
		t.Fatalf("entries without a TTL must survive the sweep")
	}
}

func TestMemoryCache_Incr(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := c.Incr(ctx, "gen")
		if err != nil {
			t.Fatalf("incr: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}

	raw, ok, _ := c.Get(ctx, "gen")
	if !ok || string(raw) != "3" {
		t.Fatalf("counter must be readable as a value, got %q", raw)
	}
}

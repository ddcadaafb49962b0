package cache

import (
	"context"
	"testing"
	"time"

	"github.com/cachekit/cache/cachetest"
)

func TestMemoryStoreContract(t *testing.T) {
	store := newMemoryStore(time.Second, time.Minute)
	cachetest.RunStoreContract(t, store, cachetest.Options{})
}

func TestMemoryStoreClonesValues(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(time.Minute, time.Minute)

	original := []byte("value")
	if err := store.Set(ctx, "k", original, 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	original[0] = 'X'

	body, ok, err := store.Get(ctx, "k")
	if err != nil || !ok || string(body) != "value" {
		t.Fatalf("expected stored value isolated from caller mutation, got %q", string(body))
	}
}

func TestMemoryStoreDefaultTTLApplied(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(30*time.Millisecond, time.Minute)

	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(60 * time.Millisecond)
	if _, ok, err := store.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("expected default ttl expiry, ok=%v err=%v", ok, err)
	}
}

func TestMemoryStoreIgnoresForeignValues(t *testing.T) {
	ctx := context.Background()
	ms := newMemoryStore(time.Minute, time.Minute).(*memoryStore)
	ms.cache.Set("k", 42, time.Minute)

	if _, ok, err := ms.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("expected non-byte value reported as miss, ok=%v err=%v", ok, err)
	}
}

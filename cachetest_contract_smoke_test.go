package cache_test

import (
	"context"
	"testing"

	"github.com/cachekit/cache"
	"github.com/cachekit/cache/cachetest"
)

func TestCachetestRunStoreContract_MemoryStore(t *testing.T) {
	store := cache.NewMemoryStore(context.Background())
	cachetest.RunStoreContract(t, store, cachetest.Options{})
}

func TestCachetestRunStoreContract_NullStore(t *testing.T) {
	store := cache.NewNullStore(context.Background())
	cachetest.RunStoreContract(t, store, cachetest.Options{NullSemantics: true})
}

func TestCachetestRunStoreContract_FailsafeMemoryStore(t *testing.T) {
	base := cache.NewMemoryStore(context.Background())
	store, err := cache.NewFailsafeStore(base, cache.FailsafeConfig{
		Notifier: cache.NotifierFunc(func(context.Context, cache.FailureEvent) {}),
	})
	if err != nil {
		t.Fatalf("failsafe store create failed: %v", err)
	}
	cachetest.RunStoreContract(t, store, cachetest.Options{})
}

package cachetest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cachekit/cache/cachecore"
)

// Options configures shared store contract checks.
type Options struct {
	// CaseName is used to namespace keys. Defaults to t.Name().
	CaseName string
	// NullSemantics enables relaxed expectations for the null store.
	NullSemantics bool
	// SkipCloneCheck disables the "get returns a cloned value" assertion.
	SkipCloneCheck bool
	// TTL controls the expiry duration used in TTL tests.
	TTL time.Duration
	// TTLWait is how long the harness waits for expiry to occur.
	TTLWait time.Duration
	// SkipFlush disables the flush assertion for drivers where it is expensive or unavailable.
	SkipFlush bool
}

// Store is the minimal contract required by RunStoreContract.
type Store = cachecore.Store

// RunStoreContract runs a backend-agnostic store contract suite.
func RunStoreContract(t *testing.T, store Store, opts Options) {
	t.Helper()

	caseName := opts.CaseName
	if caseName == "" {
		caseName = t.Name()
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 50 * time.Millisecond
	}
	wait := opts.TTLWait
	if wait <= 0 {
		wait = 120 * time.Millisecond
	}

	ctx := context.Background()
	key := func(s string) string {
		return sanitize(caseName) + ":" + s
	}

	// Set/Get round-trip.
	if err := store.Set(ctx, key("alpha"), []byte("value"), time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	body, ok, err := store.Get(ctx, key("alpha"))
	if err != nil {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if opts.NullSemantics {
		if ok {
			t.Fatalf("expected miss for null semantics")
		}
	} else {
		if !ok || string(body) != "value" {
			t.Fatalf("unexpected get result: ok=%v body=%q err=%v", ok, string(body), err)
		}
		if !opts.SkipCloneCheck {
			body[0] = 'X'
			body2, ok2, err2 := store.Get(ctx, key("alpha"))
			if err2 != nil || !ok2 || string(body2) != "value" {
				t.Fatalf("expected stored value unchanged, got ok=%v body=%q err=%v", ok2, string(body2), err2)
			}
		}
	}

	// TTL expiry.
	if err := store.Set(ctx, key("ttl"), []byte("v"), ttl); err != nil {
		t.Fatalf("set ttl failed: %v", err)
	}
	if !opts.NullSemantics {
		time.Sleep(wait)
		if _, ok, err := store.Get(ctx, key("ttl")); err != nil || ok {
			t.Fatalf("expected ttl key expired: ok=%v err=%v", ok, err)
		}
	}

	// Delete.
	if err := store.Set(ctx, key("del"), []byte("v"), time.Second); err != nil {
		t.Fatalf("set del failed: %v", err)
	}
	if err := store.Delete(ctx, key("del")); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, err := store.Get(ctx, key("del")); err != nil || ok {
		t.Fatalf("expected deleted key gone: ok=%v err=%v", ok, err)
	}

	// DeleteMany.
	if err := store.Set(ctx, key("dm1"), []byte("1"), time.Second); err != nil {
		t.Fatalf("set dm1 failed: %v", err)
	}
	if err := store.Set(ctx, key("dm2"), []byte("2"), time.Second); err != nil {
		t.Fatalf("set dm2 failed: %v", err)
	}
	if err := store.DeleteMany(ctx, key("dm1"), key("dm2")); err != nil {
		t.Fatalf("delete many failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, key("dm1")); ok {
		t.Fatalf("expected dm1 gone")
	}
	if _, ok, _ := store.Get(ctx, key("dm2")); ok {
		t.Fatalf("expected dm2 gone")
	}

	// Flush.
	if !opts.SkipFlush {
		if err := store.Set(ctx, key("flush"), []byte("v"), time.Second); err != nil {
			t.Fatalf("set flush failed: %v", err)
		}
		if err := store.Flush(ctx); err != nil {
			t.Fatalf("flush failed: %v", err)
		}
		if _, ok, err := store.Get(ctx, key("flush")); err != nil || ok {
			t.Fatalf("expected flushed key gone: ok=%v err=%v", ok, err)
		}
	}
}

func sanitize(name string) string {
	replacer := strings.NewReplacer("/", "_", " ", "_", "#", "_")
	return replacer.Replace(name)
}

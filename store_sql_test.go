package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cachekit/cache/cachetest"
)

func newSQLiteStore(t *testing.T) Store {
	t.Helper()
	store, err := newSQLStore(StoreConfig{
		SQLDriverName: "sqlite",
		SQLDSN:        "file::memory:?cache=shared",
		SQLTable:      "cache_entries",
		DefaultTTL:    time.Second,
		Prefix:        "p",
	})
	if err != nil {
		t.Fatalf("sqlite store create failed: %v", err)
	}
	return store
}

func TestSQLStoreContract(t *testing.T) {
	cachetest.RunStoreContract(t, newSQLiteStore(t), cachetest.Options{SkipFlush: true})
}

func TestSQLStoreBasics(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "alpha", []byte("one"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	body, ok, err := store.Get(ctx, "alpha")
	if err != nil || !ok || string(body) != "one" {
		t.Fatalf("unexpected get result: ok=%v err=%v body=%s", ok, err, string(body))
	}

	if err := store.Delete(ctx, "alpha"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "alpha"); ok {
		t.Fatalf("expected alpha deleted")
	}
	if store.Driver() != DriverSQL {
		t.Fatalf("unexpected driver %s", store.Driver())
	}
}

func TestSQLStoreLazyExpiry(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "exp", []byte("v"), 20*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(40 * time.Millisecond)
	if _, ok, err := store.Get(ctx, "exp"); err != nil || ok {
		t.Fatalf("expected lazy expiry, ok=%v err=%v", ok, err)
	}
}

func TestSQLStoreDialects(t *testing.T) {
	pg := &sqlStore{driverName: "pgx", table: "t"}
	if !strings.Contains(pg.upsertSQL(), "ON CONFLICT") || !strings.Contains(pg.upsertSQL(), "$1") {
		t.Fatalf("unexpected postgres upsert: %s", pg.upsertSQL())
	}
	my := &sqlStore{driverName: "mysql", table: "t"}
	if !strings.Contains(my.upsertSQL(), "ON DUPLICATE KEY") {
		t.Fatalf("unexpected mysql upsert: %s", my.upsertSQL())
	}
	lite := &sqlStore{driverName: "sqlite", table: "t"}
	if !strings.Contains(lite.upsertSQL(), "ON CONFLICT(k)") {
		t.Fatalf("unexpected sqlite upsert: %s", lite.upsertSQL())
	}
}

func TestSQLStoreConfigValidation(t *testing.T) {
	if _, err := newSQLStore(StoreConfig{}); err == nil {
		t.Fatalf("expected error without driver name and dsn")
	}
	if err := validateSQLTableName("good_name"); err != nil {
		t.Fatalf("unexpected table name error: %v", err)
	}
	if err := validateSQLTableName("bad name;"); err == nil {
		t.Fatalf("expected invalid table name error")
	}
	if err := validateSQLTableName(""); err == nil {
		t.Fatalf("expected empty table name error")
	}
}

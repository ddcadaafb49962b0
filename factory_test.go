package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/cachekit/cache/cachecore"
)

func TestNewStoreDefaultsToMemory(t *testing.T) {
	store := NewStore(context.Background(), StoreConfig{})
	if store.Driver() != cachecore.DriverMemory {
		t.Fatalf("expected memory driver, got %s", store.Driver())
	}
}

func TestNewStoreNull(t *testing.T) {
	store := NewStore(context.Background(), StoreConfig{Driver: DriverNull})
	if store.Driver() != cachecore.DriverNull {
		t.Fatalf("expected null driver, got %s", store.Driver())
	}
}

func TestNewStoreWithOptions(t *testing.T) {
	client := newStubRedisClient()
	store := NewStoreWith(context.Background(), DriverRedis,
		WithRedisClient(client),
		WithPrefix("opts"),
	)
	if store.Driver() != DriverRedis {
		t.Fatalf("expected redis driver, got %s", store.Driver())
	}

	ctx := context.Background()
	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, ok := client.store["opts:k"]; !ok {
		t.Fatalf("expected prefix option applied, stored keys: %v", client.store)
	}
}

func TestNewStoreWithNotifierWrapsFailsafe(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	client := newStubRedisClient()
	client.getErr = errors.New("redis down")

	store := NewRedisStore(ctx, client, WithNotifier(notifier))

	body, ok, err := store.Get(ctx, "k")
	if err != nil || ok || body != nil {
		t.Fatalf("expected contained failure as miss, got ok=%v err=%v", ok, err)
	}
	if len(notifier.events) != 1 || notifier.events[0].Action != FailureRead {
		t.Fatalf("expected one read failure event, got %+v", notifier.events)
	}
	if notifier.events[0].Driver != DriverRedis {
		t.Fatalf("expected redis driver in event, got %+v", notifier.events[0])
	}
}

func TestNewSQLStoreBadConfigReturnsErrorStore(t *testing.T) {
	ctx := context.Background()
	store := NewSQLStore(ctx, "", "", "")
	if store.Driver() != DriverSQL {
		t.Fatalf("expected sql driver identity preserved, got %s", store.Driver())
	}
	if _, _, err := store.Get(ctx, "k"); err == nil {
		t.Fatalf("expected construction error surfaced on get")
	}
	if err := store.Set(ctx, "k", []byte("v"), 0); err == nil {
		t.Fatalf("expected construction error surfaced on set")
	}
	if err := store.Delete(ctx, "k"); err == nil {
		t.Fatalf("expected construction error surfaced on delete")
	}
	if err := store.DeleteMany(ctx, "a"); err == nil {
		t.Fatalf("expected construction error surfaced on delete many")
	}
	if err := store.Flush(ctx); err == nil {
		t.Fatalf("expected construction error surfaced on flush")
	}
}

func TestNewSQLStoreBadConfigWithNotifierStaysQuiet(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	store := NewSQLStore(ctx, "", "", "", WithNotifier(notifier))

	if _, _, err := store.Get(ctx, "k"); err != nil {
		t.Fatalf("expected contained construction failure, got %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected one failure event, got %d", len(notifier.events))
	}
}

func TestNewDynamoStoreFactory(t *testing.T) {
	ctx := context.Background()
	stub := newStubDynamoClient()
	store := NewDynamoStore(ctx, stub, WithPrefix("f"))
	if store.Driver() != DriverDynamo {
		t.Fatalf("expected dynamodb driver, got %s", store.Driver())
	}

	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, ok := stub.items["f:k"]; !ok {
		t.Fatalf("expected prefix option applied, stored items: %v", stub.items)
	}
}

func TestNewDynamoStoreEnsureFailureReturnsErrorStore(t *testing.T) {
	ctx := context.Background()
	stub := newStubDynamoClient()
	stub.describeErr = errors.New("access denied")

	store := NewDynamoStore(ctx, stub)
	if store.Driver() != DriverDynamo {
		t.Fatalf("expected dynamodb driver identity preserved, got %s", store.Driver())
	}
	if _, _, err := store.Get(ctx, "k"); err == nil {
		t.Fatalf("expected construction error surfaced on get")
	}
}

func TestNewDynamoStoreEnsureFailureWithNotifierStaysQuiet(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	stub := newStubDynamoClient()
	stub.describeErr = errors.New("access denied")

	store := NewDynamoStore(ctx, stub, WithNotifier(notifier))
	if _, _, err := store.Get(ctx, "k"); err != nil {
		t.Fatalf("expected contained construction failure, got %v", err)
	}
	if len(notifier.events) != 1 || notifier.events[0].Driver != DriverDynamo {
		t.Fatalf("expected one dynamodb failure event, got %+v", notifier.events)
	}
}

func TestNewNATSStoreFactory(t *testing.T) {
	kv := newStubNATSKeyValue("bucket")
	store := NewNATSStore(context.Background(), kv, false, WithPrefix("f"))
	if store.Driver() != DriverNATS {
		t.Fatalf("expected nats driver, got %s", store.Driver())
	}
}

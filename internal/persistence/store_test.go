package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/rental-console/internal/config"
)

func exerciseStore(t *testing.T, kv KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "tokenName"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := kv.Set(ctx, "tokenName", "sa-tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "tokenValue", "abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := kv.Get(ctx, "tokenName")
	if err != nil || !ok || v != "sa-tok" {
		t.Fatalf("get tokenName = %q ok=%v err=%v", v, ok, err)
	}
	if err := kv.Delete(ctx, "tokenName", "tokenValue", "userInfo"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "tokenValue"); ok {
		t.Fatalf("tokenValue survived delete")
	}
	if err := kv.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	exerciseStore(t, NewFileStore(path, zap.NewNop()))
}

func TestFileStorePermissionsAndCleanup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path, nil)
	ctx := context.Background()

	if err := store.Set(ctx, "tokenValue", "secret"); err != nil {
		t.Fatalf("set: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600, got %o", perm)
	}

	if err := store.Delete(ctx, "tokenValue"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed once empty, err=%v", err)
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()
	if err := NewFileStore(path, nil).Set(ctx, "userInfo", `{"id":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := NewFileStore(path, nil).Get(ctx, "userInfo")
	if err != nil || !ok || v != `{"id":1}` {
		t.Fatalf("reopened get = %q ok=%v err=%v", v, ok, err)
	}
}

func TestFileStoreReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := NewFileStore(path, nil)
	ctx := context.Background()

	if _, _, err := store.Get(ctx, "tokenName"); err == nil {
		t.Fatalf("expected read error for corrupt file")
	}
	if err := store.Set(ctx, "tokenName", "sa-tok"); err != nil {
		t.Fatalf("set over corrupt file: %v", err)
	}
	v, ok, err := store.Get(ctx, "tokenName")
	if err != nil || !ok || v != "sa-tok" {
		t.Fatalf("get after repair = %q ok=%v err=%v", v, ok, err)
	}
}

func TestRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	defer mr.Close()

	r := NewRedis(config.RedisConfig{Addr: mr.Addr(), KeyPrefix: "rc:"}, zap.NewNop())
	defer r.Close()

	exerciseStore(t, r)

	if err := r.Set(context.Background(), "tokenName", "sa-tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := mr.Get("rc:tokenName")
	if err != nil || got != "sa-tok" {
		t.Fatalf("expected prefixed key, got %q err=%v", got, err)
	}
}

func TestOpenSelectsDriver(t *testing.T) {
	cfg := config.Config{Storage: config.StorageConfig{Driver: config.StorageMemory}}
	kv, closeFn, err := Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer closeFn()
	if _, ok := kv.(*MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", kv)
	}

	cfg.Storage.Driver = "tape"
	if _, _, err := Open(cfg, zap.NewNop()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_STORE", "")
	t.Setenv("API_BASE_URL", "http://api.local/api/")
	t.Setenv("API_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Driver != StorageFile {
		t.Fatalf("driver = %q", cfg.Storage.Driver)
	}
	if cfg.API.BaseURL != "http://api.local/api" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout() != 10*time.Second {
		t.Fatalf("timeout = %v", cfg.API.Timeout())
	}
	if cfg.Auth.AdminUserType != "1" || cfg.Auth.LoginPath != "/login" {
		t.Fatalf("auth = %+v", cfg.Auth)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SESSION_STORE", "etcd")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}

	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("REDIS_DB", "x")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for bad REDIS_DB")
	}

	t.Setenv("REDIS_DB", "2")
	cfg, err := Load()
	if err != nil || cfg.Storage.Driver != StorageRedis || cfg.Redis.DB != 2 {
		t.Fatalf("cfg = %+v err=%v", cfg, err)
	}
}

func TestRequestTimeout(t *testing.T) {
	if (AppConfig{}).RequestTimeout() != 0 {
		t.Fatalf("zero seconds disables the timeout")
	}
	if (AppConfig{RequestTimeoutSeconds: 3}).RequestTimeout() != 3*time.Second {
		t.Fatalf("unexpected timeout")
	}
}

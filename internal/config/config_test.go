package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.Server.Port)
	}
	if cfg.Featured.LikeThreshold != 10 || cfg.Featured.WindowDays != 30 {
		t.Fatalf("unexpected featured defaults: %+v", cfg.Featured)
	}
	if cfg.JWT.Secret != "test-secret" {
		t.Fatal("JWT secret should come from the environment")
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: \"9000\"\nfeatured:\n  like_threshold: 5\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "7777")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "7777" {
		t.Fatalf("env should override file, got port %q", cfg.Server.Port)
	}
	if cfg.Featured.LikeThreshold != 5 {
		t.Fatalf("file value lost, got threshold %d", cfg.Featured.LikeThreshold)
	}
}

func TestLoadConfigEnvParsesIntegerFields(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("FEATURED_LIKE_THRESHOLD", "25")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Featured.LikeThreshold != 25 {
		t.Fatalf("expected threshold 25, got %d", cfg.Featured.LikeThreshold)
	}
}

func TestLoadConfigRejectsBadIntegerEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("FEATURED_LIKE_THRESHOLD", "ten")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("non-numeric threshold should fail to load")
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing JWT secret should fail validation")
	}
}

func TestLoadConfigRejectsBadDurations(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "not-a-duration")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("invalid duration should fail validation")
	}
}

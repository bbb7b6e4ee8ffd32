package core

import (
	"os"
	"path/filepath"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"CONFIG_FILE", "PORT", "LOG_DIR", "DATABASE_URL", "POSTGRES_URL", "JWT_SECRET", "BCRYPT_COST"} {
		t.Setenv(name, "")
	}
}

func TestLoadFromFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"4000\"\njwt_secret: file-secret\ndatabase_url: postgres://db/blogapi\nbcrypt_cost: 12\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "4000" {
		t.Fatalf("expected port from file, got %q", cfg.Port)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Fatalf("expected secret from file, got %q", cfg.JWTSecret)
	}
	if cfg.DatabaseURL != "postgres://db/blogapi" {
		t.Fatalf("expected dsn from file, got %q", cfg.DatabaseURL)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected cost from file, got %d", cfg.BcryptCost)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"4000\"\njwt_secret: file-secret\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "5000")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("env PORT should win, got %q", cfg.Port)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Fatalf("env JWT_SECRET should win, got %q", cfg.JWTSecret)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("JWT_SECRET", "some-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.BcryptCost != DefaultBcryptCost {
		t.Fatalf("expected default cost %d, got %d", DefaultBcryptCost, cfg.BcryptCost)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	clearConfigEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error when no signing secret is configured")
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

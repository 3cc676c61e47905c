package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Empty values are treated as unset.
	for _, key := range []string{"CONFIG_FILE", "PORT", "JWT_EXPIRES_IN", "ENABLE_CORS", "DISCORD_CLIENT_ID", "DISCORD_CLIENT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "3001" {
		t.Errorf("expected default port 3001, got %s", cfg.Port)
	}
	if cfg.JWTExpiresIn != 24*time.Hour {
		t.Errorf("expected default token lifetime 24h, got %v", cfg.JWTExpiresIn)
	}
	if !cfg.EnableCORS {
		t.Error("expected CORS to be enabled by default")
	}
	if cfg.DiscordLoginEnabled() {
		t.Error("expected Discord login to be disabled without credentials")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRES_IN", "90m")
	t.Setenv("ENABLE_CORS", "false")
	t.Setenv("DISCORD_CLIENT_ID", "client")
	t.Setenv("DISCORD_CLIENT_SECRET", "secret")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.JWTExpiresIn != 90*time.Minute {
		t.Errorf("expected token lifetime 90m, got %v", cfg.JWTExpiresIn)
	}
	if cfg.EnableCORS {
		t.Error("expected CORS to be disabled")
	}
	if !cfg.DiscordLoginEnabled() {
		t.Error("expected Discord login to be enabled")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	if err := os.WriteFile(path, []byte("JWT_SECRET=from-file\nDATABASE_PATH=file.db\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DATABASE_PATH", "env.db")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.JWTSecret != "from-file" {
		t.Errorf("expected secret from file, got %s", cfg.JWTSecret)
	}
	if cfg.DatabasePath != "env.db" {
		t.Errorf("expected environment to override file, got %s", cfg.DatabasePath)
	}
}

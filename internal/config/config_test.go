package config_test

import (
	"testing"
	"time"

	"github.com/planventura/eventos-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Auth.SessionTTL != time.Hour {
		t.Errorf("session ttl = %v, want 1h", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.JWTSecret == "" {
		t.Error("development must get a fallback secret")
	}
	if cfg.IsProduction() {
		t.Error("default env must not be production")
	}
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("production without JWT_SECRET must fail")
	}
}

func TestLoadProductionWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "a-real-secret")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.JWTSecret != "a-real-secret" {
		t.Errorf("secret = %q", cfg.Auth.JWTSecret)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("DB_MAX_CONNS", "25")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Auth.SessionTTL != 30*time.Minute {
		t.Errorf("session ttl = %v", cfg.Auth.SessionTTL)
	}
	if cfg.Database.MaxConns != 25 {
		t.Errorf("max conns = %d", cfg.Database.MaxConns)
	}
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "-5m")

	if _, err := config.Load(); err == nil {
		t.Fatal("negative SESSION_TTL must fail")
	}
}

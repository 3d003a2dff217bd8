package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.TokenTTL != 720*time.Hour {
		t.Fatalf("unexpected token ttl: %v", cfg.TokenTTL)
	}
	if cfg.SightingWorkers != 4 {
		t.Fatalf("unexpected worker count: %d", cfg.SightingWorkers)
	}
	if cfg.Mongo.Database != "lostfound" {
		t.Fatalf("unexpected mongo database: %s", cfg.Mongo.Database)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected redis addr: %s", cfg.Redis.Addr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("SIGHTING_WORKERS", "8")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9090" || cfg.TokenTTL != 24*time.Hour || cfg.SightingWorkers != 8 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}

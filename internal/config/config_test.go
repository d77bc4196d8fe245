package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfig = `
http:
  port: 3000
database:
  host: localhost
  port: 5432
  user: savan
  password: secret
  database: savaneats
redis:
  host: localhost
  port: 6379
rabbitmq:
  host: localhost
  port: 5672
  user: guest
  password: guest
auth:
  jwt_secret: dev-secret
  token_ttl_hours: 72
checkout:
  delivery_fee: 150
  payment_delay_seconds: 2
kitchen:
  preparing_delay_seconds: 3
  dispatch_delay_seconds: 8
  delivery_delay_seconds: 12
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.HTTP.Port != 3000 {
		t.Errorf("HTTP.Port = %d, want 3000", cfg.HTTP.Port)
	}
	if cfg.Database.Database != "savaneats" {
		t.Errorf("Database.Database = %s", cfg.Database.Database)
	}
	if cfg.Checkout.DeliveryFee != 150 {
		t.Errorf("Checkout.DeliveryFee = %d, want 150", cfg.Checkout.DeliveryFee)
	}
	if cfg.Kitchen.DispatchDelaySeconds != 8 {
		t.Errorf("Kitchen.DispatchDelaySeconds = %d, want 8", cfg.Kitchen.DispatchDelaySeconds)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("JWT_SECRET", "prod-secret")

	cfg, err := Load(writeConfig(t))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %s, want db.internal", cfg.Database.Host)
	}
	if cfg.Database.Port != 5433 {
		t.Errorf("Database.Port = %d, want 5433", cfg.Database.Port)
	}
	if cfg.Auth.JWTSecret != "prod-secret" {
		t.Errorf("Auth.JWTSecret override not applied")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

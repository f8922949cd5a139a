package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // keep stray config/.env files out of the lookup path

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Addr != "0.0.0.0:8080" {
		t.Fatalf("unexpected default addr: %q", cfg.Server.Addr)
	}
	if cfg.Database.Path != "data/catalog.db" {
		t.Fatalf("unexpected default db path: %q", cfg.Database.Path)
	}
	if cfg.Auth.TokenTTLMinutes != 30 {
		t.Fatalf("unexpected default token ttl: %d", cfg.Auth.TokenTTLMinutes)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("CATALOG_AUTH_JWTSECRET", "from-env")
	t.Setenv("CATALOG_AUTH_TOKENTTLMINUTES", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9999" {
		t.Fatalf("env override ignored: %q", cfg.Server.Addr)
	}
	if cfg.Auth.JWTSecret != "from-env" {
		t.Fatalf("env override ignored: %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenTTLMinutes != 5 {
		t.Fatalf("env override ignored: %d", cfg.Auth.TokenTTLMinutes)
	}
}

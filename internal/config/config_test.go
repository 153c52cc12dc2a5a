package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_ADDRESS", "PORT", "AUTH_REQUIRED", "REQUEST_TIMEOUT", "ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.ServerAddress != ":3000" {
		t.Errorf("ServerAddress = %q", cfg.ServerAddress)
	}
	if cfg.AuthRequired {
		t.Error("AuthRequired should default to false")
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", "production")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("STORE_BACKEND", "Mongo")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("JWT_EXPIRATION", "7200")
	t.Setenv("LIST_CACHE_TTL", "45s")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "-3")

	cfg := Load()
	if cfg.ServerAddress != ":8081" {
		t.Errorf("ServerAddress = %q", cfg.ServerAddress)
	}
	if !cfg.IsProduction() || !cfg.AuthRequired {
		t.Errorf("Env=%q AuthRequired=%v", cfg.Env, cfg.AuthRequired)
	}
	if cfg.StoreBackend != "mongo" {
		t.Errorf("StoreBackend = %q", cfg.StoreBackend)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.JWTExpiration != 2*time.Hour {
		t.Errorf("JWTExpiration = %v", cfg.JWTExpiration)
	}
	if cfg.ListCacheTTL != 45*time.Second {
		t.Errorf("ListCacheTTL = %v", cfg.ListCacheTTL)
	}
	if cfg.MaxUploadSizeMB != 10 {
		t.Errorf("MaxUploadSizeMB = %d", cfg.MaxUploadSizeMB)
	}
}

func TestListCacheTTLDisable(t *testing.T) {
	for _, raw := range []string{"0", "off", "0s"} {
		t.Setenv("LIST_CACHE_TTL", raw)
		if ttl := Load().ListCacheTTL; ttl != 0 {
			t.Errorf("LIST_CACHE_TTL=%q gave %v, want 0", raw, ttl)
		}
	}
	t.Setenv("LIST_CACHE_TTL", "")
	if ttl := Load().ListCacheTTL; ttl != 30*time.Second {
		t.Errorf("default ListCacheTTL = %v", ttl)
	}
}

package config

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/medscribe")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "http://a.example.com,http://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Port)
	}
	if cfg.Env != "development" || !cfg.IsDev() {
		t.Errorf("env = %q, want development default", cfg.Env)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("cors origins = %v, want two entries", cfg.CORSOrigins)
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("error = %v, want DATABASE_URL requirement", err)
	}
}

func TestValidate(t *testing.T) {
	long := strings.Repeat("s", 32)

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"dev without secret", Config{Env: "development", TokenTTLHours: 24}, false},
		{"production without secret", Config{Env: "production", TokenTTLHours: 24}, true},
		{"production with secret", Config{Env: "production", JWTSecret: long, TokenTTLHours: 24}, false},
		{"short secret", Config{Env: "development", JWTSecret: "short", TokenTTLHours: 24}, true},
		{"zero ttl", Config{Env: "development", TokenTTLHours: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

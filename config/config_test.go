package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestParseDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Backend.BaseURL != "http://localhost:8080/api" {
		t.Errorf("unexpected backend base URL: %q", cfg.Backend.BaseURL)
	}
	if cfg.AI.BaseURL != "http://localhost:5000/api" {
		t.Errorf("unexpected AI base URL: %q", cfg.AI.BaseURL)
	}
	if cfg.HTTP.Timeout != 15*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.HTTP.Timeout)
	}
	if cfg.Session.TokenFile != "" {
		t.Errorf("expected empty token file override, got %q", cfg.Session.TokenFile)
	}
}

func TestParseFromEnvironment(t *testing.T) {
	var cfg AppConfig
	err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{
		"BACKEND_API_URL":    "https://api.nutritrack.example/api/",
		"AI_SERVICE_API_URL": "https://ai.nutritrack.example/api/",
		"HTTP_TIMEOUT":       "30s",
		"TOKEN_FILE":         "/tmp/nutritrack-token",
	}})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	// Trailing slashes are trimmed so path joins stay predictable.
	if cfg.Backend.BaseURL != "https://api.nutritrack.example/api" {
		t.Errorf("unexpected backend base URL: %q", cfg.Backend.BaseURL)
	}
	if cfg.AI.BaseURL != "https://ai.nutritrack.example/api" {
		t.Errorf("unexpected AI base URL: %q", cfg.AI.BaseURL)
	}
	if cfg.HTTP.Timeout != 30*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.HTTP.Timeout)
	}
	if cfg.Session.TokenFile != "/tmp/nutritrack-token" {
		t.Errorf("unexpected token file: %q", cfg.Session.TokenFile)
	}
}

func TestHTTPSanitizeClampsTimeouts(t *testing.T) {
	tests := []struct {
		name           string
		timeout        time.Duration
		uploadTimeout  time.Duration
		wantTimeout    time.Duration
		wantUploadMin  time.Duration
	}{
		{
			name:          "zero timeout raised to floor",
			timeout:       0,
			uploadTimeout: 0,
			wantTimeout:   time.Second,
			wantUploadMin: time.Second,
		},
		{
			name:          "excessive timeout clamped",
			timeout:       time.Hour,
			uploadTimeout: 2 * time.Hour,
			wantTimeout:   5 * time.Minute,
			wantUploadMin: 5 * time.Minute,
		},
		{
			name:          "upload timeout never below request timeout",
			timeout:       20 * time.Second,
			uploadTimeout: 5 * time.Second,
			wantTimeout:   20 * time.Second,
			wantUploadMin: 20 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HTTPConfig{Timeout: tt.timeout, UploadTimeout: tt.uploadTimeout}
			h.Sanitize()
			if h.Timeout != tt.wantTimeout {
				t.Errorf("timeout = %v, want %v", h.Timeout, tt.wantTimeout)
			}
			if h.UploadTimeout < tt.wantUploadMin {
				t.Errorf("upload timeout = %v, want >= %v", h.UploadTimeout, tt.wantUploadMin)
			}
		})
	}
}

func TestDetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")
	cfg := AppConfig{}
	cfg.Sanitize()
	if !cfg.IsDev {
		t.Error("expected NODE_ENV=development to enable dev mode")
	}
}

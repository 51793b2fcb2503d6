package config

import (
	"testing"
	"time"

	"github.com/bracketlab/bracket-stats/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DATASET_SOURCE", "UPSET_RULE", "UPSET_THRESHOLD", "UPSET_LIMIT", "ALLOWED_ORIGINS", "POSTGRES_URL", "ADMIN_TOKEN"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.DatasetSource != SourceEmbedded {
		t.Errorf("DatasetSource = %q", cfg.DatasetSource)
	}
	if cfg.UpsetRule != models.UpsetRuleLegacy {
		t.Errorf("UpsetRule = %q, want legacy", cfg.UpsetRule)
	}
	if cfg.UpsetThreshold != 30 || cfg.UpsetLimit != 5 {
		t.Errorf("upset defaults = %v/%d", cfg.UpsetThreshold, cfg.UpsetLimit)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
	if cfg.AdminToken != "" {
		t.Errorf("AdminToken = %q, want empty", cfg.AdminToken)
	}
}

func TestLoadAdminTokenAndZeroUpsetParams(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "")
	t.Setenv("UPSET_RULE", "")
	t.Setenv("ADMIN_TOKEN", "s3cret")
	t.Setenv("UPSET_THRESHOLD", "0")
	t.Setenv("UPSET_LIMIT", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.AdminToken != "s3cret" {
		t.Errorf("AdminToken = %q", cfg.AdminToken)
	}
	if cfg.UpsetThreshold != 0 || cfg.UpsetLimit != 0 {
		t.Errorf("upset params = %v/%d, want 0/0", cfg.UpsetThreshold, cfg.UpsetLimit)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("UPSET_RULE", "seed")
	t.Setenv("UPSET_THRESHOLD", "45.5")
	t.Setenv("FLUSH_INTERVAL", "250ms")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("DATASET_SOURCE", "FILE")
	t.Setenv("DATASET_PATH", "/data/bracket.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != 9090 || !cfg.IsProduction() {
		t.Errorf("Port/Env = %d/%s", cfg.Port, cfg.Env)
	}
	if cfg.UpsetRule != models.UpsetRuleSeed {
		t.Errorf("UpsetRule = %q", cfg.UpsetRule)
	}
	if cfg.UpsetThreshold != 45.5 {
		t.Errorf("UpsetThreshold = %v", cfg.UpsetThreshold)
	}
	if cfg.FlushInterval != 250*time.Millisecond {
		t.Errorf("FlushInterval = %v", cfg.FlushInterval)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.DatasetSource != SourceFile || cfg.DatasetPath != "/data/bracket.json" {
		t.Errorf("dataset = %s %s", cfg.DatasetSource, cfg.DatasetPath)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown rule", map[string]string{"UPSET_RULE": "sideways"}},
		{"unknown source", map[string]string{"DATASET_SOURCE": "s3"}},
		{"file without path", map[string]string{"DATASET_SOURCE": "file", "DATASET_PATH": ""}},
		{"postgres without url", map[string]string{"DATASET_SOURCE": "postgres", "POSTGRES_URL": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("UPSET_RULE", "")
			t.Setenv("DATASET_SOURCE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("BAD_INT", "x")
	t.Setenv("BAD_FLOAT", "x")
	t.Setenv("BAD_DURATION", "x")

	if got := getEnvInt("BAD_INT", 3); got != 3 {
		t.Errorf("getEnvInt = %d", got)
	}
	if got := getEnvFloat("BAD_FLOAT", 1.5); got != 1.5 {
		t.Errorf("getEnvFloat = %v", got)
	}
	if got := getEnvDuration("BAD_DURATION", time.Second); got != time.Second {
		t.Errorf("getEnvDuration = %v", got)
	}
}

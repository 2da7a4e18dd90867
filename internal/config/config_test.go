package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	if cfg.App.Name != "tradecast" {
		t.Errorf("app name = %q, want tradecast", cfg.App.Name)
	}
	if cfg.App.Environment != "development" {
		t.Errorf("environment = %q, want development", cfg.App.Environment)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Analysis.MaxEnsembleElements != 50_000_000 {
		t.Errorf("max_ensemble_elements = %d, want 50000000", cfg.Analysis.MaxEnsembleElements)
	}
	if !cfg.Analysis.CacheEnabled {
		t.Error("cache_enabled should be true")
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("valid config failed validation: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/nonexistent.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadWithDefaultsMissingFile(t *testing.T) {
	cfg, err := LoadWithDefaults("testdata/nonexistent.yaml")
	if err != nil {
		t.Fatalf("expected defaults for missing file, got %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("default port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Analysis.TimeoutSeconds != 20 {
		t.Errorf("default analysis timeout = %d, want 20", cfg.Analysis.TimeoutSeconds)
	}
	if cfg.Upload.MaxFileSizeMB != 16 {
		t.Errorf("default upload limit = %d, want 16", cfg.Upload.MaxFileSizeMB)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("TEST_APP_NAME", "tradecast-test")

	cfg, err := Load("testdata/expansion_config.yaml")
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}
	if cfg.App.Name != "tradecast-test" {
		t.Errorf("app name = %q, want expanded value tradecast-test", cfg.App.Name)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	os.Setenv("TRADECAST_SERVER_PORT", "9100")
	defer os.Unsetenv("TRADECAST_SERVER_PORT")

	cfg, err := LoadWithDefaults("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("port = %d, want env override 9100", cfg.Server.Port)
	}
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}
	cfg.App.Environment = "invalid"

	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for bad environment")
	}
	if !strings.Contains(err.Error(), "development, staging, production") {
		t.Errorf("error should list allowed environments: %v", err)
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg, _ := Load("testdata/valid_config.yaml")
	cfg.App.LogLevel = "verbose"

	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for bad log level")
	}
}

func TestValidateCrossFieldTimeouts(t *testing.T) {
	cfg, _ := Load("testdata/valid_config.yaml")
	cfg.Analysis.TimeoutSeconds = 60
	cfg.Server.WriteTimeoutSeconds = 30

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected error when analysis timeout exceeds write timeout")
	}
	if !strings.Contains(err.Error(), "write_timeout_seconds") {
		t.Errorf("error should mention write timeout: %v", err)
	}
}

func TestValidateCacheTTLRequired(t *testing.T) {
	cfg, _ := Load("testdata/valid_config.yaml")
	cfg.Analysis.CacheEnabled = true
	cfg.Analysis.CacheTTLSeconds = 0

	if err := Validate(cfg); err == nil {
		t.Fatal("expected error when cache enabled without TTL")
	}
}

func TestValidateDebugForbiddenInProduction(t *testing.T) {
	cfg, _ := Load("testdata/valid_config.yaml")
	cfg.App.Environment = "production"
	cfg.App.LogLevel = "debug"

	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for debug logging in production")
	}
}

func TestDerivedAccessors(t *testing.T) {
	cfg, _ := Load("testdata/valid_config.yaml")

	if got := cfg.AnalysisTimeout(); got != 20*time.Second {
		t.Errorf("AnalysisTimeout = %v, want 20s", got)
	}
	if got := cfg.CacheTTL(); got != 300*time.Second {
		t.Errorf("CacheTTL = %v, want 5m", got)
	}
	if got := cfg.MaxUploadBytes(); got != 16<<20 {
		t.Errorf("MaxUploadBytes = %d, want %d", got, 16<<20)
	}
	if !cfg.IsDevelopment() || cfg.IsProduction() || cfg.IsStaging() {
		t.Error("environment predicates disagree with development config")
	}
}

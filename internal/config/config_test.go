package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOVETYPE_DATA_DIR", "LOVETYPE_HTTP_ADDR", "LOVETYPE_CORS_ORIGINS",
		"LOVETYPE_RATE_LIMIT", "LOVETYPE_LOG_LEVEL", "LOVETYPE_LOG_FORMAT",
		"LOVETYPE_OUTPUT_PRETTY", "LOVETYPE_SHUTDOWN_TIMEOUT",
		"LOVETYPE_SERVER_URL", "LOVETYPE_CLIENT_TIMEOUT", "LOVETYPE_CLIENT_RETRIES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.DataDir != "api" {
		t.Fatalf("expected default DataDir 'api', got %q", cfg.DataDir)
	}
	if cfg.HTTP.Addr != ":8000" {
		t.Fatalf("expected default Addr ':8000', got %q", cfg.HTTP.Addr)
	}
	if !reflect.DeepEqual(cfg.HTTP.CORSOrigins, []string{"*"}) {
		t.Fatalf("expected default CORSOrigins [*], got %v", cfg.HTTP.CORSOrigins)
	}
	if cfg.HTTP.RateLimit != 120 {
		t.Fatalf("expected default RateLimit=120, got %d", cfg.HTTP.RateLimit)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("expected info/text logging, got %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
	if cfg.Output.Pretty {
		t.Fatal("expected default Pretty=false")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected default ShutdownTimeout=10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Remote.URL != "" || cfg.Remote.Timeout != 30*time.Second || cfg.Remote.Retries != 3 {
		t.Fatalf("unexpected Remote defaults: %+v", cfg.Remote)
	}
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOVETYPE_DATA_DIR", "/srv/lovetype")
	t.Setenv("LOVETYPE_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("LOVETYPE_CORS_ORIGINS", "https://a.example, https://b.example,,")
	t.Setenv("LOVETYPE_RATE_LIMIT", "0")
	t.Setenv("LOVETYPE_LOG_FORMAT", "json")
	t.Setenv("LOVETYPE_OUTPUT_PRETTY", "true")
	t.Setenv("LOVETYPE_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOVETYPE_SERVER_URL", "http://localhost:8000")
	t.Setenv("LOVETYPE_CLIENT_RETRIES", "0")

	cfg := Load()

	if cfg.DataDir != "/srv/lovetype" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.HTTP.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.HTTP.Addr)
	}
	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.HTTP.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.HTTP.CORSOrigins, want)
	}
	if cfg.HTTP.RateLimit != 0 {
		t.Errorf("RateLimit = %d, want 0", cfg.HTTP.RateLimit)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q", cfg.Log.Format)
	}
	if !cfg.Output.Pretty {
		t.Error("expected Pretty=true")
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 3s", cfg.ShutdownTimeout)
	}
	if cfg.Remote.URL != "http://localhost:8000" || cfg.Remote.Retries != 0 {
		t.Errorf("Remote = %+v", cfg.Remote)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOVETYPE_RATE_LIMIT", "lots")
	t.Setenv("LOVETYPE_OUTPUT_PRETTY", "maybe")
	t.Setenv("LOVETYPE_SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("LOVETYPE_CORS_ORIGINS", " , ")

	cfg := Load()

	if cfg.HTTP.RateLimit != 120 {
		t.Errorf("RateLimit = %d, want fallback 120", cfg.HTTP.RateLimit)
	}
	if cfg.Output.Pretty {
		t.Error("expected Pretty fallback false")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want fallback 10s", cfg.ShutdownTimeout)
	}
	if !reflect.DeepEqual(cfg.HTTP.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v, want fallback [*]", cfg.HTTP.CORSOrigins)
	}
}

// --- Validate tests ---

func validConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		DataDir: t.TempDir(),
		HTTP: HTTPConfig{
			Addr:        ":8000",
			CORSOrigins: []string{"*"},
			RateLimit:   120,
		},
		Log:             LogConfig{Level: "info", Format: "text"},
		Remote:          RemoteConfig{Timeout: 30 * time.Second, Retries: 3},
		ShutdownTimeout: 10 * time.Second,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected nil error for valid config, got: %v", err)
	}
}

func TestValidate_MissingDataDirAllowed(t *testing.T) {
	cfg := validConfig(t)
	cfg.DataDir = filepath.Join(cfg.DataDir, "absent")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected nil error for absent data dir, got: %v", err)
	}
}

func TestValidate_DataDirIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(cfg.DataDir, "love_params.csv")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.DataDir = file
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Fatalf("expected 'not a directory' error, got: %v", err)
	}
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty data dir", func(c *Config) { c.DataDir = "" }, "LOVETYPE_DATA_DIR"},
		{"empty addr", func(c *Config) { c.HTTP.Addr = "" }, "addr"},
		{"no origins", func(c *Config) { c.HTTP.CORSOrigins = nil }, "cors"},
		{"negative rate limit", func(c *Config) { c.HTTP.RateLimit = -1 }, "rate limit"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log format"},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }, "shutdown"},
		{"relative server url", func(c *Config) { c.Remote.URL = "localhost:8000" }, "server url"},
		{"non-http server url", func(c *Config) { c.Remote.URL = "ftp://example.com" }, "server url"},
		{"zero client timeout", func(c *Config) { c.Remote.Timeout = 0 }, "client timeout"},
		{"negative retries", func(c *Config) { c.Remote.Retries = -1 }, "client retries"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error to mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.HTTP.RateLimit = -5
	cfg.Log.Format = "yaml"
	cfg.ShutdownTimeout = -time.Second
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for multiple bad fields")
	}
	msg := err.Error()
	for _, want := range []string{"rate limit", "log format", "shutdown"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to mention %q, got: %v", want, msg)
		}
	}
}

// --- getenv helper tests ---

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		envVal   string
		fallback int
		want     int
	}{
		{"empty uses fallback", "", 1000, 1000},
		{"valid int", "500", 1000, 500},
		{"zero", "0", 1000, 0},
		{"invalid falls back", "abc", 1000, 1000},
		{"negative", "-1", 1000, -1},
	}

	const key = "LOVETYPE_TEST_GETENVINT"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(key, tt.envVal)
			got := getenvInt(key, tt.fallback)
			if got != tt.want {
				t.Errorf("getenvInt(%q, %d) = %d, want %d", tt.envVal, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestVersion_IsSet(t *testing.T) {
	if Version == "" {
		t.Fatal("expected non-empty Version constant")
	}
}

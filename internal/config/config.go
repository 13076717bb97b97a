package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Version is the lovetype release version.
const Version = "0.3.0"

// Config holds all lovetype configuration.
type Config struct {
	DataDir         string // directory holding the reference data files
	HTTP            HTTPConfig
	Log             LogConfig
	Output          OutputConfig
	Remote          RemoteConfig
	ShutdownTimeout time.Duration
}

// HTTPConfig holds API server settings.
type HTTPConfig struct {
	Addr        string
	CORSOrigins []string
	RateLimit   int // requests per minute per client IP on /score; 0 disables
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "text" or "json"
}

// OutputConfig holds CLI output settings.
type OutputConfig struct {
	Pretty bool
}

// RemoteConfig points the CLI at a running lovetype server instead of the
// local data directory.
type RemoteConfig struct {
	URL     string // empty means classify locally
	Timeout time.Duration
	Retries int // retries on 429 and 5xx responses
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DataDir: getenv("LOVETYPE_DATA_DIR", "api"),
		HTTP: HTTPConfig{
			Addr:        getenv("LOVETYPE_HTTP_ADDR", ":8000"),
			CORSOrigins: getenvList("LOVETYPE_CORS_ORIGINS", []string{"*"}),
			RateLimit:   getenvInt("LOVETYPE_RATE_LIMIT", 120),
		},
		Log: LogConfig{
			Level:  getenv("LOVETYPE_LOG_LEVEL", "info"),
			Format: getenv("LOVETYPE_LOG_FORMAT", "text"),
		},
		Output: OutputConfig{
			Pretty: getenvBool("LOVETYPE_OUTPUT_PRETTY", false),
		},
		Remote: RemoteConfig{
			URL:     getenv("LOVETYPE_SERVER_URL", ""),
			Timeout: getenvDuration("LOVETYPE_CLIENT_TIMEOUT", 30*time.Second),
			Retries: getenvInt("LOVETYPE_CLIENT_RETRIES", 3),
		},
		ShutdownTimeout: getenvDuration("LOVETYPE_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Validate checks the configuration and returns every problem found.
// A missing data directory is allowed; requests report it per call.
func (c Config) Validate() error {
	var errs []error

	if c.DataDir == "" {
		errs = append(errs, errors.New("LOVETYPE_DATA_DIR must not be empty"))
	} else if fi, err := os.Stat(c.DataDir); err == nil && !fi.IsDir() {
		errs = append(errs, fmt.Errorf("data dir %s is not a directory", c.DataDir))
	}

	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http addr must not be empty"))
	}
	if len(c.HTTP.CORSOrigins) == 0 {
		errs = append(errs, errors.New("cors origins must not be empty"))
	}
	if c.HTTP.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rate limit must be >= 0, got %d", c.HTTP.RateLimit))
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.Log.Format))
	}

	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %v", c.ShutdownTimeout))
	}

	if c.Remote.URL != "" {
		if u, err := url.Parse(c.Remote.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("server url must be an http(s) URL, got %q", c.Remote.URL))
		}
	}
	if c.Remote.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("client timeout must be positive, got %v", c.Remote.Timeout))
	}
	if c.Remote.Retries < 0 {
		errs = append(errs, fmt.Errorf("client retries must be >= 0, got %d", c.Remote.Retries))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// getenvList splits a comma-separated value, dropping empty items.
func getenvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

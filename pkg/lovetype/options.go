package lovetype

import "log/slog"

type options struct {
	dataDir string
	logger  *slog.Logger
}

// Option configures a Lovetype instance.
type Option func(*options)

// WithDataDir sets the directory holding the reference data files
// (love_params.csv, centroids.json, mapping.json and the optional copy.json
// and constants.json). Default: "api".
func WithDataDir(dir string) Option {
	return func(o *options) {
		o.dataDir = dir
	}
}

// WithLogger sets the logger used for reference data loads.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		dataDir: "api",
		logger:  slog.Default(),
	}
}

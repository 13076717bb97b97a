package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/lovetype/internal/client"
	"github.com/hejijunhao/lovetype/internal/config"
	"github.com/hejijunhao/lovetype/internal/logging"
	"github.com/hejijunhao/lovetype/pkg/lovetype"
)

// app carries the resolved configuration to subcommands.
type app struct {
	cfg     config.Config
	lt      *lovetype.Lovetype
	backend backend
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lovetype: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flags override LOVETYPE_* environment
// variables.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lovetype",
		Short:         "Pair compatibility classifier",
		Long:          `lovetype classifies the compatibility of two personality types against reference data and serves the result over HTTP.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("data-dir", "", "reference data directory (env LOVETYPE_DATA_DIR, default api)")
	root.PersistentFlags().String("log-level", "", "log level: debug|info|warn|error (env LOVETYPE_LOG_LEVEL)")
	root.PersistentFlags().String("log-format", "", "log format: text|json (env LOVETYPE_LOG_FORMAT)")
	root.PersistentFlags().Bool("pretty", false, "indent JSON written to stdout (env LOVETYPE_OUTPUT_PRETTY)")
	root.PersistentFlags().String("server", "", "query a running lovetype server at this URL instead of --data-dir (env LOVETYPE_SERVER_URL)")

	root.AddCommand(
		newServeCmd(a),
		newClassifyCmd(a),
		newTypesCmd(a),
		newHealthCmd(a),
	)
	return root
}

// setup loads the environment configuration, applies flag overrides,
// validates the result and initializes logging and the classifier.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Load()
	flags := cmd.Flags()

	if flags.Changed("data-dir") {
		cfg.DataDir, _ = flags.GetString("data-dir")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty, _ = flags.GetBool("pretty")
	}
	if flags.Changed("server") {
		cfg.Remote.URL, _ = flags.GetString("server")
	}
	if flags.Changed("addr") {
		cfg.HTTP.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("rate-limit") {
		cfg.HTTP.RateLimit, _ = flags.GetInt("rate-limit")
	}
	if flags.Changed("cors-origins") {
		cfg.HTTP.CORSOrigins, _ = flags.GetStringSlice("cors-origins")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.Init(cfg.Log.Format, logging.ParseLevel(cfg.Log.Level))

	lt, err := lovetype.New(lovetype.WithDataDir(cfg.DataDir), lovetype.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.lt = lt
	a.backend = localBackend{lt: lt}
	if cfg.Remote.URL != "" {
		a.backend = client.New(cfg.Remote.URL,
			client.WithTimeout(cfg.Remote.Timeout),
			client.WithRetries(cfg.Remote.Retries))
		slog.Debug("using remote server", "url", cfg.Remote.URL)
	}
	return nil
}

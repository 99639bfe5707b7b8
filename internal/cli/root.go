// Package cli wires the recipemaker commands: the TUI, headless generation
// and configuration helpers.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"recipemaker/internal/config"
	"recipemaker/internal/logger"
	"recipemaker/internal/trace"
	"recipemaker/internal/webhook"

	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	endpoint   string
	timeout    time.Duration
	logLevel   string
}

// NewRootCommand builds the recipemaker command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "recipemaker",
		Short: "Turn a dish description into a recipe",
		Long: `recipemaker sends what you'd like to eat to a recipe webhook and shows
the recipe it returns.

Run without arguments for the interactive page, or use "generate" for a
one-shot request.

Examples:
  recipemaker                                   # Interactive page
  recipemaker generate "a healthy lentil soup"  # Print a recipe
  echo "vegan tacos" | recipemaker generate --copy
  recipemaker --endpoint https://n8n.example.com/webhook/recipe`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default ~/.recipemaker/config.yaml)")
	flags.StringVar(&opts.endpoint, "endpoint", "", "Override the recipe webhook URL")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Override the request timeout (0 = none)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Override the log level (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCommand(opts),
		newConfigureCommand(opts),
		newConfigCommand(opts),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// path returns the --config flag or the default location.
func (o *globalOptions) path() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.Path()
}

// loadConfig loads the config file and environment, then applies flags
// that were set explicitly on cmd.
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := o.path()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w\nRun 'recipemaker configure' to fix it", err)
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Webhook.URL = o.endpoint
	}
	if flags.Changed("timeout") {
		cfg.Webhook.Timeout = o.timeout
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// initLogging starts the logger. When the TUI owns the terminal logs only
// go to the configured file; otherwise they fall back to stderr.
func initLogging(cfg *config.Config, tui bool, stderr io.Writer) error {
	lc := logger.Config{
		Enabled: cfg.LoggingEnabled(),
		Level:   cfg.Logging.Level,
		File:    cfg.LogFile(),
		Writer:  stderr,
	}
	if tui && lc.File == "" {
		lc.Enabled = false
	}
	if !tui {
		// Headless runs keep stderr for notifications; only warnings and up.
		lc.File = ""
		if logger.ParseLevel(lc.Level) < logger.ParseLevel("warn") {
			lc.Level = "warn"
		}
	}
	return logger.Init(lc)
}

// session bundles what a command needs to talk to the webhook.
type session struct {
	client *webhook.Client
	tracer *trace.Provider
}

// newSession builds the webhook client, with tracing when OTLP is configured.
func newSession(ctx context.Context, cfg *config.Config) (*session, error) {
	tp, err := trace.NewProvider(ctx)
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
		tp = trace.Disabled()
	}
	client, err := webhook.New(cfg.Webhook.URL,
		webhook.WithTimeout(cfg.Webhook.Timeout),
		webhook.WithTracer(tp.Tracer()),
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}
	logger.Info("webhook configured", "endpoint", client.Endpoint(), "timeout", cfg.Webhook.Timeout, "tracing", tp.Enabled())
	return &session{client: client, tracer: tp}, nil
}

// Close flushes pending spans.
func (s *session) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.tracer.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("trace shutdown failed", "err", err)
	}
}

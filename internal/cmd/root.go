// Package cmd wires configuration, logging and error reporting around the
// interactive session.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/getsentry/sentry-go"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/fail"
	"taskdeck/internal/tui"
)

var (
	// Version is the version taskdeck was built as.
	Version = "dev"

	// GitCommit is the commit taskdeck was built from.
	GitCommit = "unknown"
)

type rootOptions struct {
	apiURL    string
	configDir string
	logLevel  LogLevel
}

func NewRootCmd() *cobra.Command {
	options := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "taskdeck",
		Short:         "An interactive terminal client for your task service.",
		Version:       fmt.Sprintf("%s (%s)", Version, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), options)
		},
	}

	cmd.PersistentFlags().StringVar(&options.apiURL, "api-url", "", "base URL of the task service (overrides config and env)")
	cmd.PersistentFlags().StringVar(&options.configDir, "config", "", "configuration directory")
	cmd.PersistentFlags().Var(&options.logLevel, "log-level", "diagnostic log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, options *rootOptions) error {
	store := config.NewStore(afero.NewOsFs(), options.configDir)
	cfg, err := store.Load()
	if err != nil {
		return fail.NewConfigError(store.Path(), err)
	}

	if options.apiURL != "" {
		cfg.APIURL = options.apiURL
	}
	if cfg.APIURL == "" {
		return fail.NewNoAPIURLError(store.Path())
	}

	logger := setupLogger(resolveLogLevel(options.logLevel, cfg))
	slog.SetDefault(logger)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN, Release: Version}); err != nil {
			logger.Warn("error reporting disabled", "error", err)
		}
	}

	client, err := api.NewClient(cfg.APIURL, api.WithLogger(logger))
	if err != nil {
		return fail.NewBadAPIURLError(cfg.APIURL, err)
	}

	logger.Info("starting session", "api_url", cfg.APIURL, "version", Version)

	program := tea.NewProgram(
		tui.NewApp(client, logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}

// resolveLogLevel prefers the flag, then the config file.
func resolveLogLevel(flagValue LogLevel, cfg config.Config) slog.Level {
	if flagValue != "" {
		return flagValue.SlogLevel()
	}
	if cfg.LogLevel != "" {
		var level LogLevel
		if err := level.Set(cfg.LogLevel); err == nil {
			return level.SlogLevel()
		}
	}
	return slog.LevelInfo
}

// setupLogger builds the diagnostic channel: structured JSON into a
// size-capped rotating file. Nothing is ever logged to the terminal; the
// alternate screen belongs to the session.
func setupLogger(level slog.Level) *slog.Logger {
	sink := &lumberjack.Logger{
		Filename:   logPath(),
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}
	return slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level}))
}

func logPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, config.AppName, "taskdeck.log")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			sentry.Flush(2 * time.Second)
			fmt.Fprintf(os.Stderr, "Panic occurred: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	sentry.Flush(2 * time.Second)
}

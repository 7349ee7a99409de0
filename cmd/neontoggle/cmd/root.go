// Package cmd implements the neontoggle CLI commands.
//
// The root command resolves configuration and logging once for every
// subcommand (render, preview, version).
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/go-drift/neon/cmd/neontoggle/internal/config"
	"github.com/go-drift/neon/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// app is the state shared by subcommands once the root has run.
type app struct {
	configPath string
	logLevel   string
	dir        string

	cfg    *config.Resolved
	logger *slog.Logger
	stderr io.Writer
}

// Execute runs the CLI with os.Args and cancels on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := newRootCmd(os.Stderr).ExecuteContext(ctx)
	reportFailure(err)
	return err
}

// reportFailure hands a categorized failure to the error handler so the
// log records its op and kind.
func reportFailure(err error) {
	if ne, ok := errors.AsNeonError(err); ok {
		errors.Report(ne)
	}
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}
	root := &cobra.Command{
		Use:           "neontoggle",
		Short:         "Render and preview the neon toggle",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to neon.yaml (default ./neon.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.dir, "dir", ".", "project directory for neon.yaml, .env and go.mod")

	root.AddCommand(a.renderCmd(), a.previewCmd(), versionCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.Resolve(a.dir, a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		if cfg.LogLevel, err = config.ParseLevel(a.logLevel); err != nil {
			return err
		}
	}
	a.cfg = cfg

	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(a.logger)
	errors.SetHandler(&errors.LogHandler{
		Logger:  a.logger,
		Verbose: cfg.LogLevel <= slog.LevelDebug,
	})
	a.logger.Debug("configuration resolved",
		slog.String("app", cfg.AppName),
		slog.String("module", cfg.ModulePath),
		slog.Int("fps", cfg.FPS),
		slog.Float64("scale", cfg.Scale),
	)
	return nil
}

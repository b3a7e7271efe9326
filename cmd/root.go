// Package cmd provides the root command and CLI setup for undercover.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/undercover/internal/adapter"
	"github.com/mouse-blink/undercover/internal/config"
	"github.com/mouse-blink/undercover/internal/controller"
	"github.com/mouse-blink/undercover/internal/domain"
	m "github.com/mouse-blink/undercover/internal/model"
)

// version is overridden at build time with -ldflags "-X".
var version = "dev"

var logLevel = new(slog.LevelVar)
var logger *slog.Logger
var fsAdapter adapter.SourceFSAdapter
var goFileAdapter adapter.GoFileAdapter
var coverageAdapter adapter.CoverageAdapter
var changesetAdapter adapter.ChangesetAdapter
var workflow domain.Workflow

func init() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	coverageAdapter = adapter.NewLCOVAdapter(fsAdapter)
	changesetAdapter = adapter.NewGitChangesetAdapter(adapter.NewLocalGitRunner(), fsAdapter, logger)
	workflow = domain.NewWorkflow(
		fsAdapter,
		goFileAdapter,
		coverageAdapter,
		changesetAdapter,
		logger,
	)
}

var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undercover",
		Short: "Warn about changed Go code that lacks test coverage",
		Long: `Undercover compares the lines changed in a git work tree with an LCOV
coverage report and lists every changed function, method or function
literal that contains uncovered lines or untaken branches.

The exit status is 1 when any node is flagged, which makes it usable as
a pre-commit hook or CI step:

  go test -coverprofile=cover.out ./... && gcov2lcov -infile cover.out -outfile coverage/lcov/app.lcov
  undercover --compare origin/main`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configFlag, cmd.Flags())
			if err != nil {
				return err
			}

			level, err := config.ParseLogLevel(cfg.LogLevel)
			if err != nil {
				return err
			}

			logLevel.Set(level)
			logger.Debug("configuration loaded", "file", cfg.File, "lcov", cfg.LCOV, "path", cfg.Path)

			out := cmd.OutOrStdout()

			renderers, err := controller.NewFormatters(cfg.Formatters, controller.Options{
				Out:  out,
				Root: m.Path(cfg.Path),
				TTY:  controller.IsTTY(out),
			})
			if err != nil {
				return err
			}

			flagged, err := workflow.Report(cmd.Context(), domain.ReportArgs{
				Root:      m.Path(cfg.Path),
				LCOV:      m.Path(cfg.LCOV),
				GitDir:    m.Path(cfg.GitDir),
				Compare:   cfg.Compare,
				Threads:   cfg.Parallel,
				Renderers: renderers,
			})
			if err != nil {
				return err
			}

			if len(flagged) > 0 {
				return domain.ErrUncoveredChanges
			}

			return nil
		},
	}

	cmd.Flags().StringP("lcov", "l", "", "LCOV report path (default <path>/coverage/lcov/<project>.lcov)")
	cmd.Flags().StringP("path", "p", config.DefaultPath, "project directory")
	cmd.Flags().StringP("git-dir", "g", config.DefaultGitDir, "git directory, relative to the project directory")
	cmd.Flags().StringP("compare", "c", "", "git ref to compare against (default HEAD)")
	cmd.Flags().StringArrayP("formatter", "f", nil, "output formatter, can be repeated (pretty, table, json, yaml, tui)")
	cmd.Flags().Int("parallel", config.DefaultParallel, "number of files evaluated concurrently")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&configFlag, "config", "", "options file (default <path>/.undercover)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		if !errors.Is(err, domain.ErrUncoveredChanges) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		}

		os.Exit(1)
	}
}

// Package main provides the omccheck binary entry point.
// Omccheck is a pass/fail gate for Turtle-serialized production
// metadata graphs: it loads a graph, runs the structural and data
// quality checks, and prints a numbered diagnostic report.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/me-nexus/omccheck/config"
	"github.com/me-nexus/omccheck/report"
	"github.com/me-nexus/omccheck/store"
	"github.com/me-nexus/omccheck/validate"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "omccheck"
)

// errValidationFailed signals a completed run with a failing verdict,
// as opposed to a load or usage error.
var errValidationFailed = errors.New("validation failed")

func main() {
	if err := rootCmd().Execute(); err != nil {
		if !errors.Is(err, errValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	configPath string
	format     string
	noColor    bool
	logLevel   string
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "omccheck [flags] <graph.ttl> [more graphs or globs...]",
		Short: "Validate production-metadata graphs",
		Long: `Omccheck validates that a Turtle-serialized graph of production
metadata (creative works, participants, people, locations, assets)
conforms to the required structure before the dataset moves to the
next pipeline stage.

It checks required entity presence, location reference kinds, the
Participant→Person→Location connection, and known data quality
issues, then prints a diagnostic report and exits non-zero on
failure.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "", "Report format (text, json)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable color in text reports")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(watchCmd(&opts))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func run(opts options, args []string) error {
	logger := setupLogging(opts.logLevel)

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	paths, err := expandArgs(args)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	writer := report.NewWriter(format, !cfg.Output.NoColor)

	runner := validate.NewRunner(
		validate.WithRequirements(cfg.Requirements()),
		validate.WithMisspellings(cfg.Checks.Misspellings),
		validate.WithLogger(logger),
	)

	failed := 0
	for _, path := range paths {
		res, err := validateFile(runner, writer, path)
		if err != nil {
			// Load errors are fatal for the file: report and count it
			// as failed, but keep validating the remaining graphs.
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			failed++
			continue
		}
		if !res.Passed {
			failed++
		}
	}

	if failed > 0 {
		logger.Info("validation finished", "graphs", len(paths), "failed", failed)
		return fmt.Errorf("%w: %d of %d graphs", errValidationFailed, failed, len(paths))
	}
	return nil
}

// validateFile loads one graph, runs all checks, and writes its report
// to stdout.
func validateFile(runner *validate.Runner, writer *report.Writer, path string) (*validate.Result, error) {
	g, err := store.LoadTurtleFile(path)
	if err != nil {
		return nil, err
	}
	res := runner.Run(g)
	if err := writer.Write(os.Stdout, path, res); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return res, nil
}

// expandArgs resolves glob patterns into file paths. Plain paths pass
// through untouched so a missing file still surfaces as a load error
// with its own name.
func expandArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad glob pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func loadConfig(opts options) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.LoadFromFile(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// Flags override file settings.
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.noColor {
		cfg.Output.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setupLogging(logLevel string) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

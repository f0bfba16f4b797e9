package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/me-nexus/omccheck/report"
	"github.com/me-nexus/omccheck/validate"
)

// debounceDelay coalesces the burst of write events editors emit when
// saving a file.
const debounceDelay = 200 * time.Millisecond

func watchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <graph.ttl>",
		Short: "Re-validate a graph whenever its file changes",
		Long: `Watch validates the graph once, then re-runs validation every time
the file is written. Useful while hand-editing a dataset against the
gate. The process exits on interrupt; its exit status reflects the
last validation run.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(*opts, args[0])
		},
	}
}

func runWatch(opts options, path string) error {
	logger := setupLogging(opts.logLevel)

	cfg, err := loadConfig(opts)
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

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	lastPassed := revalidate(runner, writer, absPath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that rename-on-save
	// replace the inode and a file watch would go stale.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("watching for changes", "path", absPath)

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			lastPassed = revalidate(runner, writer, absPath)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)

		case <-sigs:
			if !lastPassed {
				return errValidationFailed
			}
			return nil
		}
	}
}

// revalidate runs one validation pass and reports the verdict. Load
// errors count as a failed pass; watching continues either way.
func revalidate(runner *validate.Runner, writer *report.Writer, path string) bool {
	res, err := validateFile(runner, writer, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
		return false
	}
	return res.Passed
}

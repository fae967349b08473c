package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/jsonspec/packages/compare"
	"github.com/abdul-hamid-achik/jsonspec/packages/config"
	"github.com/abdul-hamid-achik/jsonspec/packages/history"
	"github.com/abdul-hamid-achik/jsonspec/packages/output"
	"github.com/abdul-hamid-achik/jsonspec/packages/rules"
	"github.com/abdul-hamid-achik/jsonspec/packages/value"
)

var (
	compareRulesFlag   string
	compareOutputFlag  string
	compareVerboseFlag bool
	compareNoColorFlag bool
	compareHistoryFlag string
	compareWatchFlag   bool
)

// WatchDebounceDelay is the debounce delay for file watch events
const WatchDebounceDelay = 300 * time.Millisecond

var compareCmd = &cobra.Command{
	Use:   "compare <expected.json> <actual.json>",
	Short: "Structurally compare two JSON documents",
	Long: `Compare an actual JSON document against an expected one.

By default the expected document is a subset pattern: the actual document
may carry extra keys and elements. A rules file tightens or relaxes the
comparison per path.

Examples:
  jsonspec compare expected.json actual.json
  jsonspec compare expected.json actual.json --rules rules.yaml
  jsonspec compare expected.json actual.json --output json
  jsonspec compare expected.json actual.json --watch
  jsonspec compare expected.json actual.json --history runs.db`,
	Args: cobra.ExactArgs(2),
	RunE: compareCommand,
}

func init() {
	compareCmd.Flags().StringVarP(&compareRulesFlag, "rules", "r", "", "YAML rules file")
	compareCmd.Flags().StringVarP(&compareOutputFlag, "output", "o", "console", "Output format: console, json")
	compareCmd.Flags().BoolVarP(&compareVerboseFlag, "verbose", "v", false, "Show expected/actual snapshots for each failure")
	compareCmd.Flags().BoolVar(&compareNoColorFlag, "no-color", false, "Disable colored output")
	compareCmd.Flags().StringVar(&compareHistoryFlag, "history", "", "Record the run in a SQLite history database")
	compareCmd.Flags().BoolVarP(&compareWatchFlag, "watch", "w", false, "Re-run when either input file changes")
}

func compareCommand(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	expectedFile, actualFile := args[0], args[1]

	if compareWatchFlag {
		return watchAndCompare(expectedFile, actualFile)
	}

	result, err := runComparison(expectedFile, actualFile)
	if err != nil {
		return err
	}
	if !result.OK() {
		os.Exit(ExitMatchFailure)
	}
	return nil
}

// runComparison executes a single comparison, prints it, and records it if
// history is enabled.
func runComparison(expectedFile, actualFile string) (compare.Result, error) {
	start := time.Now()

	root, err := loadRules()
	if err != nil {
		return compare.Result{}, err
	}
	expected, err := loadDocument(expectedFile)
	if err != nil {
		return compare.Result{}, err
	}
	actual, err := loadDocument(actualFile)
	if err != nil {
		return compare.Result{}, err
	}

	result := compare.Validate(expected, actual, root)
	run := output.Run{
		ExpectedFile: expectedFile,
		ActualFile:   actualFile,
		Result:       result,
		Duration:     time.Since(start),
	}

	if err := formatRun(run); err != nil {
		return compare.Result{}, err
	}
	if compareHistoryFlag != "" {
		if err := recordRun(run); err != nil {
			return compare.Result{}, err
		}
	}
	return result, nil
}

func loadRules() (*config.Node, error) {
	if compareRulesFlag == "" {
		return config.NewRoot(), nil
	}
	rs, err := rules.Load(compareRulesFlag)
	if err != nil {
		return nil, err
	}
	return rules.Build(rs)
}

func loadDocument(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return value.None, fmt.Errorf("failed to read %s: %w", path, err)
	}
	v, ok := value.FromJSON(data)
	if !ok {
		return value.None, fmt.Errorf("%s is not valid JSON", path)
	}
	return v, nil
}

func formatRun(run output.Run) error {
	switch compareOutputFlag {
	case "console":
		formatter := output.NewConsoleFormatter(
			output.WithVerbose(compareVerboseFlag),
			output.WithNoColor(compareNoColorFlag),
		)
		formatter.FormatRun(run)
		return nil
	case "json":
		return output.NewJSONFormatter(os.Stdout).FormatRun(run)
	default:
		return fmt.Errorf("unknown output format %q", compareOutputFlag)
	}
}

func recordRun(run output.Run) error {
	store, err := history.Open(compareHistoryFlag)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(run.ExpectedFile, run.ActualFile, run.Result)
	return err
}

// watchAndCompare re-runs the comparison whenever an input (or the rules
// file) changes, until interrupted.
func watchAndCompare(expectedFile, actualFile string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := []string{expectedFile, actualFile}
	if compareRulesFlag != "" {
		watched = append(watched, compareRulesFlag)
	}
	watchedDirs := make(map[string]bool)
	for _, file := range watched {
		dir := filepath.Dir(file)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			watchedDirs[dir] = true
		}
	}

	if _, err := runComparison(expectedFile, actualFile); err != nil {
		output.NewConsoleFormatter(output.WithNoColor(compareNoColorFlag)).FormatError(err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var debounce *time.Timer
	debounceCh := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !watchedFile(event.Name, watched) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(WatchDebounceDelay, func() {
				select {
				case debounceCh <- struct{}{}:
				default:
				}
			})
		case <-debounceCh:
			if _, err := runComparison(expectedFile, actualFile); err != nil {
				output.NewConsoleFormatter(output.WithNoColor(compareNoColorFlag)).FormatError(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			output.NewConsoleFormatter(output.WithNoColor(compareNoColorFlag)).FormatError(err)
		case <-sigCh:
			return nil
		}
	}
}

func watchedFile(name string, watched []string) bool {
	for _, w := range watched {
		if filepath.Clean(name) == filepath.Clean(w) {
			return true
		}
	}
	return false
}

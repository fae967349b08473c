package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/jsonspec/packages/history"
)

var (
	historyDBFlag    string
	historyLimitFlag int
	historyRunFlag   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded comparison runs",
	Long: `List comparison runs recorded with --history.

Examples:
  jsonspec history --db runs.db
  jsonspec history --db runs.db --limit 5
  jsonspec history --db runs.db --run <id>`,
	RunE: historyCommand,
}

func init() {
	historyCmd.Flags().StringVar(&historyDBFlag, "db", "", "History database path (required)")
	historyCmd.Flags().IntVar(&historyLimitFlag, "limit", 20, "Maximum number of runs to list")
	historyCmd.Flags().StringVar(&historyRunFlag, "run", "", "Show the failures of one run")
	_ = historyCmd.MarkFlagRequired("db")
}

func historyCommand(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	store, err := history.Open(historyDBFlag)
	if err != nil {
		return err
	}
	defer store.Close()

	if historyRunFlag != "" {
		return showRunFailures(cmd, store)
	}

	runs, err := store.Recent(historyLimitFlag)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	for _, r := range runs {
		status := green("pass")
		if !r.Passed {
			status = red(fmt.Sprintf("fail (%d)", r.FailureCount))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s vs %s  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.ExpectedFile, r.ActualFile, status)
	}
	return nil
}

func showRunFailures(cmd *cobra.Command, store *history.Store) error {
	fails, err := store.Failures(historyRunFlag)
	if err != nil {
		return err
	}
	if len(fails) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No failures recorded for this run.")
		return nil
	}
	for _, f := range fails {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", f.Path, f.Message)
		if f.Expected != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "    expected: %s\n", f.Expected)
		}
		if f.Actual != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "    actual:   %s\n", f.Actual)
		}
	}
	return nil
}

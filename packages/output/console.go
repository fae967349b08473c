package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/abdul-hamid-achik/jsonspec/packages/compare"
)

// Run is one comparison invocation as seen by formatters.
type Run struct {
	ExpectedFile string
	ActualFile   string
	Result       compare.Result
	Duration     time.Duration
}

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatRun(run Run) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "\n%s\n\n", bold(fmt.Sprintf("Comparing: %s vs %s", run.ExpectedFile, run.ActualFile)))

	if run.Result.OK() {
		fmt.Fprintf(f.writer, "  %s documents match %s\n", green("✓"), cyan(fmt.Sprintf("(%dms)", run.Duration.Milliseconds())))
		return
	}

	for _, fail := range run.Result.Failures {
		fmt.Fprintf(f.writer, "  %s %s %s\n", red("✗"), bold(fail.Path), fail.Message)
		if f.verbose {
			if fail.Expected != "" {
				fmt.Fprintf(f.writer, "      expected: %s\n", fail.Expected)
			}
			if fail.Actual != "" {
				fmt.Fprintf(f.writer, "      actual:   %s\n", fail.Actual)
			}
		}
	}
	fmt.Fprintf(f.writer, "\n  %s %s\n",
		red(fmt.Sprintf("%d failure(s)", len(run.Result.Failures))),
		cyan(fmt.Sprintf("(%dms)", run.Duration.Milliseconds())))
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

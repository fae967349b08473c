package output

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// JSONOutput is the machine-readable result document.
type JSONOutput struct {
	ExpectedFile string        `json:"expectedFile"`
	ActualFile   string        `json:"actualFile"`
	Passed       bool          `json:"passed"`
	Failures     []JSONFailure `json:"failures,omitempty"`
	Duration     float64       `json:"duration"`
	Time         string        `json:"time"`
}

// JSONFailure is one mismatch in JSON form.
type JSONFailure struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

type JSONFormatter struct {
	writer io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONFormatter{writer: w}
}

func (f *JSONFormatter) FormatRun(run Run) error {
	out := JSONOutput{
		ExpectedFile: run.ExpectedFile,
		ActualFile:   run.ActualFile,
		Passed:       run.Result.OK(),
		Duration:     float64(run.Duration.Milliseconds()),
		Time:         time.Now().UTC().Format(time.RFC3339),
	}
	for _, fail := range run.Result.Failures {
		out.Failures = append(out.Failures, JSONFailure{
			Path:     fail.Path,
			Message:  fail.Message,
			Expected: fail.Expected,
			Actual:   fail.Actual,
		})
	}
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/jsonspec/packages/compare"
)

func TestConsoleFormatter_Pass(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatRun(Run{
		ExpectedFile: "e.json",
		ActualFile:   "a.json",
		Duration:     5 * time.Millisecond,
	})

	out := buf.String()
	assert.Contains(t, out, "Comparing: e.json vs a.json")
	assert.Contains(t, out, "documents match")
}

func TestConsoleFormatter_Failures(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithVerbose(true))

	f.FormatRun(Run{
		ExpectedFile: "e.json",
		ActualFile:   "a.json",
		Result: compare.Result{Failures: []compare.Failure{
			{Path: "id", Message: "values do not match", Expected: "1", Actual: "2"},
		}},
	})

	out := buf.String()
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "values do not match")
	assert.Contains(t, out, "expected: 1")
	assert.Contains(t, out, "actual:   2")
	assert.Contains(t, out, "1 failure(s)")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	err := f.FormatRun(Run{
		ExpectedFile: "e.json",
		ActualFile:   "a.json",
		Result: compare.Result{Failures: []compare.Failure{
			{Path: "a", Message: "value is missing", Expected: "1"},
		}},
		Duration: 12 * time.Millisecond,
	})
	require.NoError(t, err)

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "e.json", out.ExpectedFile)
	assert.False(t, out.Passed)
	require.Len(t, out.Failures, 1)
	assert.Equal(t, "a", out.Failures[0].Path)
	assert.Equal(t, float64(12), out.Duration)
}

package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/jsonspec/packages/compare"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openStore(t)

	res := compare.Result{Failures: []compare.Failure{
		{Path: "id", Message: "values do not match", Expected: "1", Actual: "2"},
		{Path: "items", Message: "expected 2 elements, got 1"},
	}}
	id, err := store.Record("expected.json", "actual.json", res)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	runs, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, "expected.json", runs[0].ExpectedFile)
	assert.Equal(t, "actual.json", runs[0].ActualFile)
	assert.False(t, runs[0].Passed)
	assert.Equal(t, 2, runs[0].FailureCount)
}

func TestRecord_PassingRun(t *testing.T) {
	store := openStore(t)

	id, err := store.Record("e.json", "a.json", compare.Result{})
	require.NoError(t, err)

	runs, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].Passed)
	assert.Equal(t, 0, runs[0].FailureCount)

	fails, err := store.Failures(id)
	require.NoError(t, err)
	assert.Empty(t, fails)
}

func TestFailures_Order(t *testing.T) {
	store := openStore(t)

	res := compare.Result{Failures: []compare.Failure{
		{Path: "a", Message: "first"},
		{Path: "b", Message: "second"},
		{Path: "c", Message: "third"},
	}}
	id, err := store.Record("e.json", "a.json", res)
	require.NoError(t, err)

	fails, err := store.Failures(id)
	require.NoError(t, err)
	require.Len(t, fails, 3)
	assert.Equal(t, "first", fails[0].Message)
	assert.Equal(t, "third", fails[2].Message)
}

func TestRecent_Limit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.Record("e.json", "a.json", compare.Result{})
		require.NoError(t, err)
	}

	runs, err := store.Recent(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

package expect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures reported failures instead of failing the real test.
type recorder struct {
	errors []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestExpect_SubsetByDefault(t *testing.T) {
	rec := &recorder{}
	ok := Expect(rec, `{"a": 1}`).Matches(`{"a": 1, "b": 2}`)
	assert.True(t, ok)
	assert.Empty(t, rec.errors)
}

func TestExpect_ReportsFailures(t *testing.T) {
	rec := &recorder{}
	ok := Expect(rec, `{"id": 123}`).Matches(`{"id": 456}`)
	assert.False(t, ok)
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "id")
	assert.Contains(t, rec.errors[0], "values do not match")
}

func TestExpect_TypeOnly(t *testing.T) {
	rec := &recorder{}
	ok := Expect(rec, `{"id": 123}`).
		TypeOnly("id").
		Matches(`{"id": 456, "extra": "x"}`)
	assert.True(t, ok)
	assert.Empty(t, rec.errors)
}

func TestExpect_TypeOnlyTreeAtRoot(t *testing.T) {
	rec := &recorder{}
	ok := Expect(rec, `{"user": {"id": 1, "score": 2.5}}`).
		TypeOnlyTree().
		Matches(`{"user": {"id": 9, "score": 0.1}}`)
	assert.True(t, ok)
}

func TestExpect_AnyOrder(t *testing.T) {
	rec := &recorder{}
	ok := Expect(rec, `{"items": [1, 2]}`).
		AnyOrder("items[*]").
		Matches(`{"items": [2, 1, 3]}`)
	assert.True(t, ok)
	assert.Empty(t, rec.errors)
}

func TestExpect_EqualCounts(t *testing.T) {
	rec := &recorder{}
	ok := Expect(rec, `{"a": 1}`).
		EqualCounts().
		Matches(`{"a": 1, "b": 2}`)
	assert.False(t, ok)
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "expected 1 keys, got 2")
}

func TestExpect_Absent(t *testing.T) {
	rec := &recorder{}
	ok := Expect(rec, `{}`).
		Absent("deleted").
		Matches(`{"deleted": true}`)
	assert.False(t, ok)
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "deleted")
}

func TestExpect_NotEqual(t *testing.T) {
	rec := &recorder{}
	ok := Expect(rec, `{"token": "old"}`).
		NotEqual("token").
		Matches(`{"token": "old"}`)
	assert.False(t, ok)

	rec = &recorder{}
	ok = Expect(rec, `{"token": "old"}`).
		NotEqual("token").
		Matches(`{"token": "new"}`)
	assert.True(t, ok)
}

func TestExpect_ElementCount(t *testing.T) {
	rec := &recorder{}
	ok := Expect(rec, `{}`).
		ElementCount(3, "items").
		Matches(`{"items": [1, 2]}`)
	assert.False(t, ok)
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "exactly 3")
}

func TestExpect_Chaining(t *testing.T) {
	rec := &recorder{}
	ok := Expect(rec, `{"id": 1, "items": [1, 2], "meta": {"count": 2}}`).
		TypeOnly("id").
		AnyOrder("items[*]").
		EqualCounts("meta").
		Matches(`{"id": 99, "items": [2, 1], "meta": {"count": 2}, "more": true}`)
	assert.True(t, ok, "errors: %v", rec.errors)
}

func TestExpect_GoValues(t *testing.T) {
	rec := &recorder{}
	ok := Expect(rec, map[string]any{"a": 1}).
		Matches(map[string]any{"a": 1, "b": 2})
	assert.True(t, ok)
}

func TestExpect_RawStringLeafFallback(t *testing.T) {
	rec := &recorder{}
	// Both sides fail JSON parsing and become raw string leaves.
	ok := Expect(rec, "plain text").Matches("plain text")
	assert.True(t, ok)

	rec = &recorder{}
	ok = Expect(rec, "plain text").Matches("other text")
	assert.False(t, ok)
}

func TestExpect_UnconvertibleActualIsAbsent(t *testing.T) {
	rec := &recorder{}
	// A value that cannot be canonicalized counts as "no value", so the
	// expectation reports a missing document rather than panicking.
	ok := Expect(rec, `{"a": 1}`).Matches(struct{ X int }{1})
	assert.False(t, ok)
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "value is missing")
}

func TestExpect_CheckDoesNotReport(t *testing.T) {
	rec := &recorder{}
	res := Expect(rec, `{"a": 1}`).Check(`{"a": 2}`)
	assert.False(t, res.OK())
	assert.Empty(t, rec.errors)
}

package expect

import (
	"github.com/abdul-hamid-achik/jsonspec/packages/compare"
	"github.com/abdul-hamid-achik/jsonspec/packages/config"
	"github.com/abdul-hamid-achik/jsonspec/packages/jsonpath"
	"github.com/abdul-hamid-achik/jsonspec/packages/value"
)

// TestingT is the subset of *testing.T the builder reports through.
type TestingT interface {
	Errorf(format string, args ...any)
}

// Expectation pairs an expected document with the rules describing how
// strictly each part must match.
type Expectation struct {
	t        TestingT
	expected value.Value
	root     *config.Node
}

// Expect starts a new expectation. Strings and byte slices are parsed as
// JSON, falling back to a raw string leaf; other Go values are converted
// structurally. A value that cannot be converted counts as absent and
// constrains nothing.
func Expect(t TestingT, expected any) *Expectation {
	return &Expectation{
		t:        t,
		expected: canonical(expected),
		root:     config.NewRoot(),
	}
}

func canonical(v any) value.Value {
	switch in := v.(type) {
	case string:
		return value.FromString(in)
	case []byte:
		if cv, ok := value.FromJSON(in); ok {
			return cv
		}
		return value.String(string(in))
	default:
		cv, _ := value.FromAny(in)
		return cv
	}
}

func (e *Expectation) set(opt config.Option, on bool, scope config.Scope, paths []string) *Expectation {
	if len(paths) == 0 {
		e.root.Set(opt, on, jsonpath.Root, scope)
		return e
	}
	for _, p := range paths {
		e.root.Set(opt, on, jsonpath.Parse(p), scope)
	}
	return e
}

// AnyOrder lets the array elements at the given paths match at any
// position, one-to-one.
func (e *Expectation) AnyOrder(paths ...string) *Expectation {
	return e.set(config.AnyOrder, true, config.SingleNode, paths)
}

// AnyOrderTree makes any-order matching the default for everything below
// the given paths.
func (e *Expectation) AnyOrderTree(paths ...string) *Expectation {
	return e.set(config.AnyOrder, true, config.Subtree, paths)
}

// Ordered restores positional matching at the given paths.
func (e *Expectation) Ordered(paths ...string) *Expectation {
	return e.set(config.AnyOrder, false, config.SingleNode, paths)
}

// TypeOnly relaxes the given paths to match by type instead of by value.
func (e *Expectation) TypeOnly(paths ...string) *Expectation {
	return e.set(config.ExactMatch, false, config.SingleNode, paths)
}

// TypeOnlyTree makes type-only matching the default below the given paths.
func (e *Expectation) TypeOnlyTree(paths ...string) *Expectation {
	return e.set(config.ExactMatch, false, config.Subtree, paths)
}

// ExactValues restores value matching at the given paths.
func (e *Expectation) ExactValues(paths ...string) *Expectation {
	return e.set(config.ExactMatch, true, config.SingleNode, paths)
}

// ExactValuesTree makes value matching the default below the given paths.
func (e *Expectation) ExactValuesTree(paths ...string) *Expectation {
	return e.set(config.ExactMatch, true, config.Subtree, paths)
}

// EqualCounts forbids extra keys or elements in the actual collections at
// the given paths.
func (e *Expectation) EqualCounts(paths ...string) *Expectation {
	return e.set(config.EqualCount, true, config.SingleNode, paths)
}

// EqualCountsTree makes the equal-count rule the default below the given
// paths.
func (e *Expectation) EqualCountsTree(paths ...string) *Expectation {
	return e.set(config.EqualCount, true, config.Subtree, paths)
}

// Absent requires the given paths to be missing from the actual document.
func (e *Expectation) Absent(paths ...string) *Expectation {
	return e.set(config.Absent, true, config.SingleNode, paths)
}

// NotEqual requires the actual values at the given paths to differ from
// the expected ones.
func (e *Expectation) NotEqual(paths ...string) *Expectation {
	return e.set(config.NotEqual, true, config.SingleNode, paths)
}

// ElementCount requires the collections at the given paths to have exactly
// n entries.
func (e *Expectation) ElementCount(n int, paths ...string) *Expectation {
	if len(paths) == 0 {
		e.root.SetElementCount(n, jsonpath.Root)
		return e
	}
	for _, p := range paths {
		e.root.SetElementCount(n, jsonpath.Parse(p))
	}
	return e
}

// Check validates actual against the expectation and returns the raw
// result without reporting.
func (e *Expectation) Check(actual any) compare.Result {
	return compare.Validate(e.expected, canonical(actual), e.root)
}

// Matches validates actual, reports every failure through the test handle,
// and returns whether the documents matched.
func (e *Expectation) Matches(actual any) bool {
	res := e.Check(actual)
	for _, f := range res.Failures {
		if f.Expected != "" || f.Actual != "" {
			e.t.Errorf("%s: %s (expected: %s, actual: %s)", f.Path, f.Message, snippet(f.Expected), snippet(f.Actual))
		} else {
			e.t.Errorf("%s: %s", f.Path, f.Message)
		}
	}
	return res.OK()
}

func snippet(s string) string {
	if s == "" {
		return "<none>"
	}
	return s
}

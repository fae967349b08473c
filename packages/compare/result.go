package compare

import (
	"github.com/abdul-hamid-achik/jsonspec/packages/jsonpath"
)

// Failure records one mismatch: where it happened, what went wrong, and
// optionally rendered snapshots of both sides. Primitive snapshots stay
// compact; collections are rendered as indented JSON.
type Failure struct {
	Path     string
	Message  string
	Expected string
	Actual   string
}

// Result is the outcome of a validation run: success, or an ordered list
// of failures. Failures concatenate without deduplication so one run
// surfaces every independent mismatch.
type Result struct {
	Failures []Failure
}

// OK reports whether the run produced no failures.
func (r Result) OK() bool { return len(r.Failures) == 0 }

// Merge concatenates two results in order.
func (r Result) Merge(other Result) Result {
	if len(other.Failures) == 0 {
		return r
	}
	merged := make([]Failure, 0, len(r.Failures)+len(other.Failures))
	merged = append(merged, r.Failures...)
	merged = append(merged, other.Failures...)
	return Result{Failures: merged}
}

func (r *Result) add(f Failure) {
	r.Failures = append(r.Failures, f)
}

// pathString renders a path for diagnostics. The root has no textual form
// in the grammar, so it displays as "$".
func pathString(p jsonpath.Path) string {
	if p.IsRoot() {
		return "$"
	}
	return p.String()
}

package compare

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/jsonspec/packages/config"
	"github.com/abdul-hamid-achik/jsonspec/packages/jsonpath"
	"github.com/abdul-hamid-achik/jsonspec/packages/value"
)

// Validate compares actual against expected under the given rule tree and
// returns every mismatch found. A nil root means default rules. Absent
// inputs are legal: an absent expected constrains nothing, an absent
// actual fails wherever expected demands a value.
func Validate(expected, actual value.Value, root *config.Node) Result {
	if root == nil {
		root = config.NewRoot()
	}
	var res Result
	checkActual(jsonpath.Root, actual, root, &res)
	compareValues(jsonpath.Root, expected, actual, root, &res)
	return res
}

// checkActual is the actual-only pass: absence rules and element counts.
// It does not require expected to exist anywhere.
func checkActual(path jsonpath.Path, act value.Value, node *config.Node, res *Result) {
	if !act.Exists() {
		return
	}
	if count, ok := node.ElementCount(); ok {
		if !act.IsCollection() {
			res.add(Failure{
				Path:    pathString(path),
				Message: fmt.Sprintf("element count requires an array or object, got %s", act.Kind()),
				Actual:  value.Pretty(act),
			})
		} else if act.Len() != count {
			res.add(Failure{
				Path:    pathString(path),
				Message: fmt.Sprintf("expected exactly %d elements, got %d", count, act.Len()),
				Actual:  value.Pretty(act),
			})
		}
	}
	switch act.Kind() {
	case value.KindObject:
		obj := act.Object()
		for _, k := range obj.Keys() {
			child := node.ResolvedChild(k)
			childPath := path.Key(k)
			v, _ := obj.Get(k)
			if child.AbsentOn() {
				res.add(Failure{
					Path:    pathString(childPath),
					Message: "must be absent, but is present",
					Actual:  value.Pretty(v),
				})
			}
			checkActual(childPath, v, child, res)
		}
	case value.KindArray:
		for i, v := range act.Items() {
			child := node.ResolvedIndex(i)
			childPath := path.Index(i)
			if child.AbsentOn() {
				res.add(Failure{
					Path:    pathString(childPath),
					Message: "must be absent, but is present",
					Actual:  value.Pretty(v),
				})
			}
			checkActual(childPath, v, child, res)
		}
	}
}

// compareValues is the lock-step pass over expected and actual.
func compareValues(path jsonpath.Path, exp, act value.Value, node *config.Node, res *Result) {
	if !exp.Exists() {
		return
	}
	if !act.Exists() {
		res.add(Failure{
			Path:     pathString(path),
			Message:  "value is missing",
			Expected: value.Pretty(exp),
		})
		return
	}
	if node.NotEqualOn() {
		if value.Equal(exp, act) {
			res.add(Failure{
				Path:     pathString(path),
				Message:  "values should not match",
				Expected: value.Pretty(exp),
				Actual:   value.Pretty(act),
			})
		}
		return
	}
	if exp.Kind() != act.Kind() {
		res.add(Failure{
			Path:     pathString(path),
			Message:  fmt.Sprintf("types do not match: expected %s, got %s", exp.Kind(), act.Kind()),
			Expected: value.Pretty(exp),
			Actual:   value.Pretty(act),
		})
		return
	}
	switch exp.Kind() {
	case value.KindObject:
		compareObjects(path, exp, act, node, res)
	case value.KindArray:
		compareArrays(path, exp, act, node, res)
	default:
		if node.ExactMatchOn() && !value.Equal(exp, act) {
			res.add(Failure{
				Path:     pathString(path),
				Message:  "values do not match",
				Expected: value.Pretty(exp),
				Actual:   value.Pretty(act),
			})
		}
	}
}

func compareObjects(path jsonpath.Path, exp, act value.Value, node *config.Node, res *Result) {
	eo, ao := exp.Object(), act.Object()
	checkCount(path, eo.Len(), ao.Len(), "keys", node, res)
	for _, k := range eo.Keys() {
		ev, _ := eo.Get(k)
		av, _ := ao.Get(k)
		compareValues(path.Key(k), ev, av, node.ResolvedChild(k), res)
	}
}

func compareArrays(path jsonpath.Path, exp, act value.Value, node *config.Node, res *Result) {
	ea, aa := exp.Items(), act.Items()
	checkCount(path, len(ea), len(aa), "elements", node, res)

	claimed := make([]bool, len(aa))
	var unordered []int

	// Fixed-order elements compare positionally and consume their slot
	// whether or not the comparison passed.
	configs := make([]*config.Node, len(ea))
	for i, ev := range ea {
		configs[i] = node.ResolvedIndex(i)
		if configs[i].AnyOrderOn() {
			unordered = append(unordered, i)
			continue
		}
		var av value.Value
		if i < len(aa) {
			av = aa[i]
			claimed[i] = true
		}
		compareValues(path.Index(i), ev, av, configs[i], res)
	}

	// Any-order elements match one-to-one, in expected order, against the
	// first unclaimed actual element that passes outright. The first
	// unmatched element ends the search for this array.
	for _, i := range unordered {
		matched := false
		for j := range aa {
			if claimed[j] {
				continue
			}
			var trial Result
			compareValues(path.Index(i), ea[i], aa[j], configs[i], &trial)
			if trial.OK() {
				claimed[j] = true
				matched = true
				break
			}
		}
		if !matched {
			res.add(Failure{
				Path:     pathString(path),
				Message:  fmt.Sprintf("no match for expected element %s among remaining elements", ea[i].String()),
				Expected: value.Pretty(ea[i]),
				Actual:   renderUnclaimed(aa, claimed),
			})
			return
		}
	}
}

// checkCount enforces the collection size rule: equal counts when the
// equal-count option resolves true, otherwise expected may not outnumber
// actual.
func checkCount(path jsonpath.Path, expected, actual int, unit string, node *config.Node, res *Result) {
	if node.EqualCountOn() {
		if expected != actual {
			res.add(Failure{
				Path:    pathString(path),
				Message: fmt.Sprintf("expected %d %s, got %d", expected, unit, actual),
			})
		}
		return
	}
	if expected > actual {
		res.add(Failure{
			Path:    pathString(path),
			Message: fmt.Sprintf("expected at least %d %s, got %d", expected, unit, actual),
		})
	}
}

func renderUnclaimed(items []value.Value, claimed []bool) string {
	var parts []string
	for i, v := range items {
		if !claimed[i] {
			parts = append(parts, v.String())
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}

package value

import (
	"strings"

	"github.com/tidwall/pretty"
)

// Pretty renders the value as indented JSON for failure snapshots and
// verbose reports. Primitives come out the same as String.
func Pretty(v Value) string {
	if !v.Exists() {
		return "<none>"
	}
	if v.IsPrimitive() || v.Kind() == KindNull {
		return v.String()
	}
	out := pretty.Pretty([]byte(v.String()))
	return strings.TrimRight(string(out), "\n")
}

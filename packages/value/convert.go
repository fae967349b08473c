package value

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// FromJSON parses raw JSON into a canonical value. Object key order follows
// document order. Returns ok=false for invalid JSON.
func FromJSON(data []byte) (Value, bool) {
	if !gjson.ValidBytes(data) {
		return None, false
	}
	return fromResult(gjson.ParseBytes(data)), true
}

// FromString parses s as JSON, falling back to a raw string leaf when s is
// not valid JSON. This is the lenient entry point used by test-facing
// adapters.
func FromString(s string) Value {
	if v, ok := FromJSON([]byte(s)); ok {
		return v
	}
	return String(s)
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.String:
		return String(r.Str)
	case gjson.Number:
		return numberFromLiteral(r.Raw, r.Num)
	case gjson.JSON:
		if r.IsArray() {
			var items []Value
			r.ForEach(func(_, e gjson.Result) bool {
				items = append(items, fromResult(e))
				return true
			})
			return Array(items...)
		}
		obj := NewObject()
		r.ForEach(func(k, e gjson.Result) bool {
			obj.Set(k.String(), fromResult(e))
			return true
		})
		return ObjectValue(obj)
	}
	return None
}

// numberFromLiteral picks Int or Float based on the literal shape: any
// fraction or exponent makes it a float, as does an integer too wide for
// int64.
func numberFromLiteral(raw string, num float64) Value {
	if strings.ContainsAny(raw, ".eE") {
		return Float(num)
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(i)
	}
	return Float(num)
}

// FromAny converts decoded-JSON Go values into canonical form. Plain maps
// get their keys sorted since Go map order is not meaningful. Unsupported
// types return ok=false; adapters treat that as "no value".
func FromAny(v any) (Value, bool) {
	switch t := v.(type) {
	case nil:
		return Null(), true
	case Value:
		return t, true
	case bool:
		return Bool(t), true
	case string:
		return String(t), true
	case int:
		return Int(int64(t)), true
	case int8:
		return Int(int64(t)), true
	case int16:
		return Int(int64(t)), true
	case int32:
		return Int(int64(t)), true
	case int64:
		return Int(t), true
	case uint:
		return Int(int64(t)), true
	case uint8:
		return Int(int64(t)), true
	case uint16:
		return Int(int64(t)), true
	case uint32:
		return Int(int64(t)), true
	case uint64:
		// Values beyond int64 range lose exactness either way; keep them
		// as floats rather than wrapping around.
		if t > math.MaxInt64 {
			return Float(float64(t)), true
		}
		return Int(int64(t)), true
	case float32:
		return Float(float64(t)), true
	case float64:
		return Float(t), true
	case json.Number:
		return numberFromLiteral(t.String(), jsonNumberFloat(t)), true
	case []any:
		items := make([]Value, 0, len(t))
		for _, e := range t {
			ev, ok := FromAny(e)
			if !ok {
				return None, false
			}
			items = append(items, ev)
		}
		return Array(items...), true
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			ev, ok := FromAny(t[k])
			if !ok {
				return None, false
			}
			obj.Set(k, ev)
		}
		return ObjectValue(obj), true
	case *Object:
		return ObjectValue(t), true
	}
	return None, false
}

func jsonNumberFloat(n json.Number) float64 {
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return f
}

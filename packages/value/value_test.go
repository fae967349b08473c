package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
	}{
		{name: "null", input: `null`, kind: KindNull},
		{name: "bool", input: `true`, kind: KindBool},
		{name: "integer literal", input: `42`, kind: KindInt},
		{name: "float literal", input: `42.0`, kind: KindFloat},
		{name: "exponent literal is float", input: `1e3`, kind: KindFloat},
		{name: "string", input: `"hi"`, kind: KindString},
		{name: "array", input: `[1,2]`, kind: KindArray},
		{name: "object", input: `{"a":1}`, kind: KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := FromJSON([]byte(tt.input))
			require.True(t, ok)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	_, ok := FromJSON([]byte(`{"a":`))
	assert.False(t, ok)
}

func TestFromJSON_ObjectKeyOrder(t *testing.T) {
	v, ok := FromJSON([]byte(`{"z":1,"a":2,"m":3}`))
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, v.Object().Keys())
}

func TestFromString_Fallback(t *testing.T) {
	assert.Equal(t, KindString, FromString("not json at all").Kind())
	assert.Equal(t, KindInt, FromString("123").Kind())
	assert.Equal(t, KindBool, FromString("true").Kind())
	assert.Equal(t, KindObject, FromString(`{"a":1}`).Kind())
}

func TestIntAndFloatAreDistinct(t *testing.T) {
	i, ok := FromJSON([]byte(`1`))
	require.True(t, ok)
	f, ok := FromJSON([]byte(`1.0`))
	require.True(t, ok)

	assert.Equal(t, KindInt, i.Kind())
	assert.Equal(t, KindFloat, f.Kind())
	assert.False(t, Equal(i, f))
}

func TestEqual_Deep(t *testing.T) {
	a, ok := FromJSON([]byte(`{"items":[1,{"x":true}],"name":"a"}`))
	require.True(t, ok)
	b, ok := FromJSON([]byte(`{"name":"a","items":[1,{"x":true}]}`))
	require.True(t, ok)
	c, ok := FromJSON([]byte(`{"items":[1,{"x":false}],"name":"a"}`))
	require.True(t, ok)

	assert.True(t, Equal(a, b)) // key order does not matter
	assert.False(t, Equal(a, c))
}

func TestEqual_Absent(t *testing.T) {
	assert.True(t, Equal(None, None))
	assert.False(t, Equal(None, Null()))
}

func TestFromAny(t *testing.T) {
	v, ok := FromAny(map[string]any{"b": 2, "a": []any{1, "x", nil}})
	require.True(t, ok)
	require.Equal(t, KindObject, v.Kind())

	// Plain map keys come out sorted.
	assert.Equal(t, []string{"a", "b"}, v.Object().Keys())

	arr, found := v.Object().Get("a")
	require.True(t, found)
	require.Equal(t, KindArray, arr.Kind())
	assert.Equal(t, KindInt, arr.Items()[0].Kind())
	assert.Equal(t, KindString, arr.Items()[1].Kind())
	assert.Equal(t, KindNull, arr.Items()[2].Kind())
}

func TestFromAny_IntegerWidths(t *testing.T) {
	for _, in := range []any{
		int8(1), int16(1), int32(1), int64(1),
		uint(1), uint8(1), uint16(1), uint32(1), uint64(1),
	} {
		v, ok := FromAny(in)
		require.True(t, ok, "%T", in)
		assert.True(t, Equal(Int(1), v), "%T", in)
	}

	// uint64 beyond int64 range falls back to float instead of wrapping.
	big, ok := FromAny(uint64(math.MaxInt64) + 1)
	require.True(t, ok)
	assert.Equal(t, KindFloat, big.Kind())
}

func TestFromAny_Unsupported(t *testing.T) {
	_, ok := FromAny(struct{}{})
	assert.False(t, ok)
}

func TestString_Rendering(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "object", input: `{"a": 1, "b": [true, null]}`, want: `{"a":1,"b":[true,null]}`},
		{name: "float keeps its kind visible", input: `{"a": 1.0}`, want: `{"a":1.0}`},
		{name: "string quoting", input: `"he said \"hi\""`, want: `"he said \"hi\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := FromJSON([]byte(tt.input))
			require.True(t, ok)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestPretty(t *testing.T) {
	v, ok := FromJSON([]byte(`{"a":1}`))
	require.True(t, ok)
	out := Pretty(v)
	assert.Contains(t, out, `"a": 1`)

	assert.Equal(t, "42", Pretty(Int(42)))
	assert.Equal(t, "<none>", Pretty(None))
}

// Package value defines the canonical representation of JSON-shaped data
// used by the comparison engine.
//
// A Value is one of: null, boolean, integer, float, string, array or
// object. Integers and floats are distinct kinds; no cross-kind numeric
// coercion happens anywhere in the engine, so 1 and 1.0 are different
// types. Objects remember key insertion order.
//
// The zero Value represents "no value" (a position that does not exist);
// check with Exists before inspecting the kind.
package value

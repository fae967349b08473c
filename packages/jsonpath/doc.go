// Package jsonpath implements the compact path grammar used to address
// locations inside a JSON document.
//
// Grammar:
//   - `.` separates object-key segments; escape a literal dot as `\.`
//   - `[n]` is an array index chained after a key or another index
//   - `[*]` is a wildcard index, matching every element
//   - a bare `*` segment is a wildcard key; escape a literal asterisk as `\*`
//   - literal brackets inside keys are escaped as `\[` and `\]`
//
// Parsing is total: it never fails. Malformed bracket content is dropped
// while the surrounding key survives, and input that cannot be interpreted
// degrades to the longest parseable prefix. The empty string parses to a
// single empty key component; the root path is the Root constant and is
// never produced by Parse.
package jsonpath

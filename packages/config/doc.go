// Package config holds the path-addressed rule tree consumed by the
// comparison engine.
//
// Every node mirrors one location in the expected document's shape. A node
// carries optional per-node overrides (unset is distinct from false), a
// bundle of inherited defaults, named children, and at most one wildcard
// child template standing in for every key or index not listed by name.
//
// Rules are written into the tree with Set/SetElementCount and read back
// through ResolvedChild, which applies the child-override, then
// wildcard-override, then defaults precedence per option.
package config

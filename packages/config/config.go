package config

import (
	"strconv"

	"github.com/abdul-hamid-achik/jsonspec/packages/jsonpath"
)

// Option enumerates the per-node rule kinds.
type Option int

const (
	// AnyOrder lets array elements match at any position.
	AnyOrder Option = iota
	// ExactMatch requires primitive values to match by value, not just type.
	ExactMatch
	// EqualCount requires expected and actual collections to have equal size.
	EqualCount
	// Absent requires the addressed key to be missing from the actual document.
	Absent
	// NotEqual requires the actual value to differ from the expected one.
	NotEqual
)

func (o Option) String() string {
	switch o {
	case AnyOrder:
		return "any-order"
	case ExactMatch:
		return "exact-match"
	case EqualCount:
		return "equal-count"
	case Absent:
		return "absent"
	case NotEqual:
		return "not-equal"
	default:
		return "unknown"
	}
}

// Scope controls how far an applied option reaches.
type Scope int

const (
	// SingleNode sets the override on the addressed node only.
	SingleNode Scope = iota
	// Subtree rewrites the addressed node's defaults bundle and pushes it to
	// every existing descendant.
	Subtree
)

// Defaults is the bundle of concrete option values a node falls back to
// when it has no override of its own. Bundles are inherited explicitly at
// node creation and on subtree writes, never recomputed.
type Defaults struct {
	AnyOrder   bool
	ExactMatch bool
	EqualCount bool
	Absent     bool
	NotEqual   bool
}

// RootDefaults is the engine's baseline: exact value matching, positional
// arrays, subset counts.
func RootDefaults() Defaults {
	return Defaults{ExactMatch: true}
}

func (d *Defaults) set(opt Option, on bool) {
	switch opt {
	case AnyOrder:
		d.AnyOrder = on
	case ExactMatch:
		d.ExactMatch = on
	case EqualCount:
		d.EqualCount = on
	case Absent:
		d.Absent = on
	case NotEqual:
		d.NotEqual = on
	}
}

// Node is one location in the rule tree. A nil override pointer means
// "unset": resolution falls through to the wildcard template and then the
// defaults bundle. ElementCount is terminal-only and never inherited.
type Node struct {
	name string

	anyOrder   *bool
	exactMatch *bool
	equalCount *bool
	absent     *bool
	notEqual   *bool

	elementCount *int

	defaults Defaults
	children map[string]*Node
	wildcard *Node
}

// NewRoot returns an empty tree carrying the baseline defaults.
func NewRoot() *Node {
	return &Node{defaults: RootDefaults()}
}

func (n *Node) Name() string { return n.name }

// Set applies a boolean option at the addressed path. Navigation creates
// intermediate nodes; a wildcard component targets the level's wildcard
// template and every already-materialized named child of that level.
func (n *Node) Set(opt Option, on bool, at jsonpath.Path, scope Scope) {
	n.apply(at.Components(), func(t *Node) {
		if scope == SingleNode {
			t.setOverride(opt, on)
			return
		}
		t.defaults.set(opt, on)
		t.pushDefaults(t.defaults)
	})
}

// SetElementCount requires the collection at the addressed path to have
// exactly count entries. There is no subtree form.
func (n *Node) SetElementCount(count int, at jsonpath.Path) {
	n.apply(at.Components(), func(t *Node) {
		c := count
		t.elementCount = &c
	})
}

func (n *Node) apply(comps []jsonpath.Component, mutate func(*Node)) {
	if len(comps) == 0 {
		mutate(n)
		return
	}
	rest := comps[1:]
	if comps[0].IsWildcard() {
		n.ensureWildcard().apply(rest, mutate)
		for _, child := range n.children {
			child.apply(rest, mutate)
		}
		return
	}
	n.ensureChild(comps[0].ChildName()).apply(rest, mutate)
}

func (n *Node) setOverride(opt Option, on bool) {
	v := on
	switch opt {
	case AnyOrder:
		n.anyOrder = &v
	case ExactMatch:
		n.exactMatch = &v
	case EqualCount:
		n.equalCount = &v
	case Absent:
		n.absent = &v
	case NotEqual:
		n.notEqual = &v
	}
}

// pushDefaults overwrites the defaults bundle of every descendant,
// wildcard templates included. Overrides are untouched.
func (n *Node) pushDefaults(d Defaults) {
	for _, child := range n.children {
		child.defaults = d
		child.pushDefaults(d)
	}
	if n.wildcard != nil {
		n.wildcard.defaults = d
		n.wildcard.pushDefaults(d)
	}
}

// ensureChild returns the named child, creating it if needed. A child born
// at a level that already has a wildcard template starts as a deep copy of
// the template, so the wildcard's configuration is its baseline.
func (n *Node) ensureChild(name string) *Node {
	if c, ok := n.children[name]; ok {
		return c
	}
	var c *Node
	if n.wildcard != nil {
		c = n.wildcard.clone()
		c.name = name
	} else {
		c = &Node{name: name, defaults: n.defaults}
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	n.children[name] = c
	return c
}

func (n *Node) ensureWildcard() *Node {
	if n.wildcard == nil {
		n.wildcard = &Node{defaults: n.defaults}
	}
	return n.wildcard
}

// clone copies the node and its whole subtree. Option pointers are
// reallocated so the copy can be mutated independently of the original.
func (n *Node) clone() *Node {
	c := &Node{
		name:         n.name,
		anyOrder:     cloneBool(n.anyOrder),
		exactMatch:   cloneBool(n.exactMatch),
		equalCount:   cloneBool(n.equalCount),
		absent:       cloneBool(n.absent),
		notEqual:     cloneBool(n.notEqual),
		elementCount: cloneInt(n.elementCount),
		defaults:     n.defaults,
	}
	if n.children != nil {
		c.children = make(map[string]*Node, len(n.children))
		for k, child := range n.children {
			c.children[k] = child.clone()
		}
	}
	if n.wildcard != nil {
		c.wildcard = n.wildcard.clone()
	}
	return c
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ResolvedChild produces the configuration in effect for the named child.
// Each option resolves independently: the child's own override wins, then
// the wildcard template's override, then the defaults bundle of the child
// if it exists, else of the wildcard, else of this node. ElementCount
// resolves only from the child or the wildcard, never from this node. The
// result carries the child's (or wildcard's) children and wildcard so
// resolution can continue recursively; this node's own overrides never
// leak into it.
func (n *Node) ResolvedChild(name string) *Node {
	child := n.children[name]
	w := n.wildcard

	r := &Node{name: name, defaults: n.defaults}
	if src := pick(child, w); src != nil {
		r.defaults = src.defaults
		r.children = src.children
		r.wildcard = src.wildcard
	}
	r.anyOrder = overrideOf(child, w, func(t *Node) *bool { return t.anyOrder })
	r.exactMatch = overrideOf(child, w, func(t *Node) *bool { return t.exactMatch })
	r.equalCount = overrideOf(child, w, func(t *Node) *bool { return t.equalCount })
	r.absent = overrideOf(child, w, func(t *Node) *bool { return t.absent })
	r.notEqual = overrideOf(child, w, func(t *Node) *bool { return t.notEqual })
	if child != nil && child.elementCount != nil {
		r.elementCount = child.elementCount
	} else if w != nil && w.elementCount != nil {
		r.elementCount = w.elementCount
	}
	return r
}

// ResolvedIndex resolves an array position; indices are stored under their
// decimal string form.
func (n *Node) ResolvedIndex(i int) *Node {
	return n.ResolvedChild(strconv.Itoa(i))
}

func pick(child, wildcard *Node) *Node {
	if child != nil {
		return child
	}
	return wildcard
}

func overrideOf(child, wildcard *Node, field func(*Node) *bool) *bool {
	if child != nil {
		if p := field(child); p != nil {
			return p
		}
	}
	if wildcard != nil {
		if p := field(wildcard); p != nil {
			return p
		}
	}
	return nil
}

// AnyOrderOn reports the resolved any-order setting for this node.
func (n *Node) AnyOrderOn() bool {
	if n.anyOrder != nil {
		return *n.anyOrder
	}
	return n.defaults.AnyOrder
}

// ExactMatchOn reports the resolved exact-match setting for this node.
func (n *Node) ExactMatchOn() bool {
	if n.exactMatch != nil {
		return *n.exactMatch
	}
	return n.defaults.ExactMatch
}

// EqualCountOn reports the resolved equal-count setting for this node.
func (n *Node) EqualCountOn() bool {
	if n.equalCount != nil {
		return *n.equalCount
	}
	return n.defaults.EqualCount
}

// AbsentOn reports the resolved key-must-be-absent setting for this node.
func (n *Node) AbsentOn() bool {
	if n.absent != nil {
		return *n.absent
	}
	return n.defaults.Absent
}

// NotEqualOn reports the resolved value-must-differ setting for this node.
func (n *Node) NotEqualOn() bool {
	if n.notEqual != nil {
		return *n.notEqual
	}
	return n.defaults.NotEqual
}

// ElementCount returns the exact element count required at this node, if
// one is set.
func (n *Node) ElementCount() (int, bool) {
	if n.elementCount == nil {
		return 0, false
	}
	return *n.elementCount, true
}

package jsonpath

import (
	"strconv"
	"strings"
)

// ComponentKind identifies a path component variant.
type ComponentKind int

const (
	KindKey ComponentKind = iota
	KindIndex
	KindWildcardKey
	KindWildcardIndex
)

// Component is a single step in a path: an object key, an array index, or
// one of the two wildcard forms.
type Component struct {
	kind  ComponentKind
	name  string
	index int
}

func KeyComponent(name string) Component {
	return Component{kind: KindKey, name: name}
}

func IndexComponent(i int) Component {
	return Component{kind: KindIndex, index: i}
}

func WildcardKeyComponent() Component {
	return Component{kind: KindWildcardKey}
}

func WildcardIndexComponent() Component {
	return Component{kind: KindWildcardIndex}
}

func (c Component) Kind() ComponentKind { return c.kind }
func (c Component) Name() string        { return c.name }
func (c Component) Index() int          { return c.index }

// IsWildcard reports whether the component addresses "all children" at its
// level.
func (c Component) IsWildcard() bool {
	return c.kind == KindWildcardKey || c.kind == KindWildcardIndex
}

// ChildName is the string form used to key configuration children: the key
// literal for keys, the decimal index for indices. Wildcards have no child
// name.
func (c Component) ChildName() string {
	if c.kind == KindIndex {
		return strconv.Itoa(c.index)
	}
	return c.name
}

func (c Component) String() string {
	switch c.kind {
	case KindIndex:
		return "[" + strconv.Itoa(c.index) + "]"
	case KindWildcardIndex:
		return "[*]"
	case KindWildcardKey:
		return "*"
	default:
		return escapeKey(c.name)
	}
}

func escapeKey(name string) string {
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '\\', '.', '*', '[', ']':
			sb.WriteByte('\\')
		}
		sb.WriteByte(name[i])
	}
	return sb.String()
}

// Path is an immutable sequence of components. The zero Path is Root: it
// addresses the document itself.
type Path struct {
	comps []Component
}

// Root addresses the document root. It is distinct from the path parsed
// from "" (a single empty key).
var Root = Path{}

// New builds a path from explicit components.
func New(comps ...Component) Path {
	return Path{comps: comps}
}

func (p Path) Len() int    { return len(p.comps) }
func (p Path) IsRoot() bool { return len(p.comps) == 0 }

// Components returns the underlying sequence. Callers must not mutate it.
func (p Path) Components() []Component { return p.comps }

func (p Path) push(c Component) Path {
	comps := make([]Component, len(p.comps), len(p.comps)+1)
	copy(comps, p.comps)
	return Path{comps: append(comps, c)}
}

// Key returns a copy of the path extended by an object-key component.
func (p Path) Key(name string) Path { return p.push(KeyComponent(name)) }

// Index returns a copy of the path extended by an array-index component.
func (p Path) Index(i int) Path { return p.push(IndexComponent(i)) }

// AnyKey returns a copy of the path extended by a wildcard-key component.
func (p Path) AnyKey() Path { return p.push(WildcardKeyComponent()) }

// AnyIndex returns a copy of the path extended by a wildcard-index component.
func (p Path) AnyIndex() Path { return p.push(WildcardIndexComponent()) }

// String prints the path in the grammar accepted by Parse. Root prints as
// the empty string, which Parse maps to a single empty key instead; keep
// root paths out-of-band rather than round-tripping them through text.
func (p Path) String() string {
	var sb strings.Builder
	for i, c := range p.comps {
		if i > 0 && (c.kind == KindKey || c.kind == KindWildcardKey) {
			sb.WriteByte('.')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Parse interprets s against the path grammar. It never fails: malformed
// bracket content is dropped while the surrounding key survives, and an
// uninterpretable tail degrades to the longest parseable prefix.
func Parse(s string) Path {
	if s == "" {
		return Path{comps: []Component{KeyComponent("")}}
	}
	var comps []Component
	i := 0
	for {
		name, sawEscape, next := scanKey(s, i)
		i = next
		hasBracket := i < len(s) && s[i] == '['
		switch {
		case name == "*" && !sawEscape:
			comps = append(comps, WildcardKeyComponent())
		case name != "" || !hasBracket:
			comps = append(comps, KeyComponent(name))
		}

		unclosed := false
		for i < len(s) && s[i] == '[' {
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				unclosed = true
				break
			}
			content := s[i+1 : i+end]
			if content == "*" {
				comps = append(comps, WildcardIndexComponent())
			} else if isDigits(content) {
				n, _ := strconv.Atoi(content)
				comps = append(comps, IndexComponent(n))
			}
			i += end + 1
		}
		if unclosed || i >= len(s) {
			break
		}
		if s[i] != '.' {
			// Text chained directly after a bracket without a separator;
			// drop the remainder.
			break
		}
		i++
		if i == len(s) {
			comps = append(comps, KeyComponent(""))
			break
		}
	}
	return Path{comps: comps}
}

// scanKey reads key text from s starting at i, stopping at an unescaped
// separator. A backslash escapes whatever byte follows it.
func scanKey(s string, i int) (name string, sawEscape bool, next int) {
	var sb strings.Builder
	for i < len(s) && s[i] != '.' && s[i] != '[' {
		if s[i] == '\\' && i+1 < len(s) {
			sb.WriteByte(s[i+1])
			sawEscape = true
			i += 2
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String(), sawEscape, i
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

package css

import (
	"maps"
	"slices"
	"strings"
)

// Value represents a raw CSS property value as it appeared in the source,
// with whitespace runs collapsed to a single space.
type Value struct {
	Raw string
}

// String returns the value text.
func (v Value) String() string {
	return v.Raw
}

// IsEmpty returns true if the value carries no text.
func (v Value) IsEmpty() bool {
	return strings.TrimSpace(v.Raw) == ""
}

// Block is the property block of a single selector. When the same selector
// appears more than once, later declarations override earlier ones.
type Block struct {
	Selector   string           // Full selector text including pseudo suffixes (e.g. "button:checked:hover")
	properties map[string]Value // Property name -> value
	names      []string         // Property names, the latest declaration last
}

// Properties returns a copy of the property map of the block.
func (b Block) Properties() map[string]Value {
	return maps.Clone(b.properties)
}

// Property returns the value for a property, or empty Value if not found.
func (b Block) Property(name string) (Value, bool) {
	v, ok := b.properties[name]
	return v, ok
}

// Names returns property names in declaration order. A redeclared property
// takes the position of its latest declaration.
func (b Block) Names() []string {
	return slices.Clone(b.names)
}

// Len returns number of declarations in the block.
func (b Block) Len() int {
	return len(b.properties)
}

// Stylesheet represents a parsed style sheet as a selector -> block mapping.
type Stylesheet struct {
	blocks   map[string]*Block
	order    []string // selectors in order of first appearance
	Warnings []string // Warnings for skipped constructs
}

func newStylesheet() *Stylesheet {
	return &Stylesheet{
		blocks:   make(map[string]*Block),
		Warnings: make([]string, 0),
	}
}

// Selectors returns mapping of selector text to its property block.
func (s *Stylesheet) Selectors() map[string]Block {
	out := make(map[string]Block, len(s.blocks))
	for sel, b := range s.blocks {
		out[sel] = Block{Selector: b.Selector, properties: maps.Clone(b.properties), names: slices.Clone(b.names)}
	}
	return out
}

// Block returns the property block for a selector.
func (s *Stylesheet) Block(selector string) (Block, bool) {
	if s == nil {
		return Block{}, false
	}
	b, ok := s.blocks[selector]
	if !ok {
		return Block{}, false
	}
	return *b, true
}

// Has returns true if selector was declared at least once.
func (s *Stylesheet) Has(selector string) bool {
	if s == nil {
		return false
	}
	_, ok := s.blocks[selector]
	return ok
}

// Order returns selectors in order of their first appearance.
func (s *Stylesheet) Order() []string {
	return slices.Clone(s.order)
}

// declaration is a single property: value pair.
type declaration struct {
	name  string
	value Value
}

// merge adds declarations for selector, overriding already present ones.
func (s *Stylesheet) merge(selector string, decls []declaration) {
	b, ok := s.blocks[selector]
	if !ok {
		b = &Block{Selector: selector, properties: make(map[string]Value, len(decls))}
		s.blocks[selector] = b
		s.order = append(s.order, selector)
	}
	for _, d := range decls {
		if _, seen := b.properties[d.name]; seen {
			b.names = slices.DeleteFunc(b.names, func(n string) bool { return n == d.name })
		}
		b.properties[d.name] = d.value
		b.names = append(b.names, d.name)
	}
}

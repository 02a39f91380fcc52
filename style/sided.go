package style

import (
	"strings"
	"unicode"
)

// Sided holds one value per box side.
type Sided[T any] struct {
	Top    T `yaml:"top"`
	Right  T `yaml:"right"`
	Bottom T `yaml:"bottom"`
	Left   T `yaml:"left"`
}

// AllSides returns Sided with every side set to v.
func AllSides[T any](v T) Sided[T] {
	return Sided[T]{Top: v, Right: v, Bottom: v, Left: v}
}

// SetAll sets every side to v.
func (s *Sided[T]) SetAll(v T) {
	s.Top, s.Right, s.Bottom, s.Left = v, v, v, v
}

// Side selects one side of a box.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	if s < SideTop || s > SideLeft {
		return ""
	}
	return sideNames[s]
}

// SideFromName resolves "top", "right", "bottom" or "left".
func SideFromName(name string) (Side, bool) {
	for i, n := range sideNames {
		if n == name {
			return Side(i), true
		}
	}
	return 0, false
}

// Get returns value of a single side.
func (s Sided[T]) Get(side Side) T {
	switch side {
	case SideRight:
		return s.Right
	case SideBottom:
		return s.Bottom
	case SideLeft:
		return s.Left
	default:
		return s.Top
	}
}

// Set changes value of a single side.
func (s *Sided[T]) Set(side Side, v T) {
	switch side {
	case SideTop:
		s.Top = v
	case SideRight:
		s.Right = v
	case SideBottom:
		s.Bottom = v
	case SideLeft:
		s.Left = v
	}
}

// ExpandShorthand applies box-model shorthand text to cur. The text is split
// into 1 to 4 tokens: the first one sets all sides, the rest override right,
// bottom and left in that order. Each token is parsed with parse, using the
// side's current value as default. Any other token count leaves cur unchanged.
func ExpandShorthand[T any](text string, cur Sided[T], parse func(text string, def T) T) Sided[T] {
	return expand(text, cur, parse, true)
}

// ExpandBorderColors is ExpandShorthand for border and outline colors. Unless
// positional is set right, bottom and left are re-derived from the first token
// rather than from their own positional tokens, so "red blue" paints every
// side red.
func ExpandBorderColors(text string, cur Sided[Color], palette *SystemColors, positional bool) Sided[Color] {
	parse := func(s string, def Color) Color { return ColorFromCSS(s, def, palette) }
	return expand(text, cur, parse, positional)
}

func expand[T any](text string, cur Sided[T], parse func(string, T) T, positional bool) Sided[T] {
	tokens := splitFields(text)
	if len(tokens) == 0 || len(tokens) > 4 {
		return cur
	}

	var res Sided[T]
	for side := SideTop; side <= SideLeft; side++ {
		res.Set(side, parse(tokens[0], cur.Get(side)))
	}

	overrides := [...]Side{SideRight, SideBottom, SideLeft}
	for i, side := range overrides[:len(tokens)-1] {
		tok := tokens[0]
		if positional {
			tok = tokens[i+1]
		}
		res.Set(side, parse(tok, cur.Get(side)))
	}
	return res
}

// splitFields splits s on whitespace which is not enclosed in parentheses, so
// "rgb(1, 2, 3) red" yields two fields.
func splitFields(s string) []string {
	var (
		fields []string
		depth  int
		start  = -1
	)
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case unicode.IsSpace(r) && depth == 0:
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}

// splitTopLevel splits s on sep characters which are not enclosed in
// parentheses and trims every part.
func splitTopLevel(s string, sep rune) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case r == sep && depth == 0:
			parts = append(parts, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

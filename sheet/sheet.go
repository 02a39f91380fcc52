// Package sheet builds complete per control kind style tables out of sparse
// style sheet text.
package sheet

import (
	"maps"
	"slices"

	"go.uber.org/zap"

	"skin/css"
	"skin/style"
)

const (
	themeSelector        = "theme"
	systemColorsSelector = "system-colors"
)

// StateTable maps pseudo state to resolved style of one control kind.
type StateTable map[style.PseudoState]style.ControlStyle

// Clone returns deep copy of the table.
func (t StateTable) Clone() StateTable {
	if t == nil {
		return nil
	}
	res := make(StateTable, len(t))
	for k, v := range t {
		res[k] = v.Clone()
	}
	return res
}

// StyleSheet holds resolved styles for every control kind together with theme
// header and system color palette. It does not change after construction.
type StyleSheet struct {
	tables [kindCount]StateTable
	theme  Theme
	colors style.SystemColors
}

// Option changes how a style sheet is built.
type Option func(*options)

type options struct {
	log                    *zap.Logger
	seed                   *style.SystemColors
	positionalBorderColors bool
}

// WithLogger sets logger used while resolving styles.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithSystemColors seeds palette before "system-colors" block is applied.
func WithSystemColors(palette style.SystemColors) Option {
	return func(o *options) {
		o.seed = &palette
	}
}

// WithPositionalBorderColors makes border-color and outline-color shorthands
// take every side from its own token.
func WithPositionalBorderColors(positional bool) Option {
	return func(o *options) {
		o.positionalBorderColors = positional
	}
}

func newOptions(opts []Option) *options {
	o := &options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Parse builds style sheet from text. It never fails: anything which cannot be
// understood keeps its default value.
func Parse(text string, opts ...Option) *StyleSheet {
	o := newOptions(opts)
	return parseWith(text, "", o)
}

func parseWith(text, source string, o *options) *StyleSheet {
	log := o.log.Named("sheet")
	blocks := css.NewParser(o.log).Parse([]byte(text), source)

	s := &StyleSheet{colors: style.DefaultSystemColors(false)}
	if o.seed != nil {
		s.colors = *o.seed
	}

	// palette has to be complete before any other block refers to it
	if b, ok := blocks.Block(systemColorsSelector); ok {
		for _, name := range b.Names() {
			v, _ := b.Property(name)
			c, known := style.SystemColorFromName(name)
			if !known {
				log.Debug("Unknown system color ignored", zap.String("name", name))
				continue
			}
			s.colors.Set(c, style.ColorFromCSS(v.String(), s.colors.Get(c), &s.colors))
		}
	}
	if b, ok := blocks.Block(themeSelector); ok {
		s.theme = themeFromBlock(b)
	}

	c := &cascade{
		log:    log,
		blocks: blocks,
		ctx: &propertyContext{
			palette:                &s.colors,
			positionalBorderColors: o.positionalBorderColors,
		},
	}
	for _, spec := range kindSpecs {
		s.tables[spec.kind] = c.resolve(spec)
	}

	log.Debug("Style sheet resolved", zap.String("theme", s.theme.Name), zap.String("source", source))
	return s
}

// Style returns resolved style of a control kind in a given state. When it
// was never populated the default record is returned.
func (s *StyleSheet) Style(kind ControlKind, state style.PseudoState) style.ControlStyle {
	if s == nil || kind < 0 || kind >= kindCount {
		return style.DefaultControlStyle()
	}
	cs, ok := s.tables[kind][state]
	if !ok {
		return style.DefaultControlStyle()
	}
	return cs.Clone()
}

// Table returns copy of the state table for a control kind. It is empty when
// style sheet has no base selector for the kind.
func (s *StyleSheet) Table(kind ControlKind) StateTable {
	if s == nil || kind < 0 || kind >= kindCount {
		return nil
	}
	return s.tables[kind].Clone()
}

// Theme returns theme header.
func (s *StyleSheet) Theme() Theme {
	return s.theme.clone()
}

// SystemColors returns palette of the style sheet.
func (s *StyleSheet) SystemColors() style.SystemColors {
	return s.colors
}

// IsEmpty returns true when style sheet has no theme header.
func (s *StyleSheet) IsEmpty() bool {
	return s == nil || s.theme.IsEmpty()
}

// Equal compares style sheets by theme name only.
func (s *StyleSheet) Equal(other *StyleSheet) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.theme.Name == other.theme.Name
}

// Clone returns deep copy of the style sheet.
func (s *StyleSheet) Clone() *StyleSheet {
	if s == nil {
		return nil
	}
	res := &StyleSheet{theme: s.theme.clone(), colors: s.colors}
	for i, t := range s.tables {
		res.tables[i] = t.Clone()
	}
	return res
}

// States returns sorted pseudo states populated for a kind.
func (s *StyleSheet) States(kind ControlKind) []style.PseudoState {
	if s == nil || kind < 0 || kind >= kindCount {
		return nil
	}
	return slices.Sorted(maps.Keys(s.tables[kind]))
}

func combine(states []style.PseudoState) style.PseudoState {
	var res style.PseudoState
	for _, st := range states {
		res |= st
	}
	return res
}

// Per kind accessors. Passed states are combined, no states means standard.

func (s *StyleSheet) Button(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindButton, combine(states))
}

func (s *StyleSheet) Control(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindControl, combine(states))
}

func (s *StyleSheet) FlatButton(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindFlatButton, combine(states))
}

func (s *StyleSheet) FlatToggleButton(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindFlatToggleButton, combine(states))
}

func (s *StyleSheet) Form(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindForm, combine(states))
}

func (s *StyleSheet) Label(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindLabel, combine(states))
}

func (s *StyleSheet) Panel(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindPanel, combine(states))
}

func (s *StyleSheet) PopupButton(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindPopupButton, combine(states))
}

func (s *StyleSheet) PopupToggleButton(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindPopupToggleButton, combine(states))
}

func (s *StyleSheet) StatusBar(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindStatusBar, combine(states))
}

func (s *StyleSheet) StatusBarPanel(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindStatusBarPanel, combine(states))
}

func (s *StyleSheet) ToggleButton(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindToggleButton, combine(states))
}

func (s *StyleSheet) ToolBar(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindToolBar, combine(states))
}

func (s *StyleSheet) ToolBarButton(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindToolBarButton, combine(states))
}

func (s *StyleSheet) UserControl(states ...style.PseudoState) style.ControlStyle {
	return s.Style(ControlKindUserControl, combine(states))
}

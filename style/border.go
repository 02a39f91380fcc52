package style

//go:generate go tool go-enum --marshal --names --values

// BorderStyle is a named border (or outline) drawing style.
// ENUM(none, hidden, dotted, dashed, solid, double, groove, ridge, inset, outset, dot-dash, dot-dot-dash, theme)
type BorderStyle int

// BorderStyleFromCSS resolves border style keyword, returning def for
// anything unknown.
func BorderStyleFromCSS(text string, def BorderStyle) BorderStyle {
	if b, err := ParseBorderStyle(keyword(text)); err == nil {
		return b
	}
	return def
}

// Border describes box border or outline, every aspect set per side.
type Border struct {
	Style  Sided[BorderStyle] `yaml:"style"`
	Width  Sided[Length]      `yaml:"width"`
	Color  Sided[Color]       `yaml:"color"`
	Radius Sided[Length]      `yaml:"radius"`
}

// DefaultBorder is no border at all.
func DefaultBorder() Border {
	return Border{
		Style:  AllSides(BorderStyleNone),
		Width:  AllSides(Pixels(0)),
		Color:  AllSides(Color(0)),
		Radius: AllSides(Pixels(0)),
	}
}

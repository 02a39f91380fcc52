package style

import (
	"net/url"
	"strings"
)

//go:generate go tool go-enum --marshal --names --values

// ContentAlignment is a position within 3x3 grid, row by row.
// ENUM(top-left, top-center, top-right, middle-left, middle-center, middle-right, bottom-left, bottom-center, bottom-right)
type ContentAlignment int

func alignment(v, h int) ContentAlignment {
	return ContentAlignment(v*3 + h)
}

// ContentAlignmentFromCSS parses one or two alignment keywords. A single
// keyword centers the other axis. Two keywords may come in any order. "center"
// is horizontal unless the other keyword already is.
func ContentAlignmentFromCSS(text string, def ContentAlignment) ContentAlignment {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 || len(tokens) > 2 {
		return def
	}

	v, h := -1, -1
	var centers int
	for _, tok := range tokens {
		switch tok {
		case "top":
			if v >= 0 {
				return def
			}
			v = 0
		case "middle":
			if v >= 0 {
				return def
			}
			v = 1
		case "bottom":
			if v >= 0 {
				return def
			}
			v = 2
		case "left":
			if h >= 0 {
				return def
			}
			h = 0
		case "right":
			if h >= 0 {
				return def
			}
			h = 2
		case "center":
			centers++
		default:
			return def
		}
	}
	for ; centers > 0; centers-- {
		switch {
		case h < 0:
			h = 1
		case v < 0:
			v = 1
		default:
			return def
		}
	}
	if v < 0 {
		v = 1
	}
	if h < 0 {
		h = 1
	}
	return alignment(v, h)
}

// TextDecoration is a line drawn with text.
// ENUM(none, overline, line-through, underline)
type TextDecoration int

// TextDecorationFromCSS resolves keyword, returning def for anything unknown.
func TextDecorationFromCSS(text string, def TextDecoration) TextDecoration {
	if d, err := ParseTextDecoration(keyword(text)); err == nil {
		return d
	}
	return def
}

// TextTransformation changes text capitalization.
// ENUM(none, capitalize, lowercase, uppercase)
type TextTransformation int

// TextTransformationFromCSS resolves keyword, returning def for anything unknown.
func TextTransformationFromCSS(text string, def TextTransformation) TextTransformation {
	if t, err := ParseTextTransformation(keyword(text)); err == nil {
		return t
	}
	return def
}

// keyword normalizes CSS identifier for lookup.
func keyword(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// StringFromCSS accepts only text enclosed in matching single or double
// quotes and returns it without them. No escapes are interpreted.
func StringFromCSS(text, def string) string {
	if s, ok := unquote(strings.TrimSpace(text)); ok {
		return s
	}
	return def
}

func unquote(s string) (string, bool) {
	if len(s) < 2 || (s[0] != '"' && s[0] != '\'') || s[len(s)-1] != s[0] {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// URIFromCSS parses url(...) or quoted string into URL. On failure def is
// returned.
func URIFromCSS(text string, def *url.URL) *url.URL {
	s := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(s, "url(") && strings.HasSuffix(s, ")"):
		s = trimQuotes(strings.TrimSpace(s[4 : len(s)-1]))
	default:
		var ok bool
		if s, ok = unquote(s); !ok {
			return def
		}
	}
	if s == "" {
		return def
	}
	u, err := url.Parse(s)
	if err != nil {
		return def
	}
	return u
}

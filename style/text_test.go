package style

import (
	"net/url"
	"testing"
)

func TestContentAlignmentFromCSS(t *testing.T) {
	tests := []struct {
		input    string
		expected ContentAlignment
	}{
		{"top", ContentAlignmentTopCenter},
		{"left", ContentAlignmentMiddleLeft},
		{"center", ContentAlignmentMiddleCenter},
		{"bottom", ContentAlignmentBottomCenter},
		{"top left", ContentAlignmentTopLeft},
		{"right top", ContentAlignmentTopRight},
		{"center bottom", ContentAlignmentBottomCenter},
		{"middle center", ContentAlignmentMiddleCenter},
		{"center center", ContentAlignmentMiddleCenter},
		{"middle right", ContentAlignmentMiddleRight},
		{"top bottom", ContentAlignmentBottomRight},
		{"left right", ContentAlignmentBottomRight},
		{"a b c", ContentAlignmentBottomRight},
		{"sideways", ContentAlignmentBottomRight},
		{"", ContentAlignmentBottomRight},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ContentAlignmentFromCSS(tt.input, ContentAlignmentBottomRight); got != tt.expected {
				t.Errorf("ContentAlignmentFromCSS(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKeywordTables(t *testing.T) {
	if got := TextDecorationFromCSS("line-through", TextDecorationNone); got != TextDecorationLineThrough {
		t.Errorf("decoration = %s, want line-through", got)
	}
	if got := TextDecorationFromCSS("blink", TextDecorationUnderline); got != TextDecorationUnderline {
		t.Errorf("unknown decoration = %s, want default", got)
	}
	if got := TextTransformationFromCSS("uppercase", TextTransformationNone); got != TextTransformationUppercase {
		t.Errorf("transformation = %s, want uppercase", got)
	}
	if got := TextTransformationFromCSS("shout", TextTransformationCapitalize); got != TextTransformationCapitalize {
		t.Errorf("unknown transformation = %s, want default", got)
	}
	if got := BorderStyleFromCSS("dot-dot-dash", BorderStyleNone); got != BorderStyleDotDotDash {
		t.Errorf("border style = %s, want dot-dot-dash", got)
	}
	if got := BorderStyleFromCSS("wavy", BorderStyleSolid); got != BorderStyleSolid {
		t.Errorf("unknown border style = %s, want default", got)
	}
}

func TestStringFromCSS(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"Dark Matter"`, "Dark Matter"},
		{`'single'`, "single"},
		{`""`, ""},
		{`"a\"b"`, `a\"b`},
		{`"mismatched'`, "default"},
		{`unquoted`, "default"},
		{`"`, "default"},
	}
	for _, tt := range tests {
		if got := StringFromCSS(tt.input, "default"); got != tt.expected {
			t.Errorf("StringFromCSS(%s) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestURIFromCSS(t *testing.T) {
	def, _ := url.Parse("https://default.example")

	if u := URIFromCSS(`"https://example.com/themes"`, def); u.Host != "example.com" || u.Path != "/themes" {
		t.Errorf("quoted uri = %v", u)
	}
	if u := URIFromCSS(`url(https://example.org)`, def); u.Host != "example.org" {
		t.Errorf("url() uri = %v", u)
	}
	if u := URIFromCSS(`https://example.org`, def); u != def {
		t.Errorf("unquoted uri should return default, got %v", u)
	}
}

func TestPseudoState(t *testing.T) {
	if s := (Checked | Hover).String(); s != "checked|hover" {
		t.Errorf("String() = %q, want %q", s, "checked|hover")
	}
	if s := Standard.String(); s != "standard" {
		t.Errorf("String() = %q, want %q", s, "standard")
	}

	p, err := ParsePseudoState("hover|checked")
	if err != nil || p != Checked|Hover {
		t.Errorf("ParsePseudoState = %v, %v", p, err)
	}
	p, err = ParsePseudoState("")
	if err != nil || p != Standard {
		t.Errorf("ParsePseudoState(empty) = %v, %v", p, err)
	}
	if _, err := ParsePseudoState("sleepy"); err == nil {
		t.Error("expected error for unknown state")
	}
}

func TestDefaultControlStyleClone(t *testing.T) {
	cs := DefaultControlStyle()
	cs.BackgroundImage = BackgroundImage{Kind: ImageKindLinearGradient, Stops: []Color{1, 2}}

	c := cs.Clone()
	c.BackgroundImage.Stops[1] = 7
	if cs.BackgroundImage.Stops[1] != 2 {
		t.Error("Clone shares gradient stops")
	}
	if !DefaultControlStyle().Height.IsAuto() {
		t.Error("default height should be auto")
	}
}

package sheet

import (
	"net/url"

	"skin/css"
	"skin/style"
)

// Theme is authored identity of a style sheet.
type Theme struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Authors     string   `yaml:"authors,omitempty"`
	Website     *url.URL `yaml:"-"`
}

// IsEmpty returns true when no theme header was found.
func (t Theme) IsEmpty() bool {
	return t.Name == ""
}

// WebsiteString returns website as text or empty string.
func (t Theme) WebsiteString() string {
	if t.Website == nil {
		return ""
	}
	return t.Website.String()
}

func (t Theme) clone() Theme {
	if t.Website != nil {
		u := *t.Website
		t.Website = &u
	}
	return t
}

// themeFromBlock reads "theme" selector block. Unquoted strings are ignored.
func themeFromBlock(b css.Block) Theme {
	var t Theme
	if v, ok := b.Property("name"); ok {
		t.Name = style.StringFromCSS(v.String(), "")
	}
	if v, ok := b.Property("description"); ok {
		t.Description = style.StringFromCSS(v.String(), "")
	}
	if v, ok := b.Property("authors"); ok {
		t.Authors = style.StringFromCSS(v.String(), "")
	}
	if v, ok := b.Property("website"); ok {
		t.Website = style.URIFromCSS(v.String(), nil)
	}
	return t
}

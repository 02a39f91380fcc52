package inspect

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"skin/sheet"
)

// themeValues is what theme listing template can refer to.
type themeValues struct {
	Index       int
	Name        string
	Description string
	Authors     string
	Website     string
	Current     bool
	System      bool
}

func newThemeValues(index int, s, current, system *sheet.StyleSheet) *themeValues {
	t := s.Theme()
	return &themeValues{
		Index:       index,
		Name:        t.Name,
		Description: t.Description,
		Authors:     t.Authors,
		Website:     t.WebsiteString(),
		Current:     s.Equal(current),
		System:      s.Equal(system),
	}
}

func parseTemplate(field string) (*template.Template, error) {
	tmpl, err := template.New("themes").Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return nil, fmt.Errorf("unable to parse theme template: %w", err)
	}
	return tmpl, nil
}

func expandTemplate(tmpl *template.Template, values *themeValues) (string, error) {
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand theme template for %q: %w", values.Name, err)
	}
	return buf.String(), nil
}

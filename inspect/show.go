package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"skin/sheet"
	"skin/state"
	"skin/style"
)

// sheetDump is YAML presentation of a resolved style sheet.
type sheetDump struct {
	Theme        *themeDump                             `yaml:"theme,omitempty"`
	SystemColors map[string]style.Color                 `yaml:"system-colors,omitempty"`
	Kinds        map[sheet.ControlKind]sheet.StateTable `yaml:"kinds"`
}

type themeDump struct {
	sheet.Theme `yaml:",inline"`
	Website     string `yaml:"website,omitempty"`
}

// selection narrows what part of a sheet is dumped.
type selection struct {
	kinds    []sheet.ControlKind
	state    style.PseudoState
	anyState bool
}

func newSelection(kind, states string) (selection, error) {
	sel := selection{kinds: sheet.ControlKindValues(), anyState: true}
	if len(kind) > 0 {
		k, ok := sheet.ControlKindFromName(kind)
		if !ok {
			return sel, fmt.Errorf("unknown control kind %q", kind)
		}
		sel.kinds = []sheet.ControlKind{k}
	}
	if len(states) > 0 {
		ps, err := style.ParsePseudoState(states)
		if err != nil {
			return sel, err
		}
		sel.state, sel.anyState = ps, false
	}
	return sel, nil
}

func newSheetDump(s *sheet.StyleSheet, sel selection, withColors bool) *sheetDump {
	d := &sheetDump{Kinds: make(map[sheet.ControlKind]sheet.StateTable, len(sel.kinds))}
	if t := s.Theme(); !t.IsEmpty() {
		d.Theme = &themeDump{Theme: t, Website: t.WebsiteString()}
	}
	if withColors {
		d.SystemColors = s.SystemColors().Map()
	}
	for _, k := range sel.kinds {
		if sel.anyState {
			// kinds without selectors have no table
			if t := s.Table(k); len(t) > 0 {
				d.Kinds[k] = t
			}
			continue
		}
		d.Kinds[k] = sheet.StateTable{sel.state: s.Style(k, sel.state)}
	}
	return d
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("unable to encode YAML: %w", err)
	}
	return enc.Close()
}

// Show dumps resolved style tables of current theme, named theme, a style
// sheet file or a directory of style sheets.
func Show(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("show")

	sel, err := newSelection(cmd.String("kind"), cmd.String("state"))
	if err != nil {
		return err
	}
	s, source, err := selectSheet(env, cmd.String("theme"), cmd.String("file"), cmd.String("dir"))
	if err != nil {
		return err
	}
	log.Debug("Dumping style sheet", zap.String("source", source), zap.String("theme", s.Theme().Name))

	return writeYAML(cmd.Root().Writer, newSheetDump(s, sel, cmd.Bool("colors")))
}

func selectSheet(env *state.LocalEnv, name, file, dir string) (*sheet.StyleSheet, string, error) {
	given := 0
	for _, v := range []string{name, file, dir} {
		if len(v) > 0 {
			given++
		}
	}
	if given > 1 {
		return nil, "", errors.New("only one of theme, file or dir could be specified")
	}

	opts := []sheet.Option{
		sheet.WithLogger(env.Log),
		sheet.WithSystemColors(env.Platform.SystemColors()),
		sheet.WithPositionalBorderColors(env.Cfg.Themes.PositionalBorderColors),
	}
	switch {
	case len(name) > 0:
		s, ok := env.Themes.AvailableThemes()[name]
		if !ok {
			return nil, "", fmt.Errorf("%w: %q", sheet.ErrUnknownTheme, name)
		}
		return s, "theme", nil
	case len(file) > 0:
		s, err := sheet.FromFile(file, opts...)
		return s, file, err
	case len(dir) > 0:
		s, err := sheet.FromDirectory(dir, opts...)
		return s, dir, err
	}
	return env.Themes.CurrentTheme(), "current", nil
}

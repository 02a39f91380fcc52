// Package inspect implements program commands looking into themes and the
// platform they are resolved for.
package inspect

import (
	"context"
	"fmt"
	"io"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"skin/state"
	"skin/theme"
)

// Themes lists available theme names, optionally rendering every theme with a
// template.
func Themes(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("themes")

	if cmd.Args().Len() > 0 {
		log.Warn("Malformed command line, unexpected arguments", zap.Strings("ignoring", cmd.Args().Slice()))
	}
	return listThemes(cmd.Root().Writer, env.Themes, cmd.String("template"))
}

func listThemes(w io.Writer, reg *theme.Registry, field string) error {
	names := reg.AvailableThemeNames()
	if len(field) == 0 {
		for _, name := range names {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil
	}

	tmpl, err := parseTemplate(field)
	if err != nil {
		return err
	}
	themes := reg.AvailableThemes()
	current, system := reg.CurrentTheme(), reg.SystemTheme()

	for i, name := range names {
		s, ok := themes[name]
		if !ok {
			// header was readable while the whole directory was not
			continue
		}
		text, err := expandTemplate(tmpl, newThemeValues(i, s, current, system))
		if err != nil {
			return err
		}
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	return nil
}

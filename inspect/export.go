package inspect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"skin/config"
	"skin/state"
	"skin/theme"
)

// Export writes resolved style tables of every available theme into
// destination directory, one YAML file per theme.
func Export(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("export")

	dst := cmd.Args().Get(0)
	if len(dst) == 0 {
		return errors.New("no destination directory has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	return exportThemes(ctx, log, env.Themes, dst, cmd.Bool("overwrite"))
}

func exportThemes(ctx context.Context, log *zap.Logger, reg *theme.Registry, dst string, overwrite bool) (err error) {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("unable to create destination directory '%s': %w", dst, err)
	}

	themes := reg.AvailableThemes()
	all, _ := newSelection("", "")
	for _, name := range reg.AvailableThemeNames() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, ok := themes[name]
		if !ok {
			continue
		}
		fname := filepath.Join(dst, config.CleanFileName(name)+".yaml")
		if er := writeSheet(fname, newSheetDump(s, all, true), overwrite); er != nil {
			err = multierr.Append(err, er)
			continue
		}
		log.Info("Theme exported", zap.String("theme", name), zap.String("file", fname))
	}
	return err
}

func writeSheet(fname string, d *sheetDump, overwrite bool) (err error) {
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	out, err := os.OpenFile(fname, flags, 0644)
	if err != nil {
		return fmt.Errorf("unable to create '%s': %w", fname, err)
	}
	defer func() {
		if er := out.Close(); er != nil {
			err = multierr.Append(err, er)
		}
	}()
	return writeYAML(out, d)
}

package state

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"skin/platform"
	"skin/sheet"
	"skin/theme"
)

func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// PrepareThemes detects platform unless one is already set and creates theme
// registry according to configuration. Configured current theme is applied.
func (e *LocalEnv) PrepareThemes() error {
	if e.Cfg == nil {
		return errors.New("configuration is not loaded")
	}
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	if e.Platform == nil {
		e.Platform = platform.Detect(log, platform.DarkModeSetting(e.Cfg.Themes.DarkMode))
	}
	e.Themes = theme.NewRegistry(e.Cfg.Themes.Directory,
		theme.WithLogger(log),
		theme.WithPlatform(e.Platform),
		theme.WithSheetOptions(sheet.WithPositionalBorderColors(e.Cfg.Themes.PositionalBorderColors)),
	)
	log.Debug("Themes prepared",
		zap.String("directory", e.Cfg.Themes.Directory),
		zap.Stringer("os", e.Platform.OS()),
		zap.Bool("dark", e.Platform.DarkMode()),
		zap.String("baseline", theme.Baseline(e.Platform)))

	if name := e.Cfg.Themes.Current; name != "" {
		if err := e.Themes.SetCurrentThemeByName(name); err != nil {
			return fmt.Errorf("unable to use configured theme: %w", err)
		}
	}
	return nil
}

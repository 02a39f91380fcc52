package inspect

import (
	"context"

	cli "github.com/urfave/cli/v3"

	"skin/platform"
	"skin/state"
	"skin/style"
	"skin/theme"
)

type platformDump struct {
	OS           string                 `yaml:"os"`
	Desktop      string                 `yaml:"desktop,omitempty"`
	DarkMode     bool                   `yaml:"dark-mode"`
	Baseline     string                 `yaml:"baseline"`
	Themes       string                 `yaml:"themes-directory"`
	SystemColors map[string]style.Color `yaml:"system-colors"`
}

func newPlatformDump(p platform.Platform, root string) *platformDump {
	return &platformDump{
		OS:           p.OS().String(),
		Desktop:      p.DesktopEnvironment(),
		DarkMode:     p.DarkMode(),
		Baseline:     theme.Baseline(p),
		Themes:       root,
		SystemColors: p.SystemColors().Map(),
	}
}

// Platform prints what was detected about the running desktop.
func Platform(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	return writeYAML(cmd.Root().Writer, newPlatformDump(env.Platform, env.Themes.Root()))
}

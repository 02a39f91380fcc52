//go:build !windows && !darwin

package platform

import (
	"os"
	"os/exec"
)

// queryDarkMode checks GTK_THEME variant first and GNOME color scheme second.
func queryDarkMode() (bool, error) {
	if theme := os.Getenv("GTK_THEME"); theme != "" {
		return isDarkGTKTheme(theme), nil
	}
	out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	if err != nil {
		return false, err
	}
	return isDarkColorScheme(string(out)), nil
}

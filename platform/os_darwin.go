//go:build darwin

package platform

import (
	"errors"
	"os/exec"
	"strings"
)

// queryDarkMode asks defaults for global AppleInterfaceStyle, which is only
// present (and set to "Dark") in dark mode.
func queryDarkMode() (bool, error) {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			// key does not exist in light mode
			return false, nil
		}
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(string(out)), "dark"), nil
}

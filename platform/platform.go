// Package platform answers questions about the desktop style sheets are
// resolved for: OS family, dark mode and system colors.
package platform

import (
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"skin/style"
)

//go:generate go tool go-enum --marshal --names --values

// OSFamily is a kind of operating system.
// ENUM(other, windows, macos, unix)
type OSFamily int

// FamilyFromGOOS maps runtime.GOOS value to OS family.
func FamilyFromGOOS(goos string) OSFamily {
	switch goos {
	case "windows":
		return OSFamilyWindows
	case "darwin", "ios":
		return OSFamilyMacos
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos", "aix":
		return OSFamilyUnix
	default:
		return OSFamilyOther
	}
}

// Platform is source of desktop specific information.
type Platform interface {
	OS() OSFamily
	DarkMode() bool
	// DesktopEnvironment is lower case desktop name on Unix ("kde", "gnome"),
	// empty elsewhere.
	DesktopEnvironment() string
	SystemColors() style.SystemColors
}

// Static is Platform with fixed answers.
type Static struct {
	Family  OSFamily
	Dark    bool
	Desktop string
	Colors  *style.SystemColors
}

func (s Static) OS() OSFamily               { return s.Family }
func (s Static) DarkMode() bool             { return s.Dark }
func (s Static) DesktopEnvironment() string { return s.Desktop }

// SystemColors returns configured palette or built-in one matching dark mode.
func (s Static) SystemColors() style.SystemColors {
	if s.Colors != nil {
		return *s.Colors
	}
	return style.DefaultSystemColors(s.Dark)
}

// DarkModeSetting tells whether dark mode is detected or forced.
type DarkModeSetting string

const (
	DarkModeAuto  DarkModeSetting = "auto"
	DarkModeDark  DarkModeSetting = "dark"
	DarkModeLight DarkModeSetting = "light"
)

// Live queries running system. Every call asks again, so changes in desktop
// settings are picked up.
type Live struct {
	log    *zap.Logger
	mode   DarkModeSetting
	family OSFamily
	getenv func(string) string
	query  func() (bool, error)
}

// Detect returns Platform describing the running system.
func Detect(log *zap.Logger, mode DarkModeSetting) *Live {
	if log == nil {
		log = zap.NewNop()
	}
	return &Live{
		log:    log.Named("platform"),
		mode:   mode,
		family: FamilyFromGOOS(runtime.GOOS),
		getenv: os.Getenv,
		query:  queryDarkMode,
	}
}

func (l *Live) OS() OSFamily {
	return l.family
}

// DesktopEnvironment looks at XDG_CURRENT_DESKTOP first and DESKTOP_SESSION
// second. For colon separated lists like "ubuntu:GNOME" a known desktop is
// preferred.
func (l *Live) DesktopEnvironment() string {
	if l.family != OSFamilyUnix {
		return ""
	}
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		v := strings.ToLower(strings.TrimSpace(l.getenv(key)))
		if v == "" {
			continue
		}
		parts := strings.Split(v, ":")
		for _, p := range parts {
			if p == "kde" || p == "gnome" {
				return p
			}
		}
		return parts[0]
	}
	return ""
}

func (l *Live) DarkMode() bool {
	switch l.mode {
	case DarkModeDark:
		return true
	case DarkModeLight:
		return false
	}
	dark, err := l.query()
	if err != nil {
		l.log.Debug("Unable to detect dark mode, assuming light", zap.Error(err))
		return false
	}
	return dark
}

func (l *Live) SystemColors() style.SystemColors {
	return style.DefaultSystemColors(l.DarkMode())
}

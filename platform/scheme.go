package platform

import "strings"

// isDarkGTKTheme recognizes "Adwaita:dark" and "Adwaita-dark" spellings.
func isDarkGTKTheme(theme string) bool {
	t := strings.ToLower(strings.TrimSpace(theme))
	return strings.HasSuffix(t, ":dark") || strings.HasSuffix(t, "-dark")
}

// isDarkColorScheme interprets gsettings output like "'prefer-dark'".
func isDarkColorScheme(out string) bool {
	return strings.Trim(strings.TrimSpace(out), "'\"") == "prefer-dark"
}

package config

import (
	"os"
	"strings"
	"unicode"
)

// CleanFileName turns theme name (or any other text) into a usable file name.
// Control characters, path separators and characters reserved by the OS are
// removed, leading dots are dropped so the result is never hidden.
func CleanFileName(in string) string {
	reserved := reservedFileNameRunes + string(os.PathSeparator) + string(os.PathListSeparator)
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) || strings.ContainsRune(reserved, sym) {
			return -1
		}
		return sym
	}, in), ".")
	if len(strings.TrimSpace(out)) == 0 {
		out = "_bad_file_name_"
	}
	return out
}

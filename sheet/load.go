package sheet

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"skin/css"
)

// ThemeFile is the file inside theme directory which carries theme header.
const ThemeFile = "theme.css"

var (
	// ErrNotFound is returned when style sheet file or directory does not exist.
	ErrNotFound = fmt.Errorf("style sheet not found: %w", fs.ErrNotExist)
	// ErrUnknownTheme is returned when no theme directory declares requested name.
	ErrUnknownTheme = errors.New("unknown theme")
)

// FromFile builds style sheet from a single file.
func FromFile(path string, opts ...Option) (*StyleSheet, error) {
	o := newOptions(opts)

	text, err := readText(path)
	if err != nil {
		return nil, err
	}
	return parseWith(text, path, o), nil
}

// FromDirectory builds style sheet from all *.css files directly inside dir,
// concatenated in natural name order.
func FromDirectory(dir string, opts ...Option) (*StyleSheet, error) {
	o := newOptions(opts)

	text, err := readDirectory(dir)
	if err != nil {
		return nil, err
	}
	return parseWith(text, dir, o), nil
}

// FromTheme looks through theme directories under root for the one which
// declares theme name and builds style sheet from it.
func FromTheme(root, name string, opts ...Option) (*StyleSheet, error) {
	dirs, err := ThemeDirectories(root)
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)
	for _, dir := range dirs {
		t, err := ReadThemeHeader(dir, o.log)
		if err != nil {
			o.log.Named("sheet").Debug("Skipping theme directory", zap.String("dir", dir), zap.Error(err))
			continue
		}
		if t.Name == name {
			return FromDirectory(dir, opts...)
		}
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrUnknownTheme, name, root)
}

// ThemeDirectories returns subdirectories of root in natural name order.
func ThemeDirectories(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, notFound(root, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Sort(natural.StringSlice(names))

	dirs := make([]string, len(names))
	for i, n := range names {
		dirs[i] = filepath.Join(root, n)
	}
	return dirs, nil
}

// ReadThemeHeader reads only theme header from theme.css of a theme
// directory.
func ReadThemeHeader(dir string, log *zap.Logger) (Theme, error) {
	if log == nil {
		log = zap.NewNop()
	}
	path := filepath.Join(dir, ThemeFile)
	text, err := readText(path)
	if err != nil {
		return Theme{}, err
	}
	b, ok := css.NewParser(log).Parse([]byte(text), path).Block(themeSelector)
	if !ok {
		return Theme{}, nil
	}
	return themeFromBlock(b), nil
}

func readDirectory(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", notFound(dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".css") {
			names = append(names, e.Name())
		}
	}
	sort.Sort(natural.StringSlice(names))

	var (
		sb   strings.Builder
		errs error
	)
	for _, n := range names {
		text, err := readText(filepath.Join(dir, n))
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	if errs != nil {
		return "", errs
	}
	return sb.String(), nil
}

// readText reads file as UTF-8 text. Byte order mark, if present, selects
// actual UTF encoding and is dropped.
func readText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", notFound(path, err)
	}
	defer f.Close()

	r := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("unable to read %s: %w", path, err)
	}
	return string(data), nil
}

func notFound(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return fmt.Errorf("unable to access %s: %w", path, err)
}

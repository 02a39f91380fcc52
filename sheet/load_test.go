package sheet_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"skin/sheet"
	"skin/style"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.css")
	writeFile(t, path, "\ufefftheme { name: \"bom\"; }\nbutton { color: red; }")

	s, err := sheet.FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if s.Theme().Name != "bom" {
		t.Errorf("theme name = %q, want %q", s.Theme().Name, "bom")
	}
	if s.Button().Color != red {
		t.Errorf("button color = %s, want %s", s.Button().Color, red)
	}

	_, err = sheet.FromFile(filepath.Join(dir, "missing.css"))
	if !errors.Is(err, sheet.ErrNotFound) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestFromDirectory_NaturalOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "theme.css"), `theme { name: "dir"; }`)
	writeFile(t, filepath.Join(dir, "file2.css"), `button { color: red; }`)
	writeFile(t, filepath.Join(dir, "file10.css"), `button { color: blue; }`)
	writeFile(t, filepath.Join(dir, "notes.txt"), `button { color: green; }`)
	writeFile(t, filepath.Join(dir, "nested", "more.css"), `button { color: green; }`)

	s, err := sheet.FromDirectory(dir)
	if err != nil {
		t.Fatalf("FromDirectory: %v", err)
	}
	// file10 sorts after file2, its declaration wins
	if got := s.Button().Color; got != blue {
		t.Errorf("button color = %s, want %s", got, blue)
	}
	if s.Theme().Name != "dir" {
		t.Errorf("theme name = %q", s.Theme().Name)
	}

	if _, err := sheet.FromDirectory(filepath.Join(dir, "nope")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestFromTheme(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "light", "theme.css"), `theme { name: "Light"; }`)
	writeFile(t, filepath.Join(root, "light", "controls.css"), `panel { background-color: white; }`)
	writeFile(t, filepath.Join(root, "dark", "theme.css"), `theme { name: "Dark"; }`)
	writeFile(t, filepath.Join(root, "dark", "controls.css"), `panel { background-color: black; }`)
	writeFile(t, filepath.Join(root, "broken", "controls.css"), `panel { color: red; }`)

	palette := style.DefaultSystemColors(true)
	s, err := sheet.FromTheme(root, "Dark", sheet.WithSystemColors(palette))
	if err != nil {
		t.Fatalf("FromTheme: %v", err)
	}
	if got := s.Panel().BackgroundColor; got != 0xff000000 {
		t.Errorf("panel background = %s, want black", got)
	}
	if s.SystemColors() != palette {
		t.Error("options were not passed to directory loader")
	}

	_, err = sheet.FromTheme(root, "Solarized")
	if !errors.Is(err, sheet.ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}

	_, err = sheet.FromTheme(filepath.Join(root, "missing"), "Dark")
	if !errors.Is(err, sheet.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestThemeDirectories(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"theme10", "theme2", "theme1"} {
		if err := os.Mkdir(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, filepath.Join(root, "file.css"), "")

	dirs, err := sheet.ThemeDirectories(root)
	if err != nil {
		t.Fatalf("ThemeDirectories: %v", err)
	}
	want := []string{"theme1", "theme2", "theme10"}
	if len(dirs) != len(want) {
		t.Fatalf("got %v, want %v", dirs, want)
	}
	for i := range want {
		if filepath.Base(dirs[i]) != want[i] {
			t.Errorf("dirs[%d] = %s, want %s", i, filepath.Base(dirs[i]), want[i])
		}
	}
}

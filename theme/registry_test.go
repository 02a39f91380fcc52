package theme_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"go.uber.org/zap"

	"skin/platform"
	"skin/sheet"
	"skin/style"
	"skin/theme"
)

type fakeWindow struct {
	mu        sync.Mutex
	back      style.Color
	fore      style.Color
	refreshes int
}

func (w *fakeWindow) SetBackColor(c style.Color) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.back = c
}

func (w *fakeWindow) SetForeColor(c style.Color) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fore = c
}

func (w *fakeWindow) Invalidate() {}

func (w *fakeWindow) Refresh() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.refreshes++
}

type fakeHost struct {
	windows []*fakeWindow
}

func (h *fakeHost) TopLevelWindows() []theme.Window {
	res := make([]theme.Window, len(h.windows))
	for i, w := range h.windows {
		res[i] = w
	}
	return res
}

func writeTheme(t *testing.T, root, dir, css string) {
	t.Helper()
	path := filepath.Join(root, dir, "theme.css")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func newTestRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTheme(t, root, "default", `theme { name: "Default"; } system-colors { control: #010101; }`)
	writeTheme(t, root, "kde_dark", `theme { name: "KDE Dark"; } system-colors { control: #020202; control-text: #fefefe; }`)
	writeTheme(t, root, "theme10", `theme { name: "Theme 10"; }`)
	writeTheme(t, root, "theme2", `theme { name: "Theme 2"; } system-colors { control: #030303; }`)
	writeTheme(t, root, "headless", `button { color: red; }`)
	return root
}

func TestRegistry_AvailableThemes(t *testing.T) {
	root := newTestRoot(t)
	r := theme.NewRegistry(root, theme.WithLogger(zap.NewNop()))

	themes := r.AvailableThemes()
	for _, name := range []string{"Default", "KDE Dark", "Theme 2", "Theme 10"} {
		if _, ok := themes[name]; !ok {
			t.Errorf("theme %q not found", name)
		}
	}
	if len(themes) != 4 {
		t.Errorf("expected 4 themes, got %d", len(themes))
	}

	names := r.AvailableThemeNames()
	want := []string{"Default", "KDE Dark", "Theme 2", "Theme 10"}
	if !slices.Equal(names, want) {
		t.Errorf("AvailableThemeNames() = %v, want %v", names, want)
	}

	// memoized, later changes on disk are not noticed
	writeTheme(t, root, "late", `theme { name: "Late"; }`)
	if _, ok := r.AvailableThemes()["Late"]; ok {
		t.Error("AvailableThemes should not rescan")
	}
	if slices.Contains(r.AvailableThemeNames(), "Late") {
		t.Error("AvailableThemeNames should not rescan")
	}
}

func TestRegistry_MissingRoot(t *testing.T) {
	r := theme.NewRegistry(filepath.Join(t.TempDir(), "none"))

	if len(r.AvailableThemes()) != 0 || len(r.AvailableThemeNames()) != 0 {
		t.Error("expected no themes for missing root")
	}
	sys := r.SystemTheme()
	if sys == nil || !sys.IsEmpty() {
		t.Fatalf("expected empty fallback system theme, got %+v", sys)
	}
	if err := r.SetCurrentTheme(sys); !errors.Is(err, theme.ErrEmptyTheme) {
		t.Errorf("expected ErrEmptyTheme, got %v", err)
	}
}

func TestBaseline(t *testing.T) {
	tests := []struct {
		p        platform.Static
		expected string
	}{
		{platform.Static{Family: platform.OSFamilyWindows, Dark: true}, "windows_dark"},
		{platform.Static{Family: platform.OSFamilyWindows}, "windows_light"},
		{platform.Static{Family: platform.OSFamilyMacos, Dark: true}, "macos_dark"},
		{platform.Static{Family: platform.OSFamilyUnix, Desktop: "kde"}, "kde_light"},
		{platform.Static{Family: platform.OSFamilyUnix, Desktop: "gnome", Dark: true}, "gnome_dark"},
		{platform.Static{Family: platform.OSFamilyUnix, Desktop: "xfce", Dark: true}, "default"},
		{platform.Static{Family: platform.OSFamilyOther}, "default"},
	}
	for _, tt := range tests {
		if got := theme.Baseline(tt.p); got != tt.expected {
			t.Errorf("Baseline(%+v) = %q, want %q", tt.p, got, tt.expected)
		}
	}
}

func TestRegistry_SystemTheme(t *testing.T) {
	root := newTestRoot(t)

	kde := theme.NewRegistry(root, theme.WithPlatform(platform.Static{Family: platform.OSFamilyUnix, Desktop: "kde", Dark: true}))
	sys := kde.SystemTheme()
	if sys.Theme().Name != "KDE Dark" {
		t.Errorf("system theme = %q, want %q", sys.Theme().Name, "KDE Dark")
	}
	// palette is seeded from platform, then overridden by the theme
	if got := sys.SystemColors().Window(); got != style.DefaultSystemColors(true).Window() {
		t.Errorf("window color = %s, want dark platform window", got)
	}
	if kde.SystemTheme() != sys {
		t.Error("system theme should be memoized")
	}
	if kde.CurrentTheme() != sys {
		t.Error("current theme should default to system theme")
	}

	// no gnome_light directory, falls back to default
	gnome := theme.NewRegistry(root, theme.WithPlatform(platform.Static{Family: platform.OSFamilyUnix, Desktop: "gnome"}))
	if name := gnome.SystemTheme().Theme().Name; name != "Default" {
		t.Errorf("fallback system theme = %q, want %q", name, "Default")
	}
}

func TestRegistry_SetCurrentThemeNotifies(t *testing.T) {
	root := newTestRoot(t)
	host := &fakeHost{windows: []*fakeWindow{{}, {}}}
	r := theme.NewRegistry(root, theme.WithHost(host))

	if err := r.SetCurrentThemeByName("Theme 2"); err != nil {
		t.Fatalf("SetCurrentThemeByName: %v", err)
	}
	for i, w := range host.windows {
		if w.refreshes != 1 {
			t.Errorf("window %d refreshed %d times, want 1", i, w.refreshes)
		}
		if w.back != 0xff030303 {
			t.Errorf("window %d back color = %s, want control color", i, w.back)
		}
		if w.fore != style.DefaultSystemColors(false).ControlText() {
			t.Errorf("window %d fore color = %s, want control-text color", i, w.fore)
		}
	}

	// same theme again, by name equality
	same := sheet.Parse(`theme { name: "Theme 2"; } button { color: red; }`)
	if err := r.SetCurrentTheme(same); err != nil {
		t.Fatalf("SetCurrentTheme: %v", err)
	}
	if host.windows[0].refreshes != 1 {
		t.Errorf("setting equal theme notified windows, refreshes = %d", host.windows[0].refreshes)
	}
	if r.CurrentTheme().Button().Color == 0xffff0000 {
		t.Error("equal theme should not replace current")
	}

	if err := r.SetCurrentThemeByName("Nope"); !errors.Is(err, sheet.ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
	if err := r.SetCurrentTheme(sheet.Parse(`button { color: red; }`)); !errors.Is(err, theme.ErrEmptyTheme) {
		t.Errorf("expected ErrEmptyTheme, got %v", err)
	}
}

// reentrantWindow reads current theme while being notified.
type reentrantWindow struct {
	fakeWindow
	r    *theme.Registry
	seen string
}

func (w *reentrantWindow) Refresh() { w.seen = w.r.CurrentTheme().Theme().Name }

type reentrantHost struct{ w *reentrantWindow }

func (h reentrantHost) TopLevelWindows() []theme.Window { return []theme.Window{h.w} }

func TestRegistry_NotificationAfterCommit(t *testing.T) {
	root := newTestRoot(t)
	w := &reentrantWindow{}
	r := theme.NewRegistry(root, theme.WithHost(reentrantHost{w}))
	w.r = r

	if err := r.SetCurrentThemeByName("Theme 10"); err != nil {
		t.Fatalf("SetCurrentThemeByName: %v", err)
	}
	if w.seen != "Theme 10" {
		t.Errorf("window saw %q during notification, want %q", w.seen, "Theme 10")
	}
}

// switchable platform lets test flip colors.
type switchable struct {
	platform.Static
}

func TestRegistry_SystemColorsChanged(t *testing.T) {
	root := newTestRoot(t)
	p := &switchable{Static: platform.Static{Family: platform.OSFamilyUnix, Desktop: "kde", Dark: true}}
	r := theme.NewRegistry(root, theme.WithPlatform(p))

	first := r.CurrentTheme()

	// colors did not change: system theme is rebuilt, current kept
	r.SystemColorsChanged()
	if r.CurrentTheme() != first {
		t.Error("current theme should be kept when window color matches")
	}
	if r.SystemTheme() == first {
		t.Error("system theme should be rebuilt after SystemColorsChanged")
	}

	// platform went light: window color disagrees, current reset
	current := r.CurrentTheme()
	p.Dark = false
	r.SystemColorsChanged()
	if r.CurrentTheme() == current {
		t.Error("current system theme should be reset after palette change")
	}
	if name := r.CurrentTheme().Theme().Name; name != "Default" {
		t.Errorf("current theme = %q, want light fallback %q", name, "Default")
	}

	// explicitly chosen theme is never reset
	if err := r.SetCurrentThemeByName("Theme 2"); err != nil {
		t.Fatal(err)
	}
	p.Dark = true
	r.SystemColorsChanged()
	if name := r.CurrentTheme().Theme().Name; name != "Theme 2" {
		t.Errorf("current theme = %q, want %q", name, "Theme 2")
	}
}

func TestRegistry_SystemColorsChangedTwice(t *testing.T) {
	root := newTestRoot(t)
	p := &switchable{Static: platform.Static{Family: platform.OSFamilyUnix, Desktop: "kde", Dark: true}}
	r := theme.NewRegistry(root, theme.WithPlatform(p))

	if name := r.CurrentTheme().Theme().Name; name != "KDE Dark" {
		t.Fatalf("current theme = %q, want %q", name, "KDE Dark")
	}

	// nothing touches system theme between the two signals
	r.SystemColorsChanged()
	p.Dark = false
	r.SystemColorsChanged()

	if name := r.CurrentTheme().Theme().Name; name != "Default" {
		t.Errorf("current theme = %q, want light fallback %q", name, "Default")
	}
}

func TestRegistry_ExplicitSystemThemeIsTracked(t *testing.T) {
	root := newTestRoot(t)
	p := &switchable{Static: platform.Static{Family: platform.OSFamilyUnix, Desktop: "kde", Dark: true}}
	r := theme.NewRegistry(root, theme.WithPlatform(p))

	if err := r.SetCurrentThemeByName("Theme 2"); err != nil {
		t.Fatal(err)
	}
	if err := r.SetCurrentTheme(r.SystemTheme()); err != nil {
		t.Fatal(err)
	}
	p.Dark = false
	r.SystemColorsChanged()
	if name := r.CurrentTheme().Theme().Name; name != "Default" {
		t.Errorf("current theme = %q, want light fallback %q", name, "Default")
	}
}

func TestRegistry_ConcurrentSettersNotifyInOrder(t *testing.T) {
	root := newTestRoot(t)
	host := &fakeHost{windows: []*fakeWindow{{}, {}, {}}}
	r := theme.NewRegistry(root, theme.WithHost(host),
		theme.WithPlatform(platform.Static{Family: platform.OSFamilyUnix, Desktop: "kde", Dark: true}))

	names := []string{"Default", "KDE Dark", "Theme 2"}
	var wg sync.WaitGroup
	for i := range 60 {
		wg.Go(func() {
			if err := r.SetCurrentThemeByName(names[i%len(names)]); err != nil {
				t.Errorf("SetCurrentThemeByName: %v", err)
			}
		})
	}
	wg.Wait()

	want := r.CurrentTheme().SystemColors().Control()
	for i, w := range host.windows {
		if w.back != want {
			t.Errorf("window %d back color = %s, want %s of %q", i, w.back, want, r.CurrentTheme().Theme().Name)
		}
	}
}

// Package theme keeps track of available themes and the one currently in use.
package theme

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"sort"
	"sync"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"skin/platform"
	"skin/sheet"
	"skin/style"
)

// ErrEmptyTheme is returned when style sheet without theme name is made current.
var ErrEmptyTheme = errors.New("style sheet has no theme name")

// DefaultBaseline is the theme directory used when platform has no dedicated one.
const DefaultBaseline = "default"

// Window is top level window of a host toolkit.
type Window interface {
	SetBackColor(c style.Color)
	SetForeColor(c style.Color)
	Invalidate()
	Refresh()
}

// Host enumerates windows which follow current theme.
type Host interface {
	TopLevelWindows() []Window
}

// Registry memoizes themes found under a root directory and tracks current
// theme. It is safe for concurrent use. Changes of current theme are delivered
// to host windows in the order they were committed, windows must not change
// current theme from inside notification.
type Registry struct {
	log       *zap.Logger
	root      string
	platform  platform.Platform
	host      Host
	sheetOpts []sheet.Option

	// notifyMu is taken before mu and held until windows are notified
	notifyMu sync.Mutex

	mu              sync.Mutex
	themes          map[string]*sheet.StyleSheet
	names           []string
	namesLoaded     bool
	system          *sheet.StyleSheet
	current         *sheet.StyleSheet
	currentIsSystem bool
}

// Option configures Registry.
type Option func(*Registry)

func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

func WithPlatform(p platform.Platform) Option {
	return func(r *Registry) {
		if p != nil {
			r.platform = p
		}
	}
}

func WithHost(h Host) Option {
	return func(r *Registry) {
		r.host = h
	}
}

// WithSheetOptions adds options used for every style sheet registry loads.
func WithSheetOptions(opts ...sheet.Option) Option {
	return func(r *Registry) {
		r.sheetOpts = append(r.sheetOpts, opts...)
	}
}

// NewRegistry creates registry for themes located in subdirectories of root.
// Nothing is read until first query.
func NewRegistry(root string, opts ...Option) *Registry {
	r := &Registry{
		log:      zap.NewNop(),
		root:     root,
		platform: platform.Static{Family: platform.OSFamilyOther},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.Named("themes")
	return r
}

// Root returns themes directory.
func (r *Registry) Root() string {
	return r.root
}

func (r *Registry) sheetOptions(extra ...sheet.Option) []sheet.Option {
	opts := make([]sheet.Option, 0, len(r.sheetOpts)+len(extra)+1)
	opts = append(opts, sheet.WithLogger(r.log))
	opts = append(opts, r.sheetOpts...)
	return append(opts, extra...)
}

// AvailableThemes returns every theme under root keyed by theme name. Root is
// scanned once, later changes on disk are not noticed.
func (r *Registry) AvailableThemes() map[string]*sheet.StyleSheet {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.themes == nil {
		r.themes = r.scanThemes()
	}
	return maps.Clone(r.themes)
}

func (r *Registry) scanThemes() map[string]*sheet.StyleSheet {
	themes := make(map[string]*sheet.StyleSheet)

	dirs, err := sheet.ThemeDirectories(r.root)
	if err != nil {
		r.log.Warn("Unable to scan themes", zap.String("root", r.root), zap.Error(err))
		return themes
	}
	for _, dir := range dirs {
		s, err := sheet.FromDirectory(dir, r.sheetOptions()...)
		if err != nil {
			r.log.Warn("Skipping theme directory", zap.String("dir", dir), zap.Error(err))
			continue
		}
		if s.IsEmpty() {
			r.log.Debug("Directory has no theme header", zap.String("dir", dir))
			continue
		}
		name := s.Theme().Name
		if _, dup := themes[name]; dup {
			r.log.Warn("Duplicate theme name, keeping first", zap.String("theme", name), zap.String("dir", dir))
			continue
		}
		themes[name] = s
	}
	r.log.Debug("Themes scanned", zap.String("root", r.root), zap.Int("count", len(themes)))
	return themes
}

// AvailableThemeNames returns theme names in natural order. Only theme.css
// of every theme directory is read.
func (r *Registry) AvailableThemeNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.namesLoaded {
		r.names = r.scanNames()
		r.namesLoaded = true
	}
	return append([]string(nil), r.names...)
}

func (r *Registry) scanNames() []string {
	dirs, err := sheet.ThemeDirectories(r.root)
	if err != nil {
		r.log.Warn("Unable to scan themes", zap.String("root", r.root), zap.Error(err))
		return nil
	}
	var names []string
	for _, dir := range dirs {
		t, err := sheet.ReadThemeHeader(dir, r.log)
		if err != nil {
			r.log.Debug("Skipping theme directory", zap.String("dir", dir), zap.Error(err))
			continue
		}
		if !t.IsEmpty() {
			names = append(names, t.Name)
		}
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// Baseline returns name of theme directory matching platform and its dark
// mode setting.
func Baseline(p platform.Platform) string {
	var prefix string
	switch p.OS() {
	case platform.OSFamilyWindows:
		prefix = "windows"
	case platform.OSFamilyMacos:
		prefix = "macos"
	case platform.OSFamilyUnix:
		switch p.DesktopEnvironment() {
		case "kde":
			prefix = "kde"
		case "gnome":
			prefix = "gnome"
		}
	}
	if prefix == "" {
		return DefaultBaseline
	}
	if p.DarkMode() {
		return prefix + "_dark"
	}
	return prefix + "_light"
}

// SystemTheme returns theme matching the platform. It is built once, with
// palette seeded from the platform.
func (r *Registry) SystemTheme() *sheet.StyleSheet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.systemLocked()
}

func (r *Registry) systemLocked() *sheet.StyleSheet {
	if r.system != nil {
		return r.system
	}

	seed := sheet.WithSystemColors(r.platform.SystemColors())
	candidates := []string{Baseline(r.platform)}
	if candidates[0] != DefaultBaseline {
		candidates = append(candidates, DefaultBaseline)
	}
	for _, name := range candidates {
		dir := filepath.Join(r.root, name)
		s, err := sheet.FromDirectory(dir, r.sheetOptions(seed)...)
		if err != nil {
			r.log.Warn("Unable to load system theme", zap.String("dir", dir), zap.Error(err))
			continue
		}
		r.log.Debug("System theme loaded", zap.String("dir", dir), zap.String("theme", s.Theme().Name))
		r.system = s
		return s
	}

	// nothing on disk, platform palette and defaults only
	r.system = sheet.Parse("", r.sheetOptions(seed)...)
	return r.system
}

// CurrentTheme returns theme in use, the system theme unless set otherwise.
func (r *Registry) CurrentTheme() *sheet.StyleSheet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentLocked()
}

func (r *Registry) currentLocked() *sheet.StyleSheet {
	if r.current == nil {
		r.current = r.systemLocked()
		r.currentIsSystem = true
	}
	return r.current
}

// SetCurrentTheme makes s current. When s differs from current theme every
// host window is told to follow the new palette, once the change is committed.
func (r *Registry) SetCurrentTheme(s *sheet.StyleSheet) error {
	if s.IsEmpty() {
		return ErrEmptyTheme
	}

	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	if r.currentLocked().Equal(s) {
		r.mu.Unlock()
		return nil
	}
	r.current = s
	r.currentIsSystem = r.system != nil && s == r.system
	r.mu.Unlock()

	r.log.Info("Current theme changed", zap.String("theme", s.Theme().Name))
	r.notify(s)
	return nil
}

// SetCurrentThemeByName makes one of available themes current.
func (r *Registry) SetCurrentThemeByName(name string) error {
	s, ok := r.AvailableThemes()[name]
	if !ok {
		return fmt.Errorf("%w: %q", sheet.ErrUnknownTheme, name)
	}
	return r.SetCurrentTheme(s)
}

// SystemColorsChanged should be called when desktop colors change. System
// theme is rebuilt on next access, and current theme is reset when it was the
// system one and no longer matches the platform.
func (r *Registry) SystemColorsChanged() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.system = nil
	if r.current == nil || !r.currentIsSystem {
		return
	}
	if r.current.SystemColors().Window() != r.platform.SystemColors().Window() {
		r.log.Debug("System colors changed, current theme reset", zap.String("theme", r.current.Theme().Name))
		r.current = nil
		r.currentIsSystem = false
	}
}

func (r *Registry) notify(s *sheet.StyleSheet) {
	if r.host == nil {
		return
	}
	colors := s.SystemColors()
	for _, w := range r.host.TopLevelWindows() {
		w.SetBackColor(colors.Control())
		w.SetForeColor(colors.ControlText())
		w.Invalidate()
		w.Refresh()
	}
}

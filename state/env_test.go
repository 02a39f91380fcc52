package state

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"skin/config"
	"skin/platform"
	"skin/sheet"
)

func TestEnvFromContext(t *testing.T) {
	t.Run("valid context", func(t *testing.T) {
		env := EnvFromContext(ContextWithEnv(context.Background()))
		if env == nil {
			t.Fatal("Expected non-nil environment")
		}
		if env.start.IsZero() {
			t.Error("Environment start time not set")
		}
	})

	t.Run("panic on missing env", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic when env not in context")
			}
		}()
		EnvFromContext(context.Background())
	})
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now()}

	time.Sleep(10 * time.Millisecond)
	if uptime := env.Uptime(); uptime < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", uptime)
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		env := &LocalEnv{
			Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		}
		for i := 0; i < 3; i++ {
			env.RedirectStdLog()
			if env.restoreStdLog == nil {
				t.Errorf("Iteration %d: restoreStdLog not set", i)
			}
			env.RestoreStdLog()
		}
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{}
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
		env.RestoreStdLog()
	})
}

func writeTheme(t *testing.T, root, dir, css string) {
	t.Helper()
	path := filepath.Join(root, dir, sheet.ThemeFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLocalEnv_PrepareThemes(t *testing.T) {
	root := t.TempDir()
	writeTheme(t, root, "default", `theme { name: "Default"; }`)
	writeTheme(t, root, "mono", `theme { name: "Mono"; } button { border-color: red blue; }`)

	newEnv := func(current string) *LocalEnv {
		cfg, err := config.LoadConfiguration("")
		if err != nil {
			t.Fatalf("LoadConfiguration: %v", err)
		}
		cfg.Themes.Directory = root
		cfg.Themes.Current = current
		cfg.Themes.PositionalBorderColors = true
		return &LocalEnv{
			Cfg:      cfg,
			Log:      zaptest.NewLogger(t),
			Platform: platform.Static{Family: platform.OSFamilyOther},
		}
	}

	t.Run("system theme", func(t *testing.T) {
		env := newEnv("")
		if err := env.PrepareThemes(); err != nil {
			t.Fatalf("PrepareThemes: %v", err)
		}
		if name := env.Themes.CurrentTheme().Theme().Name; name != "Default" {
			t.Errorf("current theme = %q, want %q", name, "Default")
		}
	})

	t.Run("configured theme", func(t *testing.T) {
		env := newEnv("Mono")
		if err := env.PrepareThemes(); err != nil {
			t.Fatalf("PrepareThemes: %v", err)
		}
		cur := env.Themes.CurrentTheme()
		if name := cur.Theme().Name; name != "Mono" {
			t.Errorf("current theme = %q, want %q", name, "Mono")
		}
		// positional option reaches the parser
		if right := cur.Button().Border.Color.Right; right != 0xff0000ff {
			t.Errorf("right border color = %s, want blue", right)
		}
	})

	t.Run("unknown theme", func(t *testing.T) {
		env := newEnv("Nope")
		if err := env.PrepareThemes(); !errors.Is(err, sheet.ErrUnknownTheme) {
			t.Errorf("expected ErrUnknownTheme, got %v", err)
		}
	})

	t.Run("no configuration", func(t *testing.T) {
		if err := (&LocalEnv{}).PrepareThemes(); err == nil {
			t.Error("expected error without configuration")
		}
	})
}

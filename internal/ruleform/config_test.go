package ruleform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirkon/ruleform/internal/form"
)

func TestLoadConfig(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "ruleform.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config file: %s", err)
		}

		return path
	}

	t.Run("full", func(t *testing.T) {
		cfg, err := LoadConfig(write(t, `
origin: mytool
support: {module: my_rt, name: gen}
info_function: rules
`))
		if err != nil {
			t.Fatalf("load config: %s", err)
		}

		want := Config{
			Origin:   "mytool",
			Support:  form.Ref{Module: "my_rt", Name: "gen"},
			InfoFunc: "rules",
		}
		if cfg != want {
			t.Fatalf("expected %v, got %v", want, cfg)
		}
	})

	t.Run("partial falls back to defaults", func(t *testing.T) {
		cfg, err := LoadConfig(write(t, `origin: mytool`))
		if err != nil {
			t.Fatalf("load config: %s", err)
		}

		def := DefaultConfig()
		if cfg.Origin != "mytool" {
			t.Fatalf("expected origin mytool, got %q", cfg.Origin)
		}
		if cfg.Support != def.Support || cfg.InfoFunc != def.InfoFunc {
			t.Fatalf("defaults were expected for unset fields, got %v", cfg)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("error was expected")
		}
	})
}

func TestFreshNames(t *testing.T) {
	f := NewFreshNames("")
	if f.Next() != "module-1" || f.Next() != "module-2" {
		t.Fatal("sequential placeholders were expected")
	}
}

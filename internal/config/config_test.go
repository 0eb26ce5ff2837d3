package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eva-lang/eva/internal/evaluator"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
max_call_depth: 500
globals:
  PI: 3
  GREETING: "hello"
  DEBUG: true
`)
	cfg, err := ParseConfig(data, "eva.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.MaxCallDepth != 500 {
		t.Errorf("expected max_call_depth 500, got %d", cfg.MaxCallDepth)
	}
	if len(cfg.Globals) != 3 {
		t.Errorf("expected 3 globals, got %d", len(cfg.Globals))
	}
}

func TestParseConfigRejectsNegativeDepth(t *testing.T) {
	_, err := ParseConfig([]byte("max_call_depth: -1\n"), "eva.yaml")
	if err == nil {
		t.Fatalf("expected an error for a negative max_call_depth")
	}
}

func TestParseConfigRejectsReservedGlobalName(t *testing.T) {
	_, err := ParseConfig([]byte("globals:\n  VERSION: 1\n"), "eva.yaml")
	if err == nil {
		t.Fatalf("expected an error for a reserved global name")
	}
}

func TestParseConfigRejectsUnsupportedGlobalType(t *testing.T) {
	_, err := ParseConfig([]byte("globals:\n  LIST: [1, 2, 3]\n"), "eva.yaml")
	if err == nil {
		t.Fatalf("expected an error for an unsupported global value type")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eva.yaml")
	if err := os.WriteFile(path, []byte("max_call_depth: 42\n"), 0o644); err != nil {
		t.Fatalf("writing test config: %s", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.MaxCallDepth != 42 {
		t.Errorf("expected 42, got %d", cfg.MaxCallDepth)
	}
}

func TestFindConfigWalksUpward(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "eva.yaml"), []byte(""), 0o644); err != nil {
		t.Fatalf("writing root config: %s", err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("creating nested dir: %s", err)
	}

	found, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := filepath.Join(root, "eva.yaml")
	if found != want {
		t.Errorf("expected %s, got %s", want, found)
	}
}

func TestFindConfigReturnsEmptyWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	found, err := FindConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if found != "" {
		t.Errorf("expected no config to be found, got %s", found)
	}
}

func TestApplySeedsGlobals(t *testing.T) {
	cfg := &Config{
		MaxCallDepth: 777,
		Globals: map[string]any{
			"PI":    3,
			"GREET": "hi",
			"FLAG":  true,
		},
	}
	env := evaluator.NewEnvironment()
	depth, err := cfg.Apply(env)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if depth != 777 {
		t.Errorf("expected max depth 777, got %d", depth)
	}

	pi, err := env.Lookup("PI")
	if err != nil {
		t.Fatalf("PI not defined: %s", err)
	}
	if i, ok := pi.(*evaluator.Int); !ok || i.Value != 3 {
		t.Errorf("expected PI = 3, got %v", pi)
	}

	flag, err := env.Lookup("FLAG")
	if err != nil {
		t.Fatalf("FLAG not defined: %s", err)
	}
	if b, ok := flag.(*evaluator.Bool); !ok || !b.Value {
		t.Errorf("expected FLAG = true, got %v", flag)
	}
}

func TestApplyOnNilConfig(t *testing.T) {
	var cfg *Config
	env := evaluator.NewEnvironment()
	depth, err := cfg.Apply(env)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if depth != 0 {
		t.Errorf("expected zero depth from a nil config, got %d", depth)
	}
}

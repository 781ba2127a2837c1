package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebieire/csscade/merge"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigurationDefaults(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Merge.ImportantStrategy != "match" || cfg.Merge.ShorthandStrategy != "smart" {
		t.Fatalf("unexpected default strategies: %+v", cfg.Merge)
	}
	if cfg.Merge.Workers != 4 {
		t.Fatalf("expected 4 workers, got %d", cfg.Merge.Workers)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Fatalf("expected normal console level, got %q", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfigurationFile(t *testing.T) {
	path := writeConfig(t, `
merge:
  important_strategy: force
  shorthand_strategy: expand
  workers: 8
logging:
  console:
    level: debug
`)
	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Merge.ImportantStrategy != "force" || cfg.Merge.ShorthandStrategy != "expand" || cfg.Merge.Workers != 8 {
		t.Fatalf("unexpected merge section: %+v", cfg.Merge)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfigurationPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
merge:
  important_strategy: respect
`)
	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Merge.ImportantStrategy != "respect" {
		t.Fatalf("expected respect, got %q", cfg.Merge.ImportantStrategy)
	}
	if cfg.Merge.ShorthandStrategy != "smart" || cfg.Merge.Workers != 4 {
		t.Fatalf("unset fields must keep defaults: %+v", cfg.Merge)
	}
}

func TestLoadConfigurationUnknownField(t *testing.T) {
	path := writeConfig(t, `
merge:
  important_strategy: match
  unknown_knob: true
`)
	if _, err := LoadConfiguration(path); err == nil {
		t.Fatal("unknown fields must be rejected")
	}
}

func TestLoadConfigurationBadWorkers(t *testing.T) {
	path := writeConfig(t, `
merge:
  workers: 0
`)
	if _, err := LoadConfiguration(path); err == nil || !strings.Contains(err.Error(), "workers") {
		t.Fatalf("expected workers validation error, got %v", err)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing file must be an error")
	}
}

func TestEngineOptions(t *testing.T) {
	conf := &MergeConfig{ImportantStrategy: "strip", ShorthandStrategy: "cascade"}
	opts := conf.EngineOptions()
	if opts.Important != merge.ImportantStrip || opts.Shorthand != merge.ShorthandCascade {
		t.Fatalf("unexpected options: %+v", opts)
	}

	// Unknown names fall back to the defaults.
	conf = &MergeConfig{ImportantStrategy: "bogus", ShorthandStrategy: "bogus"}
	opts = conf.EngineOptions()
	if opts.Important != merge.ImportantMatch || opts.Shorthand != merge.ShorthandSmart {
		t.Fatalf("expected fallback options, got %+v", opts)
	}
}

func TestDumpRoundTrip(t *testing.T) {
	data, err := Dump(Default())
	if err != nil {
		t.Fatal(err)
	}
	path := writeConfig(t, string(data))
	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Fatalf("round trip changed configuration: %+v", cfg)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if !cfg.RawMode || !cfg.AltScreen {
		t.Error("defaults should start a live full-screen session")
	}
	if cfg.Trace || cfg.LogPath != "" {
		t.Error("logging should be off by default")
	}
}

func TestLoadFileOverlays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termbridge.toml")
	content := `
raw_mode = false
trace = true
log_path = "/tmp/bridge.log"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(Default(), path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.RawMode {
		t.Error("raw_mode=false not applied")
	}
	if !cfg.AltScreen {
		t.Error("unset alt_screen should keep the default")
	}
	if !cfg.Trace || cfg.LogPath != "/tmp/bridge.log" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadFileMissingIsNotError(t *testing.T) {
	cfg, err := LoadFile(Default(), filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Error("missing file should leave defaults untouched")
	}
}

func TestLoadFileMalformedErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("raw_mode = {{"), 0o644)
	if _, err := LoadFile(Default(), path); err == nil {
		t.Error("malformed TOML should error")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termbridge.toml")
	os.WriteFile(path, []byte("trace = false\nlog_path = \"/from/file\"\n"), 0o644)

	cfg, err := Load(path, envOf(map[string]string{
		EnvTrace:   "1",
		EnvLogPath: "/from/env",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Trace || cfg.LogPath != "/from/env" {
		t.Errorf("env did not win: %+v", cfg)
	}
}

func TestEnvBools(t *testing.T) {
	cfg, err := LoadEnv(Default(), envOf(map[string]string{
		EnvRawMode:   "false",
		EnvAltScreen: "0",
		EnvLogAppend: "true",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RawMode || cfg.AltScreen || !cfg.LogAppend {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := LoadEnv(Default(), envOf(map[string]string{EnvTrace: "banana"})); err == nil {
		t.Error("malformed boolean should error, not default")
	}
}

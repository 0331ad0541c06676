// Package config sources engine configuration for hosting shells. It
// layers an optional TOML file under TERMBRIDGE_* environment variables;
// command-line flags are applied on top by the shell itself. The engine
// core never reads any of these sources.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/termbridge/internal/engine"
)

// file is the TOML shape of the configuration.
type file struct {
	RawMode   *bool  `toml:"raw_mode"`
	AltScreen *bool  `toml:"alt_screen"`
	Trace     *bool  `toml:"trace"`
	LogPath   string `toml:"log_path"`
	LogAppend *bool  `toml:"log_append"`
}

// Default returns the configuration a shell starts from: a live
// full-screen session with logging off.
func Default() engine.Config {
	return engine.Config{RawMode: true, AltScreen: true}
}

// LoadFile overlays the TOML file at path onto cfg. A missing file is not
// an error; a malformed one is.
func LoadFile(cfg engine.Config, path string) (engine.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if f.RawMode != nil {
		cfg.RawMode = *f.RawMode
	}
	if f.AltScreen != nil {
		cfg.AltScreen = *f.AltScreen
	}
	if f.Trace != nil {
		cfg.Trace = *f.Trace
	}
	if f.LogPath != "" {
		cfg.LogPath = f.LogPath
	}
	if f.LogAppend != nil {
		cfg.LogAppend = *f.LogAppend
	}
	return cfg, nil
}

// Environment variable names recognized by LoadEnv.
const (
	EnvRawMode   = "TERMBRIDGE_RAW"
	EnvAltScreen = "TERMBRIDGE_ALT"
	EnvTrace     = "TERMBRIDGE_TRACE"
	EnvLogPath   = "TERMBRIDGE_LOG"
	EnvLogAppend = "TERMBRIDGE_LOG_APPEND"
)

// LoadEnv overlays environment variables onto cfg. lookup abstracts the
// environment so tests inject their own; pass os.LookupEnv in production.
// Boolean variables accept strconv.ParseBool forms; malformed values are
// an error rather than a silent default.
func LoadEnv(cfg engine.Config, lookup func(string) (string, bool)) (engine.Config, error) {
	boolVar := func(name string, dst *bool) error {
		s, ok := lookup(name)
		if !ok {
			return nil
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", name, s, err)
		}
		*dst = v
		return nil
	}

	for _, bind := range []struct {
		name string
		dst  *bool
	}{
		{EnvRawMode, &cfg.RawMode},
		{EnvAltScreen, &cfg.AltScreen},
		{EnvTrace, &cfg.Trace},
		{EnvLogAppend, &cfg.LogAppend},
	} {
		if err := boolVar(bind.name, bind.dst); err != nil {
			return cfg, err
		}
	}
	if s, ok := lookup(EnvLogPath); ok {
		cfg.LogPath = s
	}
	return cfg, nil
}

// Load builds the layered configuration: defaults, then the TOML file at
// path (when path is non-empty), then the environment.
func Load(path string, lookup func(string) (string, bool)) (engine.Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		cfg, err = LoadFile(cfg, path)
		if err != nil {
			return cfg, err
		}
	}
	return LoadEnv(cfg, lookup)
}

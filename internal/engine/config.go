package engine

import (
	"os"

	"github.com/rs/zerolog"
)

// Config is the explicit engine configuration. The engine never reads the
// environment; hosting shells translate their env/flags/files into this
// struct before construction.
type Config struct {
	// RawMode and AltScreen are the initial session toggles applied when
	// a terminal session opens.
	RawMode   bool
	AltScreen bool

	// Trace enables per-call enter/exit logging.
	Trace bool

	// LogPath is the log destination. Empty disables logging entirely
	// unless Trace is set, in which case stderr is used.
	LogPath string

	// LogAppend appends to an existing log file instead of truncating.
	LogAppend bool
}

// newLogger builds the engine logger from the config. Returns the opened
// file, if any, so the engine can close it.
func newLogger(cfg Config) (zerolog.Logger, *os.File, error) {
	level := zerolog.InfoLevel
	if cfg.Trace {
		level = zerolog.TraceLevel
	}

	switch {
	case cfg.LogPath != "":
		flags := os.O_CREATE | os.O_WRONLY
		if cfg.LogAppend {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(cfg.LogPath, flags, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		return zerolog.New(f).Level(level).With().Timestamp().Logger(), f, nil
	case cfg.Trace:
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger(), nil, nil
	default:
		return zerolog.Nop(), nil, nil
	}
}

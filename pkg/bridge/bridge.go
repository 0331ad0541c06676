// Package bridge is the flat public surface of the terminal-UI engine.
// It mirrors a C-style calling convention: plain uint64 widget handles,
// packed integer styles, and status codes instead of errors. Internally
// every call goes through one explicitly constructed engine; Init creates
// the default one and the package-level functions operate on it.
package bridge

import (
	"sync"

	"github.com/dshills/termbridge/internal/engine"
	"github.com/dshills/termbridge/internal/style"
)

// Config configures the engine; see the field docs on engine.Config.
type Config = engine.Config

// Status is the result code of fallible bridge calls.
type Status = engine.Status

// Status values.
const (
	StatusOK                  = engine.StatusOK
	StatusInvalidHandle       = engine.StatusInvalidHandle
	StatusInvalidArgument     = engine.StatusInvalidArgument
	StatusCapacityExceeded    = engine.StatusCapacityExceeded
	StatusTerminalUnavailable = engine.StatusTerminalUnavailable
	StatusInternal            = engine.StatusInternal
)

// ErrInvalidArgument marks argument validation failures inside setter
// bodies; the engine guard maps it to StatusInvalidArgument.
var ErrInvalidArgument = engine.ErrInvalidArgument

var (
	defaultMu sync.Mutex
	defaultE  *engine.Engine
)

// Init creates the default engine all package-level functions use.
// Calling Init again replaces the engine; the previous one is closed.
func Init(cfg Config) error {
	e, err := engine.New(cfg)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	old := defaultE
	defaultE = e
	defaultMu.Unlock()
	if old != nil {
		old.Close()
	}
	return nil
}

// Shutdown closes the default engine. Safe to call without Init.
func Shutdown() {
	defaultMu.Lock()
	old := defaultE
	defaultE = nil
	defaultMu.Unlock()
	if old != nil {
		old.Close()
	}
}

// eng returns the default engine, or nil before Init. Callers translate
// nil to StatusInternal; the bridge never panics on a missing Init.
func eng() *engine.Engine {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultE
}

// Version returns the bridge release string.
func Version() string { return engine.Version }

// Features returns the capability bit mask; see the Feat constants.
func Features() uint32 { return engine.Features() }

// Feature bits returned by Features.
const (
	FeatScrollbar      = engine.FeatScrollbar
	FeatCanvas         = engine.FeatCanvas
	FeatStyleDumpEx    = engine.FeatStyleDumpEx
	FeatBatchTableRows = engine.FeatBatchTableRows
	FeatBatchListItems = engine.FeatBatchListItems
	FeatColorHelpers   = engine.FeatColorHelpers
	FeatAxisLabels     = engine.FeatAxisLabels
	FeatSpanSetters    = engine.FeatSpanSetters
)

// ColorRGB returns the encoded form of a 24-bit color, ready for a packed
// style's Fg or Bg channel.
func ColorRGB(r, g, b uint8) uint32 { return style.EncodeRGB(r, g, b) }

// ColorIndexed returns the encoded form of a 256-color palette index.
func ColorIndexed(index uint8) uint32 { return style.EncodeIndexed(index) }

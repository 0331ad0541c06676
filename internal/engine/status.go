package engine

import (
	"errors"

	"github.com/dshills/termbridge/internal/registry"
)

// Status is the result code every fallible engine operation returns at the
// bridge surface. Zero is success.
type Status uint32

const (
	StatusOK Status = iota
	StatusInvalidHandle
	StatusInvalidArgument
	StatusCapacityExceeded
	StatusTerminalUnavailable
	StatusInternal
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidHandle:
		return "invalid handle"
	case StatusInvalidArgument:
		return "invalid argument"
	case StatusCapacityExceeded:
		return "capacity exceeded"
	case StatusTerminalUnavailable:
		return "terminal unavailable"
	case StatusInternal:
		return "internal error"
	default:
		return "unknown status"
	}
}

// OK reports success.
func (s Status) OK() bool { return s == StatusOK }

// Sentinel errors operation bodies return; the guard maps them to statuses.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrCapacityExceeded    = errors.New("capacity exceeded")
	ErrTerminalUnavailable = errors.New("terminal unavailable")
)

// statusOf maps an operation error to its surface status.
func statusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, registry.ErrInvalidHandle), errors.Is(err, registry.ErrInvalidKind):
		return StatusInvalidHandle
	case errors.Is(err, ErrInvalidArgument):
		return StatusInvalidArgument
	case errors.Is(err, ErrCapacityExceeded):
		return StatusCapacityExceeded
	case errors.Is(err, ErrTerminalUnavailable):
		return StatusTerminalUnavailable
	default:
		return StatusInternal
	}
}

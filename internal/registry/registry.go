// Package registry owns widget records behind opaque integer handles. A
// handle is valid from Create until Free; stale or wrong-kind handles are
// reported, never dereferenced.
package registry

import (
	"errors"
	"fmt"

	"github.com/dshills/termbridge/internal/widget"
)

// ErrInvalidHandle reports a freed, stale, zero or wrong-kind handle.
var ErrInvalidHandle = errors.New("invalid widget handle")

// ErrInvalidKind reports a kind outside the closed widget set.
var ErrInvalidKind = errors.New("invalid widget kind")

// Handle is the opaque id callers hold. It packs the widget kind, a slot
// generation and the slot index; zero is never a valid handle.
type Handle uint64

const (
	indexBits      = 32
	generationBits = 24
	indexMask      = 1<<indexBits - 1
	generationMask = 1<<generationBits - 1
)

func makeHandle(kind widget.Kind, generation uint32, index uint32) Handle {
	return Handle(uint64(kind)<<(indexBits+generationBits) |
		uint64(generation&generationMask)<<indexBits |
		uint64(index))
}

// Kind extracts the widget kind tag.
func (h Handle) Kind() widget.Kind {
	return widget.Kind(uint64(h) >> (indexBits + generationBits))
}

func (h Handle) generation() uint32 { return uint32(uint64(h)>>indexBits) & generationMask }
func (h Handle) index() uint32      { return uint32(uint64(h) & indexMask) }

// String formats a handle for logs.
func (h Handle) String() string {
	return fmt.Sprintf("%s#%d.%d", h.Kind(), h.index(), h.generation())
}

// slot is one arena entry. Generation starts at 1 and bumps on free, so a
// reused slot invalidates handles issued for the previous occupant.
type slot struct {
	generation uint32
	kind       widget.Kind
	state      any
	live       bool
}

// Registry is an arena of widget records. It is not self-locking; the
// engine serializes access under its coarse lock.
type Registry struct {
	slots []slot
	free  []uint32
	live  int
}

// New returns an empty registry.
func New() *Registry { return &Registry{} }

// Len returns the number of live records.
func (r *Registry) Len() int { return r.live }

// Create allocates a record of the given kind and returns its handle.
func (r *Registry) Create(kind widget.Kind) (Handle, error) {
	state := newState(kind)
	if state == nil {
		return 0, fmt.Errorf("%w: %d", ErrInvalidKind, kind)
	}
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, slot{generation: 1})
		idx = uint32(len(r.slots) - 1)
	}
	s := &r.slots[idx]
	s.kind = kind
	s.state = state
	s.live = true
	r.live++
	return makeHandle(kind, s.generation, idx), nil
}

// lookup resolves a handle to its live slot.
func (r *Registry) lookup(h Handle) (*slot, error) {
	idx := h.index()
	if h == 0 || int(idx) >= len(r.slots) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	s := &r.slots[idx]
	if !s.live || s.generation&generationMask != h.generation() || s.kind != h.Kind() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	return s, nil
}

// Get returns the record state after re-validating the handle's kind tag.
// A stale or mismatched handle yields ErrInvalidHandle and no access.
func (r *Registry) Get(h Handle, kind widget.Kind) (any, error) {
	s, err := r.lookup(h)
	if err != nil {
		return nil, err
	}
	if s.kind != kind {
		return nil, fmt.Errorf("%w: %s is not a %s", ErrInvalidHandle, h, kind)
	}
	return s.state, nil
}

// Free destroys the record. Exactly one Free per Create; a second Free of
// the same handle reports ErrInvalidHandle.
func (r *Registry) Free(h Handle) error {
	s, err := r.lookup(h)
	if err != nil {
		return err
	}
	s.live = false
	s.state = nil
	s.generation++
	if s.generation&generationMask == 0 {
		s.generation = 1
	}
	r.free = append(r.free, h.index())
	r.live--
	return nil
}

// Reserve pre-sizes the record's append-only storage so that n subsequent
// appends reallocate at most O(log n) times. Kinds without growable
// storage accept and ignore the hint.
func (r *Registry) Reserve(h Handle, capacity int) error {
	s, err := r.lookup(h)
	if err != nil {
		return err
	}
	if capacity <= 0 {
		return nil
	}
	type reserver interface{ Reserve(int) }
	if rv, ok := s.state.(reserver); ok {
		rv.Reserve(capacity)
	}
	return nil
}

// newState builds the zero record for a kind. The switch is exhaustive
// over the closed kind set.
func newState(kind widget.Kind) any {
	switch kind {
	case widget.KindParagraph:
		return widget.NewParagraph()
	case widget.KindList:
		return widget.NewList()
	case widget.KindTable:
		return widget.NewTable()
	case widget.KindGauge:
		return widget.NewGauge()
	case widget.KindTabs:
		return widget.NewTabs()
	case widget.KindBarChart:
		return widget.NewBarChart()
	case widget.KindSparkline:
		return widget.NewSparkline()
	case widget.KindChart:
		return widget.NewChart()
	case widget.KindScrollbar:
		return widget.NewScrollbar()
	case widget.KindLineGauge:
		return widget.NewLineGauge()
	case widget.KindClear:
		return widget.NewClear()
	case widget.KindCanvas:
		return widget.NewCanvas()
	default:
		return nil
	}
}

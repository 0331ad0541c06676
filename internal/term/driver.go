// Package term owns the live terminal session: a narrow driver interface
// over the physical terminal, the production tcell driver, and the Session
// type that exposes raw-mode, alternate-screen, cursor, and presentation
// operations to the engine.
package term

import (
	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/eventq"
)

// Driver is the capability surface a terminal device must provide. It is
// deliberately narrow: the Session layer implements mode bookkeeping,
// cursor clipping, and event pumping on top of it.
type Driver interface {
	// Init prepares the device for use. Must be called before any other
	// method.
	Init() error

	// Fini restores the device and releases its resources. PollEvent
	// unblocks with a KindNone event after Fini.
	Fini()

	// Size returns the current device dimensions.
	Size() (width, height int)

	// SetCell writes one cell. Positions outside the device are ignored.
	SetCell(x, y int, c buffer.Cell)

	// Show flushes pending cell writes to the device.
	Show()

	// Clear blanks the device with the default style.
	Clear()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// Suspend releases the device back to the host: cooked mode, main
	// screen. Resume re-acquires it.
	Suspend() error
	Resume() error

	// Interactive reports whether the device is a real terminal. Mode
	// toggles on a non-interactive device fail softly at the Session
	// layer instead of reaching the driver.
	Interactive() bool

	// PollEvent blocks for the next device event. Returns a KindNone
	// event when the device shuts down.
	PollEvent() eventq.Event
}

// Null is an in-memory driver for tests and headless operation. Cells land
// in a buffer that tests can inspect; events are fed through Post.
type Null struct {
	buf           *buffer.Buffer
	events        chan eventq.Event
	interactive   bool
	suspended     bool
	cursorX       int
	cursorY       int
	cursorVisible bool
	showCount     int
}

// NewNull creates a null driver with the given dimensions. Interactive
// defaults to true; see SetInteractive.
func NewNull(width, height int) *Null {
	return &Null{
		buf:         buffer.New(width, height),
		events:      make(chan eventq.Event, 64),
		interactive: true,
	}
}

// SetInteractive overrides whether the driver reports as a real terminal.
func (n *Null) SetInteractive(v bool) { n.interactive = v }

func (n *Null) Init() error { return nil }

func (n *Null) Fini() {
	close(n.events)
}

func (n *Null) Size() (int, int) { return n.buf.Size() }

func (n *Null) SetCell(x, y int, c buffer.Cell) { n.buf.Set(x, y, c) }

func (n *Null) Show() { n.showCount++ }

func (n *Null) Clear() {
	n.buf.Reset()
}

func (n *Null) ShowCursor(x, y int) {
	n.cursorX, n.cursorY = x, y
	n.cursorVisible = true
}

func (n *Null) HideCursor() { n.cursorVisible = false }

func (n *Null) Suspend() error { n.suspended = true; return nil }
func (n *Null) Resume() error  { n.suspended = false; return nil }

func (n *Null) Interactive() bool { return n.interactive }

func (n *Null) PollEvent() eventq.Event {
	e, ok := <-n.events
	if !ok {
		return eventq.Event{}
	}
	return e
}

// Post feeds a synthetic device event, as if the terminal produced it.
func (n *Null) Post(e eventq.Event) {
	select {
	case n.events <- e:
	default:
	}
}

// Screen returns the backing buffer for test inspection.
func (n *Null) Screen() *buffer.Buffer { return n.buf }

// Cursor returns the cursor state for test inspection.
func (n *Null) Cursor() (x, y int, visible bool) {
	return n.cursorX, n.cursorY, n.cursorVisible
}

// ShowCount returns how many times Show has been called.
func (n *Null) ShowCount() int { return n.showCount }

// Suspended reports whether the driver is currently suspended.
func (n *Null) Suspended() bool { return n.suspended }

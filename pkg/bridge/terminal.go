package bridge

import (
	"time"

	"github.com/dshills/termbridge/internal/eventq"
	"github.com/dshills/termbridge/internal/term"
)

// OpenTerminal starts the terminal session on the process's controlling
// terminal. At most one session is active per engine.
func OpenTerminal() Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	d, err := term.NewTerminal()
	if err != nil {
		return StatusTerminalUnavailable
	}
	return e.OpenSession(d)
}

// OpenHeadless starts a session on an in-memory device of the given size.
// Rendering, cursor, and event operations behave as on a real terminal;
// mode toggles do too. Intended for tests and headless hosts.
func OpenHeadless(width, height int) Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.OpenSession(term.NewNull(width, height))
}

// CloseTerminal ends the session; a no-op when none is open.
func CloseTerminal() Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.CloseSession()
}

// EnableRaw turns raw mode on; repeat calls are no-op successes.
func EnableRaw() Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.EnableRaw()
}

// DisableRaw turns raw mode off; disabling a never-raw session succeeds.
func DisableRaw() Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.DisableRaw()
}

// EnterAlt switches to the alternate screen; idempotent.
func EnterAlt() Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.EnterAlt()
}

// LeaveAlt returns to the main screen; idempotent.
func LeaveAlt() Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.LeaveAlt()
}

// TerminalSize reports the session's current dimensions.
func TerminalSize() (width, height int, st Status) {
	e := eng()
	if e == nil {
		return 0, 0, StatusInternal
	}
	return e.TerminalSize()
}

// SetCursor positions and shows the cursor, clipped to the terminal.
func SetCursor(x, y int) Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.SetCursor(x, y)
}

// CursorPosition reports the last position set through SetCursor and
// whether the cursor is shown.
func CursorPosition() (x, y int, visible bool, st Status) {
	e := eng()
	if e == nil {
		return 0, 0, false, StatusInternal
	}
	return e.CursorPosition()
}

// HideCursor hides the cursor.
func HideCursor() Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.HideCursor()
}

// ClearScreen blanks the terminal.
func ClearScreen() Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.ClearScreen()
}

// Event kind values.
const (
	EventNone uint32 = iota
	EventKey
	EventResize
	EventMouse
)

// Key codes for key events and injection.
const (
	KeyChar      = uint32(eventq.KeyChar)
	KeyEnter     = uint32(eventq.KeyEnter)
	KeyLeft      = uint32(eventq.KeyLeft)
	KeyRight     = uint32(eventq.KeyRight)
	KeyUp        = uint32(eventq.KeyUp)
	KeyDown      = uint32(eventq.KeyDown)
	KeyEsc       = uint32(eventq.KeyEsc)
	KeyBackspace = uint32(eventq.KeyBackspace)
	KeyTab       = uint32(eventq.KeyTab)
	KeyDelete    = uint32(eventq.KeyDelete)
	KeyHome      = uint32(eventq.KeyHome)
	KeyEnd       = uint32(eventq.KeyEnd)
	KeyPageUp    = uint32(eventq.KeyPageUp)
	KeyPageDown  = uint32(eventq.KeyPageDown)
	KeyInsert    = uint32(eventq.KeyInsert)
	KeyF1        = uint32(eventq.KeyF1)
	KeyF2        = uint32(eventq.KeyF2)
	KeyF3        = uint32(eventq.KeyF3)
	KeyF4        = uint32(eventq.KeyF4)
	KeyF5        = uint32(eventq.KeyF5)
	KeyF6        = uint32(eventq.KeyF6)
	KeyF7        = uint32(eventq.KeyF7)
	KeyF8        = uint32(eventq.KeyF8)
	KeyF9        = uint32(eventq.KeyF9)
	KeyF10       = uint32(eventq.KeyF10)
	KeyF11       = uint32(eventq.KeyF11)
	KeyF12       = uint32(eventq.KeyF12)
)

// Key modifier bits.
const (
	KeyModShift = uint8(eventq.ModShift)
	KeyModAlt   = uint8(eventq.ModAlt)
	KeyModCtrl  = uint8(eventq.ModCtrl)
)

// Mouse kind values.
const (
	MouseDown       = uint32(eventq.MouseDown)
	MouseUp         = uint32(eventq.MouseUp)
	MouseDrag       = uint32(eventq.MouseDrag)
	MouseMoved      = uint32(eventq.MouseMoved)
	MouseScrollUp   = uint32(eventq.MouseScrollUp)
	MouseScrollDown = uint32(eventq.MouseScrollDown)
)

// Mouse button values.
const (
	MouseButtonNone   = uint32(eventq.MouseNone)
	MouseButtonLeft   = uint32(eventq.MouseLeft)
	MouseButtonRight  = uint32(eventq.MouseRight)
	MouseButtonMiddle = uint32(eventq.MouseMiddle)
)

// Event is the flat public form of one input event. Only the fields of
// the tagged kind are meaningful.
type Event struct {
	Kind uint32

	// Key fields.
	KeyCode uint32
	Rune    rune
	KeyMods uint8

	// Mouse fields.
	MouseKind   uint32
	MouseButton uint32
	MouseX      int
	MouseY      int
	MouseMods   uint8

	// Resize fields.
	Width, Height int
}

func fromEvent(e eventq.Event) Event {
	return Event{
		Kind:        uint32(e.Kind),
		KeyCode:     uint32(e.Key),
		Rune:        e.Rune,
		KeyMods:     uint8(e.KeyMods),
		MouseKind:   uint32(e.Mouse),
		MouseButton: uint32(e.Button),
		MouseX:      e.MouseX,
		MouseY:      e.MouseY,
		MouseMods:   uint8(e.MouseMods),
		Width:       e.Width,
		Height:      e.Height,
	}
}

// InjectKey queues a synthetic key event, indistinguishable from one the
// terminal produced.
func InjectKey(code uint32, r rune, mods uint8) {
	if e := eng(); e != nil {
		e.InjectKey(eventq.KeyCode(code), r, eventq.KeyMod(mods))
	}
}

// InjectMouse queues a synthetic mouse event.
func InjectMouse(kind, button uint32, x, y int, mods uint8) {
	if e := eng(); e != nil {
		e.InjectMouse(eventq.MouseKind(kind), eventq.MouseButton(button), x, y, eventq.KeyMod(mods))
	}
}

// InjectResize queues a synthetic resize event.
func InjectResize(width, height int) {
	if e := eng(); e != nil {
		e.InjectResize(width, height)
	}
}

// PollEvent returns the next queued event without blocking. The second
// result is false on an empty queue; the event kind is then EventNone.
func PollEvent() (Event, bool) {
	e := eng()
	if e == nil {
		return Event{}, false
	}
	ev, ok := e.PollEvent()
	return fromEvent(ev), ok
}

// WaitEvent blocks up to the timeout for the next event. The only
// blocking call in the bridge.
func WaitEvent(timeout time.Duration) (Event, bool) {
	e := eng()
	if e == nil {
		return Event{}, false
	}
	ev, ok := e.WaitEvent(timeout)
	return fromEvent(ev), ok
}

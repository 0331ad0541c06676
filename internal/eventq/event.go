// Package eventq provides the input event model and the single FIFO queue
// shared by real driver input and synthetic injection. Consumers cannot
// tell the two apart, which is what makes the engine testable without a
// terminal device.
package eventq

// Kind tags an event variant. KindNone is the "no event" sentinel a
// non-blocking poll returns on an empty queue.
type Kind uint32

const (
	KindNone Kind = iota
	KindKey
	KindResize
	KindMouse
)

// KeyCode identifies a key. Values are part of the bridge surface.
type KeyCode uint32

const (
	KeyChar KeyCode = iota
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEsc
	KeyBackspace
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
)

// Function keys occupy a reserved range.
const (
	KeyF1 KeyCode = 100 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyMod is a bit set of key modifiers.
type KeyMod uint8

const (
	ModShift KeyMod = 1 << 0
	ModAlt   KeyMod = 1 << 1
	ModCtrl  KeyMod = 1 << 2
)

// MouseKind identifies a mouse action.
type MouseKind uint32

const (
	MouseDown MouseKind = 1 + iota
	MouseUp
	MouseDrag
	MouseMoved
	MouseScrollUp
	MouseScrollDown
)

// MouseButton identifies the button of a mouse action; MouseNone for
// motion and scroll.
type MouseButton uint32

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
)

// Event is the tagged input variant. Only the fields of the tagged kind
// are meaningful.
type Event struct {
	Kind Kind

	// Key fields.
	Key     KeyCode
	Rune    rune
	KeyMods KeyMod

	// Mouse fields.
	Mouse     MouseKind
	Button    MouseButton
	MouseX    int
	MouseY    int
	MouseMods KeyMod

	// Resize fields.
	Width, Height int
}

// KeyEvent builds a key event.
func KeyEvent(code KeyCode, r rune, mods KeyMod) Event {
	return Event{Kind: KindKey, Key: code, Rune: r, KeyMods: mods}
}

// MouseEvent builds a mouse event.
func MouseEvent(kind MouseKind, btn MouseButton, x, y int, mods KeyMod) Event {
	return Event{Kind: KindMouse, Mouse: kind, Button: btn, MouseX: x, MouseY: y, MouseMods: mods}
}

// ResizeEvent builds a resize event.
func ResizeEvent(w, h int) Event {
	return Event{Kind: KindResize, Width: w, Height: h}
}

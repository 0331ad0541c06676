package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/eventq"
	"github.com/dshills/termbridge/internal/style"
)

// Terminal implements Driver on a tcell.Screen.
type Terminal struct {
	screen      tcell.Screen
	interactive bool
	mu          sync.Mutex
}

// NewTerminal creates a driver on the process's controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen, interactive: true}, nil
}

// NewSimulation creates a driver on a tcell simulation screen of the given
// size. Used by tests; reports as interactive so mode toggles exercise the
// full path.
func NewSimulation(width, height int) *Terminal {
	sim := tcell.NewSimulationScreen("")
	sim.SetSize(width, height)
	return &Terminal{screen: sim, interactive: true}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	return nil
}

func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, c buffer.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Rune 0 marks the shadow of a wide rune; tcell manages those itself.
	if c.Rune == 0 {
		return
	}
	t.screen.SetContent(x, y, c.Rune, nil, toTcellStyle(c.Style))
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) Suspend() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Suspend()
}

func (t *Terminal) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Resume()
}

func (t *Terminal) Interactive() bool { return t.interactive }

func (t *Terminal) PollEvent() eventq.Event {
	ev := t.screen.PollEvent()
	return fromTcellEvent(ev)
}

// toTcellColor converts a color to tcell's representation. Reset maps to
// the terminal default.
func toTcellColor(c style.Color) tcell.Color {
	switch c.Kind {
	case style.ColorNamed, style.ColorIndexed:
		return tcell.PaletteColor(int(c.Index))
	case style.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}

// toTcellStyle converts a cell style to tcell's representation.
func toTcellStyle(s style.Style) tcell.Style {
	ts := tcell.StyleDefault.
		Foreground(toTcellColor(s.Fg)).
		Background(toTcellColor(s.Bg))

	if s.Mods.Has(style.ModBold) {
		ts = ts.Bold(true)
	}
	if s.Mods.Has(style.ModDim) {
		ts = ts.Dim(true)
	}
	if s.Mods.Has(style.ModItalic) {
		ts = ts.Italic(true)
	}
	if s.Mods.Has(style.ModUnderline) {
		ts = ts.Underline(true)
	}
	if s.Mods.Has(style.ModSlowBlink) || s.Mods.Has(style.ModRapidBlink) {
		ts = ts.Blink(true)
	}
	if s.Mods.Has(style.ModReversed) {
		ts = ts.Reverse(true)
	}
	if s.Mods.Has(style.ModCrossedOut) {
		ts = ts.StrikeThrough(true)
	}
	return ts
}

// fromTcellEvent converts a tcell event to the bridge event model.
// Unrecognized events come back as KindNone and are dropped by the pump.
func fromTcellEvent(ev tcell.Event) eventq.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		code, r := fromTcellKey(e.Key(), e.Rune())
		return eventq.KeyEvent(code, r, fromTcellMod(e.Modifiers()))

	case *tcell.EventMouse:
		x, y := e.Position()
		kind, btn := fromTcellButtons(e.Buttons())
		if kind == 0 {
			return eventq.Event{}
		}
		return eventq.MouseEvent(kind, btn, x, y, fromTcellMod(e.Modifiers()))

	case *tcell.EventResize:
		w, h := e.Size()
		return eventq.ResizeEvent(w, h)

	default:
		return eventq.Event{}
	}
}

func fromTcellKey(k tcell.Key, r rune) (eventq.KeyCode, rune) {
	switch k {
	case tcell.KeyRune:
		return eventq.KeyChar, r
	case tcell.KeyEnter:
		return eventq.KeyEnter, 0
	case tcell.KeyLeft:
		return eventq.KeyLeft, 0
	case tcell.KeyRight:
		return eventq.KeyRight, 0
	case tcell.KeyUp:
		return eventq.KeyUp, 0
	case tcell.KeyDown:
		return eventq.KeyDown, 0
	case tcell.KeyEscape:
		return eventq.KeyEsc, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return eventq.KeyBackspace, 0
	case tcell.KeyTab:
		return eventq.KeyTab, 0
	case tcell.KeyDelete:
		return eventq.KeyDelete, 0
	case tcell.KeyHome:
		return eventq.KeyHome, 0
	case tcell.KeyEnd:
		return eventq.KeyEnd, 0
	case tcell.KeyPgUp:
		return eventq.KeyPageUp, 0
	case tcell.KeyPgDn:
		return eventq.KeyPageDown, 0
	case tcell.KeyInsert:
		return eventq.KeyInsert, 0
	case tcell.KeyF1:
		return eventq.KeyF1, 0
	case tcell.KeyF2:
		return eventq.KeyF2, 0
	case tcell.KeyF3:
		return eventq.KeyF3, 0
	case tcell.KeyF4:
		return eventq.KeyF4, 0
	case tcell.KeyF5:
		return eventq.KeyF5, 0
	case tcell.KeyF6:
		return eventq.KeyF6, 0
	case tcell.KeyF7:
		return eventq.KeyF7, 0
	case tcell.KeyF8:
		return eventq.KeyF8, 0
	case tcell.KeyF9:
		return eventq.KeyF9, 0
	case tcell.KeyF10:
		return eventq.KeyF10, 0
	case tcell.KeyF11:
		return eventq.KeyF11, 0
	case tcell.KeyF12:
		return eventq.KeyF12, 0
	default:
		// Control keys arrive as their rune with Ctrl set.
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return eventq.KeyChar, rune('a' + (k - tcell.KeyCtrlA))
		}
		return eventq.KeyChar, r
	}
}

func fromTcellMod(m tcell.ModMask) eventq.KeyMod {
	var out eventq.KeyMod
	if m&tcell.ModShift != 0 {
		out |= eventq.ModShift
	}
	if m&tcell.ModAlt != 0 {
		out |= eventq.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= eventq.ModCtrl
	}
	return out
}

func fromTcellButtons(b tcell.ButtonMask) (eventq.MouseKind, eventq.MouseButton) {
	switch {
	case b&tcell.WheelUp != 0:
		return eventq.MouseScrollUp, eventq.MouseNone
	case b&tcell.WheelDown != 0:
		return eventq.MouseScrollDown, eventq.MouseNone
	case b&tcell.Button1 != 0:
		return eventq.MouseDown, eventq.MouseLeft
	case b&tcell.Button2 != 0:
		return eventq.MouseDown, eventq.MouseMiddle
	case b&tcell.Button3 != 0:
		return eventq.MouseDown, eventq.MouseRight
	case b == tcell.ButtonNone:
		return eventq.MouseMoved, eventq.MouseNone
	default:
		return 0, eventq.MouseNone
	}
}

package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/eventq"
	"github.com/dshills/termbridge/internal/style"
)

func TestSimulationDrawsCells(t *testing.T) {
	d := NewSimulation(20, 5)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer d.Fini()

	d.SetCell(2, 1, buffer.Cell{Rune: 'X', Style: style.Style{Fg: style.Named(style.Red)}})
	d.Show()

	sim := d.screen.(tcell.SimulationScreen)
	cells, w, _ := sim.GetContents()
	cell := cells[1*w+2]
	if len(cell.Runes) == 0 || cell.Runes[0] != 'X' {
		t.Errorf("simulation cell = %v, want 'X'", cell.Runes)
	}
	fg, _, _ := cell.Style.Decompose()
	if fg != tcell.PaletteColor(int(style.Red)) {
		t.Errorf("fg = %v, want palette red", fg)
	}
}

func TestSimulationSkipsWideShadowCells(t *testing.T) {
	d := NewSimulation(20, 5)
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	defer d.Fini()

	d.SetCell(0, 0, buffer.Cell{Rune: '界'})
	d.SetCell(1, 0, buffer.Cell{Rune: 0})
	d.Show()

	sim := d.screen.(tcell.SimulationScreen)
	cells, _, _ := sim.GetContents()
	if cells[0].Runes[0] != '界' {
		t.Errorf("cell 0 = %v", cells[0].Runes)
	}
}

func TestKeyConversion(t *testing.T) {
	tests := []struct {
		name string
		in   tcell.Event
		code eventq.KeyCode
		r    rune
		mods eventq.KeyMod
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', 0), eventq.KeyChar, 'q', 0},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, 0), eventq.KeyEnter, 0, 0},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, 0), eventq.KeyEsc, 0, 0},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, 0), eventq.KeyF5, 0, 0},
		{"shift-alt", tcell.NewEventKey(tcell.KeyRune, 'Z', tcell.ModShift|tcell.ModAlt), eventq.KeyChar, 'Z', eventq.ModShift | eventq.ModAlt},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), eventq.KeyChar, 'c', eventq.ModCtrl},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := fromTcellEvent(tt.in)
			if e.Kind != eventq.KindKey {
				t.Fatalf("kind = %v", e.Kind)
			}
			if e.Key != tt.code || e.Rune != tt.r || e.KeyMods != tt.mods {
				t.Errorf("got (%v,%q,%v), want (%v,%q,%v)",
					e.Key, e.Rune, e.KeyMods, tt.code, tt.r, tt.mods)
			}
		})
	}
}

func TestMouseConversion(t *testing.T) {
	ev := tcell.NewEventMouse(3, 7, tcell.Button1, 0)
	e := fromTcellEvent(ev)
	if e.Kind != eventq.KindMouse || e.Mouse != eventq.MouseDown || e.Button != eventq.MouseLeft {
		t.Errorf("left click = %+v", e)
	}
	if e.MouseX != 3 || e.MouseY != 7 {
		t.Errorf("position = (%d,%d)", e.MouseX, e.MouseY)
	}

	wheel := fromTcellEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, 0))
	if wheel.Mouse != eventq.MouseScrollUp {
		t.Errorf("wheel = %+v", wheel)
	}
}

func TestResizeConversion(t *testing.T) {
	e := fromTcellEvent(tcell.NewEventResize(132, 43))
	if e.Kind != eventq.KindResize || e.Width != 132 || e.Height != 43 {
		t.Errorf("resize = %+v", e)
	}
}

func TestStyleConversionModifiers(t *testing.T) {
	ts := toTcellStyle(style.Style{
		Fg:   style.RGB(10, 20, 30),
		Mods: style.ModBold | style.ModReversed,
	})
	fg, _, attrs := ts.Decompose()
	if fg != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("fg = %v", fg)
	}
	if attrs&tcell.AttrBold == 0 || attrs&tcell.AttrReverse == 0 {
		t.Errorf("attrs = %v", attrs)
	}
}

package bridge

import (
	"strings"
	"testing"
	"time"

	"github.com/tidwall/gjson"
)

func initBridge(t *testing.T) {
	t.Helper()
	if err := Init(Config{}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(Shutdown)
}

func TestParagraphHeadlessText(t *testing.T) {
	initBridge(t)

	h, st := NewParagraph()
	if !st.OK() {
		t.Fatalf("NewParagraph: %v", st)
	}
	if st := ParagraphSetText(h, "Hello", Style{}); !st.OK() {
		t.Fatalf("ParagraphSetText: %v", st)
	}

	out, st := HeadlessText([]DrawCmd{{Kind: 1, Handle: h, Area: Rect{Width: 5, Height: 1}}}, 5, 1)
	if !st.OK() {
		t.Fatalf("HeadlessText: %v", st)
	}
	if out != "Hello" {
		t.Errorf("text = %q, want Hello", out)
	}
}

func TestCallsBeforeInitFailSoftly(t *testing.T) {
	Shutdown()
	if _, st := NewParagraph(); st != StatusInternal {
		t.Errorf("NewParagraph without Init = %v, want internal", st)
	}
	if st := FreeWidget(1); st != StatusInternal {
		t.Errorf("FreeWidget without Init = %v", st)
	}
	if _, ok := PollEvent(); ok {
		t.Error("PollEvent without Init returned an event")
	}
}

func TestFreeAndStaleHandle(t *testing.T) {
	initBridge(t)

	h, _ := NewList()
	if st := FreeWidget(h); !st.OK() {
		t.Fatalf("FreeWidget: %v", st)
	}
	if st := FreeWidget(h); st != StatusInvalidHandle {
		t.Errorf("double free = %v, want invalid handle", st)
	}
	if st := ListSetSelected(h, 0); st != StatusInvalidHandle {
		t.Errorf("setter on freed handle = %v, want invalid handle", st)
	}
}

func TestSetterRejectsWrongKind(t *testing.T) {
	initBridge(t)

	h, _ := NewList()
	tests := []struct {
		name string
		st   Status
	}{
		{"paragraph text on list", ParagraphSetText(h, "x", Style{})},
		{"gauge ratio on list", GaugeSetRatio(h, 0.5)},
		{"chart style on list", ChartSetStyle(h, Style{})},
		{"canvas line on list", CanvasAddLine(h, 0, 0, 1, 1, Style{})},
	}
	for _, tt := range tests {
		if tt.st != StatusInvalidHandle {
			t.Errorf("%s = %v, want invalid handle", tt.name, tt.st)
		}
	}
	// The record keeps working after the rejections.
	if st := ListAppendItem(h, []Span{{Text: "ok"}}); !st.OK() {
		t.Errorf("list still unusable after wrong-kind call: %v", st)
	}
}

func TestInvalidArgumentStatuses(t *testing.T) {
	initBridge(t)

	p, _ := NewParagraph()
	sb, _ := NewScrollbar()
	cv, _ := NewCanvas()
	ch, _ := NewChart()

	tests := []struct {
		name string
		st   Status
	}{
		{"negative scroll", ParagraphSetScroll(p, -1)},
		{"negative reserve", Reserve(p, -4)},
		{"bad orientation", ScrollbarConfigure(sb, 99, 10, 0)},
		{"degenerate canvas bounds", CanvasSetBounds(cv, 1, 1, 0, 1)},
		{"degenerate axis bounds", ChartSetXAxis(ch, AxisSpec{HasBounds: true, Min: 2, Max: 2})},
	}
	for _, tt := range tests {
		if tt.st != StatusInvalidArgument {
			t.Errorf("%s = %v, want invalid argument", tt.name, tt.st)
		}
	}
}

func TestFailedSetterLeavesStateIntact(t *testing.T) {
	initBridge(t)

	h, _ := NewParagraph()
	ParagraphSetScroll(h, 3)
	if st := ParagraphSetScroll(h, -1); st != StatusInvalidArgument {
		t.Fatalf("status = %v", st)
	}

	// Scroll is still 3: line 0 is scrolled out.
	ParagraphSetText(h, "a\nb\nc\nd\ne", Style{})
	out, _ := HeadlessText([]DrawCmd{{Kind: 1, Handle: h, Area: Rect{Width: 1, Height: 1}}}, 1, 1)
	if out != "d" {
		t.Errorf("first visible line = %q, want d (scroll preserved)", out)
	}
}

func TestColorHelpers(t *testing.T) {
	if got := ColorRGB(0x12, 0x34, 0x56); got != 0x80123456 {
		t.Errorf("ColorRGB = %08X", got)
	}
	if got := ColorIndexed(200); got != 0x400000C8 {
		t.Errorf("ColorIndexed = %08X", got)
	}
}

func TestHeadlessStylesReducesToPalette(t *testing.T) {
	initBridge(t)

	h, _ := NewParagraph()
	ParagraphSetText(h, "x", Style{Fg: ColorRGB(255, 0, 0), Mods: ModBold})
	out, st := HeadlessStyles([]DrawCmd{{Kind: 1, Handle: h, Area: Rect{Width: 1, Height: 1}}}, 1, 1)
	if !st.OK() {
		t.Fatal(st)
	}
	// Pure red reduces to named light red (palette byte 10).
	if out != "0A000001" {
		t.Errorf("styles = %q", out)
	}

	ex, _ := HeadlessStylesEx([]DrawCmd{{Kind: 1, Handle: h, Area: Rect{Width: 1, Height: 1}}}, 1, 1)
	if ex != "80FF0000000000000001" {
		t.Errorf("styles ex = %q", ex)
	}
}

func TestHeadlessCellsCapacity(t *testing.T) {
	initBridge(t)

	h, _ := NewParagraph()
	ParagraphSetText(h, "abc", Style{})
	cmds := []DrawCmd{{Kind: 1, Handle: h, Area: Rect{Width: 3, Height: 2}}}

	dst := make([]CellInfo, 2)
	filled, required, st := HeadlessCells(cmds, 3, 2, dst)
	if !st.OK() {
		t.Fatal(st)
	}
	if filled != 2 || required != 6 {
		t.Errorf("filled=%d required=%d, want 2 and 6", filled, required)
	}
	if dst[0].Rune != 'a' || dst[1].Rune != 'b' {
		t.Errorf("cells = %q %q", dst[0].Rune, dst[1].Rune)
	}
}

func TestLayoutSplitRemainder(t *testing.T) {
	rects := LayoutSplit(Rect{Width: 10, Height: 2}, DirHorizontal,
		[]Constraint{
			{Kind: ConstraintRatio, Value: 1, Value2: 2},
			{Kind: ConstraintRatio, Value: 1, Value2: 2},
		}, 1, [4]int{})
	if len(rects) != 2 {
		t.Fatalf("len = %d", len(rects))
	}
	if rects[0].Width != 5 || rects[1].Width != 4 {
		t.Errorf("widths = %d,%d, want 5,4", rects[0].Width, rects[1].Width)
	}
	if rects[1].X != 6 {
		t.Errorf("second rect at x=%d, want 6 (one spacing cell)", rects[1].X)
	}
}

func TestHeadlessSessionAndEvents(t *testing.T) {
	initBridge(t)

	if st := OpenHeadless(40, 10); !st.OK() {
		t.Fatalf("OpenHeadless: %v", st)
	}
	if st := OpenHeadless(40, 10); st != StatusInvalidArgument {
		t.Errorf("second open = %v, want invalid argument", st)
	}

	w, h, st := TerminalSize()
	if !st.OK() || w != 40 || h != 10 {
		t.Errorf("size = %d,%d (%v)", w, h, st)
	}

	if st := EnableRaw(); !st.OK() {
		t.Errorf("EnableRaw: %v", st)
	}
	if st := EnableRaw(); !st.OK() {
		t.Errorf("repeat EnableRaw: %v", st)
	}

	InjectKey(KeyChar, 'k', KeyModCtrl)
	ev, ok := WaitEvent(time.Second)
	if !ok || ev.Kind != EventKey || ev.Rune != 'k' || ev.KeyMods != KeyModCtrl {
		t.Errorf("event = %+v", ev)
	}
	if _, ok := PollEvent(); ok {
		t.Error("queue should be drained")
	}

	if st := SetCursor(5, 3); !st.OK() {
		t.Errorf("SetCursor: %v", st)
	}
	if x, y, vis, st := CursorPosition(); !st.OK() || !vis || x != 5 || y != 3 {
		t.Errorf("CursorPosition = (%d,%d,%v,%v), want (5,3,true,OK)", x, y, vis, st)
	}
	if st := HideCursor(); !st.OK() {
		t.Errorf("HideCursor: %v", st)
	}
	if _, _, vis, _ := CursorPosition(); vis {
		t.Error("cursor still reported visible after HideCursor")
	}

	p, _ := NewParagraph()
	ParagraphSetText(p, "live", Style{})
	if st := Render([]DrawCmd{{Kind: 1, Handle: p, Area: Rect{Width: 40, Height: 10}}}); !st.OK() {
		t.Errorf("Render: %v", st)
	}
	if st := DrawWidget(p, Rect{Width: 4, Height: 1}); !st.OK() {
		t.Errorf("DrawWidget: %v", st)
	}

	if st := CloseTerminal(); !st.OK() {
		t.Errorf("CloseTerminal: %v", st)
	}
	if st := Render(nil); st != StatusTerminalUnavailable {
		t.Errorf("render after close = %v, want terminal unavailable", st)
	}
}

func TestRenderWithoutSessionUnavailable(t *testing.T) {
	initBridge(t)
	if st := Render(nil); st != StatusTerminalUnavailable {
		t.Errorf("status = %v", st)
	}
	if st := EnableRaw(); st != StatusTerminalUnavailable {
		t.Errorf("EnableRaw = %v", st)
	}
}

func TestFeatures(t *testing.T) {
	mask := Features()
	for _, bit := range []uint32{
		FeatScrollbar, FeatCanvas, FeatStyleDumpEx, FeatBatchTableRows,
		FeatBatchListItems, FeatColorHelpers, FeatAxisLabels, FeatSpanSetters,
	} {
		if mask&bit == 0 {
			t.Errorf("feature bit %d missing from mask %08b", bit, mask)
		}
	}
}

func TestManifestCoversSurface(t *testing.T) {
	m := Manifest()
	if !gjson.Valid(m) {
		t.Fatal("manifest is not valid JSON")
	}
	if got := gjson.Get(m, "version").String(); got != Version() {
		t.Errorf("manifest version = %q", got)
	}
	if got := gjson.Get(m, "features").Uint(); uint32(got) != Features() {
		t.Errorf("manifest features = %d", got)
	}

	for group, names := range exports {
		arr := gjson.Get(m, "exports."+group).Array()
		if len(arr) != len(names) {
			t.Errorf("group %s has %d entries, want %d", group, len(arr), len(names))
		}
		listed := make(map[string]bool, len(arr))
		for _, v := range arr {
			listed[v.String()] = true
		}
		for _, name := range names {
			if !listed[name] {
				t.Errorf("export %s missing from manifest group %s", name, group)
			}
		}
	}

	// Spot-check that heavily used exports are declared.
	for _, name := range []string{"HeadlessText", "SetBlock", "WaitEvent", "LayoutSplit"} {
		if !strings.Contains(m, `"`+name+`"`) {
			t.Errorf("manifest missing %s", name)
		}
	}
}

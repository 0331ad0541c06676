package widget

import (
	"strings"
	"testing"

	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
	"github.com/dshills/termbridge/internal/text"
)

// row reads a buffer row back as a plain string.
func row(buf *buffer.Buffer, y int) string {
	w, _ := buf.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := buf.Get(x, y)
		if c.Rune != 0 {
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}

func TestParagraphHello(t *testing.T) {
	p := NewParagraph()
	p.AppendLine(text.Line{{Text: "Hello"}})
	buf := buffer.New(5, 1)
	p.Draw(buf, buf.Area())
	if got := row(buf, 0); got != "Hello" {
		t.Errorf("rendered %q, want %q", got, "Hello")
	}
}

func TestParagraphScrollAndClip(t *testing.T) {
	p := NewParagraph()
	for _, s := range []string{"one", "two", "three"} {
		p.AppendLine(text.Line{{Text: s}})
	}
	p.Scroll = 1
	buf := buffer.New(5, 2)
	p.Draw(buf, buf.Area())
	if got := row(buf, 0); got != "two  " {
		t.Errorf("row 0 = %q, want scrolled content", got)
	}
	if got := row(buf, 1); got != "three" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestParagraphWrap(t *testing.T) {
	p := NewParagraph()
	p.Wrap = true
	p.AppendLine(text.Line{{Text: "abcdef"}})
	buf := buffer.New(3, 2)
	p.Draw(buf, buf.Area())
	if row(buf, 0) != "abc" || row(buf, 1) != "def" {
		t.Errorf("wrap produced %q / %q", row(buf, 0), row(buf, 1))
	}
}

func TestParagraphWrapSkipsOversizedGrapheme(t *testing.T) {
	p := NewParagraph()
	p.Wrap = true
	// 宽 is two cells wide and cannot fit a one-cell row; the text after
	// it still wraps.
	p.AppendLine(text.Line{{Text: "宽ab"}})
	buf := buffer.New(1, 2)
	p.Draw(buf, buf.Area())
	if row(buf, 0) != "a" || row(buf, 1) != "b" {
		t.Errorf("wrap produced %q / %q, want remainder kept", row(buf, 0), row(buf, 1))
	}
}

func TestBlockBordersAndTitle(t *testing.T) {
	p := NewParagraph()
	p.Block = &Block{Borders: BorderAll, Title: text.Line{{Text: "T"}}}
	p.AppendLine(text.Line{{Text: "x"}})
	buf := buffer.New(4, 3)
	p.Draw(buf, buf.Area())
	if buf.Get(0, 0).Rune != '┌' || buf.Get(3, 0).Rune != '┐' {
		t.Errorf("top corners = %q %q", buf.Get(0, 0).Rune, buf.Get(3, 0).Rune)
	}
	if buf.Get(0, 2).Rune != '└' || buf.Get(3, 2).Rune != '┘' {
		t.Errorf("bottom corners = %q %q", buf.Get(0, 2).Rune, buf.Get(3, 2).Rune)
	}
	if buf.Get(1, 0).Rune != 'T' {
		t.Errorf("title cell = %q, want T", buf.Get(1, 0).Rune)
	}
	if buf.Get(1, 1).Rune != 'x' {
		t.Errorf("content cell = %q, want x", buf.Get(1, 1).Rune)
	}
}

func TestBlockInnerCollapsesWhenTooSmall(t *testing.T) {
	b := &Block{Borders: BorderAll, Pad: Padding{Left: 2, Right: 2}}
	inner := b.Inner(geom.NewRect(0, 0, 3, 3))
	if !inner.Empty() {
		t.Errorf("inner = %+v, want empty", inner)
	}
}

func TestBorderTypes(t *testing.T) {
	tests := []struct {
		bt   BorderType
		want rune
	}{
		{BorderPlain, '┌'},
		{BorderRounded, '╭'},
		{BorderDouble, '╔'},
		{BorderThick, '┏'},
	}
	for _, tt := range tests {
		buf := buffer.New(3, 3)
		b := &Block{Borders: BorderAll, Type: tt.bt}
		b.Draw(buf, buf.Area())
		if buf.Get(0, 0).Rune != tt.want {
			t.Errorf("type %d corner = %q, want %q", tt.bt, buf.Get(0, 0).Rune, tt.want)
		}
	}
}

func TestGaugeDefaultLabel(t *testing.T) {
	g := NewGauge()
	g.SetRatio(0.5)
	buf := buffer.New(10, 1)
	g.Draw(buf, buf.Area())
	if !strings.Contains(row(buf, 0), "50%") {
		t.Errorf("gauge row = %q, want default percentage label", row(buf, 0))
	}
}

func TestGaugeLabelRule(t *testing.T) {
	red := style.Style{Fg: style.Named(style.Red)}
	blue := style.Style{Fg: style.Named(style.Blue)}
	g := NewGauge()
	g.SetLabelSpans([]text.Span{{Text: "a", Style: red}, {Text: "b", Style: blue}})
	if g.Label.Text != "ab" || g.Label.Style != red {
		t.Errorf("label = %q/%v, want concatenated under first style", g.Label.Text, g.Label.Style)
	}
}

func TestGaugeRatioClamped(t *testing.T) {
	g := NewGauge()
	g.SetRatio(2.0)
	if g.Ratio != 1.0 {
		t.Errorf("ratio = %f, want clamped to 1", g.Ratio)
	}
	g.SetRatio(-1)
	if g.Ratio != 0 {
		t.Errorf("ratio = %f, want clamped to 0", g.Ratio)
	}
}

func TestLineGauge(t *testing.T) {
	lg := NewLineGauge()
	lg.SetRatio(0.5)
	buf := buffer.New(4, 1)
	lg.Draw(buf, buf.Area())
	if got := row(buf, 0); got != "━━──" {
		t.Errorf("line gauge = %q, want half filled", got)
	}
}

func TestTabsDividerScenario(t *testing.T) {
	red := style.Style{Fg: style.Named(style.Red)}
	blue := style.Style{Fg: style.Named(style.Blue)}
	tb := NewTabs()
	tb.AppendTitle(text.Line{{Text: "A"}})
	tb.AppendTitle(text.Line{{Text: "B"}})
	tb.SetDividerSpans([]text.Span{{Text: "|", Style: red}, {Text: "-", Style: blue}})

	if tb.Divider.Text != "|-" || tb.Divider.Style != red {
		t.Fatalf("divider = %q/%v, want texts joined under first style", tb.Divider.Text, tb.Divider.Style)
	}
	buf := buffer.New(9, 1)
	tb.Draw(buf, buf.Area())
	if got := row(buf, 0); !strings.Contains(got, "A |- B") {
		t.Errorf("tabs row = %q, want divider between titles", got)
	}
}

func TestTabsSingleSpanDividerKeepsStyle(t *testing.T) {
	blue := style.Style{Fg: style.Named(style.Blue)}
	tb := NewTabs()
	tb.SetDividerSpans([]text.Span{{Text: "/", Style: blue}})
	if tb.Divider.Style != blue {
		t.Error("single-span divider lost its own style")
	}
}

func TestListSelectionHighlight(t *testing.T) {
	hl := style.Style{Mods: style.ModReversed}
	l := NewList()
	l.AppendItems([]text.Line{{{Text: "aa"}}, {{Text: "bb"}}})
	l.Selected = 1
	l.HighlightSymbol = ">"
	l.HighlightStyle = hl
	buf := buffer.New(4, 2)
	l.Draw(buf, buf.Area())
	if got := row(buf, 1); got != ">bb " {
		t.Errorf("selected row = %q", got)
	}
	if !buf.Get(1, 1).Style.Mods.Has(style.ModReversed) {
		t.Error("selected row not highlighted")
	}
	if buf.Get(0, 0).Rune == '>' {
		t.Error("unselected row carries highlight symbol")
	}
}

func TestListBottomToTop(t *testing.T) {
	l := NewList()
	l.Direction = BottomToTop
	l.AppendItems([]text.Line{{{Text: "a"}}, {{Text: "b"}}})
	buf := buffer.New(1, 2)
	l.Draw(buf, buf.Area())
	if row(buf, 1) != "a" || row(buf, 0) != "b" {
		t.Errorf("bottom-to-top rows = %q / %q", row(buf, 0), row(buf, 1))
	}
}

func TestTableHeaderAndSelection(t *testing.T) {
	tbl := NewTable()
	tbl.Header = []text.Line{{{Text: "H1"}}, {{Text: "H2"}}}
	tbl.AppendRow([]text.Line{{{Text: "a"}}, {{Text: "b"}}})
	tbl.AppendRow([]text.Line{{{Text: "c"}}, {{Text: "d"}}})
	tbl.Selected = 1
	tbl.HighlightStyle = style.Style{Mods: style.ModBold}
	buf := buffer.New(10, 3)
	tbl.Draw(buf, buf.Area())
	if got := row(buf, 0); !strings.HasPrefix(got, "H1") {
		t.Errorf("header row = %q", got)
	}
	if got := row(buf, 2); !strings.HasPrefix(got, "c") {
		t.Errorf("second data row = %q", got)
	}
	if !buf.Get(0, 2).Style.Mods.Has(style.ModBold) {
		t.Error("selected row not highlighted")
	}
}

func TestSparklineRamp(t *testing.T) {
	s := NewSparkline()
	s.Values = []uint64{0, 4, 8}
	s.Max = 8
	buf := buffer.New(3, 1)
	s.Draw(buf, buf.Area())
	if buf.Get(2, 0).Rune != '█' {
		t.Errorf("max value cell = %q, want full block", buf.Get(2, 0).Rune)
	}
	if buf.Get(1, 0).Rune != '▄' {
		t.Errorf("half value cell = %q, want half block", buf.Get(1, 0).Rune)
	}
	if buf.Get(0, 0).Rune != ' ' {
		t.Errorf("zero value cell = %q, want blank", buf.Get(0, 0).Rune)
	}
}

func TestSparklineShowsMostRecent(t *testing.T) {
	s := NewSparkline()
	s.Values = []uint64{8, 8, 8, 0, 0}
	s.Max = 8
	buf := buffer.New(2, 1)
	s.Draw(buf, buf.Area())
	if buf.Get(0, 0).Rune == '█' {
		t.Error("sparkline should window to the most recent values")
	}
}

func TestBarChartHeights(t *testing.T) {
	bc := NewBarChart()
	bc.Values = []uint64{8, 4}
	bc.Labels = []string{"a", "b"}
	buf := buffer.New(3, 3)
	bc.Draw(buf, buf.Area())
	// Two chart rows plus one label row. The max bar fills both rows.
	if buf.Get(0, 0).Rune != '█' || buf.Get(0, 1).Rune != '█' {
		t.Errorf("max bar cells = %q %q", buf.Get(0, 0).Rune, buf.Get(0, 1).Rune)
	}
	if buf.Get(2, 0).Rune != ' ' || buf.Get(2, 1).Rune != '█' {
		t.Errorf("half bar cells = %q %q", buf.Get(2, 0).Rune, buf.Get(2, 1).Rune)
	}
	if buf.Get(0, 2).Rune != 'a' {
		t.Errorf("label cell = %q", buf.Get(0, 2).Rune)
	}
}

func TestScrollbarThumb(t *testing.T) {
	s := NewScrollbar()
	s.ContentLen = 100
	s.Position = 99
	buf := buffer.New(1, 4)
	s.Draw(buf, buf.Area())
	if buf.Get(0, 3).Rune != '█' {
		t.Errorf("thumb at end cell = %q", buf.Get(0, 3).Rune)
	}
	if buf.Get(0, 0).Rune != '│' {
		t.Errorf("track cell = %q", buf.Get(0, 0).Rune)
	}
}

func TestClearBlanksArea(t *testing.T) {
	buf := buffer.New(2, 1)
	buf.Set(0, 0, buffer.Cell{Rune: 'x', Style: style.Style{Mods: style.ModBold}})
	NewClear().Draw(buf, buf.Area())
	c := buf.Get(0, 0)
	if c.Rune != ' ' || c.Style != style.Default() {
		t.Errorf("cell after clear = %+v", c)
	}
}

func TestCanvasBrailleDot(t *testing.T) {
	c := NewCanvas()
	c.Points = []CanvasPoints{{Coords: [][2]float64{{0, 1}}}}
	buf := buffer.New(2, 2)
	c.Draw(buf, buf.Area())
	got := buf.Get(0, 0).Rune
	if got < 0x2800 || got > 0x28FF {
		t.Errorf("top-left cell = %#x, want a braille rune", got)
	}
}

func TestChartAxesAndPoints(t *testing.T) {
	ch := NewChart()
	ch.XAxis = Axis{Min: 0, Max: 1, HasBounds: true}
	ch.YAxis = Axis{Min: 0, Max: 1, HasBounds: true}
	ch.Datasets = []Dataset{{Type: GraphScatter, Points: [][2]float64{{1, 1}}}}
	buf := buffer.New(5, 4)
	ch.Draw(buf, buf.Area())
	if buf.Get(0, 3).Rune != '└' {
		t.Errorf("origin cell = %q, want axis corner", buf.Get(0, 3).Rune)
	}
	if buf.Get(4, 0).Rune != '•' {
		t.Errorf("point cell = %q, want plotted dot", buf.Get(4, 0).Rune)
	}
}

func TestChartEqualExplicitBoundsWiden(t *testing.T) {
	ch := NewChart()
	ch.XAxis = Axis{Min: 2, Max: 2, HasBounds: true}
	ch.YAxis = Axis{Min: 5, Max: 5, HasBounds: true}
	ch.Datasets = []Dataset{{Type: GraphScatter, Points: [][2]float64{{2, 5}}}}
	buf := buffer.New(5, 4)
	ch.Draw(buf, buf.Area())
	// The point sits at the widened range's origin instead of projecting
	// through a zero-width range.
	if buf.Get(1, 2).Rune != '•' {
		t.Errorf("point cell = %q, want plotted dot at the origin", buf.Get(1, 2).Rune)
	}
}

func TestReserveKeepsContent(t *testing.T) {
	l := NewList()
	l.AppendItem(text.Line{{Text: "keep"}})
	l.Reserve(64)
	if len(l.Items) != 1 || l.Items[0].Plain() != "keep" {
		t.Error("Reserve dropped existing items")
	}
	if cap(l.Items) < 64 {
		t.Errorf("cap = %d, want >= 64", cap(l.Items))
	}
}

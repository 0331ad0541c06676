package widget

import (
	"fmt"

	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
	"github.com/dshills/termbridge/internal/text"
)

// Gauge renders a filled horizontal bar with a centered label.
type Gauge struct {
	Ratio      float64 // clamped to [0, 1] on set
	Label      text.Span
	HasLabel   bool
	Block      *Block
	GaugeStyle style.Style
	LabelStyle style.Style
}

// NewGauge returns a gauge at zero.
func NewGauge() *Gauge { return &Gauge{} }

// SetRatio clamps and stores the fill ratio.
func (g *Gauge) SetRatio(r float64) {
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	g.Ratio = r
}

// SetLabelSpans ingests the label under the label rule: texts concatenate
// into one run styled by the first span.
func (g *Gauge) SetLabelSpans(spans []text.Span) {
	g.Label = text.Label(spans)
	g.HasLabel = true
}

// label returns the configured label or the default percentage.
func (g *Gauge) label() text.Span {
	if g.HasLabel {
		return g.Label
	}
	return text.Span{Text: fmt.Sprintf("%d%%", int(g.Ratio*100)), Style: g.LabelStyle}
}

// Draw paints the gauge into buf.
func (g *Gauge) Draw(buf *buffer.Buffer, area geom.Rect) {
	inner := drawBlock(g.Block, buf, area)
	if inner.Empty() {
		return
	}
	filled := int(g.Ratio*float64(inner.Width) + 0.5)
	for y := inner.Y; y < inner.Bottom(); y++ {
		for x := inner.X; x < inner.Right(); x++ {
			c := buffer.Cell{Rune: ' ', Style: g.GaugeStyle}
			if x-inner.X < filled {
				c.Style.Mods = c.Style.Mods.With(style.ModReversed)
			}
			buf.Set(x, y, c)
		}
	}
	lbl := g.label()
	row := inner.Y + inner.Height/2
	mid := geom.NewRect(inner.X, row, inner.Width, 1)
	buf.SetLine(mid, row, text.Line{lbl}, buffer.AlignCenter)
}

// LineGauge renders a one-line ratio bar: label, then filled and unfilled
// track runes.
type LineGauge struct {
	Ratio      float64
	Label      text.Span
	HasLabel   bool
	Block      *Block
	GaugeStyle style.Style
}

// NewLineGauge returns a line gauge at zero.
func NewLineGauge() *LineGauge { return &LineGauge{} }

// SetRatio clamps and stores the fill ratio.
func (lg *LineGauge) SetRatio(r float64) {
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	lg.Ratio = r
}

// SetLabelSpans ingests the label under the label rule.
func (lg *LineGauge) SetLabelSpans(spans []text.Span) {
	lg.Label = text.Label(spans)
	lg.HasLabel = true
}

// Draw paints the line gauge into buf.
func (lg *LineGauge) Draw(buf *buffer.Buffer, area geom.Rect) {
	inner := drawBlock(lg.Block, buf, area)
	if inner.Empty() {
		return
	}
	y := inner.Y
	x := inner.X
	if lg.HasLabel && lg.Label.Text != "" {
		n := buf.SetSpan(x, y, lg.Label, inner.Width)
		x += n + 1
	}
	track := inner.Right() - x
	if track <= 0 {
		return
	}
	filled := int(lg.Ratio*float64(track) + 0.5)
	for i := 0; i < track; i++ {
		r := '─'
		if i < filled {
			r = '━'
		}
		buf.Set(x+i, y, buffer.Cell{Rune: r, Style: lg.GaugeStyle})
	}
}

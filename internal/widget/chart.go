package widget

import (
	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
	"github.com/dshills/termbridge/internal/text"
)

// Eighth-block ramp used by bar charts and sparklines, lowest to full.
var blockRamp = [...]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BarChart renders vertical bars with values on top and labels underneath.
type BarChart struct {
	Values     []uint64
	Labels     []string
	Block      *Block
	BarWidth   int
	BarGap     int
	BarStyle   style.Style
	ValueStyle style.Style
	LabelStyle style.Style
}

// NewBarChart returns an empty bar chart with 1-cell bars and gaps.
func NewBarChart() *BarChart { return &BarChart{BarWidth: 1, BarGap: 1} }

// Reserve pre-sizes value and label storage for subsequent appends.
func (bc *BarChart) Reserve(n int) {
	if n > cap(bc.Values) {
		vals := make([]uint64, len(bc.Values), n)
		copy(vals, bc.Values)
		bc.Values = vals
		labels := make([]string, len(bc.Labels), n)
		copy(labels, bc.Labels)
		bc.Labels = labels
	}
}

// Draw paints the bar chart into buf.
func (bc *BarChart) Draw(buf *buffer.Buffer, area geom.Rect) {
	inner := drawBlock(bc.Block, buf, area)
	if inner.Empty() || len(bc.Values) == 0 {
		return
	}
	hasLabels := len(bc.Labels) > 0
	chartH := inner.Height
	if hasLabels {
		chartH--
	}
	if chartH <= 0 {
		return
	}
	var maxV uint64 = 1
	for _, v := range bc.Values {
		if v > maxV {
			maxV = v
		}
	}
	bw := max(bc.BarWidth, 1)
	gap := max(bc.BarGap, 0)
	x := inner.X
	for i, v := range bc.Values {
		if x+bw > inner.Right() {
			break
		}
		eighths := int(v * uint64(chartH) * 8 / maxV)
		for row := 0; row < chartH; row++ {
			y := inner.Y + chartH - 1 - row
			have := eighths - row*8
			if have <= 0 {
				continue
			}
			r := blockRamp[min(have, 8)-1]
			for dx := 0; dx < bw; dx++ {
				buf.Set(x+dx, y, buffer.Cell{Rune: r, Style: bc.BarStyle})
			}
		}
		if hasLabels && i < len(bc.Labels) {
			la := geom.NewRect(x, inner.Bottom()-1, bw, 1)
			buf.SetLine(la, inner.Bottom()-1, text.Line{{Text: bc.Labels[i], Style: bc.LabelStyle}}, buffer.AlignCenter)
		}
		x += bw + gap
	}
}

// Sparkline renders values as a compact eighth-block strip.
type Sparkline struct {
	Values []uint64
	Max    uint64 // 0 = derive from data
	Block  *Block
	Style  style.Style
}

// NewSparkline returns an empty sparkline.
func NewSparkline() *Sparkline { return &Sparkline{} }

// Reserve pre-sizes the value storage for subsequent appends.
func (s *Sparkline) Reserve(n int) {
	if n > cap(s.Values) {
		vals := make([]uint64, len(s.Values), n)
		copy(vals, s.Values)
		s.Values = vals
	}
}

// Draw paints the sparkline into buf. The most recent values are shown when
// there are more values than columns.
func (s *Sparkline) Draw(buf *buffer.Buffer, area geom.Rect) {
	inner := drawBlock(s.Block, buf, area)
	if inner.Empty() || len(s.Values) == 0 {
		return
	}
	maxV := s.Max
	if maxV == 0 {
		for _, v := range s.Values {
			if v > maxV {
				maxV = v
			}
		}
	}
	if maxV == 0 {
		maxV = 1
	}
	vals := s.Values
	if len(vals) > inner.Width {
		vals = vals[len(vals)-inner.Width:]
	}
	for i, v := range vals {
		if v > maxV {
			v = maxV
		}
		eighths := int(v * uint64(inner.Height) * 8 / maxV)
		for row := 0; row < inner.Height; row++ {
			y := inner.Bottom() - 1 - row
			have := eighths - row*8
			if have <= 0 {
				continue
			}
			buf.Set(inner.X+i, y, buffer.Cell{Rune: blockRamp[min(have, 8)-1], Style: s.Style})
		}
	}
}

// GraphType selects how a chart dataset renders.
type GraphType int

const (
	GraphLine GraphType = iota
	GraphScatter
	GraphBar
)

// Dataset is one named series of (x, y) points.
type Dataset struct {
	Name   string
	Points [][2]float64
	Style  style.Style
	Type   GraphType
}

// Axis describes one chart axis.
type Axis struct {
	Title     text.Line
	Min, Max  float64
	HasBounds bool
	Labels    []text.Line
	Style     style.Style
}

// Chart renders datasets against x/y axes at cell resolution.
type Chart struct {
	Datasets []Dataset
	XAxis    Axis
	YAxis    Axis
	Block    *Block
	Style    style.Style
}

// NewChart returns an empty chart.
func NewChart() *Chart { return &Chart{} }

// Reserve pre-sizes the dataset storage for subsequent appends.
func (c *Chart) Reserve(n int) {
	if n > cap(c.Datasets) {
		ds := make([]Dataset, len(c.Datasets), n)
		copy(ds, c.Datasets)
		c.Datasets = ds
	}
}

// bounds returns the effective axis range, derived from data when unset.
func (c *Chart) bounds(axis Axis, pick func(p [2]float64) float64) (float64, float64) {
	if axis.HasBounds {
		lo, hi := axis.Min, axis.Max
		if hi <= lo {
			hi = lo + 1
		}
		return lo, hi
	}
	lo, hi := 0.0, 1.0
	first := true
	for _, ds := range c.Datasets {
		for _, p := range ds.Points {
			v := pick(p)
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

// Draw paints the chart into buf.
func (c *Chart) Draw(buf *buffer.Buffer, area geom.Rect) {
	inner := drawBlock(c.Block, buf, area)
	if inner.Empty() {
		return
	}
	plot := inner
	// Reserve a column for the y axis and a row for the x axis.
	if plot.Width > 1 {
		plot = geom.NewRect(plot.X+1, plot.Y, plot.Width-1, plot.Height)
	}
	if plot.Height > 1 {
		plot = geom.NewRect(plot.X, plot.Y, plot.Width, plot.Height-1)
	}
	axisStyle := style.Merge(c.Style, c.YAxis.Style)
	for y := plot.Y; y < plot.Bottom(); y++ {
		buf.Set(inner.X, y, buffer.Cell{Rune: '│', Style: axisStyle})
	}
	axisStyle = style.Merge(c.Style, c.XAxis.Style)
	for x := plot.X; x < plot.Right(); x++ {
		buf.Set(x, plot.Bottom(), buffer.Cell{Rune: '─', Style: axisStyle})
	}
	buf.Set(inner.X, plot.Bottom(), buffer.Cell{Rune: '└', Style: axisStyle})

	if len(c.XAxis.Labels) > 0 {
		// Distribute x labels across the bottom row, first at the left
		// edge, last at the right.
		row := plot.Bottom()
		n := len(c.XAxis.Labels)
		for i, lbl := range c.XAxis.Labels {
			lx := plot.X
			if n > 1 {
				lx = plot.X + i*(plot.Width-1)/(n-1) - lbl.Width()/2
			}
			if lx < plot.X {
				lx = plot.X
			}
			la := geom.NewRect(lx, row, plot.Right()-lx, 1)
			buf.SetLine(la, row, lbl, buffer.AlignLeft)
		}
	}
	if plot.Empty() {
		return
	}

	xlo, xhi := c.bounds(c.XAxis, func(p [2]float64) float64 { return p[0] })
	ylo, yhi := c.bounds(c.YAxis, func(p [2]float64) float64 { return p[1] })
	for _, ds := range c.Datasets {
		var prevX, prevY int
		havePrev := false
		for _, p := range ds.Points {
			px := int((p[0] - xlo) / (xhi - xlo) * float64(plot.Width-1))
			py := int((p[1] - ylo) / (yhi - ylo) * float64(plot.Height-1))
			if px < 0 || px >= plot.Width || py < 0 || py >= plot.Height {
				havePrev = false
				continue
			}
			x := plot.X + px
			y := plot.Bottom() - 1 - py
			switch ds.Type {
			case GraphBar:
				for by := y; by < plot.Bottom(); by++ {
					buf.Set(x, by, buffer.Cell{Rune: '█', Style: ds.Style})
				}
			case GraphLine:
				buf.Set(x, y, buffer.Cell{Rune: '•', Style: ds.Style})
				if havePrev {
					drawSegment(buf, prevX, prevY, x, y, ds.Style)
				}
				prevX, prevY = x, y
				havePrev = true
			default:
				buf.Set(x, y, buffer.Cell{Rune: '•', Style: ds.Style})
			}
		}
	}
}

// drawSegment connects two plotted points with a simple Bresenham walk.
func drawSegment(buf *buffer.Buffer, x0, y0, x1, y1 int, st style.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		buf.Set(x, y, buffer.Cell{Rune: '•', Style: st})
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

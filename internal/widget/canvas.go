package widget

import (
	"math"

	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
)

// CanvasLine is a line segment in canvas coordinates.
type CanvasLine struct {
	X1, Y1, X2, Y2 float64
	Style          style.Style
}

// CanvasRect is an axis-aligned rectangle outline in canvas coordinates.
type CanvasRect struct {
	X, Y, W, H float64
	Style      style.Style
}

// CanvasPoints is a set of points sharing one style.
type CanvasPoints struct {
	Coords [][2]float64
	Style  style.Style
}

// Canvas paints geometric shapes into a Braille 2x4 sub-cell grid mapped
// from user-defined x/y bounds.
type Canvas struct {
	XMin, XMax float64
	YMin, YMax float64
	Background style.Color
	Block      *Block
	Lines      []CanvasLine
	Rects      []CanvasRect
	Points     []CanvasPoints
}

// NewCanvas returns a canvas with unit bounds.
func NewCanvas() *Canvas { return &Canvas{XMax: 1, YMax: 1} }

// Reserve pre-sizes the shape storage for subsequent appends.
func (c *Canvas) Reserve(n int) {
	if n > cap(c.Lines) {
		lines := make([]CanvasLine, len(c.Lines), n)
		copy(lines, c.Lines)
		c.Lines = lines
	}
}

// Braille dot bit for sub-cell (dx 0-1, dy 0-3).
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// painter accumulates braille dots per cell during a draw pass.
type painter struct {
	area   geom.Rect
	xmin   float64
	xspan  float64
	ymin   float64
	yspan  float64
	dots   map[[2]int]rune
	styles map[[2]int]style.Style
}

func (p *painter) plot(x, y float64, st style.Style) {
	if p.xspan <= 0 || p.yspan <= 0 {
		return
	}
	// Sub-cell resolution: 2 columns, 4 rows per cell. The y axis points
	// up in canvas coordinates.
	gx := (x - p.xmin) / p.xspan * float64(p.area.Width*2-1)
	gy := (1 - (y-p.ymin)/p.yspan) * float64(p.area.Height*4-1)
	ix, iy := int(math.Round(gx)), int(math.Round(gy))
	if ix < 0 || iy < 0 || ix >= p.area.Width*2 || iy >= p.area.Height*4 {
		return
	}
	cell := [2]int{p.area.X + ix/2, p.area.Y + iy/4}
	p.dots[cell] |= brailleDots[iy%4][ix%2]
	p.styles[cell] = st
}

func (p *painter) line(l CanvasLine) {
	steps := int(math.Max(math.Abs(l.X2-l.X1)/p.xspan*float64(p.area.Width*2),
		math.Abs(l.Y2-l.Y1)/p.yspan*float64(p.area.Height*4)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p.plot(l.X1+(l.X2-l.X1)*t, l.Y1+(l.Y2-l.Y1)*t, l.Style)
	}
}

// Draw paints the canvas into buf.
func (c *Canvas) Draw(buf *buffer.Buffer, area geom.Rect) {
	inner := drawBlock(c.Block, buf, area)
	if inner.Empty() {
		return
	}
	if !c.Background.IsReset() {
		buf.Fill(inner, buffer.Cell{Rune: ' ', Style: style.Style{Bg: c.Background}})
	}
	p := &painter{
		area:   inner,
		xmin:   c.XMin,
		xspan:  c.XMax - c.XMin,
		ymin:   c.YMin,
		yspan:  c.YMax - c.YMin,
		dots:   make(map[[2]int]rune),
		styles: make(map[[2]int]style.Style),
	}
	for _, l := range c.Lines {
		p.line(l)
	}
	for _, r := range c.Rects {
		p.line(CanvasLine{X1: r.X, Y1: r.Y, X2: r.X + r.W, Y2: r.Y, Style: r.Style})
		p.line(CanvasLine{X1: r.X, Y1: r.Y + r.H, X2: r.X + r.W, Y2: r.Y + r.H, Style: r.Style})
		p.line(CanvasLine{X1: r.X, Y1: r.Y, X2: r.X, Y2: r.Y + r.H, Style: r.Style})
		p.line(CanvasLine{X1: r.X + r.W, Y1: r.Y, X2: r.X + r.W, Y2: r.Y + r.H, Style: r.Style})
	}
	for _, ps := range c.Points {
		for _, pt := range ps.Coords {
			p.plot(pt[0], pt[1], ps.Style)
		}
	}
	for cell, dots := range p.dots {
		st := p.styles[cell]
		if !c.Background.IsReset() {
			st.Bg = c.Background
		}
		buf.Set(cell[0], cell[1], buffer.Cell{Rune: 0x2800 + dots, Style: st})
	}
}

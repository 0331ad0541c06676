// Package buffer provides the cell grid widgets paint into and snapshots
// derive from.
package buffer

import (
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
	"github.com/dshills/termbridge/internal/text"
)

// Cell is one terminal cell. Rune 0 marks the continuation cell of a wide
// rune; such cells render as nothing and snapshot as the empty codepoint.
type Cell struct {
	Rune  rune
	Style style.Style
}

// Empty returns the blank cell: a space with the default style.
func Empty() Cell { return Cell{Rune: ' '} }

// Buffer is a Width×Height grid of cells in row-major order.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// New creates a buffer filled with blank cells. Negative dimensions clamp
// to zero.
func New(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{width: width, height: height, cells: make([]Cell, width*height)}
	b.Reset()
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) { return b.width, b.height }

// Area returns the buffer's bounds as a rect at the origin.
func (b *Buffer) Area() geom.Rect { return geom.NewRect(0, 0, b.width, b.height) }

// Reset fills the whole buffer with blank cells.
func (b *Buffer) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty()
	}
}

// Get returns the cell at (x, y), or a blank cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Empty()
	}
	return b.cells[y*b.width+x]
}

// Set writes the cell at (x, y). Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, c Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = c
}

// SetStyle restyles the cell at (x, y) keeping its rune.
func (b *Buffer) SetStyle(x, y int, st style.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x].Style = st
}

// Fill sets every cell of area (clipped to the buffer) to c.
func (b *Buffer) Fill(area geom.Rect, c Cell) {
	area = area.ClipTo(b.Area())
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			b.cells[y*b.width+x] = c
		}
	}
}

// SetString writes s starting at (x, y) with the given style, clipped to
// maxWidth cells and the buffer bounds. Wide runes occupy two cells with a
// zero-rune continuation cell; a wide rune that would straddle the clip
// edge is dropped. Returns the number of cells written.
func (b *Buffer) SetString(x, y int, s string, st style.Style, maxWidth int) int {
	if y < 0 || y >= b.height || maxWidth <= 0 {
		return 0
	}
	cx := x
	limit := x + maxWidth
	if limit > b.width {
		limit = b.width
	}
	for _, g := range text.Graphemes(s) {
		if cx+g.Width > limit {
			break
		}
		b.Set(cx, y, Cell{Rune: g.Rune, Style: st})
		for i := 1; i < g.Width; i++ {
			b.Set(cx+i, y, Cell{Rune: 0, Style: st})
		}
		cx += g.Width
	}
	return cx - x
}

// SetSpan writes one styled span; see SetString.
func (b *Buffer) SetSpan(x, y int, sp text.Span, maxWidth int) int {
	return b.SetString(x, y, sp.Text, sp.Style, maxWidth)
}

// Alignment positions a line within its available width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// SetLine writes a line of spans into area row y with the given alignment,
// clipped to the area. Returns the number of cells written.
func (b *Buffer) SetLine(area geom.Rect, y int, line text.Line, align Alignment) int {
	if area.Empty() || y < area.Y || y >= area.Bottom() {
		return 0
	}
	w := line.Width()
	x := area.X
	switch align {
	case AlignCenter:
		x += (area.Width - w) / 2
	case AlignRight:
		x += area.Width - w
	}
	if x < area.X {
		x = area.X
	}
	written := 0
	for _, sp := range line {
		n := b.SetSpan(x+written, y, sp, area.Right()-(x+written))
		written += n
		if x+written >= area.Right() {
			break
		}
	}
	return written
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{width: b.width, height: b.height, cells: make([]Cell, len(b.cells))}
	copy(out.cells, b.cells)
	return out
}

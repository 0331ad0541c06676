package widget

import (
	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
)

// Orientation places a scrollbar along an edge.
type Orientation int

const (
	VerticalRight Orientation = iota
	VerticalLeft
	HorizontalBottom
	HorizontalTop
)

// Scrollbar renders a track with a proportional thumb.
type Scrollbar struct {
	Orient     Orientation
	ContentLen int
	Position   int
	Block      *Block
	Style      style.Style
	ThumbStyle style.Style
}

// NewScrollbar returns a vertical scrollbar at position zero.
func NewScrollbar() *Scrollbar { return &Scrollbar{} }

// Draw paints the scrollbar into buf.
func (s *Scrollbar) Draw(buf *buffer.Buffer, area geom.Rect) {
	inner := drawBlock(s.Block, buf, area)
	if inner.Empty() || s.ContentLen <= 0 {
		return
	}
	vertical := s.Orient == VerticalRight || s.Orient == VerticalLeft
	track := inner.Height
	if !vertical {
		track = inner.Width
	}
	if track <= 0 {
		return
	}
	thumb := track * track / max(s.ContentLen, 1)
	if thumb < 1 {
		thumb = 1
	}
	if thumb > track {
		thumb = track
	}
	maxPos := s.ContentLen - 1
	pos := min(max(s.Position, 0), maxPos)
	offset := 0
	if maxPos > 0 {
		offset = pos * (track - thumb) / maxPos
	}

	x, y := inner.X, inner.Y
	if s.Orient == VerticalRight {
		x = inner.Right() - 1
	}
	if s.Orient == HorizontalBottom {
		y = inner.Bottom() - 1
	}
	for i := 0; i < track; i++ {
		r := '│'
		st := s.Style
		if !vertical {
			r = '─'
		}
		if i >= offset && i < offset+thumb {
			r = '█'
			st = s.ThumbStyle
		}
		if vertical {
			buf.Set(x, inner.Y+i, buffer.Cell{Rune: r, Style: st})
		} else {
			buf.Set(inner.X+i, y, buffer.Cell{Rune: r, Style: st})
		}
	}
}

// Clear resets every cell of its area to the blank cell.
type Clear struct{}

// NewClear returns the clear widget.
func NewClear() *Clear { return &Clear{} }

// Draw blanks the area.
func (c *Clear) Draw(buf *buffer.Buffer, area geom.Rect) {
	buf.Fill(area, buffer.Empty())
}

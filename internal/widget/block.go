package widget

import (
	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
	"github.com/dshills/termbridge/internal/text"
)

// Border is a bit set of frame sides.
type Border uint8

const (
	BorderNone   Border = 0
	BorderLeft   Border = 1 << 0
	BorderRight  Border = 1 << 1
	BorderTop    Border = 1 << 2
	BorderBottom Border = 1 << 3
	BorderAll           = BorderLeft | BorderRight | BorderTop | BorderBottom
)

// BorderType selects the line style used for borders.
type BorderType uint32

const (
	BorderPlain BorderType = iota
	BorderRounded
	BorderDouble
	BorderThick
)

// borderSet holds the runes of one border style.
type borderSet struct {
	h, v           rune
	tl, tr, bl, br rune
}

var borderSets = map[BorderType]borderSet{
	BorderPlain:   {'─', '│', '┌', '┐', '└', '┘'},
	BorderRounded: {'─', '│', '╭', '╮', '╰', '╯'},
	BorderDouble:  {'═', '║', '╔', '╗', '╚', '╝'},
	BorderThick:   {'━', '┃', '┏', '┓', '┗', '┛'},
}

// Padding is the per-side inner padding of a block.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Block is the optional frame decoration around a widget: borders, padding
// and a styled title line.
type Block struct {
	Borders    Border
	Type       BorderType
	Pad        Padding
	Title      text.Line
	TitleAlign buffer.Alignment
	Style      style.Style
}

// Inner returns the content area left inside borders and padding. It never
// goes negative; an area too small for its decoration collapses to zero.
func (b *Block) Inner(area geom.Rect) geom.Rect {
	if b == nil {
		return area
	}
	l, t, r, bo := b.Pad.Left, b.Pad.Top, b.Pad.Right, b.Pad.Bottom
	if b.Borders&BorderLeft != 0 {
		l++
	}
	if b.Borders&BorderTop != 0 {
		t++
	}
	if b.Borders&BorderRight != 0 {
		r++
	}
	if b.Borders&BorderBottom != 0 {
		bo++
	}
	return area.Shrink(l, t, r, bo)
}

// Draw paints the borders and title into buf, clipped to area.
func (b *Block) Draw(buf *buffer.Buffer, area geom.Rect) {
	if b == nil || area.Empty() {
		return
	}
	set, ok := borderSets[b.Type]
	if !ok {
		set = borderSets[BorderPlain]
	}
	st := b.Style
	x1, y1 := area.X, area.Y
	x2, y2 := area.Right()-1, area.Bottom()-1

	if b.Borders&BorderTop != 0 {
		for x := x1; x <= x2; x++ {
			buf.Set(x, y1, buffer.Cell{Rune: set.h, Style: st})
		}
	}
	if b.Borders&BorderBottom != 0 {
		for x := x1; x <= x2; x++ {
			buf.Set(x, y2, buffer.Cell{Rune: set.h, Style: st})
		}
	}
	if b.Borders&BorderLeft != 0 {
		for y := y1; y <= y2; y++ {
			buf.Set(x1, y, buffer.Cell{Rune: set.v, Style: st})
		}
	}
	if b.Borders&BorderRight != 0 {
		for y := y1; y <= y2; y++ {
			buf.Set(x2, y, buffer.Cell{Rune: set.v, Style: st})
		}
	}
	if b.Borders&BorderTop != 0 && b.Borders&BorderLeft != 0 {
		buf.Set(x1, y1, buffer.Cell{Rune: set.tl, Style: st})
	}
	if b.Borders&BorderTop != 0 && b.Borders&BorderRight != 0 {
		buf.Set(x2, y1, buffer.Cell{Rune: set.tr, Style: st})
	}
	if b.Borders&BorderBottom != 0 && b.Borders&BorderLeft != 0 {
		buf.Set(x1, y2, buffer.Cell{Rune: set.bl, Style: st})
	}
	if b.Borders&BorderBottom != 0 && b.Borders&BorderRight != 0 {
		buf.Set(x2, y2, buffer.Cell{Rune: set.br, Style: st})
	}

	if len(b.Title) > 0 && area.Height > 0 {
		// Title sits on the top row inside the corner cells.
		tx := x1
		tw := area.Width
		if b.Borders&BorderLeft != 0 {
			tx++
			tw--
		}
		if b.Borders&BorderRight != 0 {
			tw--
		}
		if tw > 0 {
			titleArea := geom.NewRect(tx, y1, tw, 1)
			buf.SetLine(titleArea, y1, b.Title, b.TitleAlign)
		}
	}
}

// drawBlock paints an optional block and returns the content area.
func drawBlock(b *Block, buf *buffer.Buffer, area geom.Rect) geom.Rect {
	if b == nil {
		return area
	}
	b.Draw(buf, area)
	return b.Inner(area)
}

package widget

import (
	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
	"github.com/dshills/termbridge/internal/text"
)

// ListDirection controls item flow.
type ListDirection int

const (
	TopToBottom ListDirection = iota
	BottomToTop
)

// List renders selectable items, one line each.
type List struct {
	Items           []text.Line
	Block           *Block
	Selected        int // -1 when nothing is selected
	Offset          int
	Direction       ListDirection
	HighlightStyle  style.Style
	HighlightSymbol string
}

// NewList returns an empty list with no selection.
func NewList() *List { return &List{Selected: -1} }

// Reserve pre-sizes the item storage for subsequent appends.
func (l *List) Reserve(n int) {
	if n > cap(l.Items) {
		items := make([]text.Line, len(l.Items), n)
		copy(items, l.Items)
		l.Items = items
	}
}

// AppendItem adds one item; spans keep their own styles (line rule).
func (l *List) AppendItem(line text.Line) { l.Items = append(l.Items, line) }

// AppendItems adds items in bulk.
func (l *List) AppendItems(lines []text.Line) { l.Items = append(l.Items, lines...) }

// Draw paints the list into buf.
func (l *List) Draw(buf *buffer.Buffer, area geom.Rect) {
	inner := drawBlock(l.Block, buf, area)
	if inner.Empty() {
		return
	}
	symW := text.Width(l.HighlightSymbol)
	for row := 0; row < inner.Height; row++ {
		idx := l.Offset + row
		if idx < 0 || idx >= len(l.Items) {
			break
		}
		y := inner.Y + row
		if l.Direction == BottomToTop {
			y = inner.Bottom() - 1 - row
		}
		x := inner.X
		selected := idx == l.Selected
		if selected && symW > 0 {
			buf.SetString(x, y, l.HighlightSymbol, l.HighlightStyle, inner.Width)
		}
		itemArea := geom.NewRect(inner.X+symW, y, inner.Width-symW, 1)
		if symW == 0 {
			itemArea = geom.NewRect(inner.X, y, inner.Width, 1)
		}
		buf.SetLine(itemArea, y, l.Items[idx], buffer.AlignLeft)
		if selected {
			for cx := inner.X; cx < inner.Right(); cx++ {
				c := buf.Get(cx, y)
				buf.SetStyle(cx, y, style.Merge(c.Style, l.HighlightStyle))
			}
		}
	}
}

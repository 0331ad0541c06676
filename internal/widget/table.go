package widget

import (
	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
	"github.com/dshills/termbridge/internal/text"
)

// Table renders a header row plus data rows in constraint-sized columns.
type Table struct {
	Header         []text.Line
	Rows           [][]text.Line
	Block          *Block
	Widths         []geom.Constraint // empty = divide evenly
	ColumnSpacing  int
	Selected       int // -1 when nothing is selected
	HighlightStyle style.Style
	HeaderStyle    style.Style
}

// NewTable returns an empty table with no selection.
func NewTable() *Table { return &Table{Selected: -1, ColumnSpacing: 1} }

// Reserve pre-sizes the row storage for subsequent appends.
func (t *Table) Reserve(n int) {
	if n > cap(t.Rows) {
		rows := make([][]text.Line, len(t.Rows), n)
		copy(rows, t.Rows)
		t.Rows = rows
	}
}

// AppendRow adds one row of cells; cell spans keep their styles (line rule).
func (t *Table) AppendRow(cells []text.Line) { t.Rows = append(t.Rows, cells) }

// AppendRows adds rows in bulk.
func (t *Table) AppendRows(rows [][]text.Line) { t.Rows = append(t.Rows, rows...) }

// columnCount is the widest row or header.
func (t *Table) columnCount() int {
	n := len(t.Header)
	for _, r := range t.Rows {
		if len(r) > n {
			n = len(r)
		}
	}
	if len(t.Widths) > n {
		n = len(t.Widths)
	}
	return n
}

// columns computes the column rects inside the content area.
func (t *Table) columns(inner geom.Rect) []geom.Rect {
	n := t.columnCount()
	if n == 0 {
		return nil
	}
	cs := t.Widths
	if len(cs) == 0 {
		cs = make([]geom.Constraint, n)
		for i := range cs {
			cs[i] = geom.PercentOf(100 / n)
		}
	}
	return geom.Split(inner, geom.Horizontal, cs, t.ColumnSpacing, geom.Margin{})
}

// Draw paints the table into buf.
func (t *Table) Draw(buf *buffer.Buffer, area geom.Rect) {
	inner := drawBlock(t.Block, buf, area)
	if inner.Empty() {
		return
	}
	cols := t.columns(inner)
	if len(cols) == 0 {
		return
	}
	y := inner.Y
	if len(t.Header) > 0 {
		for ci, cell := range t.Header {
			if ci >= len(cols) {
				break
			}
			ca := geom.NewRect(cols[ci].X, y, cols[ci].Width, 1)
			buf.SetLine(ca, y, cell, buffer.AlignLeft)
		}
		for cx := inner.X; cx < inner.Right(); cx++ {
			c := buf.Get(cx, y)
			buf.SetStyle(cx, y, style.Merge(c.Style, t.HeaderStyle))
		}
		y++
	}
	for ri, row := range t.Rows {
		if y >= inner.Bottom() {
			break
		}
		for ci, cell := range row {
			if ci >= len(cols) {
				break
			}
			ca := geom.NewRect(cols[ci].X, y, cols[ci].Width, 1)
			buf.SetLine(ca, y, cell, buffer.AlignLeft)
		}
		if ri == t.Selected {
			for cx := inner.X; cx < inner.Right(); cx++ {
				c := buf.Get(cx, y)
				buf.SetStyle(cx, y, style.Merge(c.Style, t.HighlightStyle))
			}
		}
		y++
	}
}

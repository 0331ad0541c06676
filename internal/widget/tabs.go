package widget

import (
	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
	"github.com/dshills/termbridge/internal/text"
)

// Tabs renders a row of titles separated by a divider, with one selected.
type Tabs struct {
	Titles     []text.Line
	Selected   int
	Divider    text.Span
	HasDivider bool
	Block      *Block
	Style      style.Style
	Highlight  style.Style
}

// NewTabs returns an empty tab bar.
func NewTabs() *Tabs { return &Tabs{} }

// Reserve pre-sizes the title storage for subsequent appends.
func (t *Tabs) Reserve(n int) {
	if n > cap(t.Titles) {
		titles := make([]text.Line, len(t.Titles), n)
		copy(titles, t.Titles)
		t.Titles = titles
	}
}

// AppendTitle adds one title; spans keep their styles (line rule).
func (t *Tabs) AppendTitle(line text.Line) { t.Titles = append(t.Titles, line) }

// SetDividerSpans ingests the divider under the divider rule: one span
// keeps its style, several concatenate under the first span's style.
func (t *Tabs) SetDividerSpans(spans []text.Span) {
	t.Divider = text.Divider(spans)
	t.HasDivider = true
}

// divider returns the configured divider or the default "|".
func (t *Tabs) divider() text.Span {
	if t.HasDivider {
		return t.Divider
	}
	return text.Span{Text: "|", Style: t.Style}
}

// Draw paints the tab bar into buf.
func (t *Tabs) Draw(buf *buffer.Buffer, area geom.Rect) {
	inner := drawBlock(t.Block, buf, area)
	if inner.Empty() || len(t.Titles) == 0 {
		return
	}
	div := t.divider()
	y := inner.Y
	x := inner.X + 1 // leading space like the track edge
	for i, title := range t.Titles {
		if x >= inner.Right() {
			break
		}
		st := t.Style
		if i == t.Selected {
			st = style.Merge(st, t.Highlight)
		}
		start := x
		for _, sp := range title {
			run := sp
			run.Style = style.Merge(st, run.Style)
			if i == t.Selected {
				run.Style = style.Merge(run.Style, t.Highlight)
			}
			x += buf.SetSpan(x, y, run, inner.Right()-x)
		}
		if x == start { // empty title still occupies a slot
			x++
		}
		if i < len(t.Titles)-1 {
			x++ // space before divider
			x += buf.SetSpan(x, y, div, inner.Right()-x)
			x++ // space after divider
		}
	}
}

package widget

import (
	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
	"github.com/dshills/termbridge/internal/text"
)

// Paragraph renders styled lines of text with optional wrapping, alignment
// and vertical scroll.
type Paragraph struct {
	Lines  []text.Line
	Block  *Block
	Align  buffer.Alignment
	Wrap   bool
	Scroll int
}

// NewParagraph returns an empty paragraph.
func NewParagraph() *Paragraph { return &Paragraph{} }

// Reserve pre-sizes the line storage for subsequent appends.
func (p *Paragraph) Reserve(n int) {
	if n > cap(p.Lines) {
		lines := make([]text.Line, len(p.Lines), n)
		copy(lines, p.Lines)
		p.Lines = lines
	}
}

// AppendLine adds one line of spans. Spans keep their individual styles
// (line rule).
func (p *Paragraph) AppendLine(line text.Line) {
	p.Lines = append(p.Lines, line)
}

// SetText replaces the content with uniformly styled text split on
// newlines.
func (p *Paragraph) SetText(s string, st style.Style) {
	p.Lines = p.Lines[:0]
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			p.Lines = append(p.Lines, text.Line{{Text: s[start:i], Style: st}})
			start = i + 1
		}
	}
}

// Draw paints the paragraph into buf.
func (p *Paragraph) Draw(buf *buffer.Buffer, area geom.Rect) {
	inner := drawBlock(p.Block, buf, area)
	if inner.Empty() {
		return
	}
	lines := p.Lines
	if p.Wrap {
		lines = wrapLines(lines, inner.Width)
	}
	for row := 0; row < inner.Height; row++ {
		idx := row + p.Scroll
		if idx < 0 || idx >= len(lines) {
			continue
		}
		buf.SetLine(inner, inner.Y+row, lines[idx], p.Align)
	}
}

// wrapLines splits spans at the given width. Wrapping is per cell, not per
// word; a span longer than the width continues on the next row.
func wrapLines(lines []text.Line, width int) []text.Line {
	if width <= 0 {
		return nil
	}
	var out []text.Line
	for _, line := range lines {
		cur := text.Line{}
		curW := 0
		flush := func() {
			out = append(out, cur)
			cur = text.Line{}
			curW = 0
		}
		for _, sp := range line {
			rest := sp.Text
			for text.Width(rest) > width-curW {
				head := text.Truncate(rest, width-curW)
				if head == "" && curW == 0 {
					// A single grapheme wider than the area; skip it
					// and keep wrapping the remainder.
					_, rest = text.FirstCluster(rest)
					continue
				}
				if head != "" {
					cur = append(cur, text.Span{Text: head, Style: sp.Style})
				}
				rest = rest[len(head):]
				flush()
			}
			if rest != "" {
				cur = append(cur, text.Span{Text: rest, Style: sp.Style})
				curW += text.Width(rest)
			}
		}
		flush()
	}
	return out
}

// Package text provides the styled-text model: spans, lines, and the
// ingestion rules widgets apply when collapsing multiple spans into a
// single run.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/termbridge/internal/style"
)

// Span is a run of text sharing one style. The text is always owned by the
// span; construction from caller-provided bytes copies them.
type Span struct {
	Text  string
	Style style.Style
}

// NewSpan builds a span from caller bytes. The bytes are copied and invalid
// UTF-8 sequences are replaced with U+FFFD so a span never carries a
// malformed encoding.
func NewSpan(b []byte, st style.Style) Span {
	return Span{Text: sanitize(string(b)), Style: st}
}

// NewSpanString builds a span from a string, sanitizing invalid UTF-8.
func NewSpanString(s string, st style.Style) Span {
	return Span{Text: sanitize(s), Style: st}
}

// Line is an ordered sequence of spans; display order is slice order.
type Line []Span

// Plain returns the concatenated text of all spans without style.
func (l Line) Plain() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Width returns the line's total width in cells.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += Width(s.Text)
	}
	return w
}

// Label collapses spans under the label rule: all texts concatenate into
// one run and only the first span's style survives. Gauge and line-gauge
// labels ingest spans this way.
func Label(spans []Span) Span {
	if len(spans) == 0 {
		return Span{}
	}
	if len(spans) == 1 {
		return spans[0]
	}
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return Span{Text: b.String(), Style: spans[0].Style}
}

// Divider collapses spans under the divider rule: a single span keeps its
// own style; multiple spans concatenate their texts under the first span's
// style. The tabs divider ingests spans this way.
func Divider(spans []Span) Span {
	// Identical collapse today, but the rules are contractual per widget
	// kind and tested separately, so they stay distinct entry points.
	return Label(spans)
}

// sanitize replaces invalid UTF-8 with the replacement rune.
func sanitize(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// Package snapshot derives deterministic text, style and cell views from a
// rendered cell grid. All derivations are pure: identical buffers produce
// byte-identical output.
package snapshot

import (
	"fmt"
	"strings"

	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/style"
)

// Text returns the per-row codepoint concatenation, rows joined by
// newlines, without style. Continuation cells of wide runes are skipped so
// each grapheme appears once.
func Text(buf *buffer.Buffer) string {
	w, h := buf.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := buf.Get(x, y)
			if c.Rune == 0 {
				continue
			}
			b.WriteRune(c.Rune)
		}
		if y+1 < h {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Styles returns the compact per-cell style dump: "FG2BG2MOD4" hex groups,
// cells space-separated, rows newline-separated. Colors are reduced to the
// named 16-color palette by nearest perceptual match; Reset encodes as 00.
func Styles(buf *buffer.Buffer) string {
	w, h := buf.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := buf.Get(x, y)
			fmt.Fprintf(&b, "%02X%02X%04X",
				style.PaletteByte(c.Style.Fg),
				style.PaletteByte(c.Style.Bg),
				uint16(c.Style.Mods))
			if x+1 < w {
				b.WriteByte(' ')
			}
		}
		if y+1 < h {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// StylesEx returns the extended per-cell style dump: "FG8BG8MOD4" using the
// full 32-bit channel encoding. Lossless for any color.
func StylesEx(buf *buffer.Buffer) string {
	w, h := buf.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := buf.Get(x, y)
			fmt.Fprintf(&b, "%08X%08X%04X",
				style.Encode(c.Style.Fg),
				style.Encode(c.Style.Bg),
				uint16(c.Style.Mods))
			if x+1 < w {
				b.WriteByte(' ')
			}
		}
		if y+1 < h {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// CellInfo is the structured per-cell record, wire-encoded styles included.
type CellInfo struct {
	Rune rune
	Fg   uint32
	Bg   uint32
	Mods uint16
}

// Cells fills dst with one record per cell in row-major order. When dst is
// smaller than the grid it fills exactly len(dst) records; required always
// reports width x height so the caller can retry with a larger buffer. dst
// is never written beyond its length.
func Cells(buf *buffer.Buffer, dst []CellInfo) (filled, required int) {
	w, h := buf.Size()
	required = w * h
	n := min(len(dst), required)
	for i := 0; i < n; i++ {
		c := buf.Get(i%w, i/w)
		dst[i] = CellInfo{
			Rune: c.Rune,
			Fg:   style.Encode(c.Style.Fg),
			Bg:   style.Encode(c.Style.Bg),
			Mods: uint16(c.Style.Mods),
		}
	}
	return n, required
}

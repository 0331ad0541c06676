package buffer

import (
	"testing"

	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
	"github.com/dshills/termbridge/internal/text"
)

func TestSetGetClipped(t *testing.T) {
	b := New(3, 2)
	b.Set(1, 1, Cell{Rune: 'x'})
	if b.Get(1, 1).Rune != 'x' {
		t.Error("Set/Get round trip failed")
	}
	// Out-of-bounds writes drop, reads return blanks.
	b.Set(5, 5, Cell{Rune: 'y'})
	if b.Get(5, 5).Rune != ' ' {
		t.Error("out-of-bounds read is not blank")
	}
}

func TestFillClipsToBounds(t *testing.T) {
	b := New(4, 4)
	b.Fill(geom.NewRect(2, 2, 10, 10), Cell{Rune: '#'})
	if b.Get(3, 3).Rune != '#' {
		t.Error("fill missed in-bounds cell")
	}
	if b.Get(0, 0).Rune != ' ' {
		t.Error("fill touched cell outside area")
	}
}

func TestSetStringClipsAtWidth(t *testing.T) {
	b := New(10, 1)
	n := b.SetString(0, 0, "hello world", style.Default(), 5)
	if n != 5 {
		t.Errorf("wrote %d cells, want 5", n)
	}
	if b.Get(4, 0).Rune != 'o' || b.Get(5, 0).Rune != ' ' {
		t.Error("string not clipped at max width")
	}
}

func TestSetStringWideRune(t *testing.T) {
	b := New(4, 1)
	b.SetString(0, 0, "世x", style.Default(), 4)
	if b.Get(0, 0).Rune != '世' {
		t.Error("wide rune not written")
	}
	if b.Get(1, 0).Rune != 0 {
		t.Error("continuation cell not zero")
	}
	if b.Get(2, 0).Rune != 'x' {
		t.Error("following rune misplaced")
	}

	// A wide rune that would straddle the clip edge is dropped.
	b2 := New(4, 1)
	n := b2.SetString(0, 0, "a世", style.Default(), 2)
	if n != 1 || b2.Get(1, 0).Rune != ' ' {
		t.Errorf("straddling wide rune not dropped (wrote %d)", n)
	}
}

func TestSetLineAlignment(t *testing.T) {
	area := geom.NewRect(0, 0, 7, 1)
	tests := []struct {
		name  string
		align Alignment
		wantX int
	}{
		{"left", AlignLeft, 0},
		{"center", AlignCenter, 2},
		{"right", AlignRight, 4},
	}
	for _, tt := range tests {
		b := New(7, 1)
		b.SetLine(area, 0, text.Line{{Text: "abc"}}, tt.align)
		if b.Get(tt.wantX, 0).Rune != 'a' {
			t.Errorf("%s: line not at x=%d", tt.name, tt.wantX)
		}
	}
}

func TestSetLineMultiSpanStyles(t *testing.T) {
	red := style.Style{Fg: style.Named(style.Red)}
	blue := style.Style{Fg: style.Named(style.Blue)}
	b := New(5, 1)
	b.SetLine(b.Area(), 0, text.Line{{Text: "ab", Style: red}, {Text: "cd", Style: blue}}, AlignLeft)
	if b.Get(1, 0).Style != red || b.Get(2, 0).Style != blue {
		t.Error("per-span styles not preserved")
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := New(2, 2)
	c := b.Clone()
	b.Set(0, 0, Cell{Rune: 'z'})
	if c.Get(0, 0).Rune == 'z' {
		t.Error("clone shares cell storage")
	}
}

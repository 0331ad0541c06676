package text

import (
	"testing"

	"github.com/dshills/termbridge/internal/style"
)

func TestNewSpanCopiesAndSanitizes(t *testing.T) {
	raw := []byte{'h', 'i', 0xFF, '!'}
	sp := NewSpan(raw, style.Default())
	raw[0] = 'X' // caller buffer reuse must not reach the span
	if sp.Text[0] != 'h' {
		t.Error("span aliases caller bytes")
	}
	if sp.Text != "hi�!" {
		t.Errorf("sanitized text = %q, want placeholder rune", sp.Text)
	}
}

func TestLabelRule(t *testing.T) {
	red := style.Style{Fg: style.Named(style.Red)}
	blue := style.Style{Fg: style.Named(style.Blue)}

	tests := []struct {
		name     string
		spans    []Span
		wantText string
		wantSt   style.Style
	}{
		{"empty", nil, "", style.Default()},
		{"single keeps style", []Span{{Text: "a", Style: blue}}, "a", blue},
		{
			"multi concatenates under first style",
			[]Span{{Text: "50", Style: red}, {Text: "%", Style: blue}},
			"50%", red,
		},
	}
	for _, tt := range tests {
		got := Label(tt.spans)
		if got.Text != tt.wantText || got.Style != tt.wantSt {
			t.Errorf("%s: Label = %q/%v, want %q/%v", tt.name, got.Text, got.Style, tt.wantText, tt.wantSt)
		}
	}
}

func TestDividerRule(t *testing.T) {
	red := style.Style{Fg: style.Named(style.Red)}
	blue := style.Style{Fg: style.Named(style.Blue)}

	one := Divider([]Span{{Text: "|", Style: blue}})
	if one.Text != "|" || one.Style != blue {
		t.Errorf("single-span divider = %q/%v, want span kept as-is", one.Text, one.Style)
	}

	many := Divider([]Span{{Text: "|", Style: red}, {Text: "-", Style: blue}})
	if many.Text != "|-" {
		t.Errorf("multi-span divider text = %q, want %q", many.Text, "|-")
	}
	if many.Style != red {
		t.Errorf("multi-span divider style = %v, want first span's", many.Style)
	}
}

func TestLinePlainAndWidth(t *testing.T) {
	l := Line{{Text: "ab"}, {Text: "cd"}}
	if l.Plain() != "abcd" {
		t.Errorf("Plain = %q", l.Plain())
	}
	if l.Width() != 4 {
		t.Errorf("Width = %d, want 4", l.Width())
	}
}

func TestGraphemesWideRunes(t *testing.T) {
	gs := Graphemes("a世b")
	if len(gs) != 3 {
		t.Fatalf("got %d graphemes, want 3", len(gs))
	}
	if gs[1].Width != 2 {
		t.Errorf("wide rune width = %d, want 2", gs[1].Width)
	}
	if Width("a世b") != 4 {
		t.Errorf("Width = %d, want 4", Width("a世b"))
	}
}

func TestGraphemesCombining(t *testing.T) {
	// e + combining acute should collapse into a single cell.
	gs := Graphemes("éx")
	if len(gs) != 2 {
		t.Fatalf("got %d graphemes, want 2", len(gs))
	}
	if gs[0].Rune != 'e' {
		t.Errorf("cluster rune = %q, want base rune", gs[0].Rune)
	}
}

package text

import (
	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Grapheme is one user-perceived character: the cell rune the terminal
// driver receives plus the number of columns it occupies.
type Grapheme struct {
	Rune  rune
	Width int
}

// Graphemes segments a string into terminal cells. Cluster segmentation
// uses Unicode UAX #29 so combining sequences stay in one cell; widths come
// from East Asian width rules. Zero-width clusters are dropped.
func Graphemes(s string) []Grapheme {
	var out []Grapheme
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if w <= 0 {
			continue
		}
		r, _ := firstRune(cluster)
		out = append(out, Grapheme{Rune: r, Width: w})
	}
	return out
}

// Width returns the display width of a string in cells.
func Width(s string) int {
	w := 0
	for _, g := range Graphemes(s) {
		w += g.Width
	}
	return w
}

// FirstCluster splits off the leading grapheme cluster.
func FirstCluster(s string) (cluster, rest string) {
	g := uniseg.NewGraphemes(s)
	if !g.Next() {
		return "", ""
	}
	c := g.Str()
	return c, s[len(c):]
}

// Truncate cuts a string to at most width cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

func firstRune(s string) (rune, int) {
	for _, r := range s {
		return r, len(s)
	}
	return 0, 0
}

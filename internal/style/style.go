package style

// Modifier is a bit set of independent text attributes. Bit values match
// the 16-bit wire encoding used by snapshot dumps.
type Modifier uint16

// Text attribute flags.
const (
	ModNone       Modifier = 0
	ModBold       Modifier = 1 << 0
	ModDim        Modifier = 1 << 1
	ModItalic     Modifier = 1 << 2
	ModUnderline  Modifier = 1 << 3
	ModSlowBlink  Modifier = 1 << 4
	ModRapidBlink Modifier = 1 << 5
	ModReversed   Modifier = 1 << 6
	ModHidden     Modifier = 1 << 7
	ModCrossedOut Modifier = 1 << 8
)

// Has returns true if the set contains the given modifier.
func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

// With returns the set with the given modifier added.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// Without returns the set with the given modifier removed.
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// Style is the visual style of a cell or span.
type Style struct {
	Fg   Color
	Bg   Color
	Mods Modifier
}

// Default returns the all-reset style.
func Default() Style { return Style{} }

// Packed is the fixed-layout wire form of a Style: one encoded 32-bit
// channel per color plus the modifier bits.
type Packed struct {
	Fg   uint32
	Bg   uint32
	Mods uint16
}

// Pack converts a Style to its wire form.
func Pack(s Style) Packed {
	return Packed{Fg: Encode(s.Fg), Bg: Encode(s.Bg), Mods: uint16(s.Mods)}
}

// Unpack converts a wire-form style back to a Style. Out-of-domain color
// patterns fall back to Reset per Decode.
func Unpack(p Packed) Style {
	return Style{Fg: Decode(p.Fg), Bg: Decode(p.Bg), Mods: Modifier(p.Mods)}
}

// Merge overlays s with over: non-reset colors and all modifiers of over
// replace those of s. Used when widget styles stack (block style under
// span style, highlight over row style).
func Merge(s, over Style) Style {
	out := s
	if !over.Fg.IsReset() {
		out.Fg = over.Fg
	}
	if !over.Bg.IsReset() {
		out.Bg = over.Bg
	}
	out.Mods |= over.Mods
	return out
}

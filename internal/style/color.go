// Package style provides the color and text-attribute model shared by the
// rendering subsystem, along with the fixed-width integer codec used at the
// bridge surface.
package style

import "fmt"

// ColorKind identifies which variant a Color holds.
type ColorKind uint8

// Color variants.
const (
	// ColorReset is the terminal's default color.
	ColorReset ColorKind = iota
	// ColorNamed is one of the 16 base palette colors (0-15).
	ColorNamed
	// ColorIndexed is a 256-color palette index.
	ColorIndexed
	// ColorRGB is a 24-bit true color.
	ColorRGB
)

// Named palette values for ColorNamed, in encoding order.
const (
	Black uint8 = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Gray
	DarkGray
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	White
)

// Tag bits selecting the Indexed and RGB variants in the encoded form.
// Values 1..16 select the named palette and 0 is Reset, so the two high
// bits are free to carry the remaining variants unambiguously.
const (
	tagIndexed uint32 = 1 << 30
	tagRGB     uint32 = 1 << 31
)

// Color is a terminal color value. The zero value is Reset.
type Color struct {
	Kind ColorKind
	// Index holds the palette index for Named (0-15) and Indexed (0-255).
	Index uint8
	// R, G, B hold the channels for RGB.
	R, G, B uint8
}

// Reset returns the terminal-default color.
func Reset() Color { return Color{} }

// Named returns a base palette color. The index is masked to 0-15.
func Named(n uint8) Color { return Color{Kind: ColorNamed, Index: n & 0x0F} }

// Indexed returns a 256-color palette color.
func Indexed(i uint8) Color { return Color{Kind: ColorIndexed, Index: i} }

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// Encode packs a Color into its 32-bit wire form: 0 for Reset, 1..16 for
// the named palette, bit 30 tagging Indexed and bit 31 tagging RGB.
// Exactly one variant is decodable from any encoded value.
func Encode(c Color) uint32 {
	switch c.Kind {
	case ColorNamed:
		return uint32(c.Index&0x0F) + 1
	case ColorIndexed:
		return tagIndexed | uint32(c.Index)
	case ColorRGB:
		return tagRGB | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	default:
		return 0
	}
}

// Decode unpacks a 32-bit wire color. The RGB tag takes precedence over the
// Indexed tag. Patterns outside the representable domain (17..2^30-1 with no
// tag bit set) decode to Reset; this is the documented fallback, never an
// error.
func Decode(v uint32) Color {
	if v&tagRGB != 0 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
	}
	if v&tagIndexed != 0 {
		return Indexed(uint8(v))
	}
	if v >= 1 && v <= 16 {
		return Named(uint8(v - 1))
	}
	return Reset()
}

// EncodeRGB returns the already-tagged wire value for a true color.
func EncodeRGB(r, g, b uint8) uint32 { return Encode(RGB(r, g, b)) }

// EncodeIndexed returns the already-tagged wire value for a palette index.
func EncodeIndexed(i uint8) uint32 { return Encode(Indexed(i)) }

// IsReset returns true for the terminal-default color.
func (c Color) IsReset() bool { return c.Kind == ColorReset }

// String returns a debug representation of the color.
func (c Color) String() string {
	switch c.Kind {
	case ColorNamed:
		return fmt.Sprintf("named(%d)", c.Index)
	case ColorIndexed:
		return fmt.Sprintf("idx(%d)", c.Index)
	case ColorRGB:
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	default:
		return "reset"
	}
}

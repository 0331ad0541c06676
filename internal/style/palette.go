package style

import colorful "github.com/lucasb-eyer/go-colorful"

// namedRGB holds the canonical sRGB values of the 16 base palette colors
// (xterm system palette), used when reducing richer colors to the named
// palette for the compact snapshot format.
var namedRGB = [16][3]uint8{
	{0x00, 0x00, 0x00}, // Black
	{0xCD, 0x00, 0x00}, // Red
	{0x00, 0xCD, 0x00}, // Green
	{0xCD, 0xCD, 0x00}, // Yellow
	{0x00, 0x00, 0xEE}, // Blue
	{0xCD, 0x00, 0xCD}, // Magenta
	{0x00, 0xCD, 0xCD}, // Cyan
	{0xE5, 0xE5, 0xE5}, // Gray
	{0x7F, 0x7F, 0x7F}, // DarkGray
	{0xFF, 0x00, 0x00}, // LightRed
	{0x00, 0xFF, 0x00}, // LightGreen
	{0xFF, 0xFF, 0x00}, // LightYellow
	{0x5C, 0x5C, 0xFF}, // LightBlue
	{0xFF, 0x00, 0xFF}, // LightMagenta
	{0x00, 0xFF, 0xFF}, // LightCyan
	{0xFF, 0xFF, 0xFF}, // White
}

// IndexedRGB expands a 256-color palette index to its xterm sRGB value.
func IndexedRGB(i uint8) (r, g, b uint8) {
	switch {
	case i < 16:
		v := namedRGB[i]
		return v[0], v[1], v[2]
	case i < 232:
		// 6x6x6 color cube.
		n := i - 16
		levels := [6]uint8{0, 95, 135, 175, 215, 255}
		return levels[n/36], levels[(n/6)%6], levels[n%6]
	default:
		// 24-step grayscale ramp.
		v := 8 + 10*(i-232)
		return v, v, v
	}
}

// NearestNamed reduces any color to the closest of the 16 base palette
// colors by perceptual (CIE Lab) distance. Named and low indexed colors map
// directly; Reset reports false since it has no palette equivalent.
func NearestNamed(c Color) (uint8, bool) {
	switch c.Kind {
	case ColorReset:
		return 0, false
	case ColorNamed:
		return c.Index & 0x0F, true
	case ColorIndexed:
		if c.Index < 16 {
			return c.Index, true
		}
		r, g, b := IndexedRGB(c.Index)
		return nearestNamedRGB(r, g, b), true
	default:
		return nearestNamedRGB(c.R, c.G, c.B), true
	}
}

func nearestNamedRGB(r, g, b uint8) uint8 {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best := uint8(0)
	bestDist := -1.0
	for i, v := range namedRGB {
		cand := colorful.Color{R: float64(v[0]) / 255, G: float64(v[1]) / 255, B: float64(v[2]) / 255}
		d := target.DistanceLab(cand)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}

// PaletteByte is the compact snapshot encoding of a color: 0 for Reset,
// 1..16 for the named palette (after nearest-color reduction).
func PaletteByte(c Color) uint8 {
	n, ok := NearestNamed(c)
	if !ok {
		return 0
	}
	return n + 1
}

package bridge

import (
	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/style"
	"github.com/dshills/termbridge/internal/text"
	"github.com/dshills/termbridge/internal/widget"
)

// Style is the packed wire form of a cell style: two encoded 32-bit color
// channels and a 16-bit modifier set. Zero means all-default.
type Style struct {
	Fg   uint32
	Bg   uint32
	Mods uint16
}

// Modifier bits for Style.Mods.
const (
	ModBold       = uint16(style.ModBold)
	ModDim        = uint16(style.ModDim)
	ModItalic     = uint16(style.ModItalic)
	ModUnderline  = uint16(style.ModUnderline)
	ModSlowBlink  = uint16(style.ModSlowBlink)
	ModRapidBlink = uint16(style.ModRapidBlink)
	ModReversed   = uint16(style.ModReversed)
	ModHidden     = uint16(style.ModHidden)
	ModCrossedOut = uint16(style.ModCrossedOut)
)

// Span is one styled text run.
type Span struct {
	Text  string
	Style Style
}

// Rect is a screen-space rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Alignment values.
const (
	AlignLeft uint32 = iota
	AlignCenter
	AlignRight
)

// Border side flags for BlockSpec.Borders.
const (
	BorderLeft   uint8 = 1 << 0
	BorderRight  uint8 = 1 << 1
	BorderTop    uint8 = 1 << 2
	BorderBottom uint8 = 1 << 3
	BorderAll           = BorderLeft | BorderRight | BorderTop | BorderBottom
)

// Border line styles for BlockSpec.Type.
const (
	BorderPlain uint32 = iota
	BorderRounded
	BorderDouble
	BorderThick
)

// BlockSpec describes the frame decoration of a widget: borders, padding
// and a styled title.
type BlockSpec struct {
	Borders    uint8
	Type       uint32
	Padding    [4]int // left, top, right, bottom
	Title      []Span
	TitleAlign uint32
	Style      Style
}

// Constraint kind values for layout splits and table widths.
const (
	ConstraintFixed uint32 = iota
	ConstraintPercent
	ConstraintRatio
	ConstraintMin
	ConstraintMax
)

// Constraint is one layout request. Value carries the length or percent;
// Ratio uses Value/Value2.
type Constraint struct {
	Kind   uint32
	Value  int
	Value2 int
}

// Direction values for layout splits.
const (
	DirVertical uint32 = iota
	DirHorizontal
)

func toStyle(s Style) style.Style {
	return style.Unpack(style.Packed{Fg: s.Fg, Bg: s.Bg, Mods: s.Mods})
}

func toSpan(s Span) text.Span {
	return text.NewSpanString(s.Text, toStyle(s.Style))
}

func toLine(spans []Span) text.Line {
	line := make(text.Line, 0, len(spans))
	for _, s := range spans {
		line = append(line, toSpan(s))
	}
	return line
}

func toLines(rows [][]Span) []text.Line {
	out := make([]text.Line, 0, len(rows))
	for _, r := range rows {
		out = append(out, toLine(r))
	}
	return out
}

func toRect(r Rect) geom.Rect {
	return geom.NewRect(r.X, r.Y, r.Width, r.Height)
}

func toAlignment(a uint32) buffer.Alignment {
	switch a {
	case AlignCenter:
		return buffer.AlignCenter
	case AlignRight:
		return buffer.AlignRight
	default:
		return buffer.AlignLeft
	}
}

func toConstraint(c Constraint) geom.Constraint {
	switch c.Kind {
	case ConstraintPercent:
		return geom.PercentOf(c.Value)
	case ConstraintRatio:
		return geom.RatioOf(c.Value, c.Value2)
	case ConstraintMin:
		return geom.AtLeast(c.Value)
	case ConstraintMax:
		return geom.AtMost(c.Value)
	default:
		return geom.FixedLen(c.Value)
	}
}

func toBlock(spec BlockSpec) *widget.Block {
	var borders widget.Border
	if spec.Borders&BorderLeft != 0 {
		borders |= widget.BorderLeft
	}
	if spec.Borders&BorderRight != 0 {
		borders |= widget.BorderRight
	}
	if spec.Borders&BorderTop != 0 {
		borders |= widget.BorderTop
	}
	if spec.Borders&BorderBottom != 0 {
		borders |= widget.BorderBottom
	}

	var bt widget.BorderType
	switch spec.Type {
	case BorderRounded:
		bt = widget.BorderRounded
	case BorderDouble:
		bt = widget.BorderDouble
	case BorderThick:
		bt = widget.BorderThick
	default:
		bt = widget.BorderPlain
	}

	return &widget.Block{
		Borders: borders,
		Type:    bt,
		Pad: widget.Padding{
			Left:   spec.Padding[0],
			Top:    spec.Padding[1],
			Right:  spec.Padding[2],
			Bottom: spec.Padding[3],
		},
		Title:      toLine(spec.Title),
		TitleAlign: toAlignment(spec.TitleAlign),
		Style:      toStyle(spec.Style),
	}
}

// LayoutSplit divides area along dir into one rect per constraint, with
// spacing cells between neighbors and the given margins (left, top, right,
// bottom). The split is pure and deterministic.
func LayoutSplit(area Rect, dir uint32, constraints []Constraint, spacing int, margins [4]int) []Rect {
	gcs := make([]geom.Constraint, 0, len(constraints))
	for _, c := range constraints {
		gcs = append(gcs, toConstraint(c))
	}
	gdir := geom.Vertical
	if dir == DirHorizontal {
		gdir = geom.Horizontal
	}
	margin := geom.Margin{
		Left:   margins[0],
		Top:    margins[1],
		Right:  margins[2],
		Bottom: margins[3],
	}
	rects := geom.Split(toRect(area), gdir, gcs, spacing, margin)
	out := make([]Rect, 0, len(rects))
	for _, r := range rects {
		out = append(out, Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height})
	}
	return out
}

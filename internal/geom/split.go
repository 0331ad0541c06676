package geom

import "fmt"

// Direction selects the axis a split divides.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// ConstraintKind identifies a layout constraint variant. The set is closed;
// the splitter dispatches exhaustively over it.
type ConstraintKind int

const (
	// Fixed requests exactly Len cells.
	Fixed ConstraintKind = iota
	// Percent requests Len percent of the divisible space.
	Percent
	// Ratio requests Num/Den of the divisible space.
	Ratio
	// Min requests at least Len cells and absorbs extra space.
	Min
	// Max requests at most Len cells.
	Max
)

// Constraint is one layout request. Num/Den are used by Ratio only; Len by
// the others.
type Constraint struct {
	Kind     ConstraintKind
	Len      int
	Num, Den int
}

// FixedLen, PercentOf, RatioOf, AtLeast, AtMost are constraint constructors.
func FixedLen(n int) Constraint    { return Constraint{Kind: Fixed, Len: n} }
func PercentOf(p int) Constraint   { return Constraint{Kind: Percent, Len: p} }
func RatioOf(n, d int) Constraint  { return Constraint{Kind: Ratio, Num: n, Den: d} }
func AtLeast(n int) Constraint     { return Constraint{Kind: Min, Len: n} }
func AtMost(n int) Constraint      { return Constraint{Kind: Max, Len: n} }

// Split divides parent along dir into one rect per constraint.
//
// The divisible space is the parent's length on the split axis minus the
// margins and minus spacing gaps (spacing cells between each adjacent pair).
// Integer bases are computed per constraint (Percent and Ratio floor), then
// the remainder is distributed one cell at a time to constraints in order,
// starting with the first and skipping Fixed and at-Max entries; if the
// bases exceed the divisible space, the overflow is trimmed from the last
// constraints first. This rule is contractual and locked by tests.
//
// Split is pure: identical inputs produce identical outputs.
func Split(parent Rect, dir Direction, constraints []Constraint, spacing int, margin Margin) []Rect {
	if len(constraints) == 0 {
		return nil
	}
	inner := parent.Shrink(margin.Left, margin.Top, margin.Right, margin.Bottom)

	total := inner.Width
	if dir == Vertical {
		total = inner.Height
	}
	if spacing < 0 {
		spacing = 0
	}
	gaps := spacing * (len(constraints) - 1)
	avail := total - gaps
	if avail < 0 {
		avail = 0
	}

	lengths := resolve(constraints, avail)

	out := make([]Rect, len(constraints))
	pos := inner.X
	if dir == Vertical {
		pos = inner.Y
	}
	for i, ln := range lengths {
		if dir == Horizontal {
			out[i] = Rect{X: pos, Y: inner.Y, Width: ln, Height: inner.Height}
		} else {
			out[i] = Rect{X: inner.X, Y: pos, Width: inner.Width, Height: ln}
		}
		pos += ln + spacing
	}
	return out
}

// SplitSimple is the restricted legacy entry point: it accepts only Fixed,
// Percent and Min constraints and rejects Ratio and Max rather than
// silently truncating them.
func SplitSimple(parent Rect, dir Direction, constraints []Constraint, spacing int, margin Margin) ([]Rect, error) {
	for i, c := range constraints {
		if c.Kind == Ratio || c.Kind == Max {
			return nil, fmt.Errorf("constraint %d: kind not supported by simple split", i)
		}
	}
	return Split(parent, dir, constraints, spacing, margin), nil
}

// resolve turns constraints into concrete lengths summing to at most avail.
func resolve(constraints []Constraint, avail int) []int {
	lengths := make([]int, len(constraints))
	sum := 0
	for i, c := range constraints {
		var n int
		switch c.Kind {
		case Fixed:
			n = c.Len
		case Percent:
			n = avail * clampPct(c.Len) / 100
		case Ratio:
			den := c.Den
			if den <= 0 {
				den = 1
			}
			n = avail * c.Num / den
		case Min:
			n = c.Len
		case Max:
			n = min(c.Len, avail)
		}
		if n < 0 {
			n = 0
		}
		if n > avail {
			n = avail
		}
		lengths[i] = n
		sum += n
	}

	// Remainder: one cell per eligible constraint, earliest first.
	for sum < avail {
		granted := false
		for i, c := range constraints {
			if sum >= avail {
				break
			}
			if c.Kind == Fixed {
				continue
			}
			if c.Kind == Max && lengths[i] >= c.Len {
				continue
			}
			lengths[i]++
			sum++
			granted = true
		}
		if !granted {
			break // nothing can grow; leftover stays unassigned
		}
	}

	// Overflow: trim from the last constraints first.
	for i := len(lengths) - 1; i >= 0 && sum > avail; i-- {
		over := sum - avail
		cut := min(over, lengths[i])
		lengths[i] -= cut
		sum -= cut
	}
	return lengths
}

func clampPct(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

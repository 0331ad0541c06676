// Package geom provides cell-grid geometry: rectangles and the constraint
// based layout splitter.
package geom

// Rect is an axis-aligned rectangle in cell-grid coordinates. Width and
// Height are never negative.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect clamps negative dimensions to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Empty returns true if the rect covers no cells.
func (r Rect) Empty() bool { return r.Width == 0 || r.Height == 0 }

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the cell (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rects, possibly empty.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{X: x1, Y: y1}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// ClipTo clips the rect to a target area. Out-of-range geometry clips to a
// zero-area rect rather than failing.
func (r Rect) ClipTo(target Rect) Rect { return r.Intersect(target) }

// Shrink insets the rect by the given margins, collapsing to zero area when
// the margins do not fit.
func (r Rect) Shrink(left, top, right, bottom int) Rect {
	w := r.Width - left - right
	h := r.Height - top - bottom
	if w < 0 || h < 0 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: r.X + left, Y: r.Y + top, Width: w, Height: h}
}

// Margin is a per-side inset applied before splitting.
type Margin struct {
	Left, Top, Right, Bottom int
}

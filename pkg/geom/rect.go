package geom

// Rect is an axis-aligned rectangle. Width and Height may be negative, in
// which case the edge accessors normalize so that Top <= Bottom and
// Left <= Right always hold.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Top returns the top edge.
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge.
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Right returns the right edge.
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Origin returns the normalized top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.Left(), Y: r.Top()}
}

// Size returns the normalized (non-negative) extents.
func (r Rect) Size() Size {
	w, h := r.Width, r.Height
	if w < 0 {
		w = -w
	}
	if h < 0 {
		h = -h
	}
	return Size{Width: w, Height: h}
}

// Translate returns r shifted by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside r, inclusive of the top/left edges
// and exclusive of the bottom/right edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

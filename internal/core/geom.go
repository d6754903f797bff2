// Package core provides host-side primitives for the snake terminal client:
// a colored character buffer, layout geometry and semantic input actions.
// It has no external dependencies (especially no Bubble Tea) so rendering
// code built on it stays testable.
package core

// Rect represents an axis-aligned area on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w x h rectangle centered inside an outerW x outerH area.
// The origin is clamped to zero when the rectangle does not fit.
func CenteredRect(w, h, outerW, outerH int) Rect {
	return Rect{
		X: max((outerW-w)/2, 0),
		Y: max((outerH-h)/2, 0),
		W: w,
		H: h,
	}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Fits reports whether the rectangle lies entirely within a w x h area.
func (r Rect) Fits(w, h int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= w && r.Bottom() <= h
}

package core

// Vec is a position or displacement in world units.
// World space is screen-centered with y pointing up.
type Vec struct {
	X, Y float64
}

// Add returns v translated by o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Translate returns v moved by (dx, dy).
func (v Vec) Translate(dx, dy float64) Vec {
	return Vec{X: v.X + dx, Y: v.Y + dy}
}

// AABB is a center-anchored axis-aligned box in world space.
// It spans X ± W/2 horizontally and Y ± H/2 vertically.
type AABB struct {
	X, Y float64 // Center
	W, H float64 // Full width and height, never negative
}

// NewAABB creates a box centered at (x, y). Negative sizes are clamped to 0.
func NewAABB(x, y, w, h float64) AABB {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return AABB{X: x, Y: y, W: w, H: h}
}

func (b AABB) Left() float64   { return b.X - b.W/2 }
func (b AABB) Right() float64  { return b.X + b.W/2 }
func (b AABB) Top() float64    { return b.Y + b.H/2 }
func (b AABB) Bottom() float64 { return b.Y - b.H/2 }

// Center returns the box center.
func (b AABB) Center() Vec {
	return Vec{X: b.X, Y: b.Y}
}

// Translate returns the box moved by (dx, dy).
func (b AABB) Translate(dx, dy float64) AABB {
	b.X += dx
	b.Y += dy
	return b
}

// MoveTo returns the box re-centered at c.
func (b AABB) MoveTo(c Vec) AABB {
	b.X, b.Y = c.X, c.Y
	return b
}

// OverlapsHorizontally reports whether the x-extents of a and b overlap.
// Boxes that only share an edge do not overlap.
func OverlapsHorizontally(a, b AABB) bool {
	return !(a.Left() >= b.Right() || a.Right() <= b.Left())
}

// OverlapsVertically reports whether the y-extents of a and b overlap.
func OverlapsVertically(a, b AABB) bool {
	return !(a.Bottom() >= b.Top() || a.Top() <= b.Bottom())
}

// Intersects is the full 2D test. Edge-touching boxes do not intersect.
func Intersects(a, b AABB) bool {
	return OverlapsHorizontally(a, b) && OverlapsVertically(a, b)
}

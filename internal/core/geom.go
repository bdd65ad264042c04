// Package core provides fundamental types and utilities for fishrun.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Rect is a cell-space rectangle on the terminal screen.
// Unlike AABB it is anchored at its top-left corner and uses integer cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a new cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the column just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the row just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clip returns the part of r that lies inside bounds.
func (r Rect) Clip(bounds Rect) Rect {
	x0, y0 := Max(r.X, bounds.X), Max(r.Y, bounds.Y)
	x1, y1 := Min(r.Right(), bounds.Right()), Min(r.Bottom(), bounds.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package model

import "math"

// Point represents an absolute screen coordinate
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents a rectangular screen region. The origin is the top-left
// corner and Y grows downward, matching screen coordinate conventions.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// NewRect creates a rectangle from its origin and dimensions
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// NewRectFromPoints creates the smallest rectangle covering both points
func NewRectFromPoints(p1, p2 Point) Rect {
	left := math.Min(p1.X, p2.X)
	top := math.Min(p1.Y, p2.Y)
	width := math.Abs(p2.X - p1.X)
	height := math.Abs(p2.Y - p1.Y)
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the right edge X coordinate
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Origin returns the top-left corner
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: r.Left + r.Width/2,
		Y: r.Top + r.Height/2,
	}
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() &&
		p.Y >= r.Top && p.Y <= r.Bottom()
}

// Intersects checks if two rectangles intersect
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right() < other.Left ||
		r.Left > other.Right() ||
		r.Bottom() < other.Top ||
		r.Top > other.Bottom())
}

// Intersection returns the intersection of two rectangles
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}

	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())

	return Rect{
		Left:   left,
		Top:    top,
		Width:  right - left,
		Height: bottom - top,
	}
}

// Union returns the union of two rectangles
func (r Rect) Union(other Rect) Rect {
	left := math.Min(r.Left, other.Left)
	top := math.Min(r.Top, other.Top)
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())

	return Rect{
		Left:   left,
		Top:    top,
		Width:  right - left,
		Height: bottom - top,
	}
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Expand expands the rectangle by a margin on all sides
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		Left:   r.Left - margin,
		Top:    r.Top - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// IsEmpty returns true if the rectangle has zero area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// IsValid returns true if the rectangle has positive dimensions
func (r Rect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Scale returns the rectangle scaled by the given factor about the screen
// origin. Used to map between captured pixel space and upscaled image space.
func (r Rect) Scale(factor float64) Rect {
	return Rect{
		Left:   r.Left * factor,
		Top:    r.Top * factor,
		Width:  r.Width * factor,
		Height: r.Height * factor,
	}
}

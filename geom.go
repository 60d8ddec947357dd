package boxen

import (
	"fmt"
	"math"
)

// Axis identifies one of the three principal directions of the assembly.
type Axis uint8

// Axis values. Ordered X < Y < Z, used by the cross-lap notch priority rule
// (§4.4: "alphabetically lower axis is notched from top").
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String renders the axis as its single-letter name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Vec2 is a 2D point or vector, nominally in millimeters.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled uniformly by k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Length() }

func (v Vec2) String() string { return fmt.Sprintf("(%.4g,%.4g)", v.X, v.Y) }

// Bounds3D is an axis-aligned 3D region: an origin plus extents.
type Bounds3D struct {
	X, Y, Z    float64
	W, H, D    float64
}

// MaxX, MaxY, MaxZ return the far corner of the bounds.
func (b Bounds3D) MaxX() float64 { return b.X + b.W }
func (b Bounds3D) MaxY() float64 { return b.Y + b.H }
func (b Bounds3D) MaxZ() float64 { return b.Z + b.D }

// Extent returns the size of the bounds along the given axis.
func (b Bounds3D) Extent(axis Axis) float64 {
	switch axis {
	case AxisX:
		return b.W
	case AxisY:
		return b.H
	default:
		return b.D
	}
}

// Origin returns the minimum coordinate of the bounds along the given axis.
func (b Bounds3D) Origin(axis Axis) float64 {
	switch axis {
	case AxisX:
		return b.X
	case AxisY:
		return b.Y
	default:
		return b.Z
	}
}

// WithAxis returns a copy of b with the origin and extent along axis replaced.
func (b Bounds3D) WithAxis(axis Axis, origin, extent float64) Bounds3D {
	nb := b
	switch axis {
	case AxisX:
		nb.X, nb.W = origin, extent
	case AxisY:
		nb.Y, nb.H = origin, extent
	default:
		nb.Z, nb.D = origin, extent
	}
	return nb
}

// Rect is an axis-aligned rectangle in a panel's local 2D frame.
// The origin is the bottom-left corner; Y increases upward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x,y) lies inside the rectangle,
// inclusive of its boundary.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Shrink returns r inset by m on every side. Negative m grows the rect.
func (r Rect) Shrink(m float64) Rect {
	return Rect{X: r.X + m, Y: r.Y + m, Width: r.Width - 2*m, Height: r.Height - 2*m}
}

// approxEqual reports whether a and b differ by less than eps.
func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

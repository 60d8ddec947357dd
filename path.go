package boxen

import "math"

// Path is an axis-aligned polyline: a list of 2D points describing either a
// panel outline (conventionally CCW) or a hole (conventionally CW). Every
// segment is horizontal, vertical, or part of a fillet-arc approximation
// (itself a fan of short axis-aligned segments, §4.5) — so "axis aligned"
// remains a uniform check regardless of whether a corner carries a fillet.
type Path struct {
	Points []Vec2
}

// NewPath builds a Path from the given points.
func NewPath(points ...Vec2) Path {
	return Path{Points: points}
}

// Append adds points to the end of the path and returns it, for chained
// construction in the style of a drafting turtle.
func (p Path) Append(pts ...Vec2) Path {
	p.Points = append(p.Points, pts...)
	return p
}

// Len returns the number of points in the path.
func (p Path) Len() int { return len(p.Points) }

// SignedArea returns twice the signed area enclosed by the path (the
// shoelace sum). Positive means CCW, negative means CW.
func (p Path) SignedArea() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// IsCCW reports whether the path winds counter-clockwise.
func (p Path) IsCCW() bool { return p.SignedArea() > 0 }

// IsCW reports whether the path winds clockwise.
func (p Path) IsCW() bool { return p.SignedArea() < 0 }

// Reversed returns the path with its point order reversed (flips winding).
func (p Path) Reversed() Path {
	n := len(p.Points)
	out := make([]Vec2, n)
	for i, pt := range p.Points {
		out[n-1-i] = pt
	}
	return Path{Points: out}
}

// BoundingBox returns the axis-aligned bounding box of the path's points.
func (p Path) BoundingBox() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	minX, minY := p.Points[0].X, p.Points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Points[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// HasDuplicates reports whether any two consecutive points (including the
// closing wrap) lie within eps of each other.
func (p Path) HasDuplicates(eps float64) bool {
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		if a.Dist(b) < eps {
			return true
		}
	}
	return false
}

// IsAxisAligned reports whether every segment of the path (including the
// closing segment) is horizontal or vertical within eps.
func (p Path) IsAxisAligned(eps float64) bool {
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		if math.Abs(a.X-b.X) > eps && math.Abs(a.Y-b.Y) > eps {
			return false
		}
	}
	return true
}

// Translate returns a copy of the path shifted by (dx,dy).
func (p Path) Translate(dx, dy float64) Path {
	out := make([]Vec2, len(p.Points))
	for i, pt := range p.Points {
		out[i] = Vec2{pt.X + dx, pt.Y + dy}
	}
	return Path{Points: out}
}

// RectPath builds a closed CCW rectangular path from a Rect.
func RectPath(r Rect) Path {
	return NewPath(
		Vec2{r.X, r.Y},
		Vec2{r.X + r.Width, r.Y},
		Vec2{r.X + r.Width, r.Y + r.Height},
		Vec2{r.X, r.Y + r.Height},
	)
}

// --- Path-level validators (§4.9) ---

// validateWinding checks a path's winding direction against wantCCW.
func validateWinding(p Path, wantCCW bool, panelID string) error {
	area := p.SignedArea()
	if wantCCW && area <= 0 {
		return &GeometryInvariantViolation{PanelID: panelID, Reason: "outline must wind CCW"}
	}
	if !wantCCW && area >= 0 {
		return &GeometryInvariantViolation{PanelID: panelID, Reason: "hole must wind CW"}
	}
	return nil
}

// validateNoDuplicates checks for near-duplicate consecutive points.
func validateNoDuplicates(p Path, panelID string) error {
	if p.HasDuplicates(EpsPoint) {
		return &GeometryInvariantViolation{PanelID: panelID, Reason: "path has consecutive duplicate points"}
	}
	return nil
}

// validateMinPoints checks the path has at least min points.
func validateMinPoints(p Path, min int, panelID string) error {
	if p.Len() < min {
		return &GeometryInvariantViolation{PanelID: panelID, Reason: "path has fewer than the minimum number of points"}
	}
	return nil
}

// validateAxisAligned checks every segment is horizontal or vertical.
func validateAxisAligned(p Path, panelID string) error {
	if !p.IsAxisAligned(EpsPoint) {
		return &GeometryInvariantViolation{PanelID: panelID, Reason: "path has a non-axis-aligned segment"}
	}
	return nil
}

// validateHoleInside checks that every vertex of hole lies strictly inside
// outline's bounding box by more than margin.
func validateHoleInside(outline Path, hole Path, margin float64, panelID string) error {
	b := outline.BoundingBox()
	for _, pt := range hole.Points {
		if pt.X < b.X+margin || pt.X > b.X+b.Width-margin ||
			pt.Y < b.Y+margin || pt.Y > b.Y+b.Height-margin {
			return &GeometryInvariantViolation{PanelID: panelID, Reason: "hole vertex is not strictly inside the outline bounding box"}
		}
	}
	return nil
}

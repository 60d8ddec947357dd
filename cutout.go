package boxen

import "math"

// CutoutType selects a cutout's shape.
type CutoutType uint8

const (
	CutoutRect CutoutType = iota
	CutoutCircle
)

// Cutout is a user-requested hole in a face panel: a cable pass-through, a
// vent, a switch mount (§4.6).
type Cutout struct {
	ID     string
	Type   CutoutType
	Center Vec2
	Width  float64 // diameter, for CutoutCircle
	Height float64 // unused for CutoutCircle
	Points Path    // tessellated outline, CW (a hole)
}

// NewRectCutout builds a rectangular cutout centered at center.
func NewRectCutout(id string, center Vec2, width, height float64) Cutout {
	r := Rect{X: center.X - width/2, Y: center.Y - height/2, Width: width, Height: height}
	return Cutout{
		ID:     id,
		Type:   CutoutRect,
		Center: center,
		Width:  width,
		Height: height,
		Points: RectPath(r).Reversed(), // CW
	}
}

// NewCircleCutout builds a circular cutout as a regular polygon of
// `segments` straight chords (at least 8) inscribed in the circle. The
// chords run diagonally; they are not the axis-aligned staircase used for
// fillets.
func NewCircleCutout(id string, center Vec2, diameter float64, segments int) Cutout {
	if segments < 8 {
		segments = 8
	}
	radius := diameter / 2
	pts := make([]Vec2, 0, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		pts = append(pts, Vec2{X: center.X + radius*math.Cos(theta), Y: center.Y + radius*math.Sin(theta)})
	}
	path := Path{Points: pts}
	if path.IsCCW() {
		path = path.Reversed()
	}
	return Cutout{ID: id, Type: CutoutCircle, Center: center, Width: diameter, Points: path}
}

// PanelSafeSpace returns the rectangle within a panel's local frame where a
// cutout may be placed without intersecting finger-joint teeth: the panel
// footprint inset by material thickness plus clearance on every side (§4.6).
func PanelSafeSpace(width, height, thickness float64) Rect {
	margin := thickness + EpsWall
	return Rect{X: margin, Y: margin, Width: width - 2*margin, Height: height - 2*margin}
}

// ValidateCutout checks that cutout's bounding box lies entirely within the
// panel's safe space.
func ValidateCutout(panelID string, safe Rect, c Cutout) error {
	b := c.Points.BoundingBox()
	if b.X < safe.X || b.Y < safe.Y || b.X+b.Width > safe.X+safe.Width || b.Y+b.Height > safe.Y+safe.Height {
		return &CutoutOutsideSafeSpaceError{PanelID: panelID, CutoutID: c.ID}
	}
	return nil
}

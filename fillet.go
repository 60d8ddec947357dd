package boxen

import "math"

// CornerModKind distinguishes the two corner treatments a panel edge pair
// can carry (§4.5).
type CornerModKind uint8

const (
	CornerModNone CornerModKind = iota
	CornerModFillet
	CornerModChamfer
)

// CornerMod records a fillet or chamfer applied to one panel corner.
type CornerMod struct {
	Kind CornerModKind
	Size float64 // fillet radius, or chamfer leg length
}

// cornerEligible reports whether the corner between edges a and b may carry
// a fillet or chamfer. A corner is only eligible when neither adjoining
// edge carries finger-joint teeth at the corner: both edges must resolve to
// GenderNone there (an edge with no mating panel), since a male or female
// edge always presents a tooth or notch at its very first section and
// cutting a fillet through it would sever a joint tooth (§4.5).
func cornerEligible(genders map[EdgePosition]Gender, a, b EdgePosition) bool {
	return genders[a] == GenderNone && genders[b] == GenderNone
}

// ApplyCornerMod rewrites the outline vertex at the given nominal corner
// position into a fillet or chamfer, after checking eligibility. corner is
// the rectangle's nominal (pre-joint) corner coordinate; dx/dy give the
// outward sign of travel along each axis away from that corner (e.g. the
// bottom-left corner of a width x height rect has dx=+1, dy=+1).
func ApplyCornerMod(path Path, panelID, key string, corner Vec2, dx, dy float64, genders map[EdgePosition]Gender, a, b EdgePosition, mod CornerMod) (Path, error) {
	if mod.Kind == CornerModNone {
		return path, nil
	}
	if !cornerEligible(genders, a, b) {
		return path, &CornerNotEligibleError{PanelID: panelID, CornerKey: key, Reason: "an adjoining edge carries finger-joint teeth"}
	}
	if mod.Size <= 0 {
		return path, &CornerNotEligibleError{PanelID: panelID, CornerKey: key, Reason: "size must be positive"}
	}

	idx := nearestPointIndex(path, corner)
	if idx < 0 {
		return path, &CornerNotEligibleError{PanelID: panelID, CornerKey: key, Reason: "corner vertex not found on outline"}
	}

	var insert []Vec2
	switch mod.Kind {
	case CornerModFillet:
		insert = tessellateFilletStaircase(corner, mod.Size, dx, dy, 6)
	case CornerModChamfer:
		insert = []Vec2{
			{X: corner.X + dx*mod.Size, Y: corner.Y},
			{X: corner.X, Y: corner.Y + dy*mod.Size},
		}
		if dx*dy > 0 {
			insert[0], insert[1] = insert[1], insert[0]
		}
	}

	pts := make([]Vec2, 0, len(path.Points)-1+len(insert))
	pts = append(pts, path.Points[:idx]...)
	pts = append(pts, insert...)
	pts = append(pts, path.Points[idx+1:]...)
	return Path{Points: pts}, nil
}

// nearestPointIndex returns the index of the path point closest to target,
// or -1 for an empty path. No distance limit applies: the closest point is
// returned however far it lies from target.
func nearestPointIndex(path Path, target Vec2) int {
	best := -1
	bestDist := math.Inf(1)
	for i, pt := range path.Points {
		d := pt.Dist(target)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// tessellateFilletStaircase approximates a quarter-circle fillet of the
// given radius as a staircase of axis-aligned micro-segments, consistent
// with every other curve in the outline being laser-cut from straight cuts.
// dx/dy give the outward sign of travel from corner along each axis. The
// staircase runs from corner+(0, dy*radius) to corner+(dx*radius, 0),
// reversed when dx*dy < 0, so it follows the outline's CCW traversal.
func tessellateFilletStaircase(corner Vec2, radius float64, dx, dy float64, steps int) []Vec2 {
	pts := append(make([]Vec2, 0, steps*2+1), Vec2{X: corner.X, Y: corner.Y + dy*radius})
	for i := 1; i <= steps; i++ {
		theta := (math.Pi / 2) * (float64(i) / float64(steps))
		x := corner.X + dx*radius*(1-math.Cos(theta))
		y := corner.Y + dy*radius*(1-math.Sin(theta))
		prevTheta := (math.Pi / 2) * (float64(i-1) / float64(steps))
		prevY := corner.Y + dy*radius*(1-math.Sin(prevTheta))
		pts = append(pts, Vec2{X: x, Y: prevY}, Vec2{X: x, Y: y})
	}
	if dx*dy < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}

package boxen

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// JointConstraint names one mating edge pair the validator checks: two
// panels that are expected to share a physical 3D edge and must therefore
// agree on that edge's length (§4.8).
type JointConstraint struct {
	PanelA, PanelB string
	Axis           Axis
	LengthA        float64
	LengthB        float64
}

// jointConstraintKey gives each constraint a stable identity for
// deduplication, independent of which panel is named first.
func jointConstraintKey(c JointConstraint) string {
	a, b := c.PanelA, c.PanelB
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%s|%s|%s", a, b, c.Axis)
}

// ValidateJoints checks every mating face-to-face edge in an assembly
// snapshot for length agreement, returning one JointAlignmentError per pair
// that disagrees by more than EpsAlign. Disagreement is only possible once
// edge extensions or clamped finger widths diverge between two panels that
// were derived from different axis lengths (e.g. a sub-assembly boundary);
// for a single assembly's own six faces the shared axis length is always
// identical and every pair passes trivially.
func ValidateJoints(snap AssemblySnapshot) []error {
	var constraints []JointConstraint
	byFace := map[FaceId]PanelSnapshot{}
	for _, p := range snap.Panels {
		if p.Kind == PanelKindFace {
			byFace[p.FaceID] = p
		}
	}

	for _, f := range AllFaces {
		panelA, ok := byFace[f]
		if !ok {
			continue
		}
		edges := faceAdjacency[f]
		for edge, neighbor := range edges {
			panelB, ok := byFace[neighbor]
			if !ok {
				continue
			}
			axis := edge.axisFor(f)
			constraints = append(constraints, JointConstraint{
				PanelA:  panelA.ID,
				PanelB:  panelB.ID,
				Axis:    axis,
				LengthA: dimensionAlong(panelA, axis, f),
				LengthB: dimensionAlong(panelB, axis, neighbor),
			})
		}
	}

	deduped := lo.UniqBy(constraints, jointConstraintKey)

	var errs []error
	for _, c := range deduped {
		delta := math.Abs(c.LengthA - c.LengthB)
		if delta > EpsAlign {
			errs = append(errs, &JointAlignmentError{PanelAID: c.PanelA, PanelBID: c.PanelB, Delta: delta})
		}
	}
	return errs
}

// dimensionAlong returns the panel's local extent corresponding to world
// axis, given which face it belongs to.
func dimensionAlong(p PanelSnapshot, axis Axis, f FaceId) float64 {
	if axis == f.widthAxis() {
		return p.Width
	}
	return p.Height
}

package boxen

import "sort"

// BuildDividerSlotHoles derives the slot holes cut into a face panel where
// a divider pierces it edge-on. The divider presents a finger pattern along
// crossAxisData (its own edge running perpendicular to the face panel); at
// each finger (protruding) section the face panel gets a rectangular hole
// of width thickness (through which the divider's tab passes) centered on
// dividerPos, spanning that section along the cross axis (§4.4).
func BuildDividerSlotHoles(dividerPos float64, crossAxisData AssemblyFingerData, thickness float64) []Path {
	return BuildDividerSlotHolesOriented(dividerPos, crossAxisData, thickness, true)
}

// BuildDividerSlotHolesOriented is BuildDividerSlotHoles with an explicit
// orientation: vertical=true cuts slots that vary along the panel's local Y
// (the divider crosses the panel as a vertical line, i.e. dividerPos is an
// X coordinate); vertical=false swaps X and Y, for a divider crossing the
// panel as a horizontal line at local Y = dividerPos.
func BuildDividerSlotHolesOriented(dividerPos float64, crossAxisData AssemblyFingerData, thickness float64, vertical bool) []Path {
	var holes []Path
	for i := 0; i < crossAxisData.SectionCount; i++ {
		if !crossAxisData.IsFingerSection(i) {
			continue
		}
		start, end := crossAxisData.SectionAt(i)
		var r Rect
		if vertical {
			r = Rect{X: dividerPos - thickness/2, Y: start, Width: thickness, Height: end - start}
		} else {
			r = Rect{X: start, Y: dividerPos - thickness/2, Width: end - start, Height: thickness}
		}
		holes = append(holes, RectPath(r).Reversed()) // CW
	}
	return holes
}

// CrossLapJoint describes the pair of notches cut where two dividers cross
// each other at a right angle (§4.4). Per the alphabetically-lower-axis
// rule, the divider running along the lower axis (X < Y < Z) is notched
// from its "top" (positive local Y in its own frame), the other from its
// "bottom".
type CrossLapJoint struct {
	TopNotch, BottomNotch Rect
}

// BuildCrossLapJoint derives the pair of notches for two crossing dividers.
// axisA and axisB are the two dividers' own running axes; posA/posB are the
// crossing point's coordinate within each divider's local frame; thickness
// is the shared material thickness, and depth is how far each notch cuts in
// (normally half the panel height, so the two notches interlock).
func BuildCrossLapJoint(axisA Axis, posA float64, axisB Axis, posB float64, thickness, depth float64) CrossLapJoint {
	// The lower-valued axis (by the AxisX < AxisY < AxisZ ordering) is
	// notched from the top; the higher-valued axis is notched from the
	// bottom, so the two notches meet in the middle of the shared depth.
	lowerPos, higherPos := posA, posB
	if axisA > axisB {
		lowerPos, higherPos = posB, posA
	}

	return CrossLapJoint{
		TopNotch:    Rect{X: lowerPos - thickness/2, Width: thickness, Y: depth - depth/2, Height: depth / 2},
		BottomNotch: Rect{X: higherPos - thickness/2, Width: thickness, Y: 0, Height: depth / 2},
	}
}

// ValidateCrossLapSpacing checks that no two slot centers on a shared
// divider panel sit closer together than 2*thickness, which would leave too
// little material between adjacent notches (§4.4).
func ValidateCrossLapSpacing(panelID string, centers []float64, thickness float64) error {
	if len(centers) < 2 {
		return nil
	}
	sorted := append([]float64(nil), centers...)
	sort.Float64s(sorted)
	min := 2 * thickness
	for i := 1; i < len(sorted); i++ {
		d := sorted[i] - sorted[i-1]
		if d < min {
			return &CrossLapConflictError{PanelID: panelID, Distance: d, Min: min}
		}
	}
	return nil
}

// TerminatingDividerSlot derives the single slot cut into a parent divider
// where a shorter, terminating child divider butts against it without
// passing all the way through (rather than a full cross-lap). The slot
// holds only the child's first finger tab to keep it located.
func TerminatingDividerSlot(pos float64, fingerWidth, thickness float64) Rect {
	return Rect{X: pos - fingerWidth/2, Y: 0, Width: fingerWidth, Height: thickness}
}

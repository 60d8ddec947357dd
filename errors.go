package boxen

import "fmt"

// Error kinds returned by dispatch (precondition errors) or aggregated into
// a Snapshot (derivation-time errors), per spec §7. Every kind carries the
// offending ids/values so callers can report them without re-deriving
// context.

// DimensionsInfeasibleError reports that an assembly's dimensions cannot
// support the configured material (axis length <= 2*thickness, or fewer
// than 3 finger sections even after clamping).
type DimensionsInfeasibleError struct {
	Axis   Axis
	Length float64
	MT     float64
}

func (e *DimensionsInfeasibleError) Error() string {
	return fmt.Sprintf("dimensions infeasible: axis %s length %.3f cannot fit material thickness %.3f", e.Axis, e.Length, e.MT)
}

// MaterialInfeasibleError reports that the material configuration cannot
// be used (a non-positive thickness, finger width or finger gap).
type MaterialInfeasibleError struct {
	Reason string
}

func (e *MaterialInfeasibleError) Error() string { return "material infeasible: " + e.Reason }

// GeometryInfeasibleError reports that no finger pattern can be derived for
// an axis even after clamping the finger width down.
type GeometryInfeasibleError struct {
	Axis   Axis
	Length float64
}

func (e *GeometryInfeasibleError) Error() string {
	return fmt.Sprintf("geometry infeasible on axis %s (length %.3f): cannot derive a 3-section finger pattern", e.Axis, e.Length)
}

// PositionOutOfRangeError reports a subdivision position outside its
// parent's valid range, or too close to a sibling divider.
type PositionOutOfRangeError struct {
	VoidID         string
	Axis           Axis
	Position       float64
	Min, Max       float64
}

func (e *PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("position %.3f on void %q axis %s out of range [%.3f, %.3f]", e.Position, e.VoidID, e.Axis, e.Min, e.Max)
}

// NotALeafVoidError reports an attempt to subdivide or nest a sub-assembly
// into a void that already has children.
type NotALeafVoidError struct {
	VoidID string
}

func (e *NotALeafVoidError) Error() string { return fmt.Sprintf("void %q is not a leaf", e.VoidID) }

// SubAssemblyTooLargeError reports that a nested assembly (plus clearance)
// does not fit inside its parent void.
type SubAssemblyTooLargeError struct {
	VoidID    string
	Required  Bounds3D
	Available Bounds3D
}

func (e *SubAssemblyTooLargeError) Error() string {
	return fmt.Sprintf("sub-assembly in void %q requires %+v but only %+v is available", e.VoidID, e.Required, e.Available)
}

// ExtensionNotAllowedError reports an attempt to extend a male edge.
type ExtensionNotAllowedError struct {
	PanelID string
	Edge    EdgePosition
}

func (e *ExtensionNotAllowedError) Error() string {
	return fmt.Sprintf("panel %q edge %s is male: edge extensions are not allowed", e.PanelID, e.Edge)
}

// CornerNotEligibleError reports a fillet/chamfer request on a corner that
// fails §4.5 eligibility.
type CornerNotEligibleError struct {
	PanelID   string
	CornerKey string
	Reason    string
}

func (e *CornerNotEligibleError) Error() string {
	return fmt.Sprintf("panel %q corner %q not eligible: %s", e.PanelID, e.CornerKey, e.Reason)
}

// CutoutOutsideSafeSpaceError reports a cutout that would lie outside a
// panel's safe space.
type CutoutOutsideSafeSpaceError struct {
	PanelID  string
	CutoutID string
}

func (e *CutoutOutsideSafeSpaceError) Error() string {
	return fmt.Sprintf("cutout %q on panel %q lies outside the panel's safe space", e.CutoutID, e.PanelID)
}

// CrossLapConflictError reports two cross-lap slot centers closer than
// 2*MT on a shared divider.
type CrossLapConflictError struct {
	PanelID  string
	Distance float64
	Min      float64
}

func (e *CrossLapConflictError) Error() string {
	return fmt.Sprintf("cross-lap conflict on panel %q: slot centers %.3f apart, minimum is %.3f", e.PanelID, e.Distance, e.Min)
}

// JointAlignmentError reports that two mating joint anchors disagree beyond
// EpsAlign. Non-fatal: recorded on the snapshot, never returned from dispatch.
type JointAlignmentError struct {
	PanelAID, PanelBID string
	Delta              float64
}

func (e *JointAlignmentError) Error() string {
	return fmt.Sprintf("joint misalignment between %q and %q: delta %.4f", e.PanelAID, e.PanelBID, e.Delta)
}

// GeometryInvariantViolation reports a path invariant failure (not axis
// aligned, duplicate points, bad winding, hole outside outline). This
// indicates a bug in the engine itself: the snapshot is still produced, but
// it must fail tests.
type GeometryInvariantViolation struct {
	PanelID string
	Reason  string
}

func (e *GeometryInvariantViolation) Error() string {
	return fmt.Sprintf("geometry invariant violated on panel %q: %s", e.PanelID, e.Reason)
}

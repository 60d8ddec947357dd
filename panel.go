package boxen

import "fmt"

// PanelKind distinguishes the handful of things a Panel can represent,
// collapsing what would otherwise be separate FacePanel/DividerPanel/
// SubAssemblyFacePanel types into one tagged struct (§9 Design Notes).
type PanelKind uint8

const (
	PanelKindFace PanelKind = iota
	PanelKindDivider
)

func (k PanelKind) String() string {
	if k == PanelKindDivider {
		return "divider"
	}
	return "face"
}

// Panel is a single flat, laser-cuttable piece derived from an Assembly or a
// divider void boundary. Panels are immutable snapshots: every field is
// computed fresh during recomputation and never mutated in place (§4.3, §6).
type Panel struct {
	ID     string
	Kind   PanelKind
	FaceID FaceId // meaningful when Kind == PanelKindFace

	// Width/Height are the panel's local 2D footprint before joint teeth are
	// added; Thickness is the material thickness it was cut from.
	Width, Height, Thickness float64

	// Outline is the panel's cut line, CCW, including finger-joint teeth.
	Outline Path
	// Holes are interior cuts: divider slots, cross-lap notches, and
	// user-added cutouts, each CW.
	Holes []Path

	EdgeGender     map[EdgePosition]Gender
	EdgeExtensions map[EdgePosition]float64
	CornerMods     map[string]CornerMod
	Cutouts        []Cutout

	// Errors accumulates non-fatal derivation-time problems found while
	// building this panel (joint misalignment, cutout placement, etc.),
	// surfaced on the snapshot rather than returned from Dispatch (§7).
	Errors []error
}

// PanelBuildInput gathers everything BuildFacePanel needs to derive a face
// panel's outline, decoupling the builder from the Void/Assembly tree shape.
type PanelBuildInput struct {
	ID             string
	FaceID         FaceId
	Width, Height  float64
	Thickness      float64
	WidthFingers   AssemblyFingerData
	HeightFingers  AssemblyFingerData
	EdgeGender     map[EdgePosition]Gender
	EdgeExtensions map[EdgePosition]float64

	// Feet, when non-empty, are spliced into the bottom edge as downward
	// rectangular protrusions (§4.3 "Feet"). Only wall panels (faces whose
	// normal differs from the assembly axis) ever carry feet.
	Feet []FootRect
}

// BuildFacePanel derives a face panel's outline from its dimensions, the
// shared finger-point data for each axis it spans, and the gender resolved
// for each of its four edges (§4.3).
func BuildFacePanel(in PanelBuildInput) (Panel, error) {
	p := Panel{
		ID:             in.ID,
		Kind:           PanelKindFace,
		FaceID:         in.FaceID,
		Width:          in.Width,
		Height:         in.Height,
		Thickness:      in.Thickness,
		EdgeGender:     in.EdgeGender,
		EdgeExtensions: in.EdgeExtensions,
		CornerMods:     map[string]CornerMod{},
	}

	outline, err := buildRectOutline(in.Width, in.Height, in.Thickness, in.WidthFingers, in.HeightFingers, in.EdgeGender, in.EdgeExtensions, in.Feet, in.ID)
	if err != nil {
		return Panel{}, err
	}
	p.Outline = outline
	return p, nil
}

// buildRectOutline walks the four edges of a width x height rectangle
// clockwise-adjacent in local space (bottom, right, top, left — an overall
// CCW traversal) emitting a zigzag finger/hole pattern on each edge and
// applying any edge extension, per §4.3.
func buildRectOutline(width, height, thickness float64, widthData, heightData AssemblyFingerData, genders map[EdgePosition]Gender, extensions map[EdgePosition]float64, feet []FootRect, panelID string) (Path, error) {
	var pts []Vec2

	appendEdge := func(edge EdgePosition, axisLength float64, data AssemblyFingerData, originFn func(t, offset float64) Vec2) error {
		ext := extensions[edge]
		gender := genders[edge]
		if ext != 0 && gender == GenderMale {
			return &ExtensionNotAllowedError{PanelID: panelID, Edge: edge}
		}
		segs := buildEdgeSegments(axisLength, data, gender, thickness, ext)
		// Move the previous edge's end point to where the two offset lines meet.
		joined := len(pts) > 0
		if joined {
			prev, first := pts[len(pts)-1], originFn(segs[0].start, segs[0].offset)
			if edge == EdgeRight || edge == EdgeLeft {
				pts[len(pts)-1] = Vec2{X: first.X, Y: prev.Y}
			} else {
				pts[len(pts)-1] = Vec2{X: prev.X, Y: first.Y}
			}
		}
		for i, seg := range segs {
			if i > 0 && segs[i-1].offset != seg.offset {
				pts = append(pts, originFn(seg.start, segs[i-1].offset))
			}
			if i > 0 || !joined {
				pts = append(pts, originFn(seg.start, seg.offset))
			}
		}
		last := segs[len(segs)-1]
		pts = append(pts, originFn(last.end, last.offset))
		return nil
	}

	// Bottom edge: (0,0) -> (width,0), outward normal -y.
	if err := appendEdge(EdgeBottom, width, widthData, func(t, offset float64) Vec2 {
		return Vec2{X: t, Y: -offset}
	}); err != nil {
		return Path{}, err
	}
	if len(feet) > 0 {
		pts = applyFeetToBottomEdge(pts, feet)
	}
	// Right edge: (width,0) -> (width,height), outward normal +x.
	if err := appendEdge(EdgeRight, height, heightData, func(t, offset float64) Vec2 {
		return Vec2{X: width + offset, Y: t}
	}); err != nil {
		return Path{}, err
	}
	// Top edge: (width,height) -> (0,height), outward normal +y, traversed
	// in reverse (t measured from the right end).
	if err := appendEdge(EdgeTop, width, widthData, func(t, offset float64) Vec2 {
		return Vec2{X: width - t, Y: height + offset}
	}); err != nil {
		return Path{}, err
	}
	// Left edge: (0,height) -> (0,0), outward normal -x, traversed in
	// reverse (t measured from the top end).
	if err := appendEdge(EdgeLeft, height, heightData, func(t, offset float64) Vec2 {
		return Vec2{X: -offset, Y: height - t}
	}); err != nil {
		return Path{}, err
	}
	pts[len(pts)-1].Y = pts[0].Y

	path := Path{Points: pts}
	if err := validateNoDuplicates(path, panelID); err != nil {
		return Path{}, err
	}
	if err := validateAxisAligned(path, panelID); err != nil {
		return Path{}, err
	}
	return path, nil
}

type edgeSegment struct {
	start, end, offset float64
}

// buildEdgeSegments turns a finger pattern into a list of constant-offset
// segments along an edge of the given length: male edges protrude by
// +thickness at finger (even) sections, female edges recede by -thickness
// at the same sections, and a GenderNone edge stays flush throughout. ext,
// if nonzero, adds a uniform outward (perpendicular) offset across every
// section, producing a rectangular region the full length of the edge with
// a straight far edge (only legal on non-male edges, checked by the
// caller).
func buildEdgeSegments(length float64, data AssemblyFingerData, gender Gender, thickness float64, ext float64) []edgeSegment {
	n := data.SectionCount
	segs := make([]edgeSegment, 0, n)
	for i := 0; i < n; i++ {
		start, end := data.SectionAt(i)
		if i == n-1 {
			end = length
		}
		offset := ext
		if gender != GenderNone && data.IsFingerSection(i) {
			if gender == GenderMale {
				offset += thickness
			} else {
				offset -= thickness
			}
		}
		segs = append(segs, edgeSegment{start: start, end: end, offset: offset})
	}
	return segs
}

// cornerKey builds a stable "<panelID>:<edge>-<edge>" identifier for a
// panel corner (§4.5). CornerMods and fillet/chamfer errors use the bare
// corner name instead ("bottom-left" etc., see cornerForKey in
// snapshot.go); only tests call cornerKey.
func cornerKey(panelID string, a, b EdgePosition) string {
	return fmt.Sprintf("%s:%s-%s", panelID, a, b)
}

package boxen

import "fmt"

// PanelSnapshot is the derived, read-only view of one flat panel, as
// returned by Engine.Snapshot (§6).
type PanelSnapshot struct {
	ID         string
	Kind       PanelKind
	FaceID     FaceId
	Width      float64
	Height     float64
	Thickness  float64
	Outline    Path
	Holes      []Path
	EdgeGender map[EdgePosition]Gender
	Cutouts    []Cutout
}

// VoidSnapshot is the derived view of one node in an assembly's interior
// tree.
type VoidSnapshot struct {
	ID          string
	Bounds      Bounds3D
	Children    []VoidSnapshot
	SubAssembly *AssemblySnapshot
}

// AssemblySnapshot is the derived view of one assembly (top-level or
// nested): its configuration, every panel it currently presents, and its
// interior void tree.
type AssemblySnapshot struct {
	ID       string
	Bounds   Bounds3D
	Material MaterialConfig
	Config   AssemblyConfig
	Panels   []PanelSnapshot
	Root     VoidSnapshot
	Errors   []error
}

// Scene is the top-level container: a list of independent assemblies. It is
// the object an Engine mutates; Engine.Snapshot derives a SceneSnapshot
// from it bottom-up on demand, mirroring a dirty-flagged scene graph that
// only ever stores downward parent->child links (§9 Design Notes).
type Scene struct {
	Assemblies []*Assembly
}

// SceneSnapshot is the full derived output of one Engine.Snapshot call.
type SceneSnapshot struct {
	Assemblies []AssemblySnapshot
}

// Clone deep-copies the scene, used by Engine.StartPreview so in-progress
// edits can be explored without touching the committed scene.
func (s *Scene) Clone() *Scene {
	clone := &Scene{Assemblies: make([]*Assembly, len(s.Assemblies))}
	for i, a := range s.Assemblies {
		clone.Assemblies[i] = cloneAssembly(a)
	}
	return clone
}

func cloneAssembly(a *Assembly) *Assembly {
	if a == nil {
		return nil
	}
	c := *a
	c.FaceSolid = cloneBoolMap(a.FaceSolid)
	c.EdgeExtensions = make(map[string]map[EdgePosition]float64, len(a.EdgeExtensions))
	for k, v := range a.EdgeExtensions {
		c.EdgeExtensions[k] = cloneFloatEdgeMap(v)
	}
	c.CornerMods = make(map[string]map[string]CornerMod, len(a.CornerMods))
	for k, v := range a.CornerMods {
		inner := make(map[string]CornerMod, len(v))
		for ck, cv := range v {
			inner[ck] = cv
		}
		c.CornerMods[k] = inner
	}
	c.Cutouts = make(map[string][]Cutout, len(a.Cutouts))
	for k, v := range a.Cutouts {
		c.Cutouts[k] = append([]Cutout(nil), v...)
	}
	c.Config.Lids = make(map[LidSide]LidConfig, len(a.Config.Lids))
	for k, v := range a.Config.Lids {
		c.Config.Lids[k] = v
	}
	c.Root = cloneVoid(a.Root)
	return &c
}

func cloneVoid(v *Void) *Void {
	if v == nil {
		return nil
	}
	c := *v
	if v.Children != nil {
		c.Children = make([]*Void, len(v.Children))
		for i, ch := range v.Children {
			c.Children[i] = cloneVoid(ch)
		}
	}
	if v.SubAssembly != nil {
		sc := *v.SubAssembly
		sc.Assembly = cloneAssembly(v.SubAssembly.Assembly)
		c.SubAssembly = &sc
	}
	return &c
}

func cloneBoolMap(m map[FaceId]bool) map[FaceId]bool {
	c := make(map[FaceId]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func cloneFloatEdgeMap(m map[EdgePosition]float64) map[EdgePosition]float64 {
	c := make(map[EdgePosition]float64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Snapshot derives a SceneSnapshot from the scene's current state,
// recomputing every assembly's panels bottom-up from its voids.
func (s *Scene) Snapshot() SceneSnapshot {
	out := SceneSnapshot{Assemblies: make([]AssemblySnapshot, len(s.Assemblies))}
	for i, a := range s.Assemblies {
		out.Assemblies[i] = RecomputeAssembly(a)
	}
	return out
}

// RecomputeAssembly derives an AssemblySnapshot for a single assembly: it
// builds the per-axis finger-point data, resolves every face's edge
// genders, builds each solid face's panel (with divider slot holes,
// fillets/chamfers, and cutouts applied), builds a flat divider panel per
// internal void boundary, and recurses into any nested sub-assemblies
// (§4.3, §4.7, §6).
func RecomputeAssembly(a *Assembly) AssemblySnapshot {
	snap := AssemblySnapshot{ID: a.ID, Bounds: a.Bounds, Material: a.Material, Config: a.Config}

	fingerData := make(map[Axis]AssemblyFingerData, 3)
	for axis, length := range map[Axis]float64{AxisX: a.Bounds.W, AxisY: a.Bounds.H, AxisZ: a.Bounds.D} {
		fd, err := ComputeFingerData(length, a.Material)
		if err != nil {
			snap.Errors = append(snap.Errors, err)
			continue
		}
		fingerData[axis] = fd
	}

	genders := ResolveGender(a.Config)
	applyOpenFaceGenders(genders, a.FaceSolid)

	for _, f := range AllFaces {
		if !a.FaceSolid[f] {
			continue
		}
		panel, err := buildAndDressFacePanel(a, f, fingerData, genders)
		if err != nil {
			snap.Errors = append(snap.Errors, err)
			continue
		}
		snap.Panels = append(snap.Panels, panel)
	}

	dividers, dividerErrs := buildDividerPanels(a, a.Root, fingerData)
	snap.Panels = append(snap.Panels, dividers...)
	snap.Errors = append(snap.Errors, dividerErrs...)

	snap.Root = buildVoidSnapshot(a.Root)
	return snap
}

func buildAndDressFacePanel(a *Assembly, f FaceId, fingerData map[Axis]AssemblyFingerData, genders map[FaceId]map[EdgePosition]Gender) (PanelSnapshot, error) {
	id := fmt.Sprintf("face-%s", f)
	width := a.Bounds.Extent(f.widthAxis())
	height := a.Bounds.Extent(f.heightAxis())

	var feet []FootRect
	if f.NormalAxis() != a.Config.AssemblyAxis {
		feet = ComputeFeet(width, a.Config.Feet)
	}

	in := PanelBuildInput{
		ID:             id,
		FaceID:         f,
		Width:          width,
		Height:         height,
		Thickness:      a.Material.Thickness,
		WidthFingers:   fingerData[f.widthAxis()],
		HeightFingers:  fingerData[f.heightAxis()],
		EdgeGender:     genders[f],
		EdgeExtensions: a.EdgeExtensions[id],
		Feet:           feet,
	}
	panel, err := BuildFacePanel(in)
	if err != nil {
		return PanelSnapshot{}, err
	}

	outline := panel.Outline
	for key, mod := range a.CornerMods[id] {
		corner, dx, dy, a1, a2, ok := cornerForKey(f, key, width, height)
		if !ok {
			continue
		}
		var cerr error
		outline, cerr = ApplyCornerMod(outline, id, key, corner, dx, dy, in.EdgeGender, a1, a2, mod)
		if cerr != nil {
			return PanelSnapshot{}, cerr
		}
	}

	safe := PanelSafeSpace(width, height, a.Material.Thickness)
	cutouts := a.Cutouts[id]
	for _, c := range cutouts {
		if err := ValidateCutout(id, safe, c); err != nil {
			return PanelSnapshot{}, err
		}
	}

	holes := make([]Path, len(cutouts))
	for i, c := range cutouts {
		holes[i] = c.Points
	}
	holes = append(holes, facePiercingHoles(a, f, fingerData)...)

	return PanelSnapshot{
		ID:         id,
		Kind:       PanelKindFace,
		FaceID:     f,
		Width:      width,
		Height:     height,
		Thickness:  a.Material.Thickness,
		Outline:    outline,
		Holes:      holes,
		EdgeGender: genders[f],
		Cutouts:    cutouts,
	}, nil
}

// cornerForKey maps a corner key back to its nominal (pre-joint) coordinate
// and the pair of edges that meet there, given a face's own panel
// dimensions. Corners are named by the two edges they join.
func cornerForKey(f FaceId, key string, width, height float64) (corner Vec2, dx, dy float64, a, b EdgePosition, ok bool) {
	switch key {
	case "bottom-left":
		return Vec2{0, 0}, 1, 1, EdgeBottom, EdgeLeft, true
	case "bottom-right":
		return Vec2{width, 0}, -1, 1, EdgeBottom, EdgeRight, true
	case "top-right":
		return Vec2{width, height}, -1, -1, EdgeTop, EdgeRight, true
	case "top-left":
		return Vec2{0, height}, 1, -1, EdgeTop, EdgeLeft, true
	default:
		return Vec2{}, 0, 0, 0, 0, false
	}
}

// facePiercingHoles finds every divider plane that pierces face f and
// returns the slot holes cut into it (§4.4).
func facePiercingHoles(a *Assembly, f FaceId, fingerData map[Axis]AssemblyFingerData) []Path {
	var holes []Path
	normalAxis := f.NormalAxis()
	var walk func(v *Void)
	walk = func(v *Void) {
		if v.IsLeaf() {
			return
		}
		if v.SplitAxis != normalAxis && !v.suppressOwnDividers {
			for i := 0; i < len(v.Children)-1; i++ {
				pos := v.Children[i+1].Bounds.Origin(v.SplitAxis) - a.Material.Thickness/2
				if coord, crossAxis, vertical, ok := piercingCoordinate(f, v.SplitAxis, pos, a.Bounds); ok {
					fd := fingerData[crossAxis]
					holes = append(holes, BuildDividerSlotHolesOriented(coord, fd, a.Material.Thickness, vertical)...)
				}
			}
		}
		if len(v.GridPositionsB) > 0 && v.GridAxisB != normalAxis {
			for _, pos := range v.GridPositionsB {
				if coord, crossAxis, vertical, ok := piercingCoordinate(f, v.GridAxisB, pos, a.Bounds); ok {
					fd := fingerData[crossAxis]
					holes = append(holes, BuildDividerSlotHolesOriented(coord, fd, a.Material.Thickness, vertical)...)
				}
			}
		}
		for _, c := range v.Children {
			walk(c)
		}
	}
	walk(a.Root)
	return holes
}

// piercingCoordinate converts a divider plane (perpendicular to splitAxis,
// at world coordinate pos) into face f's local frame, if the plane actually
// intersects f (i.e. splitAxis isn't f's own normal axis).
func piercingCoordinate(f FaceId, splitAxis Axis, pos float64, bounds Bounds3D) (coord float64, crossAxis Axis, vertical bool, ok bool) {
	wa, ha := f.widthAxis(), f.heightAxis()
	switch splitAxis {
	case wa:
		return pos - bounds.Origin(wa), ha, true, true
	case ha:
		return pos - bounds.Origin(ha), wa, false, true
	default:
		return 0, 0, false, false
	}
}

// buildDividerPanels walks the void tree emitting one flat divider panel per
// internal split boundary, with a canonical position-stable id (§4.7,
// §4.12). A divider always presents DividerGender (male) on every edge: it
// terminates either against an outer wall or against an ancestor divider,
// and in both cases it is the divider's own tabs that pierce the thing it
// butts against, never the reverse (§4.2 "DividerGender").
//
// A void split by AddGridSubdivision records its second axis separately
// (GridAxisB/GridPositionsB) and marks its axisA children suppressOwnDividers
// so they don't also emit the axisB dividers as nested per-column segments;
// buildGridDividerPanels builds both axes as full-span siblings instead,
// crossed with cross-lap notches (§4.4, §4.7).
func buildDividerPanels(a *Assembly, v *Void, fingerData map[Axis]AssemblyFingerData) ([]PanelSnapshot, []error) {
	var out []PanelSnapshot
	var errs []error
	if v.SubAssembly != nil {
		nested := RecomputeAssembly(v.SubAssembly.Assembly)
		for i := range nested.Panels {
			nested.Panels[i].ID = fmt.Sprintf("subasm-%s-%s", v.SubAssembly.ID, nested.Panels[i].ID)
		}
		out = append(out, nested.Panels...)
		errs = append(errs, nested.Errors...)
	}
	if v.IsLeaf() {
		return out, errs
	}

	switch {
	case len(v.GridPositionsB) > 0:
		panels, perrs := buildGridDividerPanels(a, v, fingerData)
		out = append(out, panels...)
		errs = append(errs, perrs...)
	case !v.suppressOwnDividers:
		axis1, axis2 := perpendicularAxes(v.SplitAxis)
		boundaries := dividerBoundaries(v, v.SplitAxis, a.Material.Thickness)
		panels, perrs := buildAxisDividerPanels(a, v, v.SplitAxis, axis1, axis2, boundaries, fingerData)
		out = append(out, panels...)
		errs = append(errs, perrs...)
	}

	for _, c := range v.Children {
		childPanels, childErrs := buildDividerPanels(a, c, fingerData)
		out = append(out, childPanels...)
		errs = append(errs, childErrs...)
	}
	return out, errs
}

// dividerBoundaries returns the world-coordinate divider positions along
// splitAxis, derived from v's children's own bounds (each boundary center is
// exactly the position value originally passed to AddSubdivision).
func dividerBoundaries(v *Void, splitAxis Axis, thickness float64) []float64 {
	boundaries := make([]float64, len(v.Children)-1)
	for i := range boundaries {
		boundaries[i] = v.Children[i+1].Bounds.Origin(splitAxis) - thickness/2
	}
	return boundaries
}

// buildAxisDividerPanels builds one full-span divider panel per position in
// boundaries, each spanning v.Bounds along widthAxis/heightAxis (§4.7).
func buildAxisDividerPanels(a *Assembly, v *Void, splitAxis, widthAxis, heightAxis Axis, boundaries []float64, fingerData map[Axis]AssemblyFingerData) ([]PanelSnapshot, []error) {
	var out []PanelSnapshot
	var errs []error
	genders := map[EdgePosition]Gender{
		EdgeTop: DividerGender(), EdgeBottom: DividerGender(),
		EdgeLeft: DividerGender(), EdgeRight: DividerGender(),
	}
	width := v.Bounds.Extent(widthAxis)
	height := v.Bounds.Extent(heightAxis)

	// Each divider's finger pattern is derived fresh from its own actual
	// width/height, the same way a face panel derives its pattern from its
	// own edge length, rather than reused from the whole-assembly axis data:
	// a divider nested under an earlier split only spans part of that axis,
	// so the assembly-wide pattern would not fit it.
	widthData, wErr := ComputeFingerData(width, a.Material)
	heightData, hErr := ComputeFingerData(height, a.Material)

	for _, boundary := range boundaries {
		id := fmt.Sprintf("divider-%s-%s-%.3f", v.ID, splitAxis, boundary)
		if wErr != nil {
			errs = append(errs, wErr)
			continue
		}
		if hErr != nil {
			errs = append(errs, hErr)
			continue
		}

		outline, err := buildRectOutline(width, height, a.Material.Thickness, widthData, heightData, genders, nil, nil, id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, PanelSnapshot{
			ID: id, Kind: PanelKindDivider,
			Width: width, Height: height, Thickness: a.Material.Thickness,
			EdgeGender: genders,
			Outline:    outline,
			Holes:      dividerPiercingHoles(a, v, splitAxis, widthAxis, heightAxis, fingerData),
		})
	}
	return out, errs
}

// buildGridDividerPanels builds the two perpendicular sets of full-span
// divider panels recorded by AddGridSubdivision on v (axisA via
// SplitAxis/Children, axisB via GridAxisB/GridPositionsB), and cuts a
// cross-lap notch into every crossing pair so the two axes interlock as flat
// siblings instead of nesting one inside the other (§4.4, invariant 5).
func buildGridDividerPanels(a *Assembly, v *Void, fingerData map[Axis]AssemblyFingerData) ([]PanelSnapshot, []error) {
	axisA := v.SplitAxis
	axisB := v.GridAxisB
	axisC := thirdAxis(axisA, axisB)

	boundariesA := dividerBoundaries(v, axisA, a.Material.Thickness)
	boundariesB := append([]float64(nil), v.GridPositionsB...)

	panelsA, errsA := buildAxisDividerPanels(a, v, axisA, axisB, axisC, boundariesA, fingerData)
	panelsB, errsB := buildAxisDividerPanels(a, v, axisB, axisA, axisC, boundariesB, fingerData)
	errs := append(errsA, errsB...)

	depth := v.Bounds.Extent(axisC)
	originA := v.Bounds.Origin(axisA)
	originB := v.Bounds.Origin(axisB)
	thickness := a.Material.Thickness

	for i, posA := range boundariesA {
		if i >= len(panelsA) {
			break
		}
		for j, posB := range boundariesB {
			if j >= len(panelsB) {
				break
			}
			localOnA := posB - originB // where the B-divider crosses panel A, in A's local width frame
			localOnB := posA - originA // where the A-divider crosses panel B, in B's local width frame

			var joint CrossLapJoint
			var aIsLower bool
			if axisA < axisB {
				joint = BuildCrossLapJoint(axisA, localOnA, axisB, localOnB, thickness, depth)
				aIsLower = true
			} else {
				joint = BuildCrossLapJoint(axisB, localOnB, axisA, localOnA, thickness, depth)
				aIsLower = false
			}

			notchA, notchB := joint.BottomNotch, joint.TopNotch
			if aIsLower {
				notchA, notchB = joint.TopNotch, joint.BottomNotch
			}
			panelsA[i].Holes = append(panelsA[i].Holes, RectPath(notchA).Reversed())
			panelsB[j].Holes = append(panelsB[j].Holes, RectPath(notchB).Reversed())
		}
	}

	return append(panelsA, panelsB...), errs
}

// thirdAxis returns the axis that is neither a nor b.
func thirdAxis(a, b Axis) Axis {
	for _, ax := range [3]Axis{AxisX, AxisY, AxisZ} {
		if ax != a && ax != b {
			return ax
		}
	}
	return AxisX
}

// dividerPiercingHoles finds slot holes that must be cut into a divider
// panel: wherever a deeper divider, nested in one of hostVoid's two
// children, terminates flush against hostVoid's own divider plane (§4.7).
func dividerPiercingHoles(a *Assembly, hostVoid *Void, splitAxis, axis1, axis2 Axis, fingerData map[Axis]AssemblyFingerData) []Path {
	originAxis1 := hostVoid.Bounds.Origin(axis1)
	originAxis2 := hostVoid.Bounds.Origin(axis2)

	var holes []Path
	var walk func(v *Void)
	walk = func(v *Void) {
		if v.IsLeaf() {
			return
		}
		if v.SplitAxis != splitAxis && !v.suppressOwnDividers {
			for i := 0; i < len(v.Children)-1; i++ {
				pos := v.Children[i+1].Bounds.Origin(v.SplitAxis) - a.Material.Thickness/2

				var coord float64
				var crossAxis Axis
				var vertical bool
				switch v.SplitAxis {
				case axis1:
					coord, crossAxis, vertical = pos-originAxis1, axis2, true
				case axis2:
					coord, crossAxis, vertical = pos-originAxis2, axis1, false
				default:
					continue
				}
				fd := fingerData[crossAxis]
				holes = append(holes, BuildDividerSlotHolesOriented(coord, fd, a.Material.Thickness, vertical)...)
			}
		}
		for _, c := range v.Children {
			walk(c)
		}
	}
	for _, c := range hostVoid.Children {
		walk(c)
	}
	return holes
}

func perpendicularAxes(axis Axis) (Axis, Axis) {
	switch axis {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	default:
		return AxisX, AxisY
	}
}

func buildVoidSnapshot(v *Void) VoidSnapshot {
	vs := VoidSnapshot{ID: v.ID, Bounds: v.Bounds}
	for _, c := range v.Children {
		vs.Children = append(vs.Children, buildVoidSnapshot(c))
	}
	if v.SubAssembly != nil {
		nested := RecomputeAssembly(v.SubAssembly.Assembly)
		vs.SubAssembly = &nested
	}
	return vs
}

package boxen

import "fmt"

// Void is a node in an assembly's interior space tree: either a leaf (empty
// interior volume, or host to a nested SubAssembly) or split into sibling
// Children along SplitAxis by one or more dividers (§4.7, §9 Design Notes —
// a single recursive struct instead of separate Leaf/Split/Hosting types,
// with only downward parent->child links).
type Void struct {
	ID        string
	Bounds    Bounds3D
	SplitAxis Axis
	Children  []*Void
	SubAssembly *SubAssembly

	// GridPositionsB and GridAxisB are set on a void split by
	// AddGridSubdivision, alongside the ordinary SplitAxis/Children recording
	// the first axis's split: they record the second axis's split so the two
	// axes can be built as full-span crossing dividers instead of nesting one
	// inside the other (§4.4, §4.7).
	GridAxisB      Axis
	GridPositionsB []float64

	// suppressOwnDividers marks a first-axis child of AddGridSubdivision that
	// the second axis then splits: those second-axis divider panels are
	// built once, full-span, by the grid parent, so this void must not also
	// emit them.
	suppressOwnDividers bool
}

// IsLeaf reports whether this void has no children (it may still host a
// SubAssembly).
func (v *Void) IsLeaf() bool { return len(v.Children) == 0 }

// SubAssembly is a nested Assembly occupying a leaf void, offset inward by
// Clearance on every side so its own panels don't collide with the parent's
// divider/wall material (§4.7).
type SubAssembly struct {
	ID        string
	Assembly  *Assembly
	Clearance float64
}

// Assembly is a top-level box or a nested box hosted inside a parent void.
// The same struct serves both roles (§9 Design Notes): in either role the
// Root spans the assembly's own interior, derived from its own W/H/D; a
// nested assembly does not record where it sits inside its host void.
type Assembly struct {
	ID       string
	Name     string
	Bounds   Bounds3D // outer W/H/D, origin always local to the assembly
	Material MaterialConfig
	Config   AssemblyConfig
	FaceSolid map[FaceId]bool

	Root *Void

	EdgeExtensions map[string]map[EdgePosition]float64
	CornerMods     map[string]map[string]CornerMod
	Cutouts        map[string][]Cutout

	nextID int
}

// NewAssembly creates an assembly with the given outer dimensions and
// material, all six faces solid, assembly axis Y (so Top/Bottom default to
// the lid pair), and a single leaf void spanning the interior space.
func NewAssembly(id string, w, h, d float64, mat MaterialConfig) (*Assembly, error) {
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	for axis, length := range map[Axis]float64{AxisX: w, AxisY: h, AxisZ: d} {
		if length <= 2*mat.Thickness {
			return nil, &DimensionsInfeasibleError{Axis: axis, Length: length, MT: mat.Thickness}
		}
	}

	faceSolid := make(map[FaceId]bool, len(AllFaces))
	for _, f := range AllFaces {
		faceSolid[f] = true
	}

	a := &Assembly{
		ID:       id,
		Bounds:   Bounds3D{W: w, H: h, D: d},
		Material: mat,
		Config: AssemblyConfig{
			AssemblyAxis: AxisY,
			Lids:         map[LidSide]LidConfig{LidPositive: {}, LidNegative: {}},
		},
		FaceSolid:      faceSolid,
		EdgeExtensions: map[string]map[EdgePosition]float64{},
		CornerMods:     map[string]map[string]CornerMod{},
		Cutouts:        map[string][]Cutout{},
	}
	a.Root = &Void{ID: a.newID("void"), Bounds: a.interiorBounds()}
	return a, nil
}

func (a *Assembly) newID(prefix string) string {
	a.nextID++
	return fmt.Sprintf("%s-%s-%d", a.ID, prefix, a.nextID)
}

// interiorBounds returns the space inside the assembly's six walls: the
// outer bounds inset by material thickness on every side.
func (a *Assembly) interiorBounds() Bounds3D {
	mt := a.Material.Thickness
	return Bounds3D{
		X: mt, Y: mt, Z: mt,
		W: a.Bounds.W - 2*mt,
		H: a.Bounds.H - 2*mt,
		D: a.Bounds.D - 2*mt,
	}
}

// SetDimensions resizes the assembly and rescales the interior void tree
// proportionally, preserving each divider's relative position.
func (a *Assembly) SetDimensions(w, h, d float64) error {
	for axis, length := range map[Axis]float64{AxisX: w, AxisY: h, AxisZ: d} {
		if length <= 2*a.Material.Thickness {
			return &DimensionsInfeasibleError{Axis: axis, Length: length, MT: a.Material.Thickness}
		}
	}
	old := a.interiorBounds()
	a.Bounds = Bounds3D{W: w, H: h, D: d}
	newInterior := a.interiorBounds()
	rescaleVoid(a.Root, old, newInterior)
	return nil
}

// rescaleVoid maps a void subtree from the old interior bounds to the new
// one, preserving each axis's relative split fractions.
func rescaleVoid(v *Void, oldParent, newParent Bounds3D) {
	oldBounds := v.Bounds
	for _, axis := range [...]Axis{AxisX, AxisY, AxisZ} {
		oldOrigin, oldExtent := oldParent.Origin(axis), oldParent.Extent(axis)
		newOrigin, newExtent := newParent.Origin(axis), newParent.Extent(axis)
		if oldExtent == 0 {
			continue
		}
		relOrigin := (v.Bounds.Origin(axis) - oldOrigin) / oldExtent
		relExtent := v.Bounds.Extent(axis) / oldExtent
		v.Bounds = v.Bounds.WithAxis(axis, newOrigin+relOrigin*newExtent, relExtent*newExtent)
	}
	for _, c := range v.Children {
		rescaleVoid(c, oldBounds, v.Bounds)
	}
	if v.SubAssembly != nil {
		// Nested assemblies keep their own configured dimensions; only
		// their anchor point moves with the host void.
	}
}

// SetMaterial updates the assembly's material configuration.
func (a *Assembly) SetMaterial(mat MaterialConfig) error {
	if err := mat.Validate(); err != nil {
		return err
	}
	a.Material = mat
	return nil
}

// SetFaceSolid marks a face present (true) or open/removed (false).
func (a *Assembly) SetFaceSolid(f FaceId, solid bool) { a.FaceSolid[f] = solid }

// ToggleFace flips a face's solid state.
func (a *Assembly) ToggleFace(f FaceId) { a.FaceSolid[f] = !a.FaceSolid[f] }

// SetAssemblyAxis changes which axis pair is treated as the lid.
func (a *Assembly) SetAssemblyAxis(axis Axis) { a.Config.AssemblyAxis = axis }

// SetLidConfig configures one lid side's tab direction and inset.
func (a *Assembly) SetLidConfig(side LidSide, cfg LidConfig) {
	if a.Config.Lids == nil {
		a.Config.Lids = map[LidSide]LidConfig{}
	}
	a.Config.Lids[side] = cfg
}

// SetFeetConfig configures the assembly's feet.
func (a *Assembly) SetFeetConfig(cfg FeetConfig) { a.Config.Feet = cfg }

// FindVoid searches the interior tree (including nested sub-assemblies) for
// the void with the given id.
func (a *Assembly) FindVoid(id string) *Void { return findVoid(a.Root, id) }

func findVoid(v *Void, id string) *Void {
	if v == nil {
		return nil
	}
	if v.ID == id {
		return v
	}
	for _, c := range v.Children {
		if found := findVoid(c, id); found != nil {
			return found
		}
	}
	if v.SubAssembly != nil {
		return findVoid(v.SubAssembly.Assembly.Root, id)
	}
	return nil
}

// AddSubdivision splits the leaf void with the given id into two children
// separated by a divider at the given absolute position along axis (§4.7).
func (a *Assembly) AddSubdivision(voidID string, axis Axis, position float64) error {
	return a.AddSubdivisions(voidID, axis, []float64{position})
}

// AddSubdivisions splits a leaf void into len(positions)+1 children
// separated by dividers at the given absolute, axis-sorted positions.
func (a *Assembly) AddSubdivisions(voidID string, axis Axis, positions []float64) error {
	v := a.FindVoid(voidID)
	if v == nil {
		return &NotALeafVoidError{VoidID: voidID}
	}
	if !v.IsLeaf() || v.SubAssembly != nil {
		return &NotALeafVoidError{VoidID: voidID}
	}

	origin := v.Bounds.Origin(axis)
	extent := v.Bounds.Extent(axis)
	min, max := origin+a.Material.Thickness, origin+extent-a.Material.Thickness
	sorted := append([]float64(nil), positions...)
	for i, pos := range sorted {
		if pos < min || pos > max {
			return &PositionOutOfRangeError{VoidID: voidID, Axis: axis, Position: pos, Min: min, Max: max}
		}
		if i > 0 && pos-sorted[i-1] < a.Material.Thickness {
			return &PositionOutOfRangeError{VoidID: voidID, Axis: axis, Position: pos, Min: sorted[i-1] + a.Material.Thickness, Max: max}
		}
	}

	bounds := make([]float64, 0, len(sorted)+2)
	bounds = append(bounds, origin)
	bounds = append(bounds, sorted...)
	bounds = append(bounds, origin+extent)

	children := make([]*Void, 0, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		childOrigin := bounds[i]
		if i > 0 {
			childOrigin += a.Material.Thickness / 2
		}
		childEnd := bounds[i+1]
		if i < len(bounds)-2 {
			childEnd -= a.Material.Thickness / 2
		}
		child := &Void{ID: a.newID("void"), Bounds: v.Bounds.WithAxis(axis, childOrigin, childEnd-childOrigin)}
		children = append(children, child)
	}

	v.SplitAxis = axis
	v.Children = children
	return nil
}

// AddGridSubdivision splits a leaf void along two perpendicular axes in one
// step, producing a grid of (len(positionsA)+1) x (len(positionsB)+1)
// leaf voids (§4.7). The two axes' dividers are built as full-span siblings
// crossing each other with cross-lap joints, not nested T-junctions: see
// buildGridDividerPanels in snapshot.go.
func (a *Assembly) AddGridSubdivision(voidID string, axisA Axis, positionsA []float64, axisB Axis, positionsB []float64) error {
	if err := a.AddSubdivisions(voidID, axisA, positionsA); err != nil {
		return err
	}
	v := a.FindVoid(voidID)
	for _, child := range v.Children {
		if err := a.AddSubdivisions(child.ID, axisB, positionsB); err != nil {
			return err
		}
		child.suppressOwnDividers = true
	}
	v.GridAxisB = axisB
	v.GridPositionsB = append([]float64(nil), positionsB...)
	return nil
}

// RemoveSubdivision collapses a split void back into a single leaf,
// discarding its dividers and children.
func (a *Assembly) RemoveSubdivision(voidID string) error {
	v := a.FindVoid(voidID)
	if v == nil || v.IsLeaf() {
		return &NotALeafVoidError{VoidID: voidID}
	}
	v.Children = nil
	v.GridPositionsB = nil
	return nil
}

// CreateSubAssembly replaces a leaf void with a nested assembly, inset by
// clearance on every side, after checking it fits.
func (a *Assembly) CreateSubAssembly(voidID string, w, h, d float64, mat MaterialConfig, clearance float64) (*Assembly, error) {
	v := a.FindVoid(voidID)
	if v == nil || !v.IsLeaf() {
		return nil, &NotALeafVoidError{VoidID: voidID}
	}

	required := Bounds3D{W: w + 2*clearance, H: h + 2*clearance, D: d + 2*clearance}
	available := v.Bounds
	if required.W > available.W || required.H > available.H || required.D > available.D {
		return nil, &SubAssemblyTooLargeError{VoidID: voidID, Required: required, Available: available}
	}

	nested, err := NewAssembly(a.newID("asm"), w, h, d, mat)
	if err != nil {
		return nil, err
	}
	v.SubAssembly = &SubAssembly{ID: a.newID("subasm"), Assembly: nested, Clearance: clearance}
	return nested, nil
}

// RemoveSubAssembly clears a void's nested assembly, returning it to an
// empty leaf.
func (a *Assembly) RemoveSubAssembly(voidID string) error {
	v := a.FindVoid(voidID)
	if v == nil || v.SubAssembly == nil {
		return &NotALeafVoidError{VoidID: voidID}
	}
	v.SubAssembly = nil
	return nil
}

// LeafVoids returns every leaf void in the tree, in a stable left-to-right
// traversal order, not descending into nested sub-assemblies.
func (a *Assembly) LeafVoids() []*Void {
	var out []*Void
	var walk func(v *Void)
	walk = func(v *Void) {
		if v.IsLeaf() {
			out = append(out, v)
			return
		}
		for _, c := range v.Children {
			walk(c)
		}
	}
	walk(a.Root)
	return out
}

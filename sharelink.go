package boxen

import "encoding/json"

// VoidState is the serializable form of a Void: plain data, no pointers,
// safe to round-trip through JSON (§4.12).
type VoidState struct {
	ID                   string         `json:"id"`
	Bounds               Bounds3D       `json:"bounds"`
	SplitAxis            Axis           `json:"splitAxis,omitempty"`
	Children             []VoidState    `json:"children,omitempty"`
	SubAssembly          *AssemblyState `json:"subAssembly,omitempty"`
	SubAssemblyID        string         `json:"subAssemblyId,omitempty"`
	SubAssemblyClearance float64        `json:"subAssemblyClearance,omitempty"`
}

// AssemblyState is the serializable form of an Assembly.
type AssemblyState struct {
	ID             string                             `json:"id"`
	Bounds         Bounds3D                           `json:"bounds"`
	Material       MaterialConfig                     `json:"material"`
	Config         AssemblyConfig                     `json:"config"`
	FaceSolid      map[FaceId]bool                     `json:"faceSolid"`
	Root           VoidState                           `json:"root"`
	EdgeExtensions map[string]map[EdgePosition]float64 `json:"edgeExtensions,omitempty"`
	CornerMods     map[string]map[string]CornerMod     `json:"cornerMods,omitempty"`
	Cutouts        map[string][]Cutout                 `json:"cutouts,omitempty"`
}

// ProjectState is the full serializable form of a Scene: every assembly's
// configuration and void tree, with no derived panel data (panels are
// always rederived from this state, never serialized themselves).
type ProjectState struct {
	Assemblies []AssemblyState `json:"assemblies"`
}

// EncodeProjectState captures a Scene's mutable state into a ProjectState.
func EncodeProjectState(s *Scene) ProjectState {
	ps := ProjectState{Assemblies: make([]AssemblyState, len(s.Assemblies))}
	for i, a := range s.Assemblies {
		ps.Assemblies[i] = encodeAssembly(a)
	}
	return ps
}

func encodeAssembly(a *Assembly) AssemblyState {
	return AssemblyState{
		ID:             a.ID,
		Bounds:         a.Bounds,
		Material:       a.Material,
		Config:         a.Config,
		FaceSolid:      a.FaceSolid,
		Root:           encodeVoid(a.Root),
		EdgeExtensions: a.EdgeExtensions,
		CornerMods:     a.CornerMods,
		Cutouts:        a.Cutouts,
	}
}

func encodeVoid(v *Void) VoidState {
	vs := VoidState{ID: v.ID, Bounds: v.Bounds, SplitAxis: v.SplitAxis}
	for _, c := range v.Children {
		vs.Children = append(vs.Children, encodeVoid(c))
	}
	if v.SubAssembly != nil {
		sub := encodeAssembly(v.SubAssembly.Assembly)
		vs.SubAssembly = &sub
		vs.SubAssemblyID = v.SubAssembly.ID
		vs.SubAssemblyClearance = v.SubAssembly.Clearance
	}
	return vs
}

// DecodeProjectState reconstructs a Scene from a ProjectState.
func DecodeProjectState(ps ProjectState) *Scene {
	s := &Scene{Assemblies: make([]*Assembly, len(ps.Assemblies))}
	for i, as := range ps.Assemblies {
		s.Assemblies[i] = decodeAssembly(as)
	}
	return s
}

func decodeAssembly(as AssemblyState) *Assembly {
	a := &Assembly{
		ID:             as.ID,
		Bounds:         as.Bounds,
		Material:       as.Material,
		Config:         as.Config,
		FaceSolid:      as.FaceSolid,
		EdgeExtensions: as.EdgeExtensions,
		CornerMods:     as.CornerMods,
		Cutouts:        as.Cutouts,
	}
	if a.EdgeExtensions == nil {
		a.EdgeExtensions = map[string]map[EdgePosition]float64{}
	}
	if a.CornerMods == nil {
		a.CornerMods = map[string]map[string]CornerMod{}
	}
	if a.Cutouts == nil {
		a.Cutouts = map[string][]Cutout{}
	}
	a.Root = decodeVoid(as.Root)
	return a
}

func decodeVoid(vs VoidState) *Void {
	v := &Void{ID: vs.ID, Bounds: vs.Bounds, SplitAxis: vs.SplitAxis}
	for _, c := range vs.Children {
		v.Children = append(v.Children, decodeVoid(c))
	}
	if vs.SubAssembly != nil {
		v.SubAssembly = &SubAssembly{ID: vs.SubAssemblyID, Clearance: vs.SubAssemblyClearance, Assembly: decodeAssembly(*vs.SubAssembly)}
	}
	return v
}

// MarshalShareLink serializes a Scene to its canonical JSON share-link form.
func MarshalShareLink(s *Scene) ([]byte, error) {
	return json.Marshal(EncodeProjectState(s))
}

// UnmarshalShareLink parses a share-link payload back into a Scene.
func UnmarshalShareLink(data []byte) (*Scene, error) {
	var ps ProjectState
	if err := json.Unmarshal(data, &ps); err != nil {
		return nil, err
	}
	return DecodeProjectState(ps), nil
}

// CanonicalFaceKey builds the stable panel id for a face of the top-level
// assembly (§4.12).
func CanonicalFaceKey(f FaceId) string { return "face-" + f.String() }

package boxen

// ActionType identifies the kind of mutation an Action requests (§6).
type ActionType uint8

const (
	ActionCreateAssembly ActionType = iota
	ActionSetDimensions
	ActionSetMaterial
	ActionToggleFace
	ActionSetFaceSolid
	ActionSetAssemblyAxis
	ActionSetLidConfig
	ActionSetFeetConfig
	ActionAddSubdivision
	ActionAddSubdivisions
	ActionAddGridSubdivision
	ActionRemoveSubdivision
	ActionCreateSubAssembly
	ActionRemoveSubAssembly
	ActionSetEdgeExtension
	ActionSetCornerFillet
	ActionSetAllCornerFilletsBatch
	ActionAddCutout
	ActionRemoveCutout
)

// Action is a single requested mutation, dispatched through Engine.Dispatch
// (§6). Payload holds one of the Action*Payload types below, matched to
// Type.
type Action struct {
	Type       ActionType
	AssemblyID string
	Payload    any
}

// CreateAssemblyPayload creates a new top-level assembly.
type CreateAssemblyPayload struct {
	W, H, D  float64
	Material MaterialConfig
}

// SetDimensionsPayload resizes an existing assembly.
type SetDimensionsPayload struct {
	W, H, D float64
}

// SetMaterialPayload updates an assembly's material.
type SetMaterialPayload struct {
	Material MaterialConfig
}

// ToggleFacePayload flips one face's solid state.
type ToggleFacePayload struct {
	Face FaceId
}

// SetFaceSolidPayload explicitly sets one face's solid state.
type SetFaceSolidPayload struct {
	Face  FaceId
	Solid bool
}

// SetAssemblyAxisPayload changes which axis is treated as the lid axis.
type SetAssemblyAxisPayload struct {
	Axis Axis
}

// SetLidConfigPayload configures one lid side.
type SetLidConfigPayload struct {
	Side   LidSide
	Config LidConfig
}

// SetFeetConfigPayload configures the assembly's feet.
type SetFeetConfigPayload struct {
	Feet FeetConfig
}

// AddSubdivisionPayload splits a leaf void in two.
type AddSubdivisionPayload struct {
	VoidID   string
	Axis     Axis
	Position float64
}

// AddSubdivisionsPayload splits a leaf void at several positions at once.
type AddSubdivisionsPayload struct {
	VoidID    string
	Axis      Axis
	Positions []float64
}

// AddGridSubdivisionPayload splits a leaf void along two axes at once.
type AddGridSubdivisionPayload struct {
	VoidID     string
	AxisA      Axis
	PositionsA []float64
	AxisB      Axis
	PositionsB []float64
}

// RemoveSubdivisionPayload collapses a split void back to a leaf.
type RemoveSubdivisionPayload struct {
	VoidID string
}

// CreateSubAssemblyPayload nests a new assembly inside a leaf void.
type CreateSubAssemblyPayload struct {
	VoidID    string
	W, H, D   float64
	Material  MaterialConfig
	Clearance float64
}

// RemoveSubAssemblyPayload clears a void's nested assembly.
type RemoveSubAssemblyPayload struct {
	VoidID string
}

// SetEdgeExtensionPayload extends a non-male panel edge past its base
// length.
type SetEdgeExtensionPayload struct {
	PanelID string
	Edge    EdgePosition
	Length  float64
}

// SetCornerFilletPayload applies a fillet or chamfer to one eligible panel
// corner.
type SetCornerFilletPayload struct {
	PanelID   string
	CornerKey string
	Mod       CornerMod
}

// SetAllCornerFilletsBatchPayload applies the same corner mod to every
// eligible corner of a panel in one action.
type SetAllCornerFilletsBatchPayload struct {
	PanelID string
	Mod     CornerMod
}

// AddCutoutPayload adds a cutout to a face panel.
type AddCutoutPayload struct {
	PanelID string
	Cutout  Cutout
}

// RemoveCutoutPayload removes a previously added cutout by id.
type RemoveCutoutPayload struct {
	PanelID  string
	CutoutID string
}

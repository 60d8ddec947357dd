package boxen

// VarRef is either a literal value or a reference to a named template
// variable, resolved at instantiation time (§4.11).
type VarRef struct {
	Literal float64
	VarName string
}

// Lit wraps a literal value.
func Lit(v float64) VarRef { return VarRef{Literal: v} }

// Var references a named template variable.
func Var(name string) VarRef { return VarRef{VarName: name} }

// Resolve returns the referenced variable's value from vars, falling back
// to Literal if VarName is empty or not found in vars.
func (r VarRef) Resolve(vars map[string]float64) float64 {
	if r.VarName == "" {
		return r.Literal
	}
	if v, ok := vars[r.VarName]; ok {
		return v
	}
	return r.Literal
}

func resolveAll(refs []VarRef, vars map[string]float64) []float64 {
	out := make([]float64, len(refs))
	for i, r := range refs {
		out[i] = r.Resolve(vars)
	}
	return out
}

// TemplateDimensions parameterizes an assembly's outer dimensions.
type TemplateDimensions struct {
	W, H, D VarRef
}

// SubdivisionConfig parameterizes a single-divider AddSubdivision action.
type SubdivisionConfig struct {
	VoidID   string
	Axis     Axis
	Position VarRef
}

// GridSubdivisionConfig parameterizes an AddGridSubdivision action.
type GridSubdivisionConfig struct {
	VoidID     string
	AxisA      Axis
	PositionsA []VarRef
	AxisB      Axis
	PositionsB []VarRef
}

// Template describes a reusable, parameterized assembly recipe: an initial
// create-assembly step, a sequence of subdivisions whose positions may
// reference named variables, and any further actions (face toggles, lid
// config, feet, cutouts) replayed verbatim (§4.11). Only dimensions and
// subdivision positions are parameterized; this is a deliberate scope
// decision (see DESIGN.md) rather than a full expression language.
type Template struct {
	ID               string
	Vars             map[string]float64 // name -> default value
	Dimensions       TemplateDimensions
	Material         MaterialConfig
	Subdivisions     []SubdivisionConfig
	GridSubdivisions []GridSubdivisionConfig
	ExtraActions     []Action
}

// Instantiate replays a Template into a fresh Engine, substituting overrides
// (falling back to the template's own defaults) for its variables, and
// returns the resulting engine so the caller can Snapshot or keep mutating
// it.
func Instantiate(tpl Template, overrides map[string]float64) (*Engine, error) {
	vars := make(map[string]float64, len(tpl.Vars)+len(overrides))
	for k, v := range tpl.Vars {
		vars[k] = v
	}
	for k, v := range overrides {
		vars[k] = v
	}

	eng := NewEngine(EngineOptions{})
	assemblyID := tpl.ID
	create := Action{
		Type:       ActionCreateAssembly,
		AssemblyID: assemblyID,
		Payload: CreateAssemblyPayload{
			W:        tpl.Dimensions.W.Resolve(vars),
			H:        tpl.Dimensions.H.Resolve(vars),
			D:        tpl.Dimensions.D.Resolve(vars),
			Material: tpl.Material,
		},
	}
	if err := eng.Dispatch(create, DispatchOptions{}); err != nil {
		return nil, err
	}

	for _, sc := range tpl.Subdivisions {
		act := Action{
			Type:       ActionAddSubdivision,
			AssemblyID: assemblyID,
			Payload:    AddSubdivisionPayload{VoidID: sc.VoidID, Axis: sc.Axis, Position: sc.Position.Resolve(vars)},
		}
		if err := eng.Dispatch(act, DispatchOptions{}); err != nil {
			return nil, err
		}
	}

	for _, gc := range tpl.GridSubdivisions {
		act := Action{
			Type:       ActionAddGridSubdivision,
			AssemblyID: assemblyID,
			Payload: AddGridSubdivisionPayload{
				VoidID:     gc.VoidID,
				AxisA:      gc.AxisA,
				PositionsA: resolveAll(gc.PositionsA, vars),
				AxisB:      gc.AxisB,
				PositionsB: resolveAll(gc.PositionsB, vars),
			},
		}
		if err := eng.Dispatch(act, DispatchOptions{}); err != nil {
			return nil, err
		}
	}

	for _, act := range tpl.ExtraActions {
		if act.AssemblyID == "" {
			act.AssemblyID = assemblyID
		}
		if err := eng.Dispatch(act, DispatchOptions{}); err != nil {
			return nil, err
		}
	}

	return eng, nil
}

package boxen

import (
	"fmt"
	"log/slog"

	"github.com/maxthelion/boxen-sub012/events"
)

// Logger is the minimal logging surface the engine uses for debug-mode
// diagnostics, matching the optional-callback shape the teacher's Scene
// uses for its own debug instrumentation. A nil Logger falls back to
// slog.Default().
type Logger interface {
	Debug(msg string, args ...any)
}

// EngineOptions configures a new Engine, in the same spirit as the teacher
// package's RunConfig configures Run.
type EngineOptions struct {
	// Logger receives debug diagnostics when DebugMode is enabled. If nil,
	// slog.Default() is used.
	Logger Logger
	// DebugMode enables debug logging: each successful Dispatch logs one
	// debug line. It adds no invariant checks and never panics.
	DebugMode bool
}

// DispatchOptions controls a single Dispatch call.
type DispatchOptions struct {
	// Preview routes the action to the engine's preview scene (see
	// StartPreview) instead of its committed scene.
	Preview bool
}

// Engine owns a Scene (and, while one is active, a preview clone of it) and
// is the sole entry point for mutating it: every change flows through
// Dispatch, never direct field access (§4.10, §9 Design Notes).
type Engine struct {
	scene   *Scene
	preview *Scene

	opts EngineOptions
	bus  *events.Bus[SceneSnapshot]
}

// NewEngine creates an Engine with an empty scene.
func NewEngine(opts EngineOptions) *Engine {
	return &Engine{
		scene: &Scene{},
		opts:  opts,
		bus:   events.NewBus[SceneSnapshot](),
	}
}

// SetDebugMode toggles debug-mode logging (see EngineOptions.DebugMode),
// mirroring Scene.SetDebugMode in the teacher package.
func (e *Engine) SetDebugMode(enabled bool) { e.opts.DebugMode = enabled }

func (e *Engine) logDebug(msg string, args ...any) {
	if !e.opts.DebugMode {
		return
	}
	if e.opts.Logger != nil {
		e.opts.Logger.Debug(msg, args...)
		return
	}
	slog.Default().Debug(msg, args...)
}

// activeScene returns the preview scene if one is active, else the
// committed scene.
func (e *Engine) activeScene(preview bool) *Scene {
	if preview && e.preview != nil {
		return e.preview
	}
	return e.scene
}

// Dispatch applies a single Action to the engine's scene (or its preview
// clone, per opts.Preview), returning a precondition error if the action
// cannot be applied. Derivation-time problems (joint misalignment, cutout
// placement) are not returned here; they surface on the next Snapshot
// (§4.10, §7).
func (e *Engine) Dispatch(action Action, opts DispatchOptions) error {
	scene := e.activeScene(opts.Preview)

	var err error
	switch action.Type {
	case ActionCreateAssembly:
		err = e.dispatchCreateAssembly(scene, action)
	default:
		err = e.dispatchOnAssembly(scene, action)
	}
	if err != nil {
		return err
	}

	e.logDebug("dispatch", "type", action.Type, "assembly", action.AssemblyID, "preview", opts.Preview)
	e.notifyChanged()
	return nil
}

func (e *Engine) dispatchCreateAssembly(scene *Scene, action Action) error {
	payload, ok := action.Payload.(CreateAssemblyPayload)
	if !ok {
		return fmt.Errorf("boxen: ActionCreateAssembly requires a CreateAssemblyPayload")
	}
	id := action.AssemblyID
	if id == "" {
		id = fmt.Sprintf("assembly-%d", len(scene.Assemblies)+1)
	}
	a, err := NewAssembly(id, payload.W, payload.H, payload.D, payload.Material)
	if err != nil {
		return err
	}
	scene.Assemblies = append(scene.Assemblies, a)
	return nil
}

func (e *Engine) findAssembly(scene *Scene, id string) *Assembly {
	for _, a := range scene.Assemblies {
		if a.ID == id {
			return a
		}
	}
	for _, a := range scene.Assemblies {
		if nested := findNestedAssembly(a.Root, id); nested != nil {
			return nested
		}
	}
	return nil
}

func findNestedAssembly(v *Void, id string) *Assembly {
	if v == nil {
		return nil
	}
	if v.SubAssembly != nil {
		if v.SubAssembly.Assembly.ID == id {
			return v.SubAssembly.Assembly
		}
		if nested := findNestedAssembly(v.SubAssembly.Assembly.Root, id); nested != nil {
			return nested
		}
	}
	for _, c := range v.Children {
		if nested := findNestedAssembly(c, id); nested != nil {
			return nested
		}
	}
	return nil
}

// dispatchOnAssembly routes every action other than ActionCreateAssembly to
// the named assembly.
func (e *Engine) dispatchOnAssembly(scene *Scene, action Action) error {
	a := e.findAssembly(scene, action.AssemblyID)
	if a == nil {
		return fmt.Errorf("boxen: no assembly %q", action.AssemblyID)
	}

	switch action.Type {
	case ActionSetDimensions:
		p := action.Payload.(SetDimensionsPayload)
		return a.SetDimensions(p.W, p.H, p.D)
	case ActionSetMaterial:
		p := action.Payload.(SetMaterialPayload)
		return a.SetMaterial(p.Material)
	case ActionToggleFace:
		p := action.Payload.(ToggleFacePayload)
		a.ToggleFace(p.Face)
		return nil
	case ActionSetFaceSolid:
		p := action.Payload.(SetFaceSolidPayload)
		a.SetFaceSolid(p.Face, p.Solid)
		return nil
	case ActionSetAssemblyAxis:
		p := action.Payload.(SetAssemblyAxisPayload)
		a.SetAssemblyAxis(p.Axis)
		return nil
	case ActionSetLidConfig:
		p := action.Payload.(SetLidConfigPayload)
		a.SetLidConfig(p.Side, p.Config)
		return nil
	case ActionSetFeetConfig:
		p := action.Payload.(SetFeetConfigPayload)
		a.SetFeetConfig(p.Feet)
		return nil
	case ActionAddSubdivision:
		p := action.Payload.(AddSubdivisionPayload)
		return a.AddSubdivision(p.VoidID, p.Axis, p.Position)
	case ActionAddSubdivisions:
		p := action.Payload.(AddSubdivisionsPayload)
		return a.AddSubdivisions(p.VoidID, p.Axis, p.Positions)
	case ActionAddGridSubdivision:
		p := action.Payload.(AddGridSubdivisionPayload)
		return a.AddGridSubdivision(p.VoidID, p.AxisA, p.PositionsA, p.AxisB, p.PositionsB)
	case ActionRemoveSubdivision:
		p := action.Payload.(RemoveSubdivisionPayload)
		return a.RemoveSubdivision(p.VoidID)
	case ActionCreateSubAssembly:
		p := action.Payload.(CreateSubAssemblyPayload)
		_, err := a.CreateSubAssembly(p.VoidID, p.W, p.H, p.D, p.Material, p.Clearance)
		return err
	case ActionRemoveSubAssembly:
		p := action.Payload.(RemoveSubAssemblyPayload)
		return a.RemoveSubAssembly(p.VoidID)
	case ActionSetEdgeExtension:
		p := action.Payload.(SetEdgeExtensionPayload)
		if a.EdgeExtensions[p.PanelID] == nil {
			a.EdgeExtensions[p.PanelID] = map[EdgePosition]float64{}
		}
		a.EdgeExtensions[p.PanelID][p.Edge] = p.Length
		return nil
	case ActionSetCornerFillet:
		p := action.Payload.(SetCornerFilletPayload)
		if a.CornerMods[p.PanelID] == nil {
			a.CornerMods[p.PanelID] = map[string]CornerMod{}
		}
		a.CornerMods[p.PanelID][p.CornerKey] = p.Mod
		return nil
	case ActionSetAllCornerFilletsBatch:
		p := action.Payload.(SetAllCornerFilletsBatchPayload)
		if a.CornerMods[p.PanelID] == nil {
			a.CornerMods[p.PanelID] = map[string]CornerMod{}
		}
		genders := ResolveGender(a.Config)
		applyOpenFaceGenders(genders, a.FaceSolid)
		var edges map[EdgePosition]Gender
		for _, f := range AllFaces {
			if CanonicalFaceKey(f) == p.PanelID {
				edges = genders[f]
			}
		}
		for _, key := range []string{"bottom-left", "bottom-right", "top-right", "top-left"} {
			if _, _, _, e1, e2, _ := cornerForKey(FaceFront, key, 0, 0); cornerEligible(edges, e1, e2) {
				a.CornerMods[p.PanelID][key] = p.Mod
			}
		}
		return nil
	case ActionAddCutout:
		p := action.Payload.(AddCutoutPayload)
		a.Cutouts[p.PanelID] = append(a.Cutouts[p.PanelID], p.Cutout)
		return nil
	case ActionRemoveCutout:
		p := action.Payload.(RemoveCutoutPayload)
		cutouts := a.Cutouts[p.PanelID]
		for i, c := range cutouts {
			if c.ID == p.CutoutID {
				a.Cutouts[p.PanelID] = append(cutouts[:i], cutouts[i+1:]...)
				return nil
			}
		}
		return nil
	default:
		return fmt.Errorf("boxen: unknown action type %v", action.Type)
	}
}

// StartPreview clones the committed scene into a preview session: actions
// dispatched with DispatchOptions{Preview: true} mutate the clone, leaving
// the committed scene untouched until CommitPreview or DiscardPreview (§5).
func (e *Engine) StartPreview() {
	e.preview = e.scene.Clone()
}

// CommitPreview replaces the committed scene with the preview clone and
// ends the preview session.
func (e *Engine) CommitPreview() {
	if e.preview == nil {
		return
	}
	e.scene = e.preview
	e.preview = nil
	e.notifyChanged()
}

// DiscardPreview ends the preview session without applying its changes.
func (e *Engine) DiscardPreview() {
	if e.preview == nil {
		return
	}
	e.preview = nil
	e.notifyChanged()
}

// Snapshot derives a SceneSnapshot from the engine's committed scene.
func (e *Engine) Snapshot() SceneSnapshot {
	return e.scene.Snapshot()
}

// PreviewSnapshot derives a SceneSnapshot from the engine's preview scene,
// if one is active; otherwise it behaves like Snapshot.
func (e *Engine) PreviewSnapshot() SceneSnapshot {
	return e.activeScene(true).Snapshot()
}

// OnSnapshotChanged registers a callback invoked after every Dispatch,
// CommitPreview, and DiscardPreview, with the resulting committed-scene
// snapshot.
func (e *Engine) OnSnapshotChanged(handler func(SceneSnapshot)) {
	e.bus.Subscribe(handler)
}

func (e *Engine) notifyChanged() {
	e.bus.Publish(e.scene.Snapshot())
}

// Package boxen is a parametric geometry engine for laser-cut boxes.
//
// Given an assembly (outer dimensions, material thickness, per-face
// open/solid state, lid insets, axis-aligned subdivisions of the interior
// into voids and dividers, edge extensions, corner fillets/chamfers, panel
// cutouts) boxen deterministically derives the set of 2D flat panels that,
// cut and assembled, form the box. Every panel's outline includes
// interlocking finger-joint tabs and slots computed so mating panels
// physically align.
//
// # Quick start
//
//	eng := boxen.NewEngine(boxen.EngineOptions{})
//	err := eng.Dispatch(boxen.Action{
//		Type: boxen.ActionCreateAssembly,
//		Payload: boxen.CreateAssemblyPayload{
//			W: 100, H: 80, D: 60,
//			Material: boxen.MaterialConfig{Thickness: 3, FingerWidth: 12.8, FingerGap: 0.12},
//		},
//	}, boxen.DispatchOptions{})
//	snap := eng.Snapshot()
//
// # Scene tree
//
// A [Scene] owns a list of top-level [Assembly] nodes. An Assembly owns an
// interior [Void] tree: leaf voids may be subdivided into further voids
// separated by divider panels, or replaced by a [SubAssembly] (a nested
// Assembly). Mutations flow exclusively through [Engine.Dispatch]; the
// derived panel/finger/joint data is recomputed bottom-up on
// [Engine.Snapshot], mirroring a dirty-flagged scene graph where only
// downward parent->child links are ever stored (see DESIGN.md, "Design
// Notes").
//
// # Preview sessions
//
// [Engine.StartPreview] clones the scene so that in-progress parameter
// edits (e.g. a slider drag) can be explored and either committed or
// discarded without touching the main scene. [Engine.OnSnapshotChanged]
// registers a callback invoked after every dispatch, commit, or discard.
package boxen

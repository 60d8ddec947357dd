package boxen

// ValidateAssemblySnapshot runs every path- and joint-level invariant check
// against a derived snapshot, aggregating failures rather than stopping at
// the first one (§4.9). RecomputeAssembly itself checks each outline only
// for duplicate points and axis alignment; this pass adds the point-count,
// winding, hole-placement and joint-length checks, appends the snapshot's
// recorded errors, and lets a caller re-validate a snapshot obtained any
// other way (e.g. after deserializing a share link) without rebuilding it
// from scratch.
func ValidateAssemblySnapshot(snap AssemblySnapshot) []error {
	var errs []error

	for _, p := range snap.Panels {
		minPts := 4
		if p.Kind == PanelKindFace {
			minPts = 8 // a rectangle with at least one joint transition per edge
		}
		if err := validateMinPoints(p.Outline, minPts, p.ID); err != nil {
			errs = append(errs, err)
		}
		if err := validateNoDuplicates(p.Outline, p.ID); err != nil {
			errs = append(errs, err)
		}
		if !p.Outline.IsCCW() {
			errs = append(errs, &GeometryInvariantViolation{PanelID: p.ID, Reason: "outline does not wind CCW"})
		}
		for _, h := range p.Holes {
			if h.IsCCW() {
				errs = append(errs, &GeometryInvariantViolation{PanelID: p.ID, Reason: "hole does not wind CW"})
			}
			if err := validateHoleInside(p.Outline, h, 0, p.ID); err != nil {
				errs = append(errs, err)
			}
		}
	}

	errs = append(errs, ValidateJoints(snap)...)
	errs = append(errs, snap.Errors...)
	return errs
}

// ValidateSceneSnapshot validates every assembly in a scene snapshot.
func ValidateSceneSnapshot(snap SceneSnapshot) []error {
	var errs []error
	for _, a := range snap.Assemblies {
		errs = append(errs, ValidateAssemblySnapshot(a)...)
	}
	return errs
}

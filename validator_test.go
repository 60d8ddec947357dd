package boxen

import "testing"

func TestValidateAssemblySnapshotCleanOnFreshBox(t *testing.T) {
	a := newTestAssembly(t)
	snap := RecomputeAssembly(a)
	if errs := ValidateAssemblySnapshot(snap); len(errs) != 0 {
		t.Errorf("expected a fresh box to validate cleanly, got %v", errs)
	}
}

func TestValidateAssemblySnapshotCatchesNonCCWOutline(t *testing.T) {
	a := newTestAssembly(t)
	snap := RecomputeAssembly(a)
	for i, p := range snap.Panels {
		if p.Kind == PanelKindFace {
			snap.Panels[i].Outline = p.Outline.Reversed()
			break
		}
	}
	errs := ValidateAssemblySnapshot(snap)
	if len(errs) == 0 {
		t.Fatal("expected reversing a face outline's winding to be caught")
	}
}

func TestValidateSceneSnapshotAggregatesAcrossAssemblies(t *testing.T) {
	a1 := newTestAssembly(t)
	a2, err := NewAssembly("box2", 100, 100, 100, testMaterial())
	if err != nil {
		t.Fatalf("NewAssembly: %v", err)
	}
	scene := &Scene{Assemblies: []*Assembly{a1, a2}}
	errs := ValidateSceneSnapshot(scene.Snapshot())
	if len(errs) != 0 {
		t.Errorf("expected two fresh boxes to validate cleanly, got %v", errs)
	}
}

package boxen

import "testing"

func sampleTemplate() Template {
	return Template{
		ID:   "crate",
		Vars: map[string]float64{"width": 300, "divider": 150},
		Dimensions: TemplateDimensions{
			W: Var("width"),
			H: Lit(200),
			D: Lit(150),
		},
		Material: testMaterial(),
	}
}

func TestInstantiateUsesDefaultVars(t *testing.T) {
	eng, err := Instantiate(sampleTemplate(), nil)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	snap := eng.Snapshot()
	if snap.Assemblies[0].Bounds.W != 300 {
		t.Errorf("Bounds.W = %v, want 300 (default)", snap.Assemblies[0].Bounds.W)
	}
}

func TestInstantiateAppliesOverrides(t *testing.T) {
	eng, err := Instantiate(sampleTemplate(), map[string]float64{"width": 400})
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	snap := eng.Snapshot()
	if snap.Assemblies[0].Bounds.W != 400 {
		t.Errorf("Bounds.W = %v, want 400 (override)", snap.Assemblies[0].Bounds.W)
	}
}

func TestInstantiateReplaysSubdivisions(t *testing.T) {
	tpl := sampleTemplate()
	// Void ids are deterministic given a fixed assembly id: a fresh
	// assembly's root void is always "<id>-void-1".
	tpl.Subdivisions = []SubdivisionConfig{
		{VoidID: tpl.ID + "-void-1", Axis: AxisX, Position: Var("divider")},
	}

	eng, err := Instantiate(tpl, nil)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	snap := eng.Snapshot()
	if len(snap.Assemblies[0].Root.Children) != 2 {
		t.Errorf("expected the templated subdivision to split the root void, got %d children", len(snap.Assemblies[0].Root.Children))
	}
}

func TestVarRefResolveFallsBackToLiteral(t *testing.T) {
	r := Var("missing")
	if got := r.Resolve(map[string]float64{"other": 5}); got != 0 {
		t.Errorf("Resolve of an unset variable with zero literal = %v, want 0", got)
	}

	lit := Lit(42)
	if got := lit.Resolve(map[string]float64{"anything": 1}); got != 42 {
		t.Errorf("Resolve of a literal should ignore vars: got %v, want 42", got)
	}
}

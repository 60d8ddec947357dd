package boxen

import "testing"

func TestComputeFeetDisabledReturnsNil(t *testing.T) {
	if feet := ComputeFeet(200, FeetConfig{Enabled: false}); feet != nil {
		t.Errorf("expected no feet when disabled, got %v", feet)
	}
}

func TestComputeFeetPositionsSymmetrically(t *testing.T) {
	cfg := FeetConfig{Enabled: true, Height: 10, Width: 15, Inset: 5, Gap: 20}
	feet := ComputeFeet(200, cfg)
	if len(feet) != 2 {
		t.Fatalf("expected 2 feet, got %d", len(feet))
	}
	if feet[0].X != 5 {
		t.Errorf("left foot X = %v, want 5", feet[0].X)
	}
	wantRightX := 200.0 - 5 - 15
	if feet[1].X != wantRightX {
		t.Errorf("right foot X = %v, want %v", feet[1].X, wantRightX)
	}
}

func TestApplyFeetToBottomEdgeStaysAxisAligned(t *testing.T) {
	// A bottom edge zigzag with a level change (a finger step) at X=30.
	pts := []Vec2{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: -3},
		{X: 30, Y: -3},
		{X: 30, Y: 0},
		{X: 50, Y: 0},
	}

	// This foot's span [25,35] straddles the X=30 level change.
	feet := []FootRect{{X: 25, Width: 10, Height: 10}}
	out := applyFeetToBottomEdge(pts, feet)

	p := Path{Points: out}
	if !p.IsAxisAligned(EpsPoint) {
		t.Errorf("feet insertion across a level change should preserve axis alignment, got %v", out)
	}

	b := p.BoundingBox()
	if b.Y > -13+EpsPoint {
		t.Errorf("tab should drop to the lower of the two straddled levels minus the foot height, min Y = %v, want -13", b.Y)
	}
}

func TestApplyFeetToBottomEdgeFlatSpanUsesThatLevel(t *testing.T) {
	pts := []Vec2{
		{X: 0, Y: 0},
		{X: 50, Y: 0},
	}
	feet := []FootRect{{X: 5, Width: 15, Height: 10}}
	out := applyFeetToBottomEdge(pts, feet)

	p := Path{Points: out}
	if !p.IsAxisAligned(EpsPoint) {
		t.Errorf("feet insertion on a flat span should preserve axis alignment, got %v", out)
	}
	b := p.BoundingBox()
	if b.Y > -10+EpsPoint {
		t.Errorf("min Y = %v, want -10", b.Y)
	}
}

func TestRecomputeAssemblyWallPanelsGetFeetLidPanelsDont(t *testing.T) {
	a := newTestAssembly(t)
	a.SetFeetConfig(FeetConfig{Enabled: true, Height: 10, Width: 15, Inset: 5})
	snap := RecomputeAssembly(a)
	if len(snap.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", snap.Errors)
	}

	for _, p := range snap.Panels {
		if p.Kind != PanelKindFace {
			continue
		}
		isWall := p.FaceID.NormalAxis() != a.Config.AssemblyAxis
		minY := p.Outline.BoundingBox().Y
		if isWall && minY >= 0 {
			t.Errorf("wall face %v should dip below its nominal baseline with feet enabled, min Y = %v", p.FaceID, minY)
		}
		// A lid's own finger tabs reach one material thickness below Y=0.
		if !isWall && minY < -a.Material.Thickness-EpsAlign {
			t.Errorf("lid face %v should not carry feet, min Y = %v", p.FaceID, minY)
		}
	}
}

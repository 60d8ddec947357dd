package boxen

import "testing"

func TestCornerEligible(t *testing.T) {
	genders := map[EdgePosition]Gender{EdgeBottom: GenderNone, EdgeLeft: GenderNone}
	if !cornerEligible(genders, EdgeBottom, EdgeLeft) {
		t.Error("expected corner between two GenderNone edges to be eligible")
	}

	genders[EdgeLeft] = GenderMale
	if cornerEligible(genders, EdgeBottom, EdgeLeft) {
		t.Error("expected corner adjoining a male edge to be ineligible")
	}
}

func TestApplyCornerModRejectsIneligibleCorner(t *testing.T) {
	path := RectPath(Rect{Width: 100, Height: 100})
	genders := map[EdgePosition]Gender{EdgeBottom: GenderMale, EdgeLeft: GenderNone}

	_, err := ApplyCornerMod(path, "panel", "panel:bottom-left", Vec2{0, 0}, 1, 1, genders, EdgeBottom, EdgeLeft, CornerMod{Kind: CornerModFillet, Size: 5})
	if err == nil {
		t.Fatal("expected fillet on ineligible corner to be rejected")
	}
	if _, ok := err.(*CornerNotEligibleError); !ok {
		t.Errorf("error type = %T, want *CornerNotEligibleError", err)
	}
}

func TestApplyCornerModChamferInsertsTwoPoints(t *testing.T) {
	path := RectPath(Rect{Width: 100, Height: 100})
	genders := map[EdgePosition]Gender{EdgeBottom: GenderNone, EdgeLeft: GenderNone}

	out, err := ApplyCornerMod(path, "panel", "panel:bottom-left", Vec2{0, 0}, 1, 1, genders, EdgeBottom, EdgeLeft, CornerMod{Kind: CornerModChamfer, Size: 5})
	if err != nil {
		t.Fatalf("ApplyCornerMod: %v", err)
	}
	if out.Len() != path.Len()+1 {
		t.Errorf("chamfer should replace 1 vertex with 2, got %d points (was %d)", out.Len(), path.Len())
	}
}

func TestApplyCornerModNoneIsNoOp(t *testing.T) {
	path := RectPath(Rect{Width: 100, Height: 100})
	genders := map[EdgePosition]Gender{EdgeBottom: GenderNone, EdgeLeft: GenderNone}

	out, err := ApplyCornerMod(path, "panel", "panel:bottom-left", Vec2{0, 0}, 1, 1, genders, EdgeBottom, EdgeLeft, CornerMod{Kind: CornerModNone})
	if err != nil {
		t.Fatalf("ApplyCornerMod: %v", err)
	}
	if out.Len() != path.Len() {
		t.Errorf("CornerModNone should not change point count: got %d, want %d", out.Len(), path.Len())
	}
}

func TestTessellateFilletStaircaseStaysAxisAligned(t *testing.T) {
	pts := tessellateFilletStaircase(Vec2{0, 0}, 5, 1, 1, 6)
	// Closed through the corner the staircase replaces, so the two
	// wrap-around segments are the straight legs along each edge.
	p := Path{Points: append([]Vec2{{0, 0}}, pts...)}
	if !p.IsAxisAligned(EpsPoint) {
		t.Error("fillet staircase should only emit axis-aligned segments")
	}
}

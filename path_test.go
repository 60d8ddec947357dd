package boxen

import "testing"

func TestPathSignedAreaWinding(t *testing.T) {
	ccw := RectPath(Rect{X: 0, Y: 0, Width: 10, Height: 5})
	if !ccw.IsCCW() {
		t.Errorf("RectPath should be CCW, area=%v", ccw.SignedArea())
	}
	cw := ccw.Reversed()
	if !cw.IsCW() {
		t.Errorf("Reversed RectPath should be CW, area=%v", cw.SignedArea())
	}
}

func TestPathBoundingBox(t *testing.T) {
	p := RectPath(Rect{X: 1, Y: 2, Width: 10, Height: 20})
	b := p.BoundingBox()
	if b.X != 1 || b.Y != 2 || b.Width != 10 || b.Height != 20 {
		t.Errorf("BoundingBox = %+v", b)
	}
}

func TestPathHasDuplicates(t *testing.T) {
	p := NewPath(Vec2{0, 0}, Vec2{0, 0.0001}, Vec2{5, 5})
	if !p.HasDuplicates(EpsPoint) {
		t.Error("expected duplicate points to be detected")
	}

	clean := RectPath(Rect{Width: 10, Height: 10})
	if clean.HasDuplicates(EpsPoint) {
		t.Error("did not expect duplicates in a clean rectangle")
	}
}

func TestPathIsAxisAligned(t *testing.T) {
	rect := RectPath(Rect{Width: 10, Height: 10})
	if !rect.IsAxisAligned(EpsPoint) {
		t.Error("rectangle should be axis aligned")
	}

	diagonal := NewPath(Vec2{0, 0}, Vec2{10, 10}, Vec2{10, 0})
	if diagonal.IsAxisAligned(EpsPoint) {
		t.Error("path with a diagonal segment should not be axis aligned")
	}
}

func TestPathTranslate(t *testing.T) {
	p := NewPath(Vec2{1, 1})
	out := p.Translate(2, 3)
	if out.Points[0] != (Vec2{3, 4}) {
		t.Errorf("Translate = %+v, want (3,4)", out.Points[0])
	}
}

func TestValidateHoleInside(t *testing.T) {
	outline := RectPath(Rect{Width: 100, Height: 100})
	insideHole := RectPath(Rect{X: 10, Y: 10, Width: 5, Height: 5})
	if err := validateHoleInside(outline, insideHole, EpsWall, "panel"); err != nil {
		t.Errorf("expected hole to be valid: %v", err)
	}

	outsideHole := RectPath(Rect{X: -5, Y: 10, Width: 5, Height: 5})
	if err := validateHoleInside(outline, outsideHole, EpsWall, "panel"); err == nil {
		t.Error("expected hole outside the outline to be rejected")
	}
}

func TestValidateWinding(t *testing.T) {
	ccw := RectPath(Rect{Width: 10, Height: 10})
	if err := validateWinding(ccw, true, "panel"); err != nil {
		t.Errorf("expected CCW path to satisfy wantCCW=true: %v", err)
	}
	if err := validateWinding(ccw, false, "panel"); err == nil {
		t.Error("expected CCW path to fail wantCCW=false")
	}
}

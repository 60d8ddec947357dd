package boxen

import "testing"

func TestValidateJointsPassesOnASingleSolidBox(t *testing.T) {
	a := newTestAssembly(t)
	snap := RecomputeAssembly(a)
	if errs := ValidateJoints(snap); len(errs) != 0 {
		t.Errorf("expected no joint errors on a fresh solid box, got %v", errs)
	}
}

func TestJointConstraintKeyIsOrderIndependent(t *testing.T) {
	c1 := JointConstraint{PanelA: "face-front", PanelB: "face-left", Axis: AxisY}
	c2 := JointConstraint{PanelA: "face-left", PanelB: "face-front", Axis: AxisY}
	if jointConstraintKey(c1) != jointConstraintKey(c2) {
		t.Error("jointConstraintKey should not depend on argument order")
	}
}

func TestDimensionAlongPicksWidthOrHeight(t *testing.T) {
	p := PanelSnapshot{Width: 200, Height: 100}
	if got := dimensionAlong(p, FaceFront.widthAxis(), FaceFront); got != 200 {
		t.Errorf("dimensionAlong(widthAxis) = %v, want 200", got)
	}
	if got := dimensionAlong(p, FaceFront.heightAxis(), FaceFront); got != 100 {
		t.Errorf("dimensionAlong(heightAxis) = %v, want 100", got)
	}
}

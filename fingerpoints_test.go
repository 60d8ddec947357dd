package boxen

import "testing"

func testMaterial() MaterialConfig {
	return MaterialConfig{Thickness: 3, FingerWidth: 10, FingerGap: 1}
}

func TestComputeFingerDataBasic(t *testing.T) {
	mc := testMaterial()
	data, err := ComputeFingerData(200, mc)
	if err != nil {
		t.Fatalf("ComputeFingerData: %v", err)
	}
	if data.SectionCount < 3 || data.SectionCount%2 == 0 {
		t.Errorf("SectionCount = %d, want odd >= 3", data.SectionCount)
	}
	if len(data.Points) != data.SectionCount-1 {
		t.Errorf("len(Points) = %d, want %d", len(data.Points), data.SectionCount-1)
	}
	if data.Clamped {
		t.Error("did not expect clamping for a generously sized axis")
	}
	if data.MaxJointLength != 200-2*mc.Thickness {
		t.Errorf("MaxJointLength = %v, want %v", data.MaxJointLength, 200-2*mc.Thickness)
	}
}

func TestComputeFingerDataClampsWhenTooShort(t *testing.T) {
	mc := testMaterial()
	// An axis just barely longer than 2*MT forces the N=3 clamp path.
	data, err := ComputeFingerData(2*mc.Thickness+5, mc)
	if err != nil {
		t.Fatalf("ComputeFingerData: %v", err)
	}
	if data.SectionCount != 3 {
		t.Errorf("SectionCount = %d, want 3 when axis is short", data.SectionCount)
	}
	if !data.Clamped {
		t.Error("expected EffectiveFingerWidth to be clamped")
	}
	if data.EffectiveFingerWidth >= mc.FingerWidth {
		t.Errorf("EffectiveFingerWidth = %v, want < nominal %v", data.EffectiveFingerWidth, mc.FingerWidth)
	}
}

func TestComputeFingerDataInfeasible(t *testing.T) {
	mc := testMaterial()
	if _, err := ComputeFingerData(mc.Thickness, mc); err == nil {
		t.Error("expected an error when axis length does not exceed 2*MT")
	}
}

func TestComputeFingerDataSymmetricOffset(t *testing.T) {
	mc := testMaterial()
	data, err := ComputeFingerData(150, mc)
	if err != nil {
		t.Fatalf("ComputeFingerData: %v", err)
	}
	lastPoint := data.MaxJointLength - data.InnerOffset
	gotTrailing := data.MaxJointLength - data.Points[len(data.Points)-1]
	wantTrailing := data.InnerOffset
	if diff := gotTrailing - wantTrailing; diff > EpsPoint || diff < -EpsPoint {
		t.Errorf("trailing gap = %v, want leading gap %v (pattern should be centered)", gotTrailing, wantTrailing)
	}
	_ = lastPoint
}

func TestIsFingerSectionAlternates(t *testing.T) {
	d := AssemblyFingerData{SectionCount: 5}
	want := []bool{true, false, true, false, true}
	for i, w := range want {
		if got := d.IsFingerSection(i); got != w {
			t.Errorf("IsFingerSection(%d) = %v, want %v", i, got, w)
		}
	}
}

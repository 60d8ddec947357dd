package boxen

import "testing"

func flatGenders(g Gender) map[EdgePosition]Gender {
	return map[EdgePosition]Gender{
		EdgeTop:    g,
		EdgeBottom: g,
		EdgeLeft:   g,
		EdgeRight:  g,
	}
}

func TestBuildFacePanelProducesClosedAxisAlignedOutline(t *testing.T) {
	mc := testMaterial()
	widthData, err := ComputeFingerData(200, mc)
	if err != nil {
		t.Fatalf("ComputeFingerData width: %v", err)
	}
	heightData, err := ComputeFingerData(150, mc)
	if err != nil {
		t.Fatalf("ComputeFingerData height: %v", err)
	}

	in := PanelBuildInput{
		ID:            "panel-a",
		FaceID:        FaceFront,
		Width:         200,
		Height:        150,
		Thickness:     mc.Thickness,
		WidthFingers:  widthData,
		HeightFingers: heightData,
		EdgeGender:    flatGenders(GenderMale),
	}

	panel, err := BuildFacePanel(in)
	if err != nil {
		t.Fatalf("BuildFacePanel: %v", err)
	}
	if !panel.Outline.IsAxisAligned(EpsPoint) {
		t.Error("outline should be axis aligned")
	}
	if panel.Outline.HasDuplicates(EpsPoint) {
		t.Error("outline should not have duplicate points")
	}
	if !panel.Outline.IsCCW() {
		t.Error("outline should wind CCW")
	}
}

func TestBuildEdgeSegmentsOffsets(t *testing.T) {
	mc := testMaterial()
	data, err := ComputeFingerData(200, mc)
	if err != nil {
		t.Fatalf("ComputeFingerData: %v", err)
	}

	maleSegs := buildEdgeSegments(200, data, GenderMale, mc.Thickness, 0)
	for i, seg := range maleSegs {
		if data.IsFingerSection(i) && seg.offset != mc.Thickness {
			t.Errorf("male finger section %d offset = %v, want %v", i, seg.offset, mc.Thickness)
		}
		if !data.IsFingerSection(i) && seg.offset != 0 {
			t.Errorf("male hole section %d offset = %v, want 0", i, seg.offset)
		}
	}

	femaleSegs := buildEdgeSegments(200, data, GenderFemale, mc.Thickness, 0)
	for i, seg := range femaleSegs {
		if data.IsFingerSection(i) && seg.offset != -mc.Thickness {
			t.Errorf("female finger section %d offset = %v, want %v", i, seg.offset, -mc.Thickness)
		}
	}

	noneSegs := buildEdgeSegments(200, data, GenderNone, mc.Thickness, 0)
	for i, seg := range noneSegs {
		if seg.offset != 0 {
			t.Errorf("GenderNone section %d offset = %v, want 0", i, seg.offset)
		}
	}
}

func TestBuildRectOutlineRejectsExtensionOnMaleEdge(t *testing.T) {
	mc := testMaterial()
	data, err := ComputeFingerData(200, mc)
	if err != nil {
		t.Fatalf("ComputeFingerData: %v", err)
	}

	_, err = buildRectOutline(200, 150, mc.Thickness, data, data,
		flatGenders(GenderMale), map[EdgePosition]float64{EdgeBottom: 5}, nil, "panel-b")
	if err == nil {
		t.Fatal("expected extension on a male edge to be rejected")
	}
	if _, ok := err.(*ExtensionNotAllowedError); !ok {
		t.Errorf("error type = %T, want *ExtensionNotAllowedError", err)
	}
}

func TestCornerKeyIsStable(t *testing.T) {
	a := cornerKey("panel-x", EdgeBottom, EdgeLeft)
	b := cornerKey("panel-x", EdgeBottom, EdgeLeft)
	if a != b {
		t.Errorf("cornerKey should be deterministic: %q vs %q", a, b)
	}
	if a == cornerKey("panel-x", EdgeBottom, EdgeRight) {
		t.Error("different edge pairs should produce different keys")
	}
}

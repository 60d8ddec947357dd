package boxen

import "testing"

func TestEncodeDecodeProjectStateRoundTrips(t *testing.T) {
	a := newTestAssembly(t)
	interior := a.interiorBounds()
	if err := a.AddSubdivision(a.Root.ID, AxisX, interior.X+interior.W/2); err != nil {
		t.Fatalf("AddSubdivision: %v", err)
	}
	scene := &Scene{Assemblies: []*Assembly{a}}

	ps := EncodeProjectState(scene)
	decoded := DecodeProjectState(ps)

	if len(decoded.Assemblies) != 1 {
		t.Fatalf("expected 1 assembly, got %d", len(decoded.Assemblies))
	}
	got := decoded.Assemblies[0]
	if got.ID != a.ID || got.Bounds != a.Bounds {
		t.Errorf("decoded assembly = %+v, want ID=%v Bounds=%+v", got, a.ID, a.Bounds)
	}
	if len(got.Root.Children) != 2 {
		t.Errorf("expected decoded void tree to keep its 2 children, got %d", len(got.Root.Children))
	}
}

func TestEncodeDecodePreservesSubAssemblyWrapperFields(t *testing.T) {
	a := newTestAssembly(t)
	nested, err := a.CreateSubAssembly(a.Root.ID, 50, 40, 30, testMaterial(), 7)
	if err != nil {
		t.Fatalf("CreateSubAssembly: %v", err)
	}
	originalWrapperID := a.Root.SubAssembly.ID

	scene := &Scene{Assemblies: []*Assembly{a}}
	decoded := DecodeProjectState(EncodeProjectState(scene))

	sub := decoded.Assemblies[0].Root.SubAssembly
	if sub == nil {
		t.Fatal("expected root void's sub-assembly to survive the round trip")
	}
	if sub.ID != originalWrapperID {
		t.Errorf("sub-assembly wrapper ID = %q, want %q", sub.ID, originalWrapperID)
	}
	if sub.Clearance != 7 {
		t.Errorf("sub-assembly clearance = %v, want 7", sub.Clearance)
	}
	if sub.Assembly.ID != nested.ID {
		t.Errorf("nested assembly ID = %q, want %q", sub.Assembly.ID, nested.ID)
	}
}

func TestMarshalUnmarshalShareLink(t *testing.T) {
	a := newTestAssembly(t)
	scene := &Scene{Assemblies: []*Assembly{a}}

	data, err := MarshalShareLink(scene)
	if err != nil {
		t.Fatalf("MarshalShareLink: %v", err)
	}

	decoded, err := UnmarshalShareLink(data)
	if err != nil {
		t.Fatalf("UnmarshalShareLink: %v", err)
	}
	if len(decoded.Assemblies) != 1 || decoded.Assemblies[0].ID != a.ID {
		t.Errorf("unexpected decoded scene: %+v", decoded.Assemblies)
	}
}

func TestCanonicalFaceKey(t *testing.T) {
	if got := CanonicalFaceKey(FaceTop); got != "face-top" {
		t.Errorf("CanonicalFaceKey(FaceTop) = %q, want %q", got, "face-top")
	}
}

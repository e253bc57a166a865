package shape

import (
	"errors"
	"testing"
)

func TestUpload(t *testing.T) {
	up := &fakeUploader{}
	m, err := Cylinder(8)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}

	s, err := Upload(up, m)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if len(up.uploads) != 1 || up.uploads[0] != m {
		t.Fatalf("expected one upload of the mesh, got %d", len(up.uploads))
	}
	if s.Kind != KindCylinder || s.IndexCount != m.IndexCount() || s.Layout != LayoutPositionUV {
		t.Errorf("shape = %+v", s)
	}
	if h := s.Handles(); h != (Handles{VAO: 1, VBO: 2, IBO: 3}) {
		t.Errorf("handles = %+v", h)
	}

	s.Destroy()
	s.Destroy()
	if len(up.released) != 1 {
		t.Errorf("expected one release, got %d", len(up.released))
	}

	var nilShape *Shape
	nilShape.Destroy()
}

func TestUploadRejectsInvalidMesh(t *testing.T) {
	up := &fakeUploader{}
	bad := &Mesh{
		Kind:     KindCube,
		Layout:   LayoutPosition,
		Vertices: []float32{0, 0, 0},
		Indices:  []uint32{0, 0, 7},
	}
	if _, err := Upload(up, bad); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := Upload(up, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for nil mesh, got %v", err)
	}
	if len(up.uploads) != 0 {
		t.Errorf("uploader called %d times for invalid meshes", len(up.uploads))
	}
}

func TestUploadFailure(t *testing.T) {
	cause := errors.New("no current context")
	up := &fakeUploader{err: cause}

	s, err := Upload(up, Cube())
	if s != nil {
		t.Error("expected nil shape on failure")
	}
	if !errors.Is(err, ErrUpload) {
		t.Errorf("expected ErrUpload, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped, got %v", err)
	}
}

func TestFactory(t *testing.T) {
	up := &fakeUploader{}
	sink := &recordingSink{}
	f := NewFactory(up, WithSink(sink))

	builds := []struct {
		kind  Kind
		build func() (*Shape, error)
	}{
		{KindSphere, func() (*Shape, error) { return f.Sphere(4, 8) }},
		{KindCylinder, func() (*Shape, error) { return f.Cylinder(8) }},
		{KindCone, func() (*Shape, error) { return f.Cone(1, 8) }},
		{KindTorus, func() (*Shape, error) { return f.Torus(2, 8, 8) }},
		{KindOctahedron, f.Octahedron},
		{KindTetrahedron, f.Tetrahedron},
		{KindRhombicuboctahedron, f.Rhombicuboctahedron},
		{KindMobius, func() (*Shape, error) { return f.Mobius(0.4, 16) }},
		{KindCube, f.Cube},
		{KindIcosahedron, f.Icosahedron},
		{KindDodecahedron, f.Dodecahedron},
		{KindGrid, func() (*Shape, error) { return f.Grid(4, 4) }},
		{KindCircle, func() (*Shape, error) { return f.Circle(16) }},
	}
	for _, b := range builds {
		s, err := b.build()
		if err != nil {
			t.Fatalf("%s: %v", b.kind, err)
		}
		if s.Kind != b.kind {
			t.Errorf("shape kind = %v, want %v", s.Kind, b.kind)
		}
		s.Destroy()
	}

	if len(up.uploads) != len(builds) || len(up.released) != len(builds) {
		t.Errorf("uploads = %d, releases = %d, want %d", len(up.uploads), len(up.released), len(builds))
	}
	if len(sink.kinds) != len(builds) {
		t.Errorf("sink saw %d meshes, want %d", len(sink.kinds), len(builds))
	}
}

func TestFactoryFailsBeforeUpload(t *testing.T) {
	up := &fakeUploader{}
	sink := &recordingSink{}
	f := NewFactory(up, WithSink(sink))

	if _, err := f.Torus(2, 8, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := f.Sphere(3, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if len(up.uploads) != 0 || len(sink.kinds) != 0 {
		t.Error("invalid parameters reached the sink or uploader")
	}
}

func TestNewFactoryDefaultSink(t *testing.T) {
	f := NewFactory(&fakeUploader{}, WithSink(nil))
	if _, ok := f.sink.(NopSink); !ok {
		t.Errorf("default sink = %T, want NopSink", f.sink)
	}
}

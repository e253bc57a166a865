package shape

import (
	"errors"
	"testing"

	pmath "github.com/Faultbox/primforge/pkg/math"
)

// fakeUploader records calls instead of talking to a GPU.
type fakeUploader struct {
	next     uint32
	uploads  []*Mesh
	released []Handles
	err      error
}

func (f *fakeUploader) Upload(m *Mesh) (Handles, error) {
	if f.err != nil {
		return Handles{}, f.err
	}
	f.uploads = append(f.uploads, m)
	f.next += 3
	return Handles{VAO: f.next - 2, VBO: f.next - 1, IBO: f.next}, nil
}

func (f *fakeUploader) Release(h Handles) {
	f.released = append(f.released, h)
}

type recordingSink struct {
	kinds []Kind
}

func (s *recordingSink) DumpMesh(m *Mesh) {
	s.kinds = append(s.kinds, m.Kind)
}

// checkIndices fails the test if any index is out of range.
func checkIndices(t *testing.T, m *Mesh) {
	t.Helper()
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			t.Fatalf("%s: index %d at %d >= vertex count %d", m.Kind, idx, i, n)
		}
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("%s: Validate() = %v", m.Kind, err)
	}
}

// checkOutward fails the test if a triangle faces toward center. Only
// meaningful for convex solids with center inside.
func checkOutward(t *testing.T, m *Mesh, center pmath.Vec3) {
	t.Helper()
	bad := 0
	m.Triangles(func(a, b, c uint32) {
		pa, pb, pc := m.Position(int(a)), m.Position(int(b)), m.Position(int(c))
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		centroid := pa.Add(pb).Add(pc).Scale(1.0 / 3)
		if n.Dot(centroid.Sub(center)) <= 0 {
			bad++
			if bad <= 3 {
				t.Errorf("%s: triangle (%d, %d, %d) faces inward", m.Kind, a, b, c)
			}
		}
	})
	if bad > 3 {
		t.Errorf("%s: %d inward triangles in total", m.Kind, bad)
	}
}

func boundsCenter(m *Mesh) pmath.Vec3 {
	b := m.Bounds()
	return b.Min.Add(b.Max).Scale(0.5)
}

func wantInvalid(t *testing.T, name string, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error, got nil", name)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("%s: expected ErrInvalidArgument, got %v", name, err)
	}
}

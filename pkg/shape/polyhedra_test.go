package shape

import (
	"reflect"
	"testing"

	"github.com/chewxy/math32"

	pmath "github.com/Faultbox/primforge/pkg/math"
)

var fixedShapes = []struct {
	name     string
	gen      func() *Mesh
	faces    [][]uint32
	layout   Layout
	vertices int
	indices  int
}{
	{"octahedron", Octahedron, octahedronFaces, LayoutPosition, 6, 24},
	{"tetrahedron", Tetrahedron, tetrahedronFaces, LayoutPositionColor, 4, 12},
	{"rhombicuboctahedron", Rhombicuboctahedron, rhombicuboctahedronFaces, LayoutPosition, 24, 132},
	{"cube", Cube, cubeFaces, LayoutPosition, 8, 36},
	{"icosahedron", Icosahedron, icosahedronFaces, LayoutPosition, 12, 60},
	{"dodecahedron", Dodecahedron, dodecahedronFaces, LayoutPosition, 20, 108},
}

func TestFixedShapes(t *testing.T) {
	for _, tt := range fixedShapes {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.gen()
			if m.Kind.String() != tt.name {
				t.Errorf("kind = %v, want %s", m.Kind, tt.name)
			}
			if m.Layout != tt.layout {
				t.Errorf("layout = %v, want %v", m.Layout, tt.layout)
			}
			if got := m.VertexCount(); got != tt.vertices {
				t.Errorf("vertices = %d, want %d", got, tt.vertices)
			}
			if got := m.IndexCount(); got != tt.indices {
				t.Errorf("indices = %d, want %d", got, tt.indices)
			}
			checkIndices(t, m)
			checkOutward(t, m, pmath.Vec3{})
		})
	}
}

func TestFixedShapesDeterministic(t *testing.T) {
	for _, tt := range fixedShapes {
		a, b := tt.gen(), tt.gen()
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: two calls returned different buffers", tt.name)
		}
		a.Vertices[0] += 1
		a.Indices[0] = 0
		if c := tt.gen(); !reflect.DeepEqual(b, c) {
			t.Errorf("%s: mutating a result changed the table", tt.name)
		}
	}
}

// Every edge must be used once in each direction: the surface is closed and
// consistently oriented, and V - E + F = 2.
func TestFixedShapesClosed(t *testing.T) {
	for _, tt := range fixedShapes {
		edges := make(map[[2]uint32]int)
		for _, f := range tt.faces {
			for i := range f {
				edges[[2]uint32{f[i], f[(i+1)%len(f)]}]++
			}
		}
		for e, n := range edges {
			if n != 1 {
				t.Errorf("%s: directed edge %v used %d times", tt.name, e, n)
			}
			if edges[[2]uint32{e[1], e[0]}] != 1 {
				t.Errorf("%s: edge %v has no opposite", tt.name, e)
			}
		}
		e := len(edges) / 2
		if chi := tt.vertices - e + len(tt.faces); chi != 2 {
			t.Errorf("%s: Euler characteristic %d, want 2", tt.name, chi)
		}
	}
}

func TestFixedShapesRegular(t *testing.T) {
	for _, tt := range fixedShapes {
		m := tt.gen()
		var want float32
		for _, f := range tt.faces {
			for i := range f {
				l := m.Position(int(f[i])).Sub(m.Position(int(f[(i+1)%len(f)]))).Length()
				if want == 0 {
					want = l
				}
				if math32.Abs(l-want) > 1e-5 {
					t.Errorf("%s: edge %d-%d has length %v, want %v", tt.name, f[i], f[(i+1)%len(f)], l, want)
				}
			}
		}
	}

	m := Rhombicuboctahedron()
	f := rhombicuboctahedronFaces[0]
	if l := m.Position(int(f[0])).Sub(m.Position(int(f[1]))).Length(); math32.Abs(l-1) > 1e-5 {
		t.Errorf("rhombicuboctahedron edge length = %v, want 1", l)
	}
}

func TestOctahedronTable(t *testing.T) {
	m := Octahedron()
	for i := 0; i < m.VertexCount(); i++ {
		if l := m.Position(i).Length(); l != 1 {
			t.Errorf("vertex %d has norm %v, want 1", i, l)
		}
	}
	want := []uint32{1, 0, 3, 4, 0, 1, 3, 0, 2, 2, 0, 4, 5, 1, 3, 4, 1, 5, 3, 2, 5, 5, 2, 4}
	if !reflect.DeepEqual(m.Indices, want) {
		t.Errorf("indices = %v, want %v", m.Indices, want)
	}
}

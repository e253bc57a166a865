// Package shape generates vertex and index buffers for primitive solids and
// hands them to an Uploader that owns the GPU side.
//
// Generators are pure: they take a few numbers and return a fresh Mesh.
// Nothing in this package touches a graphics API.
package shape

import (
	"fmt"

	pmath "github.com/Faultbox/primforge/pkg/math"
)

// Layout describes how per-vertex floats are interleaved.
type Layout uint8

const (
	// LayoutPosition is x, y, z.
	LayoutPosition Layout = iota
	// LayoutPositionUV is x, y, z, u, v.
	LayoutPositionUV
	// LayoutPositionColor is x, y, z, r, g, b.
	LayoutPositionColor
)

// Stride returns the number of floats per vertex.
func (l Layout) Stride() int {
	switch l {
	case LayoutPositionUV:
		return 5
	case LayoutPositionColor:
		return 6
	default:
		return 3
	}
}

func (l Layout) String() string {
	switch l {
	case LayoutPosition:
		return "xyz"
	case LayoutPositionUV:
		return "xyz+uv"
	case LayoutPositionColor:
		return "xyz+rgb"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// Topology is the primitive assembly mode of the index buffer.
type Topology uint8

const (
	// Triangles groups every three indices into one triangle.
	Triangles Topology = iota
	// TriangleStrip forms a triangle from every index and the two before it.
	TriangleStrip
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle-strip"
	default:
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
}

// Kind identifies the primitive a mesh was generated for.
type Kind uint8

const (
	KindSphere Kind = iota
	KindCylinder
	KindCone
	KindTorus
	KindOctahedron
	KindTetrahedron
	KindRhombicuboctahedron
	KindMobius
	KindCube
	KindIcosahedron
	KindDodecahedron
	KindGrid
	KindCircle
)

var kindNames = [...]string{
	KindSphere:              "sphere",
	KindCylinder:            "cylinder",
	KindCone:                "cone",
	KindTorus:               "torus",
	KindOctahedron:          "octahedron",
	KindTetrahedron:         "tetrahedron",
	KindRhombicuboctahedron: "rhombicuboctahedron",
	KindMobius:              "mobius",
	KindCube:                "cube",
	KindIcosahedron:         "icosahedron",
	KindDodecahedron:        "dodecahedron",
	KindGrid:                "grid",
	KindCircle:              "circle",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds returns every primitive kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind returns the Kind with the given name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown shape kind %q", ErrInvalidArgument, name)
}

// Mesh is an interleaved vertex buffer and the index buffer that assembles
// it into triangles.
type Mesh struct {
	Kind     Kind
	Layout   Layout
	Topology Topology
	Vertices []float32
	Indices  []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min pmath.Vec3
	Max pmath.Vec3
}

// Size limits for generated meshes. Every index must fit in a uint32, and
// the caps keep a single mesh within a few hundred megabytes.
const (
	MaxVertices = 1 << 24
	MaxIndices  = 1 << 26
)

// checkCounts rejects parameters whose buffers would exceed the size limits.
func checkCounts(kind Kind, vertices, indices int) error {
	if vertices > MaxVertices {
		return fmt.Errorf("%w: %s: %d vertices exceeds limit %d", ErrInvalidArgument, kind, vertices, MaxVertices)
	}
	if indices > MaxIndices {
		return fmt.Errorf("%w: %s: %d indices exceeds limit %d", ErrInvalidArgument, kind, indices, MaxIndices)
	}
	return nil
}

// newMesh allocates a mesh with exact capacity for the given counts.
func newMesh(kind Kind, layout Layout, topo Topology, vertexCount, indexCount int) *Mesh {
	return &Mesh{
		Kind:     kind,
		Layout:   layout,
		Topology: topo,
		Vertices: make([]float32, 0, vertexCount*layout.Stride()),
		Indices:  make([]uint32, 0, indexCount),
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / m.Layout.Stride()
}

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) pmath.Vec3 {
	o := i * m.Layout.Stride()
	return pmath.Vec3{X: m.Vertices[o], Y: m.Vertices[o+1], Z: m.Vertices[o+2]}
}

// UV returns the texture coordinate of vertex i. ok is false when the
// layout carries no texture coordinates.
func (m *Mesh) UV(i int) (uv pmath.Vec2, ok bool) {
	if m.Layout != LayoutPositionUV {
		return pmath.Vec2{}, false
	}
	o := i*m.Layout.Stride() + 3
	return pmath.Vec2{X: m.Vertices[o], Y: m.Vertices[o+1]}, true
}

// Bounds returns the bounding box of all vertex positions.
func (m *Mesh) Bounds() Bounds {
	n := m.VertexCount()
	if n == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Position(0), Max: m.Position(0)}
	for i := 1; i < n; i++ {
		p := m.Position(i)
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Triangles calls fn for every non-degenerate triangle in assembly order,
// with strip triangles already flipped back to a consistent winding.
func (m *Mesh) Triangles(fn func(a, b, c uint32)) {
	switch m.Topology {
	case TriangleStrip:
		for i := 2; i < len(m.Indices); i++ {
			a, b, c := m.Indices[i-2], m.Indices[i-1], m.Indices[i]
			if a == b || b == c || a == c {
				continue
			}
			if i%2 == 1 {
				a, b = b, a
			}
			fn(a, b, c)
		}
	default:
		for i := 0; i+2 < len(m.Indices); i += 3 {
			fn(m.Indices[i], m.Indices[i+1], m.Indices[i+2])
		}
	}
}

// Validate checks that the vertex buffer is a whole number of vertices and
// that every index refers to an existing vertex.
func (m *Mesh) Validate() error {
	stride := m.Layout.Stride()
	if len(m.Vertices)%stride != 0 {
		return fmt.Errorf("%w: %s: %d floats is not a multiple of stride %d",
			ErrInvalidArgument, m.Kind, len(m.Vertices), stride)
	}
	if m.Topology == Triangles && len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %s: %d indices is not a multiple of 3",
			ErrInvalidArgument, m.Kind, len(m.Indices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: %s: index %d at position %d, vertex count %d",
				ErrIndexOutOfRange, m.Kind, idx, i, n)
		}
	}
	return nil
}

func (m *Mesh) addPosition(x, y, z float32) {
	m.Vertices = append(m.Vertices, x, y, z)
}

func (m *Mesh) addPositionUV(x, y, z, u, v float32) {
	m.Vertices = append(m.Vertices, x, y, z, u, v)
}

func (m *Mesh) addTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// addQuad adds two triangles for the quad a-b-c-d given counter-clockwise.
func (m *Mesh) addQuad(a, b, c, d uint32) {
	m.Indices = append(m.Indices, a, b, c, a, c, d)
}

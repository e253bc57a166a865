package catalog

import "github.com/Faultbox/primforge/pkg/shape"

// Summary describes a generated mesh without its buffers.
type Summary struct {
	Name      string     `yaml:"name"`
	Kind      string     `yaml:"kind"`
	Layout    string     `yaml:"layout"`
	Topology  string     `yaml:"topology"`
	Vertices  int        `yaml:"vertices"`
	Indices   int        `yaml:"indices"`
	Triangles int        `yaml:"triangles"`
	Min       [3]float32 `yaml:"min,flow"`
	Max       [3]float32 `yaml:"max,flow"`
}

// Summarize describes m under the given name.
func Summarize(name string, m *shape.Mesh) Summary {
	tris := 0
	m.Triangles(func(a, b, c uint32) { tris++ })
	b := m.Bounds()
	return Summary{
		Name:      name,
		Kind:      m.Kind.String(),
		Layout:    m.Layout.String(),
		Topology:  m.Topology.String(),
		Vertices:  m.VertexCount(),
		Indices:   m.IndexCount(),
		Triangles: tris,
		Min:       [3]float32{b.Min.X, b.Min.Y, b.Min.Z},
		Max:       [3]float32{b.Max.X, b.Max.Y, b.Max.Z},
	}
}

// Dump is a Summary plus the buffers, one row per vertex.
type Dump struct {
	Summary    `yaml:",inline"`
	VertexData [][]float32 `yaml:"vertex_data"`
	IndexData  []uint32    `yaml:"index_data,flow"`
}

// NewDump copies m into a Dump.
func NewDump(name string, m *shape.Mesh) Dump {
	stride := m.Layout.Stride()
	rows := make([][]float32, m.VertexCount())
	for i := range rows {
		rows[i] = m.Vertices[i*stride : (i+1)*stride : (i+1)*stride]
	}
	return Dump{
		Summary:    Summarize(name, m),
		VertexData: rows,
		IndexData:  m.Indices,
	}
}

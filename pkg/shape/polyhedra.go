package shape

import "math"

const (
	phi    = math.Phi
	invPhi = 1 / math.Phi
	rhombA = (1 + math.Sqrt2) / 2
)

// Fixed tables. Faces list their corners counter-clockwise seen from
// outside; polygons with more than three corners are split into fans.

var octahedronVertices = []float32{
	0, 1, 0, // 0
	1, 0, 0, // 1
	-1, 0, 0, // 2
	0, 0, 1, // 3
	0, 0, -1, // 4
	0, -1, 0, // 5
}

var octahedronFaces = [][]uint32{
	{1, 0, 3}, {4, 0, 1}, {3, 0, 2}, {2, 0, 4},
	{5, 1, 3}, {4, 1, 5}, {3, 2, 5}, {5, 2, 4},
}

// Corner colours are red, green, blue and yellow.
var tetrahedronVertices = []float32{
	1, 1, 1, 1, 0, 0,
	1, -1, -1, 0, 1, 0,
	-1, 1, -1, 0, 0, 1,
	-1, -1, 1, 1, 1, 0,
}

var tetrahedronFaces = [][]uint32{
	{2, 0, 1}, {1, 0, 3}, {3, 0, 2}, {2, 1, 3},
}

var cubeVertices = []float32{
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	-0.5, 0.5, -0.5,
	0.5, 0.5, -0.5,
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	-0.5, 0.5, 0.5,
	0.5, 0.5, 0.5,
}

var cubeFaces = [][]uint32{
	{1, 0, 2, 3}, // -z
	{4, 0, 1, 5}, // -y
	{2, 0, 4, 6}, // -x
	{5, 1, 3, 7}, // +x
	{3, 2, 6, 7}, // +y
	{6, 4, 5, 7}, // +z
}

var icosahedronVertices = []float32{
	0, -1, -phi,
	-1, -phi, 0,
	-phi, 0, -1,
	0, -1, phi,
	-1, phi, 0,
	phi, 0, -1,
	0, 1, -phi,
	1, -phi, 0,
	-phi, 0, 1,
	0, 1, phi,
	1, phi, 0,
	phi, 0, 1,
}

var icosahedronFaces = [][]uint32{
	{2, 0, 1}, {1, 0, 7}, {6, 0, 2}, {5, 0, 6}, {7, 0, 5},
	{1, 8, 2}, {3, 1, 7}, {3, 8, 1}, {6, 2, 4}, {2, 8, 4},
	{7, 11, 3}, {9, 8, 3}, {3, 11, 9}, {4, 10, 6}, {4, 8, 9},
	{4, 9, 10}, {6, 10, 5}, {5, 11, 7}, {5, 10, 11}, {10, 9, 11},
}

var dodecahedronVertices = []float32{
	-1, -1, -1, // 0
	-1, -1, 1,
	-1, 1, -1,
	-1, 1, 1,
	1, -1, -1,
	1, -1, 1,
	1, 1, -1,
	1, 1, 1,
	0, -invPhi, -phi, // 8
	-invPhi, -phi, 0,
	-phi, 0, -invPhi,
	0, -invPhi, phi,
	-invPhi, phi, 0,
	phi, 0, -invPhi,
	0, invPhi, -phi,
	invPhi, -phi, 0,
	-phi, 0, invPhi,
	0, invPhi, phi,
	invPhi, phi, 0,
	phi, 0, invPhi,
}

var dodecahedronFaces = [][]uint32{
	{16, 10, 0, 9, 1}, {14, 8, 0, 10, 2}, {15, 9, 0, 8, 4},
	{3, 16, 1, 11, 17}, {5, 11, 1, 9, 15}, {3, 12, 2, 10, 16},
	{6, 14, 2, 12, 18}, {18, 12, 3, 17, 7}, {5, 15, 4, 13, 19},
	{6, 13, 4, 8, 14}, {17, 11, 5, 19, 7}, {19, 13, 6, 18, 7},
}

// Edge length 1: long axis rhombA, the other two 0.5. Vertices 0-7 are
// stretched along x, 8-15 along y and 16-23 along z.
var rhombicuboctahedronVertices = []float32{
	rhombA, 0.5, 0.5,
	rhombA, 0.5, -0.5,
	rhombA, -0.5, 0.5,
	rhombA, -0.5, -0.5,
	-rhombA, 0.5, 0.5,
	-rhombA, 0.5, -0.5,
	-rhombA, -0.5, 0.5,
	-rhombA, -0.5, -0.5,
	0.5, rhombA, 0.5,
	0.5, rhombA, -0.5,
	0.5, -rhombA, 0.5,
	0.5, -rhombA, -0.5,
	-0.5, rhombA, 0.5,
	-0.5, rhombA, -0.5,
	-0.5, -rhombA, 0.5,
	-0.5, -rhombA, -0.5,
	0.5, 0.5, rhombA,
	0.5, 0.5, -rhombA,
	0.5, -0.5, rhombA,
	0.5, -0.5, -rhombA,
	-0.5, 0.5, rhombA,
	-0.5, 0.5, -rhombA,
	-0.5, -0.5, rhombA,
	-0.5, -0.5, -rhombA,
}

var rhombicuboctahedronFaces = [][]uint32{
	{1, 0, 2, 3}, {8, 0, 1, 9}, {2, 0, 16, 18}, {16, 0, 8},
	{3, 19, 17, 1}, {9, 1, 17}, {2, 10, 11, 3}, {2, 18, 10},
	{3, 11, 19}, {6, 4, 5, 7}, {4, 12, 13, 5}, {20, 4, 6, 22},
	{4, 20, 12}, {5, 21, 23, 7}, {5, 13, 21}, {15, 14, 6, 7},
	{14, 22, 6}, {23, 15, 7}, {12, 8, 9, 13}, {16, 8, 12, 20},
	{13, 9, 17, 21}, {11, 10, 14, 15}, {14, 10, 18, 22}, {23, 19, 11, 15},
	{18, 16, 20, 22}, {21, 17, 19, 23},
}

// fixedMesh copies a vertex table and triangulates its faces.
func fixedMesh(kind Kind, layout Layout, vertices []float32, faces [][]uint32) *Mesh {
	n := 0
	for _, f := range faces {
		n += (len(f) - 2) * 3
	}
	m := newMesh(kind, layout, Triangles, len(vertices)/layout.Stride(), n)
	m.Vertices = append(m.Vertices, vertices...)
	for _, f := range faces {
		for i := 1; i+1 < len(f); i++ {
			m.addTriangle(f[0], f[i], f[i+1])
		}
	}
	return m
}

// Octahedron returns a regular octahedron with its corners on the unit axes.
func Octahedron() *Mesh {
	return fixedMesh(KindOctahedron, LayoutPosition, octahedronVertices, octahedronFaces)
}

// Tetrahedron returns a regular tetrahedron inscribed in the cube [-1, 1]^3,
// with a distinct colour at each corner.
func Tetrahedron() *Mesh {
	return fixedMesh(KindTetrahedron, LayoutPositionColor, tetrahedronVertices, tetrahedronFaces)
}

// Rhombicuboctahedron returns a rhombicuboctahedron with unit edges:
// 8 triangles and 18 squares.
func Rhombicuboctahedron() *Mesh {
	return fixedMesh(KindRhombicuboctahedron, LayoutPosition, rhombicuboctahedronVertices, rhombicuboctahedronFaces)
}

// Cube returns the unit cube centered on the origin.
func Cube() *Mesh {
	return fixedMesh(KindCube, LayoutPosition, cubeVertices, cubeFaces)
}

// Icosahedron returns a regular icosahedron with corners at the cyclic
// permutations of (0, ±1, ±φ).
func Icosahedron() *Mesh {
	return fixedMesh(KindIcosahedron, LayoutPosition, icosahedronVertices, icosahedronFaces)
}

// Dodecahedron returns a regular dodecahedron with corners at (±1, ±1, ±1)
// and the cyclic permutations of (0, ±1/φ, ±φ).
func Dodecahedron() *Mesh {
	return fixedMesh(KindDodecahedron, LayoutPosition, dodecahedronVertices, dodecahedronFaces)
}

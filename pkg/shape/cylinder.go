package shape

import (
	"fmt"

	"github.com/chewxy/math32"
)

// CylinderCounts returns the vertex and index counts of Cylinder(res).
func CylinderCounts(res uint32) (vertices, indices int) {
	n := int(res)
	return 2*(n+1) + 2, n*3 + n*3 + n*6
}

// Cylinder generates a capped cylinder of radius 1 standing on the z=0
// plane with its top at z=1. Each rim carries res+1 vertices, the last one
// duplicating the first so the side texture wraps cleanly.
//
// Vertex order: bottom center, top center, bottom rim, top rim.
func Cylinder(res uint32) (*Mesh, error) {
	if res < 3 {
		return nil, fmt.Errorf("%w: cylinder: res %d < 3", ErrInvalidArgument, res)
	}

	nv, ni := CylinderCounts(res)
	if err := checkCounts(KindCylinder, nv, ni); err != nil {
		return nil, err
	}
	m := newMesh(KindCylinder, LayoutPositionUV, Triangles, nv, ni)

	m.addPositionUV(0, 0, 0, 0.5, 0)
	m.addPositionUV(0, 0, 1, 0.5, 1)
	for _, z := range [2]float32{0, 1} {
		for i := uint32(0); i <= res; i++ {
			u := float32(i) / float32(res)
			t := 2 * math32.Pi * u
			m.addPositionUV(math32.Cos(t), math32.Sin(t), z, u, z)
		}
	}

	const bottomCenter, topCenter = 0, 1
	bottom := func(i uint32) uint32 { return 2 + i }
	top := func(i uint32) uint32 { return 2 + res + 1 + i }

	for i := uint32(0); i < res; i++ {
		m.addTriangle(topCenter, top(i), top(i+1))
	}
	for i := uint32(0); i < res; i++ {
		m.addTriangle(bottomCenter, bottom(i+1), bottom(i))
	}
	for i := uint32(0); i < res; i++ {
		m.addQuad(bottom(i), bottom(i+1), top(i+1), top(i))
	}

	return m, nil
}

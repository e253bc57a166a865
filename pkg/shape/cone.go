package shape

import (
	"fmt"

	"github.com/chewxy/math32"
)

const coneRadius = 0.5

// ConeCounts returns the vertex and index counts of Cone(height, res).
func ConeCounts(res uint32) (vertices, indices int) {
	n := int(res)
	return n + 2, n*3 + n*3
}

// Cone generates a cone with a base of radius 0.5 on the z=0 plane and its
// apex at (0, 0, height).
//
// Vertex order: base center, res rim points, apex.
func Cone(height float32, res uint32) (*Mesh, error) {
	if !(height > 0) || math32.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: cone: height %v must be positive", ErrInvalidArgument, height)
	}
	if res < 3 {
		return nil, fmt.Errorf("%w: cone: res %d < 3", ErrInvalidArgument, res)
	}

	nv, ni := ConeCounts(res)
	if err := checkCounts(KindCone, nv, ni); err != nil {
		return nil, err
	}
	m := newMesh(KindCone, LayoutPosition, Triangles, nv, ni)

	m.addPosition(0, 0, 0)
	dt := 2 * math32.Pi / float32(res)
	for i := uint32(0); i < res; i++ {
		t := float32(i) * dt
		m.addPosition(coneRadius*math32.Cos(t), coneRadius*math32.Sin(t), 0)
	}
	m.addPosition(0, 0, height)

	const center = 0
	apex := res + 1
	rim := func(i uint32) uint32 { return 1 + i%res }

	for i := uint32(0); i < res; i++ {
		m.addTriangle(center, rim(i+1), rim(i))
	}
	for i := uint32(0); i < res; i++ {
		m.addTriangle(rim(i), rim(i+1), apex)
	}

	return m, nil
}

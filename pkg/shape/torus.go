package shape

import (
	"fmt"

	"github.com/chewxy/math32"
)

// TorusCounts returns the vertex and index counts of Torus(radius, ringRes, tubeRes).
func TorusCounts(ringRes, tubeRes uint32) (vertices, indices int) {
	n := int(ringRes) * int(tubeRes)
	return n, n * 6
}

// Torus generates a torus around the z axis. radius is the distance from
// the axis to the center of the tube, and the tube itself has radius 1.
// ringRes segments run around the axis and tubeRes around the tube. Both
// directions wrap, so no seam vertices are duplicated.
func Torus(radius float32, ringRes, tubeRes uint32) (*Mesh, error) {
	if !(radius > 0) || math32.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: torus: radius %v must be positive", ErrInvalidArgument, radius)
	}
	if ringRes < 3 {
		return nil, fmt.Errorf("%w: torus: ringRes %d < 3", ErrInvalidArgument, ringRes)
	}
	if tubeRes < 3 {
		return nil, fmt.Errorf("%w: torus: tubeRes %d < 3", ErrInvalidArgument, tubeRes)
	}

	nv, ni := TorusCounts(ringRes, tubeRes)
	if err := checkCounts(KindTorus, nv, ni); err != nil {
		return nil, err
	}
	m := newMesh(KindTorus, LayoutPositionUV, Triangles, nv, ni)

	for i := uint32(0); i < ringRes; i++ {
		for j := uint32(0); j < tubeRes; j++ {
			x, y, z, u, v := torusVertex(radius, ringRes, tubeRes, i, j)
			m.addPositionUV(x, y, z, u, v)
		}
	}

	at := func(i, j uint32) uint32 {
		return (i%ringRes)*tubeRes + j%tubeRes
	}
	for i := uint32(0); i < ringRes; i++ {
		for j := uint32(0); j < tubeRes; j++ {
			m.addQuad(at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1))
		}
	}

	return m, nil
}

// torusVertex evaluates the torus at ring step i and tube step j. Steps past
// the resolution land on the same point as their remainder.
func torusVertex(radius float32, ringRes, tubeRes, i, j uint32) (x, y, z, u, v float32) {
	u = float32(i%ringRes) / float32(ringRes)
	v = float32(j%tubeRes) / float32(tubeRes)
	theta := 2 * math32.Pi * u
	phi := 2 * math32.Pi * v
	r := radius + math32.Cos(phi)
	return r * math32.Cos(theta), r * math32.Sin(theta), math32.Sin(phi), u, v
}

package shape

import (
	"fmt"

	"github.com/chewxy/math32"
)

// SphereCounts returns the vertex and index counts of Sphere(latRes, lonRes).
func SphereCounts(latRes, lonRes uint32) (vertices, indices int) {
	rings := 2*int(latRes) - 1
	vertices = rings*int(lonRes) + 2
	indices = (rings - 1) * (int(lonRes) + 1) * 2
	return vertices, indices
}

// Sphere generates a unit sphere with lonRes points around each latitude
// ring and latRes rings from the equator up to (but excluding) each pole,
// 2*latRes-1 rings in total. The index buffer is a single triangle strip
// with one band per pair of adjacent rings.
//
// Each band emits lonRes+1 index pairs: the last pair repeats column 0 so
// the band closes around the seam, which is why the index count uses
// lonRes+1 rather than lonRes.
//
// The two pole vertices are appended after the rings but are not referenced
// by the strip, so the mesh has an open cap at each pole. With latRes 1
// there is a single ring and no band, so the index buffer is empty and the
// mesh cannot be uploaded.
func Sphere(latRes, lonRes uint32) (*Mesh, error) {
	if latRes < 1 {
		return nil, fmt.Errorf("%w: sphere: latRes %d < 1", ErrInvalidArgument, latRes)
	}
	if lonRes < 3 {
		return nil, fmt.Errorf("%w: sphere: lonRes %d < 3", ErrInvalidArgument, lonRes)
	}

	nv, ni := SphereCounts(latRes, lonRes)
	if err := checkCounts(KindSphere, nv, ni); err != nil {
		return nil, err
	}
	m := newMesh(KindSphere, LayoutPositionUV, TriangleStrip, nv, ni)

	rings := 2*latRes - 1
	dlon := 2 * math32.Pi / float32(lonRes)
	dlat := math32.Pi / float32(2*latRes)

	for j := uint32(0); j < rings; j++ {
		lat := -math32.Pi/2 + float32(j+1)*dlat
		r := math32.Cos(lat)
		z := math32.Sin(lat)
		v := (lat + math32.Pi/2) / math32.Pi
		for i := uint32(0); i < lonRes; i++ {
			t := float32(i) * dlon
			m.addPositionUV(r*math32.Cos(t), r*math32.Sin(t), z, t/(2*math32.Pi), v)
		}
	}
	m.addPositionUV(0, 0, -1, 0.5, 0)
	m.addPositionUV(0, 0, 1, 0.5, 1)

	// Columns run backwards so the strip winds counter-clockwise seen from
	// outside. Each band ends on the vertex the next band starts with, which
	// produces the zero-area triangles joining the bands.
	n := int(lonRes)
	for j := 0; j < int(rings)-1; j++ {
		lower := uint32(j * n)
		upper := lower + uint32(n)
		for i := n; i >= 0; i-- {
			col := uint32(i % n)
			m.Indices = append(m.Indices, lower+col, upper+col)
		}
	}

	return m, nil
}

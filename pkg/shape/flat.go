package shape

import (
	"fmt"

	"github.com/chewxy/math32"
)

// GridCounts returns the vertex and index counts of Grid(nx, ny).
func GridCounts(nx, ny uint32) (vertices, indices int) {
	return (int(nx) + 1) * (int(ny) + 1), int(nx) * int(ny) * 6
}

// Grid generates a unit square on the z=0 plane, centered on the origin and
// facing +z, split into nx by ny cells.
func Grid(nx, ny uint32) (*Mesh, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("%w: grid: %dx%d cells", ErrInvalidArgument, nx, ny)
	}

	nv, ni := GridCounts(nx, ny)
	if err := checkCounts(KindGrid, nv, ni); err != nil {
		return nil, err
	}
	m := newMesh(KindGrid, LayoutPositionUV, Triangles, nv, ni)

	for y := uint32(0); y <= ny; y++ {
		v := float32(y) / float32(ny)
		for x := uint32(0); x <= nx; x++ {
			u := float32(x) / float32(nx)
			m.addPositionUV(u-0.5, v-0.5, 0, u, v)
		}
	}

	row := nx + 1
	for y := uint32(0); y < ny; y++ {
		for x := uint32(0); x < nx; x++ {
			a := y*row + x
			m.addQuad(a, a+1, a+1+row, a+row)
		}
	}

	return m, nil
}

// CircleCounts returns the vertex and index counts of Circle(res).
func CircleCounts(res uint32) (vertices, indices int) {
	return int(res) + 1, int(res) * 3
}

// Circle generates a filled unit disk on the z=0 plane facing +z, as a fan
// of res triangles around the center vertex.
func Circle(res uint32) (*Mesh, error) {
	if res < 3 {
		return nil, fmt.Errorf("%w: circle: res %d < 3", ErrInvalidArgument, res)
	}

	nv, ni := CircleCounts(res)
	if err := checkCounts(KindCircle, nv, ni); err != nil {
		return nil, err
	}
	m := newMesh(KindCircle, LayoutPositionUV, Triangles, nv, ni)

	m.addPositionUV(0, 0, 0, 0.5, 0.5)
	dt := 2 * math32.Pi / float32(res)
	for i := uint32(0); i < res; i++ {
		c, s := math32.Cos(float32(i)*dt), math32.Sin(float32(i)*dt)
		m.addPositionUV(c, s, 0, 0.5+0.5*c, 0.5+0.5*s)
	}

	for i := uint32(0); i < res; i++ {
		m.addTriangle(0, 1+i, 1+(i+1)%res)
	}

	return m, nil
}

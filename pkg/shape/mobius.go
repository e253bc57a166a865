package shape

import (
	"fmt"

	"github.com/chewxy/math32"
)

// MobiusCounts returns the vertex and index counts of Mobius(width, ringRes).
func MobiusCounts(ringRes uint32) (vertices, indices int) {
	return 2 * int(ringRes), (int(ringRes) - 1) * 6
}

// Mobius generates a Möbius strip of the given width around a unit circle.
// Each of the ringRes rungs contributes two vertices, one on each rail, and
// the strip turns by half a revolution over the full circle.
//
// The segment between the last rung and the first is left open. Across that
// seam the rails have swapped sides, so any pair of triangles closing it
// would face the opposite way from the rest of the strip.
func Mobius(width float32, ringRes uint32) (*Mesh, error) {
	if !(width > 0) || math32.IsInf(width, 0) {
		return nil, fmt.Errorf("%w: mobius: width %v must be positive", ErrInvalidArgument, width)
	}
	if ringRes < 3 {
		return nil, fmt.Errorf("%w: mobius: ringRes %d < 3", ErrInvalidArgument, ringRes)
	}

	nv, ni := MobiusCounts(ringRes)
	if err := checkCounts(KindMobius, nv, ni); err != nil {
		return nil, err
	}
	m := newMesh(KindMobius, LayoutPositionUV, Triangles, nv, ni)

	half := width / 2
	for i := uint32(0); i < ringRes; i++ {
		u := float32(i) / float32(ringRes)
		t := 2 * math32.Pi * u
		ct, st := math32.Cos(t), math32.Sin(t)
		ch, sh := math32.Cos(t/2), math32.Sin(t/2)
		for k, s := range [2]float32{-half, half} {
			r := 1 + s*ch
			m.addPositionUV(r*ct, r*st, s*sh, u, float32(k))
		}
	}

	for i := uint32(0); i+1 < ringRes; i++ {
		a := 2 * i
		b := 2 * (i + 1)
		m.addQuad(a, a+1, b+1, b)
	}

	return m, nil
}

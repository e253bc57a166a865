package shape

import "fmt"

// Handles are the three GPU objects that back an uploaded mesh.
type Handles struct {
	VAO uint32 // vertex array
	VBO uint32 // vertex buffer
	IBO uint32 // index buffer
}

// Uploader creates GPU resources for a mesh. Upload is called once per
// Shape with a validated mesh; Release is called once when the Shape is
// destroyed. Implementations may mutate process-wide binding state and
// must leave nothing bound on return.
type Uploader interface {
	Upload(m *Mesh) (Handles, error)
	Release(h Handles)
}

// Shape is an uploaded mesh. Its handles are owned exclusively by the Shape
// and are never modified after upload.
type Shape struct {
	Kind       Kind
	Layout     Layout
	Topology   Topology
	IndexCount int

	handles  Handles
	uploader Uploader
	released bool
}

// Upload validates m and hands it to up. No uploader call is made when
// validation fails. The mesh buffers may be discarded once Upload returns.
func Upload(up Uploader, m *Mesh) (*Shape, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil mesh", ErrInvalidArgument)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	h, err := up.Upload(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUpload, m.Kind, err)
	}

	return &Shape{
		Kind:       m.Kind,
		Layout:     m.Layout,
		Topology:   m.Topology,
		IndexCount: m.IndexCount(),
		handles:    h,
		uploader:   up,
	}, nil
}

// Handles returns the GPU objects backing the shape.
func (s *Shape) Handles() Handles {
	return s.handles
}

// Destroy releases the GPU objects. Calling it more than once is a no-op.
func (s *Shape) Destroy() {
	if s == nil || s.released {
		return
	}
	s.released = true
	s.uploader.Release(s.handles)
}

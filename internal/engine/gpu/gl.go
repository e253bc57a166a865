// Package gpu uploads generated meshes into OpenGL buffer objects.
package gpu

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/logger"
	"github.com/Faultbox/primforge/pkg/shape"
)

const maxStaleErrors = 16

// attribute is one vertex attribute within an interleaved vertex.
type attribute struct {
	location   uint32
	components int32
	offset     uintptr // bytes
}

// attributes returns the attribute pointers for a layout: location 0 is
// always the position, location 1 the uv or colour when present.
func attributes(l shape.Layout) ([]attribute, error) {
	switch l {
	case shape.LayoutPosition:
		return []attribute{{0, 3, 0}}, nil
	case shape.LayoutPositionUV:
		return []attribute{{0, 3, 0}, {1, 2, 3 * 4}}, nil
	case shape.LayoutPositionColor:
		return []attribute{{0, 3, 0}, {1, 3, 3 * 4}}, nil
	default:
		return nil, fmt.Errorf("%w: vertex layout %v", shape.ErrNotImplemented, l)
	}
}

// Primitive returns the GL draw mode for a topology.
func Primitive(t shape.Topology) (uint32, error) {
	switch t {
	case shape.Triangles:
		return gl.TRIANGLES, nil
	case shape.TriangleStrip:
		return gl.TRIANGLE_STRIP, nil
	default:
		return 0, fmt.Errorf("%w: topology %v", shape.ErrNotImplemented, t)
	}
}

// GLUploader implements shape.Uploader on the current OpenGL context.
//
// OpenGL binding state is global to the context, so uploads and releases
// are serialized. The context must still be current on the calling thread.
type GLUploader struct {
	mu sync.Mutex
}

// NewGLUploader returns an uploader for the current context. gl.Init must
// have been called.
func NewGLUploader() *GLUploader {
	return &GLUploader{}
}

// Upload creates a vertex array, a vertex buffer and an index buffer for m
// with static usage, then leaves nothing bound. Meshes without vertices or
// indices, such as a sphere with a single ring, are rejected with
// shape.ErrInvalidArgument before any GL call.
func (u *GLUploader) Upload(m *shape.Mesh) (shape.Handles, error) {
	attrs, err := attributes(m.Layout)
	if err != nil {
		return shape.Handles{}, err
	}
	if _, err := Primitive(m.Topology); err != nil {
		return shape.Handles{}, err
	}
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return shape.Handles{}, fmt.Errorf("%w: %s: empty buffers", shape.ErrInvalidArgument, m.Kind)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	// Drain errors left behind by earlier calls.
	for i := 0; i < maxStaleErrors; i++ {
		if gl.GetError() == gl.NO_ERROR {
			break
		}
	}

	var h shape.Handles
	gl.GenVertexArrays(1, &h.VAO)
	gl.BindVertexArray(h.VAO)

	gl.GenBuffers(1, &h.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	stride := int32(m.Layout.Stride() * 4)
	for _, a := range attrs {
		gl.VertexAttribPointerWithOffset(a.location, a.components, gl.FLOAT, false, stride, a.offset)
		gl.EnableVertexAttribArray(a.location)
	}

	gl.GenBuffers(1, &h.IBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, h.IBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Unbind the VAO first so it keeps its element buffer binding.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		u.release(h)
		return shape.Handles{}, fmt.Errorf("gl error 0x%04x uploading %s", code, m.Kind)
	}

	logger.Debug("mesh uploaded",
		zap.Stringer("kind", m.Kind),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("indices", m.IndexCount()),
		zap.Uint32("vao", h.VAO),
		zap.Uint32("vbo", h.VBO),
		zap.Uint32("ibo", h.IBO),
	)
	return h, nil
}

// Release deletes the objects created by Upload.
func (u *GLUploader) Release(h shape.Handles) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.release(h)
}

func (u *GLUploader) release(h shape.Handles) {
	if h.VAO != 0 {
		gl.DeleteVertexArrays(1, &h.VAO)
	}
	if h.VBO != 0 {
		gl.DeleteBuffers(1, &h.VBO)
	}
	if h.IBO != 0 {
		gl.DeleteBuffers(1, &h.IBO)
	}
}

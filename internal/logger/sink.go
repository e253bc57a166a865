package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/primforge/pkg/shape"
)

// MeshSink dumps meshes to a zap logger at debug level: one line per vertex
// position, then the index buffer in pairs.
type MeshSink struct {
	log *zap.Logger
}

// NewMeshSink returns a sink writing to l, or to the global logger when l
// is nil.
func NewMeshSink(l *zap.Logger) *MeshSink {
	return &MeshSink{log: l}
}

// DumpMesh implements shape.Sink.
func (s *MeshSink) DumpMesh(m *shape.Mesh) {
	l := s.log
	if l == nil {
		l = Log
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		return
	}

	l.Debug("mesh",
		zap.Stringer("kind", m.Kind),
		zap.Stringer("layout", m.Layout),
		zap.Stringer("topology", m.Topology),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("indices", m.IndexCount()),
	)
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i)
		l.Debug("vertex", zap.Int("i", i), zap.Float32("x", p.X), zap.Float32("y", p.Y), zap.Float32("z", p.Z))
	}
	for i := 0; i+1 < len(m.Indices); i += 2 {
		l.Debug("index", zap.Uint32("a", m.Indices[i]), zap.Uint32("b", m.Indices[i+1]))
	}
	if n := len(m.Indices); n%2 == 1 {
		l.Debug("index", zap.Uint32("a", m.Indices[n-1]))
	}
}

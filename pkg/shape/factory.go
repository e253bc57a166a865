package shape

// Sink receives every mesh a Factory is about to upload, for diagnostics.
type Sink interface {
	DumpMesh(m *Mesh)
}

// NopSink discards everything.
type NopSink struct{}

// DumpMesh implements Sink.
func (NopSink) DumpMesh(*Mesh) {}

// Factory generates meshes and uploads them through one Uploader.
type Factory struct {
	up   Uploader
	sink Sink
}

// Option configures a Factory.
type Option func(*Factory)

// WithSink sets the diagnostic sink. The default is NopSink.
func WithSink(s Sink) Option {
	return func(f *Factory) {
		if s != nil {
			f.sink = s
		}
	}
}

// NewFactory returns a Factory that uploads through up.
func NewFactory(up Uploader, opts ...Option) *Factory {
	f := &Factory{up: up, sink: NopSink{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Upload dumps m to the sink and uploads it.
func (f *Factory) Upload(m *Mesh) (*Shape, error) {
	if m != nil {
		f.sink.DumpMesh(m)
	}
	return Upload(f.up, m)
}

func (f *Factory) build(m *Mesh, err error) (*Shape, error) {
	if err != nil {
		return nil, err
	}
	return f.Upload(m)
}

// Sphere uploads Sphere(latRes, lonRes).
func (f *Factory) Sphere(latRes, lonRes uint32) (*Shape, error) {
	return f.build(Sphere(latRes, lonRes))
}

// Cylinder uploads Cylinder(res).
func (f *Factory) Cylinder(res uint32) (*Shape, error) {
	return f.build(Cylinder(res))
}

// Cone uploads Cone(height, res).
func (f *Factory) Cone(height float32, res uint32) (*Shape, error) {
	return f.build(Cone(height, res))
}

// Torus uploads Torus(radius, ringRes, tubeRes).
func (f *Factory) Torus(radius float32, ringRes, tubeRes uint32) (*Shape, error) {
	return f.build(Torus(radius, ringRes, tubeRes))
}

// Mobius uploads Mobius(width, ringRes).
func (f *Factory) Mobius(width float32, ringRes uint32) (*Shape, error) {
	return f.build(Mobius(width, ringRes))
}

// Grid uploads Grid(nx, ny).
func (f *Factory) Grid(nx, ny uint32) (*Shape, error) {
	return f.build(Grid(nx, ny))
}

// Circle uploads Circle(res).
func (f *Factory) Circle(res uint32) (*Shape, error) {
	return f.build(Circle(res))
}

// Octahedron uploads Octahedron().
func (f *Factory) Octahedron() (*Shape, error) {
	return f.Upload(Octahedron())
}

// Tetrahedron uploads Tetrahedron().
func (f *Factory) Tetrahedron() (*Shape, error) {
	return f.Upload(Tetrahedron())
}

// Rhombicuboctahedron uploads Rhombicuboctahedron().
func (f *Factory) Rhombicuboctahedron() (*Shape, error) {
	return f.Upload(Rhombicuboctahedron())
}

// Cube uploads Cube().
func (f *Factory) Cube() (*Shape, error) {
	return f.Upload(Cube())
}

// Icosahedron uploads Icosahedron().
func (f *Factory) Icosahedron() (*Shape, error) {
	return f.Upload(Icosahedron())
}

// Dodecahedron uploads Dodecahedron().
func (f *Factory) Dodecahedron() (*Shape, error) {
	return f.Upload(Dodecahedron())
}

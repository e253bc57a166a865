// Package catalog maps named shape requests, as found in config files and on
// the command line, to the generators in pkg/shape.
package catalog

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Faultbox/primforge/pkg/shape"
)

// Request names a primitive and its parameters. Only the parameters listed
// for the kind are read; the rest are ignored. A zero parameter means the
// kind's default.
type Request struct {
	Name    string  `yaml:"name,omitempty"`
	Kind    string  `yaml:"kind"`
	LatRes  uint32  `yaml:"lat_res,omitempty"`
	LonRes  uint32  `yaml:"lon_res,omitempty"`
	Res     uint32  `yaml:"res,omitempty"`
	RingRes uint32  `yaml:"ring_res,omitempty"`
	TubeRes uint32  `yaml:"tube_res,omitempty"`
	NX      uint32  `yaml:"nx,omitempty"`
	NY      uint32  `yaml:"ny,omitempty"`
	Height  float32 `yaml:"height,omitempty"`
	Radius  float32 `yaml:"radius,omitempty"`
	Width   float32 `yaml:"width,omitempty"`
}

// Label returns the request name, or the kind when unnamed.
func (r Request) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Kind
}

type entry struct {
	params   []string
	defaults Request
	build    func(r Request) (*shape.Mesh, error)
}

func fixed(gen func() *shape.Mesh) func(Request) (*shape.Mesh, error) {
	return func(Request) (*shape.Mesh, error) { return gen(), nil }
}

var registry = map[shape.Kind]entry{
	shape.KindSphere: {
		params:   []string{"lat_res", "lon_res"},
		defaults: Request{LatRes: 8, LonRes: 16},
		build:    func(r Request) (*shape.Mesh, error) { return shape.Sphere(r.LatRes, r.LonRes) },
	},
	shape.KindCylinder: {
		params:   []string{"res"},
		defaults: Request{Res: 16},
		build:    func(r Request) (*shape.Mesh, error) { return shape.Cylinder(r.Res) },
	},
	shape.KindCone: {
		params:   []string{"height", "res"},
		defaults: Request{Height: 1, Res: 16},
		build:    func(r Request) (*shape.Mesh, error) { return shape.Cone(r.Height, r.Res) },
	},
	shape.KindTorus: {
		params:   []string{"radius", "ring_res", "tube_res"},
		defaults: Request{Radius: 2, RingRes: 24, TubeRes: 12},
		build: func(r Request) (*shape.Mesh, error) {
			return shape.Torus(r.Radius, r.RingRes, r.TubeRes)
		},
	},
	shape.KindMobius: {
		params:   []string{"width", "ring_res"},
		defaults: Request{Width: 0.5, RingRes: 32},
		build:    func(r Request) (*shape.Mesh, error) { return shape.Mobius(r.Width, r.RingRes) },
	},
	shape.KindGrid: {
		params:   []string{"nx", "ny"},
		defaults: Request{NX: 8, NY: 8},
		build:    func(r Request) (*shape.Mesh, error) { return shape.Grid(r.NX, r.NY) },
	},
	shape.KindCircle: {
		params:   []string{"res"},
		defaults: Request{Res: 16},
		build:    func(r Request) (*shape.Mesh, error) { return shape.Circle(r.Res) },
	},
	shape.KindOctahedron:          {build: fixed(shape.Octahedron)},
	shape.KindTetrahedron:         {build: fixed(shape.Tetrahedron)},
	shape.KindRhombicuboctahedron: {build: fixed(shape.Rhombicuboctahedron)},
	shape.KindCube:                {build: fixed(shape.Cube)},
	shape.KindIcosahedron:         {build: fixed(shape.Icosahedron)},
	shape.KindDodecahedron:        {build: fixed(shape.Dodecahedron)},
}

func lookup(kind string) (shape.Kind, entry, error) {
	k, err := shape.ParseKind(kind)
	if err != nil {
		return 0, entry{}, err
	}
	e, ok := registry[k]
	if !ok {
		return 0, entry{}, fmt.Errorf("%w: no generator for %s", shape.ErrNotImplemented, k)
	}
	return k, e, nil
}

// Params returns the parameter names of a kind, in positional order.
func Params(kind string) ([]string, error) {
	_, e, err := lookup(kind)
	if err != nil {
		return nil, err
	}
	return e.params, nil
}

// Default returns a request for kind with every parameter set to a
// reasonable value.
func Default(kind string) (Request, error) {
	_, e, err := lookup(kind)
	if err != nil {
		return Request{}, err
	}
	r := e.defaults
	r.Kind = kind
	return r, nil
}

// withDefaults fills the zero parameters of r from d.
func (r Request) withDefaults(d Request) Request {
	fill := func(v *uint32, def uint32) {
		if *v == 0 {
			*v = def
		}
	}
	fillf := func(v *float32, def float32) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&r.LatRes, d.LatRes)
	fill(&r.LonRes, d.LonRes)
	fill(&r.Res, d.Res)
	fill(&r.RingRes, d.RingRes)
	fill(&r.TubeRes, d.TubeRes)
	fill(&r.NX, d.NX)
	fill(&r.NY, d.NY)
	fillf(&r.Height, d.Height)
	fillf(&r.Radius, d.Radius)
	fillf(&r.Width, d.Width)
	return r
}

// Build generates the mesh for r. Parameters left at zero take the kind's
// defaults.
func Build(r Request) (*shape.Mesh, error) {
	_, e, err := lookup(r.Kind)
	if err != nil {
		return nil, err
	}
	m, err := e.build(r.withDefaults(e.defaults))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Label(), err)
	}
	return m, nil
}

// FromArgs builds a request from positional command-line values. Missing
// trailing values keep their defaults; an explicit zero is rejected because
// Build would replace it with the default.
func FromArgs(kind string, args []string) (Request, error) {
	r, err := Default(kind)
	if err != nil {
		return Request{}, err
	}
	params, _ := Params(kind)
	if len(args) > len(params) {
		return Request{}, fmt.Errorf("%w: %s takes %d parameters, got %d",
			shape.ErrInvalidArgument, kind, len(params), len(args))
	}
	for i, arg := range args {
		if err := r.set(params[i], arg); err != nil {
			return Request{}, err
		}
	}
	return r, nil
}

func (r *Request) set(param, value string) error {
	var u *uint32
	var f *float32
	switch param {
	case "lat_res":
		u = &r.LatRes
	case "lon_res":
		u = &r.LonRes
	case "res":
		u = &r.Res
	case "ring_res":
		u = &r.RingRes
	case "tube_res":
		u = &r.TubeRes
	case "nx":
		u = &r.NX
	case "ny":
		u = &r.NY
	case "height":
		f = &r.Height
	case "radius":
		f = &r.Radius
	case "width":
		f = &r.Width
	default:
		return fmt.Errorf("%w: unknown parameter %q", shape.ErrInvalidArgument, param)
	}

	if u != nil {
		v, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", shape.ErrInvalidArgument, param, value, err)
		}
		if v == 0 {
			return fmt.Errorf("%w: %s must not be zero", shape.ErrInvalidArgument, param)
		}
		*u = uint32(v)
		return nil
	}
	v, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %w", shape.ErrInvalidArgument, param, value, err)
	}
	if v == 0 {
		return fmt.Errorf("%w: %s must not be zero", shape.ErrInvalidArgument, param)
	}
	*f = float32(v)
	return nil
}

// Kinds returns the registered kind names, sorted.
func Kinds() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return names
}

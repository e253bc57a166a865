package catalog

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/primforge/pkg/shape"
)

func TestEveryKindRegistered(t *testing.T) {
	for _, k := range shape.Kinds() {
		r, err := Default(k.String())
		if err != nil {
			t.Fatalf("Default(%s) failed: %v", k, err)
		}
		m, err := Build(r)
		if err != nil {
			t.Fatalf("Build(%s) failed: %v", k, err)
		}
		if m.Kind != k {
			t.Errorf("Build(%s) produced %v", k, m.Kind)
		}
		if err := m.Validate(); err != nil {
			t.Errorf("Build(%s) produced an invalid mesh: %v", k, err)
		}
	}
	if got, want := len(Kinds()), len(shape.Kinds()); got != want {
		t.Errorf("Kinds() = %d names, want %d", got, want)
	}
}

func TestFromArgs(t *testing.T) {
	r, err := FromArgs("torus", []string{"1.5", "10"})
	if err != nil {
		t.Fatalf("FromArgs failed: %v", err)
	}
	if r.Radius != 1.5 || r.RingRes != 10 || r.TubeRes != 12 {
		t.Errorf("request = %+v", r)
	}
	m, err := Build(r)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if m.VertexCount() != 120 {
		t.Errorf("vertices = %d, want 120", m.VertexCount())
	}

	tests := []struct {
		name string
		kind string
		args []string
	}{
		{"unknown kind", "teapot", nil},
		{"too many args", "cylinder", []string{"8", "9"}},
		{"bad uint", "sphere", []string{"-1"}},
		{"bad float", "cone", []string{"tall"}},
		{"fixed shape with args", "cube", []string{"2"}},
		{"zero resolution", "sphere", []string{"4", "0"}},
		{"zero height", "cone", []string{"0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromArgs(tt.kind, tt.args); !errors.Is(err, shape.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestBuildDegenerate(t *testing.T) {
	r := Request{Name: "flat", Kind: "sphere", LatRes: 4, LonRes: 2}
	_, err := Build(r)
	if !errors.Is(err, shape.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if got := err.Error(); got[:5] != "flat:" {
		t.Errorf("error %q does not name the request", got)
	}
}

func TestRequestsFromYAML(t *testing.T) {
	doc := `
- name: globe
  kind: sphere
  lat_res: 6
  lon_res: 12
- kind: torus
  radius: 3
  ring_res: 16
  tube_res: 8
- kind: octahedron
`
	var reqs []Request
	if err := yaml.Unmarshal([]byte(doc), &reqs); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if len(reqs) != 3 {
		t.Fatalf("got %d requests, want 3", len(reqs))
	}
	if reqs[0].Label() != "globe" || reqs[1].Label() != "torus" {
		t.Errorf("labels = %q, %q", reqs[0].Label(), reqs[1].Label())
	}

	wantVertices := []int{11*12 + 2, 16 * 8, 6}
	for i, r := range reqs {
		m, err := Build(r)
		if err != nil {
			t.Fatalf("Build(%s) failed: %v", r.Label(), err)
		}
		if m.VertexCount() != wantVertices[i] {
			t.Errorf("%s: vertices = %d, want %d", r.Label(), m.VertexCount(), wantVertices[i])
		}
	}

	out, err := yaml.Marshal(reqs[1])
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}
	var back Request
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if back != reqs[1] {
		t.Errorf("round trip = %+v, want %+v", back, reqs[1])
	}
}

func TestSummarizeAndDump(t *testing.T) {
	m, err := shape.Cylinder(4)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}
	s := Summarize("can", m)
	if s.Vertices != 12 || s.Indices != 48 || s.Triangles != 16 {
		t.Errorf("summary counts = %+v", s)
	}
	if s.Layout != "xyz+uv" || s.Topology != "triangles" {
		t.Errorf("summary = %+v", s)
	}
	if s.Min[2] != 0 || s.Max[2] != 1 {
		t.Errorf("z range = %v..%v, want 0..1", s.Min[2], s.Max[2])
	}

	d := NewDump("can", m)
	if len(d.VertexData) != 12 || len(d.VertexData[0]) != 5 {
		t.Fatalf("dump rows = %d x %d", len(d.VertexData), len(d.VertexData[0]))
	}
	out, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}
	var back Dump
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if back.Vertices != 12 || len(back.IndexData) != 48 {
		t.Errorf("decoded dump = %d vertices, %d indices", back.Vertices, len(back.IndexData))
	}
}

func TestBuildFillsDefaults(t *testing.T) {
	doc := `
- kind: sphere
- kind: torus
  ring_res: 6
- kind: cone
  res: 5
`
	var reqs []Request
	if err := yaml.Unmarshal([]byte(doc), &reqs); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}

	// sphere 8x16, torus 6x12, cone 5 rim points
	want := []int{15*16 + 2, 6 * 12, 7}
	for i, r := range reqs {
		m, err := Build(r)
		if err != nil {
			t.Fatalf("Build(%s) failed: %v", r.Label(), err)
		}
		if m.VertexCount() != want[i] {
			t.Errorf("%s: vertices = %d, want %d", r.Label(), m.VertexCount(), want[i])
		}
	}
}

func TestBuildUnregisteredKind(t *testing.T) {
	saved := registry[shape.KindDodecahedron]
	delete(registry, shape.KindDodecahedron)
	defer func() { registry[shape.KindDodecahedron] = saved }()

	_, err := Build(Request{Kind: "dodecahedron"})
	if !errors.Is(err, shape.ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
	if _, err := Params("dodecahedron"); !errors.Is(err, shape.ErrNotImplemented) {
		t.Errorf("Params: expected ErrNotImplemented, got %v", err)
	}
}

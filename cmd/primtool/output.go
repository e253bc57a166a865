package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/primforge/internal/catalog"
	"github.com/Faultbox/primforge/internal/config"
)

// requests returns the request named on the command line, or the configured
// list when no kind is given.
func requests(args []string, configured []catalog.Request) ([]catalog.Request, error) {
	if len(args) == 0 {
		if len(configured) == 0 {
			return nil, fmt.Errorf("no shapes configured")
		}
		return configured, nil
	}
	r, err := catalog.FromArgs(args[0], args[1:])
	if err != nil {
		return nil, err
	}
	return []catalog.Request{r}, nil
}

func writeKinds(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, kind := range catalog.Kinds() {
		params, err := catalog.Params(kind)
		if err != nil {
			return err
		}
		desc := "(fixed)"
		if len(params) > 0 {
			desc = strings.Join(params, " ")
		}
		fmt.Fprintf(tw, "%s\t%s\n", kind, desc)
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, s catalog.Summary) {
	fmt.Fprintf(w, "Shape:     %s (%s)\n", s.Name, s.Kind)
	fmt.Fprintf(w, "Layout:    %s\n", s.Layout)
	fmt.Fprintf(w, "Topology:  %s\n", s.Topology)
	fmt.Fprintf(w, "Vertices:  %d\n", s.Vertices)
	fmt.Fprintf(w, "Indices:   %d\n", s.Indices)
	fmt.Fprintf(w, "Triangles: %d\n", s.Triangles)
	fmt.Fprintf(w, "Bounds:    [%.3f %.3f %.3f] - [%.3f %.3f %.3f]\n",
		s.Min[0], s.Min[1], s.Min[2], s.Max[0], s.Max[1], s.Max[2])
	fmt.Fprintln(w)
}

func writeDumpText(w io.Writer, d catalog.Dump) {
	writeSummary(w, d.Summary)
	fmt.Fprintln(w, "Vertices:")
	for i, row := range d.VertexData {
		fmt.Fprintf(w, "  %4d:", i)
		for _, v := range row {
			fmt.Fprintf(w, " %9.5f", v)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "Indices:")
	for i := 0; i < len(d.IndexData); i += 3 {
		end := min(i+3, len(d.IndexData))
		fmt.Fprintf(w, "  %v\n", d.IndexData[i:end])
	}
}

func writeDumpYAML(w io.Writer, d catalog.Dump) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}

// writeConfig writes cfg to out, to the user config directory when save is
// set, or to w otherwise. It returns the path written, if any.
func writeConfig(w io.Writer, cfg *config.Config, out string, save bool) (string, error) {
	switch {
	case save:
		return config.DefaultPath(), cfg.Save()
	case out != "":
		return out, cfg.SaveTo(out)
	default:
		return "", cfg.Encode(w)
	}
}

// primtool generates the primitive meshes and uploads them to the GPU.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/catalog"
	"github.com/Faultbox/primforge/internal/config"
	"github.com/Faultbox/primforge/internal/engine/gpu"
	"github.com/Faultbox/primforge/internal/engine/window"
	"github.com/Faultbox/primforge/internal/logger"
	"github.com/Faultbox/primforge/pkg/shape"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list", "ls":
		cmdList()
	case "info":
		cmdInfo(args)
	case "dump":
		cmdDump(args)
	case "upload":
		cmdUpload(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`primtool - procedural primitive mesh utility

Usage:
  primtool <command> [options]

Commands:
  list                             List primitive kinds and their parameters
  info [kind] [params...]          Show counts, layout and bounds
  dump [-yaml] <kind> [params...]  Print vertex and index buffers
  upload [-debug] [kind] [params...] Upload shapes to a hidden GL context
  config [-o path] [-save]         Print or write the effective config

Examples:
  primtool list
  primtool info sphere 8 16
  primtool dump -yaml cone 2 12
  primtool upload -debug -log primtool.log
  primtool config -width 1024 -save`)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdList() {
	if err := writeKinds(os.Stdout); err != nil {
		fail(err)
	}
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	flags := config.BindFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fail(err)
	}

	reqs, err := requests(fs.Args(), cfg.Shapes)
	if err != nil {
		fail(err)
	}

	for _, r := range reqs {
		m, err := catalog.Build(r)
		if err != nil {
			fail(err)
		}
		if err := m.Validate(); err != nil {
			fail(fmt.Errorf("%s: %w", r.Label(), err))
		}
		writeSummary(os.Stdout, catalog.Summarize(r.Label(), m))
	}
}

func cmdDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	asYAML := fs.Bool("yaml", false, "Print as YAML")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: primtool dump [-yaml] <kind> [params...]")
		os.Exit(1)
	}

	r, err := catalog.FromArgs(fs.Arg(0), fs.Args()[1:])
	if err != nil {
		fail(err)
	}
	m, err := catalog.Build(r)
	if err != nil {
		fail(err)
	}

	d := catalog.NewDump(r.Label(), m)
	if *asYAML {
		err = writeDumpYAML(os.Stdout, d)
	} else {
		writeDumpText(os.Stdout, d)
	}
	if err != nil {
		fail(err)
	}
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	flags := config.BindFlags(fs)
	out := fs.String("o", "", "Write the config to this file")
	save := fs.Bool("save", false, "Write the config to the user config directory")
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fail(err)
	}

	path, err := writeConfig(os.Stdout, cfg, *out, *save)
	if err != nil {
		fail(err)
	}
	if path != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}
}

func cmdUpload(args []string) {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	flags := config.BindFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fail(err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fail(fmt.Errorf("initializing logger: %w", err))
	}
	defer logger.Sync()

	if err := upload(cfg, fs.Args()); err != nil {
		logger.Error("upload failed", zap.Error(err))
		logger.Sync()
		fail(err)
	}
}

func upload(cfg *config.Config, args []string) error {
	reqs, err := requests(args, cfg.Shapes)
	if err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:   "primtool",
		Width:   cfg.Graphics.Width,
		Height:  cfg.Graphics.Height,
		Visible: cfg.Graphics.Visible,
		VSync:   cfg.Graphics.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	// The sink only writes when debug logging is enabled.
	factory := shape.NewFactory(gpu.NewGLUploader(), shape.WithSink(logger.NewMeshSink(logger.Log)))

	shapes := make([]*shape.Shape, 0, len(reqs))
	defer func() {
		for _, s := range shapes {
			s.Destroy()
		}
		logger.Info("released shapes", zap.Int("count", len(shapes)))
	}()

	for _, r := range reqs {
		m, err := catalog.Build(r)
		if err != nil {
			return err
		}
		s, err := factory.Upload(m)
		if err != nil {
			return fmt.Errorf("%s: %w", r.Label(), err)
		}
		shapes = append(shapes, s)

		h := s.Handles()
		logger.Info("uploaded shape",
			zap.String("name", r.Label()),
			zap.Stringer("kind", s.Kind),
			zap.Stringer("topology", s.Topology),
			zap.Int("indices", s.IndexCount),
			zap.Uint32("vao", h.VAO),
			zap.Uint32("vbo", h.VBO),
			zap.Uint32("ibo", h.IBO),
		)
	}
	return nil
}

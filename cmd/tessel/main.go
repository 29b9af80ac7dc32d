// Command tessel renders a YAML scene description to PNG on the CPU.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/tessel"
	"github.com/phanxgames/tessel/scene"
	"github.com/schollz/progressbar/v3"
)

func run() error {
	out := flag.String("o", "", "output PNG path (default: scene name with .png)")
	frames := flag.Int("frames", 1, "number of animation frames to render")
	outDir := flag.String("outdir", ".", "directory for numbered frames when -frames > 1")
	verbose := flag.Bool("v", false, "log every fill to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `tessel - render a shape scene to PNG

USAGE:
  tessel [flags] <scene.yml>

FLAGS:
  -o PATH        Output file for a single frame
  -frames N      Render N frames, stepping tween shapes through one cycle
  -outdir DIR    Directory for frame files (NAME_000.png, NAME_001.png, ...)
  -v             Debug logging of every fill
`)
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		tessel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *frames < 1 {
		return fmt.Errorf("-frames must be at least 1, got %d", *frames)
	}

	path := flag.Arg(0)
	sc, err := scene.Load(path)
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if *frames == 1 {
		dst := *out
		if dst == "" {
			dst = name + ".png"
		}
		return renderFrame(sc, 0, dst)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", *outDir, err)
	}

	pb := progressbar.Default(int64(*frames), "rendering "+name)
	defer pb.Close()

	for i := range *frames {
		dst := filepath.Join(*outDir, fmt.Sprintf("%s_%03d.png", name, i))
		if err := renderFrame(sc, float64(i)/float64(*frames), dst); err != nil {
			return err
		}
		pb.Add(1)
	}
	return nil
}

func renderFrame(sc *scene.Scene, offset float64, dst string) error {
	b := tessel.NewSoftwareBackend(sc.Width, sc.Height)
	if err := sc.Draw(b, tessel.NewContext(), offset); err != nil {
		return err
	}
	return b.WritePNG(dst)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tessel: %v\n", err)
		os.Exit(1)
	}
}

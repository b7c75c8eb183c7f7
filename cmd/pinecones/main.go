// Command pinecones draws pine cone characters to PNG or SVG files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/tdewolff/argp"

	"honnef.co/go/kite"
	"honnef.co/go/kite/pinecone"
	"honnef.co/go/kite/render"
)

type Draw struct {
	Drawing    string  `index:"0" default:"scene" desc:"Drawing: scene, main or random"`
	Output     string  `short:"o" default:"" desc:"Output file ending in .png or .svg, timestamped PNG if empty"`
	Width      int     `short:"W" default:"4000" desc:"Image width in pixels"`
	Height     int     `short:"H" default:"4000" desc:"Image height in pixels"`
	Seed       uint64  `short:"s" default:"0" desc:"Random seed"`
	Background string  `short:"b" default:"white" desc:"Background colour, a name or #rrggbb"`
	Margin     float64 `short:"m" default:"40" desc:"Margin around the drawing in pixels"`
	Minify     bool    `default:"true" desc:"Minify SVG output"`
	Verbose    bool    `short:"v" desc:"Log debug output"`
}

func main() {
	root := argp.NewCmd(&Draw{}, "Procedural pine cone drawings")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Draw) Run() error {
	level := slog.LevelWarn
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	kite.SetLogger(logger)
	gg.SetLogger(logger)

	if cmd.Width <= 0 || cmd.Height <= 0 {
		fmt.Fprintln(os.Stderr, "ERROR: width and height must be positive")
		return argp.ShowUsage
	}
	background, err := render.ParseColour(cmd.Background)
	if err != nil {
		return err
	}
	output := cmd.Output
	if output == "" {
		output = fmt.Sprintf("pinecones-%s.png", time.Now().Format("20060102T150405"))
	}

	rec := render.NewRecorder()
	if err := cmd.draw(rec); err != nil {
		return err
	}
	bounds, ok := rec.Bounds()
	if !ok {
		return fmt.Errorf("drawing %q is empty", cmd.Drawing)
	}
	view := render.FitView(cmd.Width, cmd.Height, bounds, cmd.Margin)
	logger.Debug("fitted view", "bounds", bounds, "centre", view.Centre, "scale", view.Scale)

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		r := render.NewRaster(view, background)
		defer r.Close()
		rec.Replay(r)
		return r.SavePNG(output)
	case ".svg":
		s := render.NewSVG(view, background)
		s.Minify = cmd.Minify
		rec.Replay(s)
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		if err := s.Encode(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unsupported output format %q\n", ext)
		return argp.ShowUsage
	}
}

func (cmd *Draw) draw(s kite.Surface) error {
	switch cmd.Drawing {
	case "scene":
		return pinecone.DrawScene(s, cmd.Seed)
	case "main":
		pc, err := pinecone.MainCharacter()
		if err != nil {
			return err
		}
		return pc.Draw(s)
	case "random":
		f, err := pinecone.NewRandomFactory(kite.Point{}, pinecone.WithSeed(cmd.Seed))
		if err != nil {
			return err
		}
		pc, err := f.Create()
		if err != nil {
			return err
		}
		return pc.Draw(s)
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown drawing %q\n", cmd.Drawing)
		return argp.ShowUsage
	}
}

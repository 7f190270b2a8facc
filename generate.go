package bigo

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Generator renders the fixed set of figures returned by [Figures] into Dir.
type Generator struct {
	// Dir is the directory the PNG files are written to. It must exist.
	Dir string
	// Canvas defaults to NewCanvas().
	Canvas *Canvas
	// Logger defaults to a logger that discards everything.
	Logger *slog.Logger
}

// Paths returns the files GenerateAll writes, in order.
func (g *Generator) Paths() []string {
	figs := Figures()
	out := make([]string, len(figs))
	for i, fig := range figs {
		out[i] = g.path(fig)
	}
	return out
}

// GenerateAll renders and saves every figure, overwriting existing files.
// It stops at the first error; figures saved before it remain in place.
func (g *Generator) GenerateAll() error {
	for _, fig := range Figures() {
		if err := g.Save(fig); err != nil {
			return err
		}
	}
	return nil
}

// Save renders fig to Dir/<name>.png. The file is either replaced as a whole
// or left untouched.
func (g *Generator) Save(fig *Figure) error {
	log := g.logger()
	path := g.path(fig)
	log.Debug("figure.rendering", "name", fig.Name, "series", len(fig.Series), "ref_lines", len(fig.RefLines))

	f, err := os.CreateTemp(g.Dir, "."+fig.Name+"-*.png")
	if err != nil {
		return fmt.Errorf("saving %s: %w", fig.Name, err)
	}
	tmp := f.Name()
	if err := g.write(f, fig); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("saving %s to %s: %w", fig.Name, path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("saving %s to %s: %w", fig.Name, path, err)
	}

	log.Info("figure.saved", "name", fig.Name, "path", path, "series", len(fig.Series))
	return nil
}

func (g *Generator) write(f *os.File, fig *Figure) error {
	if err := g.canvas().EncodePNG(f, fig); err != nil {
		f.Close()
		return err
	}
	// CreateTemp uses 0600.
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (g *Generator) path(fig *Figure) string {
	return filepath.Join(g.Dir, fig.Name+".png")
}

func (g *Generator) canvas() *Canvas {
	if g.Canvas == nil {
		return NewCanvas()
	}
	return g.Canvas
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g.Logger
}

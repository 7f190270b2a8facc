package bigo

import (
	"bytes"
	"errors"
	"image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readOutputs(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	out := map[string][]byte{}
	for _, e := range entries {
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		out[e.Name()] = b
	}
	return out
}

func TestGenerateAll(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{Dir: dir}
	if err := g.GenerateAll(); err != nil {
		t.Fatal(err)
	}

	files := readOutputs(t, dir)
	if len(files) != 4 {
		t.Fatalf("got %d files, want 4", len(files))
	}
	for _, path := range g.Paths() {
		b, ok := files[filepath.Base(path)]
		if !ok {
			t.Errorf("missing %s", path)
			continue
		}
		if len(b) == 0 {
			t.Errorf("%s is empty", path)
			continue
		}
		if _, err := png.Decode(bytes.NewReader(b)); err != nil {
			t.Errorf("%s isn't a valid PNG: %s", path, err)
		}
		fi, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := fi.Mode().Perm(); perm != 0o644 {
			t.Errorf("%s has mode %v, want 0644", path, perm)
		}
	}
}

func TestGenerateAllIdempotent(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{Dir: dir}
	if err := g.GenerateAll(); err != nil {
		t.Fatal(err)
	}
	first := readOutputs(t, dir)
	if err := g.GenerateAll(); err != nil {
		t.Fatal(err)
	}
	second := readOutputs(t, dir)

	if len(second) != 4 {
		t.Fatalf("got %d files after the second run, want 4", len(second))
	}
	for name, b := range first {
		if !bytes.Equal(b, second[name]) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestGenerateAllOverwrites(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "fig1.png")
	if err := os.WriteFile(stale, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := (&Generator{Dir: dir}).GenerateAll(); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(stale)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("fig1.png wasn't replaced: %s", err)
	}
}

func TestGenerateAllMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	err := (&Generator{Dir: dir}).GenerateAll()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want an error wrapping fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "fig1") {
		t.Errorf("error %q doesn't name the failing figure", err)
	}
}

func TestGenerateAllLogs(t *testing.T) {
	var buf bytes.Buffer
	g := &Generator{
		Dir:    t.TempDir(),
		Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	if err := g.GenerateAll(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "msg=figure.saved"); n != 4 {
		t.Errorf("got %d figure.saved entries, want 4:\n%s", n, out)
	}
	if n := strings.Count(out, "msg=figure.rendering"); n != 4 {
		t.Errorf("got %d figure.rendering entries, want 4:\n%s", n, out)
	}

	want := map[string]string{"fig1": "3", "fig2": "2", "fig3": "2", "fig4": "3"}
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "msg=figure.saved") {
			continue
		}
		for name, n := range want {
			if strings.Contains(line, "name="+name+" ") && !strings.Contains(line, "series="+n) {
				t.Errorf("%s: saved entry doesn't report %s series: %s", name, n, line)
			}
		}
		if !strings.Contains(line, "series=") {
			t.Errorf("saved entry doesn't report the series count: %s", line)
		}
	}
}

func TestGeneratorPaths(t *testing.T) {
	g := &Generator{Dir: "out"}
	diff(t, g.Paths(), []string{
		filepath.Join("out", "fig1.png"),
		filepath.Join("out", "fig2.png"),
		filepath.Join("out", "fig3.png"),
		filepath.Join("out", "fig4.png"),
	})
}

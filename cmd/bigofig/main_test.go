package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var stderr bytes.Buffer
	cmd := newRootCmd(dir)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	logs, err := execute(t, dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"fig1.png", "fig2.png", "fig3.png", "fig4.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %s", name, err)
		}
	}
	if strings.Contains(logs, "figure.rendering") {
		t.Errorf("debug output without --verbose:\n%s", logs)
	}
	if n := strings.Count(logs, "figure.saved"); n != 4 {
		t.Errorf("got %d figure.saved entries, want 4:\n%s", n, logs)
	}
}

func TestRootCommandVerbose(t *testing.T) {
	logs, err := execute(t, t.TempDir(), "--verbose")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs, "figure.rendering") {
		t.Errorf("expected debug output with --verbose:\n%s", logs)
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, dir, "fig5"); err == nil {
		t.Fatal("expected an error for positional arguments")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d files, want none", len(entries))
	}
}

func TestRootCommandUnwritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	logs, err := execute(t, dir)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(logs, "generating figures") {
		t.Errorf("expected the failure to be logged:\n%s", logs)
	}
}

func TestOutputDir(t *testing.T) {
	dir, err := outputDir()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "main.go")); err != nil {
		t.Errorf("output directory %s doesn't hold the command's source: %s", dir, err)
	}
}

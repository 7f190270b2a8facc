// Command bigofig renders the figures illustrating asymptotic notation and
// writes them as fig1.png through fig4.png next to its own source file.
//
// It takes no arguments:
//
//	go generate honnef.co/go/bigo/cmd/bigofig
package main

//go:generate go run .

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"honnef.co/go/bigo"
)

func main() {
	dir, err := outputDir()
	if err != nil {
		slog.Error("locating output directory", "err", err)
		os.Exit(1)
	}
	if err := newRootCmd(dir).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(dir string) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:          "bigofig",
		Short:        "Render the asymptotic notation figures",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			g := &bigo.Generator{
				Dir:    dir,
				Logger: log,
			}
			if err := g.GenerateAll(); err != nil {
				log.Error("generating figures", "dir", dir, "err", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// outputDir returns the directory containing this file, falling back to the
// executable's directory when the source tree isn't available.
func outputDir() (string, error) {
	if _, file, _, ok := runtime.Caller(0); ok && filepath.IsAbs(file) {
		dir := filepath.Dir(file)
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir, nil
		}
	}
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Join(errors.New("no source directory"), err)
	}
	return filepath.Dir(exe), nil
}

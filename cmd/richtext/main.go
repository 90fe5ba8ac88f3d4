// Command richtext builds an alert from markup and prints its scene tree
// or renders it to PNG.
//
// Usage:
//
//	richtext [flags] [files...]
//
// Markup is read from the files, or from stdin when none is given. Flags
// may also be set in a config file (--config) or as RICHTEXT_* variables,
// e.g. RICHTEXT_TEXT_SCALE=1.5.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/markup"
	"github.com/gogpu/richtext/raster"
	"github.com/gogpu/richtext/scene"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := newFlagSet()
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: richtext [flags] [files...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, markup is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}
	logger, err := cfg.logger(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}
	if logger != nil {
		richtext.SetLogger(logger)
		defer richtext.SetLogger(nil)
	}
	decorOpts, err := cfg.decor()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	text, err := readInput(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}
	if cfg.Strip {
		fmt.Fprintln(stdout, markup.Strip(text))
		return 0
	}

	fam, err := cfg.family(os.ReadFile)
	if err != nil {
		fmt.Fprintf(stderr, "fonts: %v\n", err)
		return 1
	}
	alert, err := richtext.New(cfg.Title, text, cfg.Button,
		richtext.WithSecondaryButton(cfg.Button2),
		richtext.WithWidth(cfg.Width),
		richtext.WithHeight(cfg.Height),
		richtext.WithScroll(cfg.Scroll),
		richtext.WithTextScale(cfg.TextScale),
		richtext.WithFamily(fam),
		richtext.WithDecorOptions(decorOpts...),
	)
	if err != nil {
		fmt.Fprintf(stderr, "build alert: %v\n", err)
		return 1
	}
	if cfg.Warnings {
		for _, w := range alert.Parsed().Warnings {
			fmt.Fprintf(stderr, "warning: byte %d: %s: %s\n", w.Pos, w.Issue, w.Description)
		}
	}

	root := scene.NewNode()
	root.SetID("scene")
	alert.Show(root)

	if cfg.Output != "" {
		if err := writePNG(cfg, root, stdout); err != nil {
			fmt.Fprintf(stderr, "render: %v\n", err)
			return 1
		}
		return 0
	}
	if err := writeDump(cfg, root, stdout); err != nil {
		fmt.Fprintf(stderr, "dump: %v\n", err)
		return 1
	}
	return 0
}

// readInput concatenates the named files, or reads r when there are none
// or the only name is "-". A single trailing newline is dropped.
func readInput(names []string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	if len(names) == 0 || len(names) == 1 && names[0] == "-" {
		if _, err := io.Copy(&buf, r); err != nil {
			return "", err
		}
	} else {
		for _, name := range names {
			b, err := os.ReadFile(name)
			if err != nil {
				return "", err
			}
			buf.Write(b)
		}
	}
	return strings.TrimSuffix(strings.TrimSuffix(buf.String(), "\n"), "\r"), nil
}

func writePNG(cfg config, root *scene.Node, stdout io.Writer) error {
	img, err := raster.Render(root, raster.WithScale(cfg.Scale))
	if err != nil {
		return err
	}
	if cfg.Output != "-" {
		return raster.SavePNG(cfg.Output, img)
	}
	if isTerminal(stdout) {
		return errors.New("refusing to write PNG to a terminal; use -o FILE")
	}
	return raster.EncodePNG(stdout, img)
}

func writeDump(cfg config, root *scene.Node, stdout io.Writer) error {
	var buf bytes.Buffer
	if err := scene.Dump(&buf, root, scene.DumpOptions{Glyphs: cfg.Glyphs, Hidden: cfg.Hidden}); err != nil {
		return err
	}
	width := cfg.Cols
	if width < 0 {
		width = terminalWidth(stdout)
	}
	for _, line := range strings.SplitAfter(buf.String(), "\n") {
		if line == "" {
			continue
		}
		if width > 0 {
			line = truncate.StringWithTail(strings.TrimSuffix(line, "\n"), uint(width), "…") + "\n"
		}
		if _, err := io.WriteString(stdout, line); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of the terminal w writes to, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
		return cols
	}
	return 0
}

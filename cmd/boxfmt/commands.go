package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"boxfmt/internal/notation"
	"boxfmt/internal/source"
	"boxfmt/internal/textutil"
)

// Inputs names the documents a command works on; none means stdin.
type Inputs struct {
	Files []string `arg:"" optional:"" help:"Input files ('-' for stdin); gzip, zstd and xz are decompressed"`
}

func (in Inputs) names() []string {
	if len(in.Files) == 0 {
		return []string{"-"}
	}
	return in.Files
}

type document struct {
	name string
	text string
}

// load reads every input concurrently and returns them in argument order.
// Stdin is read once up front; naming it again repeats the same document.
func (a *App) load(names []string) ([]document, error) {
	var (
		stdinText  string
		stdinCodec source.Codec
		stdinRead  bool
	)
	for _, name := range names {
		if isStdin(name) && !stdinRead {
			var err error
			stdinText, stdinCodec, err = source.Read("-", a.stdin)
			if err != nil {
				return nil, err
			}
			stdinRead = true
		}
	}

	docs := make([]document, len(names))
	g := new(errgroup.Group)
	for i, name := range names {
		g.Go(func() error {
			text, codec := stdinText, stdinCodec
			if !isStdin(name) {
				var err error
				text, codec, err = source.Read(name, nil)
				if err != nil {
					return err
				}
			}
			a.log.WithFields(logrus.Fields{
				"input": displayName(name),
				"codec": codec.String(),
				"bytes": len(text),
			}).Debug("loaded input")
			docs[i] = document{name: displayName(name), text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func isStdin(name string) bool {
	return name == "" || name == "-"
}

func displayName(name string) string {
	if isStdin(name) {
		return "<stdin>"
	}
	return name
}

// output returns where results go: --out when set, stdout otherwise.
func (a *App) output() (io.Writer, func() error, error) {
	if a.Out == "" {
		return a.stdout, func() error { return nil }, nil
	}
	w, err := source.Create(a.Out)
	if err != nil {
		return nil, nil, err
	}
	a.log.WithField("out", a.Out).Debug("writing output file")
	return w, w.Close, nil
}

func (a *App) render(in Inputs, style notation.Style) error {
	docs, err := a.load(in.names())
	if err != nil {
		return err
	}
	w, closeOut, err := a.output()
	if err != nil {
		return err
	}
	palette := a.palette(w)

	results := make([]string, len(docs))
	g := new(errgroup.Group)
	for i, doc := range docs {
		g.Go(func() error {
			text := doc.text
			if !a.KeepNewlines {
				text = textutil.JoinMultiline(text, true)
			}
			root := notation.Parse(text)
			a.log.WithFields(logrus.Fields{
				"input":    doc.name,
				"style":    style.String(),
				"children": len(root.Children),
			}).Debug("parsed input")
			out, err := notation.Render(root, style, palette)
			if err != nil {
				return fmt.Errorf("%s: %w", doc.name, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		closeOut()
		return err
	}

	for _, out := range results {
		if _, err := io.WriteString(w, out); err != nil {
			closeOut()
			return err
		}
	}
	return closeOut()
}

type BoxCmd struct {
	Inputs
}

func (c *BoxCmd) Run(app *App) error {
	return app.render(c.Inputs, notation.BoxStyle)
}

type IndentCmd struct {
	Inputs
}

func (c *IndentCmd) Run(app *App) error {
	return app.render(c.Inputs, notation.IndentStyle)
}

type CheckCmd struct {
	Inputs
	Quiet bool `short:"q" help:"Only report failures"`
}

var errCheckFailed = errors.New("check failed")

func (c *CheckCmd) Run(app *App) error {
	docs, err := app.load(c.names())
	if err != nil {
		return err
	}

	failed := 0
	for _, doc := range docs {
		root, err := notation.Check(doc.name, doc.text)
		if err != nil {
			failed++
			var serr *notation.SyntaxError
			if errors.As(err, &serr) {
				fmt.Fprint(app.stderr, notation.FormatError(serr))
			} else {
				fmt.Fprintf(app.stderr, "%s: %v\n", doc.name, err)
			}
			continue
		}
		if !c.Quiet {
			fmt.Fprintf(app.stdout, "✅ %s: %d entries\n", doc.name, len(root.Children))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d inputs", errCheckFailed, failed, len(docs))
	}
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(app *App) error {
	fmt.Fprintf(app.stdout, "boxfmt %s\n", version)
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"boxfmt/internal/notation"
)

type DiffCmd struct {
	Inputs
}

var errNotFormatted = errors.New("input differs from its indent rendering")

func (c *DiffCmd) Run(app *App) error {
	docs, err := app.load(c.names())
	if err != nil {
		return err
	}
	w, closeOut, err := app.output()
	if err != nil {
		return err
	}

	colored := app.useColor(w)
	differ := 0
	for _, doc := range docs {
		formatted := notation.FormatWithIndentation(doc.text)
		if formatted == doc.text {
			app.log.WithField("input", doc.name).Debug("already formatted")
			continue
		}
		differ++
		if err := writeLineDiff(w, doc.name, doc.text, formatted, colored); err != nil {
			closeOut()
			return err
		}
	}

	if err := closeOut(); err != nil {
		return err
	}
	if differ > 0 {
		return fmt.Errorf("%w: %d of %d inputs", errNotFormatted, differ, len(docs))
	}
	return nil
}

// writeLineDiff prints a line oriented diff of from -> to, prefixing removed
// lines with '-', added lines with '+' and unchanged lines with ' '.
func writeLineDiff(w io.Writer, name, from, to string, colored bool) error {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		del = painterAny(color.New(color.FgRed))
		ins = painterAny(color.New(color.FgGreen))
	}

	var out strings.Builder
	fmt.Fprintf(&out, "--- %s\n+++ %s (formatted)\n", name, name)
	for _, d := range diffs {
		prefix, paint := " ", fmt.Sprint
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, paint = "-", del
		case diffpatch.DiffInsert:
			prefix, paint = "+", ins
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			out.WriteString(paint(prefix + line))
			out.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, out.String())
	return err
}

func painterAny(c *color.Color) func(...any) string {
	c.EnableColor()
	return c.SprintFunc()
}

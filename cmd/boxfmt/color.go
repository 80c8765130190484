package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"boxfmt/internal/notation"
)

// useColor resolves --color for a destination writer. auto colors only
// terminals.
func (a *App) useColor(w io.Writer) bool {
	switch a.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (a *App) palette(w io.Writer) *notation.Palette {
	if !a.useColor(w) {
		return nil
	}
	return newPalette()
}

func painter(c *color.Color) func(string) string {
	c.EnableColor()
	f := c.SprintFunc()
	return func(s string) string {
		return f(s)
	}
}

func newPalette() *notation.Palette {
	return &notation.Palette{
		Border: painter(color.RGB(96, 96, 96)),
		Title:  painter(color.New(color.Bold, color.FgYellow)),
		Key:    painter(color.RGB(196, 96, 16)),
		Value:  painter(color.RGB(8, 196, 16)),
		Number: painter(color.RGB(128, 216, 236)),
		Delim:  painter(color.RGB(255, 0, 196)),
	}
}

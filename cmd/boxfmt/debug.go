package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"boxfmt/internal/notation"
)

type LexCmd struct {
	Inputs
	Whitespace bool `short:"w" help:"Include whitespace tokens"`
}

func (c *LexCmd) Run(app *App) error {
	docs, err := app.load(c.names())
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err := lexDebug(app.stdout, doc, c.Whitespace); err != nil {
			var serr *notation.SyntaxError
			if errors.As(err, &serr) {
				fmt.Fprint(app.stderr, notation.FormatError(serr))
			}
			return err
		}
	}
	return nil
}

func lexDebug(w io.Writer, doc document, whitespace bool) error {
	tokens, err := notation.LexTokens(doc.name, doc.text)

	fmt.Fprintf(w, "📄 Lexing: %s\n", doc.name)
	fmt.Fprintln(w, "─────────────────────────────────────────────────────────────────")
	fmt.Fprintf(w, "%-4s %-3s %-10s %s\n", "Line", "Col", "Kind", "Value")
	fmt.Fprintln(w, "─────────────────────────────────────────────────────────────────")

	count := 0
	for _, tok := range tokens {
		if tok.Kind == "Whitespace" && !whitespace {
			continue
		}
		value := strings.NewReplacer("\n", "\\n", "\t", "\\t", "\r", "\\r").Replace(tok.Value)
		if r := []rune(value); len(r) > 50 {
			value = string(r[:47]) + "..."
		}
		fmt.Fprintf(w, "%-4d %-3d %-10s %s\n", tok.Location.Line, tok.Location.Column, tok.Kind, value)
		count++
	}

	fmt.Fprintln(w, "─────────────────────────────────────────────────────────────────")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✅ Lexed %d tokens\n", count)
	return nil
}

type AstCmd struct {
	Inputs
}

func (c *AstCmd) Run(app *App) error {
	docs, err := app.load(c.names())
	if err != nil {
		return err
	}
	for _, doc := range docs {
		astDebug(app.stdout, doc)
	}
	return nil
}

func astDebug(w io.Writer, doc document) {
	root := notation.Parse(doc.text)

	fmt.Fprintf(w, "🌲 Tree: %s\n", doc.name)
	fmt.Fprintln(w, "═════════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "[root %s", root.Kind)
	if root.Unwrapped {
		fmt.Fprint(w, " unwrapped")
	}
	fmt.Fprintf(w, "] (%d items)\n", len(root.Children))
	printChildren(w, root.Children, "  ")
	fmt.Fprintln(w, "═════════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "✅ Parsed %d nodes\n", countNodes(root))
}

func printChildren(w io.Writer, children []notation.Node, indent string) {
	for i, child := range children {
		switch n := child.(type) {
		case *notation.Leaf:
			fmt.Fprintf(w, "%s%d. %s\n", indent, i+1, formatLeaf(n))
		case *notation.Block:
			fmt.Fprintf(w, "%s%d. [block %s", indent, i+1, n.Kind)
			if n.Key != "" {
				fmt.Fprintf(w, " %s", n.Key)
			}
			fmt.Fprintf(w, "] (%d items)\n", len(n.Children))
			printChildren(w, n.Children, indent+"  ")
		}
	}
}

func formatLeaf(l *notation.Leaf) string {
	switch {
	case l.Key == "" && l.Value == "":
		return "<empty>"
	case l.Key == "":
		return fmt.Sprintf("%q", l.Value)
	default:
		return fmt.Sprintf("%s = %q", l.Key, l.Value)
	}
}

func countNodes(b *notation.Block) int {
	total := 1
	for _, child := range b.Children {
		if nested, ok := child.(*notation.Block); ok {
			total += countNodes(nested)
		} else {
			total++
		}
	}
	return total
}

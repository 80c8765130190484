package notation

import (
	"strings"

	"boxfmt/internal/textutil"
)

// IndentStep is the number of spaces added per nesting level.
const IndentStep = 2

// RenderIndent renders n with one entry per line, indented IndentStep spaces
// per level, and painted with p.
func RenderIndent(n Node, level int, p *Palette) string {
	indent := strings.Repeat(" ", level*IndentStep)

	switch n := n.(type) {
	case *Leaf:
		if n.Key == "" {
			return indent + p.paint(valueRole(n.Value), n.Value)
		}
		return indent + p.paint(KeyRole, n.Key) + p.paint(DelimRole, " = ") + p.paint(valueRole(n.Value), n.Value)

	case *Block:
		var b strings.Builder
		// An anonymous block starts at column 0; only its closer is indented.
		if n.Key != "" {
			b.WriteString(indent)
			b.WriteString(p.paint(KeyRole, n.Key))
			b.WriteString(p.paint(DelimRole, " = "))
		}
		b.WriteString(p.paint(DelimRole, string(n.Kind.Open())))
		if len(n.Children) > 0 {
			children := make([]string, len(n.Children))
			for i, child := range n.Children {
				children[i] = RenderIndent(child, level+1, p)
			}
			b.WriteString("\n")
			b.WriteString(textutil.Join(children, p.paint(DelimRole, ",")+"\n"))
			b.WriteString("\n")
			b.WriteString(indent)
		}
		b.WriteString(p.paint(DelimRole, string(n.Kind.Close())))
		return b.String()
	}
	return ""
}

// FormatWithIndentation parses input and renders it indented, with a trailing
// newline.
func FormatWithIndentation(input string) string {
	return RenderIndent(Parse(input), 0, nil) + "\n"
}

package notation

import (
	"fmt"
	"io"
	"strings"
)

type Style int

const (
	BoxStyle Style = iota
	IndentStyle
)

func (s Style) String() string {
	switch s {
	case BoxStyle:
		return "box"
	case IndentStyle:
		return "indent"
	default:
		return "unknown"
	}
}

// ParseStyle maps "box" or "indent" to a Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "box":
		return BoxStyle, nil
	case "indent":
		return IndentStyle, nil
	}
	return 0, fmt.Errorf("%w: unknown style %q", ErrInvalidArgument, name)
}

// Render renders n in the given style, ending with a newline. Non-block
// nodes are rendered as if they were the only child of an anonymous root.
func Render(n Node, style Style, p *Palette) (string, error) {
	if isNil(n) {
		return "", fmt.Errorf("%w: nil node", ErrInvalidArgument)
	}
	switch style {
	case BoxStyle:
		b, ok := n.(*Block)
		if !ok {
			b = &Block{Children: []Node{n}}
		}
		return strings.Join(RenderBox(b, p), "\n") + "\n", nil
	case IndentStyle:
		return RenderIndent(n, 0, p) + "\n", nil
	}
	return "", fmt.Errorf("%w: unknown style %d", ErrInvalidArgument, style)
}

// Format reads all of r, parses it and renders it.
func Format(r io.Reader, style Style, p *Palette) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: nil reader", ErrInvalidArgument)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return Render(Parse(string(data)), style, p)
}

func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Block:
		return n == nil
	case *Leaf:
		return n == nil
	}
	return false
}

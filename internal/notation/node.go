// Package notation parses the brace/paren key-value notation and renders the
// resulting tree as nested ASCII boxes or as indented text.
//
// A document is a comma separated list of entries wrapped in {...} or (...):
//
//	{name=server, ports=(http=80, https=443), {anonymous=block}, bare}
//
// Parsing is permissive and never fails; see Check for a strict variant that
// reports positioned syntax errors.
package notation

type BlockKind int

const (
	Brace BlockKind = iota // {}
	Paren                  // ()
)

func (k BlockKind) Open() byte {
	if k == Paren {
		return '('
	}
	return '{'
}

func (k BlockKind) Close() byte {
	if k == Paren {
		return ')'
	}
	return '}'
}

func (k BlockKind) String() string {
	switch k {
	case Brace:
		return "{}"
	case Paren:
		return "()"
	default:
		return "UNKNOWN"
	}
}

func kindOf(c byte) (BlockKind, bool) {
	switch c {
	case '{':
		return Brace, true
	case '(':
		return Paren, true
	}
	return Brace, false
}

// Node is either a *Leaf or a *Block.
type Node interface {
	nodeKey() string
	String() string
}

type Leaf struct {
	Key   string
	Value string
}

func (l *Leaf) nodeKey() string { return l.Key }

// String returns the text shown for the leaf inside a box.
func (l *Leaf) String() string {
	switch {
	case l.Key == "":
		return l.Value
	case l.Value == "":
		return l.Key
	default:
		return l.Key + " = " + l.Value
	}
}

type Block struct {
	Key  string
	Kind BlockKind
	// Unwrapped is set on a root parsed from input that did not start with
	// a delimiter. Such a block has Kind Brace and ran to end of input.
	Unwrapped bool
	Children  []Node
}

func (b *Block) nodeKey() string { return b.Key }

func (b *Block) String() string {
	return RenderIndent(b, 0, nil)
}

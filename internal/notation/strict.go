package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"boxfmt/internal/textutil"
)

// strictLexer splits input into Text runs (no surrounding blanks), single
// delimiter Punct tokens and Whitespace.
var strictLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Text", Pattern: `[^=,{}()\s]+(?:\s+[^=,{}()\s]+)*`},
	{Name: "Punct", Pattern: `[=,{}()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type strictDocument struct {
	Root    *strictBlock   `  @@`
	Entries []*strictEntry `| @@ ( "," @@ )*`
}

type strictBlock struct {
	Pos     lexer.Position
	Open    string         `@( "{" | "(" )`
	Entries []*strictEntry `( @@ ( "," @@ )* )?`
	Close   *strictCloser  `@@`
}

type strictCloser struct {
	Pos   lexer.Position
	Value string `@( "}" | ")" )`
}

type strictEntry struct {
	Pos   lexer.Position
	Block *strictBlock `  @@`
	Text  *string      `| @Text`
	Value *strictValue `  ( "=" @@ )?`
}

type strictValue struct {
	Block *strictBlock `  @@`
	Text  *string      `| @Text`
}

var strictParser = participle.MustBuild[strictDocument](
	participle.Lexer(strictLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Check parses input strictly. Where Parse quietly tolerates empty entries,
// stray or mismatched closers, unterminated blocks and trailing input, Check
// reports a *SyntaxError. On success it returns the tree Parse would build.
func Check(filename, input string) (*Block, error) {
	if textutil.Trim(input) == "" {
		return Parse(input), nil
	}
	doc, err := strictParser.ParseString(filename, input)
	if err != nil {
		return nil, toSyntaxError(filename, input, err)
	}

	if doc.Root != nil {
		root, err := doc.Root.toBlock(filename, input)
		if err != nil {
			return nil, err
		}
		return root, nil
	}

	root := &Block{Unwrapped: true, Children: []Node{}}
	for _, e := range doc.Entries {
		n, err := e.toNode(filename, input)
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, n)
	}
	return root, nil
}

func (b *strictBlock) toBlock(filename, input string) (*Block, error) {
	kind, _ := kindOf(b.Open[0])
	block := &Block{Kind: kind, Children: make([]Node, 0, len(b.Entries))}
	for _, e := range b.Entries {
		n, err := e.toNode(filename, input)
		if err != nil {
			return nil, err
		}
		block.Children = append(block.Children, n)
	}

	if b.Close.Value[0] != kind.Close() {
		return nil, &SyntaxError{
			Message:  fmt.Sprintf("expected '%c' to close '%c', got '%s'", kind.Close(), kind.Open(), b.Close.Value),
			Location: Location{filename, b.Close.Pos.Line, b.Close.Pos.Column},
			Help:     fmt.Sprintf("the block opened at %d:%d must be closed with '%c'", b.Pos.Line, b.Pos.Column, kind.Close()),
			Code:     sourceLine(input, b.Close.Pos.Line),
		}
	}
	return block, nil
}

func (e *strictEntry) toNode(filename, input string) (Node, error) {
	if e.Block != nil {
		return e.Block.toBlock(filename, input)
	}
	if e.Value == nil {
		return &Leaf{Value: *e.Text}, nil
	}
	if e.Value.Block != nil {
		nested, err := e.Value.Block.toBlock(filename, input)
		if err != nil {
			return nil, err
		}
		nested.Key = *e.Text
		return nested, nil
	}
	return &Leaf{Key: *e.Text, Value: *e.Value.Text}, nil
}

func toSyntaxError(filename, input string, err error) error {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return fmt.Errorf("strict parse: %w", err)
	}
	pos := perr.Position()
	return &SyntaxError{
		Message:  perr.Message(),
		Location: Location{filename, pos.Line, pos.Column},
		Help:     helpFor(perr.Message()),
		Code:     sourceLine(input, pos.Line),
	}
}

func helpFor(msg string) string {
	switch {
	case strings.Contains(msg, "<EOF>"):
		return "a block is not closed; add the missing '}' or ')'"
	case strings.Contains(msg, `","`):
		return "entries may not be empty, and nothing may follow the closing delimiter of the document"
	case strings.Contains(msg, `"}"`), strings.Contains(msg, `")"`):
		return "an entry is empty or a closer has no opener; check for trailing commas and unbalanced delimiters"
	case strings.Contains(msg, `"="`):
		return "keys must be a single token followed by '='"
	}
	return ""
}

type LexToken struct {
	Kind     string
	Value    string
	Location Location
}

// LexTokens returns the token stream Check works on, whitespace included.
func LexTokens(filename, input string) ([]LexToken, error) {
	lex, err := strictLexer.Lex(filename, strings.NewReader(input))
	if err != nil {
		return nil, err
	}
	names := lexer.SymbolsByRune(strictLexer)

	var tokens []LexToken
	for {
		tok, err := lex.Next()
		if err != nil {
			return tokens, toSyntaxError(filename, input, err)
		}
		if tok.EOF() {
			break
		}
		tokens = append(tokens, LexToken{
			Kind:     names[tok.Type],
			Value:    tok.Value,
			Location: Location{filename, tok.Pos.Line, tok.Pos.Column},
		})
	}
	return tokens, nil
}

package notation

type Parser struct {
	input string
	pos   int
}

func NewParser(input string) *Parser {
	return &Parser{input: input}
}

// Pos returns the offset of the first unconsumed byte.
func (p *Parser) Pos() int {
	return p.pos
}

// Parse builds the tree for the whole input. The root is always a block; it
// is Unwrapped when the input does not open with { or (.
func Parse(input string) *Block {
	p := NewParser(input)
	p.skipBlanks()
	return p.ParseBlock()
}

func (p *Parser) atEOF() bool {
	return p.pos >= len(p.input)
}

func (p *Parser) current() byte {
	if p.atEOF() {
		return 0
	}
	return p.input[p.pos]
}

func (p *Parser) skipBlanks() {
	for !p.atEOF() && isBlank(p.input[p.pos]) {
		p.pos++
	}
}

// ParseBlock parses one block starting at the cursor. When the cursor is not
// on an opening delimiter the block is unwrapped and consumes everything up
// to end of input.
func (p *Parser) ParseBlock() *Block {
	block := &Block{Children: []Node{}}
	kind, wrapped := kindOf(p.current())
	if wrapped {
		block.Kind = kind
		p.pos++
	} else {
		block.Unwrapped = true
	}

	for {
		p.skipBlanks()
		if p.atEOF() {
			break
		}
		c := p.current()
		if wrapped && c == kind.Close() {
			break
		}
		if c == '}' || c == ')' {
			// stray closer from the other kind
			p.pos++
			continue
		}

		block.Children = append(block.Children, p.parseEntry())
		p.skipBlanks()
		// a comma always starts another entry, even right before the closer
		for p.current() == ',' {
			p.pos++
			block.Children = append(block.Children, p.parseEntry())
			p.skipBlanks()
		}
	}

	if wrapped && p.current() == kind.Close() {
		p.pos++
	}
	return block
}

func (p *Parser) parseEntry() Node {
	look := p.pos
	tok := Token(p.input, &look)

	if look < len(p.input) && p.input[look] == '=' {
		p.pos = look + 1
		return p.parseValue(tok)
	}

	// Blanks before an opener are insignificant: Token has already skipped
	// them, so "{a, {b}}" nests instead of yielding an empty leaf.
	if _, ok := kindOf(byteAt(p.input, look)); ok && tok == "" {
		p.pos = look
		return p.ParseBlock()
	}

	p.pos = look
	return &Leaf{Value: tok}
}

// parseValue reads what follows "key=": a nested block that takes the key,
// or a token.
func (p *Parser) parseValue(key string) Node {
	look := p.pos
	tok := Token(p.input, &look)

	// As in parseEntry, "a= {b}" nests.
	if _, ok := kindOf(byteAt(p.input, look)); ok && tok == "" {
		p.pos = look
		nested := p.ParseBlock()
		nested.Key = key
		return nested
	}

	p.pos = look
	return &Leaf{Key: key, Value: tok}
}

func byteAt(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

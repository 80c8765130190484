package notation

import (
	"strings"
	"unicode/utf8"

	"boxfmt/internal/textutil"
)

const (
	MinInner = 8 // narrowest content area, before padding
	HPad     = 3 // blank columns between a wall and the content
	VPad     = 1 // blank rows around and between children
)

// grid is a rectangle of runes with the role of every cell, so a palette can
// be applied after layout without disturbing column alignment.
type grid struct {
	cells [][]rune
	roles [][]Role
}

func newGrid(height, width int) *grid {
	g := &grid{
		cells: make([][]rune, height),
		roles: make([][]Role, height),
	}
	for r := range g.cells {
		g.cells[r] = []rune(strings.Repeat(" ", width))
		g.roles[r] = make([]Role, width)
	}
	return g
}

func (g *grid) height() int {
	return len(g.cells)
}

func (g *grid) width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

func (g *grid) set(row, col int, c rune, role Role) {
	if row < 0 || row >= g.height() || col < 0 || col >= g.width() {
		return
	}
	g.cells[row][col] = c
	g.roles[row][col] = role
}

// blit copies sub into g with its top left corner at (row, col). Cells at or
// beyond maxRow/maxCol are dropped.
func (g *grid) blit(row, col int, sub *grid, maxRow, maxCol int) {
	for r := 0; r < sub.height() && row+r < maxRow; r++ {
		for c := 0; c < len(sub.cells[r]) && col+c < maxCol; c++ {
			g.set(row+r, col+c, sub.cells[r][c], sub.roles[r][c])
		}
	}
}

func (g *grid) lines(p *Palette) []string {
	out := make([]string, 0, g.height())
	for r, row := range g.cells {
		if p == nil {
			out = append(out, string(row))
			continue
		}
		var b strings.Builder
		start := 0
		for c := 1; c <= len(row); c++ {
			if c < len(row) && g.roles[r][c] == g.roles[r][start] {
				continue
			}
			b.WriteString(p.paint(g.roles[r][start], string(row[start:c])))
			start = c
		}
		out = append(out, b.String())
	}
	return out
}

// leafGrid lays a leaf out on a single row.
func leafGrid(l *Leaf) *grid {
	g := newGrid(1, utf8.RuneCountInString(l.String()))
	col := 0
	write := func(s string, role Role) {
		for _, c := range s {
			g.set(0, col, c, role)
			col++
		}
	}
	switch {
	case l.Key == "":
		write(l.Value, valueRole(l.Value))
	case l.Value == "":
		write(l.Key, KeyRole)
	default:
		write(l.Key, KeyRole)
		write(" = ", DelimRole)
		write(l.Value, valueRole(l.Value))
	}
	return g
}

func boxGrid(b *Block) *grid {
	children := make([]*grid, len(b.Children))
	maxChildWidth, sumChildHeight := 0, 0
	for i, child := range b.Children {
		switch n := child.(type) {
		case *Block:
			children[i] = boxGrid(n)
		case *Leaf:
			children[i] = leafGrid(n)
		}
		maxChildWidth = max(maxChildWidth, children[i].width())
		sumChildHeight += children[i].height()
	}

	title := textutil.Trim(b.Key)
	inner := max(MinInner, utf8.RuneCountInString(title), maxChildWidth) + 2*HPad
	width := inner + 2
	height := 1 + (len(b.Children)+1)*VPad + sumChildHeight + 1

	g := newGrid(height, width)
	for c := 0; c < width; c++ {
		g.set(0, c, '=', BorderRole)
		g.set(height-1, c, '=', BorderRole)
	}
	if b.Key != "" {
		decorated := []rune(" " + b.Key + " ")
		off := (width - len(decorated)) / 2
		for i, c := range decorated {
			role := TitleRole
			if i == 0 || i == len(decorated)-1 {
				role = PlainRole
			}
			g.set(0, off+i, c, role)
		}
	}
	for r := 1; r < height-1; r++ {
		g.set(r, 0, '|', BorderRole)
		g.set(r, width-1, '|', BorderRole)
	}

	row := 1 + VPad
	for _, child := range children {
		g.blit(row, 1+HPad, child, height-1, width-1)
		row += child.height() + VPad
	}
	return g
}

// RenderBox lays b out as nested boxes and returns the rows, all of the same
// rune length, painted with p.
func RenderBox(b *Block, p *Palette) []string {
	return boxGrid(b).lines(p)
}

// FormatAsBox parses input and renders it as boxes, one row per line.
func FormatAsBox(input string) string {
	return textutil.Join(RenderBox(Parse(input), nil), "\n") + "\n"
}

package notation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when a caller hands the API a nil input.
var ErrInvalidArgument = errors.New("invalid argument")

type Location struct {
	Filename string
	Line     int
	Column   int
}

func (l Location) String() string {
	if l.Filename == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Column)
}

// SyntaxError is reported by Check. The permissive parser never produces one.
type SyntaxError struct {
	Message  string
	Location Location
	Help     string
	// Code is the offending source line, when known.
	Code string
}

func (e *SyntaxError) Error() string {
	if e.Location.Line > 0 {
		return fmt.Sprintf("%s: %s", e.Location, e.Message)
	}
	return e.Message
}

// FormatError renders err with the offending line and a marker under the
// column.
func FormatError(err *SyntaxError) string {
	var b strings.Builder

	b.WriteString("✗ ")
	b.WriteString(err.Message)
	b.WriteString("\n")

	if err.Location.Line <= 0 {
		return b.String()
	}

	name := err.Location.Filename
	if name == "" {
		name = "<input>"
	}
	b.WriteString(fmt.Sprintf("  ╭─[%s:%d:%d]\n", name, err.Location.Line, err.Location.Column))
	b.WriteString("  │\n")
	b.WriteString(fmt.Sprintf("%3d│ %s\n", err.Location.Line, err.Code))

	pad := marginFor(err.Code, err.Location.Column)
	b.WriteString("  │ ")
	b.WriteString(pad)
	b.WriteString("─┬─ here\n")
	b.WriteString("  │ ")
	b.WriteString(pad)
	b.WriteString(" ╰─ ")
	b.WriteString(err.Message)
	b.WriteString("\n")
	b.WriteString("  │\n")

	if err.Help != "" {
		b.WriteString("  │ 💡 Help: ")
		b.WriteString(err.Help)
		b.WriteString("\n")
		b.WriteString("  │\n")
	}

	return b.String()
}

// marginFor returns the blanks that put a marker under column col of line,
// keeping tabs so the marker lines up in a terminal.
func marginFor(line string, col int) string {
	var b strings.Builder
	runes := []rune(line)
	for j := 0; j < col-1; j++ {
		if j < len(runes) && runes[j] == '\t' {
			b.WriteString("\t")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// sourceLine returns the 1-based line of src, or "" when out of range.
func sourceLine(src string, line int) string {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], "\r")
}

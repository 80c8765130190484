// Package textutil holds the small string transforms shared by the notation
// parser, its renderers and the command line tool. Every function is total
// and returns a fresh value; none of them mutate their input.
package textutil

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const blank = " \t\n\r"

// Trim strips spaces, tabs, carriage returns and newlines from both ends.
func Trim(s string) string {
	return strings.Trim(s, blank)
}

// Split cuts s at every occurrence of sep. An empty s yields no parts.
func Split(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}

func Join(elements []string, sep string) string {
	return strings.Join(elements, sep)
}

func HasPrefix(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func ToUpper(s string) string {
	return strings.ToUpper(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

// ReplaceChar swaps every from byte for to.
func ReplaceChar(s string, from, to byte) string {
	b := []byte(s)
	for i := range b {
		if b[i] == from {
			b[i] = to
		}
	}
	return string(b)
}

// ReplaceSubstring replaces every from with to, scanning left to right past
// each replacement. An empty from returns s unchanged.
func ReplaceSubstring(s, from, to string) string {
	if from == "" {
		return s
	}
	return strings.ReplaceAll(s, from, to)
}

// CamelToSnake lowers upper case ASCII letters, prefixing each one after the
// first byte with an underscore: "parseHTTP" becomes "parse_h_t_t_p".
func CamelToSnake(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if i != 0 {
				b.WriteByte('_')
			}
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// AbbreviateSnake keeps the first byte of every non-empty underscore
// separated word: "max_line_width" becomes "mlw".
func AbbreviateSnake(s string) string {
	var b strings.Builder
	for _, word := range strings.Split(s, "_") {
		if word == "" {
			continue
		}
		b.WriteByte(word[0])
	}
	return b.String()
}

// IsInteger reports whether s is a complete base 10 integer that fits an int32,
// with an optional sign. Leading whitespace is skipped; trailing whitespace
// is not.
func IsInteger(s string) bool {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 32)
	return err == nil
}

var rational = regexp.MustCompile(`^-?(\d+|\.\d+)(\.\d+)?$`)

// IsRational reports whether s looks like a plain decimal number such as
// "3", "-0.5" or ".25". Exponents and leading plus signs are not accepted.
func IsRational(s string) bool {
	return rational.MatchString(s)
}

// DefaultWrapWidth is the line width used by Wrap when given zero.
const DefaultWrapWidth = 25

// Wrap reflows the whitespace separated words of text into lines of at most
// width bytes. Words longer than width sit alone on their line.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		sep := 0
		if lineLen > 0 {
			sep = 1
		}
		if lineLen+len(word)+sep > width && b.Len() > 0 {
			b.WriteByte('\n')
			lineLen = 0
		}
		if lineLen > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}

// JoinMultiline folds a multi-line string onto one line. Each line loses its
// leading and trailing whitespace; with spaced set, lines are separated by a
// single space instead of being glued together.
func JoinMultiline(s string, spaced bool) string {
	var out, buf strings.Builder
	flush := func() {
		out.WriteString(strings.TrimRightFunc(buf.String(), unicode.IsSpace))
		buf.Reset()
	}
	for _, r := range s {
		if r == '\n' || r == '\r' {
			flush()
			if spaced && out.Len() > 0 && !strings.HasSuffix(out.String(), " ") {
				out.WriteByte(' ')
			}
			continue
		}
		if buf.Len() == 0 && unicode.IsSpace(r) {
			continue
		}
		buf.WriteRune(r)
	}
	flush()
	return out.String()
}

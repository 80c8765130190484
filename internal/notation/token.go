package notation

import "boxfmt/internal/textutil"

func isDelimiter(c byte) bool {
	switch c {
	case '=', ',', '{', '}', '(', ')':
		return true
	}
	return false
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Token reads the run of non-delimiter bytes starting at *pos, leaves *pos on
// the first delimiter (or at the end of input) and returns the run trimmed.
// It returns "" when *pos already sits on a delimiter or past the input.
func Token(input string, pos *int) string {
	start := *pos
	for *pos < len(input) && !isDelimiter(input[*pos]) {
		*pos++
	}
	if start >= *pos {
		return ""
	}
	return textutil.Trim(input[start:*pos])
}

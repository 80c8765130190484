package notation

import "boxfmt/internal/textutil"

type Role int

const (
	PlainRole Role = iota
	BorderRole
	TitleRole
	KeyRole
	ValueRole
	NumberRole
	DelimRole
)

// Palette decorates rendered text by syntactic role. A nil Palette, or a nil
// field, leaves text untouched.
type Palette struct {
	Border func(string) string
	Title  func(string) string
	Key    func(string) string
	Value  func(string) string
	Number func(string) string
	Delim  func(string) string
}

func (p *Palette) paint(role Role, s string) string {
	if p == nil || s == "" {
		return s
	}
	var f func(string) string
	switch role {
	case BorderRole:
		f = p.Border
	case TitleRole:
		f = p.Title
	case KeyRole:
		f = p.Key
	case ValueRole:
		f = p.Value
	case NumberRole:
		f = p.Number
	case DelimRole:
		f = p.Delim
	}
	if f == nil {
		return s
	}
	return f(s)
}

func valueRole(v string) Role {
	if textutil.IsInteger(v) || textutil.IsRational(v) {
		return NumberRole
	}
	return ValueRole
}

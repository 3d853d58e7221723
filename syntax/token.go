package syntax

import "fmt"

// Span is a half-open byte range [Start, End) into the original source.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token is a leaf of the concrete tree. Immutable once produced.
type Token struct {
	Kind Kind
	Text string
	Pos  Span
}

func (t Token) Span() Span {
	return t.Pos
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%s %q", t.Kind, t.Pos, t.Text)
}

func (t Token) element() {}

var _ Element = Token{}

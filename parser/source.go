package parser

import "github.com/lunacookies/eldiro/syntax"

// source is the parser's cursor over the lexed tokens. Grammar decisions
// skip trivia; the trivia itself is left in the token slice for the sink to
// re-insert.
type source struct {
	tokens []syntax.Token
	cursor int
}

func newSource(tokens []syntax.Token) *source {
	return &source{tokens: tokens}
}

func (s *source) next() (syntax.Token, bool) {
	s.skipTrivia()
	if s.cursor >= len(s.tokens) {
		return syntax.Token{}, false
	}

	tok := s.tokens[s.cursor]
	s.cursor++

	return tok, true
}

func (s *source) peekKind() (syntax.Kind, bool) {
	tok, ok := s.peekToken()

	return tok.Kind, ok
}

func (s *source) peekToken() (syntax.Token, bool) {
	s.skipTrivia()
	if s.cursor >= len(s.tokens) {
		return syntax.Token{}, false
	}

	return s.tokens[s.cursor], true
}

func (s *source) skipTrivia() {
	for s.cursor < len(s.tokens) && s.tokens[s.cursor].Kind.IsTrivia() {
		s.cursor++
	}
}

// errorSpan is where a diagnostic should point: the current token, or a
// zero-width span at the end of the input.
func (s *source) errorSpan() syntax.Span {
	if tok, ok := s.peekToken(); ok {
		return tok.Pos
	}

	end := 0
	if len(s.tokens) > 0 {
		end = s.tokens[len(s.tokens)-1].Pos.End
	}

	return syntax.Span{Start: end, End: end}
}

package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/lunacookies/eldiro/syntax"
)

// Lex converts source into tokens. It is total: unrecognized characters
// become one-character Error tokens, and whitespace and comments are kept as
// trivia, so the token text always covers every byte of the input.
func Lex(source string) []syntax.Token {
	lexer := lexer{
		source: source,
		tokens: []syntax.Token{},
	}

	for !lexer.isAtEnd() {
		lexer.scanToken()
	}

	return lexer.tokens
}

type lexer struct {
	source string
	tokens []syntax.Token

	start   int // start of current lexeme
	current int // current position in source
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current:])

	return runeValue
}

func (l *lexer) advance() rune {
	runeValue, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width

	return runeValue
}

func (l *lexer) addToken(kind syntax.Kind) {
	l.tokens = append(l.tokens, syntax.Token{
		Kind: kind,
		Text: l.source[l.start:l.current],
		Pos:  syntax.Span{Start: l.start, End: l.current},
	})
}

func (l *lexer) scanToken() {
	l.start = l.current
	char := l.advance()

	switch char {
	case ' ', '\t', '\r', '\n':
		l.whitespace()
	case '#':
		l.comment()
	case '+':
		l.addToken(syntax.Plus)
	case '-':
		l.addToken(syntax.Minus)
	case '*':
		l.addToken(syntax.Star)
	case '/':
		l.addToken(syntax.Slash)
	case '=':
		l.addToken(syntax.Equals)
	case '(':
		l.addToken(syntax.LParen)
	case ')':
		l.addToken(syntax.RParen)
	default:
		switch {
		case isDigit(char):
			l.number()
		case isAlpha(char):
			l.identifier()
		default:
			l.addToken(syntax.Error)
		}
	}
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func (l *lexer) whitespace() {
	for isWhitespace(l.peek()) {
		l.advance()
	}

	l.addToken(syntax.Whitespace)
}

func (l *lexer) comment() {
	for !l.isAtEnd() && l.peek() != '\n' {
		l.advance()
	}

	l.addToken(syntax.Comment)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	l.addToken(syntax.Number)
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func (l *lexer) identifier() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	if l.source[l.start:l.current] == "let" {
		l.addToken(syntax.LetKw)
	} else {
		l.addToken(syntax.Ident)
	}
}

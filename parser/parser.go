package parser

import (
	"fmt"
	"strings"

	"github.com/lunacookies/eldiro/lexer"
	"github.com/lunacookies/eldiro/syntax"
)

// Parse is the opaque result of parsing: the lossless concrete tree plus any
// errors found along the way.
type Parse struct {
	root   *syntax.Node
	errors []Error
}

func (p Parse) Syntax() *syntax.Node {
	return p.root
}

func (p Parse) Errors() []Error {
	return p.errors
}

type Error struct {
	Pos syntax.Span
	Msg string
}

func (e Error) Error() string {
	return fmt.Sprintf("error at %s: %s", e.Pos, e.Msg)
}

// ParseText lexes and parses source into a Root tree covering every byte of
// the input, however malformed it is.
func ParseText(source string) Parse {
	tokens := lexer.Lex(source)

	parser := parser{source: newSource(tokens)}
	root(&parser)

	sink := newSink(parser.events, tokens)

	return Parse{root: sink.finish(), errors: parser.errors}
}

type parser struct {
	source *source
	events []event
	errors []Error
}

// root = stmt* ;
func root(p *parser) {
	m := p.start()

	parsed := 0
	for !p.atEnd() {
		if ok := stmt(p); !ok {
			break
		}
		parsed++
	}

	// Whatever remains cannot start a statement. Wrap it in an Error node
	// so the tree still covers the whole input.
	if !p.atEnd() {
		msg := "input not fully consumed"
		if parsed == 0 {
			msg = "no statement or expression found"
		}
		p.errorAt(p.source.errorSpan(), msg)

		em := p.start()
		for !p.atEnd() {
			p.bump()
		}
		em.complete(p, syntax.Error)
	}

	m.complete(p, syntax.Root)
}

// stmt = variableDef | expr ;
func stmt(p *parser) bool {
	if p.at(syntax.LetKw) {
		variableDef(p)

		return true
	}

	_, ok := expr(p)

	return ok
}

// variableDef = "let" IDENT "=" expr ;
//
// Repair is local: a missing name or `=` only records an error, and a
// missing value still completes the VariableDef node.
func variableDef(p *parser) {
	m := p.start()
	p.bump() // let

	p.expect(syntax.Ident)
	p.expect(syntax.Equals)

	if _, ok := expr(p); !ok {
		p.errorExpected("expression")
	}

	m.complete(p, syntax.VariableDef)
}

// expr = exprBindingPower(0) ;
func expr(p *parser) (completedMarker, bool) {
	return exprBindingPower(p, 0)
}

// Infix binding powers. Left-associativity falls out of the right power
// being one higher than the left.
func infixBindingPower(kind syntax.Kind) (left, right int, ok bool) {
	switch kind {
	case syntax.Plus, syntax.Minus:
		return 1, 2, true
	case syntax.Star, syntax.Slash:
		return 3, 4, true
	default:
		return 0, 0, false
	}
}

const prefixRightBindingPower = 5

func exprBindingPower(p *parser, minBindingPower int) (completedMarker, bool) {
	lhs, ok := lhs(p)
	if !ok {
		return completedMarker{}, false
	}

	for {
		kind, ok := p.peek()
		if !ok {
			break
		}

		left, right, isOp := infixBindingPower(kind)
		if !isOp || left < minBindingPower {
			break
		}

		p.bump() // operator

		m := lhs.precede(p)
		if _, ok := exprBindingPower(p, right); !ok {
			p.errorExpected("expression")
		}
		lhs = m.complete(p, syntax.InfixExpr)
	}

	return lhs, true
}

// lhs = literal | variableRef | prefixExpr | parenExpr ;
func lhs(p *parser) (completedMarker, bool) {
	kind, ok := p.peek()
	if !ok {
		return completedMarker{}, false
	}

	//exhaustive:ignore
	switch kind {
	case syntax.Number:
		return literal(p), true
	case syntax.Ident:
		return variableRef(p), true
	case syntax.Minus:
		return prefixExpr(p), true
	case syntax.LParen:
		return parenExpr(p), true
	default:
		return completedMarker{}, false
	}
}

// literal = NUMBER ;
func literal(p *parser) completedMarker {
	m := p.start()
	p.bump()

	return m.complete(p, syntax.Literal)
}

// variableRef = IDENT ;
func variableRef(p *parser) completedMarker {
	m := p.start()
	p.bump()

	return m.complete(p, syntax.VariableRef)
}

// prefixExpr = "-" expr ;
func prefixExpr(p *parser) completedMarker {
	m := p.start()
	p.bump() // -

	if _, ok := exprBindingPower(p, prefixRightBindingPower); !ok {
		p.errorExpected("expression")
	}

	return m.complete(p, syntax.PrefixExpr)
}

// parenExpr = "(" expr ")" ;
//
// The inner expression restarts at binding power 0; a missing `)` is
// tolerated so recovery stays local.
func parenExpr(p *parser) completedMarker {
	m := p.start()
	p.bump() // (

	if _, ok := exprBindingPower(p, 0); !ok {
		p.errorExpected("expression")
	}
	p.expect(syntax.RParen)

	return m.complete(p, syntax.ParenExpr)
}

func (p *parser) peek() (syntax.Kind, bool) {
	return p.source.peekKind()
}

func (p *parser) at(kind syntax.Kind) bool {
	k, ok := p.peek()

	return ok && k == kind
}

func (p *parser) atEnd() bool {
	_, ok := p.peek()

	return !ok
}

// bump consumes the current significant token and records an AddToken
// event. The event carries no payload; the sink finds the token itself.
func (p *parser) bump() {
	if _, ok := p.source.next(); !ok {
		panic("parser: bump at end of input")
	}
	p.events = append(p.events, event{kind: eventAddToken})
}

func (p *parser) expect(kind syntax.Kind) {
	if p.at(kind) {
		p.bump()

		return
	}

	p.errorExpected(friendlyName(kind))
}

func (p *parser) errorExpected(what string) {
	msg := "expected " + what
	if tok, ok := p.source.peekToken(); ok {
		msg = fmt.Sprintf("expected %s, but found %s", what, friendlyName(tok.Kind))
	}

	p.errorAt(p.source.errorSpan(), msg)
}

func (p *parser) errorAt(span syntax.Span, msg string) {
	p.errors = append(p.errors, Error{Pos: span, Msg: msg})
}

func friendlyName(kind syntax.Kind) string {
	//exhaustive:ignore
	switch kind {
	case syntax.Number:
		return "number"
	case syntax.Ident:
		return "identifier"
	case syntax.LetKw:
		return "`let`"
	case syntax.Plus:
		return "`+`"
	case syntax.Minus:
		return "`-`"
	case syntax.Star:
		return "`*`"
	case syntax.Slash:
		return "`/`"
	case syntax.Equals:
		return "`=`"
	case syntax.LParen:
		return "`(`"
	case syntax.RParen:
		return "`)`"
	default:
		return strings.ToLower(kind.String())
	}
}

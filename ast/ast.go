// Package ast provides typed, read-only views over the concrete syntax
// tree. A view is a cast: it succeeds only when the node has the matching
// kind, and every accessor returns an ok flag instead of panicking on
// malformed input.
package ast

import (
	"strconv"

	"github.com/lunacookies/eldiro/syntax"
)

type Root struct {
	node *syntax.Node
}

func ToRoot(n *syntax.Node) (Root, bool) {
	if n == nil || n.Kind() != syntax.Root {
		return Root{}, false
	}

	return Root{node: n}, true
}

func (r Root) Syntax() *syntax.Node {
	return r.node
}

func (r Root) Stmts() []Stmt {
	var stmts []Stmt
	for _, child := range r.node.Children() {
		node, ok := child.(*syntax.Node)
		if !ok {
			continue
		}
		if stmt, ok := ToStmt(node); ok {
			stmts = append(stmts, stmt)
		}
	}

	return stmts
}

// Stmt is either a VariableDef or an expression used as a statement.
type Stmt interface {
	Syntax() *syntax.Node
	stmtNode()
}

func ToStmt(n *syntax.Node) (Stmt, bool) {
	if n != nil && n.Kind() == syntax.VariableDef {
		return VariableDef{node: n}, true
	}

	return ToExpr(n)
}

type VariableDef struct {
	node *syntax.Node
}

func (d VariableDef) Syntax() *syntax.Node { return d.node }
func (d VariableDef) stmtNode()            {}

// Name is the defined identifier; absent when the source was malformed.
func (d VariableDef) Name() (syntax.Token, bool) {
	return firstToken(d.node, syntax.Ident)
}

func (d VariableDef) Value() (Expr, bool) {
	return firstExpr(d.node)
}

var _ Stmt = VariableDef{}

type Expr interface {
	Stmt
	exprNode()
}

func ToExpr(n *syntax.Node) (Expr, bool) {
	if n == nil {
		return nil, false
	}

	//exhaustive:ignore
	switch n.Kind() {
	case syntax.Literal:
		return Literal{node: n}, true
	case syntax.VariableRef:
		return VariableRef{node: n}, true
	case syntax.InfixExpr:
		return InfixExpr{node: n}, true
	case syntax.PrefixExpr:
		return PrefixExpr{node: n}, true
	case syntax.ParenExpr:
		return ParenExpr{node: n}, true
	default:
		return nil, false
	}
}

type Literal struct {
	node *syntax.Node
}

func (l Literal) Syntax() *syntax.Node { return l.node }
func (l Literal) stmtNode()            {}
func (l Literal) exprNode()            {}

func (l Literal) Token() (syntax.Token, bool) {
	return firstToken(l.node, syntax.Number)
}

// Value parses the literal's digits. This is the single place literal text
// is parsed; the validator and the lowerer both go through it, so neither
// repeats the fallible conversion on its own.
func (l Literal) Value() (uint64, bool) {
	tok, ok := l.Token()
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseUint(tok.Text, 10, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

var _ Expr = Literal{}

type VariableRef struct {
	node *syntax.Node
}

func (v VariableRef) Syntax() *syntax.Node { return v.node }
func (v VariableRef) stmtNode()            {}
func (v VariableRef) exprNode()            {}

func (v VariableRef) Name() (syntax.Token, bool) {
	return firstToken(v.node, syntax.Ident)
}

var _ Expr = VariableRef{}

type InfixExpr struct {
	node *syntax.Node
}

func (e InfixExpr) Syntax() *syntax.Node { return e.node }
func (e InfixExpr) stmtNode()            {}
func (e InfixExpr) exprNode()            {}

func (e InfixExpr) Lhs() (Expr, bool) {
	return nthExpr(e.node, 0)
}

func (e InfixExpr) Rhs() (Expr, bool) {
	return nthExpr(e.node, 1)
}

func (e InfixExpr) Op() (syntax.Token, bool) {
	for _, child := range e.node.Children() {
		tok, ok := child.(syntax.Token)
		if !ok {
			continue
		}
		//exhaustive:ignore
		switch tok.Kind {
		case syntax.Plus, syntax.Minus, syntax.Star, syntax.Slash:
			return tok, true
		}
	}

	return syntax.Token{}, false
}

var _ Expr = InfixExpr{}

type PrefixExpr struct {
	node *syntax.Node
}

func (e PrefixExpr) Syntax() *syntax.Node { return e.node }
func (e PrefixExpr) stmtNode()            {}
func (e PrefixExpr) exprNode()            {}

func (e PrefixExpr) Op() (syntax.Token, bool) {
	return firstToken(e.node, syntax.Minus)
}

func (e PrefixExpr) Operand() (Expr, bool) {
	return firstExpr(e.node)
}

var _ Expr = PrefixExpr{}

type ParenExpr struct {
	node *syntax.Node
}

func (e ParenExpr) Syntax() *syntax.Node { return e.node }
func (e ParenExpr) stmtNode()            {}
func (e ParenExpr) exprNode()            {}

func (e ParenExpr) Inner() (Expr, bool) {
	return firstExpr(e.node)
}

var _ Expr = ParenExpr{}

func firstToken(n *syntax.Node, kind syntax.Kind) (syntax.Token, bool) {
	for _, child := range n.Children() {
		if tok, ok := child.(syntax.Token); ok && tok.Kind == kind {
			return tok, true
		}
	}

	return syntax.Token{}, false
}

func firstExpr(n *syntax.Node) (Expr, bool) {
	return nthExpr(n, 0)
}

func nthExpr(n *syntax.Node, index int) (Expr, bool) {
	seen := 0
	for _, child := range n.Children() {
		node, ok := child.(*syntax.Node)
		if !ok {
			continue
		}
		expr, ok := ToExpr(node)
		if !ok {
			continue
		}
		if seen == index {
			return expr, true
		}
		seen++
	}

	return nil, false
}

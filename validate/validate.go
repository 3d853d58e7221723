// Package validate reports semantic errors the parser cannot see. It is
// independent of lowering: it never mutates the tree and never stops early,
// so malformed input still gets a complete diagnosis.
package validate

import (
	"fmt"
	"math"

	"github.com/lunacookies/eldiro/ast"
	"github.com/lunacookies/eldiro/syntax"
)

type ErrorKind int

const (
	NumberLiteralTooLarge ErrorKind = iota
)

type Error struct {
	Kind ErrorKind
	Pos  syntax.Span
}

func (e Error) Error() string {
	switch e.Kind {
	case NumberLiteralTooLarge:
		return fmt.Sprintf(
			"error at %s: number literal is larger than an integer's maximum value, %d",
			e.Pos, uint64(math.MaxUint64))
	default:
		return fmt.Sprintf("error at %s: unknown error", e.Pos)
	}
}

// Validate walks every statement and expression under root, in source
// order, and returns the accumulated errors.
func Validate(root ast.Root) []Error {
	var errors []Error
	for _, stmt := range root.Stmts() {
		switch s := stmt.(type) {
		case ast.VariableDef:
			if value, ok := s.Value(); ok {
				errors = validateExpr(value, errors)
			}
		case ast.Expr:
			errors = validateExpr(s, errors)
		}
	}

	return errors
}

func validateExpr(expr ast.Expr, errors []Error) []Error {
	switch e := expr.(type) {
	case ast.Literal:
		tok, ok := e.Token()
		if !ok {
			return errors
		}
		if _, ok := e.Value(); !ok {
			errors = append(errors, Error{Kind: NumberLiteralTooLarge, Pos: tok.Pos})
		}
	case ast.InfixExpr:
		if lhs, ok := e.Lhs(); ok {
			errors = validateExpr(lhs, errors)
		}
		if rhs, ok := e.Rhs(); ok {
			errors = validateExpr(rhs, errors)
		}
	case ast.PrefixExpr:
		if operand, ok := e.Operand(); ok {
			errors = validateExpr(operand, errors)
		}
	case ast.ParenExpr:
		if inner, ok := e.Inner(); ok {
			errors = validateExpr(inner, errors)
		}
	}

	return errors
}

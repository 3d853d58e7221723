// Package hir is the flat high-level IR the tree lowers into. Expressions
// live in a Database arena and refer to each other by index, so structural
// equality and tests need no pointer chasing.
package hir

import (
	"fmt"
	"strings"
)

// ExprIdx addresses an expression inside the Database that produced it.
type ExprIdx int

type Database struct {
	exprs []Expr
}

func NewDatabase() *Database {
	return &Database{}
}

func (db *Database) alloc(e Expr) ExprIdx {
	db.exprs = append(db.exprs, e)

	return ExprIdx(len(db.exprs) - 1)
}

func (db *Database) Expr(idx ExprIdx) Expr {
	return db.exprs[idx]
}

func (db *Database) NumExprs() int {
	return len(db.exprs)
}

type Stmt interface {
	stmtNode()
}

type VariableDef struct {
	Name  string
	Value ExprIdx
}

func (VariableDef) stmtNode() {}

type ExprStmt struct {
	Expr ExprIdx
}

func (ExprStmt) stmtNode() {}

type Expr interface {
	exprNode()
}

// Missing stands in for syntax that was absent or unusable; it propagates
// instead of aborting lowering.
type Missing struct{}

func (Missing) exprNode() {}

// Literal carries Valid == false when the source text overflowed uint64.
// The validator reports that case; lowering only records it.
type Literal struct {
	Value uint64
	Valid bool
}

func (Literal) exprNode() {}

type VariableRef struct {
	Name string
}

func (VariableRef) exprNode() {}

type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

type Binary struct {
	Op  BinaryOp
	Lhs ExprIdx
	Rhs ExprIdx
}

func (Binary) exprNode() {}

type UnaryOp int

const (
	Neg UnaryOp = iota
)

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	default:
		return "?"
	}
}

type Unary struct {
	Op   UnaryOp
	Expr ExprIdx
}

func (Unary) exprNode() {}

// StmtString renders a statement as an s-expression for tests and the REPL.
func (db *Database) StmtString(stmt Stmt) string {
	switch s := stmt.(type) {
	case VariableDef:
		return fmt.Sprintf("(def %s %s)", s.Name, db.ExprString(s.Value))
	case ExprStmt:
		return db.ExprString(s.Expr)
	default:
		return "<unknown>"
	}
}

func (db *Database) ExprString(idx ExprIdx) string {
	switch e := db.Expr(idx).(type) {
	case Missing:
		return "<missing>"
	case Literal:
		if !e.Valid {
			return "<invalid>"
		}

		return fmt.Sprintf("%d", e.Value)
	case VariableRef:
		return e.Name
	case Binary:
		var b strings.Builder
		b.WriteString("(")
		b.WriteString(e.Op.String())
		b.WriteString(" ")
		b.WriteString(db.ExprString(e.Lhs))
		b.WriteString(" ")
		b.WriteString(db.ExprString(e.Rhs))
		b.WriteString(")")

		return b.String()
	case Unary:
		return fmt.Sprintf("(%s %s)", e.Op, db.ExprString(e.Expr))
	default:
		return "<unknown>"
	}
}

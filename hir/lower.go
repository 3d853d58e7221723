package hir

import (
	"github.com/lunacookies/eldiro/ast"
	"github.com/lunacookies/eldiro/syntax"
)

// Lower converts the AST into statements over a fresh Database. It never
// fails: absent or unusable syntax lowers to Missing, and a definition
// without a name is dropped entirely, since it binds nothing.
func Lower(root ast.Root) (*Database, []Stmt) {
	db := NewDatabase()

	var stmts []Stmt
	for _, stmt := range root.Stmts() {
		if lowered, ok := db.lowerStmt(stmt); ok {
			stmts = append(stmts, lowered)
		}
	}

	return db, stmts
}

func (db *Database) lowerStmt(stmt ast.Stmt) (Stmt, bool) {
	switch s := stmt.(type) {
	case ast.VariableDef:
		name, ok := s.Name()
		if !ok {
			return nil, false
		}
		value, ok := s.Value()

		return VariableDef{Name: name.Text, Value: db.lowerMaybe(value, ok)}, true
	case ast.Expr:
		return ExprStmt{Expr: db.lowerExpr(s)}, true
	default:
		return nil, false
	}
}

func (db *Database) lowerMaybe(expr ast.Expr, ok bool) ExprIdx {
	if !ok {
		return db.alloc(Missing{})
	}

	return db.lowerExpr(expr)
}

func (db *Database) lowerExpr(expr ast.Expr) ExprIdx {
	switch e := expr.(type) {
	case ast.Literal:
		value, ok := e.Value()

		return db.alloc(Literal{Value: value, Valid: ok})
	case ast.VariableRef:
		name, ok := e.Name()
		if !ok {
			return db.alloc(Missing{})
		}

		return db.alloc(VariableRef{Name: name.Text})
	case ast.InfixExpr:
		lhs, lhsOk := e.Lhs()
		rhs, rhsOk := e.Rhs()
		op, opOk := e.Op()
		if !opOk {
			return db.alloc(Missing{})
		}

		lhsIdx := db.lowerMaybe(lhs, lhsOk)
		rhsIdx := db.lowerMaybe(rhs, rhsOk)

		return db.alloc(Binary{Op: binaryOp(op.Kind), Lhs: lhsIdx, Rhs: rhsIdx})
	case ast.PrefixExpr:
		operand, ok := e.Operand()

		return db.alloc(Unary{Op: Neg, Expr: db.lowerMaybe(operand, ok)})
	case ast.ParenExpr:
		// parens are purely syntactic
		inner, ok := e.Inner()

		return db.lowerMaybe(inner, ok)
	default:
		return db.alloc(Missing{})
	}
}

func binaryOp(kind syntax.Kind) BinaryOp {
	//exhaustive:ignore
	switch kind {
	case syntax.Plus:
		return Add
	case syntax.Minus:
		return Sub
	case syntax.Star:
		return Mul
	default:
		return Div
	}
}

// Package eval is a minimal walker over the HIR, used by the REPL and by
// tests. All failures are recoverable per-call errors; the session's
// environment survives them.
package eval

import (
	"fmt"

	"github.com/lunacookies/eldiro/hir"
)

type Evaluator struct {
	db  *hir.Database
	env *Env
}

// NewEvaluator evaluates expressions from db against env. The environment
// is owned by the caller and threaded across evaluations.
func NewEvaluator(db *hir.Database, env *Env) *Evaluator {
	return &Evaluator{db: db, env: env}
}

type UnboundNameError struct {
	Name string
}

func (e UnboundNameError) Error() string {
	return fmt.Sprintf("`%s` is not bound", e.Name)
}

type DivisionByZeroError struct{}

func (e DivisionByZeroError) Error() string {
	return "division by zero"
}

type MissingValueError struct{}

func (e MissingValueError) Error() string {
	return "cannot evaluate missing expression"
}

// EvalStmt evaluates a statement. A variable definition binds its value in
// the current scope and yields Unit; everything else yields the
// expression's value.
func (ev *Evaluator) EvalStmt(stmt hir.Stmt) (Value, error) {
	switch s := stmt.(type) {
	case hir.VariableDef:
		value, err := ev.evalExpr(s.Value)
		if err != nil {
			return nil, err
		}
		ev.env.Define(s.Name, value)

		return Unit{}, nil
	case hir.ExprStmt:
		return ev.evalExpr(s.Expr)
	default:
		return nil, MissingValueError{}
	}
}

func (ev *Evaluator) evalExpr(idx hir.ExprIdx) (Value, error) {
	switch e := ev.db.Expr(idx).(type) {
	case hir.Literal:
		if !e.Valid {
			return nil, MissingValueError{}
		}

		return Int(e.Value), nil
	case hir.VariableRef:
		value, ok := ev.env.Lookup(e.Name)
		if !ok {
			return nil, UnboundNameError{Name: e.Name}
		}

		return value, nil
	case hir.Binary:
		return ev.evalBinary(e)
	case hir.Unary:
		operand, err := ev.evalInt(e.Expr)
		if err != nil {
			return nil, err
		}

		return Int(-operand), nil
	default:
		return nil, MissingValueError{}
	}
}

func (ev *Evaluator) evalBinary(e hir.Binary) (Value, error) {
	lhs, err := ev.evalInt(e.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := ev.evalInt(e.Rhs)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case hir.Add:
		return Int(lhs + rhs), nil
	case hir.Sub:
		return Int(lhs - rhs), nil
	case hir.Mul:
		return Int(lhs * rhs), nil
	case hir.Div:
		if rhs == 0 {
			return nil, DivisionByZeroError{}
		}

		// integer division truncates
		return Int(lhs / rhs), nil
	default:
		return nil, MissingValueError{}
	}
}

func (ev *Evaluator) evalInt(idx hir.ExprIdx) (Int, error) {
	value, err := ev.evalExpr(idx)
	if err != nil {
		return 0, err
	}

	i, ok := value.(Int)
	if !ok {
		return 0, MissingValueError{}
	}

	return i, nil
}

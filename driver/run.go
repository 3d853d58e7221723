// Package driver wires the pipeline together: parse, validate, lower,
// evaluate. It is the narrow interface the REPL and tests call into; the
// core packages below it do no I/O.
package driver

import (
	"errors"

	"github.com/lunacookies/eldiro/ast"
	"github.com/lunacookies/eldiro/eval"
	"github.com/lunacookies/eldiro/hir"
	"github.com/lunacookies/eldiro/parser"
	"github.com/lunacookies/eldiro/validate"
)

// Session holds the environment that persists across evaluations, so
// successive REPL entries see earlier definitions.
type Session struct {
	env *eval.Env
}

func NewSession() *Session {
	return &Session{env: eval.NewEnv(nil)}
}

// Run parses, validates and evaluates source in the session environment.
// Parse and validation errors are joined and returned without evaluating;
// evaluation errors return the values produced so far.
func (s *Session) Run(source string) ([]eval.Value, error) {
	parse := parser.ParseText(source)

	var errs []error
	for _, err := range parse.Errors() {
		errs = append(errs, err)
	}

	root, ok := ast.ToRoot(parse.Syntax())
	if !ok {
		return nil, errors.Join(errs...)
	}

	for _, err := range validate.Validate(root) {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	db, stmts := hir.Lower(root)
	evaluator := eval.NewEvaluator(db, s.env)

	values := make([]eval.Value, 0, len(stmts))
	for _, stmt := range stmts {
		value, err := evaluator.EvalStmt(stmt)
		if err != nil {
			return values, err
		}
		values = append(values, value)
	}

	return values, nil
}

// SyntaxTree returns the debug dump of the parse tree for source, with any
// parse errors attached.
func (s *Session) SyntaxTree(source string) (string, error) {
	parse := parser.ParseText(source)

	var errs []error
	for _, err := range parse.Errors() {
		errs = append(errs, err)
	}

	return parse.Syntax().String(), errors.Join(errs...)
}

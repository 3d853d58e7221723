package ast_test

import (
	"testing"

	"github.com/lunacookies/eldiro/ast"
	"github.com/lunacookies/eldiro/parser"
	"github.com/lunacookies/eldiro/syntax"
)

func parseRoot(t *testing.T, input string) ast.Root {
	t.Helper()

	parse := parser.ParseText(input)
	root, ok := ast.ToRoot(parse.Syntax())
	if !ok {
		t.Fatalf("ToRoot failed for %q", input)
	}

	return root
}

func TestVariableDef(t *testing.T) {
	t.Parallel()

	root := parseRoot(t, "let x = 5")
	stmts := root.Stmts()
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}

	def, ok := stmts[0].(ast.VariableDef)
	if !ok {
		t.Fatalf("statement is %T, want VariableDef", stmts[0])
	}

	name, ok := def.Name()
	if !ok || name.Text != "x" {
		t.Errorf("Name() = %v, %v; want x", name, ok)
	}

	value, ok := def.Value()
	if !ok {
		t.Fatal("Value() reported missing")
	}
	literal, ok := value.(ast.Literal)
	if !ok {
		t.Fatalf("value is %T, want Literal", value)
	}
	if n, ok := literal.Value(); !ok || n != 5 {
		t.Errorf("literal Value() = %d, %v; want 5", n, ok)
	}
}

func TestMissingPiecesAreAbsentNotPanics(t *testing.T) {
	t.Parallel()

	root := parseRoot(t, "let a =")
	def := root.Stmts()[0].(ast.VariableDef)

	if name, ok := def.Name(); !ok || name.Text != "a" {
		t.Errorf("Name() = %v, %v; want a", name, ok)
	}
	if _, ok := def.Value(); ok {
		t.Error("Value() should be missing")
	}

	root = parseRoot(t, "let = 10")
	def = root.Stmts()[0].(ast.VariableDef)
	if _, ok := def.Name(); ok {
		t.Error("Name() should be missing")
	}
}

func TestInfixAccessors(t *testing.T) {
	t.Parallel()

	root := parseRoot(t, "1 + 2")
	expr, ok := root.Stmts()[0].(ast.InfixExpr)
	if !ok {
		t.Fatalf("statement is %T, want InfixExpr", root.Stmts()[0])
	}

	if op, ok := expr.Op(); !ok || op.Kind != syntax.Plus {
		t.Errorf("Op() = %v, %v; want Plus", op, ok)
	}

	lhs, ok := expr.Lhs()
	if !ok {
		t.Fatal("Lhs() missing")
	}
	if _, ok := lhs.(ast.Literal); !ok {
		t.Errorf("Lhs() is %T, want Literal", lhs)
	}

	rhs, ok := expr.Rhs()
	if !ok {
		t.Fatal("Rhs() missing")
	}
	if _, ok := rhs.(ast.Literal); !ok {
		t.Errorf("Rhs() is %T, want Literal", rhs)
	}
}

func TestCastRejectsWrongKind(t *testing.T) {
	t.Parallel()

	root := parseRoot(t, "let x = 5")

	// the VariableDef node is not a Root
	child := root.Syntax().Children()[0].(*syntax.Node)
	if _, ok := ast.ToRoot(child); ok {
		t.Error("ToRoot accepted a VariableDef node")
	}
	if _, ok := ast.ToExpr(child); ok {
		t.Error("ToExpr accepted a VariableDef node")
	}
}

func TestLiteralOverflowValue(t *testing.T) {
	t.Parallel()

	root := parseRoot(t, "99999999999999999999")
	literal := root.Stmts()[0].(ast.Literal)

	if _, ok := literal.Value(); ok {
		t.Error("Value() accepted an overflowing literal")
	}
	if tok, ok := literal.Token(); !ok || tok.Text != "99999999999999999999" {
		t.Errorf("Token() = %v, %v", tok, ok)
	}
}

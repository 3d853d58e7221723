package validate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lunacookies/eldiro/ast"
	"github.com/lunacookies/eldiro/parser"
	"github.com/lunacookies/eldiro/syntax"
	"github.com/lunacookies/eldiro/validate"
)

func validateSource(t *testing.T, input string) []validate.Error {
	t.Helper()

	parse := parser.ParseText(input)
	root, ok := ast.ToRoot(parse.Syntax())
	if !ok {
		t.Fatalf("ToRoot failed for %q", input)
	}

	return validate.Validate(root)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		input    string
		expected []validate.Error
	}{
		{"123", nil},
		{"18446744073709551615", nil},
		{
			"99999999999999999999",
			[]validate.Error{{
				Kind: validate.NumberLiteralTooLarge,
				Pos:  syntax.Span{Start: 0, End: 20},
			}},
		},
		{
			"let a = 99999999999999999999 + 2",
			[]validate.Error{{
				Kind: validate.NumberLiteralTooLarge,
				Pos:  syntax.Span{Start: 8, End: 28},
			}},
		},
		{
			"-(99999999999999999999) * 99999999999999999999",
			[]validate.Error{
				{Kind: validate.NumberLiteralTooLarge, Pos: syntax.Span{Start: 2, End: 22}},
				{Kind: validate.NumberLiteralTooLarge, Pos: syntax.Span{Start: 26, End: 46}},
			},
		},
		{"let a =", nil},
	}

	for _, testcase := range testcases {
		actual := validateSource(t, testcase.input)
		if diff := cmp.Diff(testcase.expected, actual); diff != "" {
			t.Errorf("Validate(%q) mismatch (-want +got):\n%s", testcase.input, diff)
		}
	}
}

func TestErrorDisplay(t *testing.T) {
	t.Parallel()

	errs := validateSource(t, "99999999999999999999")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}

	expected := "error at 0..20: number literal is larger than an integer's maximum value, 18446744073709551615"
	if errs[0].Error() != expected {
		t.Errorf("Error() = %q, want %q", errs[0].Error(), expected)
	}
}

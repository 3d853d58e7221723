package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lunacookies/eldiro/parser"
	"github.com/sebdah/goldie/v2"
)

func TestParseGolden(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name  string
		input string
	}{
		{"variable_def", "let a = 10"},
		{"precedence", "1 + 2 * 3"},
		{"left_assoc", "10 - 5 - 2"},
		{"prefix_paren", "-(1 + 2)"},
		{"comment", "1 + 1 # sum"},
		{"missing_value", "let a ="},
		{"missing_name", "let = 10"},
		{"unparsed", ")"},
	}

	for _, testcase := range testcases {
		parse := parser.ParseText(testcase.input)

		g := goldie.New(t)
		g.Assert(t, "parse_"+testcase.name, []byte(parse.Syntax().String()))
	}
}

func TestParseIsLossless(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"   ",
		"let a = 10",
		"let a =",
		"let = 10",
		"1 + 2 * 3",
		"-(4 - 2)",
		"(((1))",
		"1 + ",
		")",
		"1 + 2 )",
		"@#$",
		"let",
		"# trailing comment",
		"let a = 1\nlet b = a\na + b",
	}

	for _, input := range inputs {
		parse := parser.ParseText(input)
		if text := parse.Syntax().Text(); text != input {
			t.Errorf("parse of %q lost text: got %q", input, text)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		input    string
		expected []string
	}{
		{"let a =", []string{"error at 7..7: expected expression"}},
		{"let = 10", []string{"error at 4..5: expected identifier, but found `=`"}},
		{"(1 + 2", []string{"error at 6..6: expected `)`"}},
		{")", []string{"error at 0..1: no statement or expression found"}},
		{"1 + 2 )", []string{"error at 6..7: input not fully consumed"}},
		{"1 +", []string{"error at 3..3: expected expression"}},
		{"let a = 10", nil},
		{"", nil},
		{"   ", nil},
	}

	for _, testcase := range testcases {
		parse := parser.ParseText(testcase.input)

		var actual []string
		for _, err := range parse.Errors() {
			actual = append(actual, err.Error())
		}

		if diff := cmp.Diff(testcase.expected, actual); diff != "" {
			t.Errorf("errors for %q mismatch (-want +got):\n%s", testcase.input, diff)
		}
	}
}

func TestMultipleStatements(t *testing.T) {
	t.Parallel()

	parse := parser.ParseText("let a = 1\na")
	if len(parse.Errors()) != 0 {
		t.Errorf("unexpected errors: %v", parse.Errors())
	}

	dump := parse.Syntax().String()
	for _, want := range []string{"VariableDef@0..10", "VariableRef@10..11"} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump missing %s:\n%s", want, dump)
		}
	}
}

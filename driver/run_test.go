package driver_test

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lunacookies/eldiro/driver"
	"github.com/lunacookies/eldiro/utils"
)

func TestRunFromTestData(t *testing.T) {
	t.Parallel()

	s, err := os.ReadFile("testdata/testcase.yaml")
	if err != nil {
		panic(err)
	}

	for _, testcase := range utils.ReadTestData(s) {
		session := driver.NewSession()
		values, err := session.Run(testcase.Input)

		if expected, ok := testcase.Expected["error"]; ok {
			if err == nil {
				t.Errorf("%s: expected error %q, got none", testcase.Label, expected)
			} else if diff := cmp.Diff(expected, err.Error()); diff != "" {
				t.Errorf("%s: error mismatch (-want +got):\n%s", testcase.Label, diff)
			}

			continue
		}

		if err != nil {
			t.Errorf("%s: Run returned error: %v", testcase.Label, err)

			continue
		}

		if expected, ok := testcase.Expected["value"]; ok {
			if len(values) == 0 {
				t.Errorf("%s: no values produced", testcase.Label)

				continue
			}

			actual := values[len(values)-1].String()
			if diff := cmp.Diff(expected, actual); diff != "" {
				t.Errorf("%s: value mismatch (-want +got):\n%s", testcase.Label, diff)
			}
		}
	}
}

func TestSessionPersistsBindings(t *testing.T) {
	t.Parallel()

	session := driver.NewSession()

	if _, err := session.Run("let a = 10"); err != nil {
		t.Fatalf("definition failed: %v", err)
	}

	values, err := session.Run("a")
	if err != nil {
		t.Fatalf("reference failed: %v", err)
	}
	if values[len(values)-1].String() != "10" {
		t.Errorf("a = %s, want 10", values[len(values)-1])
	}

	// sessions are independent
	if _, err := driver.NewSession().Run("a"); err == nil {
		t.Error("fresh session saw another session's binding")
	}
}

func TestRunReportsParseErrorsWithoutEvaluating(t *testing.T) {
	t.Parallel()

	session := driver.NewSession()

	_, err := session.Run("let a =")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), "expected expression") {
		t.Errorf("unexpected error: %v", err)
	}

	// the failed entry must not have bound anything
	if _, err := session.Run("a"); err == nil {
		t.Error("binding from an erroneous entry is visible")
	}
}

func TestSyntaxTree(t *testing.T) {
	t.Parallel()

	session := driver.NewSession()

	tree, err := session.SyntaxTree("2")
	if err != nil {
		t.Fatalf("SyntaxTree returned error: %v", err)
	}

	expected := "Root@0..1\n  Literal@0..1\n    Number@0..1 \"2\"\n"
	if diff := cmp.Diff(expected, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

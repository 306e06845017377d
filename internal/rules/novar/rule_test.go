package novar_test

import (
	"testing"

	"jstyle/internal/rules/novar"
	"jstyle/internal/rules/ruletest"
)

func TestVarFlagged(t *testing.T) {
	src := "var a = 1;\nlet b = 2;\nconst c = 3;\n"
	diags := ruletest.Run(t, novar.New(), src, nil)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	fixed := ruletest.ApplyFirstFixes(t, src, diags)
	want := "let a = 1;\nlet b = 2;\nconst c = 3;\n"
	if fixed != want {
		t.Fatalf("fixed = %q, want %q", fixed, want)
	}
}

func TestVarAsIdentifierNotFlagged(t *testing.T) {
	// "var" inside strings and comments must not fire.
	src := "let s = 'var';\n// var is legacy\n"
	if diags := ruletest.Run(t, novar.New(), src, nil); len(diags) != 0 {
		t.Fatalf("non-keyword var flagged: %d", len(diags))
	}
}

package eqeqeq_test

import (
	"testing"

	"jstyle/internal/rules/eqeqeq"
	"jstyle/internal/rules/ruletest"
)

func TestLooseEquality(t *testing.T) {
	src := "if (a == b && c != d) {}\n"
	diags := ruletest.Run(t, eqeqeq.New(), src, nil)
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diags))
	}
	fixed := ruletest.ApplyFirstFixes(t, src, diags)
	want := "if (a === b && c !== d) {}\n"
	if fixed != want {
		t.Fatalf("fixed = %q, want %q", fixed, want)
	}
}

func TestStrictFormsClean(t *testing.T) {
	src := "if (a === b || c !== d) {}\n"
	if diags := ruletest.Run(t, eqeqeq.New(), src, nil); len(diags) != 0 {
		t.Fatalf("strict operators flagged: %d", len(diags))
	}
}

func TestAllowNull(t *testing.T) {
	src := "if (a == null) {}\nif (null != b) {}\nif (a == b) {}\n"
	diags := ruletest.Run(t, eqeqeq.New(), src, map[string]any{"allow-null": true})
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if got := ruletest.Texts(src, diags)[0]; got != "==" {
		t.Fatalf("flagged %q", got)
	}
}

package trailingcomma_test

import (
	"testing"

	"jstyle/internal/rules/ruletest"
	"jstyle/internal/rules/trailingcomma"
)

func TestNeverMode(t *testing.T) {
	src := "var a = [1, 2, 3,];\n"
	diags := ruletest.Run(t, trailingcomma.New(), src, nil)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	fixed := ruletest.ApplyFirstFixes(t, src, diags)
	want := "var a = [1, 2, 3];\n"
	if fixed != want {
		t.Fatalf("fixed = %q, want %q", fixed, want)
	}
}

func TestNeverModeMultiline(t *testing.T) {
	src := "var o = {\n  a: 1,\n  b: 2,\n};\n"
	diags := ruletest.Run(t, trailingcomma.New(), src, nil)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if got := ruletest.Texts(src, diags)[0]; got != "," {
		t.Fatalf("flagged %q, want a comma", got)
	}
}

func TestNeverModeClean(t *testing.T) {
	src := "var a = [1, 2, 3];\nf(x, y);\n"
	if diags := ruletest.Run(t, trailingcomma.New(), src, nil); len(diags) != 0 {
		t.Fatalf("clean source flagged: %d", len(diags))
	}
}

func TestAlwaysMode(t *testing.T) {
	opts := map[string]any{"mode": "always"}

	src := "var o = {\n  a: 1,\n  b: 2\n};\n"
	diags := ruletest.Run(t, trailingcomma.New(), src, opts)
	if len(diags) != 1 {
		t.Fatalf("multiline object: got %d diagnostics, want 1", len(diags))
	}
	fixed := ruletest.ApplyFirstFixes(t, src, diags)
	want := "var o = {\n  a: 1,\n  b: 2,\n};\n"
	if fixed != want {
		t.Fatalf("fixed = %q, want %q", fixed, want)
	}
}

func TestAlwaysModeSingleLineExempt(t *testing.T) {
	opts := map[string]any{"mode": "always"}
	src := "var a = [1, 2, 3];\nvar o = {a: 1};\n"
	if diags := ruletest.Run(t, trailingcomma.New(), src, opts); len(diags) != 0 {
		t.Fatalf("single-line literal flagged: %d", len(diags))
	}
}

func TestAlwaysModeBlockExempt(t *testing.T) {
	opts := map[string]any{"mode": "always"}
	src := "if (x) {\n  go()\n}\n"
	if diags := ruletest.Run(t, trailingcomma.New(), src, opts); len(diags) != 0 {
		t.Fatalf("block flagged as literal: %d", len(diags))
	}
}

func TestAlwaysModeEmptyLiteralExempt(t *testing.T) {
	opts := map[string]any{"mode": "always"}
	src := "var a = [\n];\n"
	if diags := ruletest.Run(t, trailingcomma.New(), src, opts); len(diags) != 0 {
		t.Fatalf("empty literal flagged: %d", len(diags))
	}
}

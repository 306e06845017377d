package notrailingspace_test

import (
	"testing"

	"jstyle/internal/rules/notrailingspace"
	"jstyle/internal/rules/ruletest"
)

func TestTrailingWhitespace(t *testing.T) {
	src := "let a = 1;  \nlet b = 2;\nlet c = 3;\t\n"
	diags := ruletest.Run(t, notrailingspace.New(), src, nil)
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diags))
	}
	fixed := ruletest.ApplyFirstFixes(t, src, diags)
	want := "let a = 1;\nlet b = 2;\nlet c = 3;\n"
	if fixed != want {
		t.Fatalf("fixed = %q, want %q", fixed, want)
	}
}

func TestTrailingWhitespaceAtEOF(t *testing.T) {
	src := "let a = 1;   "
	diags := ruletest.Run(t, notrailingspace.New(), src, nil)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
}

func TestIndentationNotFlagged(t *testing.T) {
	src := "if (x) {\n  go();\n}\n"
	if diags := ruletest.Run(t, notrailingspace.New(), src, nil); len(diags) != 0 {
		t.Fatalf("indentation flagged: %d", len(diags))
	}
}

package semi_test

import (
	"testing"

	"jstyle/internal/rules/ruletest"
	"jstyle/internal/rules/semi"
)

func TestMissingSemicolon(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want int
	}{
		{"assignment without semi", "var x = 1\n", 1},
		{"assignment with semi", "var x = 1;\n", 0},
		{"string without semi at eof", `var name = "Bob"`, 1},
		{"call without semi", "foo()\nbar();\n", 1},
		{"return value", "return x\n", 1},
		{"bare return", "return\n", 1},
		{"if condition not flagged", "if (ready)\n  go();\n", 0},
		{"while condition not flagged", "while (x)\n  tick();\n", 0},
		{"method chain continuation", "promise\n  .then(done);\n", 0},
		{"operator at line end not flagged", "var x = a +\n  b;\n", 0},
		{"function declaration brace", "function f()\n{\n}\n", 0},
		{"block close not flagged", "if (x) {\n  go();\n}\n", 0},
		{"postfix increment", "i++\n", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := ruletest.Run(t, semi.New(), tc.src, nil)
			if len(diags) != tc.want {
				t.Fatalf("got %d diagnostics, want %d: %+v", len(diags), tc.want, diags)
			}
		})
	}
}

func TestInsertSemicolonFix(t *testing.T) {
	src := "var x = 1\nvar y = 2\n"
	diags := ruletest.Run(t, semi.New(), src, nil)
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diags))
	}
	fixed := ruletest.ApplyFirstFixes(t, src, diags)
	want := "var x = 1;\nvar y = 2;\n"
	if fixed != want {
		t.Fatalf("fixed = %q, want %q", fixed, want)
	}
}

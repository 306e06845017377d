package maxlinelength_test

import (
	"strings"
	"testing"

	"jstyle/internal/rules/maxlinelength"
	"jstyle/internal/rules/ruletest"
)

func TestLineWidth(t *testing.T) {
	opts := map[string]any{"limit": int64(20)}

	cases := []struct {
		name string
		src  string
		want int
	}{
		{"under limit", "let a = 1;\n", 0},
		{"at limit", strings.Repeat("x", 20) + "\n", 0},
		{"over limit", "let aa = " + strings.Repeat("x", 20) + ";\n", 1},
		{"second line over", "ok();\n" + strings.Repeat("y", 25) + "\n", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := ruletest.Run(t, maxlinelength.New(), tc.src, opts)
			if len(diags) != tc.want {
				t.Fatalf("got %d diagnostics, want %d", len(diags), tc.want)
			}
		})
	}
}

func TestSpanStartsAtOverflow(t *testing.T) {
	opts := map[string]any{"limit": int64(10)}
	src := "0123456789abcdef\n"
	diags := ruletest.Run(t, maxlinelength.New(), src, opts)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if got := ruletest.Texts(src, diags)[0]; got != "abcdef" {
		t.Fatalf("span covers %q, want %q", got, "abcdef")
	}
}

func TestWideRunesCountDouble(t *testing.T) {
	opts := map[string]any{"limit": int64(10)}
	src := "// 表示幅は二倍です\n"
	diags := ruletest.Run(t, maxlinelength.New(), src, opts)
	if len(diags) != 1 {
		t.Fatalf("wide-rune line not flagged: got %d diagnostics", len(diags))
	}
}

func TestTabWidth(t *testing.T) {
	opts := map[string]any{"limit": int64(10), "tab-size": int64(8)}
	src := "\t\tx();\n"
	diags := ruletest.Run(t, maxlinelength.New(), src, opts)
	if len(diags) != 1 {
		t.Fatalf("tabbed line not flagged: got %d diagnostics", len(diags))
	}
}

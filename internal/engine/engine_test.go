package engine_test

import (
	"reflect"
	"strings"
	"testing"

	"jstyle/internal/config"
	"jstyle/internal/diag"
	"jstyle/internal/engine"
	"jstyle/internal/rule"
	"jstyle/internal/rules"
	"jstyle/internal/source"
)

func newEngine(t *testing.T, cfg *config.File) (*engine.Engine, *source.FileSet) {
	t.Helper()
	reg := rules.Builtin()
	resolved, err := config.Resolve(reg, cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return engine.New(reg, resolved), source.NewFileSet()
}

func ruleIDs(res *engine.Result) []string {
	out := make([]string, len(res.Diagnostics))
	for i, d := range res.Diagnostics {
		out[i] = d.Rule
	}
	return out
}

func TestLintQuoteExample(t *testing.T) {
	eng, fs := newEngine(t, nil)
	res := eng.LintSource(fs, "app.js", []byte("var name = \"Bob\";\n"))

	var quote *diag.Diagnostic
	for i := range res.Diagnostics {
		if res.Diagnostics[i].Rule == "quote-style" {
			quote = &res.Diagnostics[i]
		}
	}
	if quote == nil {
		t.Fatalf("quote-style missing: %v", ruleIDs(res))
	}
	if quote.Primary.Start != 11 || quote.Primary.End != 16 {
		t.Fatalf("primary = %s, want 11-16", quote.Primary)
	}
	if len(quote.Fixes) != 1 || quote.Fixes[0].Edits[0].NewText != "'Bob'" {
		t.Fatalf("fix = %+v", quote.Fixes)
	}
	if res.Fixed == nil {
		t.Fatalf("no fixed content produced")
	}
	// no-var's fix is heuristic, so only the quote swap folds in.
	if got, want := string(res.Fixed), "var name = 'Bob';\n"; got != want {
		t.Fatalf("fixed = %q, want %q", got, want)
	}
}

func TestDiagnosticsSortedAndDeterministic(t *testing.T) {
	src := "var b = \"two\"\nvar a = \"one\"\n"
	eng, fs := newEngine(t, nil)
	first := eng.LintSource(fs, "a.js", []byte(src))

	prev := source.Span{}
	for _, d := range first.Diagnostics {
		if d.Primary.Start < prev.Start {
			t.Fatalf("diagnostics not ordered by start: %+v", first.Diagnostics)
		}
		prev = d.Primary
	}

	for run := 0; run < 3; run++ {
		eng2, fs2 := newEngine(t, nil)
		again := eng2.LintSource(fs2, "a.js", []byte(src))
		if !reflect.DeepEqual(ruleIDs(first), ruleIDs(again)) {
			t.Fatalf("run %d differs: %v vs %v", run, ruleIDs(first), ruleIDs(again))
		}
	}
}

func TestDisabledRuleSkipped(t *testing.T) {
	off := false
	cfg := &config.File{
		Rules: map[string]config.RuleConfig{
			"no-var": {Enabled: &off},
		},
	}
	eng, fs := newEngine(t, cfg)
	res := eng.LintSource(fs, "a.js", []byte("var a = 1;\n"))
	for _, id := range ruleIDs(res) {
		if id == "no-var" {
			t.Fatalf("disabled rule still ran")
		}
	}
}

func TestSeverityOverride(t *testing.T) {
	cfg := &config.File{
		Rules: map[string]config.RuleConfig{
			"no-var": {Severity: "error"},
		},
	}
	eng, fs := newEngine(t, cfg)
	res := eng.LintSource(fs, "a.js", []byte("var a = 1;\n"))
	found := false
	for _, d := range res.Diagnostics {
		if d.Rule == "no-var" {
			found = true
			if d.Severity != diag.SevError {
				t.Fatalf("severity = %v", d.Severity)
			}
		}
	}
	if !found {
		t.Fatalf("no-var missing")
	}
	if !res.HasErrors() {
		t.Fatalf("HasErrors = false")
	}
}

func TestViolationCap(t *testing.T) {
	cfg := &config.File{MaxViolations: 3}
	eng, fs := newEngine(t, cfg)
	res := eng.LintSource(fs, "a.js", []byte("var a = 1\nvar b = 2\nvar c = 3\nvar d = 4\n"))
	if len(res.Diagnostics) > 3 {
		t.Fatalf("cap not applied: %d diagnostics", len(res.Diagnostics))
	}
	if !res.Truncated {
		t.Fatalf("Truncated = false")
	}
}

func TestViolationCountAtCapNotTruncated(t *testing.T) {
	// Exactly one diagnostic (no-var) against a cap of one: nothing
	// was dropped, so the result is complete.
	cfg := &config.File{MaxViolations: 1}
	eng, fs := newEngine(t, cfg)
	res := eng.LintSource(fs, "a.js", []byte("var a = 1;\n"))
	if len(res.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(res.Diagnostics), ruleIDs(res))
	}
	if res.Truncated {
		t.Fatalf("Truncated = true with nothing dropped")
	}
}

func TestFixIdempotence(t *testing.T) {
	src := "let a = \"x\";  \nlet b = \"y\"\n"
	eng, fs := newEngine(t, nil)
	res := eng.LintSource(fs, "a.js", []byte(src))
	if res.Fixed == nil {
		t.Fatalf("nothing fixed")
	}

	again := eng.LintSource(fs, "a2.js", res.Fixed)
	if again.Fixed != nil {
		t.Fatalf("second pass still fixes: %q -> %q", res.Fixed, again.Fixed)
	}
}

type jsOnly struct{ panicky }

func (jsOnly) ID() string                 { return "js-only" }
func (jsOnly) AppliesTo(path string) bool { return !strings.HasSuffix(path, ".min.js") }
func (jsOnly) Check(ctx *rule.Context) {
	ctx.Report(ctx.Tokens[0].Span, "checked").Emit()
}

func TestFileFilterSkipsFile(t *testing.T) {
	reg := rule.NewRegistry()
	reg.MustRegister(jsOnly{})
	resolved, err := config.Resolve(reg, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	eng := engine.New(reg, resolved)
	fs := source.NewFileSet()

	res := eng.LintSource(fs, "app.js", []byte("x\n"))
	if len(res.Diagnostics) != 1 {
		t.Fatalf("plain file: got %d diagnostics, want 1", len(res.Diagnostics))
	}
	res = eng.LintSource(fs, "app.min.js", []byte("x\n"))
	if len(res.Diagnostics) != 0 {
		t.Fatalf("filtered file: got %d diagnostics, want 0", len(res.Diagnostics))
	}
}

type panicky struct{}

func (panicky) ID() string                     { return "panicky" }
func (panicky) Description() string            { return "always panics" }
func (panicky) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (panicky) DefaultEnabled() bool           { return true }
func (panicky) Options() []rule.OptionSpec     { return nil }
func (panicky) Check(*rule.Context)            { panic("boom") }

func TestPanicContainment(t *testing.T) {
	reg := rule.NewRegistry()
	reg.MustRegister(panicky{})
	resolved, err := config.Resolve(reg, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	eng := engine.New(reg, resolved)
	fs := source.NewFileSet()
	res := eng.LintSource(fs, "a.js", []byte("let a = 1;\n"))
	if len(res.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1 synthetic", len(res.Diagnostics))
	}
	d := res.Diagnostics[0]
	if d.Rule != "panicky" || d.Severity != diag.SevError {
		t.Fatalf("synthetic diagnostic = %+v", d)
	}
}

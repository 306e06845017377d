// Package ruletest provides the harness shared by rule tests: tokenize
// a snippet, run one rule over it, and hand back the diagnostics.
package ruletest

import (
	"sort"
	"testing"

	"jstyle/internal/diag"
	"jstyle/internal/lexer"
	"jstyle/internal/rule"
	"jstyle/internal/source"
)

// Run lints src with r and returns the sorted diagnostics. opts are the
// merged rule options; nil means defaults only.
func Run(t *testing.T, r rule.Rule, src string, opts map[string]any) []diag.Diagnostic {
	t.Helper()
	if err := rule.ValidateOptions(r, opts); err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}
	merged := make(map[string]any)
	for _, spec := range r.Options() {
		merged[spec.Name] = spec.Default
	}
	for k, v := range opts {
		merged[k] = v
	}

	fset := source.NewFileSet()
	id := fset.AddVirtual("test.js", []byte(src))
	file := fset.Get(id)
	tokens := lexer.Tokenize(file)

	bag := diag.NewBag(1000)
	ctx := rule.NewContext(file, tokens, r.ID(), r.DefaultSeverity(), merged, diag.BagReporter{Bag: bag})
	r.Check(ctx)
	bag.Sort()
	return bag.Items()
}

// Texts extracts the source text under each diagnostic's primary span.
func Texts(src string, diags []diag.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = src[d.Primary.Start:d.Primary.End]
	}
	return out
}

// ApplyFirstFixes applies the first fix of every diagnostic to src, back
// to front, and returns the result. Tests use it to assert fixed output
// for non-overlapping fixes.
func ApplyFirstFixes(t *testing.T, src string, diags []diag.Diagnostic) string {
	t.Helper()
	type edit struct {
		start, end uint32
		text       string
	}
	var edits []edit
	for _, d := range diags {
		if len(d.Fixes) == 0 {
			continue
		}
		for _, e := range d.Fixes[0].Edits {
			edits = append(edits, edit{e.Span.Start, e.Span.End, e.NewText})
		}
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })
	out := []byte(src)
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		if e.start > uint32(len(out)) || e.end > uint32(len(out)) {
			t.Fatalf("edit out of range: %d-%d in %d bytes", e.start, e.end, len(out))
		}
		out = append(out[:e.start], append([]byte(e.text), out[e.end:]...)...)
	}
	return string(out)
}

// Package engine runs the configured rules over tokenized files.
package engine

import (
	"fmt"

	"jstyle/internal/config"
	"jstyle/internal/diag"
	"jstyle/internal/fix"
	"jstyle/internal/lexer"
	"jstyle/internal/rule"
	"jstyle/internal/source"
)

// Engine binds a rule registry to a resolved configuration. It is
// stateless across files and safe for concurrent use.
type Engine struct {
	reg *rule.Registry
	cfg *config.Resolved

	// FixApplicability bounds the fixes folded into Result.Fixed.
	FixApplicability diag.Applicability
}

// New creates an engine. cfg must have been resolved against reg.
func New(reg *rule.Registry, cfg *config.Resolved) *Engine {
	return &Engine{
		reg:              reg,
		cfg:              cfg,
		FixApplicability: diag.AlwaysSafe,
	}
}

// Result is the outcome of linting one file.
type Result struct {
	FileID      source.FileID
	Path        string
	TokenCount  int
	Diagnostics []diag.Diagnostic

	// Fixed is the file content after the one-pass fixer; nil when no
	// fix applied.
	Fixed        []byte
	FixedCount   int
	FixableCount int

	// Truncated is set when the violation cap cut diagnostics off.
	Truncated bool
}

// HasErrors reports whether any diagnostic reached Error severity.
func (r *Result) HasErrors() bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// LintFile tokenizes the file once and runs every enabled rule over
// the shared token stream. Diagnostics come back sorted by position
// and capped at the configured maximum. A panicking rule yields a
// synthetic error diagnostic under its own id; other rules still run.
func (e *Engine) LintFile(fs *source.FileSet, id source.FileID) *Result {
	file := fs.Get(id)
	tokens := lexer.Tokenize(file)

	bag := diag.NewBag(e.cfg.MaxViolations)
	reporter := diag.BagReporter{Bag: bag}

	for _, rr := range e.cfg.RulesFor(e.reg, file.Path) {
		if !rr.Enabled {
			continue
		}
		r, err := e.reg.Get(rr.ID)
		if err != nil {
			continue
		}
		if !rule.AppliesTo(r, file.Path) {
			continue
		}
		ctx := rule.NewContext(file, tokens, rr.ID, rr.Severity, rr.Options, reporter)
		runContained(r, ctx, rr.ID, id, reporter)
	}

	truncated := bag.Truncated()
	bag.Sort()
	bag.Dedup()

	result := &Result{
		FileID:      id,
		Path:        file.Path,
		TokenCount:  len(tokens),
		Diagnostics: bag.Items(),
		Truncated:   truncated,
	}
	for _, d := range result.Diagnostics {
		if d.Fixable() {
			result.FixableCount++
		}
	}
	if result.FixableCount > 0 {
		fixed, n := fix.Preview(file.Content, id, result.Diagnostics, e.FixApplicability)
		if n > 0 {
			result.Fixed = fixed
			result.FixedCount = n
		}
	}
	return result
}

// LintSource lints an in-memory snippet under the given name.
func (e *Engine) LintSource(fs *source.FileSet, name string, content []byte) *Result {
	return e.LintFile(fs, fs.AddVirtual(name, content))
}

// runContained isolates one rule run so a panic cannot take down the
// whole lint.
func runContained(r rule.Rule, ctx *rule.Context, id string, file source.FileID, reporter diag.Reporter) {
	defer func() {
		if rec := recover(); rec != nil {
			reporter.Report(diag.New(
				id,
				diag.SevError,
				source.Span{File: file},
				fmt.Sprintf("rule failed: %v", rec),
			))
		}
	}()
	r.Check(ctx)
}

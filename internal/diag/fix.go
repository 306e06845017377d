package diag

import (
	"jstyle/internal/source"
)

// Applicability is the confidence level of an automated fix.
type Applicability uint8

const (
	// AlwaysSafe fixes preserve program behavior unconditionally.
	AlwaysSafe Applicability = iota
	// SafeWithHeuristics fixes are correct under assumptions that can
	// occasionally be wrong (e.g. no reliance on type coercion).
	SafeWithHeuristics
	// ManualReview fixes are suggestions that need a human decision.
	ManualReview
)

func (a Applicability) String() string {
	switch a {
	case AlwaysSafe:
		return "always-safe"
	case SafeWithHeuristics:
		return "safe-with-heuristics"
	case ManualReview:
		return "manual-review"
	}
	return "unknown"
}

// TextEdit replaces the bytes of Span with NewText. OldText, when set,
// is a guard: the fix engine verifies the current content before
// applying and skips the edit on mismatch.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Fix is one automated correction for a diagnostic. Fixes are
// data-only; applying them is the fix engine's job.
type Fix struct {
	ID            string
	Title         string
	Applicability Applicability
	IsPreferred   bool
	Edits         []TextEdit
}

// Edit is a shorthand for a single-edit fix.
func Edit(title string, applicability Applicability, span source.Span, oldText, newText string) Fix {
	return Fix{
		Title:         title,
		Applicability: applicability,
		Edits: []TextEdit{{
			Span:    span,
			NewText: newText,
			OldText: oldText,
		}},
	}
}

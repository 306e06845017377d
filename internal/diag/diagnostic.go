package diag

import (
	"jstyle/internal/source"
)

// Note is a secondary span with context for a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reported style violation: which rule fired, how
// severe it is, where, and how to fix it (if the rule knows how).
// Immutable once produced.
type Diagnostic struct {
	Rule     string
	Severity Severity
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// Fixable reports whether at least one fix is attached.
func (d Diagnostic) Fixable() bool {
	return len(d.Fixes) > 0
}

// New constructs a diagnostic without notes or fixes.
func New(rule string, sev Severity, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Rule:     rule,
		Severity: sev,
		Message:  msg,
		Primary:  primary,
	}
}

// WithNote returns a copy with an extra note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithFix returns a copy with an extra fix appended.
func (d Diagnostic) WithFix(fix Fix) Diagnostic {
	d.Fixes = append(d.Fixes, fix)
	return d
}

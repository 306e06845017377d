package fix

import (
	"jstyle/internal/diag"
	"jstyle/internal/source"
)

// Preview computes the content of one file after applying its fixes,
// without touching disk. Selection works like ApplyModeAll bounded by
// max: one fix per diagnostic, overlapping fixes dropped in sorted
// order, guarded edits verified against content. Returns the fixed
// bytes and the number of fixes applied; content comes back unchanged
// when nothing applies.
func Preview(content []byte, fileID source.FileID, diagnostics []diag.Diagnostic, max diag.Applicability) ([]byte, int) {
	candidates, _ := gather(diagnostics)
	sortCandidates(candidates)

	var accepted []diag.TextEdit
	applied := 0
next:
	for _, cand := range candidates {
		if cand.fix.Applicability > max {
			continue
		}
		for _, e := range cand.fix.Edits {
			if e.Span.File != fileID {
				continue next
			}
			start, end := int(e.Span.Start), int(e.Span.End)
			if end < start || end > len(content) {
				continue next
			}
			if e.OldText != "" && string(content[start:end]) != e.OldText {
				continue next
			}
			if overlapsAny(accepted, e) {
				continue next
			}
		}
		accepted = append(accepted, cand.fix.Edits...)
		applied++
	}
	if applied == 0 {
		return content, 0
	}
	fixed, err := ApplyEdits(content, accepted)
	if err != nil {
		return content, 0
	}
	return fixed, applied
}

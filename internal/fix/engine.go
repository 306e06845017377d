// Package fix selects and applies the automated fixes attached to
// diagnostics.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"jstyle/internal/diag"
	"jstyle/internal/source"
)

// ErrNoFixes is returned when nothing was applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode selects which fixes to apply.
type ApplyMode uint8

const (
	// ApplyModeAll applies every fix within the applicability bound.
	ApplyModeAll ApplyMode = iota
	// ApplyModeOnce applies only the first fix, preferring safe ones.
	ApplyModeOnce
	// ApplyModeID applies the single fix with the given id.
	ApplyModeID
)

// ApplyOptions configures fix selection.
type ApplyOptions struct {
	Mode     ApplyMode
	TargetID string
	// MaxApplicability is the riskiest level ApplyModeAll will touch.
	MaxApplicability diag.Applicability
}

// AppliedFix records one applied fix.
type AppliedFix struct {
	ID            string
	Title         string
	Rule          string
	Message       string
	Applicability diag.Applicability
	Path          string
	EditCount     int
}

// SkippedFix records a fix that was not applied and why.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// FileChange summarises edits written to one file.
type FileChange struct {
	Path      string
	EditCount int
}

// ApplyResult aggregates the outcome of an Apply call.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply selects fixes from diagnostics per opts and writes the changed
// files back to disk, preserving file permissions and any BOM or CRLF
// line endings the loader normalized away. Virtual files are
// skipped. All spans must refer to the current FileSet content; a run
// of Apply invalidates them, so re-lint before applying again.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, errors.New("fix: nil FileSet")
	}

	candidates, gatherSkips := gather(diagnostics)
	result.Skipped = append(result.Skipped, gatherSkips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	selected, selectSkips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, selectSkips...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	// Accept candidates greedily in sorted order, dropping any whose
	// edits overlap an already accepted edit. Every surviving span then
	// refers to untouched original text, so the edits of one file can
	// be applied back to front without offset bookkeeping.
	accepted := make(map[source.FileID][]diag.TextEdit)
	perFileCount := make(map[source.FileID]int)
	for _, cand := range selected {
		reason := ""
		for _, e := range cand.fix.Edits {
			if fs.Get(e.Span.File).Flags&source.FileVirtual != 0 {
				reason = "target file is virtual"
				break
			}
			if overlapsAny(accepted[e.Span.File], e) {
				reason = "overlaps an earlier fix"
				break
			}
		}
		if reason == "" {
			reason = verifyGuards(fs, cand.fix.Edits)
		}
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{
				ID:     cand.fix.ID,
				Title:  cand.fix.Title,
				Reason: reason,
			})
			continue
		}
		for _, e := range cand.fix.Edits {
			accepted[e.Span.File] = append(accepted[e.Span.File], e)
			perFileCount[e.Span.File]++
		}
		result.Applied = append(result.Applied, AppliedFix{
			ID:            cand.fix.ID,
			Title:         cand.fix.Title,
			Rule:          cand.diag.Rule,
			Message:       cand.diag.Message,
			Applicability: cand.fix.Applicability,
			Path:          fs.Get(cand.diag.Primary.File).Path,
			EditCount:     len(cand.fix.Edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	ids := make([]source.FileID, 0, len(accepted))
	for id := range accepted {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		file := fs.Get(id)
		fixed, err := ApplyEdits(file.Content, accepted[id])
		if err != nil {
			return result, fmt.Errorf("fix %s: %w", file.Path, err)
		}
		mode := os.FileMode(0o644)
		if info, err := os.Stat(file.Path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(file.Path, file.EncodeForWrite(fixed), mode); err != nil {
			return result, fmt.Errorf("write %s: %w", file.Path, err)
		}
		result.FileChanges = append(result.FileChanges, FileChange{
			Path:      file.Path,
			EditCount: perFileCount[id],
		})
	}
	return result, nil
}

// ApplyEdits applies non-overlapping edits to content and returns the
// new bytes. Spans refer to content as given; edits are applied from
// the back so earlier offsets stay valid.
func ApplyEdits(content []byte, edits []diag.TextEdit) ([]byte, error) {
	sorted := append([]diag.TextEdit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.Start != sorted[j].Span.Start {
			return sorted[i].Span.Start > sorted[j].Span.Start
		}
		return sorted[i].Span.End > sorted[j].Span.End
	})
	out := append([]byte(nil), content...)
	for _, e := range sorted {
		start, end := int(e.Span.Start), int(e.Span.End)
		if end < start || end > len(out) {
			return nil, fmt.Errorf("edit span %s out of range", e.Span)
		}
		if e.OldText != "" && string(out[start:end]) != e.OldText {
			return nil, fmt.Errorf("content at %s changed since lint", e.Span)
		}
		out = append(out[:start], append([]byte(e.NewText), out[end:]...)...)
	}
	return out, nil
}

func gather(diagnostics []diag.Diagnostic) ([]candidate, []SkippedFix) {
	var cands []candidate
	var skips []SkippedFix
	order := 0
	for _, d := range diagnostics {
		if len(d.Fixes) == 0 {
			continue
		}
		f := pick(d.Fixes)
		if len(f.Edits) == 0 {
			skips = append(skips, SkippedFix{ID: f.ID, Title: f.Title, Reason: "fix has no edits"})
			continue
		}
		if f.ID == "" {
			f.ID = fmt.Sprintf("%s-%d-%d", d.Rule, d.Primary.File, d.Primary.Start)
		}
		cands = append(cands, candidate{diag: d, fix: f, order: order})
		order++
	}
	return cands, skips
}

// pick chooses one fix per diagnostic: the first preferred one, else
// the first.
func pick(fixes []diag.Fix) diag.Fix {
	for _, f := range fixes {
		if f.IsPreferred {
			return f
		}
	}
	return fixes[0]
}

func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		di, dj := cands[i].diag, cands[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Rule != dj.Rule {
			return di.Rule < dj.Rule
		}
		return cands[i].order < cands[j].order
	})
}

func selectCandidates(cands []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeID:
		for _, cand := range cands {
			if cand.fix.ID == opts.TargetID {
				return []candidate{cand}, nil
			}
		}
		return nil, []SkippedFix{{ID: opts.TargetID, Reason: "fix id not found"}}
	case ApplyModeOnce:
		for _, cand := range cands {
			if cand.fix.Applicability == diag.AlwaysSafe {
				return []candidate{cand}, nil
			}
		}
		return cands[:1], nil
	default:
		var selected []candidate
		var skipped []SkippedFix
		for _, cand := range cands {
			if cand.fix.Applicability > opts.MaxApplicability {
				skipped = append(skipped, SkippedFix{
					ID:     cand.fix.ID,
					Title:  cand.fix.Title,
					Reason: "applicability is " + cand.fix.Applicability.String(),
				})
				continue
			}
			selected = append(selected, cand)
		}
		return selected, skipped
	}
}

func overlapsAny(accepted []diag.TextEdit, e diag.TextEdit) bool {
	for _, prev := range accepted {
		if prev.Span.Overlaps(e.Span) {
			return true
		}
	}
	return false
}

func verifyGuards(fs *source.FileSet, edits []diag.TextEdit) string {
	for _, e := range edits {
		content := fs.Get(e.Span.File).Content
		start, end := int(e.Span.Start), int(e.Span.End)
		if end < start || end > len(content) {
			return "edit span out of range"
		}
		if e.OldText != "" && string(content[start:end]) != e.OldText {
			return "existing text does not match expected content"
		}
	}
	return ""
}

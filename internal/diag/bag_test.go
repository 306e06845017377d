package diag_test

import (
	"testing"

	"jstyle/internal/diag"
	"jstyle/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagCap(t *testing.T) {
	bag := diag.NewBag(2)
	if !bag.Add(diag.New("semi", diag.SevWarning, span(1, 0, 1), "missing semicolon")) {
		t.Fatalf("first Add dropped")
	}
	if !bag.Add(diag.New("semi", diag.SevWarning, span(1, 5, 6), "missing semicolon")) {
		t.Fatalf("second Add dropped")
	}
	if bag.Add(diag.New("semi", diag.SevWarning, span(1, 9, 10), "missing semicolon")) {
		t.Fatalf("Add over cap accepted")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagTruncatedOnlyWhenDropped(t *testing.T) {
	bag := diag.NewBag(2)
	bag.Add(diag.New("semi", diag.SevWarning, span(1, 0, 1), "missing semicolon"))
	bag.Add(diag.New("semi", diag.SevWarning, span(1, 5, 6), "missing semicolon"))
	// Landing exactly on the cap drops nothing.
	if bag.Truncated() {
		t.Fatalf("Truncated = true with nothing dropped")
	}
	bag.Add(diag.New("semi", diag.SevWarning, span(1, 9, 10), "missing semicolon"))
	if !bag.Truncated() {
		t.Fatalf("Truncated = false after a drop")
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.New("no-var", diag.SevInfo, span(1, 0, 3), "prefer let or const"))
	if bag.HasWarnings() || bag.HasErrors() {
		t.Fatalf("info-only bag reports warnings/errors")
	}
	bag.Add(diag.New("eqeqeq", diag.SevWarning, span(1, 4, 6), "use ==="))
	if !bag.HasWarnings() {
		t.Fatalf("HasWarnings = false after warning added")
	}
	if bag.HasErrors() {
		t.Fatalf("HasErrors = true without errors")
	}
	bag.Add(diag.New("syntax-anomaly", diag.SevError, span(1, 8, 9), "unterminated string"))
	if !bag.HasErrors() {
		t.Fatalf("HasErrors = false after error added")
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.New("semi", diag.SevWarning, span(2, 0, 1), "b"))
	bag.Add(diag.New("quote-style", diag.SevWarning, span(1, 4, 9), "a"))
	bag.Add(diag.New("semi", diag.SevWarning, span(1, 4, 9), "a"))
	bag.Add(diag.New("semi", diag.SevWarning, span(1, 4, 5), "a"))
	bag.Add(diag.New("semi", diag.SevWarning, span(1, 0, 1), "a"))
	bag.Sort()

	want := []struct {
		rule  string
		start uint32
		end   uint32
		file  source.FileID
	}{
		{"semi", 0, 1, 1},
		{"semi", 4, 5, 1},
		{"quote-style", 4, 9, 1},
		{"semi", 4, 9, 1},
		{"semi", 0, 1, 2},
	}
	items := bag.Items()
	if len(items) != len(want) {
		t.Fatalf("Len = %d, want %d", len(items), len(want))
	}
	for i, w := range want {
		got := items[i]
		if got.Rule != w.rule || got.Primary.Start != w.start || got.Primary.End != w.end || got.Primary.File != w.file {
			t.Errorf("items[%d] = %s %s, want %s %d:%d-%d",
				i, got.Rule, got.Primary, w.rule, w.file, w.start, w.end)
		}
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.New("semi", diag.SevWarning, span(1, 0, 1), "missing semicolon"))
	bag.Add(diag.New("semi", diag.SevWarning, span(1, 0, 1), "missing semicolon"))
	bag.Add(diag.New("no-var", diag.SevWarning, span(1, 0, 1), "prefer let or const"))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagMergeRaisesCap(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.New("semi", diag.SevWarning, span(1, 0, 1), "x"))
	b := diag.NewBag(1)
	b.Add(diag.New("semi", diag.SevWarning, span(1, 2, 3), "y"))
	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len after Merge = %d, want 2", a.Len())
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := diag.NewBag(10)
	b := diag.NewReportBuilder(diag.BagReporter{Bag: bag}, "quote-style", diag.SevWarning, span(1, 4, 9), "use single quotes")
	b.WithNote(span(1, 0, 3), "declared here")
	b.WithFix(diag.Edit("replace quotes", diag.AlwaysSafe, span(1, 4, 9), `"Bob"`, `'Bob'`))
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1 after double Emit", bag.Len())
	}
	got := bag.Items()[0]
	if len(got.Notes) != 1 || len(got.Fixes) != 1 {
		t.Fatalf("notes=%d fixes=%d, want 1/1", len(got.Notes), len(got.Fixes))
	}
	if !got.Fixable() {
		t.Fatalf("Fixable = false with a fix attached")
	}
}

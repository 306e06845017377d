package fix_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jstyle/internal/diag"
	"jstyle/internal/fix"
	"jstyle/internal/source"
)

func edit(file source.FileID, start, end uint32, old, new string) diag.TextEdit {
	return diag.TextEdit{
		Span:    source.Span{File: file, Start: start, End: end},
		OldText: old,
		NewText: new,
	}
}

func TestApplyEdits(t *testing.T) {
	content := []byte(`var name = "Bob"`)
	edits := []diag.TextEdit{
		edit(0, 0, 3, "var", "let"),
		edit(0, 11, 16, `"Bob"`, `'Bob'`),
		edit(0, 16, 16, "", ";"),
	}
	got, err := fix.ApplyEdits(content, edits)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}
	want := "let name = 'Bob';"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestApplyEditsGuardMismatch(t *testing.T) {
	content := []byte("var x = 1")
	_, err := fix.ApplyEdits(content, []diag.TextEdit{
		edit(0, 0, 3, "let", "const"),
	})
	if err == nil {
		t.Fatalf("stale guard accepted")
	}
}

func TestApplyEditsOutOfRange(t *testing.T) {
	if _, err := fix.ApplyEdits([]byte("x"), []diag.TextEdit{edit(0, 0, 9, "", "")}); err == nil {
		t.Fatalf("out-of-range edit accepted")
	}
}

func writeTemp(t *testing.T, content string) (fs *source.FileSet, id source.FileID, path string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "app.js")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fs = source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return fs, id, path
}

func diagWithFix(rule string, file source.FileID, start, end uint32, f diag.Fix) diag.Diagnostic {
	d := diag.New(rule, diag.SevWarning, source.Span{File: file, Start: start, End: end}, rule)
	return d.WithFix(f)
}

func TestApplyAllWritesFile(t *testing.T) {
	fs, id, path := writeTemp(t, `var name = "Bob";`)
	diags := []diag.Diagnostic{
		diagWithFix("quote-style", id, 11, 16,
			diag.Edit("replace quotes", diag.AlwaysSafe, source.Span{File: id, Start: 11, End: 16}, `"Bob"`, `'Bob'`)),
	}
	res, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 || len(res.FileChanges) != 1 {
		t.Fatalf("result = %+v", res)
	}
	got, _ := os.ReadFile(path)
	if string(got) != `var name = 'Bob';` {
		t.Fatalf("file = %q", got)
	}
}

func TestApplyPreservesCRLF(t *testing.T) {
	fs, id, path := writeTemp(t, "var a = 1;\r\nvar b = \"x\";\r\nvar c = 3;\r\n")
	// Spans refer to the normalized (LF) content the lexer sees.
	diags := []diag.Diagnostic{
		diagWithFix("quote-style", id, 19, 22,
			diag.Edit("replace quotes", diag.AlwaysSafe, source.Span{File: id, Start: 19, End: 22}, `"x"`, `'x'`)),
	}
	if _, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "var a = 1;\r\nvar b = 'x';\r\nvar c = 3;\r\n" {
		t.Fatalf("file = %q", got)
	}
}

func TestApplyPreservesBOM(t *testing.T) {
	fs, id, path := writeTemp(t, "\xEF\xBB\xBFvar a = \"x\";")
	diags := []diag.Diagnostic{
		diagWithFix("quote-style", id, 8, 11,
			diag.Edit("replace quotes", diag.AlwaysSafe, source.Span{File: id, Start: 8, End: 11}, `"x"`, `'x'`)),
	}
	if _, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "\xEF\xBB\xBFvar a = 'x';" {
		t.Fatalf("file = %q", got)
	}
}

func TestApplyAllSkipsHeuristicFixes(t *testing.T) {
	fs, id, path := writeTemp(t, "var a = 1;")
	diags := []diag.Diagnostic{
		diagWithFix("no-var", id, 0, 3,
			diag.Edit("replace var", diag.SafeWithHeuristics, source.Span{File: id, Start: 0, End: 3}, "var", "let")),
	}
	_, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if !errors.Is(err, fix.ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "var a = 1;" {
		t.Fatalf("file changed: %q", got)
	}
}

func TestApplyAllWithHeuristicsBound(t *testing.T) {
	fs, id, path := writeTemp(t, "var a = 1;")
	diags := []diag.Diagnostic{
		diagWithFix("no-var", id, 0, 3,
			diag.Edit("replace var", diag.SafeWithHeuristics, source.Span{File: id, Start: 0, End: 3}, "var", "let")),
	}
	_, err := fix.Apply(fs, diags, fix.ApplyOptions{
		Mode:             fix.ApplyModeAll,
		MaxApplicability: diag.SafeWithHeuristics,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "let a = 1;" {
		t.Fatalf("file = %q", got)
	}
}

func TestApplyOnce(t *testing.T) {
	fs, id, path := writeTemp(t, "var a = 1\nvar b = 2\n")
	diags := []diag.Diagnostic{
		diagWithFix("semi", id, 9, 9,
			diag.Edit("insert semicolon", diag.AlwaysSafe, source.Span{File: id, Start: 9, End: 9}, "", ";")),
		diagWithFix("semi", id, 19, 19,
			diag.Edit("insert semicolon", diag.AlwaysSafe, source.Span{File: id, Start: 19, End: 19}, "", ";")),
	}
	res, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeOnce})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 {
		t.Fatalf("applied %d fixes, want 1", len(res.Applied))
	}
	got, _ := os.ReadFile(path)
	if string(got) != "var a = 1;\nvar b = 2\n" {
		t.Fatalf("file = %q", got)
	}
}

func TestApplyByID(t *testing.T) {
	fs, id, _ := writeTemp(t, "var a = 1;")
	f := diag.Edit("replace var", diag.AlwaysSafe, source.Span{File: id, Start: 0, End: 3}, "var", "let")
	f.ID = "no-var-0"
	diags := []diag.Diagnostic{diagWithFix("no-var", id, 0, 3, f)}

	res, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeID, TargetID: "no-var-0"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 || res.Applied[0].ID != "no-var-0" {
		t.Fatalf("result = %+v", res)
	}

	_, err = fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeID, TargetID: "ghost"})
	if !errors.Is(err, fix.ErrNoFixes) {
		t.Fatalf("unknown id: err = %v, want ErrNoFixes", err)
	}
}

func TestOverlappingFixSkipped(t *testing.T) {
	fs, id, path := writeTemp(t, "aaaa")
	diags := []diag.Diagnostic{
		diagWithFix("rule-a", id, 0, 3,
			diag.Edit("first", diag.AlwaysSafe, source.Span{File: id, Start: 0, End: 3}, "aaa", "xxx")),
		diagWithFix("rule-b", id, 2, 4,
			diag.Edit("second", diag.AlwaysSafe, source.Span{File: id, Start: 2, End: 4}, "aa", "yy")),
	}
	res, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 {
		t.Fatalf("applied %d fixes, want 1", len(res.Applied))
	}
	found := false
	for _, s := range res.Skipped {
		if s.Reason == "overlaps an earlier fix" {
			found = true
		}
	}
	if !found {
		t.Fatalf("overlap skip missing: %+v", res.Skipped)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "xxxa" {
		t.Fatalf("file = %q", got)
	}
}

func TestVirtualFileNotWritten(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("stdin.js", []byte("var a = 1;"))
	diags := []diag.Diagnostic{
		diagWithFix("no-var", id, 0, 3,
			diag.Edit("replace var", diag.AlwaysSafe, source.Span{File: id, Start: 0, End: 3}, "var", "let")),
	}
	_, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if !errors.Is(err, fix.ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
}

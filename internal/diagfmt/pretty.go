package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"jstyle/internal/diag"
	"jstyle/internal/source"
)

// Pretty writes diagnostics in a compiler-style format:
//
//	src/app.js:3:12: warning[quote-style]: string should use single quotes
//	  var name = "Bob";
//	             ^^^^^
//
// Diagnostics are printed in the order given; sort the slice first.
func Pretty(w io.Writer, diagnostics []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	severityColor := map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevWarning: color.New(color.FgYellow),
		diag.SevError:   color.New(color.FgRed, color.Bold),
	}
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	if !opts.Color {
		for _, c := range severityColor {
			c.DisableColor()
		}
		bold.DisableColor()
		dim.DisableColor()
	}

	for _, d := range diagnostics {
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		path := file.FormatPath(opts.PathMode.format(), fs.BaseDir())

		sev := severityColor[d.Severity]
		if _, err := fmt.Fprintf(w, "%s: %s[%s]: %s\n",
			bold.Sprintf("%s:%d:%d", path, start.Line, start.Col),
			sev.Sprint(d.Severity.ConfigString()),
			d.Rule,
			d.Message,
		); err != nil {
			return err
		}
		if err := writeContext(w, fs, file, d.Primary, sev); err != nil {
			return err
		}

		if opts.ShowNotes {
			for _, n := range d.Notes {
				nStart, _ := fs.Resolve(n.Span)
				if _, err := fmt.Fprintf(w, "  %s %s (%s:%d:%d)\n",
					dim.Sprint("note:"), n.Msg, path, nStart.Line, nStart.Col); err != nil {
					return err
				}
			}
		}
		if opts.ShowFixes {
			for _, f := range d.Fixes {
				if _, err := fmt.Fprintf(w, "  %s %s [%s]\n",
					dim.Sprint("fix:"), f.Title, f.Applicability); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// writeContext prints the source line with a caret run under the span.
func writeContext(w io.Writer, fs *source.FileSet, file *source.File, span source.Span, sev *color.Color) error {
	start, end := fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" && span.Empty() && int(span.Start) >= len(file.Content) {
		return nil
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(line, "\t", " ")); err != nil {
		return err
	}

	caretStart := int(start.Col) - 1
	caretLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		caretLen = int(end.Col - start.Col)
	} else if end.Line > start.Line {
		caretLen = len(line) - caretStart
	}
	if caretStart < 0 {
		caretStart = 0
	}
	if caretLen < 1 {
		caretLen = 1
	}
	_, err := fmt.Fprintf(w, "  %s%s\n",
		strings.Repeat(" ", caretStart),
		sev.Sprint(strings.Repeat("^", caretLen)),
	)
	return err
}

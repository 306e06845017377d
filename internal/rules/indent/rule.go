// Package indent enforces one indentation character.
package indent

import (
	"strings"

	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/token"
)

// Rule checks the whitespace that opens each line: space style forbids
// tabs there, tab style forbids spaces. Indentation depth is not
// checked; that needs block structure a token stream does not give.
type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "indent" }
func (Rule) Description() string            { return "enforce spaces or tabs for indentation" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (Rule) DefaultEnabled() bool           { return true }

func (Rule) Options() []rule.OptionSpec {
	return []rule.OptionSpec{
		{
			Name:     "style",
			Doc:      "indentation character: space or tab",
			Default:  "space",
			Validate: rule.OneOf("space", "tab"),
		},
		{
			Name:     "size",
			Doc:      "spaces per indent level, used when converting",
			Default:  int64(2),
			Validate: rule.PositiveInt(),
		},
	}
}

func (r Rule) Check(ctx *rule.Context) {
	wantTabs := ctx.StringOption("style", "space") == "tab"
	size := ctx.IntOption("size", 2)
	toks := ctx.Tokens
	for i, tok := range toks {
		if tok.Kind != token.Whitespace {
			continue
		}
		if i > 0 && toks[i-1].Kind != token.Newline {
			continue
		}
		// Blank-line whitespace belongs to no-trailing-space.
		if i+1 < len(toks) {
			switch toks[i+1].Kind {
			case token.Newline, token.EOF:
				continue
			}
		}
		if wantTabs {
			r.checkTabStyle(ctx, tok, size)
		} else {
			r.checkSpaceStyle(ctx, tok, size)
		}
	}
}

func (r Rule) checkSpaceStyle(ctx *rule.Context, tok token.Token, size int) {
	if !strings.ContainsRune(tok.Text, '\t') {
		return
	}
	fixed := strings.ReplaceAll(tok.Text, "\t", strings.Repeat(" ", size))
	ctx.Report(tok.Span, "tab used for indentation").
		WithFix(diag.Edit("convert tabs to spaces", diag.AlwaysSafe, tok.Span, tok.Text, fixed)).
		Emit()
}

func (r Rule) checkTabStyle(ctx *rule.Context, tok token.Token, size int) {
	if !strings.ContainsRune(tok.Text, ' ') {
		return
	}
	b := ctx.Report(tok.Span, "space used for indentation")
	// Convert only pure space indents that divide evenly into levels.
	if !strings.ContainsRune(tok.Text, '\t') && len(tok.Text)%size == 0 {
		fixed := strings.Repeat("\t", len(tok.Text)/size)
		b.WithFix(diag.Edit("convert spaces to tabs", diag.AlwaysSafe, tok.Span, tok.Text, fixed))
	}
	b.Emit()
}

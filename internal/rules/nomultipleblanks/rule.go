// Package nomultipleblanks limits runs of consecutive blank lines.
package nomultipleblanks

import (
	"fmt"
	"strings"

	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/source"
	"jstyle/internal/token"
)

// Rule counts blank lines between two non-blank lines. A run of n
// newline tokens separated only by whitespace contains n-1 blank lines.
type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "no-multiple-blank-lines" }
func (Rule) Description() string            { return "limit consecutive blank lines" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (Rule) DefaultEnabled() bool           { return true }

func (Rule) Options() []rule.OptionSpec {
	return []rule.OptionSpec{{
		Name:     "max",
		Doc:      "maximum allowed consecutive blank lines",
		Default:  int64(1),
		Validate: rule.PositiveInt(),
	}}
}

func (r Rule) Check(ctx *rule.Context) {
	max := ctx.IntOption("max", 1)
	toks := ctx.Tokens
	i := 0
	for i < len(toks) {
		if toks[i].Kind != token.Newline {
			i++
			continue
		}
		// Scan the maximal run of newline/whitespace tokens. The span
		// ends at the last newline so the next line's indentation
		// survives.
		j := i
		lastNL := i
		newlines := 0
		for j < len(toks) {
			switch toks[j].Kind {
			case token.Newline:
				newlines++
				lastNL = j
			case token.Whitespace:
			default:
				goto runEnd
			}
			j++
		}
	runEnd:
		blank := newlines - 1
		if blank > max {
			span := source.Span{
				File:  toks[i].Span.File,
				Start: toks[i].Span.End,
				End:   toks[lastNL].Span.End,
			}
			// The first newline of the run stays outside the span, so
			// max more newlines leave exactly max blank lines. At EOF
			// collapse down to a single trailing newline.
			replacement := strings.Repeat("\n", max)
			if j >= len(toks) || toks[j].Kind == token.EOF {
				replacement = ""
			}
			old := ctx.File.Content[span.Start:span.End]
			ctx.Report(span, fmt.Sprintf("%d consecutive blank lines (max %d)", blank, max)).
				WithFix(diag.Edit("collapse blank lines", diag.AlwaysSafe, span, string(old), replacement)).
				Emit()
		}
		i = j
	}
}

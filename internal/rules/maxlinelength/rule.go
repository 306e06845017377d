// Package maxlinelength caps the display width of source lines.
package maxlinelength

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/source"
)

// Rule measures lines by terminal display width, so wide CJK runes
// count as two columns and combining marks as zero. Tabs count as the
// configured tab size.
type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "max-line-length" }
func (Rule) Description() string            { return "limit the display width of lines" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (Rule) DefaultEnabled() bool           { return true }

func (Rule) Options() []rule.OptionSpec {
	return []rule.OptionSpec{
		{
			Name:     "limit",
			Doc:      "maximum line width in display columns",
			Default:  int64(100),
			Validate: rule.PositiveInt(),
		},
		{
			Name:     "tab-size",
			Doc:      "columns per tab when measuring",
			Default:  int64(4),
			Validate: rule.PositiveInt(),
		},
	}
}

func (r Rule) Check(ctx *rule.Context) {
	limit := ctx.IntOption("limit", 100)
	tabSize := ctx.IntOption("tab-size", 4)
	content := ctx.File.Content

	lineStart := 0
	for off := 0; off <= len(content); off++ {
		if off < len(content) && content[off] != '\n' {
			continue
		}
		line := content[lineStart:off]
		width, overflowAt := measure(line, limit, tabSize)
		if width > limit {
			span := source.Span{
				File:  ctx.File.ID,
				Start: uint32(lineStart + overflowAt),
				End:   uint32(off),
			}
			ctx.Report(span, fmt.Sprintf("line is %d columns wide (max %d)", width, limit)).Emit()
		}
		lineStart = off + 1
	}
}

// measure returns the display width of line and the byte offset of the
// first rune past limit columns (or len(line) if none).
func measure(line []byte, limit, tabSize int) (width, overflowAt int) {
	overflowAt = len(line)
	s := string(line)
	col := 0
	for i, r := range s {
		var w int
		if r == '\t' {
			w = tabSize - col%tabSize
		} else {
			w = runewidth.RuneWidth(r)
		}
		if col+w > limit && overflowAt == len(line) {
			overflowAt = i
		}
		col += w
	}
	return col, overflowAt
}

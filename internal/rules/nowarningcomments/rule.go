// Package nowarningcomments surfaces TODO-style markers in comments.
package nowarningcomments

import (
	"fmt"
	"strings"

	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/source"
	"jstyle/internal/token"
)

// Rule reports each marker term found in a comment, one diagnostic per
// occurrence, pointing at the term itself. Matching is case-sensitive
// and bounded by non-word characters so TODO inside TODOS still counts
// but inside "mastodon" does not.
type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "no-warning-comments" }
func (Rule) Description() string            { return "report TODO, FIXME and similar comment markers" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevInfo }
func (Rule) DefaultEnabled() bool           { return false }

func (Rule) Options() []rule.OptionSpec {
	return []rule.OptionSpec{{
		Name:     "terms",
		Doc:      "marker words to report",
		Default:  []any{"TODO", "FIXME", "XXX"},
		Validate: validateTerms,
	}}
}

func validateTerms(value any) error {
	switch list := value.(type) {
	case []any:
		for _, v := range list {
			if _, ok := v.(string); !ok {
				return fmt.Errorf("terms must be strings, got %T", v)
			}
		}
		return nil
	case []string:
		return nil
	}
	return fmt.Errorf("want a list of strings, got %T", value)
}

func terms(value any) []string {
	switch list := value.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, v := range list {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func (r Rule) Check(ctx *rule.Context) {
	marks := terms(ctx.Option("terms"))
	for _, tok := range ctx.Tokens {
		if tok.Kind != token.Comment {
			continue
		}
		for _, term := range marks {
			for _, off := range occurrences(tok.Text, term) {
				span := source.Span{
					File:  tok.Span.File,
					Start: tok.Span.Start + uint32(off),
					End:   tok.Span.Start + uint32(off+len(term)),
				}
				ctx.Report(span, "comment contains "+term).Emit()
			}
		}
	}
}

// occurrences finds term at word boundaries: the preceding byte must
// not be a word character. The trailing side is left open so TODOs and
// TODO: both match.
func occurrences(text, term string) []int {
	var out []int
	for from := 0; ; {
		i := strings.Index(text[from:], term)
		if i < 0 {
			return out
		}
		at := from + i
		if at == 0 || !isWordByte(text[at-1]) {
			out = append(out, at)
		}
		from = at + len(term)
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

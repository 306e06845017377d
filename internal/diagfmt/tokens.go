package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"jstyle/internal/source"
	"jstyle/internal/token"
)

// TokenOutput is one token in machine output.
type TokenOutput struct {
	Kind         string `json:"kind"`
	Text         string `json:"text,omitempty"`
	Start        uint32 `json:"start"`
	End          uint32 `json:"end"`
	Style        string `json:"style,omitempty"`
	Unterminated bool   `json:"unterminated,omitempty"`
}

// FormatTokensPretty dumps the stream one token per line.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%4d: %-10s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			if _, err := fmt.Fprintf(w, " %q", tok.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
		if tok.Unterminated {
			if _, err := fmt.Fprint(w, " (unterminated)"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON dumps the stream as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		to := TokenOutput{
			Kind:         tok.Kind.String(),
			Text:         tok.Text,
			Start:        tok.Span.Start,
			End:          tok.Span.End,
			Unterminated: tok.Unterminated,
		}
		if tok.Style != token.StyleNone {
			to.Style = tok.Style.String()
		}
		out = append(out, to)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

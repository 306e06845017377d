package token

import (
	"jstyle/internal/source"
)

// Token is a single lexical unit. The stream is lossless: whitespace,
// newlines, and comments are ordinary tokens, and concatenating the Text
// of every token in order reproduces the source byte-for-byte.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Style distinguishes line vs block comments; StyleNone otherwise.
	Style CommentStyle
	// Unterminated marks strings and block comments cut off by newline or EOF.
	Unterminated bool
}

// IsTrivia reports whether the token is whitespace, a newline, or a comment.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case Whitespace, Newline, Comment:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is the given punctuator.
func (t Token) IsPunct(text string) bool {
	return t.Kind == Punct && t.Text == text
}

// IsKeyword reports whether the token is the given reserved word.
func (t Token) IsKeyword(text string) bool {
	return t.Kind == Keyword && t.Text == text
}

// Quote returns the quote character of a string literal, or 0.
func (t Token) Quote() byte {
	if t.Kind != String || len(t.Text) == 0 {
		return 0
	}
	switch t.Text[0] {
	case '\'', '"', '`':
		return t.Text[0]
	}
	return 0
}

package lexer

import (
	"jstyle/internal/source"
	"jstyle/internal/token"
)

// Lexer produces a lossless token stream over a single file. It never
// fails: byte runs it cannot classify come back as Unknown tokens, and
// unterminated literals are flagged on the token instead of reported.
type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token // 1-element lookahead buffer
}

// New creates a lexer positioned at the start of file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next returns the next token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()

	switch {
	case ch == '\n':
		return lx.scanNewline()

	case isSpaceByte(ch):
		return lx.scanWhitespace()

	case ch == '/' && lx.isCommentStart():
		return lx.scanComment()

	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()

	case ch >= 0x80:
		// possible Unicode identifier; scanIdentOrKeyword sorts it out
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	case ch == '"' || ch == '\'' || ch == '`':
		return lx.scanString()

	default:
		return lx.scanPunctOrUnknown()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokenize collects every token of file, EOF included.
func Tokenize(file *source.File) []token.Token {
	lx := New(file)
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(token.Newline, start)
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for isSpaceByte(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

func (lx *Lexer) isCommentStart() bool {
	_, b1, ok := lx.cursor.Peek2()
	return ok && (b1 == '/' || b1 == '*')
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

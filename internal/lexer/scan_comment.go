package lexer

import (
	"jstyle/internal/token"
)

// scanComment consumes // to end of line or /* to */. JavaScript block
// comments do not nest; a missing */ runs to EOF and sets Unterminated.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	if lx.cursor.Eat('/') {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		tok := lx.emit(token.Comment, start)
		tok.Style = token.StyleLine
		return tok
	}

	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			tok := lx.emit(token.Comment, start)
			tok.Style = token.StyleBlock
			return tok
		}
		lx.cursor.Bump()
	}

	tok := lx.emit(token.Comment, start)
	tok.Style = token.StyleBlock
	tok.Unterminated = true
	return tok
}

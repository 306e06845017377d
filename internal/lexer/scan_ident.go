package lexer

import (
	"unicode/utf8"

	"jstyle/internal/token"
)

// scanIdentOrKeyword consumes an identifier, classifying reserved words
// as Keyword. A leading byte >= 0x80 that does not decode to a letter
// falls through to the Unknown scanner.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || (r >= utf8.RuneSelf && !isIdentStartRune(r)) {
		return lx.scanUnknown(start)
	}
	lx.bumpRune()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8.RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	tok := lx.emit(token.Ident, start)
	if token.IsKeywordText(tok.Text) {
		tok.Kind = token.Keyword
	}
	return tok
}

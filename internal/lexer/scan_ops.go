package lexer

import (
	"jstyle/internal/token"
)

// scanPunctOrUnknown consumes one punctuator, longest match first, or a
// run of unclassifiable bytes as a single Unknown token.
func (lx *Lexer) scanPunctOrUnknown() token.Token {
	start := lx.cursor.Mark()

	if !isPunctByte(lx.cursor.Peek()) {
		return lx.scanUnknown(start)
	}

	switch {
	case lx.try4('>', '>', '>', '='):
	case lx.try3('=', '=', '='):
	case lx.try3('!', '=', '='):
	case lx.try3('*', '*', '='):
	case lx.try3('.', '.', '.'):
	case lx.try3('<', '<', '='):
	case lx.try3('>', '>', '='):
	case lx.try3('>', '>', '>'):
	case lx.try2('=', '>'):
	case lx.try2('=', '='):
	case lx.try2('!', '='):
	case lx.try2('<', '='):
	case lx.try2('>', '='):
	case lx.try2('&', '&'):
	case lx.try2('|', '|'):
	case lx.try2('?', '?'):
	case lx.try2('?', '.'):
	case lx.try2('+', '+'):
	case lx.try2('-', '-'):
	case lx.try2('+', '='):
	case lx.try2('-', '='):
	case lx.try2('*', '='):
	case lx.try2('/', '='):
	case lx.try2('%', '='):
	case lx.try2('&', '='):
	case lx.try2('|', '='):
	case lx.try2('^', '='):
	case lx.try2('<', '<'):
	case lx.try2('>', '>'):
	case lx.try2('*', '*'):
	default:
		lx.cursor.Bump()
	}

	return lx.emit(token.Punct, start)
}

// scanUnknown consumes consecutive bytes no other scanner claims.
func (lx *Lexer) scanUnknown(start Mark) token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || isSpaceByte(b) || isPunctByte(b) ||
			isIdentStartByte(b) || isDec(b) ||
			b == '"' || b == '\'' || b == '`' {
			break
		}
		if b >= 0x80 {
			// a decodable letter would have been an identifier
			r, sz := lx.peekRune()
			if sz > 0 && isIdentStartRune(r) {
				break
			}
		}
		lx.cursor.Bump()
	}
	if uint32(start) == lx.cursor.Off {
		lx.cursor.Bump() // always make progress
	}
	return lx.emit(token.Unknown, start)
}

package lexer

import (
	"unicode"
	"unicode/utf8"

	"velox/internal/token"
)

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		b >= utf8.RuneSelf
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8.RuneSelf {
			if !isIdentPart(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Mark():])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		for i := 0; i < size; i++ {
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.file.TextString(sp)
	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kw, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

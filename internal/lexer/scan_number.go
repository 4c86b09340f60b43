package lexer

import (
	"velox/internal/diag"
	"velox/internal/token"
)

// scanNumber consumes a numeric literal: decimal with optional fraction
// and exponent, or a 0x/0o/0b prefixed integer. Text aliases the raw
// source; value conversion happens in the parser.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			return lx.scanRadix(start, isHexDigit)
		case 'o', 'O':
			return lx.scanRadix(start, func(b byte) bool { return b >= '0' && b <= '7' })
		case 'b', 'B':
			return lx.scanRadix(start, func(b byte) bool { return b == '0' || b == '1' })
		}
	}

	lx.eatDigits()
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDigits()
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDigit(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			diag.ReportError(lx.reporter, diag.LexBadNumber, sp, "missing exponent digits")
			return token.Token{Kind: token.Number, Span: sp, Text: lx.file.TextString(sp)}
		}
		lx.eatDigits()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: lx.file.TextString(sp)}
}

func (lx *Lexer) scanRadix(start uint32, valid func(byte) bool) token.Token {
	lx.cursor.Bump() // '0'
	lx.cursor.Bump() // radix marker
	n := 0
	for valid(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	sp := lx.cursor.SpanFrom(start)
	if n == 0 {
		diag.ReportError(lx.reporter, diag.LexBadNumber, sp, "missing digits after radix prefix")
	}
	return token.Token{Kind: token.Number, Span: sp, Text: lx.file.TextString(sp)}
}

func (lx *Lexer) eatDigits() {
	for isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

package lexer

import (
	"fmt"

	"velox/internal/diag"
	"velox/internal/token"
)

// scanOperator consumes punctuation and operator tokens, longest match
// first. Unknown bytes are reported and skipped so scanning always
// makes progress.
func (lx *Lexer) scanOperator() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	simple := func(k token.Kind) token.Token {
		return token.Token{Kind: k, Span: lx.cursor.SpanFrom(start)}
	}
	withEq := func(plain, assign token.Kind) token.Token {
		if lx.cursor.Eat('=') {
			return simple(assign)
		}
		return simple(plain)
	}

	switch b {
	case '(':
		return simple(token.LParen)
	case ')':
		return simple(token.RParen)
	case '{':
		return simple(token.LBrace)
	case '}':
		return simple(token.RBrace)
	case '[':
		return simple(token.LBracket)
	case ']':
		return simple(token.RBracket)
	case ';':
		return simple(token.Semicolon)
	case ',':
		return simple(token.Comma)
	case ':':
		return simple(token.Colon)
	case '~':
		return simple(token.BitNot)

	case '.':
		if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return simple(token.Ellipsis)
		}
		return simple(token.Dot)

	case '?':
		if lx.cursor.Eat('?') {
			return simple(token.Nullish)
		}
		return simple(token.Question)

	case '+':
		if lx.cursor.Eat('+') {
			return simple(token.PlusPlus)
		}
		return withEq(token.Plus, token.PlusAssign)
	case '-':
		if lx.cursor.Eat('-') {
			return simple(token.MinusMinus)
		}
		return withEq(token.Minus, token.MinusAssign)
	case '*':
		if lx.cursor.Eat('*') {
			return withEq(token.StarStar, token.StarStarAssign)
		}
		return withEq(token.Star, token.StarAssign)
	case '/':
		return withEq(token.Slash, token.SlashAssign)
	case '%':
		return withEq(token.Percent, token.PercentAssign)
	case '^':
		return withEq(token.BitXor, token.XorAssign)

	case '&':
		if lx.cursor.Eat('&') {
			return simple(token.AndAnd)
		}
		return withEq(token.BitAnd, token.AndAssign)
	case '|':
		if lx.cursor.Eat('|') {
			return simple(token.OrOr)
		}
		return withEq(token.BitOr, token.OrAssign)

	case '!':
		if lx.cursor.Eat('=') {
			if lx.cursor.Eat('=') {
				return simple(token.StrictNeq)
			}
			return simple(token.NotEq)
		}
		return simple(token.Not)
	case '=':
		if lx.cursor.Eat('=') {
			if lx.cursor.Eat('=') {
				return simple(token.StrictEq)
			}
			return simple(token.Eq)
		}
		if lx.cursor.Eat('>') {
			return simple(token.Arrow)
		}
		return simple(token.Assign)

	case '<':
		if lx.cursor.Eat('<') {
			return withEq(token.Shl, token.ShlAssign)
		}
		return withEq(token.Lt, token.LtEq)
	case '>':
		if lx.cursor.Eat('>') {
			if lx.cursor.Eat('>') {
				return withEq(token.UShr, token.UShrAssign)
			}
			return withEq(token.Shr, token.ShrAssign)
		}
		return withEq(token.Gt, token.GtEq)
	}

	sp := lx.cursor.SpanFrom(start)
	diag.ReportError(lx.reporter, diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character %q", b))
	// keep scanning after the bad byte
	return lx.scan()
}

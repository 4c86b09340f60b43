package lexer

import (
	"velox/internal/diag"
	"velox/internal/source"
	"velox/internal/token"
)

// scanString consumes a single- or double-quoted string literal.
// Text is the raw interior (escapes unresolved), aliasing the source;
// the parser cooks the value so the copy can land in its arena.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind: token.String,
				Span: sp,
				Text: lx.file.TextString(interior(sp)),
			}
		}
		if b == '\n' {
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			// escaped newline (line continuation) and escaped quote both
			// must not terminate the scan
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	diag.ReportError(lx.reporter, diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.String, Span: sp, Text: lx.file.TextString(unterminatedInterior(sp))}
}

// interior strips both quotes.
func interior(sp source.Span) source.Span {
	return source.Span{Start: sp.Start + 1, End: sp.End - 1}
}

// unterminatedInterior strips only the opening quote.
func unterminatedInterior(sp source.Span) source.Span {
	return source.Span{Start: sp.Start + 1, End: sp.End}
}

// Package lexer turns source text into significant tokens, collecting
// comments on the side in document order.
package lexer

import (
	"velox/internal/diag"
	"velox/internal/source"
	"velox/internal/token"
)

type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter
	comments []token.Comment

	peeked bool
	tok    token.Token
}

func New(f *source.File, reporter diag.Reporter) *Lexer {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Lexer{
		file:     f,
		cursor:   NewCursor(f),
		reporter: reporter,
	}
}

func (lx *Lexer) File() *source.File {
	return lx.file
}

// Comments returns every comment seen so far, in document order.
// Complete only once EOF has been reached.
func (lx *Lexer) Comments() []token.Comment {
	return lx.comments
}

// Peek returns the next significant token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if !lx.peeked {
		lx.tok = lx.scan()
		lx.peeked = true
	}
	return lx.tok
}

// Next consumes and returns the next significant token.
func (lx *Lexer) Next() token.Token {
	t := lx.Peek()
	lx.peeked = false
	return t
}

// scan skips trivia and produces one token.
func (lx *Lexer) scan() token.Token {
	lx.skipTrivia()
	start := lx.cursor.Mark()
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.cursor.SpanFrom(start)}
	}

	b := lx.cursor.Peek()
	switch {
	case isIdentStart(b):
		return lx.scanIdent()
	case b >= '0' && b <= '9':
		return lx.scanNumber()
	case b == '\'' || b == '"':
		return lx.scanString()
	case b == '.' && isDigit(lx.cursor.PeekAt(1)):
		return lx.scanNumber()
	}
	return lx.scanOperator()
}

// skipTrivia consumes whitespace and comments. Comments are appended to
// lx.comments; the span covers the delimiters, the text is the interior.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}

		if b == '/' {
			next := lx.cursor.PeekAt(1)
			if next == '/' {
				lx.scanLineComment()
				continue
			}
			if next == '*' {
				lx.scanBlockComment()
				continue
			}
		}
		return
	}
}

func (lx *Lexer) scanLineComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '/'
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.comments = append(lx.comments, token.Comment{
		Kind: token.CommentLine,
		Span: sp,
		Text: lx.file.TextString(source.Span{Start: sp.Start + 2, End: sp.End}),
	})
}

func (lx *Lexer) scanBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	closed := false
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed = true
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	textEnd := sp.End
	if closed {
		textEnd -= 2
	} else {
		diag.ReportError(lx.reporter, diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}
	lx.comments = append(lx.comments, token.Comment{
		Kind: token.CommentBlock,
		Span: sp,
		Text: lx.file.TextString(source.Span{Start: sp.Start + 2, End: textEnd}),
	})
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

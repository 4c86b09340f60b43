package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"velox/internal/arena"
	"velox/internal/ast"
	"velox/internal/diag"
	"velox/internal/token"
)

func exprStart(e ast.Expr) uint32 { return ast.StartOf(e) }
func exprEnd(e ast.Expr) uint32   { return ast.EndOf(e) }

func (p *Parser) identFrom(t token.Token) *ast.Identifier {
	return arena.Alloc(p.arena, ast.Identifier{
		Type: "Identifier", Start: t.Span.Start, End: t.Span.End,
		Name: t.Text,
	})
}

func (p *Parser) literal(t token.Token, value any) *ast.Literal {
	return arena.Alloc(p.arena, ast.Literal{
		Type: "Literal", Start: t.Span.Start, End: t.Span.End,
		Value: value, Raw: p.lx.File().TextString(t.Span),
	})
}

func (p *Parser) stringLiteral(t token.Token) *ast.Literal {
	return p.literal(t, p.cookString(t.Text))
}

func (p *Parser) numberLiteral(t token.Token) *ast.Literal {
	return p.literal(t, p.cookNumber(t))
}

// cookNumber converts raw literal text to its float64 value.
func (p *Parser) cookNumber(t token.Token) float64 {
	text := t.Text
	if len(text) > 2 && text[0] == '0' {
		var base int
		switch text[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(text[2:], base, 64)
			if err != nil {
				p.err(diag.LexBadNumber, t.Span, "invalid numeric literal")
				return 0
			}
			return float64(n)
		}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.err(diag.LexBadNumber, t.Span, "invalid numeric literal")
		return 0
	}
	return v
}

// cookString resolves escapes in a raw string interior. When the text
// has no escapes the source bytes are aliased as-is; otherwise the
// cooked value is copied into the arena so the tree never references
// transient heap memory.
func (p *Parser) cookString(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(raw) {
			break
		}
		e := raw[i]
		i++
		switch e {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
			// line continuation
		case 'x':
			if i+2 <= len(raw) {
				if n, err := strconv.ParseUint(raw[i:i+2], 16, 8); err == nil {
					b.WriteRune(rune(n))
					i += 2
					continue
				}
			}
			b.WriteByte('x')
		case 'u':
			if r, adv, ok := decodeUnicodeEscape(raw[i:]); ok {
				b.WriteRune(r)
				i += adv
				continue
			}
			b.WriteByte('u')
		default:
			b.WriteByte(e)
		}
	}
	return arena.String(p.arena, b.String())
}

// decodeUnicodeEscape handles the text after `\u`: either 4 hex digits
// or a braced code point.
func decodeUnicodeEscape(s string) (rune, int, bool) {
	if len(s) >= 1 && s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, false
		}
		n, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || n > utf8.MaxRune {
			return 0, 0, false
		}
		return rune(n), end + 1, true
	}
	if len(s) < 4 {
		return 0, 0, false
	}
	n, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, 0, false
	}
	return rune(n), 4, true
}

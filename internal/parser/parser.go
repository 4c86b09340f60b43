// Package parser builds an ESTree-shaped tree for a JavaScript subset.
//
// The parser is the collaborator behind every parse entry point: it
// accepts an arena, a source file and a goal symbol, allocates the whole
// tree (nodes, node slices, cooked strings) from that arena, and reports
// syntax problems through a diag.Reporter instead of failing. The
// result is always a best-effort Program.
package parser

import (
	"fmt"

	"velox/internal/arena"
	"velox/internal/ast"
	"velox/internal/diag"
	"velox/internal/lexer"
	"velox/internal/source"
	"velox/internal/token"
)

type Options struct {
	// SourceType is the resolved goal symbol. TypeUnset behaves like
	// TypeUnambiguous: parse permissively, decide from content.
	SourceType source.Type
	// PreserveParens emits ParenthesizedExpression wrapper nodes.
	PreserveParens bool
	// MaxDiagnostics caps the bag; 0 uses the default.
	MaxDiagnostics int
}

type Result struct {
	// Program is the tree root, allocated inside the supplied arena.
	Program *ast.Program
	// Comments in document order.
	Comments []token.Comment
	// Bag holds every diagnostic; empty on a clean parse.
	Bag *diag.Bag
}

type Parser struct {
	lx      *lexer.Lexer
	arena   *arena.Arena
	bag     *diag.Bag
	opts    Options
	lastEnd uint32

	// moduleSyntax flips when an import/export item is seen; it settles
	// the goal symbol for unambiguous sources.
	moduleSyntax bool
}

// Parse runs the parser over one file, allocating the tree from a.
func Parse(a *arena.Arena, f *source.File, opts Options) Result {
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	p := Parser{
		lx:    lexer.New(f, reporter),
		arena: a,
		bag:   bag,
		opts:  opts,
	}

	body := p.parseStatements(token.EOF)

	sourceType := "script"
	switch {
	case opts.SourceType == source.TypeModule:
		sourceType = "module"
	case opts.SourceType == source.TypeScript:
		sourceType = "script"
	case p.moduleSyntax:
		sourceType = "module"
	}

	root := arena.Alloc(a, ast.Program{
		Type:       "Program",
		Start:      0,
		End:        uint32(len(f.Content)),
		SourceType: sourceType,
		Body:       arena.Slice(a, body),
	})
	return Result{
		Program:  root,
		Comments: p.lx.Comments(),
		Bag:      bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) next() token.Token {
	t := p.lx.Next()
	p.lastEnd = t.Span.End
	return t
}

// eat consumes the next token when it matches k.
func (p *Parser) eat(k token.Kind) bool {
	if !p.at(k) {
		return false
	}
	p.next()
	return true
}

// expect consumes a token of kind k or reports SynExpectToken.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.next(), true
	}
	got := p.lx.Peek()
	p.err(diag.SynExpectToken, got.Span, fmt.Sprintf("expected %s, found %s", k, got.Kind))
	return got, false
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	p.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  sp,
	})
}

// semicolon eats an optional statement terminator. Missing semicolons
// are tolerated (automatic insertion is approximated, not enforced).
func (p *Parser) semicolon() {
	p.eat(token.Semicolon)
}

// parseStatements parses until the closing kind, recovering at statement
// boundaries so one bad statement cannot take the rest of the body down.
func (p *Parser) parseStatements(until token.Kind) []ast.Stmt {
	var body []ast.Stmt
	for !p.at(until) && !p.at(token.EOF) {
		before := p.lx.Peek().Span
		st := p.parseStatement()
		if st != nil {
			body = append(body, st)
		}
		if st == nil || p.lx.Peek().Span == before {
			p.resync(until)
		}
	}
	return body
}

// resync skips ahead to a plausible statement boundary.
func (p *Parser) resync(until token.Kind) {
	for !p.at(until) && !p.at(token.EOF) {
		t := p.next()
		if t.Kind == token.Semicolon || t.Kind == token.RBrace {
			return
		}
		switch p.lx.Peek().Kind {
		case token.KwVar, token.KwLet, token.KwConst, token.KwFunction,
			token.KwIf, token.KwWhile, token.KwFor, token.KwReturn,
			token.KwImport, token.KwExport:
			return
		}
	}
}

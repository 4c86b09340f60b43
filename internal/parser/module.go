package parser

import (
	"velox/internal/arena"
	"velox/internal/ast"
	"velox/internal/diag"
	"velox/internal/source"
	"velox/internal/token"
)

// markModuleSyntax records an import/export item and validates it
// against the goal symbol.
func (p *Parser) markModuleSyntax(kw token.Token) {
	p.moduleSyntax = true
	if p.opts.SourceType == source.TypeScript {
		p.err(diag.SynModuleItemInScript, kw.Span, kw.Kind.String()+" is only allowed in modules")
	}
}

// parseImport handles the supported forms:
//
//	import "mod";
//	import name from "mod";
//	import { a, b as c } from "mod";
//	import name, { a } from "mod";
func (p *Parser) parseImport() ast.Stmt {
	kw := p.next()
	p.markModuleSyntax(kw)

	var specs []ast.Node

	switch p.lx.Peek().Kind {
	case token.String:
		// bare side-effect import

	case token.Ident:
		t := p.next()
		local := p.identFrom(t)
		specs = append(specs, arena.Alloc(p.arena, ast.ImportDefaultSpecifier{
			Type: "ImportDefaultSpecifier", Start: t.Span.Start, End: t.Span.End,
			Local: local,
		}))
		if p.eat(token.Comma) {
			specs = p.parseNamedImports(specs)
		}
		p.expectContextual("from")

	case token.LBrace:
		specs = p.parseNamedImports(specs)
		p.expectContextual("from")

	default:
		p.err(diag.SynBadImport, p.lx.Peek().Span, "expected import specifiers or a module string")
	}

	var src *ast.Literal
	if t, ok := p.expect(token.String); ok {
		src = p.stringLiteral(t)
	}
	end := p.lastEnd
	p.semicolon()
	return arena.Alloc(p.arena, ast.ImportDeclaration{
		Type: "ImportDeclaration", Start: kw.Span.Start, End: end,
		Specifiers: arena.Slice(p.arena, specs), Source: src,
	})
}

// parseNamedImports parses '{' spec (',' spec)* '}' appending to specs.
func (p *Parser) parseNamedImports(specs []ast.Node) []ast.Node {
	if _, ok := p.expect(token.LBrace); !ok {
		return specs
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		impTok, ok := p.expect(token.Ident)
		if !ok {
			break
		}
		imported := p.identFrom(impTok)
		local := imported
		end := impTok.Span.End
		if p.atContextual("as") {
			p.next()
			if locTok, ok := p.expect(token.Ident); ok {
				local = p.identFrom(locTok)
				end = locTok.Span.End
			}
		}
		specs = append(specs, arena.Alloc(p.arena, ast.ImportSpecifier{
			Type: "ImportSpecifier", Start: impTok.Span.Start, End: end,
			Imported: imported, Local: local,
		}))
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace)
	return specs
}

// parseExport handles `export <declaration>` and `export default <expr>`.
func (p *Parser) parseExport() ast.Stmt {
	kw := p.next()
	p.markModuleSyntax(kw)

	if p.atContextual("default") {
		p.next()
		var decl ast.Node
		if p.at(token.KwFunction) {
			decl = p.parseFunctionDeclaration()
		} else {
			decl = p.parseAssign()
			p.semicolon()
		}
		return arena.Alloc(p.arena, ast.ExportDefaultDeclaration{
			Type: "ExportDefaultDeclaration", Start: kw.Span.Start, End: p.lastEnd,
			Declaration: decl,
		})
	}

	switch p.lx.Peek().Kind {
	case token.KwVar, token.KwLet, token.KwConst, token.KwFunction:
		decl := p.parseStatement()
		return arena.Alloc(p.arena, ast.ExportNamedDeclaration{
			Type: "ExportNamedDeclaration", Start: kw.Span.Start, End: p.lastEnd,
			Declaration: decl,
		})
	}

	p.err(diag.SynBadExport, p.lx.Peek().Span, "expected a declaration after export")
	return arena.Alloc(p.arena, ast.ExportNamedDeclaration{
		Type: "ExportNamedDeclaration", Start: kw.Span.Start, End: p.lastEnd,
	})
}

// atContextual reports whether the next token is an identifier spelled
// exactly word ("from", "as", "default" are keywords only in context).
func (p *Parser) atContextual(word string) bool {
	t := p.lx.Peek()
	return t.Kind == token.Ident && t.Text == word
}

func (p *Parser) expectContextual(word string) {
	if p.atContextual(word) {
		p.next()
		return
	}
	t := p.lx.Peek()
	p.err(diag.SynExpectToken, t.Span, "expected '"+word+"', found "+t.Kind.String())
}

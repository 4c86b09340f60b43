package parser

import (
	"velox/internal/arena"
	"velox/internal/ast"
	"velox/internal/diag"
	"velox/internal/token"
)

func (p *Parser) parseStatement() ast.Stmt {
	switch p.lx.Peek().Kind {
	case token.KwVar, token.KwLet, token.KwConst:
		return p.parseVariableDeclaration()
	case token.KwFunction:
		return p.parseFunctionDeclaration()
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		t := p.next()
		return arena.Alloc(p.arena, ast.EmptyStatement{
			Type: "EmptyStatement", Start: t.Span.Start, End: t.Span.End,
		})
	case token.KwReturn:
		return p.parseReturn()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwBreak, token.KwContinue:
		return p.parseBreakContinue()
	case token.KwThrow:
		return p.parseThrow()
	case token.KwDebugger:
		t := p.next()
		end := t.Span.End
		p.semicolon()
		return arena.Alloc(p.arena, ast.DebuggerStatement{
			Type: "DebuggerStatement", Start: t.Span.Start, End: end,
		})
	case token.KwImport:
		return p.parseImport()
	case token.KwExport:
		return p.parseExport()
	case token.EOF:
		return nil
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseVariableDeclaration() ast.Stmt {
	kw := p.next()
	var decls []*ast.VariableDeclarator

	for {
		idTok, ok := p.expect(token.Ident)
		if !ok {
			break
		}
		id := p.identFrom(idTok)
		declStart := idTok.Span.Start
		declEnd := idTok.Span.End

		var init ast.Expr
		if p.eat(token.Assign) {
			init = p.parseAssign()
			declEnd = p.lastEnd
		} else if kw.Kind == token.KwConst {
			p.err(diag.SynMissingInitializer, idTok.Span, "const declaration needs an initializer")
		}

		decls = append(decls, arena.Alloc(p.arena, ast.VariableDeclarator{
			Type: "VariableDeclarator", Start: declStart, End: declEnd,
			ID: id, Init: init,
		}))

		if !p.eat(token.Comma) {
			break
		}
	}

	end := p.lastEnd
	p.semicolon()
	return arena.Alloc(p.arena, ast.VariableDeclaration{
		Type: "VariableDeclaration", Start: kw.Span.Start, End: end,
		Kind:         kw.Text,
		Declarations: arena.Slice(p.arena, decls),
	})
}

func (p *Parser) parseFunctionDeclaration() ast.Stmt {
	kw := p.next()

	var id *ast.Identifier
	if idTok, ok := p.expect(token.Ident); ok {
		id = p.identFrom(idTok)
	}

	params := p.parseParams()
	body := p.parseBlock()
	var block *ast.BlockStatement
	if b, ok := body.(*ast.BlockStatement); ok {
		block = b
	}
	return arena.Alloc(p.arena, ast.FunctionDeclaration{
		Type: "FunctionDeclaration", Start: kw.Span.Start, End: p.lastEnd,
		ID: id, Params: params, Body: block,
	})
}

// parseParams parses '(' ident (',' ident)* ')' into identifier patterns.
func (p *Parser) parseParams() []ast.Expr {
	var params []ast.Expr
	if _, ok := p.expect(token.LParen); !ok {
		return nil
	}
	for !p.at(token.RParen) && !p.at(token.EOF) {
		idTok, ok := p.expect(token.Ident)
		if !ok {
			break
		}
		params = append(params, p.identFrom(idTok))
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return arena.Slice(p.arena, params)
}

func (p *Parser) parseBlock() ast.Stmt {
	open, ok := p.expect(token.LBrace)
	if !ok {
		return nil
	}
	body := p.parseStatements(token.RBrace)
	end := p.lastEnd
	if t, ok := p.expect(token.RBrace); ok {
		end = t.Span.End
	}
	return arena.Alloc(p.arena, ast.BlockStatement{
		Type: "BlockStatement", Start: open.Span.Start, End: end,
		Body: arena.Slice(p.arena, body),
	})
}

func (p *Parser) parseReturn() ast.Stmt {
	kw := p.next()
	var arg ast.Expr
	end := kw.Span.End
	if !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
		arg = p.parseExpression()
		end = p.lastEnd
	}
	p.semicolon()
	return arena.Alloc(p.arena, ast.ReturnStatement{
		Type: "ReturnStatement", Start: kw.Span.Start, End: end,
		Argument: arg,
	})
}

func (p *Parser) parseIf() ast.Stmt {
	kw := p.next()
	p.expect(token.LParen)
	test := p.parseExpression()
	p.expect(token.RParen)
	cons := p.parseStatement()
	var alt ast.Stmt
	if p.eat(token.KwElse) {
		alt = p.parseStatement()
	}
	return arena.Alloc(p.arena, ast.IfStatement{
		Type: "IfStatement", Start: kw.Span.Start, End: p.lastEnd,
		Test: test, Consequent: cons, Alternate: alt,
	})
}

func (p *Parser) parseWhile() ast.Stmt {
	kw := p.next()
	p.expect(token.LParen)
	test := p.parseExpression()
	p.expect(token.RParen)
	body := p.parseStatement()
	return arena.Alloc(p.arena, ast.WhileStatement{
		Type: "WhileStatement", Start: kw.Span.Start, End: p.lastEnd,
		Test: test, Body: body,
	})
}

func (p *Parser) parseDoWhile() ast.Stmt {
	kw := p.next()
	body := p.parseStatement()
	p.expect(token.KwWhile)
	p.expect(token.LParen)
	test := p.parseExpression()
	p.expect(token.RParen)
	end := p.lastEnd
	p.semicolon()
	return arena.Alloc(p.arena, ast.DoWhileStatement{
		Type: "DoWhileStatement", Start: kw.Span.Start, End: end,
		Body: body, Test: test,
	})
}

func (p *Parser) parseFor() ast.Stmt {
	kw := p.next()
	p.expect(token.LParen)

	var init ast.Node
	switch p.lx.Peek().Kind {
	case token.Semicolon:
		p.next()
	case token.KwVar, token.KwLet, token.KwConst:
		// parseVariableDeclaration eats the ';' itself
		init = p.parseVariableDeclaration()
	default:
		init = p.parseExpression()
		if p.at(token.KwIn) {
			p.err(diag.SynBadForHeader, p.lx.Peek().Span, "for-in loops are not supported")
		}
		p.expect(token.Semicolon)
	}

	var test ast.Expr
	if !p.at(token.Semicolon) {
		test = p.parseExpression()
	}
	p.expect(token.Semicolon)

	var update ast.Expr
	if !p.at(token.RParen) {
		update = p.parseExpression()
	}
	p.expect(token.RParen)

	body := p.parseStatement()
	return arena.Alloc(p.arena, ast.ForStatement{
		Type: "ForStatement", Start: kw.Span.Start, End: p.lastEnd,
		Init: init, Test: test, Update: update, Body: body,
	})
}

func (p *Parser) parseBreakContinue() ast.Stmt {
	kw := p.next()
	var label *ast.Identifier
	end := kw.Span.End
	if p.at(token.Ident) {
		t := p.next()
		label = p.identFrom(t)
		end = t.Span.End
	}
	p.semicolon()
	if kw.Kind == token.KwBreak {
		return arena.Alloc(p.arena, ast.BreakStatement{
			Type: "BreakStatement", Start: kw.Span.Start, End: end, Label: label,
		})
	}
	return arena.Alloc(p.arena, ast.ContinueStatement{
		Type: "ContinueStatement", Start: kw.Span.Start, End: end, Label: label,
	})
}

func (p *Parser) parseThrow() ast.Stmt {
	kw := p.next()
	arg := p.parseExpression()
	end := p.lastEnd
	p.semicolon()
	return arena.Alloc(p.arena, ast.ThrowStatement{
		Type: "ThrowStatement", Start: kw.Span.Start, End: end,
		Argument: arg,
	})
}

func (p *Parser) parseExpressionStatement() ast.Stmt {
	start := p.lx.Peek().Span.Start
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	end := p.lastEnd
	p.semicolon()
	return arena.Alloc(p.arena, ast.ExpressionStatement{
		Type: "ExpressionStatement", Start: start, End: end,
		Expression: expr,
	})
}

package parser

import (
	"fmt"

	"velox/internal/arena"
	"velox/internal/ast"
	"velox/internal/diag"
	"velox/internal/token"
)

// parseExpression parses with the comma operator enabled.
func (p *Parser) parseExpression() ast.Expr {
	first := p.parseAssign()
	if first == nil || !p.at(token.Comma) {
		return first
	}
	exprs := []ast.Expr{first}
	start := exprStart(first)
	for p.eat(token.Comma) {
		next := p.parseAssign()
		if next == nil {
			break
		}
		exprs = append(exprs, next)
	}
	return arena.Alloc(p.arena, ast.SequenceExpression{
		Type: "SequenceExpression", Start: start, End: p.lastEnd,
		Expressions: arena.Slice(p.arena, exprs),
	})
}

// parseAssign parses one assignment-level expression (no comma operator).
func (p *Parser) parseAssign() ast.Expr {
	left := p.parseConditional()
	if left == nil {
		return nil
	}

	// `x => body`: a lone identifier followed by an arrow.
	if p.at(token.Arrow) {
		if id, ok := left.(*ast.Identifier); ok {
			params := arena.Slice(p.arena, []ast.Expr{id})
			return p.parseArrowBody(id.Start, params)
		}
	}

	if op, ok := assignOps[p.lx.Peek().Kind]; ok {
		opTok := p.next()
		if !isAssignTarget(left) {
			p.err(diag.SynBadAssignTarget, opTok.Span, "invalid assignment target")
		}
		right := p.parseAssign()
		return arena.Alloc(p.arena, ast.AssignmentExpression{
			Type: "AssignmentExpression", Start: exprStart(left), End: p.lastEnd,
			Operator: op, Left: left, Right: right,
		})
	}
	return left
}

func isAssignTarget(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	}
	return false
}

func (p *Parser) parseConditional() ast.Expr {
	test := p.parseBinary(1)
	if test == nil || !p.eat(token.Question) {
		return test
	}
	cons := p.parseAssign()
	p.expect(token.Colon)
	alt := p.parseAssign()
	return arena.Alloc(p.arena, ast.ConditionalExpression{
		Type: "ConditionalExpression", Start: exprStart(test), End: p.lastEnd,
		Test: test, Consequent: cons, Alternate: alt,
	})
}

// parseBinary is a precedence climber over the binOps table.
func (p *Parser) parseBinary(minBP uint8) ast.Expr {
	left := p.parseUnary()
	for left != nil {
		info, ok := binOps[p.lx.Peek().Kind]
		if !ok || info.bp < minBP {
			break
		}
		p.next()
		nextBP := info.bp + 1
		if info.rightAssoc {
			nextBP = info.bp
		}
		right := p.parseBinary(nextBP)
		if info.logical {
			left = arena.Alloc(p.arena, ast.LogicalExpression{
				Type: "LogicalExpression", Start: exprStart(left), End: p.lastEnd,
				Operator: info.text, Left: left, Right: right,
			})
		} else {
			left = arena.Alloc(p.arena, ast.BinaryExpression{
				Type: "BinaryExpression", Start: exprStart(left), End: p.lastEnd,
				Operator: info.text, Left: left, Right: right,
			})
		}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	t := p.lx.Peek()
	if op, ok := unaryOps[t.Kind]; ok {
		p.next()
		arg := p.parseUnary()
		return arena.Alloc(p.arena, ast.UnaryExpression{
			Type: "UnaryExpression", Start: t.Span.Start, End: p.lastEnd,
			Operator: op, Prefix: true, Argument: arg,
		})
	}
	if t.Kind == token.PlusPlus || t.Kind == token.MinusMinus {
		p.next()
		arg := p.parseUnary()
		return arena.Alloc(p.arena, ast.UpdateExpression{
			Type: "UpdateExpression", Start: t.Span.Start, End: p.lastEnd,
			Operator: updateText(t.Kind), Prefix: true, Argument: arg,
		})
	}
	return p.parsePostfix()
}

func updateText(k token.Kind) string {
	if k == token.PlusPlus {
		return "++"
	}
	return "--"
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parseCallMember(p.parsePrimary())
	if expr == nil {
		return nil
	}
	if k := p.lx.Peek().Kind; k == token.PlusPlus || k == token.MinusMinus {
		p.next()
		return arena.Alloc(p.arena, ast.UpdateExpression{
			Type: "UpdateExpression", Start: exprStart(expr), End: p.lastEnd,
			Operator: updateText(k), Prefix: false, Argument: expr,
		})
	}
	return expr
}

// parseCallMember extends a primary with member accesses and calls.
func (p *Parser) parseCallMember(base ast.Expr) ast.Expr {
	for base != nil {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.next()
			propTok, ok := p.expect(token.Ident)
			if !ok {
				return base
			}
			base = arena.Alloc(p.arena, ast.MemberExpression{
				Type: "MemberExpression", Start: exprStart(base), End: propTok.Span.End,
				Object: base, Property: p.identFrom(propTok), Computed: false,
			})
		case token.LBracket:
			p.next()
			prop := p.parseExpression()
			p.expect(token.RBracket)
			base = arena.Alloc(p.arena, ast.MemberExpression{
				Type: "MemberExpression", Start: exprStart(base), End: p.lastEnd,
				Object: base, Property: prop, Computed: true,
			})
		case token.LParen:
			args := p.parseArguments()
			base = arena.Alloc(p.arena, ast.CallExpression{
				Type: "CallExpression", Start: exprStart(base), End: p.lastEnd,
				Callee: base, Arguments: args,
			})
		default:
			return base
		}
	}
	return base
}

// parseArguments parses '(' assign (',' assign)* ')' with spread support.
func (p *Parser) parseArguments() []ast.Expr {
	p.expect(token.LParen)
	var args []ast.Expr
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.Ellipsis) {
			t := p.next()
			arg := p.parseAssign()
			args = append(args, arena.Alloc(p.arena, ast.SpreadElement{
				Type: "SpreadElement", Start: t.Span.Start, End: p.lastEnd,
				Argument: arg,
			}))
		} else {
			a := p.parseAssign()
			if a == nil {
				break
			}
			args = append(args, a)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return arena.Slice(p.arena, args)
}

func (p *Parser) parsePrimary() ast.Expr {
	t := p.lx.Peek()
	switch t.Kind {
	case token.Ident:
		p.next()
		return p.identFrom(t)
	case token.Number:
		p.next()
		return p.numberLiteral(t)
	case token.String:
		p.next()
		return p.stringLiteral(t)
	case token.KwTrue, token.KwFalse:
		p.next()
		return p.literal(t, t.Kind == token.KwTrue)
	case token.KwNull:
		p.next()
		return p.literal(t, nil)
	case token.KwThis:
		p.next()
		return arena.Alloc(p.arena, ast.ThisExpression{
			Type: "ThisExpression", Start: t.Span.Start, End: t.Span.End,
		})
	case token.LParen:
		return p.parseParenOrArrow()
	case token.LBracket:
		return p.parseArray()
	case token.LBrace:
		return p.parseObject()
	case token.KwFunction:
		return p.parseFunctionExpression()
	case token.KwNew:
		return p.parseNew()
	}
	p.err(diag.SynExpectExpression, t.Span, fmt.Sprintf("expected an expression, found %s", t.Kind))
	return nil
}

// parseParenOrArrow disambiguates parenthesized expressions from arrow
// function parameter lists by looking at what follows the ')'.
func (p *Parser) parseParenOrArrow() ast.Expr {
	open := p.next()

	if p.eat(token.RParen) {
		if p.at(token.Arrow) {
			return p.parseArrowBody(open.Span.Start, nil)
		}
		p.err(diag.SynExpectExpression, open.Span, "empty parenthesized expression")
		return nil
	}

	var items []ast.Expr
	for {
		e := p.parseAssign()
		if e == nil {
			break
		}
		items = append(items, e)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)

	if p.at(token.Arrow) {
		params := make([]ast.Expr, 0, len(items))
		for _, it := range items {
			if id, ok := it.(*ast.Identifier); ok {
				params = append(params, id)
			} else {
				p.err(diag.SynBadParams, open.Span, "arrow function parameters must be identifiers")
			}
		}
		return p.parseArrowBody(open.Span.Start, arena.Slice(p.arena, params))
	}

	var inner ast.Expr
	if len(items) == 1 {
		inner = items[0]
	} else if len(items) > 1 {
		inner = arena.Alloc(p.arena, ast.SequenceExpression{
			Type: "SequenceExpression", Start: exprStart(items[0]), End: exprEnd(items[len(items)-1]),
			Expressions: arena.Slice(p.arena, items),
		})
	}
	if inner == nil {
		return nil
	}
	if p.opts.PreserveParens {
		return arena.Alloc(p.arena, ast.ParenthesizedExpression{
			Type: "ParenthesizedExpression", Start: open.Span.Start, End: p.lastEnd,
			Expression: inner,
		})
	}
	return inner
}

func (p *Parser) parseArrowBody(start uint32, params []ast.Expr) ast.Expr {
	p.expect(token.Arrow)
	if p.at(token.LBrace) {
		body := p.parseBlock()
		return arena.Alloc(p.arena, ast.ArrowFunctionExpression{
			Type: "ArrowFunctionExpression", Start: start, End: p.lastEnd,
			Params: params, Body: body, Expression: false,
		})
	}
	body := p.parseAssign()
	return arena.Alloc(p.arena, ast.ArrowFunctionExpression{
		Type: "ArrowFunctionExpression", Start: start, End: p.lastEnd,
		Params: params, Body: body, Expression: true,
	})
}

func (p *Parser) parseArray() ast.Expr {
	open := p.next()
	var elems []ast.Expr
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			// elision hole
			p.next()
			elems = append(elems, nil)
			continue
		}
		if p.at(token.Ellipsis) {
			t := p.next()
			arg := p.parseAssign()
			elems = append(elems, arena.Alloc(p.arena, ast.SpreadElement{
				Type: "SpreadElement", Start: t.Span.Start, End: p.lastEnd,
				Argument: arg,
			}))
		} else {
			e := p.parseAssign()
			if e == nil {
				break
			}
			elems = append(elems, e)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBracket)
	return arena.Alloc(p.arena, ast.ArrayExpression{
		Type: "ArrayExpression", Start: open.Span.Start, End: p.lastEnd,
		Elements: arena.Slice(p.arena, elems),
	})
}

func (p *Parser) parseObject() ast.Expr {
	open := p.next()
	var props []*ast.Property
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		prop := p.parseProperty()
		if prop == nil {
			break
		}
		props = append(props, prop)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace)
	return arena.Alloc(p.arena, ast.ObjectExpression{
		Type: "ObjectExpression", Start: open.Span.Start, End: p.lastEnd,
		Properties: arena.Slice(p.arena, props),
	})
}

func (p *Parser) parseProperty() *ast.Property {
	t := p.lx.Peek()

	var key ast.Expr
	computed := false
	switch t.Kind {
	case token.Ident:
		p.next()
		key = p.identFrom(t)
	case token.String:
		p.next()
		key = p.stringLiteral(t)
	case token.Number:
		p.next()
		key = p.numberLiteral(t)
	case token.LBracket:
		p.next()
		key = p.parseAssign()
		p.expect(token.RBracket)
		computed = true
	default:
		p.err(diag.SynBadProperty, t.Span, fmt.Sprintf("expected a property key, found %s", t.Kind))
		return nil
	}

	if p.eat(token.Colon) {
		value := p.parseAssign()
		return arena.Alloc(p.arena, ast.Property{
			Type: "Property", Start: t.Span.Start, End: p.lastEnd,
			Key: key, Value: value, Kind: "init", Computed: computed,
		})
	}

	// shorthand { name }
	id, ok := key.(*ast.Identifier)
	if !ok || computed {
		p.err(diag.SynBadProperty, t.Span, "property is missing a value")
		return nil
	}
	return arena.Alloc(p.arena, ast.Property{
		Type: "Property", Start: t.Span.Start, End: t.Span.End,
		Key: id, Value: id, Kind: "init", Shorthand: true,
	})
}

func (p *Parser) parseFunctionExpression() ast.Expr {
	kw := p.next()
	var id *ast.Identifier
	if p.at(token.Ident) {
		t := p.next()
		id = p.identFrom(t)
	}
	params := p.parseParams()
	body := p.parseBlock()
	var block *ast.BlockStatement
	if b, ok := body.(*ast.BlockStatement); ok {
		block = b
	}
	return arena.Alloc(p.arena, ast.FunctionExpression{
		Type: "FunctionExpression", Start: kw.Span.Start, End: p.lastEnd,
		ID: id, Params: params, Body: block,
	})
}

func (p *Parser) parseNew() ast.Expr {
	kw := p.next()
	callee := p.parseMemberOnly(p.parsePrimary())
	var args []ast.Expr
	if p.at(token.LParen) {
		args = p.parseArguments()
	}
	return arena.Alloc(p.arena, ast.NewExpression{
		Type: "NewExpression", Start: kw.Span.Start, End: p.lastEnd,
		Callee: callee, Arguments: args,
	})
}

// parseMemberOnly extends a primary with member accesses but stops at
// '(' so `new a.b()` attributes the arguments to the new-expression.
func (p *Parser) parseMemberOnly(base ast.Expr) ast.Expr {
	for base != nil {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.next()
			propTok, ok := p.expect(token.Ident)
			if !ok {
				return base
			}
			base = arena.Alloc(p.arena, ast.MemberExpression{
				Type: "MemberExpression", Start: exprStart(base), End: propTok.Span.End,
				Object: base, Property: p.identFrom(propTok), Computed: false,
			})
		case token.LBracket:
			p.next()
			prop := p.parseExpression()
			p.expect(token.RBracket)
			base = arena.Alloc(p.arena, ast.MemberExpression{
				Type: "MemberExpression", Start: exprStart(base), End: p.lastEnd,
				Object: base, Property: prop, Computed: true,
			})
		default:
			return base
		}
	}
	return base
}

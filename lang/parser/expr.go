package parser

import (
	"github.com/mna/calyx/lang/ast"
	"github.com/mna/calyx/lang/token"
)

var (
	// Binary operator priorities, loosest first: additive, then
	// multiplicative, then relational, then logical. Left and right
	// priorities are equal at every level, so each level is
	// left-associative.
	binopPriority = [...]struct{ left, right int }{
		token.PLUS: {1, 1}, token.MINUS: {1, 1},
		token.STAR: {2, 2}, token.SLASH: {2, 2}, token.PERCENT: {2, 2},
		token.EQEQ: {3, 3}, token.BANGEQ: {3, 3},
		token.LT: {3, 3}, token.LE: {3, 3}, token.GT: {3, 3}, token.GE: {3, 3},
		token.AMPAMP: {4, 4}, token.PIPEPIPE: {4, 4}, token.CIRCUMFLEX: {4, 4},
	}
	unopPriority = 5
)

func (p *parser) parseExpr() ast.Expr {
	return p.parseSubExpr(0)
}

// parses a SubExpr where the binary operator has a priority higher than the
// provided priority (for precedence climbing).
func (p *parser) parseSubExpr(priority int) ast.Expr {
	var left ast.Expr

	if p.tok.IsUnop() {
		var unop ast.UnaryOpExpr
		unop.Type = p.tok
		unop.Op = p.expect(p.tok)
		unop.Right = p.parseSubExpr(unopPriority)
		left = &unop
	} else {
		left = p.parseSimpleExpr()
	}

	for p.tok.IsBinop() && binopPriority[p.tok].left > priority {
		var bin ast.BinOpExpr
		bin.Left = left
		bin.Type = p.tok
		bin.Op = p.expect(p.tok)
		bin.Right = p.parseSubExpr(binopPriority[bin.Type].right)
		left = &bin
	}

	return left
}

func (p *parser) parseSimpleExpr() ast.Expr {
	switch {
	case p.tok == token.MINUS || p.tok == token.PLUS:
		// the sign is part of the numeric literal, there is no unary
		// minus operator
		return p.parseSignedNumberExpr()
	case p.tok.IsLit():
		return p.parseLiteralExpr()
	case p.tok == token.IDENT:
		return p.parseIdentOrSuffixedExpr()
	case p.tok == token.LPAREN:
		return p.parseParenExpr()
	case p.tok == token.LBRACK:
		return p.parseListExpr()
	case p.tok == token.LBRACE:
		return p.parseDictExpr()
	default:
		p.errorExpected(p.val.Pos, "expression")
		panic(errPanicMode)
	}
}

func (p *parser) parseLiteralExpr() *ast.LiteralExpr {
	var val any
	switch p.tok {
	case token.INT:
		val = p.val.Int
	case token.FLOAT:
		val = p.val.Float
	case token.STRING:
		val = p.val.Str
	}
	lit := &ast.LiteralExpr{
		Type:  p.tok,
		Raw:   p.val.Raw,
		Value: val,
	}
	lit.Start = p.expect(p.tok)
	return lit
}

func (p *parser) parseSignedNumberExpr() *ast.LiteralExpr {
	sign := p.tok
	pos := p.expect(p.tok)

	if p.tok != token.INT && p.tok != token.FLOAT {
		p.errorExpected(p.val.Pos, "numeric literal")
		panic(errPanicMode)
	}

	lit := p.parseLiteralExpr()
	lit.Start = pos
	lit.Raw = sign.String() + lit.Raw
	if sign == token.MINUS {
		switch v := lit.Value.(type) {
		case int64:
			lit.Value = -v
		case float64:
			lit.Value = -v
		}
	}
	return lit
}

// parseIdentOrSuffixedExpr parses a bare identifier, a function call or an
// indexed access: the identifier commits to a call on '(' and to an index
// on '['.
func (p *parser) parseIdentOrSuffixedExpr() ast.Expr {
	id := p.parseIdentExpr()

	switch p.tok {
	case token.LPAREN:
		var call ast.CallExpr
		call.Name = id
		call.Lparen = p.expect(token.LPAREN)
		if p.tok != token.RPAREN {
			call.Args = p.parseExprList()
		}
		call.Rparen = p.expect(token.RPAREN)
		return &call

	case token.LBRACK:
		var ix ast.IndexExpr
		ix.Name = id
		ix.Lbrack = p.expect(token.LBRACK)
		ix.Index = p.parseExpr()
		ix.Rbrack = p.expect(token.RBRACK)
		return &ix

	default:
		return id
	}
}

func (p *parser) parseIdentExpr() *ast.IdentExpr {
	var exp ast.IdentExpr
	exp.Lit = p.val.Raw
	exp.Start = p.expect(token.IDENT)
	return &exp
}

func (p *parser) parseParenExpr() *ast.ParenExpr {
	var expr ast.ParenExpr
	expr.Lparen = p.expect(token.LPAREN)
	expr.Expr = p.parseExpr()
	expr.Rparen = p.expect(token.RPAREN)
	return &expr
}

func (p *parser) parseListExpr() *ast.ListExpr {
	var expr ast.ListExpr
	expr.Lbrack = p.expect(token.LBRACK)
	if p.tok != token.RBRACK {
		expr.Items = p.parseExprList()
	}
	expr.Rbrack = p.expect(token.RBRACK)
	return &expr
}

func (p *parser) parseDictExpr() *ast.DictExpr {
	var expr ast.DictExpr
	expr.Lbrace = p.expect(token.LBRACE)
	if p.tok != token.RBRACE {
		expr.Items = append(expr.Items, p.parseKeyVal())
		for p.tok == token.COMMA {
			p.expect(token.COMMA)
			expr.Items = append(expr.Items, p.parseKeyVal())
		}
	}
	expr.Rbrace = p.expect(token.RBRACE)
	return &expr
}

func (p *parser) parseKeyVal() *ast.KeyVal {
	var kv ast.KeyVal

	// dict keys are string literals, not arbitrary expressions
	if p.tok != token.STRING {
		p.errorExpected(p.val.Pos, "string literal")
		panic(errPanicMode)
	}
	kv.Key = p.parseLiteralExpr()
	kv.Colon = p.expect(token.COLON)
	kv.Value = p.parseExpr()
	return &kv
}

func (p *parser) parseExprList() []ast.Expr {
	exprs := []ast.Expr{p.parseExpr()}
	for p.tok == token.COMMA {
		p.expect(token.COMMA)
		exprs = append(exprs, p.parseExpr())
	}
	return exprs
}

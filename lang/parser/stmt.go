package parser

import (
	"github.com/mna/calyx/lang/ast"
	"github.com/mna/calyx/lang/token"
)

// parseStmts parses statements separated by semicolons until the until
// token (or EOF) is reached. The trailing semicolon is optional.
func (p *parser) parseStmts(until token.Token) *ast.Block {
	var b ast.Block
	b.Start = p.val.Pos

	for p.tok != until && p.tok != token.EOF {
		b.Stmts = append(b.Stmts, p.parseStmt())
		if p.tok != token.SEMICOLON {
			// no separator after the statement, must be the last
			break
		}
		p.expect(token.SEMICOLON)
	}

	b.End = p.val.Pos
	return &b
}

// parseBlock parses a brace-delimited sequence of statements and returns
// the block along with the position of the closing brace.
func (p *parser) parseBlock() (*ast.Block, token.Pos) {
	p.expect(token.LBRACE)
	b := p.parseStmts(token.RBRACE)
	rbrace := p.expect(token.RBRACE)
	return b, rbrace
}

func (p *parser) parseStmt() ast.Stmt {
	switch p.tok {
	case token.LET:
		return p.parseLetStmt()
	case token.FN:
		return p.parseFuncStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.LOOP:
		return p.parseLoopStmt()
	case token.BREAK:
		return &ast.BreakStmt{Start: p.expect(token.BREAK)}
	default:
		return p.parseExprOrIndexAssignStmt()
	}
}

func (p *parser) parseLetStmt() *ast.LetStmt {
	var stmt ast.LetStmt
	stmt.Let = p.expect(token.LET)
	stmt.Name = p.parseIdentExpr()
	stmt.Eq = p.expect(token.EQ)
	stmt.Value = p.parseExpr()
	return &stmt
}

func (p *parser) parseFuncStmt() *ast.FuncStmt {
	var stmt ast.FuncStmt
	stmt.Fn = p.expect(token.FN)
	stmt.Name = p.parseIdentExpr()
	stmt.Lparen = p.expect(token.LPAREN)

	if p.tok != token.RPAREN {
		stmt.Params = append(stmt.Params, p.parseIdentExpr())
		for p.tok == token.COMMA {
			p.expect(token.COMMA)
			stmt.Params = append(stmt.Params, p.parseIdentExpr())
		}
	}
	stmt.Rparen = p.expect(token.RPAREN)
	stmt.Body, stmt.Rbrace = p.parseBlock()
	return &stmt
}

func (p *parser) parseReturnStmt() *ast.ReturnStmt {
	var stmt ast.ReturnStmt
	stmt.Return = p.expect(token.RETURN)
	stmt.Value = p.parseExpr()
	return &stmt
}

func (p *parser) parseIfStmt() *ast.IfStmt {
	var stmt ast.IfStmt
	stmt.If = p.expect(token.IF)
	stmt.Cond = p.parseExpr()
	stmt.True, stmt.End = p.parseBlock()

	if p.tok == token.ELSE {
		stmt.Else = p.expect(token.ELSE)
		stmt.False, stmt.End = p.parseBlock()
	}
	return &stmt
}

func (p *parser) parseLoopStmt() *ast.LoopStmt {
	var stmt ast.LoopStmt
	stmt.Loop = p.expect(token.LOOP)
	stmt.Body, stmt.Rbrace = p.parseBlock()
	return &stmt
}

// parseExprOrIndexAssignStmt disambiguates an indexed assignment from an
// expression statement: both may start with an identifier, so the
// expression is parsed first and the statement is an indexed assignment
// only when it reduced to an index expression followed by '='.
func (p *parser) parseExprOrIndexAssignStmt() ast.Stmt {
	expr := p.parseExpr()

	if ie, ok := expr.(*ast.IndexExpr); ok && p.tok == token.EQ {
		var stmt ast.IndexAssignStmt
		stmt.Name = ie.Name
		stmt.Lbrack = ie.Lbrack
		stmt.Index = ie.Index
		stmt.Rbrack = ie.Rbrack
		stmt.Assign = p.expect(token.EQ)
		stmt.Value = p.parseExpr()
		return &stmt
	}
	return &ast.ExprStmt{Expr: expr}
}

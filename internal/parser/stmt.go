package parser

import (
	"github.com/sigil-lang/sigilc/internal/ast"
	"github.com/sigil-lang/sigilc/internal/lexer"
)

// parseBlock implements Block: a required `{` Statement* `}`. Every
// control-flow body and function body goes through this — the grammar has
// no single-statement form, so `if (cond) return;` without braces is a
// syntax error here rather than being silently accepted.
func (p *Parser) parseBlock() *ast.Block {
	line, col := p.cur.Line, p.cur.Col
	if !p.expect(lexer.LBRACE) {
		return nil
	}

	blk := &ast.Block{}
	blk.SetPos(pos(line, col))

	for !p.curIs(lexer.RBRACE) {
		if p.failed() || p.curIs(lexer.EOF) {
			if !p.failed() {
				p.fail("expected '}', found EOF")
			}

			return nil
		}

		stmt := p.parseStmt()
		if p.failed() {
			return nil
		}
		blk.Stmts = append(blk.Stmts, stmt)
	}

	if !p.expect(lexer.RBRACE) {
		return nil
	}

	return blk
}

// parseStmt implements the Statement production. An IDENT-led statement
// uses one token of extra lookahead (IDENT followed by ':') to disambiguate
// a variable declaration from an expression statement.
func (p *Parser) parseStmt() ast.Stmt {
	if p.failed() {
		return nil
	}

	switch p.cur.Kind {
	case lexer.LBRACE:
		return p.parseBlockStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.BREAK:
		return p.parseBreakStmt()
	case lexer.CONTINUE:
		return p.parseContinueStmt()
	case lexer.IDENT:
		if p.peekIs(lexer.COLON) {
			return p.parseVarDeclStmt()
		}

		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBlockStmt() ast.Stmt {
	return p.parseBlock()
}

// parseIfStmt implements `'if' '(' Expression ')' Block ('else' (If | Block))?`.
func (p *Parser) parseIfStmt() ast.Stmt {
	line, col := p.cur.Line, p.cur.Col
	p.advance() // 'if'

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	cond := p.parseExpression(precLowest)
	if !p.expect(lexer.RPAREN) {
		return nil
	}

	then := p.parseBlock()
	if p.failed() {
		return nil
	}

	stmt := &ast.IfStmt{Cond: cond, Then: then}
	stmt.SetPos(pos(line, col))

	if p.curIs(lexer.ELSE) {
		p.advance()

		if p.curIs(lexer.IF) {
			stmt.Else = p.parseIfStmt()
		} else {
			stmt.Else = p.parseBlock()
		}

		if p.failed() {
			return nil
		}
	}

	return stmt
}

// parseWhileStmt implements `'while' '(' Expression ')' Block`.
func (p *Parser) parseWhileStmt() ast.Stmt {
	line, col := p.cur.Line, p.cur.Col
	p.advance() // 'while'

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	cond := p.parseExpression(precLowest)
	if !p.expect(lexer.RPAREN) {
		return nil
	}

	body := p.parseBlock()
	if p.failed() {
		return nil
	}

	stmt := &ast.WhileStmt{Cond: cond, Body: body}
	stmt.SetPos(pos(line, col))

	return stmt
}

// parseForStmt implements `'for' '(' ForInit? ';' Expression? ';' Expression? ')' Block`
// where `ForInit ::= VariableDecl | Expression`.
func (p *Parser) parseForStmt() ast.Stmt {
	line, col := p.cur.Line, p.cur.Col
	p.advance() // 'for'

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	stmt := &ast.ForStmt{}
	stmt.SetPos(pos(line, col))

	if !p.curIs(lexer.SEMI) {
		if p.curIs(lexer.IDENT) && p.peekIs(lexer.COLON) {
			decl := p.parseVarDecl()
			if p.failed() {
				return nil
			}
			vs := &ast.VarDeclStmt{Decl: decl}
			vs.SetPos(decl.Position())
			stmt.Init = vs
		} else {
			e := p.parseExpression(precLowest)
			if p.failed() {
				return nil
			}
			es := &ast.ExprStmt{X: e}
			es.SetPos(e.Position())
			stmt.Init = es
		}
	}

	if !p.expectSemi() {
		return nil
	}

	if !p.curIs(lexer.SEMI) {
		stmt.Cond = p.parseExpression(precLowest)
		if p.failed() {
			return nil
		}
	}

	if !p.expectSemi() {
		return nil
	}

	if !p.curIs(lexer.RPAREN) {
		stmt.Post = p.parseExpression(precLowest)
		if p.failed() {
			return nil
		}
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	stmt.Body = p.parseBlock()
	if p.failed() {
		return nil
	}

	return stmt
}

// parseReturnStmt implements `'return' Expression? ';'`.
func (p *Parser) parseReturnStmt() ast.Stmt {
	line, col := p.cur.Line, p.cur.Col
	p.advance() // 'return'

	stmt := &ast.ReturnStmt{}
	stmt.SetPos(pos(line, col))

	if !p.curIs(lexer.SEMI) {
		stmt.Value = p.parseExpression(precLowest)
		if p.failed() {
			return nil
		}
	}

	if !p.expectSemi() {
		return nil
	}

	return stmt
}

func (p *Parser) parseBreakStmt() ast.Stmt {
	line, col := p.cur.Line, p.cur.Col
	p.advance() // 'break'

	stmt := &ast.BreakStmt{}
	stmt.SetPos(pos(line, col))

	if !p.expectSemi() {
		return nil
	}

	return stmt
}

func (p *Parser) parseContinueStmt() ast.Stmt {
	line, col := p.cur.Line, p.cur.Col
	p.advance() // 'continue'

	stmt := &ast.ContinueStmt{}
	stmt.SetPos(pos(line, col))

	if !p.expectSemi() {
		return nil
	}

	return stmt
}

func (p *Parser) parseVarDeclStmt() ast.Stmt {
	decl := p.parseVarDecl()
	if p.failed() {
		return nil
	}

	if !p.expectSemi() {
		return nil
	}

	stmt := &ast.VarDeclStmt{Decl: decl}
	stmt.SetPos(decl.Position())

	return stmt
}

func (p *Parser) parseExprStmt() ast.Stmt {
	line, col := p.cur.Line, p.cur.Col

	e := p.parseExpression(precLowest)
	if p.failed() {
		return nil
	}

	if !p.expectSemi() {
		return nil
	}

	stmt := &ast.ExprStmt{X: e}
	stmt.SetPos(pos(line, col))

	return stmt
}

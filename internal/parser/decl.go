package parser

import (
	"github.com/sigil-lang/sigilc/internal/ast"
	"github.com/sigil-lang/sigilc/internal/lexer"
)

// parseProgram implements Program ::= Declaration*, stopping at EOF. Any
// token that starts neither a function nor a variable declaration fails
// with "expected a function or variable declaration".
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	prog.SetPos(pos(p.cur.Line, p.cur.Col))

	for !p.curIs(lexer.EOF) {
		if p.failed() {
			return nil
		}

		decl := p.parseDecl()
		if p.failed() {
			return nil
		}
		prog.Decls = append(prog.Decls, decl)
	}

	return prog
}

func (p *Parser) parseDecl() ast.Decl {
	switch {
	case p.curIs(lexer.FN):
		return p.parseFuncDecl()

	case p.curIs(lexer.IDENT) && p.peekIs(lexer.COLON):
		decl := p.parseVarDecl()
		if p.failed() {
			return nil
		}
		if !p.expectSemi() {
			return nil
		}

		return decl

	default:
		p.fail("expected a function or variable declaration, found " + p.cur.Kind.String())

		return nil
	}
}

// parseFuncDecl implements `'fn' IDENT '(' ParamList? ')' ('->' Type)? Block`.
func (p *Parser) parseFuncDecl() ast.Decl {
	line, col := p.cur.Line, p.cur.Col
	p.advance() // 'fn'

	if !p.curIs(lexer.IDENT) {
		p.fail("expected function name, found " + p.cur.Kind.String())

		return nil
	}
	name := p.cur.Lexeme
	p.advance()

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	params := p.parseParamList()
	if p.failed() {
		return nil
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	var ret *ast.AstType
	if p.curIs(lexer.ARROW) {
		p.advance()
		ret = p.parseType()
		if p.failed() {
			return nil
		}
	}

	body := p.parseBlock()
	if p.failed() {
		return nil
	}

	d := &ast.FuncDecl{Name: name, Params: params, Return: ret, Body: body}
	d.SetPos(pos(line, col))

	return d
}

// parseParamList implements `ParamList ::= Param (',' Param)*`, each `Param
// ::= IDENT ':' Type`. Returns nil (no allocation) for an empty list.
func (p *Parser) parseParamList() []*ast.Param {
	if p.curIs(lexer.RPAREN) {
		return nil
	}

	var params []*ast.Param

	param := p.parseParam()
	if p.failed() {
		return nil
	}
	params = append(params, param)

	for p.curIs(lexer.COMMA) {
		p.advance()

		param := p.parseParam()
		if p.failed() {
			return nil
		}
		params = append(params, param)
	}

	return params
}

func (p *Parser) parseParam() *ast.Param {
	if !p.curIs(lexer.IDENT) {
		p.fail("expected parameter name, found " + p.cur.Kind.String())

		return nil
	}

	line, col := p.cur.Line, p.cur.Col
	name := p.cur.Lexeme
	p.advance()

	if !p.expect(lexer.COLON) {
		return nil
	}

	typ := p.parseType()
	if p.failed() {
		return nil
	}

	param := &ast.Param{Name: name, Type: typ}
	param.SetPos(pos(line, col))

	return param
}

// parseVarDecl implements `IDENT ':' Type ('=' (Expression | InitList))?`
// without consuming the trailing ';' — callers (top-level declarations,
// VarDeclStmt, and ForStmt's init clause) each own that themselves since
// only two of the three contexts actually want one consumed here.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	if !p.curIs(lexer.IDENT) {
		p.fail("expected a variable name, found " + p.cur.Kind.String())

		return nil
	}

	line, col := p.cur.Line, p.cur.Col
	name := p.cur.Lexeme
	p.advance()

	if !p.expect(lexer.COLON) {
		return nil
	}

	typ := p.parseType()
	if p.failed() {
		return nil
	}

	decl := &ast.VarDecl{Name: name, Type: typ}
	decl.SetPos(pos(line, col))

	if p.curIs(lexer.ASSIGN) {
		p.advance()

		if p.curIs(lexer.LBRACE) {
			decl.Init = p.parseInitList()
		} else {
			decl.Init = p.parseExpression(precLowest)
		}

		if p.failed() {
			return nil
		}
	}

	return decl
}

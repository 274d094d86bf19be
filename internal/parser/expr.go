package parser

import (
	"strconv"
	"strings"

	"github.com/sigil-lang/sigilc/internal/ast"
	"github.com/sigil-lang/sigilc/internal/lexer"
)

// Precedence levels exist only as a doc aid for parseExpression's entry
// point; every level below it is its own named method rather than a
// table-driven loop, so there's no precedence constant beyond "lowest"
// (used when a suffix's dimension expression or an argument needs a full
// Expression).
const precLowest = 0

// parseExpression is the grammar's Expression production: try an
// assignment, falling back to a plain LogicalOr when the parsed operand
// turns out not to be followed by an assignment operator.
func (p *Parser) parseExpression(_ int) ast.Expr {
	if p.failed() {
		return nil
	}

	return p.parseAssignment()
}

// parseAssignment implements `Lvalue AssignOp Expression`, right-associative.
// It first parses a LogicalOr; if what follows is an assignment operator,
// the parsed node must already be a syntactic lvalue.
func (p *Parser) parseAssignment() ast.Expr {
	line, col := p.cur.Line, p.cur.Col

	left := p.parseLogicalOr()
	if p.failed() {
		return nil
	}

	op, ok := assignOps[p.cur.Kind]
	if !ok {
		return left
	}

	if !isLvalue(left) {
		p.fail("lvalue required as assignment target")

		return nil
	}

	p.advance()

	value := p.parseAssignment()
	if p.failed() {
		return nil
	}

	e := &ast.AssignExpr{Target: left, Op: op, Value: value}
	e.SetPos(pos(line, col))

	return e
}

func isLvalue(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.Ident, *ast.SubscriptExpr:
		return true
	case *ast.UnaryExpr:
		return v.Op == ast.OpDeref
	default:
		return false
	}
}

var assignOps = map[lexer.Kind]ast.AssignOp{
	lexer.ASSIGN:    ast.AssignSet,
	lexer.PLUSEQ:    ast.AssignAdd,
	lexer.MINUSEQ:   ast.AssignSub,
	lexer.STAREQ:    ast.AssignMul,
	lexer.SLASHEQ:   ast.AssignDiv,
	lexer.PERCENTEQ: ast.AssignMod,
}

// binaryLevel generalizes every left-associative binary precedence level:
// parse one operand with next, then while cur's kind is in ops, consume it
// and fold in another operand.
func (p *Parser) binaryLevel(next func() ast.Expr, ops map[lexer.Kind]ast.BinaryOp) ast.Expr {
	left := next()
	if p.failed() {
		return nil
	}

	for {
		op, ok := ops[p.cur.Kind]
		if !ok {
			return left
		}

		line, col := p.cur.Line, p.cur.Col
		p.advance()

		right := next()
		if p.failed() {
			return nil
		}

		e := &ast.BinaryExpr{Left: left, Op: op, Right: right}
		e.SetPos(pos(line, col))
		left = e
	}
}

var orOps = map[lexer.Kind]ast.BinaryOp{lexer.OR: ast.OpOr}
var andOps = map[lexer.Kind]ast.BinaryOp{lexer.AND: ast.OpAnd}
var eqOps = map[lexer.Kind]ast.BinaryOp{lexer.EQ: ast.OpEq, lexer.NEQ: ast.OpNeq}
var relOps = map[lexer.Kind]ast.BinaryOp{
	lexer.LT: ast.OpLt, lexer.GT: ast.OpGt, lexer.LE: ast.OpLe, lexer.GE: ast.OpGe,
}
var addOps = map[lexer.Kind]ast.BinaryOp{lexer.PLUS: ast.OpAdd, lexer.MINUS: ast.OpSub}
var mulOps = map[lexer.Kind]ast.BinaryOp{
	lexer.STAR: ast.OpMul, lexer.SLASH: ast.OpDiv, lexer.PERCENT: ast.OpMod,
}

func (p *Parser) parseLogicalOr() ast.Expr  { return p.binaryLevel(p.parseLogicalAnd, orOps) }
func (p *Parser) parseLogicalAnd() ast.Expr { return p.binaryLevel(p.parseEquality, andOps) }
func (p *Parser) parseEquality() ast.Expr   { return p.binaryLevel(p.parseRelational, eqOps) }
func (p *Parser) parseRelational() ast.Expr { return p.binaryLevel(p.parseAdditive, relOps) }
func (p *Parser) parseAdditive() ast.Expr   { return p.binaryLevel(p.parseMultiplicative, addOps) }
func (p *Parser) parseMultiplicative() ast.Expr {
	return p.binaryLevel(p.parseUnary, mulOps)
}

var prefixOps = map[lexer.Kind]ast.UnaryOp{
	lexer.PLUS:  ast.OpPos,
	lexer.MINUS: ast.OpNeg,
	lexer.NOT:   ast.OpNot,
	lexer.STAR:  ast.OpDeref,
	lexer.AMP:   ast.OpAddr,
	lexer.INC:   ast.OpPreInc,
	lexer.DEC:   ast.OpPreDec,
}

// parseUnary implements `PrefixOp Unary | Postfix`.
func (p *Parser) parseUnary() ast.Expr {
	if p.failed() {
		return nil
	}

	if op, ok := prefixOps[p.cur.Kind]; ok {
		line, col := p.cur.Line, p.cur.Col
		p.advance()

		operand := p.parseUnary()
		if p.failed() {
			return nil
		}

		e := &ast.UnaryExpr{Op: op, Operand: operand}
		e.SetPos(pos(line, col))

		return e
	}

	return p.parsePostfix()
}

// parsePostfix implements `Primary PostfixOp*`.
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	if p.failed() {
		return nil
	}

	for {
		line, col := p.cur.Line, p.cur.Col

		switch p.cur.Kind {
		case lexer.INC, lexer.DEC:
			op := ast.OpPostInc
			if p.cur.Kind == lexer.DEC {
				op = ast.OpPostDec
			}
			p.advance()
			e := &ast.PostfixExpr{Operand: expr, Op: op}
			e.SetPos(pos(line, col))
			expr = e

		case lexer.LBRACKET:
			p.advance()
			index := p.parseExpression(precLowest)
			if !p.expect(lexer.RBRACKET) {
				return nil
			}
			e := &ast.SubscriptExpr{Array: expr, Index: index}
			e.SetPos(pos(line, col))
			expr = e

		case lexer.LPAREN:
			p.advance()
			args := p.parseArgList()
			if p.failed() {
				return nil
			}
			if !p.expect(lexer.RPAREN) {
				return nil
			}
			e := &ast.CallExpr{Callee: expr, Args: args}
			e.SetPos(pos(line, col))
			expr = e

		default:
			return expr
		}
	}
}

// parseArgList implements `(Expression | InitList) (',' (Expression | InitList))*`.
func (p *Parser) parseArgList() []ast.Expr {
	if p.curIs(lexer.RPAREN) {
		return nil
	}

	var args []ast.Expr

	arg := p.parseArgElement()
	if p.failed() {
		return nil
	}
	args = append(args, arg)

	for p.curIs(lexer.COMMA) {
		p.advance()

		arg := p.parseArgElement()
		if p.failed() {
			return nil
		}
		args = append(args, arg)
	}

	return args
}

func (p *Parser) parseArgElement() ast.Expr {
	if p.curIs(lexer.LBRACE) {
		return p.parseInitList()
	}

	return p.parseExpression(precLowest)
}

// parseInitList implements `'{' (elem (',' elem)*)? '}'`, elem being an
// Expression or a nested initializer list. A trailing comma is rejected.
func (p *Parser) parseInitList() ast.Expr {
	line, col := p.cur.Line, p.cur.Col
	p.advance() // '{'

	lst := &ast.InitList{}
	lst.SetPos(pos(line, col))

	if p.curIs(lexer.RBRACE) {
		p.advance()

		return lst
	}

	for {
		if p.failed() {
			return nil
		}

		var elem ast.Expr
		if p.curIs(lexer.LBRACE) {
			elem = p.parseInitList()
		} else {
			elem = p.parseExpression(precLowest)
		}
		if p.failed() {
			return nil
		}
		lst.Elements = append(lst.Elements, elem)

		if p.curIs(lexer.COMMA) {
			p.advance()
			if p.curIs(lexer.RBRACE) {
				p.fail("trailing comma not allowed in initializer list")

				return nil
			}

			continue
		}

		break
	}

	if !p.expect(lexer.RBRACE) {
		return nil
	}

	return lst
}

// parsePrimary implements `INT | FLOAT | 'true' | 'false' | STRING | CHAR | IDENT | '(' Expression ')'`.
func (p *Parser) parsePrimary() ast.Expr {
	if p.failed() {
		return nil
	}

	line, col := p.cur.Line, p.cur.Col
	tok := p.cur

	switch tok.Kind {
	case lexer.INT:
		val, err := strconv.ParseInt(strings.ReplaceAll(tok.Lexeme, "_", ""), 10, 64)
		if err != nil {
			p.fail("malformed integer literal " + strconv.Quote(tok.Lexeme))

			return nil
		}
		p.advance()
		e := &ast.IntLit{Value: val}
		e.SetPos(pos(line, col))

		return e

	case lexer.FLOAT:
		val, err := strconv.ParseFloat(strings.ReplaceAll(tok.Lexeme, "_", ""), 64)
		if err != nil {
			p.fail("malformed float literal " + strconv.Quote(tok.Lexeme))

			return nil
		}
		p.advance()
		e := &ast.FloatLit{Value: val}
		e.SetPos(pos(line, col))

		return e

	case lexer.TRUE, lexer.FALSE:
		p.advance()
		e := &ast.BoolLit{Value: tok.Kind == lexer.TRUE}
		e.SetPos(pos(line, col))

		return e

	case lexer.STRING:
		p.advance()
		e := &ast.StringLit{Value: tok.Lexeme}
		e.SetPos(pos(line, col))

		return e

	case lexer.CHAR:
		p.advance()
		e := &ast.CharLit{Value: tok.Lexeme}
		e.SetPos(pos(line, col))

		return e

	case lexer.IDENT:
		p.advance()
		e := &ast.Ident{Name: tok.Lexeme}
		e.SetPos(pos(line, col))

		return e

	case lexer.LPAREN:
		p.advance()
		inner := p.parseExpression(precLowest)
		if !p.expect(lexer.RPAREN) {
			return nil
		}

		return inner

	default:
		p.fail("expected an expression, found " + tok.Kind.String())

		return nil
	}
}

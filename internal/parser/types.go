package parser

import (
	"github.com/sigil-lang/sigilc/internal/ast"
	"github.com/sigil-lang/sigilc/internal/lexer"
)

// parseType implements the full Type grammar:
//
//	Type        ::= 'const'? TypeAtom TypeSuffix*
//	TypeAtom    ::= PrimitiveName | IDENT | '(' Type ')' | FunctionType
//	FunctionType::= 'fn' '(' (Type (',' Type)*)? ')' ('->' Type)?
//	TypeSuffix  ::= '*' | '[' Expression? ']'
//
// Suffix precedence falls out of the recursion rather than needing special
// casing: a '->' return type is parsed with its own nested parseType call,
// which greedily consumes any suffixes written right after it, so they
// never propagate back out to the enclosing function atom. Only explicit
// grouping — '(' Type ')' — lets suffixes bind to a whole function or
// grouped type instead of its innermost piece.
func (p *Parser) parseType() *ast.AstType {
	if p.failed() {
		return nil
	}

	line, col := p.cur.Line, p.cur.Col

	isConst := false
	if p.curIs(lexer.CONST) {
		isConst = true
		p.advance()
	}

	var at *ast.AstType

	switch {
	case p.curIs(lexer.LPAREN):
		p.advance()
		inner := p.parseType()
		if !p.expect(lexer.RPAREN) {
			return nil
		}
		at = &ast.AstType{Kind: ast.TypeGrouped, Inner: inner, IsConst: isConst}

	case p.curIs(lexer.FN):
		at = p.parseFunctionTypeAtom(isConst)
		if at == nil {
			return nil
		}

	case isPrimitiveOrIdent(p.cur):
		at = &ast.AstType{Kind: ast.TypeRegular, BaseName: p.cur.Lexeme, IsConst: isConst}
		p.advance()

	default:
		p.fail("expected a type, found " + p.cur.Kind.String())

		return nil
	}

	at.SetPos(pos(line, col))

	return p.parseTypeSuffixes(at)
}

// parseFunctionTypeAtom parses the `'fn' '(' ... ')' ('->' Type)?` atom,
// assuming cur is the 'fn' keyword.
func (p *Parser) parseFunctionTypeAtom(isConst bool) *ast.AstType {
	p.advance() // 'fn'
	if !p.expect(lexer.LPAREN) {
		return nil
	}

	var params []*ast.AstType
	if !p.curIs(lexer.RPAREN) {
		t := p.parseType()
		if p.failed() {
			return nil
		}
		params = append(params, t)

		for p.curIs(lexer.COMMA) {
			p.advance()
			t := p.parseType()
			if p.failed() {
				return nil
			}
			params = append(params, t)
		}
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

	return &ast.AstType{Kind: ast.TypeFunction, Params: params, Return: ret, IsConst: isConst}
}

// parseTypeSuffixes consumes the TypeSuffix* tail, bucketing '*' into
// PreStars until the first dimension is seen and into PostStars after. A '['
// that follows a post-dimension '*' would not fit those buckets in order, so
// the record built so far is wrapped in a TypeGrouped record and the
// remaining suffixes apply to that group.
func (p *Parser) parseTypeSuffixes(at *ast.AstType) *ast.AstType {
	seenDim := false

	for {
		if p.failed() {
			return nil
		}

		switch {
		case p.curIs(lexer.STAR):
			p.advance()
			if seenDim {
				at.PostStars++
			} else {
				at.PreStars++
			}

		case p.curIs(lexer.LBRACKET):
			if at.PostStars > 0 {
				group := &ast.AstType{Kind: ast.TypeGrouped, Inner: at}
				group.SetPos(at.Position())
				at = group
			}
			p.advance()

			dim := &ast.ArrayDim{}
			if p.curIs(lexer.RBRACKET) {
				dim.Unspecified = true
			} else {
				dim.Expr = p.parseExpression(precLowest)
				if p.failed() {
					return nil
				}
			}

			if !p.expect(lexer.RBRACKET) {
				return nil
			}

			at.Dims = append(at.Dims, dim)
			seenDim = true

		default:
			return at
		}
	}
}

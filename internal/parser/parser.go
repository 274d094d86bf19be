// Package parser implements a hand-written recursive-descent parser over
// the token stream internal/lexer produces, building the tree defined by
// internal/ast.
//
// Unlike a Pratt parser, expression precedence is encoded as an explicit
// ladder of mutually recursive parseX methods, one per precedence level
// (parseAssignment down to parsePrimary) — each level calls the next
// tighter one and only handles the operators that belong to it. This
// mirrors the grammar's own layering directly instead of folding it into a
// precedence table, which keeps the type grammar's suffix rules (which
// don't fit a classic Pratt loop) structurally consistent with the rest of
// the parser.
//
// Parsing stops at the first error: there is no panic-mode recovery, and
// every parseX method checks p.diag before doing any work so a failure
// anywhere unwinds the whole call stack cheaply.
package parser

import (
	"github.com/sigil-lang/sigilc/internal/ast"
	"github.com/sigil-lang/sigilc/internal/lexer"
)

// Parser holds the current two-token lookahead window (cur/peek) plus the
// single diagnostic slot the whole pass shares.
type Parser struct {
	l    *lexer.Lexer
	file string

	prev lexer.Token
	cur  lexer.Token
	peek lexer.Token

	diag *Diagnostic
}

// New creates a Parser over src, attributing diagnostics to file (used only
// for the diagnostic's File field; the parser never opens file itself).
func New(src []byte, file string) *Parser {
	p := &Parser{l: lexer.New(src), file: file}
	p.advance()
	p.advance()

	return p
}

// Parse runs the parser to completion and returns the Program, or the first
// Diagnostic encountered.
func (p *Parser) Parse() (*ast.Program, *Diagnostic) {
	prog := p.parseProgram()
	if p.diag != nil {
		return nil, p.diag
	}

	return prog, nil
}

// advance shifts the lookahead window forward by one token. Once a
// diagnostic has been recorded it becomes a no-op, since nothing downstream
// should keep consuming input after the first failure.
func (p *Parser) advance() {
	if p.diag != nil {
		return
	}

	p.prev = p.cur
	p.cur = p.peek

	tok, err := p.l.NextToken()
	if err != nil {
		p.diag = &Diagnostic{
			Message: err.Error(),
			Line:    p.cur.Line,
			Col:     p.cur.Col,
			File:    p.file,
		}

		return
	}

	p.peek = tok
}

func (p *Parser) curIs(k lexer.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k lexer.Kind) bool { return p.peek.Kind == k }

// fail records msg anchored at the current token, if no diagnostic has been
// recorded yet.
func (p *Parser) fail(msg string) {
	if p.diag != nil {
		return
	}
	p.diag = &Diagnostic{Message: msg, Token: p.cur, Line: p.cur.Line, Col: p.cur.Col, File: p.file}
}

// failAfterPrev records msg anchored one column past the end of the
// previously consumed token — used for the missing-terminator case where
// the caret reads better at the end of what was actually typed than at
// whatever token follows it.
func (p *Parser) failAfterPrev(msg string) {
	if p.diag != nil {
		return
	}
	p.diag = &Diagnostic{
		Message:           msg,
		Token:             p.cur,
		Line:              p.prev.Line,
		Col:               p.prev.Col + len(p.prev.Lexeme),
		File:              p.file,
		UnderlinePrevious: true,
	}
}

// expect consumes cur if it has kind k, else records a ParseExpectedToken
// diagnostic and returns false.
func (p *Parser) expect(k lexer.Kind) bool {
	if p.diag != nil {
		return false
	}
	if p.cur.Kind != k {
		p.fail("expected " + k.String() + ", found " + p.cur.Kind.String())

		return false
	}
	p.advance()

	return true
}

// expectSemi consumes a `;`, anchoring the diagnostic to the end of the
// previous token when missing (the canonical underline_previous case).
func (p *Parser) expectSemi() bool {
	if p.diag != nil {
		return false
	}
	if p.cur.Kind != lexer.SEMI {
		p.failAfterPrev("expected ';' after " + p.prev.Kind.String())

		return false
	}
	p.advance()

	return true
}

func (p *Parser) failed() bool { return p.diag != nil }

package parser

import (
	"github.com/sigil-lang/sigilc/internal/ast"
	"github.com/sigil-lang/sigilc/internal/lexer"
)

func pos(line, col int) ast.Pos { return ast.Pos{Line: line, Col: col} }

// isPrimitiveOrIdent reports whether tok can start a TypeAtom that isn't a
// parenthesized group or a function type.
func isPrimitiveOrIdent(tok lexer.Token) bool {
	return lexer.IsPrimitiveType(tok.Kind) || tok.Kind == lexer.IDENT
}

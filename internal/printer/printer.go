// Package printer renders the pipeline's intermediate products — tokens,
// the AST, and the global symbol table — as plain text for the CLI's
// --tokens, --ast, and --sym-table flags. These dumps are peripheral to the
// pipeline itself: nothing downstream reads their output back in.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/sigil-lang/sigilc/internal/ast"
	"github.com/sigil-lang/sigilc/internal/lexer"
	"github.com/sigil-lang/sigilc/internal/types"
)

// Tokens writes one line per token to w.
func Tokens(w io.Writer, toks []lexer.Token) {
	for _, tok := range toks {
		fmt.Fprintf(w, "%-10s %-20q %d:%d\n", tok.Kind, tok.Lexeme, tok.Line, tok.Col)
	}
}

// AST writes an indented tree dump of prog to w.
func AST(w io.Writer, prog *ast.Program) {
	for _, decl := range prog.Decls {
		printDecl(w, decl, 0)
	}
}

func indent(w io.Writer, depth int, format string, args ...interface{}) {
	fmt.Fprint(w, strings.Repeat("  ", depth))
	fmt.Fprintf(w, format, args...)
}

func printDecl(w io.Writer, d ast.Decl, depth int) {
	switch v := d.(type) {
	case *ast.FuncDecl:
		indent(w, depth, "FuncDecl %s\n", v.Name)
		for _, p := range v.Params {
			indent(w, depth+1, "Param %s: %s\n", p.Name, typeString(p.Type))
		}
		if v.Return != nil {
			indent(w, depth+1, "Return %s\n", typeString(v.Return))
		}
		printBlock(w, v.Body, depth+1)

	case *ast.VarDecl:
		printVarDecl(w, v, depth)

	default:
		indent(w, depth, "<unknown decl %T>\n", d)
	}
}

func printVarDecl(w io.Writer, v *ast.VarDecl, depth int) {
	indent(w, depth, "VarDecl %s: %s\n", v.Name, typeString(v.Type))
	if v.Init != nil {
		indent(w, depth+1, "Init:\n")
		printExpr(w, v.Init, depth+2)
	}
}

func printBlock(w io.Writer, b *ast.Block, depth int) {
	indent(w, depth, "Block\n")
	for _, s := range b.Stmts {
		printStmt(w, s, depth+1)
	}
}

func printStmt(w io.Writer, s ast.Stmt, depth int) {
	switch v := s.(type) {
	case *ast.Block:
		printBlock(w, v, depth)
	case *ast.IfStmt:
		indent(w, depth, "If\n")
		printExpr(w, v.Cond, depth+1)
		printBlock(w, v.Then, depth+1)
		if v.Else != nil {
			indent(w, depth, "Else\n")
			printStmt(w, v.Else, depth+1)
		}
	case *ast.WhileStmt:
		indent(w, depth, "While\n")
		printExpr(w, v.Cond, depth+1)
		printBlock(w, v.Body, depth+1)
	case *ast.ForStmt:
		indent(w, depth, "For\n")
		if v.Init != nil {
			printStmt(w, v.Init, depth+1)
		}
		if v.Cond != nil {
			printExpr(w, v.Cond, depth+1)
		}
		if v.Post != nil {
			printExpr(w, v.Post, depth+1)
		}
		printBlock(w, v.Body, depth+1)
	case *ast.ReturnStmt:
		indent(w, depth, "Return\n")
		if v.Value != nil {
			printExpr(w, v.Value, depth+1)
		}
	case *ast.BreakStmt:
		indent(w, depth, "Break\n")
	case *ast.ContinueStmt:
		indent(w, depth, "Continue\n")
	case *ast.ExprStmt:
		indent(w, depth, "ExprStmt\n")
		printExpr(w, v.X, depth+1)
	case *ast.VarDeclStmt:
		printVarDecl(w, v.Decl, depth)
	default:
		indent(w, depth, "<unknown stmt %T>\n", s)
	}
}

func printExpr(w io.Writer, e ast.Expr, depth int) {
	switch v := e.(type) {
	case *ast.IntLit:
		indent(w, depth, "IntLit %d\n", v.Value)
	case *ast.FloatLit:
		indent(w, depth, "FloatLit %g\n", v.Value)
	case *ast.BoolLit:
		indent(w, depth, "BoolLit %t\n", v.Value)
	case *ast.StringLit:
		indent(w, depth, "StringLit %s\n", v.Value)
	case *ast.CharLit:
		indent(w, depth, "CharLit %s\n", v.Value)
	case *ast.Ident:
		indent(w, depth, "Ident %s\n", v.Name)
	case *ast.BinaryExpr:
		indent(w, depth, "BinaryExpr %s\n", v.Op)
		printExpr(w, v.Left, depth+1)
		printExpr(w, v.Right, depth+1)
	case *ast.UnaryExpr:
		indent(w, depth, "UnaryExpr %s\n", v.Op)
		printExpr(w, v.Operand, depth+1)
	case *ast.PostfixExpr:
		indent(w, depth, "PostfixExpr %s\n", v.Op)
		printExpr(w, v.Operand, depth+1)
	case *ast.AssignExpr:
		indent(w, depth, "AssignExpr %s\n", v.Op)
		printExpr(w, v.Target, depth+1)
		printExpr(w, v.Value, depth+1)
	case *ast.CallExpr:
		indent(w, depth, "CallExpr\n")
		printExpr(w, v.Callee, depth+1)
		for _, arg := range v.Args {
			printExpr(w, arg, depth+1)
		}
	case *ast.SubscriptExpr:
		indent(w, depth, "SubscriptExpr\n")
		printExpr(w, v.Array, depth+1)
		printExpr(w, v.Index, depth+1)
	case *ast.InitList:
		indent(w, depth, "InitList\n")
		for _, elem := range v.Elements {
			printExpr(w, elem, depth+1)
		}
	default:
		indent(w, depth, "<unknown expr %T>\n", e)
	}
}

func typeString(t *ast.AstType) string {
	if t == nil {
		return "<none>"
	}

	var b strings.Builder
	if t.IsConst {
		b.WriteString("const ")
	}

	switch t.Kind {
	case ast.TypeFunction:
		b.WriteString("fn(")
		for i, p := range t.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(typeString(p))
		}
		b.WriteString(")")
		if t.Return != nil {
			b.WriteString(" -> ")
			b.WriteString(typeString(t.Return))
		}
	case ast.TypeGrouped:
		b.WriteString("(")
		b.WriteString(typeString(t.Inner))
		b.WriteString(")")
	default:
		b.WriteString(t.BaseName)
	}

	for i := 0; i < t.PreStars; i++ {
		b.WriteString("*")
	}
	for _, d := range t.Dims {
		if d.Unspecified {
			b.WriteString("[]")
		} else {
			b.WriteString("[…]")
		}
	}
	for i := 0; i < t.PostStars; i++ {
		b.WriteString("*")
	}

	return b.String()
}

// SymbolTable writes one "name: type" line per entry, functions first, then
// variables.
func SymbolTable(w io.Writer, scope *types.Scope) {
	fmt.Fprintln(w, "functions:")
	scope.Functions.ForEach(func(s *types.Symbol) {
		fmt.Fprintf(w, "  %s: %s\n", s.Name, s.Type)
	})

	fmt.Fprintln(w, "variables:")
	scope.Variables.ForEach(func(s *types.Symbol) {
		fmt.Fprintf(w, "  %s: %s\n", s.Name, s.Type)
	})
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigil-lang/sigilc/internal/ast"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()

	p := New([]byte(src), "test.sg")
	prog, diag := p.Parse()
	require.Nil(t, diag, "unexpected diagnostic: %v", diag)
	require.NotNil(t, prog)

	return prog
}

func TestParseEmptyFunction(t *testing.T) {
	prog := parseProgram(t, `fn main() {}`)

	require.Len(t, prog.Decls, 1)

	fd, ok := prog.Decls[0].(*ast.FuncDecl)
	require.True(t, ok)
	require.Equal(t, "main", fd.Name)
	require.Nil(t, fd.Return)
	require.Empty(t, fd.Params)
	require.Empty(t, fd.Body.Stmts)
}

func TestParseFunctionWithParamsAndReturn(t *testing.T) {
	prog := parseProgram(t, `fn add(a: i32, b: i32) -> i32 { return a + b; }`)

	fd := prog.Decls[0].(*ast.FuncDecl)
	require.Len(t, fd.Params, 2)
	require.Equal(t, "a", fd.Params[0].Name)
	require.Equal(t, ast.TypeRegular, fd.Params[0].Type.Kind)
	require.Equal(t, "i32", fd.Params[0].Type.BaseName)
	require.NotNil(t, fd.Return)

	require.Len(t, fd.Body.Stmts, 1)
	ret, ok := fd.Body.Stmts[0].(*ast.ReturnStmt)
	require.True(t, ok)

	bin, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ast.OpAdd, bin.Op)
}

func TestParseTopLevelVarDecl(t *testing.T) {
	prog := parseProgram(t, `x: i32 = 5;`)

	vd, ok := prog.Decls[0].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, "x", vd.Name)

	lit, ok := vd.Init.(*ast.IntLit)
	require.True(t, ok)
	require.Equal(t, int64(5), lit.Value)
}

func TestParseTypeStarThenArray(t *testing.T) {
	prog := parseProgram(t, `x: i32*[10];`)

	vd := prog.Decls[0].(*ast.VarDecl)
	require.Equal(t, 1, vd.Type.PreStars)
	require.Len(t, vd.Type.Dims, 1)
	require.Equal(t, 0, vd.Type.PostStars)
}

func TestParseTypeGroupedArrayThenStar(t *testing.T) {
	prog := parseProgram(t, `x: (i32[10])*;`)

	vd := prog.Decls[0].(*ast.VarDecl)
	require.Equal(t, ast.TypeGrouped, vd.Type.Kind)
	require.Equal(t, 0, vd.Type.PostStars)
	require.Equal(t, 1, vd.Type.PreStars)

	inner := vd.Type.Inner
	require.Equal(t, ast.TypeRegular, inner.Kind)
	require.Len(t, inner.Dims, 1)
}

func TestParseFunctionTypeReturnSuffixBindsToReturn(t *testing.T) {
	// fn(i32) -> bool[5]: the [5] binds to the return type, not the function.
	prog := parseProgram(t, `x: fn(i32) -> bool[5];`)

	vd := prog.Decls[0].(*ast.VarDecl)
	require.Equal(t, ast.TypeFunction, vd.Type.Kind)
	require.Empty(t, vd.Type.Dims)

	require.Len(t, vd.Type.Return.Dims, 1)
}

func TestParseGroupedFunctionTypeSuffixBindsOutside(t *testing.T) {
	prog := parseProgram(t, `x: (fn(i32) -> bool)[5];`)

	vd := prog.Decls[0].(*ast.VarDecl)
	require.Equal(t, ast.TypeGrouped, vd.Type.Kind)
	require.Len(t, vd.Type.Dims, 1)
	require.Equal(t, ast.TypeFunction, vd.Type.Inner.Kind)
}

func TestParseIfElseIfChain(t *testing.T) {
	prog := parseProgram(t, `
		fn f() {
			if (true) {
			} else if (false) {
			} else {
			}
		}
	`)

	fd := prog.Decls[0].(*ast.FuncDecl)
	ifs := fd.Body.Stmts[0].(*ast.IfStmt)

	elseIf, ok := ifs.Else.(*ast.IfStmt)
	require.True(t, ok)
	require.IsType(t, &ast.Block{}, elseIf.Else)
}

func TestParseBracelessIfIsError(t *testing.T) {
	p := New([]byte(`fn f() { if (true) return; }`), "t.sg")
	_, diag := p.Parse()
	require.NotNil(t, diag)
}

func TestParseForLoop(t *testing.T) {
	prog := parseProgram(t, `
		fn f() {
			for (i: i32 = 0; i < 10; i = i + 1) {
			}
		}
	`)

	fd := prog.Decls[0].(*ast.FuncDecl)
	forStmt := fd.Body.Stmts[0].(*ast.ForStmt)

	_, ok := forStmt.Init.(*ast.VarDeclStmt)
	require.True(t, ok)
	require.NotNil(t, forStmt.Cond)
	require.NotNil(t, forStmt.Post)
}

func TestParseAssignmentRequiresLvalue(t *testing.T) {
	p := New([]byte(`fn f() { 1 + 2 = 3; }`), "t.sg")
	_, diag := p.Parse()
	require.NotNil(t, diag)
}

func TestParseInitListTrailingCommaError(t *testing.T) {
	p := New([]byte(`x: i32[3] = {1, 2, };`), "t.sg")
	_, diag := p.Parse()
	require.NotNil(t, diag)
}

func TestParseEmptyInitList(t *testing.T) {
	prog := parseProgram(t, `x: i32[0] = {};`)

	vd := prog.Decls[0].(*ast.VarDecl)
	lst, ok := vd.Init.(*ast.InitList)
	require.True(t, ok)
	require.Empty(t, lst.Elements)
}

func TestParseDuplicateFunctionAcceptedByParser(t *testing.T) {
	// Duplicate-name detection belongs to sema, not the parser — the parser
	// must happily accept this input and hand both decls up.
	prog := parseProgram(t, `fn f() -> i32 {} fn f() -> i32 {}`)
	require.Len(t, prog.Decls, 2)
}

func TestParseMissingSemicolonUnderlinesPrevious(t *testing.T) {
	p := New([]byte(`fn f() { x: i32 = 1 }`), "t.sg")
	_, diag := p.Parse()
	require.NotNil(t, diag)
	require.True(t, diag.UnderlinePrevious)
}

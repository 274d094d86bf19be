package sema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigil-lang/sigilc/internal/ast"
)

// regular builds a plain (no-suffix) TypeRegular AstType.
func regular(base string) *ast.AstType {
	return &ast.AstType{Kind: ast.TypeRegular, BaseName: base}
}

func TestLowerTypeStarThenArray(t *testing.T) {
	// i32*[10] = array(10, pointer(i32))
	at := regular("i32")
	at.PreStars = 1
	at.Dims = []*ast.ArrayDim{{Expr: &ast.IntLit{Value: 10}}}

	got := LowerType(at)

	require.Equal(t, "array(10, pointer(i32))", got.String())
}

func TestLowerTypeGroupedArrayThenStar(t *testing.T) {
	// (i32[10])* = pointer(array(10, i32))
	inner := regular("i32")
	inner.Dims = []*ast.ArrayDim{{Expr: &ast.IntLit{Value: 10}}}

	grouped := &ast.AstType{Kind: ast.TypeGrouped, Inner: inner}
	grouped.PostStars = 1

	got := LowerType(grouped)

	require.Equal(t, "pointer(array(10, i32))", got.String())
}

func TestLowerTypeFunctionReturningArray(t *testing.T) {
	// fn(i32) -> bool[5] = function returning array(5, bool)
	ret := regular("bool")
	ret.Dims = []*ast.ArrayDim{{Expr: &ast.IntLit{Value: 5}}}

	fn := &ast.AstType{
		Kind:   ast.TypeFunction,
		Params: []*ast.AstType{regular("i32")},
		Return: ret,
	}

	got := LowerType(fn)

	require.Equal(t, "fn(i32) -> array(5, bool)", got.String())
}

func TestLowerTypeGroupedFunctionThenArray(t *testing.T) {
	// (fn(i32) -> bool)[5] = array(5, function(i32 -> bool))
	fn := &ast.AstType{
		Kind:   ast.TypeFunction,
		Params: []*ast.AstType{regular("i32")},
		Return: regular("bool"),
	}

	grouped := &ast.AstType{Kind: ast.TypeGrouped, Inner: fn}
	grouped.Dims = []*ast.ArrayDim{{Expr: &ast.IntLit{Value: 5}}}

	got := LowerType(grouped)

	require.Equal(t, "array(5, fn(i32) -> bool)", got.String())
}

func TestLowerTypeNonLiteralDimensionIsUnspecified(t *testing.T) {
	at := regular("i32")
	at.Dims = []*ast.ArrayDim{{Expr: &ast.Ident{Name: "n"}}}

	got := LowerType(at)

	require.Equal(t, "array(i32)", got.String())
}

func TestLowerTypeMissingBaseNameIsUnknown(t *testing.T) {
	got := LowerType(regular(""))

	require.Equal(t, "unknown", got.String())
}

func TestLowerTypeIdempotent(t *testing.T) {
	at := regular("i32")
	at.PreStars = 2
	at.Dims = []*ast.ArrayDim{{Expr: &ast.IntLit{Value: 3}}}

	first := LowerType(at)
	second := LowerType(at)

	require.True(t, first.Equal(second))
}

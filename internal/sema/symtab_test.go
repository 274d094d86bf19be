package sema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigil-lang/sigilc/internal/ast"
)

func funcDecl(name string) *ast.FuncDecl {
	return &ast.FuncDecl{Name: name, Return: regular("i32")}
}

func varDecl(name string) *ast.VarDecl {
	return &ast.VarDecl{Name: name, Type: regular("i32")}
}

func TestBuildGlobalScopeBindsFunctionsAndVariables(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		funcDecl("main"),
		varDecl("counter"),
	}}

	scope, err := BuildGlobalScope(prog)
	require.NoError(t, err)

	_, ok := scope.LookupFunction("main")
	require.True(t, ok)

	_, ok = scope.LookupVariable("counter")
	require.True(t, ok)
}

func TestBuildGlobalScopeDuplicateFunction(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		funcDecl("f"),
		funcDecl("f"),
	}}

	_, err := BuildGlobalScope(prog)
	require.Error(t, err)

	var semaErr *Error
	require.ErrorAs(t, err, &semaErr)
	require.Equal(t, ErrSymDuplicateName, semaErr.Kind)
}

func TestBuildGlobalScopeFunctionAndVariableShareName(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		funcDecl("f"),
		varDecl("f"),
	}}

	scope, err := BuildGlobalScope(prog)
	require.NoError(t, err)

	_, ok := scope.LookupFunction("f")
	require.True(t, ok)

	_, ok = scope.LookupVariable("f")
	require.True(t, ok)
}

package sema

import (
	"github.com/sigil-lang/sigilc/internal/ast"
	"github.com/sigil-lang/sigilc/internal/types"
)

// BuildGlobalScope walks prog's top-level declarations in source order and
// populates a fresh global Scope: one Symbol per function in
// Scope.Functions, one per variable in Scope.Variables. Functions and
// variables are disjoint namespaces, so a function and a variable may share
// a name without colliding. The first duplicate name within either table
// aborts construction and returns a *sema.Error — there is no recovery, in
// keeping with the rest of this front end.
func BuildGlobalScope(prog *ast.Program) (*types.Scope, error) {
	scope := types.NewScope(nil)

	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if err := bindFunc(scope, d); err != nil {
				return nil, err
			}
		case *ast.VarDecl:
			if err := bindVar(scope, d); err != nil {
				return nil, err
			}
		}
	}

	return scope, nil
}

func bindFunc(scope *types.Scope, d *ast.FuncDecl) error {
	params := make([]*types.Type, 0, len(d.Params))
	for _, p := range d.Params {
		params = append(params, LowerType(p.Type))
	}

	var ret *types.Type
	if d.Return != nil {
		ret = LowerType(d.Return)
	}

	sym := &types.Symbol{
		Name:        d.Name,
		Type:        types.Function(ret, params, false),
		IsConstExpr: false,
	}

	if err := scope.Functions.Insert(sym); err != nil {
		pos := d.Position()

		return &Error{Kind: ErrSymDuplicateName, Name: d.Name, Line: pos.Line, Col: pos.Col}
	}

	return nil
}

func bindVar(scope *types.Scope, d *ast.VarDecl) error {
	sym := &types.Symbol{
		Name:        d.Name,
		Type:        LowerType(d.Type),
		IsConstExpr: false,
	}

	if err := scope.Variables.Insert(sym); err != nil {
		pos := d.Position()

		return &Error{Kind: ErrSymDuplicateName, Name: d.Name, Line: pos.Line, Col: pos.Col}
	}

	return nil
}

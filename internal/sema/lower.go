// Package sema lowers syntactic AstType nodes into the canonical types.Type
// representation and builds the global scope's symbol tables from a parsed
// Program. It sits above both internal/ast and internal/types, which is why
// the lowering logic can't live in internal/types itself: types.Type must
// stay free of any ast import so ast's SemInfo.SemType field (typed
// *types.Type) doesn't create an import cycle.
package sema

import (
	"github.com/sigil-lang/sigilc/internal/ast"
	"github.com/sigil-lang/sigilc/internal/types"
)

// LowerType converts an AstType into a canonical Type. It cannot fail
// structurally: a regular type with no recognizable base name lowers to
// types.Unknown, and a dimension expression that isn't an integer literal
// lowers to size 0 (unspecified), per the front end's lowering contract.
func LowerType(t *ast.AstType) *types.Type {
	if t == nil {
		return nil
	}

	base := lowerCore(t)

	for i := 0; i < t.PreStars; i++ {
		base = types.Pointer(base, false)
	}
	for _, dim := range t.Dims {
		base = types.Array(base, dimSize(dim), false)
	}
	for i := 0; i < t.PostStars; i++ {
		base = types.Pointer(base, false)
	}

	return base
}

// lowerCore lowers the three AstType cases (regular, function, grouped)
// without applying the suffix chain — LowerType applies suffixes afterward,
// in pre-star, dimension, post-star order.
func lowerCore(t *ast.AstType) *types.Type {
	switch t.Kind {
	case ast.TypeFunction:
		params := make([]*types.Type, 0, len(t.Params))
		for _, p := range t.Params {
			params = append(params, LowerType(p))
		}

		var ret *types.Type
		if t.Return != nil {
			ret = LowerType(t.Return)
		}

		return types.Function(ret, params, t.IsConst)

	case ast.TypeGrouped:
		inner := LowerType(t.Inner)
		if inner == nil {
			return types.Unknown(t.IsConst)
		}
		// Carry this record's IsConst onto the lowered inner type rather
		// than stacking an extra layer: grouping is purely syntactic.
		clone := *inner
		clone.IsConst = t.IsConst

		return &clone

	default: // ast.TypeRegular
		if t.BaseName == "" {
			return types.Unknown(t.IsConst)
		}

		return types.Primitive(t.BaseName, t.IsConst)
	}
}

// dimSize extracts an array dimension's size: an integer literal yields its
// parsed value, anything else (including the unspecified `[]` form) yields
// 0.
func dimSize(dim *ast.ArrayDim) int {
	if dim == nil || dim.Unspecified || dim.Expr == nil {
		return 0
	}

	lit, ok := dim.Expr.(*ast.IntLit)
	if !ok {
		return 0
	}

	return int(lit.Value)
}

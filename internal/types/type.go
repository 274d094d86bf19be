// Package types defines the canonical semantic type representation the
// front end lowers syntactic types into, plus the symbol table and scope
// structures that hold top-level bindings. Nothing here depends on the ast
// package — lowering from ast.AstType lives in internal/sema, which depends
// on both, keeping this package a standalone leaf.
package types

import (
	"fmt"
	"strings"
)

// Kind discriminates the four Type variants.
type Kind int

const (
	KindPrimitive Kind = iota
	KindPointer
	KindArray
	KindFunction
	// KindUnknown is produced when lowering encounters a syntactic type with
	// no recognizable base name; it is never hand-constructed elsewhere.
	KindUnknown
)

// Type is the canonical, nesting-normalized semantic type. Every variant
// carries IsConst. There are no cycles: each Type value is owned by exactly
// one AST node or symbol-table entry.
type Type struct {
	Kind    Kind
	IsConst bool

	// KindPrimitive
	Name string

	// KindPointer, KindArray
	Elem *Type

	// KindArray only. Size 0 means unspecified.
	Size int

	// KindFunction only.
	Return *Type // nil if the function returns nothing
	Params []*Type
}

// Primitive builds a primitive Type named name.
func Primitive(name string, isConst bool) *Type {
	return &Type{Kind: KindPrimitive, Name: name, IsConst: isConst}
}

// Pointer builds a pointer-to-elem Type.
func Pointer(elem *Type, isConst bool) *Type {
	return &Type{Kind: KindPointer, Elem: elem, IsConst: isConst}
}

// Array builds an array-of-elem Type with the given size (0 = unspecified).
func Array(elem *Type, size int, isConst bool) *Type {
	return &Type{Kind: KindArray, Elem: elem, Size: size, IsConst: isConst}
}

// Function builds a function Type. ret may be nil (no declared return type).
func Function(ret *Type, params []*Type, isConst bool) *Type {
	return &Type{Kind: KindFunction, Return: ret, Params: params, IsConst: isConst}
}

// Unknown builds the placeholder Type used when lowering can't determine a
// base name.
func Unknown(isConst bool) *Type {
	return &Type{Kind: KindUnknown, Name: "unknown", IsConst: isConst}
}

// String renders a deterministic textual form used by symbol dumps and
// tests: primitive names as-is, pointer(T), array(N, T) / array(T) when
// unspecified, and fn(P1, P2) -> R / fn(P1, P2) when there is no return
// type. A leading "const " marks IsConst.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	s := t.stringNoConst()
	if t.IsConst {
		return "const " + s
	}

	return s
}

func (t *Type) stringNoConst() string {
	switch t.Kind {
	case KindPrimitive:
		return t.Name
	case KindUnknown:
		return "unknown"
	case KindPointer:
		return fmt.Sprintf("pointer(%s)", t.Elem.String())
	case KindArray:
		if t.Size == 0 {
			return fmt.Sprintf("array(%s)", t.Elem.String())
		}

		return fmt.Sprintf("array(%d, %s)", t.Size, t.Elem.String())
	case KindFunction:
		params := make([]string, 0, len(t.Params))
		for _, p := range t.Params {
			params = append(params, p.String())
		}
		sig := fmt.Sprintf("fn(%s)", strings.Join(params, ", "))
		if t.Return != nil {
			return fmt.Sprintf("%s -> %s", sig, t.Return.String())
		}

		return sig
	default:
		return fmt.Sprintf("Type(kind=%d)", int(t.Kind))
	}
}

// Equal reports structural equality, ignoring neither IsConst nor nesting —
// two Types are Equal only if every field matches recursively. Used by the
// idempotence property in tests: lowering the same AstType twice must
// produce Equal results.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind || t.IsConst != o.IsConst {
		return false
	}

	switch t.Kind {
	case KindPrimitive, KindUnknown:
		return t.Name == o.Name
	case KindPointer:
		return t.Elem.Equal(o.Elem)
	case KindArray:
		return t.Size == o.Size && t.Elem.Equal(o.Elem)
	case KindFunction:
		if len(t.Params) != len(o.Params) {
			return false
		}
		for i := range t.Params {
			if !t.Params[i].Equal(o.Params[i]) {
				return false
			}
		}

		return t.Return.Equal(o.Return)
	default:
		return false
	}
}

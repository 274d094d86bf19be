package ast

// AstType is the syntactic type grammar's single record, covering all three
// cases from the type grammar: regular (a base name with suffixes), function
// (parameter/return types with suffixes on the function type itself), and
// grouped (parenthesized, to override suffix precedence).
//
// Suffixes are recorded in the order the grammar requires them to be applied
// during lowering: PreStars first (`*` suffixes before any `[`), then Dims
// (the `[...]` chain), then PostStars (trailing `*` after the dims). A
// suffix sequence that puts a `[` after such a trailing `*` is stored as a
// TypeGrouped record whose Inner holds the suffixes up to that point, so
// the left-to-right order is kept — see parser/types.go for how the buckets
// are populated suffix-by-suffix.
type AstType struct {
	baseNode

	// IsConst marks a `const` applied directly to this type's base (or, for
	// Grouped, to the group itself).
	IsConst bool

	// Kind discriminates the three AstType cases.
	Kind TypeKind

	// Regular case.
	BaseName string

	// Function case.
	Params []*AstType
	Return *AstType // nil if no '-> Type' was given

	// Grouped case.
	Inner *AstType

	// Suffixes, shared by all three cases.
	PreStars  int
	Dims      []*ArrayDim
	PostStars int
}

// TypeKind discriminates the AstType cases.
type TypeKind int

const (
	TypeRegular TypeKind = iota
	TypeFunction
	TypeGrouped
)

// ArrayDim is one `[expr]` or `[]` dimension in a type's suffix chain.
// Unspecified marks the `[]` sentinel form; Expr is nil in that case.
type ArrayDim struct {
	Expr        Expr
	Unspecified bool
}


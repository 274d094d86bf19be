package ast

// VarDecl is `IDENT ':' 'const'? Type ('=' (Expr | InitList))?`. It is used
// both as a top-level declaration and, wrapped in VarDeclStmt, inside a
// block or a for-loop initializer.
type VarDecl struct {
	baseNode
	Name string
	Type *AstType
	// Init is nil, an Expr, or an *InitList.
	Init Expr
}

func (d *VarDecl) declNode() {}

// Param is one `IDENT ':' Type` entry in a function's parameter list.
type Param struct {
	baseNode
	Name string
	Type *AstType
}

// FuncDecl is `'fn' IDENT '(' ParamList? ')' ('->' Type)? Block`.
type FuncDecl struct {
	baseNode
	Name   string
	Params []*Param
	Return *AstType // nil if no '-> Type' was given
	Body   *Block
}

func (d *FuncDecl) declNode() {}

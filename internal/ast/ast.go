// Package ast defines the abstract syntax tree produced by the parser.
//
// Every node is a tagged sum member: a small struct embedding baseNode for
// position tracking and a SemInfo slot reserved for the (currently minimal)
// semantic pass. There is no node interface hierarchy beyond Node itself —
// callers type-switch on the concrete pointer types, which keeps the tree a
// plain data structure with no virtual dispatch to get in the way of a
// future semantic pass.
package ast

import "github.com/sigil-lang/sigilc/internal/types"

// Pos is a 1-based source position.
type Pos struct {
	Line int
	Col  int
}

// Node is implemented by every AST node.
type Node interface {
	Position() Pos
}

// SemInfo holds the two semantic-analysis slots every node carries,
// initialized empty and populated by passes this front end does not
// implement (constant folding, name resolution). Nothing in this front end
// fills either slot today: lowered types are kept on symbol-table entries,
// not on AST nodes.
type SemInfo struct {
	IsConstExpr bool
	SemType     *types.Type
}

type baseNode struct {
	Pos Pos
	SemInfo
}

func (n baseNode) Position() Pos { return n.Pos }

// SetPos stamps a node's position after construction. Every node type
// embeds baseNode anonymously, so this promotes onto every *Node the parser
// builds (e.g. `lit := &IntLit{Value: v}; lit.SetPos(Pos{...})`), which is
// the only way an external package can populate the unexported baseNode
// field.
func (n *baseNode) SetPos(p Pos) { n.Pos = p }

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is implemented by every top-level declaration node.
type Decl interface {
	Node
	declNode()
}

// Program is the root of the tree: an ordered list of top-level
// declarations (functions and variables).
type Program struct {
	baseNode
	Decls []Decl
}

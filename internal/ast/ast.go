// Package ast defines the tree produced by the parser.
//
// Every node is a plain struct carrying its ESTree type tag and byte
// span; the parser allocates all nodes and node slices from one arena,
// so a whole tree is a set of stable addresses inside a single region.
// Field order is load-bearing: the JSON and msgpack encoders emit fields
// in declaration order, and the schema introspector reports them the
// same way.
package ast

// Expr is implemented by every expression node.
type Expr interface{ exprNode() }

// Stmt is implemented by every statement and declaration node.
type Stmt interface{ stmtNode() }

// Node is used where the grammar admits several node classes
// (for-loop init, arrow bodies).
type Node any

// Program is the tree root.
type Program struct {
	Type       string `json:"type" msgpack:"type"`
	Start      uint32 `json:"start" msgpack:"start"`
	End        uint32 `json:"end" msgpack:"end"`
	SourceType string `json:"sourceType" msgpack:"sourceType"`
	Body       []Stmt `json:"body" msgpack:"body"`
}

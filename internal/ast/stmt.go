package ast

type VariableDeclaration struct {
	Type         string                `json:"type" msgpack:"type"`
	Start        uint32                `json:"start" msgpack:"start"`
	End          uint32                `json:"end" msgpack:"end"`
	Kind         string                `json:"kind" msgpack:"kind"` // var | let | const
	Declarations []*VariableDeclarator `json:"declarations" msgpack:"declarations"`
}

type VariableDeclarator struct {
	Type  string `json:"type" msgpack:"type"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
	ID    Expr   `json:"id" msgpack:"id"`
	Init  Expr   `json:"init" msgpack:"init"`
}

type FunctionDeclaration struct {
	Type   string          `json:"type" msgpack:"type"`
	Start  uint32          `json:"start" msgpack:"start"`
	End    uint32          `json:"end" msgpack:"end"`
	ID     *Identifier     `json:"id" msgpack:"id"`
	Params []Expr          `json:"params" msgpack:"params"`
	Body   *BlockStatement `json:"body" msgpack:"body"`
}

type BlockStatement struct {
	Type  string `json:"type" msgpack:"type"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
	Body  []Stmt `json:"body" msgpack:"body"`
}

type ExpressionStatement struct {
	Type       string `json:"type" msgpack:"type"`
	Start      uint32 `json:"start" msgpack:"start"`
	End        uint32 `json:"end" msgpack:"end"`
	Expression Expr   `json:"expression" msgpack:"expression"`
}

type ReturnStatement struct {
	Type     string `json:"type" msgpack:"type"`
	Start    uint32 `json:"start" msgpack:"start"`
	End      uint32 `json:"end" msgpack:"end"`
	Argument Expr   `json:"argument" msgpack:"argument"`
}

type IfStatement struct {
	Type       string `json:"type" msgpack:"type"`
	Start      uint32 `json:"start" msgpack:"start"`
	End        uint32 `json:"end" msgpack:"end"`
	Test       Expr   `json:"test" msgpack:"test"`
	Consequent Stmt   `json:"consequent" msgpack:"consequent"`
	Alternate  Stmt   `json:"alternate" msgpack:"alternate"`
}

type WhileStatement struct {
	Type  string `json:"type" msgpack:"type"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
	Test  Expr   `json:"test" msgpack:"test"`
	Body  Stmt   `json:"body" msgpack:"body"`
}

type DoWhileStatement struct {
	Type  string `json:"type" msgpack:"type"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
	Body  Stmt   `json:"body" msgpack:"body"`
	Test  Expr   `json:"test" msgpack:"test"`
}

type ForStatement struct {
	Type   string `json:"type" msgpack:"type"`
	Start  uint32 `json:"start" msgpack:"start"`
	End    uint32 `json:"end" msgpack:"end"`
	Init   Node   `json:"init" msgpack:"init"` // VariableDeclaration | Expr | nil
	Test   Expr   `json:"test" msgpack:"test"`
	Update Expr   `json:"update" msgpack:"update"`
	Body   Stmt   `json:"body" msgpack:"body"`
}

type BreakStatement struct {
	Type  string      `json:"type" msgpack:"type"`
	Start uint32      `json:"start" msgpack:"start"`
	End   uint32      `json:"end" msgpack:"end"`
	Label *Identifier `json:"label" msgpack:"label"`
}

type ContinueStatement struct {
	Type  string      `json:"type" msgpack:"type"`
	Start uint32      `json:"start" msgpack:"start"`
	End   uint32      `json:"end" msgpack:"end"`
	Label *Identifier `json:"label" msgpack:"label"`
}

type ThrowStatement struct {
	Type     string `json:"type" msgpack:"type"`
	Start    uint32 `json:"start" msgpack:"start"`
	End      uint32 `json:"end" msgpack:"end"`
	Argument Expr   `json:"argument" msgpack:"argument"`
}

type EmptyStatement struct {
	Type  string `json:"type" msgpack:"type"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

type DebuggerStatement struct {
	Type  string `json:"type" msgpack:"type"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

type ImportDeclaration struct {
	Type       string   `json:"type" msgpack:"type"`
	Start      uint32   `json:"start" msgpack:"start"`
	End        uint32   `json:"end" msgpack:"end"`
	Specifiers []Node   `json:"specifiers" msgpack:"specifiers"`
	Source     *Literal `json:"source" msgpack:"source"`
}

type ImportDefaultSpecifier struct {
	Type  string      `json:"type" msgpack:"type"`
	Start uint32      `json:"start" msgpack:"start"`
	End   uint32      `json:"end" msgpack:"end"`
	Local *Identifier `json:"local" msgpack:"local"`
}

type ImportSpecifier struct {
	Type     string      `json:"type" msgpack:"type"`
	Start    uint32      `json:"start" msgpack:"start"`
	End      uint32      `json:"end" msgpack:"end"`
	Imported *Identifier `json:"imported" msgpack:"imported"`
	Local    *Identifier `json:"local" msgpack:"local"`
}

type ExportNamedDeclaration struct {
	Type        string `json:"type" msgpack:"type"`
	Start       uint32 `json:"start" msgpack:"start"`
	End         uint32 `json:"end" msgpack:"end"`
	Declaration Stmt   `json:"declaration" msgpack:"declaration"`
}

type ExportDefaultDeclaration struct {
	Type        string `json:"type" msgpack:"type"`
	Start       uint32 `json:"start" msgpack:"start"`
	End         uint32 `json:"end" msgpack:"end"`
	Declaration Node   `json:"declaration" msgpack:"declaration"`
}

func (*VariableDeclaration) stmtNode()      {}
func (*FunctionDeclaration) stmtNode()      {}
func (*BlockStatement) stmtNode()           {}
func (*ExpressionStatement) stmtNode()      {}
func (*ReturnStatement) stmtNode()          {}
func (*IfStatement) stmtNode()              {}
func (*WhileStatement) stmtNode()           {}
func (*DoWhileStatement) stmtNode()         {}
func (*ForStatement) stmtNode()             {}
func (*BreakStatement) stmtNode()           {}
func (*ContinueStatement) stmtNode()        {}
func (*ThrowStatement) stmtNode()           {}
func (*EmptyStatement) stmtNode()           {}
func (*DebuggerStatement) stmtNode()        {}
func (*ImportDeclaration) stmtNode()        {}
func (*ExportNamedDeclaration) stmtNode()   {}
func (*ExportDefaultDeclaration) stmtNode() {}

package ast

type Identifier struct {
	Type  string `json:"type" msgpack:"type"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
	Name  string `json:"name" msgpack:"name"`
}

// Literal covers numeric, string, boolean and null literals.
// Value holds float64, string, bool or nil; Raw aliases the source text.
type Literal struct {
	Type  string `json:"type" msgpack:"type"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
	Value any    `json:"value" msgpack:"value"`
	Raw   string `json:"raw" msgpack:"raw"`
}

type ThisExpression struct {
	Type  string `json:"type" msgpack:"type"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

type ArrayExpression struct {
	Type     string `json:"type" msgpack:"type"`
	Start    uint32 `json:"start" msgpack:"start"`
	End      uint32 `json:"end" msgpack:"end"`
	Elements []Expr `json:"elements" msgpack:"elements"` // nil entries are holes
}

type ObjectExpression struct {
	Type       string      `json:"type" msgpack:"type"`
	Start      uint32      `json:"start" msgpack:"start"`
	End        uint32      `json:"end" msgpack:"end"`
	Properties []*Property `json:"properties" msgpack:"properties"`
}

type Property struct {
	Type      string `json:"type" msgpack:"type"`
	Start     uint32 `json:"start" msgpack:"start"`
	End       uint32 `json:"end" msgpack:"end"`
	Key       Expr   `json:"key" msgpack:"key"`
	Value     Expr   `json:"value" msgpack:"value"`
	Kind      string `json:"kind" msgpack:"kind"` // always "init" in this subset
	Computed  bool   `json:"computed" msgpack:"computed"`
	Shorthand bool   `json:"shorthand" msgpack:"shorthand"`
}

type FunctionExpression struct {
	Type   string          `json:"type" msgpack:"type"`
	Start  uint32          `json:"start" msgpack:"start"`
	End    uint32          `json:"end" msgpack:"end"`
	ID     *Identifier     `json:"id" msgpack:"id"`
	Params []Expr          `json:"params" msgpack:"params"`
	Body   *BlockStatement `json:"body" msgpack:"body"`
}

type ArrowFunctionExpression struct {
	Type       string `json:"type" msgpack:"type"`
	Start      uint32 `json:"start" msgpack:"start"`
	End        uint32 `json:"end" msgpack:"end"`
	Params     []Expr `json:"params" msgpack:"params"`
	Body       Node   `json:"body" msgpack:"body"` // BlockStatement | Expr
	Expression bool   `json:"expression" msgpack:"expression"`
}

type UnaryExpression struct {
	Type     string `json:"type" msgpack:"type"`
	Start    uint32 `json:"start" msgpack:"start"`
	End      uint32 `json:"end" msgpack:"end"`
	Operator string `json:"operator" msgpack:"operator"`
	Prefix   bool   `json:"prefix" msgpack:"prefix"`
	Argument Expr   `json:"argument" msgpack:"argument"`
}

type UpdateExpression struct {
	Type     string `json:"type" msgpack:"type"`
	Start    uint32 `json:"start" msgpack:"start"`
	End      uint32 `json:"end" msgpack:"end"`
	Operator string `json:"operator" msgpack:"operator"`
	Prefix   bool   `json:"prefix" msgpack:"prefix"`
	Argument Expr   `json:"argument" msgpack:"argument"`
}

type BinaryExpression struct {
	Type     string `json:"type" msgpack:"type"`
	Start    uint32 `json:"start" msgpack:"start"`
	End      uint32 `json:"end" msgpack:"end"`
	Operator string `json:"operator" msgpack:"operator"`
	Left     Expr   `json:"left" msgpack:"left"`
	Right    Expr   `json:"right" msgpack:"right"`
}

type LogicalExpression struct {
	Type     string `json:"type" msgpack:"type"`
	Start    uint32 `json:"start" msgpack:"start"`
	End      uint32 `json:"end" msgpack:"end"`
	Operator string `json:"operator" msgpack:"operator"`
	Left     Expr   `json:"left" msgpack:"left"`
	Right    Expr   `json:"right" msgpack:"right"`
}

type AssignmentExpression struct {
	Type     string `json:"type" msgpack:"type"`
	Start    uint32 `json:"start" msgpack:"start"`
	End      uint32 `json:"end" msgpack:"end"`
	Operator string `json:"operator" msgpack:"operator"`
	Left     Expr   `json:"left" msgpack:"left"`
	Right    Expr   `json:"right" msgpack:"right"`
}

type ConditionalExpression struct {
	Type       string `json:"type" msgpack:"type"`
	Start      uint32 `json:"start" msgpack:"start"`
	End        uint32 `json:"end" msgpack:"end"`
	Test       Expr   `json:"test" msgpack:"test"`
	Consequent Expr   `json:"consequent" msgpack:"consequent"`
	Alternate  Expr   `json:"alternate" msgpack:"alternate"`
}

type CallExpression struct {
	Type      string `json:"type" msgpack:"type"`
	Start     uint32 `json:"start" msgpack:"start"`
	End       uint32 `json:"end" msgpack:"end"`
	Callee    Expr   `json:"callee" msgpack:"callee"`
	Arguments []Expr `json:"arguments" msgpack:"arguments"`
}

type NewExpression struct {
	Type      string `json:"type" msgpack:"type"`
	Start     uint32 `json:"start" msgpack:"start"`
	End       uint32 `json:"end" msgpack:"end"`
	Callee    Expr   `json:"callee" msgpack:"callee"`
	Arguments []Expr `json:"arguments" msgpack:"arguments"`
}

type MemberExpression struct {
	Type     string `json:"type" msgpack:"type"`
	Start    uint32 `json:"start" msgpack:"start"`
	End      uint32 `json:"end" msgpack:"end"`
	Object   Expr   `json:"object" msgpack:"object"`
	Property Expr   `json:"property" msgpack:"property"`
	Computed bool   `json:"computed" msgpack:"computed"`
}

type SequenceExpression struct {
	Type        string `json:"type" msgpack:"type"`
	Start       uint32 `json:"start" msgpack:"start"`
	End         uint32 `json:"end" msgpack:"end"`
	Expressions []Expr `json:"expressions" msgpack:"expressions"`
}

type SpreadElement struct {
	Type     string `json:"type" msgpack:"type"`
	Start    uint32 `json:"start" msgpack:"start"`
	End      uint32 `json:"end" msgpack:"end"`
	Argument Expr   `json:"argument" msgpack:"argument"`
}

// ParenthesizedExpression is only produced when the preserve-parens
// option is on; otherwise the inner expression is used directly.
type ParenthesizedExpression struct {
	Type       string `json:"type" msgpack:"type"`
	Start      uint32 `json:"start" msgpack:"start"`
	End        uint32 `json:"end" msgpack:"end"`
	Expression Expr   `json:"expression" msgpack:"expression"`
}

func (*Identifier) exprNode()              {}
func (*Literal) exprNode()                 {}
func (*ThisExpression) exprNode()          {}
func (*ArrayExpression) exprNode()         {}
func (*ObjectExpression) exprNode()        {}
func (*FunctionExpression) exprNode()      {}
func (*ArrowFunctionExpression) exprNode() {}
func (*UnaryExpression) exprNode()         {}
func (*UpdateExpression) exprNode()        {}
func (*BinaryExpression) exprNode()        {}
func (*LogicalExpression) exprNode()       {}
func (*AssignmentExpression) exprNode()    {}
func (*ConditionalExpression) exprNode()   {}
func (*CallExpression) exprNode()          {}
func (*NewExpression) exprNode()           {}
func (*MemberExpression) exprNode()        {}
func (*SequenceExpression) exprNode()      {}
func (*SpreadElement) exprNode()           {}
func (*ParenthesizedExpression) exprNode() {}

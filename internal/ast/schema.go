package ast

import (
	"reflect"
	"strings"
)

// FieldDef describes one serialized field of a node type.
type FieldDef struct {
	Name string `json:"name" msgpack:"name"`
	Type string `json:"type" msgpack:"type"`
}

// TypeDef describes one node type's serialized shape.
type TypeDef struct {
	Name   string     `json:"name" msgpack:"name"`
	Fields []FieldDef `json:"fields" msgpack:"fields"`
}

// nodeTypes is the registry the schema is derived from. Order matches
// the declaration order in this package.
var nodeTypes = []any{
	Program{},
	VariableDeclaration{},
	VariableDeclarator{},
	FunctionDeclaration{},
	BlockStatement{},
	ExpressionStatement{},
	ReturnStatement{},
	IfStatement{},
	WhileStatement{},
	DoWhileStatement{},
	ForStatement{},
	BreakStatement{},
	ContinueStatement{},
	ThrowStatement{},
	EmptyStatement{},
	DebuggerStatement{},
	ImportDeclaration{},
	ImportDefaultSpecifier{},
	ImportSpecifier{},
	ExportNamedDeclaration{},
	ExportDefaultDeclaration{},
	Identifier{},
	Literal{},
	ThisExpression{},
	ArrayExpression{},
	ObjectExpression{},
	Property{},
	FunctionExpression{},
	ArrowFunctionExpression{},
	UnaryExpression{},
	UpdateExpression{},
	BinaryExpression{},
	LogicalExpression{},
	AssignmentExpression{},
	ConditionalExpression{},
	CallExpression{},
	NewExpression{},
	MemberExpression{},
	SequenceExpression{},
	SpreadElement{},
	ParenthesizedExpression{},
}

// Schema enumerates every node kind's field names and field types.
// It is a pure function of the compiled node definitions and is
// independent of any parse.
func Schema() []TypeDef {
	defs := make([]TypeDef, 0, len(nodeTypes))
	for _, n := range nodeTypes {
		t := reflect.TypeOf(n)
		def := TypeDef{Name: t.Name(), Fields: make([]FieldDef, 0, t.NumField())}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name := f.Tag.Get("json")
			if idx := strings.IndexByte(name, ','); idx >= 0 {
				name = name[:idx]
			}
			if name == "" {
				name = f.Name
			}
			def.Fields = append(def.Fields, FieldDef{Name: name, Type: fieldType(f.Type)})
		}
		defs = append(defs, def)
	}
	return defs
}

// fieldType renders a field's type in schema vocabulary rather than Go
// type syntax, so decoders on the other side of the boundary do not need
// to know this package's import path.
func fieldType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return fieldType(t.Elem())
	case reflect.Slice:
		return "[]" + fieldType(t.Elem())
	case reflect.Interface:
		switch t.Name() {
		case "Expr":
			return "expression"
		case "Stmt":
			return "statement"
		}
		return "node"
	case reflect.String:
		return "str"
	case reflect.Bool:
		return "bool"
	case reflect.Uint32:
		return "u32"
	default:
		return t.Name()
	}
}

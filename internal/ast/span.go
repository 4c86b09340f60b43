package ast

// StartOf returns the start offset of any node, or 0 for nil.
func StartOf(n Node) uint32 {
	s, _ := spanOf(n)
	return s
}

// EndOf returns the end offset of any node, or 0 for nil.
func EndOf(n Node) uint32 {
	_, e := spanOf(n)
	return e
}

func spanOf(n Node) (uint32, uint32) {
	switch v := n.(type) {
	case *Program:
		return v.Start, v.End
	case *VariableDeclaration:
		return v.Start, v.End
	case *VariableDeclarator:
		return v.Start, v.End
	case *FunctionDeclaration:
		return v.Start, v.End
	case *BlockStatement:
		return v.Start, v.End
	case *ExpressionStatement:
		return v.Start, v.End
	case *ReturnStatement:
		return v.Start, v.End
	case *IfStatement:
		return v.Start, v.End
	case *WhileStatement:
		return v.Start, v.End
	case *DoWhileStatement:
		return v.Start, v.End
	case *ForStatement:
		return v.Start, v.End
	case *BreakStatement:
		return v.Start, v.End
	case *ContinueStatement:
		return v.Start, v.End
	case *ThrowStatement:
		return v.Start, v.End
	case *EmptyStatement:
		return v.Start, v.End
	case *DebuggerStatement:
		return v.Start, v.End
	case *ImportDeclaration:
		return v.Start, v.End
	case *ImportDefaultSpecifier:
		return v.Start, v.End
	case *ImportSpecifier:
		return v.Start, v.End
	case *ExportNamedDeclaration:
		return v.Start, v.End
	case *ExportDefaultDeclaration:
		return v.Start, v.End
	case *Identifier:
		return v.Start, v.End
	case *Literal:
		return v.Start, v.End
	case *ThisExpression:
		return v.Start, v.End
	case *ArrayExpression:
		return v.Start, v.End
	case *ObjectExpression:
		return v.Start, v.End
	case *Property:
		return v.Start, v.End
	case *FunctionExpression:
		return v.Start, v.End
	case *ArrowFunctionExpression:
		return v.Start, v.End
	case *UnaryExpression:
		return v.Start, v.End
	case *UpdateExpression:
		return v.Start, v.End
	case *BinaryExpression:
		return v.Start, v.End
	case *LogicalExpression:
		return v.Start, v.End
	case *AssignmentExpression:
		return v.Start, v.End
	case *ConditionalExpression:
		return v.Start, v.End
	case *CallExpression:
		return v.Start, v.End
	case *NewExpression:
		return v.Start, v.End
	case *MemberExpression:
		return v.Start, v.End
	case *SequenceExpression:
		return v.Start, v.End
	case *SpreadElement:
		return v.Start, v.End
	case *ParenthesizedExpression:
		return v.Start, v.End
	}
	return 0, 0
}

package ast

// Walk traverses the AST starting from node in source order, calling fn for each node.
// If fn returns false, Walk does not descend into that node's children.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *CompilationUnit:
		for _, class := range n.Classes {
			Walk(class, fn)
		}

	case *ClassDecl:
		for _, field := range n.Fields {
			Walk(field, fn)
		}
		for _, method := range n.Methods {
			Walk(method, fn)
		}

	case *FieldDecl:
		Walk(n.Type, fn)

	case *MethodDecl:
		Walk(n.Header, fn)
		for _, param := range n.Parameters {
			Walk(param, fn)
		}
		walkStatements(n.Body, fn)

	case *ParameterDecl:
		Walk(n.Type, fn)

	case *VarDecl:
		Walk(n.Type, fn)

	case *ArrayType:
		Walk(n.Element, fn)

	case *BlockStmt:
		walkStatements(n.Statements, fn)

	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *IfStmt:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		if n.Else != nil {
			Walk(n.Else, fn)
		}

	case *WhileStmt:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)

	case *VarDeclStmt:
		Walk(n.Decl, fn)
		Walk(n.Init, fn)

	case *AssignStmt:
		Walk(n.Ref, fn)
		Walk(n.Value, fn)

	case *IxAssignStmt:
		Walk(n.Ref, fn)
		Walk(n.Index, fn)
		Walk(n.Value, fn)

	case *CallStmt:
		Walk(n.Method, fn)
		walkExpressions(n.Args, fn)

	case *LiteralExpr:
		Walk(n.Literal, fn)

	case *RefExpr:
		Walk(n.Ref, fn)

	case *UnaryExpr:
		Walk(n.Op, fn)
		Walk(n.Operand, fn)

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Op, fn)
		Walk(n.Right, fn)

	case *IxExpr:
		Walk(n.Ref, fn)
		Walk(n.Index, fn)

	case *CallExpr:
		Walk(n.Method, fn)
		walkExpressions(n.Args, fn)

	case *NewObjectExpr:
		Walk(n.Class, fn)

	case *NewArrayExpr:
		Walk(n.Element, fn)
		Walk(n.Size, fn)

	case *QualRef:
		Walk(n.Base, fn)

	// Leaf nodes: BaseType, ClassType, ThisRef, IdRef, IntLiteral, BooleanLiteral, Operator
	default:
	}
}

func walkStatements(stmts []Statement, fn func(Node) bool) {
	for _, stmt := range stmts {
		Walk(stmt, fn)
	}
}

func walkExpressions(exprs []Expression, fn func(Node) bool) {
	for _, expr := range exprs {
		Walk(expr, fn)
	}
}

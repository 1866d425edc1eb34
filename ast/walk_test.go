package ast

import (
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestWalkVisitsInSourceOrder(t *testing.T) {
	var kinds []string
	Walk(sampleUnit(), func(node Node) bool {
		kinds = append(kinds, fmt.Sprintf("%T", node))
		return true
	})

	assert.Equal(t, []string{
		"*ast.CompilationUnit",
		"*ast.ClassDecl",
		"*ast.FieldDecl",
		"*ast.ArrayType",
		"*ast.BaseType",
		"*ast.MethodDecl",
		"*ast.FieldDecl",
		"*ast.BaseType",
		"*ast.ParameterDecl",
		"*ast.BaseType",
		"*ast.IxAssignStmt",
		"*ast.IdRef",
		"*ast.LiteralExpr",
		"*ast.IntLiteral",
		"*ast.BinaryExpr",
		"*ast.RefExpr",
		"*ast.IdRef",
		"*ast.Operator",
		"*ast.LiteralExpr",
		"*ast.IntLiteral",
		"*ast.ReturnStmt",
	}, kinds)
}

func TestWalkPositionsAreMonotonic(t *testing.T) {
	var prev Node
	Walk(sampleUnit(), func(node Node) bool {
		if prev != nil {
			assert.False(t, node.Pos().Before(prev.Pos()), "%T at %s precedes %T at %s", node, node.Pos(), prev, prev.Pos())
		}
		prev = node
		return true
	})
}

func TestWalkSkipsChildren(t *testing.T) {
	count := 0
	Walk(sampleUnit(), func(node Node) bool {
		count++
		_, isMethod := node.(*MethodDecl)
		return !isMethod
	})

	// unit, class, field, array type, element type, method
	assert.Equal(t, 6, count)
}

func TestWalkNil(t *testing.T) {
	called := false
	Walk(nil, func(Node) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestWalkOptionalChildren(t *testing.T) {
	cond := &LiteralExpr{Literal: &BooleanLiteral{Value: true}}
	stmt := &IfStmt{Cond: cond, Then: &BlockStmt{}}

	var kinds []string
	Walk(stmt, func(node Node) bool {
		kinds = append(kinds, fmt.Sprintf("%T", node))
		return true
	})

	assert.Equal(t, []string{"*ast.IfStmt", "*ast.LiteralExpr", "*ast.BooleanLiteral", "*ast.BlockStmt"}, kinds)
}

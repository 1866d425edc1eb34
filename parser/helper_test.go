package parser

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/sgagou3/MiniJava/ast"
)

// sexpr renders statements and expressions compactly so tests can compare tree shapes.
func sexpr(node ast.Node) string {
	switch n := node.(type) {
	case *ast.LiteralExpr:
		return n.Literal.Spelling()
	case *ast.RefExpr:
		return ast.RefString(n.Ref)
	case *ast.UnaryExpr:
		return "(" + n.Op.Spelling + " " + sexpr(n.Operand) + ")"
	case *ast.BinaryExpr:
		return "(" + n.Op.Spelling + " " + sexpr(n.Left) + " " + sexpr(n.Right) + ")"
	case *ast.IxExpr:
		return "(ix " + ast.RefString(n.Ref) + " " + sexpr(n.Index) + ")"
	case *ast.CallExpr:
		return "(call " + ast.RefString(n.Method) + args(n.Args) + ")"
	case *ast.NewObjectExpr:
		return "(new " + n.Class.Name + ")"
	case *ast.NewArrayExpr:
		return "(new-array " + ast.TypeString(n.Element) + " " + sexpr(n.Size) + ")"

	case *ast.BlockStmt:
		parts := []string{"block"}
		for _, stmt := range n.Statements {
			parts = append(parts, sexpr(stmt))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *ast.ReturnStmt:
		if n.Value == nil {
			return "(return)"
		}
		return "(return " + sexpr(n.Value) + ")"
	case *ast.IfStmt:
		if n.Else == nil {
			return "(if " + sexpr(n.Cond) + " " + sexpr(n.Then) + ")"
		}
		return "(if " + sexpr(n.Cond) + " " + sexpr(n.Then) + " " + sexpr(n.Else) + ")"
	case *ast.WhileStmt:
		return "(while " + sexpr(n.Cond) + " " + sexpr(n.Body) + ")"
	case *ast.VarDeclStmt:
		return "(var " + ast.TypeString(n.Decl.Type) + " " + n.Decl.Name + " " + sexpr(n.Init) + ")"
	case *ast.AssignStmt:
		return "(assign " + ast.RefString(n.Ref) + " " + sexpr(n.Value) + ")"
	case *ast.IxAssignStmt:
		return "(ixassign " + ast.RefString(n.Ref) + " " + sexpr(n.Index) + " " + sexpr(n.Value) + ")"
	case *ast.CallStmt:
		return "(callstmt " + ast.RefString(n.Method) + args(n.Args) + ")"
	default:
		return "?"
	}
}

func args(exprs []ast.Expression) string {
	var sb strings.Builder
	for _, expr := range exprs {
		sb.WriteString(" ")
		sb.WriteString(sexpr(expr))
	}
	return sb.String()
}

// parseBody parses stmts as the body of a method and returns the statements
func parseBody(t *testing.T, stmts string) []ast.Statement {
	t.Helper()

	unit, err := ParseString("class A { void m() { " + stmts + " } }")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(unit.Classes))
	assert.Equal(t, 1, len(unit.Classes[0].Methods))

	return unit.Classes[0].Methods[0].Body
}

// parseExpr parses src as the right-hand side of an assignment
func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()

	body := parseBody(t, "x = "+src+";")
	assert.Equal(t, 1, len(body))

	assign, ok := body[0].(*ast.AssignStmt)
	assert.True(t, ok)

	return assign.Value
}

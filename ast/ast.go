// Package ast defines the abstract syntax tree produced by the parser.
//
// The hierarchy is closed: every interface below carries an unexported marker
// method, so only the types in this package satisfy it.
//
//	Node
//	  CompilationUnit, ClassDecl, FieldDecl, MethodDecl, ParameterDecl, VarDecl, Operator
//	  TypeDenoter: BaseType, ClassType, ArrayType
//	  Statement:   BlockStmt, ReturnStmt, IfStmt, WhileStmt, VarDeclStmt,
//	               AssignStmt, IxAssignStmt, CallStmt
//	  Expression:  LiteralExpr, RefExpr, UnaryExpr, BinaryExpr, IxExpr,
//	               CallExpr, NewObjectExpr, NewArrayExpr
//	  Reference:   ThisRef, IdRef, QualRef
//	  Literal:     IntLiteral, BooleanLiteral
//
// Every node records the position of the first token of its construct.
// Nodes are built once by the parser and are not modified afterwards.
package ast

import "github.com/sgagou3/MiniJava/scanner"

// Node is implemented by every AST node.
type Node interface {
	Pos() scanner.Position
}

// TypeDenoter is a declared type.
type TypeDenoter interface {
	Node
	typeDenoter()
}

// Statement is a statement inside a method body.
type Statement interface {
	Node
	statement()
}

// Expression is a value-producing expression.
type Expression interface {
	Node
	expression()
}

// Reference names a variable, field or method: this, x or a.b.c.
type Reference interface {
	Node
	reference()
}

// Literal is an integer or boolean literal.
type Literal interface {
	Node
	literal()
	Spelling() string
}

// CompilationUnit is the root of the tree.
type CompilationUnit struct {
	Classes  []*ClassDecl
	Position scanner.Position
}

type ClassDecl struct {
	Name     string
	Fields   []*FieldDecl
	Methods  []*MethodDecl
	Position scanner.Position
}

// Visibility of a class member. Members are public unless declared private.
type Visibility int

const (
	Public Visibility = iota
	Private
)

func (v Visibility) String() string {
	if v == Private {
		return "private"
	}
	return "public"
}

// FieldDecl declares a field. It also serves as the header of a MethodDecl.
type FieldDecl struct {
	Visibility Visibility
	IsStatic   bool
	Type       TypeDenoter
	Name       string
	Position   scanner.Position
}

type MethodDecl struct {
	Header     *FieldDecl
	Parameters []*ParameterDecl
	Body       []Statement
	Position   scanner.Position
}

type ParameterDecl struct {
	Type     TypeDenoter
	Name     string
	Position scanner.Position
}

// VarDecl declares a local variable.
type VarDecl struct {
	Type     TypeDenoter
	Name     string
	Position scanner.Position
}

// Operator is a unary or binary operator with the position of its own token.
type Operator struct {
	Spelling string
	Position scanner.Position
}

func (n *CompilationUnit) Pos() scanner.Position { return n.Position }
func (n *ClassDecl) Pos() scanner.Position       { return n.Position }
func (n *FieldDecl) Pos() scanner.Position       { return n.Position }
func (n *MethodDecl) Pos() scanner.Position      { return n.Position }
func (n *ParameterDecl) Pos() scanner.Position   { return n.Position }
func (n *VarDecl) Pos() scanner.Position         { return n.Position }
func (n *Operator) Pos() scanner.Position        { return n.Position }

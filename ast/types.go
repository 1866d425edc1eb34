package ast

import "github.com/sgagou3/MiniJava/scanner"

// TypeKind identifies a primitive type.
type TypeKind int

const (
	Int TypeKind = iota
	Boolean
	Void
)

func (k TypeKind) String() string {
	switch k {
	case Int:
		return "int"
	case Boolean:
		return "boolean"
	case Void:
		return "void"
	default:
		return "unknown"
	}
}

// BaseType is int, boolean or void.
type BaseType struct {
	Kind     TypeKind
	Position scanner.Position
}

// ClassType names a class.
type ClassType struct {
	Name     string
	Position scanner.Position
}

// ArrayType is a one-dimensional array of Element.
type ArrayType struct {
	Element  TypeDenoter
	Position scanner.Position
}

func (n *BaseType) Pos() scanner.Position  { return n.Position }
func (n *ClassType) Pos() scanner.Position { return n.Position }
func (n *ArrayType) Pos() scanner.Position { return n.Position }

func (*BaseType) typeDenoter()  {}
func (*ClassType) typeDenoter() {}
func (*ArrayType) typeDenoter() {}

// TypeString renders t the way it is written in source, e.g. "int[]".
func TypeString(t TypeDenoter) string {
	switch t := t.(type) {
	case *BaseType:
		return t.Kind.String()
	case *ClassType:
		return t.Name
	case *ArrayType:
		return TypeString(t.Element) + "[]"
	default:
		return "?"
	}
}

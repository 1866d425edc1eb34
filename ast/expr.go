package ast

import "github.com/sgagou3/MiniJava/scanner"

// IntLiteral keeps the digits as written; range checking happens later, if ever.
type IntLiteral struct {
	Digits   string
	Position scanner.Position
}

type BooleanLiteral struct {
	Value    bool
	Position scanner.Position
}

func (n *IntLiteral) Pos() scanner.Position     { return n.Position }
func (n *BooleanLiteral) Pos() scanner.Position { return n.Position }

func (*IntLiteral) literal()     {}
func (*BooleanLiteral) literal() {}

func (n *IntLiteral) Spelling() string { return n.Digits }

func (n *BooleanLiteral) Spelling() string {
	if n.Value {
		return "true"
	}
	return "false"
}

type LiteralExpr struct {
	Literal  Literal
	Position scanner.Position
}

// RefExpr is a reference used as a value.
type RefExpr struct {
	Ref      Reference
	Position scanner.Position
}

// UnaryExpr is a prefix - or !.
type UnaryExpr struct {
	Op       *Operator
	Operand  Expression
	Position scanner.Position
}

type BinaryExpr struct {
	Op       *Operator
	Left     Expression
	Right    Expression
	Position scanner.Position
}

// IxExpr is Ref[Index].
type IxExpr struct {
	Ref      Reference
	Index    Expression
	Position scanner.Position
}

type CallExpr struct {
	Method   Reference
	Args     []Expression
	Position scanner.Position
}

// NewObjectExpr is new Class().
type NewObjectExpr struct {
	Class    *ClassType
	Position scanner.Position
}

// NewArrayExpr is new int[Size] or new Class[Size].
type NewArrayExpr struct {
	Element  TypeDenoter
	Size     Expression
	Position scanner.Position
}

func (n *LiteralExpr) Pos() scanner.Position   { return n.Position }
func (n *RefExpr) Pos() scanner.Position       { return n.Position }
func (n *UnaryExpr) Pos() scanner.Position     { return n.Position }
func (n *BinaryExpr) Pos() scanner.Position    { return n.Position }
func (n *IxExpr) Pos() scanner.Position        { return n.Position }
func (n *CallExpr) Pos() scanner.Position      { return n.Position }
func (n *NewObjectExpr) Pos() scanner.Position { return n.Position }
func (n *NewArrayExpr) Pos() scanner.Position  { return n.Position }

func (*LiteralExpr) expression()   {}
func (*RefExpr) expression()       {}
func (*UnaryExpr) expression()     {}
func (*BinaryExpr) expression()    {}
func (*IxExpr) expression()        {}
func (*CallExpr) expression()      {}
func (*NewObjectExpr) expression() {}
func (*NewArrayExpr) expression()  {}

type ThisRef struct {
	Position scanner.Position
}

type IdRef struct {
	Name     string
	Position scanner.Position
}

// QualRef is Base.Name. Chains grow to the right: a.b.c is QualRef(QualRef(a, b), c).
type QualRef struct {
	Base     Reference
	Name     string
	Position scanner.Position
}

func (n *ThisRef) Pos() scanner.Position { return n.Position }
func (n *IdRef) Pos() scanner.Position   { return n.Position }
func (n *QualRef) Pos() scanner.Position { return n.Position }

func (*ThisRef) reference() {}
func (*IdRef) reference()   {}
func (*QualRef) reference() {}

// RefString renders r the way it is written in source, e.g. "this.a.b".
func RefString(r Reference) string {
	switch r := r.(type) {
	case *ThisRef:
		return "this"
	case *IdRef:
		return r.Name
	case *QualRef:
		return RefString(r.Base) + "." + r.Name
	default:
		return "?"
	}
}

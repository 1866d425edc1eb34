package ast

import "github.com/sgagou3/MiniJava/scanner"

// BlockStmt is { statements }.
type BlockStmt struct {
	Statements []Statement
	Position   scanner.Position
}

// ReturnStmt is return with an optional value; Value is nil for a bare return.
type ReturnStmt struct {
	Value    Expression
	Position scanner.Position
}

// IfStmt is if (Cond) Then else Else; Else is nil when absent.
type IfStmt struct {
	Cond     Expression
	Then     Statement
	Else     Statement
	Position scanner.Position
}

type WhileStmt struct {
	Cond     Expression
	Body     Statement
	Position scanner.Position
}

// VarDeclStmt declares a local variable with a mandatory initializer.
type VarDeclStmt struct {
	Decl     *VarDecl
	Init     Expression
	Position scanner.Position
}

// AssignStmt is Ref = Value;
type AssignStmt struct {
	Ref      Reference
	Value    Expression
	Position scanner.Position
}

// IxAssignStmt is Ref[Index] = Value;
type IxAssignStmt struct {
	Ref      Reference
	Index    Expression
	Value    Expression
	Position scanner.Position
}

// CallStmt is Method(Args);
type CallStmt struct {
	Method   Reference
	Args     []Expression
	Position scanner.Position
}

func (n *BlockStmt) Pos() scanner.Position    { return n.Position }
func (n *ReturnStmt) Pos() scanner.Position   { return n.Position }
func (n *IfStmt) Pos() scanner.Position       { return n.Position }
func (n *WhileStmt) Pos() scanner.Position    { return n.Position }
func (n *VarDeclStmt) Pos() scanner.Position  { return n.Position }
func (n *AssignStmt) Pos() scanner.Position   { return n.Position }
func (n *IxAssignStmt) Pos() scanner.Position { return n.Position }
func (n *CallStmt) Pos() scanner.Position     { return n.Position }

func (*BlockStmt) statement()    {}
func (*ReturnStmt) statement()   {}
func (*IfStmt) statement()       {}
func (*WhileStmt) statement()    {}
func (*VarDeclStmt) statement()  {}
func (*AssignStmt) statement()   {}
func (*IxAssignStmt) statement() {}
func (*CallStmt) statement()     {}

// Package formatter prints MiniJava compilation units in a canonical layout.
//
// Formatting goes through the AST, so comments are dropped and members are
// regrouped as fields first, then methods.
package formatter

import (
	"fmt"
	"strings"

	"github.com/sgagou3/MiniJava/ast"
	"github.com/sgagou3/MiniJava/parser"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 4

// binding strength of each binary operator; unary is tighter than all of them
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6,
}

const (
	unaryPrecedence   = 7
	primaryPrecedence = 8
)

// Formatter formats MiniJava source with go fmt style
type Formatter struct {
	indent string
}

// New creates a formatter indenting each level with indentSize spaces.
// A non-positive size selects DefaultIndent.
func New(indentSize int) *Formatter {
	if indentSize <= 0 {
		indentSize = DefaultIndent
	}

	return &Formatter{indent: strings.Repeat(" ", indentSize)}
}

// Format parses src and prints it back in canonical form
func (f *Formatter) Format(src string) (string, error) {
	unit, err := parser.ParseString(src)
	if err != nil {
		return "", fmt.Errorf("failed to parse source: %w", err)
	}

	return f.Print(unit), nil
}

// Print renders unit. The output ends with a newline unless unit has no classes.
func (f *Formatter) Print(unit *ast.CompilationUnit) string {
	p := &printer{indent: f.indent}

	for i, class := range unit.Classes {
		if i > 0 {
			p.sb.WriteString("\n")
		}
		p.class(class)
	}

	return p.sb.String()
}

type printer struct {
	sb     strings.Builder
	indent string
	depth  int
}

func (p *printer) line(format string, args ...any) {
	p.sb.WriteString(strings.Repeat(p.indent, p.depth))
	fmt.Fprintf(&p.sb, format, args...)
	p.sb.WriteString("\n")
}

func (p *printer) class(class *ast.ClassDecl) {
	if len(class.Fields) == 0 && len(class.Methods) == 0 {
		p.line("class %s {}", class.Name)
		return
	}

	p.line("class %s {", class.Name)
	p.depth++

	for _, field := range class.Fields {
		p.line("%s;", member(field))
	}

	for i, method := range class.Methods {
		if i > 0 || len(class.Fields) > 0 {
			p.sb.WriteString("\n")
		}
		p.method(method)
	}

	p.depth--
	p.line("}")
}

// member renders the modifiers, type and name of a field or method header
func member(decl *ast.FieldDecl) string {
	var parts []string
	if decl.Visibility == ast.Private {
		parts = append(parts, "private")
	}
	if decl.IsStatic {
		parts = append(parts, "static")
	}
	parts = append(parts, ast.TypeString(decl.Type), decl.Name)

	return strings.Join(parts, " ")
}

func (p *printer) method(method *ast.MethodDecl) {
	params := make([]string, 0, len(method.Parameters))
	for _, param := range method.Parameters {
		params = append(params, ast.TypeString(param.Type)+" "+param.Name)
	}

	header := fmt.Sprintf("%s(%s)", member(method.Header), strings.Join(params, ", "))

	if len(method.Body) == 0 {
		p.line("%s {}", header)
		return
	}

	p.line("%s {", header)
	p.statements(method.Body)
	p.line("}")
}

func (p *printer) statements(stmts []ast.Statement) {
	p.depth++
	for _, stmt := range stmts {
		p.statement(stmt)
	}
	p.depth--
}

func (p *printer) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		if len(s.Statements) == 0 {
			p.line("{}")
			return
		}
		p.line("{")
		p.statements(s.Statements)
		p.line("}")

	case *ast.ReturnStmt:
		if s.Value == nil {
			p.line("return;")
			return
		}
		p.line("return %s;", expression(s.Value))

	case *ast.IfStmt:
		p.ifStatement(s, "")

	case *ast.WhileStmt:
		p.body(fmt.Sprintf("while (%s)", expression(s.Cond)), s.Body, false)

	case *ast.VarDeclStmt:
		p.line("%s %s = %s;", ast.TypeString(s.Decl.Type), s.Decl.Name, expression(s.Init))

	case *ast.AssignStmt:
		p.line("%s = %s;", ast.RefString(s.Ref), expression(s.Value))

	case *ast.IxAssignStmt:
		p.line("%s[%s] = %s;", ast.RefString(s.Ref), expression(s.Index), expression(s.Value))

	case *ast.CallStmt:
		p.line("%s(%s);", ast.RefString(s.Method), arguments(s.Args))
	}
}

// ifStatement prints an if chain; prefix is "} else " or "else " for chained ifs
func (p *printer) ifStatement(s *ast.IfStmt, prefix string) {
	head := fmt.Sprintf("%sif (%s)", prefix, expression(s.Cond))

	// an else-less if as the then branch would capture our else
	forceBlock := s.Else != nil && dangling(s.Then)
	closed := p.body(head, s.Then, forceBlock)

	if s.Else == nil {
		return
	}

	elsePrefix := "else "
	if closed {
		// rewrite the closing brace line as "} else ..."
		p.unwriteLine()
		elsePrefix = "} else "
	}

	if elseIf, ok := s.Else.(*ast.IfStmt); ok {
		p.ifStatement(elseIf, elsePrefix)
		return
	}

	p.body(strings.TrimSuffix(elsePrefix, " "), s.Else, false)
}

// body prints head followed by stmt, on the same line when stmt is a block.
// It reports whether the output ends with a closing brace line.
func (p *printer) body(head string, stmt ast.Statement, forceBlock bool) bool {
	block, isBlock := stmt.(*ast.BlockStmt)

	switch {
	case isBlock && len(block.Statements) == 0:
		p.line("%s {}", head)
		return false
	case isBlock:
		p.line("%s {", head)
		p.statements(block.Statements)
		p.line("}")
		return true
	case forceBlock:
		p.line("%s {", head)
		p.depth++
		p.statement(stmt)
		p.depth--
		p.line("}")
		return true
	default:
		p.line("%s", head)
		p.depth++
		p.statement(stmt)
		p.depth--
		return false
	}
}

// unwriteLine removes the last written line
func (p *printer) unwriteLine() {
	out := strings.TrimSuffix(p.sb.String(), "\n")
	if i := strings.LastIndexByte(out, '\n'); i >= 0 {
		out = out[:i+1]
	} else {
		out = ""
	}

	p.sb.Reset()
	p.sb.WriteString(out)
}

// dangling reports whether stmt ends with an if that has no else
func dangling(stmt ast.Statement) bool {
	switch s := stmt.(type) {
	case *ast.IfStmt:
		if s.Else == nil {
			return true
		}
		return dangling(s.Else)
	case *ast.WhileStmt:
		return dangling(s.Body)
	default:
		return false
	}
}

func arguments(args []ast.Expression) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, expression(arg))
	}

	return strings.Join(parts, ", ")
}

func expression(expr ast.Expression) string {
	text, _ := render(expr)
	return text
}

// render returns the text of expr and the precedence of its outermost operator
func render(expr ast.Expression) (string, int) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Literal.Spelling(), primaryPrecedence

	case *ast.RefExpr:
		return ast.RefString(e.Ref), primaryPrecedence

	case *ast.IxExpr:
		return ast.RefString(e.Ref) + "[" + expression(e.Index) + "]", primaryPrecedence

	case *ast.CallExpr:
		return ast.RefString(e.Method) + "(" + arguments(e.Args) + ")", primaryPrecedence

	case *ast.NewObjectExpr:
		return "new " + e.Class.Name + "()", primaryPrecedence

	case *ast.NewArrayExpr:
		return "new " + ast.TypeString(e.Element) + "[" + expression(e.Size) + "]", primaryPrecedence

	case *ast.UnaryExpr:
		operand, prec := render(e.Operand)
		if prec < unaryPrecedence {
			operand = "(" + operand + ")"
		}
		return e.Op.Spelling + operand, unaryPrecedence

	case *ast.BinaryExpr:
		prec := precedence[e.Op.Spelling]

		left, leftPrec := render(e.Left)
		if leftPrec < prec {
			left = "(" + left + ")"
		}

		// binary operators are left-associative
		right, rightPrec := render(e.Right)
		if rightPrec <= prec {
			right = "(" + right + ")"
		}

		return left + " " + e.Op.Spelling + " " + right, prec

	default:
		return "", primaryPrecedence
	}
}

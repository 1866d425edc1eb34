package parser

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/sgagou3/MiniJava/ast"
	"github.com/sgagou3/MiniJava/scanner"
	"github.com/sgagou3/MiniJava/testhelper"
)

func TestExpressionShapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "left associative subtraction" + testhelper.GetCaller(t), input: "1 - 2 - 3", expected: "(- (- 1 2) 3)"},
		{name: "multiplication binds tighter" + testhelper.GetCaller(t), input: "1 + 2 * 3", expected: "(+ 1 (* 2 3))"},
		{name: "multiplication first" + testhelper.GetCaller(t), input: "1 * 2 + 3", expected: "(+ (* 1 2) 3)"},
		{name: "left associative division" + testhelper.GetCaller(t), input: "8 / 4 / 2", expected: "(/ (/ 8 4) 2)"},
		{name: "nested unary minus" + testhelper.GetCaller(t), input: "- - 1", expected: "(- (- 1))"},
		{name: "unary binds tighter than binary" + testhelper.GetCaller(t), input: "-a * b", expected: "(* (- a) b)"},
		{name: "binary minus then unary minus" + testhelper.GetCaller(t), input: "a - -b", expected: "(- a (- b))"},
		{name: "not not" + testhelper.GetCaller(t), input: "!!b", expected: "(! (! b))"},
		{name: "parentheses override precedence" + testhelper.GetCaller(t), input: "(1 + 2) * 3", expected: "(* (+ 1 2) 3)"},
		{name: "redundant parentheses" + testhelper.GetCaller(t), input: "((a))", expected: "a"},
		{name: "or is loosest" + testhelper.GetCaller(t), input: "a || b && c", expected: "(|| a (&& b c))"},
		{name: "and over equality" + testhelper.GetCaller(t), input: "a == b && c != d", expected: "(&& (== a b) (!= c d))"},
		{name: "equality over relational" + testhelper.GetCaller(t), input: "a < b == c >= d", expected: "(== (< a b) (>= c d))"},
		{name: "relational over additive" + testhelper.GetCaller(t), input: "a + 1 <= b - 1", expected: "(<= (+ a 1) (- b 1))"},
		{name: "left associative relational" + testhelper.GetCaller(t), input: "a < b < c", expected: "(< (< a b) c)"},
		{name: "left associative or" + testhelper.GetCaller(t), input: "a || b || c", expected: "(|| (|| a b) c)"},
		{
			name:     "full ladder" + testhelper.GetCaller(t),
			input:    "a || b && c == d < e + f * -g",
			expected: "(|| a (&& b (== c (< d (+ e (* f (- g)))))))",
		},
		{name: "boolean literals" + testhelper.GetCaller(t), input: "true && !false", expected: "(&& true (! false))"},
		{name: "long integer literal" + testhelper.GetCaller(t), input: "99999999999999999999", expected: "99999999999999999999"},
		{name: "this" + testhelper.GetCaller(t), input: "this", expected: "this"},
		{name: "qualified reference" + testhelper.GetCaller(t), input: "a.b.c", expected: "a.b.c"},
		{name: "this qualified" + testhelper.GetCaller(t), input: "this.x", expected: "this.x"},
		{name: "index" + testhelper.GetCaller(t), input: "a[i + 1]", expected: "(ix a (+ i 1))"},
		{name: "qualified index" + testhelper.GetCaller(t), input: "this.a[0]", expected: "(ix this.a 0)"},
		{name: "call without arguments" + testhelper.GetCaller(t), input: "f()", expected: "(call f)"},
		{name: "call with arguments" + testhelper.GetCaller(t), input: "o.f(1, a + b, g())", expected: "(call o.f 1 (+ a b) (call g))"},
		{name: "new object" + testhelper.GetCaller(t), input: "new Foo()", expected: "(new Foo)"},
		{name: "new int array" + testhelper.GetCaller(t), input: "new int[5]", expected: "(new-array int 5)"},
		{name: "new class array" + testhelper.GetCaller(t), input: "new Foo[n * 2]", expected: "(new-array Foo (* n 2))"},
		{name: "call result in arithmetic" + testhelper.GetCaller(t), input: "a.length() - 1", expected: "(- (call a.length) 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sexpr(parseExpr(t, tt.input)))
		})
	}
}

func TestBinaryTreeIsLeftDeep(t *testing.T) {
	expr := parseExpr(t, "1 - 2 - 3")

	outer, ok := expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "-", outer.Op.Spelling)

	inner, ok := outer.Left.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "1", inner.Left.(*ast.LiteralExpr).Literal.Spelling())
	assert.Equal(t, "2", inner.Right.(*ast.LiteralExpr).Literal.Spelling())
	assert.Equal(t, "3", outer.Right.(*ast.LiteralExpr).Literal.Spelling())
}

func TestQualifiedReferenceGrowsRight(t *testing.T) {
	expr := parseExpr(t, "this.a.b")

	ref := expr.(*ast.RefExpr).Ref

	outer, ok := ref.(*ast.QualRef)
	assert.True(t, ok)
	assert.Equal(t, "b", outer.Name)

	inner, ok := outer.Base.(*ast.QualRef)
	assert.True(t, ok)
	assert.Equal(t, "a", inner.Name)

	_, ok = inner.Base.(*ast.ThisRef)
	assert.True(t, ok)
}

func TestExpressionPositions(t *testing.T) {
	// the expression starts at column 26, after "class A { void m() { x = "
	expr := parseExpr(t, "a + b * c")

	binary := expr.(*ast.BinaryExpr)
	assert.Equal(t, scanner.Position{Line: 1, Column: 26, Offset: 25}, binary.Pos())
	assert.Equal(t, scanner.Position{Line: 1, Column: 28, Offset: 27}, binary.Op.Pos())

	right := binary.Right.(*ast.BinaryExpr)
	assert.Equal(t, scanner.Position{Line: 1, Column: 30, Offset: 29}, right.Pos())
	assert.Equal(t, scanner.Position{Line: 1, Column: 32, Offset: 31}, right.Op.Pos())
}

func TestExpressionErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected scanner.TokenKind
		found    scanner.TokenKind
	}{
		{name: "missing operand" + testhelper.GetCaller(t), input: "1 +", expected: scanner.NEW, found: scanner.SEMICOLON},
		{name: "unclosed parenthesis" + testhelper.GetCaller(t), input: "(1 + 2", expected: scanner.CLOSED_P, found: scanner.SEMICOLON},
		{name: "new without class" + testhelper.GetCaller(t), input: "new 5", expected: scanner.ID, found: scanner.INT_LITERAL},
		{name: "new object without parens" + testhelper.GetCaller(t), input: "new Foo", expected: scanner.OPEN_P, found: scanner.SEMICOLON},
		{name: "new boolean array" + testhelper.GetCaller(t), input: "new boolean[3]", expected: scanner.ID, found: scanner.BOOLEAN},
		{name: "trailing comma in arguments" + testhelper.GetCaller(t), input: "f(1,)", expected: scanner.NEW, found: scanner.CLOSED_P},
		{name: "missing comma in arguments" + testhelper.GetCaller(t), input: "f(1 2)", expected: scanner.CLOSED_P, found: scanner.INT_LITERAL},
		{name: "dangling period" + testhelper.GetCaller(t), input: "a.", expected: scanner.ID, found: scanner.SEMICOLON},
		{name: "unsupported unary plus" + testhelper.GetCaller(t), input: "+1", expected: scanner.NEW, found: scanner.OPERATOR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString("class A { void m() { x = " + tt.input + "; } }")

			var syntaxErr *SyntaxError
			assert.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tt.expected, syntaxErr.Expected[0])
			assert.Equal(t, tt.found, syntaxErr.Found.Kind)
		})
	}
}

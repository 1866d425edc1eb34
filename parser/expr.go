package parser

import (
	"github.com/sgagou3/MiniJava/ast"
	"github.com/sgagou3/MiniJava/scanner"
)

// Precedence, loosest first:
//
//	Disjunction     ||
//	Conjunction     &&
//	Equality        == !=
//	Relational      < <= > >=
//	Additive        + -
//	Multiplicative  * /
//	Unary           - !   (prefix, right-associative)
//	Primary
//
// Binary levels are left-associative: a - b - c is (a - b) - c.

func (p *Parser) parseExpression() (ast.Expression, error) {
	p.trace("parseExpression")
	return p.parseDisjunction()
}

func (p *Parser) parseDisjunction() (ast.Expression, error) {
	return p.parseBinary(p.parseConjunction, "||")
}

func (p *Parser) parseConjunction() (ast.Expression, error) {
	return p.parseBinary(p.parseEquality, "&&")
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.parseBinary(p.parseRelational, "==", "!=")
}

func (p *Parser) parseRelational() (ast.Expression, error) {
	return p.parseBinary(p.parseAdditive, "<", "<=", ">", ">=")
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.parseBinary(p.parseMultiplicative, "+", "-")
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.parseBinary(p.parseUnary, "*", "/")
}

// parseBinary parses operand (op operand)* and folds the result to the left
func (p *Parser) parseBinary(operand func() (ast.Expression, error), ops ...string) (ast.Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.token.Is(ops...) {
		op := &ast.Operator{Spelling: p.token.Lexeme, Position: p.token.Position}
		p.advance()

		right, err := operand()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Position: left.Pos()}
	}

	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if !p.token.Is("-", "!") {
		return p.parsePrimary()
	}

	op := &ast.Operator{Spelling: p.token.Lexeme, Position: p.token.Position}
	p.advance()

	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &ast.UnaryExpr{Op: op, Operand: operand, Position: op.Position}, nil
}

// Primary ::= 'new' ( ID '(' ')' | ID '[' Expression ']' | 'int' '[' Expression ']' )
//
//	| INT_LITERAL | 'true' | 'false'
//	| '(' Expression ')'
//	| Reference ( '[' Expression ']' | '(' ArgList? ')' )?
func (p *Parser) parsePrimary() (ast.Expression, error) {
	p.trace("parsePrimary")

	token := p.token

	switch token.Kind {
	case scanner.NEW:
		p.advance()
		return p.parseNew(token.Position)

	case scanner.INT_LITERAL:
		p.advance()

		return &ast.LiteralExpr{
			Literal:  &ast.IntLiteral{Digits: token.Lexeme, Position: token.Position},
			Position: token.Position,
		}, nil

	case scanner.TRUE, scanner.FALSE:
		p.advance()

		return &ast.LiteralExpr{
			Literal:  &ast.BooleanLiteral{Value: token.Kind == scanner.TRUE, Position: token.Position},
			Position: token.Position,
		}, nil

	case scanner.OPEN_P:
		p.advance()

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.accept(scanner.CLOSED_P); err != nil {
			return nil, err
		}

		return expr, nil

	case scanner.THIS, scanner.ID:
		ref, err := p.parseReference()
		if err != nil {
			return nil, err
		}

		switch p.token.Kind {
		case scanner.OPEN_BRACKET:
			p.advance()

			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			if _, err := p.accept(scanner.CLOSED_BRACKET); err != nil {
				return nil, err
			}

			return &ast.IxExpr{Ref: ref, Index: index, Position: ref.Pos()}, nil

		case scanner.OPEN_P:
			args, err := p.parseArgumentList()
			if err != nil {
				return nil, err
			}

			return &ast.CallExpr{Method: ref, Args: args, Position: ref.Pos()}, nil

		default:
			return &ast.RefExpr{Ref: ref, Position: ref.Pos()}, nil
		}

	default:
		return nil, p.fail(
			scanner.NEW, scanner.INT_LITERAL, scanner.TRUE, scanner.FALSE,
			scanner.OPEN_P, scanner.THIS, scanner.ID, scanner.OPERATOR,
		)
	}
}

// parseNew parses what follows 'new'
func (p *Parser) parseNew(start scanner.Position) (ast.Expression, error) {
	token := p.token

	var element ast.TypeDenoter

	switch token.Kind {
	case scanner.ID:
		class := &ast.ClassType{Name: token.Lexeme, Position: token.Position}
		p.advance()

		switch p.token.Kind {
		case scanner.OPEN_P:
			p.advance()

			if _, err := p.accept(scanner.CLOSED_P); err != nil {
				return nil, err
			}

			return &ast.NewObjectExpr{Class: class, Position: start}, nil
		case scanner.OPEN_BRACKET:
			element = class
		default:
			return nil, p.fail(scanner.OPEN_P, scanner.OPEN_BRACKET)
		}

	case scanner.INT:
		element = &ast.BaseType{Kind: ast.Int, Position: token.Position}
		p.advance()

	default:
		return nil, p.fail(scanner.ID, scanner.INT)
	}

	if _, err := p.accept(scanner.OPEN_BRACKET); err != nil {
		return nil, err
	}

	size, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.accept(scanner.CLOSED_BRACKET); err != nil {
		return nil, err
	}

	return &ast.NewArrayExpr{Element: element, Size: size, Position: start}, nil
}

// '(' ( Expression ( ',' Expression )* )? ')'
func (p *Parser) parseArgumentList() ([]ast.Expression, error) {
	if _, err := p.accept(scanner.OPEN_P); err != nil {
		return nil, err
	}

	args := []ast.Expression{}
	if p.at(scanner.CLOSED_P) {
		p.advance()
		return args, nil
	}

	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if !p.at(scanner.COMMA) {
			break
		}
		p.advance()
	}

	if _, err := p.accept(scanner.CLOSED_P); err != nil {
		return nil, err
	}

	return args, nil
}

// Reference ::= ('this' | ID) ('.' ID)*
func (p *Parser) parseReference() (ast.Reference, error) {
	p.trace("parseReference")

	var root ast.Reference

	switch p.token.Kind {
	case scanner.THIS:
		root = &ast.ThisRef{Position: p.token.Position}
	case scanner.ID:
		root = &ast.IdRef{Name: p.token.Lexeme, Position: p.token.Position}
	default:
		return nil, p.fail(scanner.THIS, scanner.ID)
	}
	p.advance()

	return p.parseQualifiedTail(root)
}

// parseQualifiedTail extends base with ('.' ID)*
func (p *Parser) parseQualifiedTail(base ast.Reference) (ast.Reference, error) {
	ref := base

	for p.at(scanner.PERIOD) {
		p.advance()

		name, err := p.accept(scanner.ID)
		if err != nil {
			return nil, err
		}

		ref = &ast.QualRef{Base: ref, Name: name.Lexeme, Position: base.Pos()}
	}

	return ref, nil
}

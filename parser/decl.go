package parser

import (
	"github.com/sgagou3/MiniJava/ast"
	"github.com/sgagou3/MiniJava/scanner"
)

// Program ::= ClassDecl* EOF
func (p *Parser) parseProgram() (*ast.CompilationUnit, error) {
	p.trace("parseProgram")

	unit := &ast.CompilationUnit{Position: p.token.Position}

	for !p.at(scanner.EOF) {
		class, err := p.parseClassDecl()
		if err != nil {
			return nil, err
		}
		unit.Classes = append(unit.Classes, class)
	}

	return unit, nil
}

// ClassDecl ::= 'class' ID '{' MemberDecl* '}'
func (p *Parser) parseClassDecl() (*ast.ClassDecl, error) {
	p.trace("parseClassDecl")

	start, err := p.accept(scanner.CLASS)
	if err != nil {
		return nil, err
	}

	name, err := p.accept(scanner.ID)
	if err != nil {
		return nil, err
	}

	if _, err := p.accept(scanner.OPEN_BRACE); err != nil {
		return nil, err
	}

	class := &ast.ClassDecl{Name: name.Lexeme, Position: start.Position}

	for !p.at(scanner.CLOSED_BRACE) {
		field, method, err := p.parseMemberDecl()
		if err != nil {
			return nil, err
		}

		if method != nil {
			class.Methods = append(class.Methods, method)
		} else {
			class.Fields = append(class.Fields, field)
		}
	}
	p.advance()

	return class, nil
}

// MemberDecl ::= Visibility Access ( 'void' ID MethodTail | Type ID ( ';' | MethodTail ) )
//
// Exactly one of the returned declarations is non-nil on success.
func (p *Parser) parseMemberDecl() (*ast.FieldDecl, *ast.MethodDecl, error) {
	p.trace("parseMemberDecl")

	header := &ast.FieldDecl{Position: p.token.Position}

	switch p.token.Kind {
	case scanner.PUBLIC:
		p.advance()
	case scanner.PRIVATE:
		header.Visibility = ast.Private
		p.advance()
	}

	if p.at(scanner.STATIC) {
		header.IsStatic = true
		p.advance()
	}

	if p.at(scanner.VOID) {
		header.Type = &ast.BaseType{Kind: ast.Void, Position: p.token.Position}
		p.advance()

		name, err := p.accept(scanner.ID)
		if err != nil {
			return nil, nil, err
		}
		header.Name = name.Lexeme

		method, err := p.parseMethodTail(header)

		return nil, method, err
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, nil, err
	}
	header.Type = typ

	name, err := p.accept(scanner.ID)
	if err != nil {
		return nil, nil, err
	}
	header.Name = name.Lexeme

	switch p.token.Kind {
	case scanner.SEMICOLON:
		p.advance()
		return header, nil, nil
	case scanner.OPEN_P:
		method, err := p.parseMethodTail(header)
		return nil, method, err
	default:
		return nil, nil, p.fail(scanner.SEMICOLON, scanner.OPEN_P)
	}
}

// MethodTail ::= '(' ParamList? ')' '{' Statement* '}'
func (p *Parser) parseMethodTail(header *ast.FieldDecl) (*ast.MethodDecl, error) {
	p.trace("parseMethodTail")

	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}

	return &ast.MethodDecl{
		Header:     header,
		Parameters: params,
		Body:       body,
		Position:   header.Position,
	}, nil
}

// '(' ( Type ID ( ',' Type ID )* )? ')'
func (p *Parser) parseParameterList() ([]*ast.ParameterDecl, error) {
	p.trace("parseParameterList")

	if _, err := p.accept(scanner.OPEN_P); err != nil {
		return nil, err
	}

	params := []*ast.ParameterDecl{}
	if p.at(scanner.CLOSED_P) {
		p.advance()
		return params, nil
	}

	for {
		start := p.token.Position

		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}

		name, err := p.accept(scanner.ID)
		if err != nil {
			return nil, err
		}

		params = append(params, &ast.ParameterDecl{Type: typ, Name: name.Lexeme, Position: start})

		if !p.at(scanner.COMMA) {
			break
		}
		p.advance()
	}

	if _, err := p.accept(scanner.CLOSED_P); err != nil {
		return nil, err
	}

	return params, nil
}

// Type ::= 'int' ('[' ']')? | 'boolean' | ID ('[' ']')?
func (p *Parser) parseType() (ast.TypeDenoter, error) {
	p.trace("parseType")

	start := p.token.Position

	var element ast.TypeDenoter

	switch p.token.Kind {
	case scanner.INT:
		element = &ast.BaseType{Kind: ast.Int, Position: start}
	case scanner.BOOLEAN:
		p.advance()
		return &ast.BaseType{Kind: ast.Boolean, Position: start}, nil
	case scanner.ID:
		element = &ast.ClassType{Name: p.token.Lexeme, Position: start}
	default:
		return nil, p.fail(scanner.INT, scanner.BOOLEAN, scanner.ID)
	}
	p.advance()

	if !p.at(scanner.OPEN_BRACKET) {
		return element, nil
	}
	p.advance()

	if _, err := p.accept(scanner.CLOSED_BRACKET); err != nil {
		return nil, err
	}

	return &ast.ArrayType{Element: element, Position: start}, nil
}

package parser

import (
	"github.com/sgagou3/MiniJava/ast"
	"github.com/sgagou3/MiniJava/scanner"
)

// '{' Statement* '}'
func (p *Parser) parseBlockBody() ([]ast.Statement, error) {
	if _, err := p.accept(scanner.OPEN_BRACE); err != nil {
		return nil, err
	}

	stmts := []ast.Statement{}
	for !p.at(scanner.CLOSED_BRACE) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance()

	return stmts, nil
}

// Statement ::= Block
//
//	| 'return' Expression? ';'
//	| 'if' '(' Expression ')' Statement ('else' Statement)?
//	| 'while' '(' Expression ')' Statement
//	| (INT|BOOLEAN) ID '=' Expression ';'
//	| reference-led statement
func (p *Parser) parseStatement() (ast.Statement, error) {
	p.trace("parseStatement")

	start := p.token.Position

	switch p.token.Kind {
	case scanner.OPEN_BRACE:
		stmts, err := p.parseBlockBody()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Statements: stmts, Position: start}, nil

	case scanner.RETURN:
		return p.parseReturn()

	case scanner.IF:
		return p.parseIf()

	case scanner.WHILE:
		return p.parseWhile()

	case scanner.INT, scanner.BOOLEAN:
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return p.parseVarDeclTail(typ, start)

	case scanner.THIS:
		ref, err := p.parseReference()
		if err != nil {
			return nil, err
		}
		return p.parseReferenceStatement(ref)

	case scanner.ID:
		return p.parseIdStatement()

	default:
		return nil, p.fail(
			scanner.OPEN_BRACE, scanner.RETURN, scanner.IF, scanner.WHILE,
			scanner.INT, scanner.BOOLEAN, scanner.THIS, scanner.ID,
		)
	}
}

func (p *Parser) parseReturn() (*ast.ReturnStmt, error) {
	start := p.token.Position
	p.advance()

	stmt := &ast.ReturnStmt{Position: start}

	if !p.at(scanner.SEMICOLON) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}

	if _, err := p.accept(scanner.SEMICOLON); err != nil {
		return nil, err
	}

	return stmt, nil
}

func (p *Parser) parseIf() (*ast.IfStmt, error) {
	start := p.token.Position
	p.advance()

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{Cond: cond, Then: then, Position: start}

	// a dangling else binds to the nearest if
	if p.at(scanner.ELSE) {
		p.advance()

		stmt.Else, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

func (p *Parser) parseWhile() (*ast.WhileStmt, error) {
	start := p.token.Position
	p.advance()

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{Cond: cond, Body: body, Position: start}, nil
}

// '(' Expression ')'
func (p *Parser) parseCondition() (ast.Expression, error) {
	if _, err := p.accept(scanner.OPEN_P); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.accept(scanner.CLOSED_P); err != nil {
		return nil, err
	}

	return cond, nil
}

// parseIdStatement resolves a statement led by a bare identifier:
//
//	ID ID '=' Expression ';'                  class-typed declaration
//	ID '[' ']' ID '=' Expression ';'          array-typed declaration
//	ID '[' Expression ']' '=' Expression ';'  indexed assignment
//	ID ('.' ID)* ( '=' | '[' | '(' ) ...      assignment, indexed assignment, call
func (p *Parser) parseIdStatement() (ast.Statement, error) {
	p.trace("parseIdStatement")

	first := p.token
	p.advance()

	ref := &ast.IdRef{Name: first.Lexeme, Position: first.Position}

	switch p.token.Kind {
	case scanner.ID:
		class := &ast.ClassType{Name: first.Lexeme, Position: first.Position}
		return p.parseVarDeclTail(class, first.Position)

	case scanner.OPEN_BRACKET:
		p.advance()

		if p.at(scanner.CLOSED_BRACKET) {
			p.advance()

			array := &ast.ArrayType{
				Element:  &ast.ClassType{Name: first.Lexeme, Position: first.Position},
				Position: first.Position,
			}

			return p.parseVarDeclTail(array, first.Position)
		}

		return p.parseIxAssignTail(ref)

	case scanner.PERIOD:
		qualified, err := p.parseQualifiedTail(ref)
		if err != nil {
			return nil, err
		}
		return p.parseReferenceStatement(qualified)

	case scanner.EQUAL, scanner.OPEN_P:
		return p.parseReferenceStatement(ref)

	default:
		return nil, p.fail(scanner.ID, scanner.OPEN_BRACKET, scanner.PERIOD, scanner.EQUAL, scanner.OPEN_P)
	}
}

// parseReferenceStatement dispatches on the token following a complete reference
func (p *Parser) parseReferenceStatement(ref ast.Reference) (ast.Statement, error) {
	switch p.token.Kind {
	case scanner.EQUAL:
		p.advance()

		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.accept(scanner.SEMICOLON); err != nil {
			return nil, err
		}

		return &ast.AssignStmt{Ref: ref, Value: value, Position: ref.Pos()}, nil

	case scanner.OPEN_BRACKET:
		p.advance()
		return p.parseIxAssignTail(ref)

	case scanner.OPEN_P:
		args, err := p.parseArgumentList()
		if err != nil {
			return nil, err
		}

		if _, err := p.accept(scanner.SEMICOLON); err != nil {
			return nil, err
		}

		return &ast.CallStmt{Method: ref, Args: args, Position: ref.Pos()}, nil

	default:
		return nil, p.fail(scanner.EQUAL, scanner.OPEN_BRACKET, scanner.OPEN_P)
	}
}

// Expression ']' '=' Expression ';' with the '[' already consumed
func (p *Parser) parseIxAssignTail(ref ast.Reference) (*ast.IxAssignStmt, error) {
	index, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.accept(scanner.CLOSED_BRACKET); err != nil {
		return nil, err
	}

	if _, err := p.accept(scanner.EQUAL); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.accept(scanner.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.IxAssignStmt{Ref: ref, Index: index, Value: value, Position: ref.Pos()}, nil
}

// ID '=' Expression ';' following the declared type
func (p *Parser) parseVarDeclTail(typ ast.TypeDenoter, start scanner.Position) (*ast.VarDeclStmt, error) {
	name, err := p.accept(scanner.ID)
	if err != nil {
		return nil, err
	}

	if _, err := p.accept(scanner.EQUAL); err != nil {
		return nil, err
	}

	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.accept(scanner.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.VarDeclStmt{
		Decl:     &ast.VarDecl{Type: typ, Name: name.Lexeme, Position: start},
		Init:     init,
		Position: start,
	}, nil
}

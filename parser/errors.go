package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sgagou3/MiniJava/scanner"
)

// Sentinel errors
var (
	// ErrSyntax is wrapped by every SyntaxError.
	ErrSyntax = errors.New("syntax error")
	// ErrLexical is wrapped by every LexicalError.
	ErrLexical = errors.New("lexical error")
)

// SyntaxError reports a lookahead token that the grammar does not allow at its position.
type SyntaxError struct {
	Expected []scanner.TokenKind // acceptable kinds, in grammar order
	Found    scanner.Token
	Source   string

	showPosition bool
}

// Error implements the error interface for SyntaxError.
func (e *SyntaxError) Error() string {
	var sb strings.Builder
	if e.Source != "" {
		sb.WriteString(e.Source)
		sb.WriteString(": ")
	}

	sb.WriteString("expected ")
	for i, kind := range e.Expected {
		if i > 0 {
			sb.WriteString(" or ")
		}
		sb.WriteString(kind.String())
	}
	sb.WriteString(" but got ")
	sb.WriteString(e.Found.Kind.String())

	if e.showPosition {
		fmt.Fprintf(&sb, " at line %d, column %d", e.Found.Position.Line, e.Found.Position.Column)
	}

	return sb.String()
}

// Unwrap returns ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Pos returns the position of the offending token.
func (e *SyntaxError) Pos() scanner.Position {
	return e.Found.Position
}

// LexicalError reports an ERROR token produced by the scanner.
type LexicalError struct {
	Token  scanner.Token
	Err    error // cause reported by the scanner, may be nil
	Source string

	showPosition bool
}

// Error implements the error interface for LexicalError.
func (e *LexicalError) Error() string {
	var sb strings.Builder
	if e.Source != "" {
		sb.WriteString(e.Source)
		sb.WriteString(": ")
	}

	sb.WriteString(ErrLexical.Error())

	// the scanner's cause already names the position
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
		return sb.String()
	}

	fmt.Fprintf(&sb, ": invalid token %q", e.Token.Lexeme)
	if e.showPosition {
		fmt.Fprintf(&sb, " at line %d, column %d", e.Token.Position.Line, e.Token.Position.Column)
	}

	return sb.String()
}

// Unwrap returns ErrLexical and the scanner's cause.
func (e *LexicalError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrLexical}
	}
	return []error{ErrLexical, e.Err}
}

// Pos returns the position of the ERROR token.
func (e *LexicalError) Pos() scanner.Position {
	return e.Token.Position
}

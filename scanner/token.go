package scanner

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrMalformedIdentifier = errors.New("malformed identifier")
	ErrIncompleteOperator  = errors.New("incomplete operator")
	ErrRead                = errors.New("failed to read source")
)

// TokenKind represents the kind of a token
type TokenKind int

const (
	// Keywords
	CLASS TokenKind = iota
	VOID
	PUBLIC
	PRIVATE
	STATIC
	INT
	BOOLEAN
	THIS
	TRUE
	FALSE
	NEW
	RETURN
	IF
	ELSE
	WHILE

	// Names and literals
	ID          // identifiers
	INT_LITERAL // unsigned digit strings

	// Operators
	OPERATOR // + - * / && || ! == != < <= > >=
	EQUAL    // =

	// Punctuation
	SEMICOLON      // ;
	PERIOD         // .
	COMMA          // ,
	OPEN_BRACE     // {
	CLOSED_BRACE   // }
	OPEN_P         // (
	CLOSED_P       // )
	OPEN_BRACKET   // [
	CLOSED_BRACKET // ]

	EOF
	ERROR
)

var kindNames = [...]string{
	CLASS:          "CLASS",
	VOID:           "VOID",
	PUBLIC:         "PUBLIC",
	PRIVATE:        "PRIVATE",
	STATIC:         "STATIC",
	INT:            "INT",
	BOOLEAN:        "BOOLEAN",
	THIS:           "THIS",
	TRUE:           "TRUE",
	FALSE:          "FALSE",
	NEW:            "NEW",
	RETURN:         "RETURN",
	IF:             "IF",
	ELSE:           "ELSE",
	WHILE:          "WHILE",
	ID:             "ID",
	INT_LITERAL:    "INT_LITERAL",
	OPERATOR:       "OPERATOR",
	EQUAL:          "EQUAL",
	SEMICOLON:      "SEMICOLON",
	PERIOD:         "PERIOD",
	COMMA:          "COMMA",
	OPEN_BRACE:     "OPEN_BRACE",
	CLOSED_BRACE:   "CLOSED_BRACE",
	OPEN_P:         "OPEN_P",
	CLOSED_P:       "CLOSED_P",
	OPEN_BRACKET:   "OPEN_BRACKET",
	CLOSED_BRACKET: "CLOSED_BRACKET",
	EOF:            "EOF",
	ERROR:          "ERROR",
}

// String returns the string representation of TokenKind
func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

var keywords = map[string]TokenKind{
	"class":   CLASS,
	"void":    VOID,
	"public":  PUBLIC,
	"private": PRIVATE,
	"static":  STATIC,
	"int":     INT,
	"boolean": BOOLEAN,
	"this":    THIS,
	"true":    TRUE,
	"false":   FALSE,
	"new":     NEW,
	"return":  RETURN,
	"if":      IF,
	"else":    ELSE,
	"while":   WHILE,
}

// Keyword reports the keyword kind of word. Keywords are case-sensitive.
func Keyword(word string) (TokenKind, bool) {
	kind, ok := keywords[word]
	return kind, ok
}

// Position represents a position in the source code.
// Line and Column are 1-based, Column counts runes. Offset is the 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns the position as line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes strictly before q in the source.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}

// Token represents a token
type Token struct {
	Kind     TokenKind
	Lexeme   string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Kind.String() + "@" + t.Position.String()
	}
	return t.Kind.String() + "(" + t.Lexeme + ")@" + t.Position.String()
}

// Is reports whether t is an OPERATOR token spelled as one of ops.
func (t Token) Is(ops ...string) bool {
	if t.Kind != OPERATOR {
		return false
	}
	for _, op := range ops {
		if t.Lexeme == op {
			return true
		}
	}
	return false
}

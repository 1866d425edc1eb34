// Package parser implements a recursive-descent parser that turns a token
// stream from package scanner into an ast.CompilationUnit.
//
// The parser holds exactly one token of lookahead and stops at the first
// lexical or syntax error; there is no recovery.
package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sgagou3/MiniJava/ast"
	"github.com/sgagou3/MiniJava/scanner"
)

// Options are options for the parser
type Options struct {
	// PositionTrace appends the line and column of the offending token to error messages.
	PositionTrace bool
	// Trace, when set, receives one line per grammar routine entered.
	Trace io.Writer
	// SourceName is prefixed to error messages.
	SourceName string
}

// Parser consumes tokens from a scanner one at a time.
type Parser struct {
	scanner *scanner.Scanner
	token   scanner.Token
	lexErr  error // scanner's reason when token is ERROR
	options Options
}

// New creates a Parser reading source text from r
func New(r io.Reader, options ...Options) *Parser {
	opts := Options{PositionTrace: true}
	if len(options) > 0 {
		opts = options[0]
	}

	p := &Parser{
		scanner: scanner.New(r),
		options: opts,
	}
	p.advance()

	return p
}

// Parse parses a whole compilation unit. On failure the tree is nil and the
// error is a *SyntaxError or a *LexicalError.
func (p *Parser) Parse() (*ast.CompilationUnit, error) {
	return p.parseProgram()
}

// Check validates the syntax of the input without returning a tree.
func (p *Parser) Check() error {
	_, err := p.Parse()
	return err
}

// ParseString parses src
func ParseString(src string, options ...Options) (*ast.CompilationUnit, error) {
	return New(strings.NewReader(src), options...).Parse()
}

// ParseFile opens and parses the file at path. The file is closed on every exit path.
// Error messages are prefixed with path unless options name another source.
func ParseFile(path string, options ...Options) (*ast.CompilationUnit, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	opts := Options{PositionTrace: true}
	if len(options) > 0 {
		opts = options[0]
	}
	if opts.SourceName == "" {
		opts.SourceName = path
	}

	return New(file, opts).Parse()
}

// advance replaces the lookahead with the next token from the scanner
func (p *Parser) advance() {
	p.token = p.scanner.Scan()
	p.lexErr = p.scanner.Err()
}

// at reports whether the lookahead is of kind
func (p *Parser) at(kind scanner.TokenKind) bool {
	return p.token.Kind == kind
}

// accept consumes the lookahead if it is of kind and returns it
func (p *Parser) accept(kind scanner.TokenKind) (scanner.Token, error) {
	token := p.token
	if token.Kind != kind {
		return token, p.fail(kind)
	}
	p.advance()

	return token, nil
}

// fail builds the error for a lookahead that matches none of expected
func (p *Parser) fail(expected ...scanner.TokenKind) error {
	if p.token.Kind == scanner.ERROR {
		return &LexicalError{
			Token:        p.token,
			Err:          p.lexErr,
			Source:       p.options.SourceName,
			showPosition: p.options.PositionTrace,
		}
	}

	return &SyntaxError{
		Expected:     expected,
		Found:        p.token,
		Source:       p.options.SourceName,
		showPosition: p.options.PositionTrace,
	}
}

// trace writes the routine name and the current lookahead to the trace writer
func (p *Parser) trace(routine string) {
	if p.options.Trace == nil {
		return
	}
	fmt.Fprintf(p.options.Trace, "[TRACE] %s: %s\n", routine, p.token)
}

package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// TokenIterator yields tokens up to and including EOF. The error is non-nil exactly for ERROR tokens.
type TokenIterator iter.Seq2[Token, error]

// Scanner produces tokens on demand from a character stream.
// It never holds more than the current character of the input.
type Scanner struct {
	reader *bufio.Reader
	ch     rune
	eof    bool
	pos    Position // position of ch
	next   Position // position of the character after ch

	err      error // reason for the most recent ERROR token
	ioErr    error
	ioRaised bool
}

// New creates a Scanner reading from r
func New(r io.Reader) *Scanner {
	s := &Scanner{
		reader: bufio.NewReader(r),
		next:   Position{Line: 1, Column: 1},
	}
	s.readChar()

	return s
}

// NewString creates a Scanner over src
func NewString(src string) *Scanner {
	return New(strings.NewReader(src))
}

// Err returns the reason for the ERROR token returned by the last Scan call, or nil.
func (s *Scanner) Err() error {
	return s.err
}

// Position returns the position of the next unconsumed character
func (s *Scanner) Position() Position {
	return s.pos
}

// Scan returns the next token. Once the input is exhausted it keeps returning EOF.
func (s *Scanner) Scan() Token {
	s.err = nil

	for {
		s.skipWhitespace()

		if s.eof || s.ch != '/' {
			break
		}

		// '/' starts a comment or the division operator
		start := s.pos
		s.readChar()

		switch {
		case !s.eof && s.ch == '/':
			s.skipLineComment()
		case !s.eof && s.ch == '*':
			if !s.skipBlockComment() {
				return s.errorToken(ErrUnterminatedComment, "/*", start)
			}
		default:
			return Token{Kind: OPERATOR, Lexeme: "/", Position: start}
		}
	}

	if s.eof {
		if s.ioErr != nil && !s.ioRaised {
			s.ioRaised = true
			s.err = s.ioErr

			return Token{Kind: ERROR, Position: s.pos}
		}

		return Token{Kind: EOF, Position: s.pos}
	}

	switch {
	case isLetter(s.ch):
		return s.readWord()
	case isDigit(s.ch):
		return s.readNumber()
	default:
		return s.readSymbol()
	}
}

// Tokens returns an iterator over the remaining tokens
func (s *Scanner) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		for {
			token := s.Scan()

			var err error
			if token.Kind == ERROR {
				err = s.Err()
			}

			if !yield(token, err) || token.Kind == EOF {
				return
			}
		}
	}
}

// AllTokens gets all remaining tokens as a slice, including EOF.
// The returned error is the reason for the last ERROR token, if any.
func (s *Scanner) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 64)

	var lastError error

	for token, err := range s.Tokens() {
		if err != nil {
			lastError = err
		}
		tokens = append(tokens, token)
	}

	return tokens, lastError
}

// readChar advances to the next character
func (s *Scanner) readChar() {
	if s.eof {
		return
	}

	s.pos = s.next

	r, size, err := s.reader.ReadRune()
	if err != nil {
		s.eof = true
		s.ch = 0
		if !errors.Is(err, io.EOF) {
			s.ioErr = fmt.Errorf("%w: %w", ErrRead, err)
		}
		return
	}

	s.ch = r
	s.next.Offset += size

	if r == '\n' {
		s.next.Line++
		s.next.Column = 1
	} else {
		s.next.Column++
	}
}

func (s *Scanner) skipWhitespace() {
	for !s.eof && isWhitespace(s.ch) {
		s.readChar()
	}
}

// skipLineComment consumes the second '/' and everything up to the end of the line
func (s *Scanner) skipLineComment() {
	for !s.eof && s.ch != '\n' && s.ch != '\r' {
		s.readChar()
	}
}

// skipBlockComment consumes a comment whose "/" has been read and whose "*" is current.
// It reports false if the input ends before "*/".
func (s *Scanner) skipBlockComment() bool {
	s.readChar()

	for !s.eof {
		if s.ch == '*' {
			s.readChar()
			if !s.eof && s.ch == '/' {
				s.readChar()
				return true
			}
			continue
		}
		s.readChar()
	}

	return false
}

// readWord reads identifiers and keywords
func (s *Scanner) readWord() Token {
	start := s.pos
	word := s.readIdentifierChars()

	if kind, ok := Keyword(word); ok {
		return Token{Kind: kind, Lexeme: word, Position: start}
	}

	if word[0] == '_' {
		return s.errorToken(ErrMalformedIdentifier, word, start)
	}

	return Token{Kind: ID, Lexeme: word, Position: start}
}

// readNumber reads integer literals. A digit run running into letters is a malformed identifier.
func (s *Scanner) readNumber() Token {
	start := s.pos

	var builder strings.Builder
	for !s.eof && isDigit(s.ch) {
		builder.WriteRune(s.ch)
		s.readChar()
	}

	if !s.eof && isLetter(s.ch) {
		builder.WriteString(s.readIdentifierChars())
		return s.errorToken(ErrMalformedIdentifier, builder.String(), start)
	}

	return Token{Kind: INT_LITERAL, Lexeme: builder.String(), Position: start}
}

func (s *Scanner) readIdentifierChars() string {
	var builder strings.Builder
	for !s.eof && (isLetter(s.ch) || isDigit(s.ch)) {
		builder.WriteRune(s.ch)
		s.readChar()
	}

	return builder.String()
}

var punctuation = map[rune]TokenKind{
	';': SEMICOLON,
	'.': PERIOD,
	',': COMMA,
	'{': OPEN_BRACE,
	'}': CLOSED_BRACE,
	'(': OPEN_P,
	')': CLOSED_P,
	'[': OPEN_BRACKET,
	']': CLOSED_BRACKET,
}

// readSymbol reads punctuation and operators
func (s *Scanner) readSymbol() Token {
	start := s.pos
	ch := s.ch
	s.readChar()

	if kind, ok := punctuation[ch]; ok {
		return Token{Kind: kind, Lexeme: string(ch), Position: start}
	}

	switch ch {
	case '+', '-', '*':
		return Token{Kind: OPERATOR, Lexeme: string(ch), Position: start}
	case '&', '|':
		if !s.eof && s.ch == ch {
			s.readChar()
			return Token{Kind: OPERATOR, Lexeme: string([]rune{ch, ch}), Position: start}
		}
		return s.errorToken(ErrIncompleteOperator, string(ch), start)
	case '!', '<', '>':
		if s.accept('=') {
			return Token{Kind: OPERATOR, Lexeme: string(ch) + "=", Position: start}
		}
		return Token{Kind: OPERATOR, Lexeme: string(ch), Position: start}
	case '=':
		if s.accept('=') {
			return Token{Kind: OPERATOR, Lexeme: "==", Position: start}
		}
		return Token{Kind: EQUAL, Lexeme: "=", Position: start}
	default:
		return s.errorToken(ErrUnexpectedCharacter, string(ch), start)
	}
}

// accept consumes the current character if it is r
func (s *Scanner) accept(r rune) bool {
	if s.eof || s.ch != r {
		return false
	}
	s.readChar()

	return true
}

func (s *Scanner) errorToken(cause error, lexeme string, pos Position) Token {
	s.err = fmt.Errorf("%w %q at line %d, column %d", cause, lexeme, pos.Line, pos.Column)
	return Token{Kind: ERROR, Lexeme: lexeme, Position: pos}
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

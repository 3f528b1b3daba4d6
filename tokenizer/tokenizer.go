// Package tokenizer splits a formula string, written in a parenthesized
// surface syntax with spreadsheet-style cell references, into lexical units
// for a parser to consume.
package tokenizer

import (
	"fmt"
)

// DefaultOperators is the stock operator alphabet of the formula language.
var DefaultOperators = []rune{'+', '-', '*', '/', '=', '<', '>'}

// runeSet builds a membership predicate over a set of runes
func runeSet(set []rune) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range set {
			if v == r {
				return true
			}
		}
		return false
	}
}

var isWhitespace = runeSet([]rune(" \t\n\r"))

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isUpperAlpha(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// isOperatorBreak reports whether the character after an operator allows the
// operator to stand as a token of its own. The zero rune is what peek returns
// past the end of the input, so a trailing operator is always well formed.
func isOperatorBreak(r rune) bool {
	return r == 0 || isWhitespace(r) || isAlpha(r) || isDigit(r)
}

// Tokenizer turns one input string into a stream of tokens. The read cursor
// only moves forward; a new input requires a new Tokenizer. An instance must
// not be shared between goroutines.
type Tokenizer struct {
	in    []rune
	pos   int
	start int

	isOperator func(r rune) bool

	buf []rune
}

// New creates a Tokenizer over a complete input string. The operator alphabet
// is the set of single characters recognized as operator tokens; pass
// DefaultOperators unless the surface language differs.
func New(input string, operators []rune) *Tokenizer {
	return &Tokenizer{
		in:         []rune(input),
		isOperator: runeSet(operators),
		buf:        []rune{},
	}
}

// AtEnd returns true once the cursor has reached the end of the input.
func (t *Tokenizer) AtEnd() bool {
	return t.pos >= len(t.in)
}

func (t *Tokenizer) current() rune {
	return t.in[t.pos]
}

// peek returns the character after the cursor without consuming it, or the
// zero rune when the lookahead runs off the end of the input.
func (t *Tokenizer) peek() rune {
	if t.pos+1 >= len(t.in) {
		return rune(0)
	}
	return t.in[t.pos+1]
}

func (t *Tokenizer) step() {
	t.pos++
}

func (t *Tokenizer) append(r rune) {
	t.buf = append(t.buf, r)
}

// emit copies the accumulated lexeme out, so the token stays valid after the
// buffer is reused by the next call.
func (t *Tokenizer) emit(tt TokenType) Token {
	return NewToken(tt, string(t.buf), t.start)
}

func (t *Tokenizer) errorf(format string, args ...interface{}) Token {
	return NewToken(TokenError, fmt.Sprintf(format, args...), t.start)
}

// Next produces the next lexical unit. It never fails: scan errors come back
// as TokenError values and the cursor still advances past them, so repeated
// calls always reach TokenEOF. Once TokenEOF has been returned every further
// call returns TokenEOF again.
func (t *Tokenizer) Next() Token {
	t.buf = t.buf[0:0]
	t.eatWhitespace()
	t.start = t.pos

	if t.AtEnd() {
		return t.emit(TokenEOF)
	}

	r := t.current()
	switch {
	case isDigit(r):
		return t.scanNumber()

	case r == '-':
		if isDigit(t.peek()) {
			// Eat the sign, then scan the number
			t.append(r)
			t.step()
			return t.scanNumber()
		}
		return t.scanIdentifier()

	case r == '(':
		t.step()
		return t.emit(TokenLeftParen)

	case r == ')':
		t.step()
		return t.emit(TokenRightParen)

	case t.isOperator(r) && isOperatorBreak(t.peek()):
		t.append(r)
		t.step()
		return t.emit(TokenOperator)

	case isAlpha(r):
		return t.scanIdentifier()
	}

	t.step()
	return t.errorf("unknown character: %q", r)
}

func (t *Tokenizer) eatWhitespace() {
	for !t.AtEnd() && isWhitespace(t.current()) {
		t.step()
	}
}

func (t *Tokenizer) scanNumber() Token {
	t.append(t.current())
	t.step()

	for !t.AtEnd() && isDigit(t.current()) {
		t.append(t.current())
		t.step()
	}

	if t.AtEnd() || t.current() != '.' {
		return t.emit(TokenNumber)
	}

	// A digit has to follow the decimal point. Consume the point either way
	// so the cursor keeps moving on a malformed number.
	if p := t.peek(); !isDigit(p) {
		number := string(t.buf)
		t.step()
		if p == rune(0) {
			return t.errorf("expected digit but got end of input in number %s", number)
		}
		return t.errorf("expected digit but got %q in number %s", p, number)
	}

	t.append(t.current())
	t.step()

	for !t.AtEnd() && isDigit(t.current()) {
		t.append(t.current())
		t.step()
	}

	return t.emit(TokenNumber)
}

// scanIdentifier scans an identifier or a cell reference. Only the first
// character decides which of the two kinds it is.
func (t *Tokenizer) scanIdentifier() Token {
	tt := TokenIdentifier
	if isUpperAlpha(t.current()) {
		tt = TokenCell
	}

	t.append(t.current())
	t.step()

	for !t.AtEnd() && (isAlpha(t.current()) || isDigit(t.current())) {
		t.append(t.current())
		t.step()
	}

	return t.emit(tt)
}

// Tokenize splits input into all of its lexical units, including the
// terminating EOF token.
func Tokenize(input string, operators []rune) []Token {
	tz := New(input, operators)

	tokens := []Token{}
	for {
		tok := tz.Next()
		tokens = append(tokens, tok)

		if tok.Is(TokenEOF) {
			return tokens
		}
	}
}

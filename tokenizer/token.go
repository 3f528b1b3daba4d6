package tokenizer

import (
	"fmt"
)

// TokenType represents all the possible kinds of a lexical unit
type TokenType uint8

// List of kinds of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenLeftParen            // Open parenthesis: "("
	TokenRightParen           // Close parenthesis: ")"
	TokenOperator             // Single character from the operator alphabet
	TokenNumber               // Integer or decimal number, possibly signed
	TokenIdentifier           // Name that starts with a lowercase letter or "-"
	TokenCell                 // Cell reference, starts with an uppercase letter
	TokenError                // Scan failure, the lexeme holds the description
	TokenEOF                  // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenLeftParen:  "left_paren",
	TokenRightParen: "right_paren",
	TokenOperator:   "operator",
	TokenNumber:     "number",
	TokenIdentifier: "identifier",
	TokenCell:       "cell",
	TokenError:      "error",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	pos int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, pos int) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		pos:    pos,
	}
}

// Type returns the kind of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the offset of the first character of the lexical unit
func (t Token) Pos() int {
	return t.pos
}

// Text returns the raw text of the lexical unit. The token owns this
// string, it stays valid after the next call to the tokenizer.
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given kind
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d])", t.tt, t.lexeme, t.pos)
}

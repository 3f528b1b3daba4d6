package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenAccessors(t *testing.T) {
	tok := NewToken(TokenCell, "A1", 4)

	assert.Equal(t, TokenCell, tok.Type())
	assert.Equal(t, "A1", tok.Text())
	assert.Equal(t, 4, tok.Pos())

	assert.True(t, tok.Is(TokenCell))
	assert.False(t, tok.Is(TokenIdentifier))

	assert.Equal(t, `(:cell "A1" [4])`, tok.String())
}

func TestTokenTypeName(t *testing.T) {
	assert.Equal(t, "EOF", TokenEOF.String())
	assert.Equal(t, "number", TokenNumber.String())

	// Unknown values fall back to the invalid name.
	assert.Equal(t, "invalid", TokenType(250).String())
}

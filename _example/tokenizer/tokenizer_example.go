package main

import (
	"fmt"

	"github.com/wibbe/zum/tokenizer"
)

func main() {
	input := `(+ A1 (* B2 -1.5) profit)`

	tokens := tokenizer.Tokenize(input, tokenizer.DefaultOperators)

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v, pos: %d)\n\t-> %q\n\n", i, tok.Type(), tok.Pos(), tok.Text())
	}
}

package bnf

import "unicode"

// operators are the single-character grammar tokens; every other atomic
// token is an identifier (a maximal run of non-whitespace, non-operator
// characters).
const operators = "|+*?()"

// Tokenize splits a grammar string into its atomic tokens: identifiers and
// the single-character operators "| + * ? ( )". Runs of whitespace
// separate tokens and are themselves discarded.
//
//	Tokenize(`a b | (a)+ | ((a | b)+)+ | b? | `)
//	  == []string{"a", "b", "|", "(", "a", ")", "+", "|",
//	              "(", "(", "a", "|", "b", ")", "+", ")", "+", "|",
//	              "b", "?", "|"}
func Tokenize(grammar string) []string {
	var tokens []string
	var ident []rune
	flush := func() {
		if len(ident) > 0 {
			tokens = append(tokens, string(ident))
			ident = ident[:0]
		}
	}
	for _, r := range grammar {
		switch {
		case unicode.IsSpace(r):
			flush()
		case isOperator(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			ident = append(ident, r)
		}
	}
	flush()
	return tokens
}

func isOperator(r rune) bool {
	for _, op := range operators {
		if op == r {
			return true
		}
	}
	return false
}

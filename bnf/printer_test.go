package bnf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Testable property 7: grammar round-trip for canonical-form grammars.
func TestPrintRoundTripsCanonicalForms(t *testing.T) {
	names := map[string]interface{}{"a": "a", "b": "b", "c": "c"}
	cases := []string{
		"a",
		"a b",
		"a | b",
		"a+",
		"a*",
		"a?",
		"(a | b)+",
		"((a | b)+)+",
		"a (b | c) a",
	}
	for _, grammar := range cases {
		t.Run(grammar, func(t *testing.T) {
			node := compile(t, grammar, names)
			require.Equal(t, grammar, Print(node))
		})
	}
}

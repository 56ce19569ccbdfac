package bnf

import "github.com/alecthomas/repr"

// Dump renders n as a fully-expanded Go-syntax-like representation, for use
// in diagnostics and in tests that assert on tree shape rather than on the
// printed BNF form.
func Dump(n Node) string {
	return repr.String(n, repr.Indent("  "))
}

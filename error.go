package bnflex

import (
	"github.com/alecthomas/bnflex/bnf"
	"github.com/alecthomas/bnflex/lexer"
)

// Error is satisfied by every structural/contract error this module raises:
// lexer.MatcherContractError, lexer.TerminalDefinitionError and
// bnf.StructuralError all implement it.
type Error interface {
	error
	Message() string
}

var (
	_ Error = (*lexer.MatcherContractError)(nil)
	_ Error = (*lexer.TerminalDefinitionError)(nil)
	_ Error = (*bnf.StructuralError)(nil)
)

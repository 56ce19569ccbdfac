package bnf

import "fmt"

// StructuralError reports malformed BNF: unbalanced parentheses, a dangling
// operator, or an identifier that was never resolved to a reference.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string   { return e.Msg }
func (e *StructuralError) Message() string { return e.Msg }

func structuralf(format string, args ...interface{}) *StructuralError {
	return &StructuralError{Msg: fmt.Sprintf(format, args...)}
}

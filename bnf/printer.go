package bnf

import "strings"

// Print renders n back into canonical BNF source: single spaces between
// tokens, and parentheses only where the grammar's own precedence requires
// them (around an alternation used as a sequence term, and around any
// non-identifier term that a postfix quantifier is applied to). For a Node
// tree produced by lowering an already-canonical grammar string, Print
// reproduces that string exactly.
func Print(n Node) string {
	switch t := n.(type) {
	case *RefNode:
		return t.Name
	case *EmptyNode:
		return ""
	case *SeqNode:
		parts := make([]string, len(t.Items))
		for i, c := range t.Items {
			parts[i] = printSeqTerm(c)
		}
		return strings.Join(parts, " ")
	case *AltNode:
		parts := make([]string, len(t.Items))
		for i, c := range t.Items {
			parts[i] = Print(c)
		}
		return strings.Join(parts, " | ")
	case *MoreNode:
		return printQuantifiedOperand(t.Child) + "+"
	case *RepeatNode:
		return printQuantifiedOperand(t.Child) + "*"
	case *OptNode:
		return printQuantifiedOperand(t.Child) + "?"
	default:
		return ""
	}
}

// printSeqTerm renders a node as one term of a sequence: an alternation
// needs parens to avoid binding its "|" across the whole sequence.
func printSeqTerm(n Node) string {
	if n.Kind() == KindAlt {
		return "(" + Print(n) + ")"
	}
	return Print(n)
}

// printQuantifiedOperand renders the operand of a postfix quantifier: only
// a bare reference is a valid "atom" on its own, so anything else (a
// sequence, alternation, or already-quantified node) must be parenthesized
// to become one.
func printQuantifiedOperand(n Node) string {
	if n.Kind() == KindRef {
		return Print(n)
	}
	return "(" + Print(n) + ")"
}

// Package bnf compiles a small BNF-like grammar notation — keywords for
// references, "|" for alternation, "()" for grouping, and postfix "+ * ?"
// quantifiers — into a tagged-variant rule tree.
//
// Compilation runs in four stages, mirroring
// github.com/alecthomas/participle's own grammar-string walk in its root
// grammar.go (parseDisjunction/parseSequence/parseTerm over a token
// stream), but reified as four standalone passes instead of one recursive
// descent over a live lexer, so that the intermediate group tree (stage 3)
// is itself inspectable:
//
//  1. Tokenize (BnfTokenizer): split the grammar string into atomic tokens.
//  2. Resolve (BnfResolver): substitute identifier tokens with user-supplied
//     references.
//  3. Group (GroupBuilder): assemble a parenthesis-nested group tree.
//  4. Lower (RuleLowering): detect alternation vs. sequence at each group
//     and bind postfix quantifiers, producing the canonical Node tree.
package bnf

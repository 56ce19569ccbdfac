// Package bnflex is a parser-construction toolkit: a mode-aware priority
// lexer (package lexer) and a BNF-driven grammar compiler (package bnf),
// tied together here by a small declaration API.
//
// Declaring a terminal or a rule is a plain function call that returns a
// compiled value — there is no declaration-time exception/carrier dance.
// Terminal compiles a matcher source into a lexer.TerminalSpec; Build
// assembles a set of them into a lexer.LexerEngine. Rule (and its
// template-style sibling RuleTemplate) compile BNF source into a bnf.Node
// rule tree.
//
// bnflex itself stops at producing the token stream and the rule tree — an
// actual recursive-descent parser driven by the rule tree is a downstream
// concern, deliberately out of scope.
package bnflex

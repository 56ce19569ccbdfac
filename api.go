package bnflex

import (
	"fmt"

	"github.com/alecthomas/bnflex/bnf"
	"github.com/alecthomas/bnflex/lexer"
)

// RegexSource marks a string as a regular-expression pattern rather than a
// literal keyword, for use as Terminal's matcherSrc argument.
type RegexSource string

// TerminalOption configures a TerminalSpec built by Terminal.
type TerminalOption func(*lexer.TerminalSpec)

// InChannel routes the terminal's matches to the named output channel
// instead of "default".
func InChannel(name string) TerminalOption {
	return func(s *lexer.TerminalSpec) { s.Channel = name }
}

// AtPriority overrides the terminal's tie-breaking priority (default 0;
// higher wins).
func AtPriority(p int) TerminalOption {
	return func(s *lexer.TerminalSpec) { s.Priority = p }
}

// InMode gates the terminal to only be considered while the given mode is
// on top of the mode stack.
func InMode(name string) TerminalOption {
	return func(s *lexer.TerminalSpec) { s.Mode = lexer.Mode(name) }
}

// Pushing causes a successful match to push the given mode.
func Pushing(mode string) TerminalOption {
	return func(s *lexer.TerminalSpec) { s.PushMode = mode }
}

// Popping causes a successful match to pop the mode stack.
func Popping() TerminalOption {
	return func(s *lexer.TerminalSpec) { s.PopMode = true }
}

// Terminal compiles matcherSrc — a literal keyword string, a RegexSource
// pattern, a lexer.PredicateFunc, or an already-built lexer.Matcher — into
// a lexer.TerminalSpec, applying opts in order. This is the declaration
// site: it returns the compiled spec directly rather than communicating it
// out-of-band.
func Terminal(name string, matcherSrc interface{}, opts ...TerminalOption) (lexer.TerminalSpec, error) {
	matcher, err := compileMatcher(matcherSrc)
	if err != nil {
		return lexer.TerminalSpec{}, fmt.Errorf("terminal %q: %w", name, err)
	}
	spec := lexer.TerminalSpec{Name: name, Matcher: matcher}
	for _, opt := range opts {
		opt(&spec)
	}
	return spec, nil
}

func compileMatcher(src interface{}) (lexer.Matcher, error) {
	switch v := src.(type) {
	case string:
		return lexer.Literal(v)
	case RegexSource:
		return lexer.Regex(string(v))
	case lexer.PredicateFunc:
		return lexer.Predicate(v)
	case lexer.Matcher:
		return v, nil
	case nil:
		return nil, &lexer.TerminalDefinitionError{Msg: "missing matcher"}
	default:
		return nil, &lexer.TerminalDefinitionError{Msg: fmt.Sprintf("unsupported matcher source %T", src)}
	}
}

// Build compiles a set of TerminalSpec values (as returned by Terminal)
// into a ready-to-run LexerEngine.
func Build(specs []lexer.TerminalSpec) (*lexer.LexerEngine, error) {
	registry, err := lexer.NewTerminalRegistry(specs)
	if err != nil {
		return nil, err
	}
	return lexer.NewLexerEngine(registry), nil
}

// Rule compiles grammar (single-string BNF source) into a rule tree,
// substituting each identifier found in names with a reference to its
// handle.
func Rule(grammar string, names map[string]interface{}) (bnf.Node, error) {
	atoms := bnf.ResolveNames(grammar, names)
	return lowerAtoms(atoms)
}

// RuleTemplate compiles an interleaved sequence of BNF-source string
// fragments and already-resolved reference handles — the shape produced by
// a grammar-template style API — into a rule tree.
func RuleTemplate(parts ...interface{}) (bnf.Node, error) {
	atoms := bnf.ResolveFragments(parts...)
	return lowerAtoms(atoms)
}

func lowerAtoms(atoms []interface{}) (bnf.Node, error) {
	group, err := bnf.BuildGroups(atoms)
	if err != nil {
		return nil, err
	}
	return bnf.Lower(group)
}

package lexer

import "regexp"

// NoMatch is returned by Matcher.Try when no match was found at start.
const NoMatch = -1

// Matcher is the uniform "try a match at offset" primitive every terminal is
// built from. Implementations must be pure with respect to input: Try may be
// called many times at any offset without cross-call state.
type Matcher interface {
	// Try attempts a match of input beginning exactly at start, returning
	// the end index of the match, or NoMatch.
	Try(input string, start int) (end int, err error)
}

type literalMatcher struct {
	kw string
}

// Literal returns a Matcher that succeeds iff input starts with kw at the
// offered start index, returning start+len(kw). kw must be non-empty.
func Literal(kw string) (Matcher, error) {
	if kw == "" {
		return nil, terminalDefinitionf("literal matcher requires a non-empty keyword")
	}
	return &literalMatcher{kw: kw}, nil
}

func (m *literalMatcher) Try(input string, start int) (int, error) {
	end := start + len(m.kw)
	if end > len(input) {
		return NoMatch, nil
	}
	if input[start:end] != m.kw {
		return NoMatch, nil
	}
	return end, nil
}

type regexMatcher struct {
	re *regexp.Regexp
}

// Regex compiles pattern and returns a Matcher anchored at the offered start
// index: it never matches further into the input than start, regardless of
// what the host regexp engine's own anchoring semantics are, because the
// match is run only against input[start:] and reported relative to start.
func Regex(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, terminalDefinitionf("invalid regex %q: %s", pattern, err)
	}
	return &regexMatcher{re: re}, nil
}

func (m *regexMatcher) Try(input string, start int) (int, error) {
	loc := m.re.FindStringIndex(input[start:])
	if loc == nil || loc[0] != 0 {
		return NoMatch, nil
	}
	if loc[1] == 0 {
		return NoMatch, nil
	}
	return start + loc[1], nil
}

// PredicateFunc is a user-supplied matcher callback. A returned end index
// <= start is a fatal MatcherContractError: the terminal would never
// advance the lexer's cursor.
type PredicateFunc func(input string, start int) (end int, err error)

type predicateMatcher struct {
	fn PredicateFunc
}

// Predicate wraps fn as a Matcher.
func Predicate(fn PredicateFunc) (Matcher, error) {
	if fn == nil {
		return nil, terminalDefinitionf("predicate matcher requires a non-nil function")
	}
	return &predicateMatcher{fn: fn}, nil
}

func (m *predicateMatcher) Try(input string, start int) (int, error) {
	end, err := m.fn(input, start)
	if err != nil {
		return NoMatch, err
	}
	if end == NoMatch {
		return NoMatch, nil
	}
	if end <= start {
		return NoMatch, matcherContractf(Position{}, "predicate matcher returned end %d <= start %d", end, start)
	}
	return end, nil
}

package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteralMatcher(t *testing.T) {
	m, err := Literal("if")
	require.NoError(t, err)

	end, err := m.Try("if x", 0)
	require.NoError(t, err)
	require.Equal(t, 2, end)

	end, err = m.Try("xif", 1)
	require.NoError(t, err)
	require.Equal(t, 3, end)

	end, err = m.Try("ifx", 0)
	require.NoError(t, err)
	require.Equal(t, 2, end)

	end, err = m.Try("nope", 0)
	require.NoError(t, err)
	require.Equal(t, NoMatch, end)
}

func TestLiteralRequiresNonEmpty(t *testing.T) {
	_, err := Literal("")
	require.Error(t, err)
}

func TestRegexMatcherIsAnchored(t *testing.T) {
	m, err := Regex(`[0-9]+`)
	require.NoError(t, err)

	// "abc123" at start=3 should match "123", never skipping ahead to find it.
	end, err := m.Try("abc123", 3)
	require.NoError(t, err)
	require.Equal(t, 6, end)

	// At start=0 there is no digit run beginning exactly there.
	end, err = m.Try("abc123", 0)
	require.NoError(t, err)
	require.Equal(t, NoMatch, end)
}

func TestRegexMatcherRejectsZeroWidth(t *testing.T) {
	m, err := Regex(`[0-9]*`)
	require.NoError(t, err)
	end, err := m.Try("abc", 0)
	require.NoError(t, err)
	require.Equal(t, NoMatch, end)
}

func TestPredicateMatcher(t *testing.T) {
	m, err := Predicate(func(input string, start int) (int, error) {
		if input[start] == 'x' {
			return start + 1, nil
		}
		return NoMatch, nil
	})
	require.NoError(t, err)

	end, err := m.Try("xyz", 0)
	require.NoError(t, err)
	require.Equal(t, 1, end)

	end, err = m.Try("yz", 0)
	require.NoError(t, err)
	require.Equal(t, NoMatch, end)
}

func TestPredicateMatcherContractViolation(t *testing.T) {
	m, err := Predicate(func(input string, start int) (int, error) {
		return start, nil // did not advance: a usage error.
	})
	require.NoError(t, err)

	_, err = m.Try("x", 0)
	require.Error(t, err)
	var contractErr *MatcherContractError
	require.ErrorAs(t, err, &contractErr)
}

func TestPredicateRequiresNonNilFunc(t *testing.T) {
	_, err := Predicate(nil)
	require.Error(t, err)
}

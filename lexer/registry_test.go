package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustLiteral(t *testing.T, kw string) Matcher {
	t.Helper()
	m, err := Literal(kw)
	require.NoError(t, err)
	return m
}

func TestRegistryDefaults(t *testing.T) {
	reg, err := NewTerminalRegistry([]TerminalSpec{
		{Name: "A", Matcher: mustLiteral(t, "a")},
	})
	require.NoError(t, err)
	require.Equal(t, "default", reg.Terminals()[0].Channel)
	require.Equal(t, []string{"default"}, reg.Channels())
}

func TestRegistryMissingMatcher(t *testing.T) {
	_, err := NewTerminalRegistry([]TerminalSpec{{Name: "A"}})
	require.Error(t, err)
	var defErr *TerminalDefinitionError
	require.ErrorAs(t, err, &defErr)
}

func TestRegistrySortsByPriorityStable(t *testing.T) {
	reg, err := NewTerminalRegistry([]TerminalSpec{
		{Name: "low-first", Matcher: mustLiteral(t, "a"), Priority: 0},
		{Name: "high", Matcher: mustLiteral(t, "b"), Priority: 10},
		{Name: "low-second", Matcher: mustLiteral(t, "c"), Priority: 0},
	})
	require.NoError(t, err)
	var names []string
	for _, tm := range reg.Terminals() {
		names = append(names, tm.Name)
	}
	require.Equal(t, []string{"high", "low-first", "low-second"}, names)
}

func TestRegistryCollectsDistinctChannels(t *testing.T) {
	reg, err := NewTerminalRegistry([]TerminalSpec{
		{Name: "A", Matcher: mustLiteral(t, "a"), Channel: "skip"},
		{Name: "B", Matcher: mustLiteral(t, "b")},
		{Name: "C", Matcher: mustLiteral(t, "c"), Channel: "skip"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"skip", "default"}, reg.Channels())
}

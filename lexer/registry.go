package lexer

import "sort"

// TerminalRegistry holds compiled terminal definitions, sorted by priority
// (descending, stable on declaration order for ties), plus the full set of
// distinct output channels they declare.
type TerminalRegistry struct {
	terminals []TerminalSpec
	channels  []string
}

// NewTerminalRegistry compiles decls into a TerminalRegistry: it assigns the
// "default" channel to any TerminalSpec without one, validates that every
// spec carries a Matcher, and sorts the result by Priority descending
// (stable, so equal-priority terminals keep their declaration order).
func NewTerminalRegistry(decls []TerminalSpec) (*TerminalRegistry, error) {
	terminals := make([]TerminalSpec, len(decls))
	seen := map[string]bool{}
	var channels []string
	for i, d := range decls {
		if d.Matcher == nil {
			return nil, terminalDefinitionf("terminal %q: missing matcher", d.Name)
		}
		if d.Channel == "" {
			d.Channel = "default"
		}
		if !seen[d.Channel] {
			seen[d.Channel] = true
			channels = append(channels, d.Channel)
		}
		terminals[i] = d
	}
	sort.SliceStable(terminals, func(i, j int) bool {
		return terminals[i].Priority > terminals[j].Priority
	})
	return &TerminalRegistry{terminals: terminals, channels: channels}, nil
}

// Terminals returns the priority-sorted terminal list.
func (r *TerminalRegistry) Terminals() []TerminalSpec {
	return r.terminals
}

// Channels returns the distinct channel names declared by the registry's
// terminals, in first-seen order.
func (r *TerminalRegistry) Channels() []string {
	return r.channels
}

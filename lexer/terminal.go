package lexer

// TerminalSpec is a compiled terminal definition: a Matcher plus the
// priority, mode-gating, mode-stack effects and output channel that govern
// how the LexerEngine selects and dispatches it.
type TerminalSpec struct {
	Name     string
	Matcher  Matcher
	Channel  string
	Priority int
	// Mode gates this terminal to only be considered when it equals the
	// mode stack's top (Unset means: only when the stack is empty).
	Mode ModeName
	// PushMode, if non-empty, is pushed onto the mode stack on a
	// successful match.
	PushMode string
	// PopMode, if true, pops the mode stack on a successful match.
	PopMode bool
}

// ModeName is a lexer mode, with the zero value meaning "unset" (matches
// only when the mode stack is empty).
type ModeName struct {
	set   bool
	value string
}

// Unset is the zero ModeName: a terminal with an unset mode is only
// considered while the mode stack is empty.
var Unset = ModeName{}

// Mode constructs a set ModeName.
func Mode(name string) ModeName {
	return ModeName{set: true, value: name}
}

func (m ModeName) String() string {
	if !m.set {
		return "<unset>"
	}
	return m.value
}

// modeStack is an ordered pushdown stack of mode names.
type modeStack struct {
	stack []string
}

// top returns the current mode as a ModeName (Unset if the stack is empty).
func (s *modeStack) top() ModeName {
	if len(s.stack) == 0 {
		return Unset
	}
	return Mode(s.stack[len(s.stack)-1])
}

func (s *modeStack) push(name string) {
	s.stack = append(s.stack, name)
}

// pop removes the top mode. Popping an empty stack is a silent no-op, per
// the reference lexer's behavior.
func (s *modeStack) pop() {
	if len(s.stack) == 0 {
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// gates reports whether the terminal's mode matches the given stack top.
func (t TerminalSpec) gates(top ModeName) bool {
	return t.Mode == top
}

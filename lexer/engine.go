package lexer

// LexerEngine drives a cursor across an input string, selecting at each
// position the highest-priority terminal (in the registry's declared order,
// which is already priority-sorted) whose Matcher succeeds under the
// current mode. It is single-use per Exec call: all state (cursor, mode
// stack, position tracker) is local to one Exec and discarded on return.
type LexerEngine struct {
	registry *TerminalRegistry
}

// NewLexerEngine builds an engine from a compiled registry. The registry is
// immutable and may be shared by any number of engines / Exec calls.
func NewLexerEngine(registry *TerminalRegistry) *LexerEngine {
	return &LexerEngine{registry: registry}
}

// Exec tokenizes input in full, returning the grouped success channels and
// the failure fragments.
func (e *LexerEngine) Exec(input string) (LexResult, error) {
	runes := []rune(input)
	n := len(runes)

	// byteOffsetOf[i] is the byte offset of rune i; used to hand Matcher
	// (which operates on the raw string) the right start index and to map
	// its returned end index back onto a rune boundary.
	byteOffsetOf := make([]int, n+1)
	off := 0
	for i, r := range runes {
		byteOffsetOf[i] = off
		off += len(string(r))
	}
	byteOffsetOf[n] = off

	success := make(map[string][]Token, len(e.registry.channels))
	for _, ch := range e.registry.channels {
		success[ch] = nil
	}
	result := LexResult{Success: success}

	tracker := NewPositionTracker()
	var modes modeStack

	pos := 0     // rune index of the cursor
	errRun := -1 // rune index where the current failure run began, or -1

	for pos < n {
		top := modes.top()
		matchedSpec, endPos, err := firstMatch(e.registry.terminals, top, input, byteOffsetOf, pos)
		if err != nil {
			return LexResult{}, err
		}

		if matchedSpec == nil {
			if errRun < 0 {
				errRun = pos
			}
			pos++
			continue
		}

		if errRun >= 0 {
			result.Fail = append(result.Fail, emit(tracker, runes, errRun, pos))
			errRun = -1
		}

		if matchedSpec.PushMode != "" {
			modes.push(matchedSpec.PushMode)
		}
		if matchedSpec.PopMode {
			modes.pop()
		}

		tok := emit(tracker, runes, pos, endPos)
		result.Success[matchedSpec.Channel] = append(result.Success[matchedSpec.Channel], tok)
		pos = endPos
	}
	if errRun >= 0 {
		result.Fail = append(result.Fail, emit(tracker, runes, errRun, pos))
	}
	return result, nil
}

// firstMatch scans terminals in priority order and returns the first one
// gated open under top whose Matcher succeeds at pos, along with its match
// end (as a rune index). It returns a nil spec if none matched.
func firstMatch(terminals []TerminalSpec, top ModeName, input string, byteOffsetOf []int, pos int) (*TerminalSpec, int, error) {
	byteStart := byteOffsetOf[pos]
	for i := range terminals {
		spec := &terminals[i]
		if !spec.gates(top) {
			continue
		}
		byteEnd, err := spec.Matcher.Try(input, byteStart)
		if err != nil {
			return nil, 0, err
		}
		if byteEnd == NoMatch || byteEnd <= byteStart {
			continue
		}
		endPos := runeIndexForByteOffset(byteOffsetOf, byteEnd)
		if endPos <= pos {
			continue
		}
		return spec, endPos, nil
	}
	return nil, 0, nil
}

// emit advances tracker past runes[from:to] and returns the resulting Token.
func emit(tracker *PositionTracker, runes []rune, from, to int) Token {
	content := string(runes[from:to])
	start, end := tracker.Advance(content)
	return Token{Content: content, Start: start, End: end}
}

// runeIndexForByteOffset finds the rune index i such that byteOffsetOf[i] ==
// byteOffset, via binary search over the monotonically increasing table.
func runeIndexForByteOffset(byteOffsetOf []int, byteOffset int) int {
	lo, hi := 0, len(byteOffsetOf)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if byteOffsetOf[mid] < byteOffset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

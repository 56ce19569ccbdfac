// Package lexer implements a mode-aware, priority-ordered, first-match
// tokenizer: at each position the first terminal (in priority order) that
// matches wins, however much input another terminal could have consumed.
//
// Terminals are described as TerminalSpec values; a
// LexerEngine built from a TerminalRegistry drives a cursor across an input
// string, selecting at each position the highest-priority terminal whose
// Matcher succeeds under the current mode. Results are grouped into named
// channels; runs of unrecognized input are coalesced into failure fragments
// rather than aborting the scan.
//
// This design mirrors github.com/alecthomas/participle's lexer/stateful
// package (regex rules grouped by state, Push/Pop mode transitions) but
// generalizes "state" into an explicit mode stack available to every
// Matcher kind, not just regexes, and reports unmatched runs instead of
// erroring out of the scan.
package lexer

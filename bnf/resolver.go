package bnf

// Ref is a resolved reference to a named grammar symbol: Handle is whatever
// opaque constructor/handle value the user registered for Name (e.g. a
// pointer to a rule-node constructor, or a small integer token id). Name is
// kept only for diagnostics and pretty-printing.
type Ref struct {
	Handle interface{}
	Name   string
}

// ResolveNames tokenizes grammar and substitutes every identifier token
// that matches a key in names with its Ref. Operators pass through
// unchanged; unrecognized identifiers remain as plain strings (a
// StructuralError is raised for them later, at lowering, if they were
// meant to be references).
func ResolveNames(grammar string, names map[string]interface{}) []interface{} {
	return substitute(Tokenize(grammar), names)
}

func substitute(tokens []string, names map[string]interface{}) []interface{} {
	atoms := make([]interface{}, 0, len(tokens))
	for _, tok := range tokens {
		if isOperatorToken(tok) {
			atoms = append(atoms, tok)
			continue
		}
		if handle, ok := names[tok]; ok {
			atoms = append(atoms, Ref{Handle: handle, Name: tok})
			continue
		}
		atoms = append(atoms, tok)
	}
	return atoms
}

// ResolveFragments accepts an interleaved sequence of grammar-string
// fragments and already-resolved reference values (as produced by a
// grammar-template style API). Each string fragment is tokenized in place;
// every non-string value is treated as an already-resolved reference and
// inserted at its position.
func ResolveFragments(parts ...interface{}) []interface{} {
	var atoms []interface{}
	for _, part := range parts {
		if s, ok := part.(string); ok {
			atoms = append(atoms, stringAtoms(Tokenize(s))...)
			continue
		}
		if ref, ok := part.(Ref); ok {
			atoms = append(atoms, ref)
			continue
		}
		atoms = append(atoms, Ref{Handle: part})
	}
	return atoms
}

func stringAtoms(tokens []string) []interface{} {
	atoms := make([]interface{}, len(tokens))
	for i, t := range tokens {
		atoms[i] = t
	}
	return atoms
}

func isOperatorToken(tok string) bool {
	return len(tok) == 1 && isOperator(rune(tok[0]))
}

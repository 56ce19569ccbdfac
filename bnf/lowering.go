package bnf

// Lower lowers a Group tree into the canonical Node tree:
//
//  1. An empty group lowers to Empty.
//  2. A group is an alternation iff it contains "|" at its own top level
//     (not inside a nested group); it is split at each "|" and each segment
//     is lowered recursively, producing Alt(segments). Consecutive "|"s, or
//     a leading/trailing one, yield Empty segments.
//  3. Otherwise the group is lowered as a sequence: each Ref becomes a
//     RefNode, each nested Group is lowered recursively, and a node
//     immediately followed by "+"/"*"/"?" is wrapped in More/Repeat/Opt
//     (consuming the operator). A single resulting node is returned
//     directly rather than wrapped in Seq.
//
// An operator with no preceding operand, or an identifier that was never
// resolved to a Ref, is a StructuralError.
func Lower(g *Group) (Node, error) {
	if len(g.Items) == 0 {
		return &EmptyNode{}, nil
	}
	if containsTopLevelPipe(g.Items) {
		return lowerAlternation(g.Items)
	}
	return lowerSequence(g.Items)
}

func containsTopLevelPipe(items []interface{}) bool {
	for _, it := range items {
		if s, ok := it.(string); ok && s == "|" {
			return true
		}
	}
	return false
}

func lowerAlternation(items []interface{}) (Node, error) {
	var segments [][]interface{}
	var cur []interface{}
	for _, it := range items {
		if s, ok := it.(string); ok && s == "|" {
			segments = append(segments, cur)
			cur = nil
			continue
		}
		cur = append(cur, it)
	}
	segments = append(segments, cur)

	nodes := make([]Node, len(segments))
	for i, seg := range segments {
		n, err := Lower(&Group{Items: seg})
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return &AltNode{Items: nodes}, nil
}

func lowerSequence(items []interface{}) (Node, error) {
	var seq []Node
	i := 0
	for i < len(items) {
		node, err := lowerAtom(items[i])
		if err != nil {
			return nil, err
		}
		i++
		if i < len(items) {
			if op, ok := items[i].(string); ok {
				switch op {
				case "+":
					node, i = &MoreNode{Child: node}, i+1
				case "*":
					node, i = &RepeatNode{Child: node}, i+1
				case "?":
					node, i = &OptNode{Child: node}, i+1
				}
			}
		}
		seq = append(seq, node)
	}
	switch len(seq) {
	case 0:
		return &EmptyNode{}, nil
	case 1:
		return seq[0], nil
	default:
		return &SeqNode{Items: seq}, nil
	}
}

func lowerAtom(atom interface{}) (Node, error) {
	switch v := atom.(type) {
	case Ref:
		return &RefNode{Handle: v.Handle, Name: v.Name}, nil
	case *Group:
		return Lower(v)
	case string:
		if isOperatorToken(v) {
			return nil, structuralf("operator %q with no preceding operand", v)
		}
		return nil, structuralf("unresolved identifier %q", v)
	default:
		return nil, structuralf("unexpected grammar atom of type %T", atom)
	}
}

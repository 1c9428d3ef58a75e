package hierarchy

// PropagateParallel copies parent values down one generation. For every
// non-root node v, the output is input[Parent(v)] when condition[v] holds
// and input[v] otherwise; the root keeps input[root]. A nil condition
// propagates everywhere. Each output depends only on the input, never on
// another output.
func PropagateParallel[T any](t *Tree, input []T, condition []bool) ([]T, error) {
	if err := checkLen("input", len(input), t.NumNodes()); err != nil {
		return nil, err
	}
	if condition != nil {
		if err := checkLen("condition", len(condition), t.NumNodes()); err != nil {
			return nil, err
		}
	}
	out := make([]T, t.NumNodes())
	propagateParallelRange(t, input, condition, out, 0, t.NumNodes())
	return out, nil
}

func propagateParallelRange[T any](t *Tree, input []T, condition []bool, out []T, start, end int) {
	for v := start; v < end; v++ {
		if condition == nil || condition[v] {
			out[v] = input[t.parents[v]]
		} else {
			out[v] = input[v]
		}
	}
}

// PropagateSequential copies values down the tree transitively. Nodes are
// visited from the root toward the leaves; a node whose condition holds
// takes the output of its parent, which may itself have been propagated
// from further up. The condition is required and must have length
// t.NumNodes().
func PropagateSequential[T any](t *Tree, input []T, condition []bool) ([]T, error) {
	if err := checkLen("input", len(input), t.NumNodes()); err != nil {
		return nil, err
	}
	if err := checkLen("condition", len(condition), t.NumNodes()); err != nil {
		return nil, err
	}
	out := make([]T, t.NumNodes())
	root := t.Root()
	out[root] = input[root]
	for v := root - 1; v >= 0; v-- {
		out[v] = propagateNode(t, input, condition, out, v)
	}
	return out, nil
}

func propagateNode[T any](t *Tree, input []T, condition []bool, out []T, v int) T {
	if condition[v] {
		return out[t.parents[v]]
	}
	return input[v]
}

package hierarchy

import "fmt"

// OfflineLCA answers a batch of lowest common ancestor queries with
// Tarjan's offline algorithm: one post-order walk of the tree merging each
// finished subtree into its parent with a UnionFind. It needs no
// preprocessing that outlives the call, which suits one-shot batches;
// repeated queries on the same tree are better served by NewLCA.
func OfflineLCA(t *Tree, us, vs []int) ([]int, error) {
	if len(us) != len(vs) {
		return nil, fmt.Errorf("%w: %d first vertices, %d second vertices", ErrShapeMismatch, len(us), len(vs))
	}
	n := t.NumNodes()

	type query struct{ other, index int }
	pending := make([][]query, n)
	for i := range us {
		if err := t.checkNode(us[i]); err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		if err := t.checkNode(vs[i]); err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		pending[us[i]] = append(pending[us[i]], query{vs[i], i})
		if us[i] != vs[i] {
			pending[vs[i]] = append(pending[vs[i]], query{us[i], i})
		}
	}

	// Finished subtrees are merged into their parent's set, so the label
	// of a finished node's set is its deepest ancestor still open.
	uf := NewUnionFind(n)
	done := make([]bool, n)
	out := make([]int, len(us))

	type frame struct{ node, next int }
	stack := []frame{{node: t.Root()}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < t.NumChildren(top.node) {
			c := t.Child(top.next, top.node)
			top.next++
			stack = append(stack, frame{node: c})
			continue
		}

		v := top.node
		stack = stack[:len(stack)-1]
		done[v] = true
		for _, q := range pending[v] {
			if done[q.other] {
				out[q.index] = uf.Label(q.other)
			}
		}
		if v != t.Root() {
			uf.Union(t.Parent(v), v)
		}
	}
	return out, nil
}

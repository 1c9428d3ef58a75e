package hierarchy

import (
	"fmt"
	"math/bits"
)

// LCA answers lowest common ancestor queries on a Tree in O(1) time after
// O(n log n) preprocessing.
//
// The structure is an Euler tour of the tree paired with a sparse table for
// range minimum queries on node depth: the lowest common ancestor of u and v
// is the shallowest node visited by the tour between the first visits of u
// and v. An LCA is immutable once built and safe for concurrent queries.
type LCA struct {
	tree  *Tree
	depth []int
	// first[v] is the position of the first visit of v in the tour.
	first []int
	// rangeMin[k][i] is the shallowest node on tour positions
	// i to i+1<<k-1, inclusive.
	rangeMin [][]int
}

// NewLCA preprocesses t for lowest common ancestor queries.
func NewLCA(t *Tree) *LCA {
	n := t.NumNodes()
	l := &LCA{
		tree:  t,
		depth: t.Depths(),
		first: make([]int, n),
	}

	// Each node appears once per child plus once more in the tour.
	tour := make([]int, 0, 2*n-1)
	type frame struct {
		node int
		next int // index of the next child to descend into
	}
	stack := []frame{{node: t.Root()}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == 0 {
			l.first[top.node] = len(tour)
		}
		tour = append(tour, top.node)
		if top.next == t.NumChildren(top.node) {
			stack = stack[:len(stack)-1]
			continue
		}
		c := t.Child(top.next, top.node)
		top.next++
		stack = append(stack, frame{node: c})
	}

	l.rangeMin = append(l.rangeMin, tour) // 1-size windows are the tour itself.
	for logS, s := 1, 2; s <= len(tour); logS, s = logS+1, s*2 {
		prev := l.rangeMin[logS-1]
		r := make([]int, len(tour)-s+1)
		for i := range r {
			a, b := prev[i], prev[i+s/2]
			if l.depth[b] < l.depth[a] {
				a = b
			}
			r[i] = a
		}
		l.rangeMin = append(l.rangeMin, r)
	}

	tracer().Debugf("lca: tour of %d positions, %d sparse table levels", len(tour), len(l.rangeMin))
	return l
}

// Tree returns the tree the structure was built from.
func (l *LCA) Tree() *Tree { return l.tree }

// Query returns the lowest common ancestor of u and v: the common ancestor
// with the smallest index. Query(u, u) is u. It fails with ErrOutOfRange
// if u or v is not a node of the tree.
func (l *LCA) Query(u, v int) (int, error) {
	if err := l.tree.checkNode(u); err != nil {
		return 0, err
	}
	if err := l.tree.checkNode(v); err != nil {
		return 0, err
	}
	return l.query(u, v), nil
}

func (l *LCA) query(u, v int) int {
	if u == v {
		return u
	}
	p1, p2 := l.first[u], l.first[v]
	if p1 > p2 {
		p1, p2 = p2, p1
	}

	// Cover [p1, p2] with two overlapping power-of-two windows.
	k := bits.Len(uint(p2-p1+1)) - 1
	a := l.rangeMin[k][p1]
	b := l.rangeMin[k][p2-1<<k+1]
	if l.depth[b] < l.depth[a] {
		return b
	}
	return a
}

// QueryPairs returns the lowest common ancestor of (us[i], vs[i]) for
// every i.
func (l *LCA) QueryPairs(us, vs []int) ([]int, error) {
	if len(us) != len(vs) {
		return nil, fmt.Errorf("%w: %d first vertices, %d second vertices", ErrShapeMismatch, len(us), len(vs))
	}
	out := make([]int, len(us))
	for i := range us {
		a, err := l.Query(us[i], vs[i])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		out[i] = a
	}
	return out, nil
}

// QueryGraph returns, for every edge of g, the lowest common ancestor of
// its two endpoints. Graph vertices are read as leaves of the tree, so g
// must not have more vertices than the tree has leaves. The result is
// indexed by edge index.
func (l *LCA) QueryGraph(g Graph) ([]int, error) {
	if g.NumVertices() > l.tree.NumLeaves() {
		return nil, fmt.Errorf("%w: graph has %d vertices, tree has %d leaves",
			ErrShapeMismatch, g.NumVertices(), l.tree.NumLeaves())
	}
	out := make([]int, g.NumEdges())
	for e := range out {
		s, t := g.Edge(e)
		a, err := l.Query(s, t)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", e, err)
		}
		out[e] = a
	}
	return out, nil
}

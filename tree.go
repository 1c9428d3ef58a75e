package hierarchy

import "fmt"

// Tree is an immutable rooted tree in canonical numbering: leaves occupy
// [0, NumLeaves), internal nodes occupy [NumLeaves, NumNodes), every
// non-root node has a parent with a strictly larger index, and the root is
// the last node and its own parent.
//
// A Tree is safe for concurrent use by multiple goroutines.
type Tree struct {
	parents   []int
	numLeaves int

	// Children in compressed form: the children of v are
	// children[childStart[v]:childStart[v+1]], in increasing index order.
	childStart []int
	children   []int
}

// NewTree validates a parent array and builds a Tree from it. The slice is
// copied. It fails with ErrInvalidTree if a parent index is out of range,
// if a non-root node does not have a parent with a strictly larger index,
// if the tree does not have exactly one root at index len(parents)-1, or
// if the childless nodes are not exactly the first indices.
func NewTree(parents []int) (*Tree, error) {
	n := len(parents)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty parent array has no root", ErrInvalidTree)
	}

	roots := 0
	for v, p := range parents {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("%w: parent of node %d is %d, outside [0, %d)", ErrInvalidTree, v, p, n)
		}
		if p == v {
			roots++
			continue
		}
		if p < v {
			return nil, fmt.Errorf("%w: parent of node %d is %d, want an index > %d", ErrInvalidTree, v, p, v)
		}
	}
	// Every other node points strictly upward, so a single root is node n-1.
	if roots != 1 {
		return nil, fmt.Errorf("%w: found %d self-parented nodes, want exactly 1", ErrInvalidTree, roots)
	}

	t := &Tree{parents: make([]int, n)}
	copy(t.parents, parents)
	t.buildChildren()

	for v := 0; v < n; v++ {
		if t.NumChildren(v) != 0 {
			break
		}
		t.numLeaves++
	}
	for v := t.numLeaves; v < n; v++ {
		if t.NumChildren(v) == 0 {
			return nil, fmt.Errorf("%w: leaf %d is numbered after internal node %d", ErrInvalidTree, v, t.numLeaves)
		}
	}

	tracer().Debugf("tree: %d nodes, %d leaves", n, t.numLeaves)
	return t, nil
}

// buildChildren fills the compressed child lists with a counting pass.
// Visiting nodes in increasing order keeps each child list sorted.
func (t *Tree) buildChildren() {
	n := len(t.parents)
	t.childStart = make([]int, n+1)
	for v := 0; v < n-1; v++ {
		t.childStart[t.parents[v]+1]++
	}
	for v := 0; v < n; v++ {
		t.childStart[v+1] += t.childStart[v]
	}

	t.children = make([]int, n-1)
	next := make([]int, n)
	copy(next, t.childStart[:n])
	for v := 0; v < n-1; v++ {
		p := t.parents[v]
		t.children[next[p]] = v
		next[p]++
	}
}

// NumLeaves returns the number of leaves.
func (t *Tree) NumLeaves() int { return t.numLeaves }

// NumNodes returns the number of nodes, leaves included.
func (t *Tree) NumNodes() int { return len(t.parents) }

// Root returns the root node, always NumNodes()-1.
func (t *Tree) Root() int { return len(t.parents) - 1 }

// Parent returns the parent of v. The root is its own parent.
func (t *Tree) Parent(v int) int { return t.parents[v] }

// Parents returns a copy of the parent array.
func (t *Tree) Parents() []int {
	out := make([]int, len(t.parents))
	copy(out, t.parents)
	return out
}

// Children returns the children of v in increasing index order.
// The returned slice is shared with the tree and must not be modified.
func (t *Tree) Children(v int) []int {
	return t.children[t.childStart[v]:t.childStart[v+1]]
}

// NumChildren returns the number of children of v.
func (t *Tree) NumChildren(v int) int {
	return t.childStart[v+1] - t.childStart[v]
}

// Child returns the i-th child of v.
func (t *Tree) Child(i, v int) int {
	return t.children[t.childStart[v]+i]
}

// IsLeaf reports whether v is a leaf.
func (t *Tree) IsLeaf(v int) bool { return v < t.numLeaves }

// Leaves returns the leaf indices [0, NumLeaves).
func (t *Tree) Leaves() []int {
	out := make([]int, t.numLeaves)
	for i := range out {
		out[i] = i
	}
	return out
}

// Depths returns the number of ancestors of every node; the root has depth 0.
func (t *Tree) Depths() []int {
	n := len(t.parents)
	depth := make([]int, n)
	for v := n - 2; v >= 0; v-- {
		depth[v] = depth[t.parents[v]] + 1
	}
	return depth
}

// Heights returns, for every node, the length of the longest path down to
// a leaf. Leaves have height 0.
func (t *Tree) Heights() []int {
	n := len(t.parents)
	height := make([]int, n)
	for v := 0; v < n-1; v++ {
		p := t.parents[v]
		height[p] = max(height[p], height[v]+1)
	}
	return height
}

func (t *Tree) checkNode(v int) error {
	if v < 0 || v >= len(t.parents) {
		return fmt.Errorf("%w: node %d not in [0, %d)", ErrOutOfRange, v, len(t.parents))
	}
	return nil
}

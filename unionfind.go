package hierarchy

// UnionFind partitions the nodes 0..n-1 of a tree into disjoint sets,
// with path compression and union by size. Every set carries a label, a
// node chosen by the caller: a fresh set is labelled with its only node,
// and a union keeps the label of the set absorbing the other. Offline
// LCA uses the label to name the open ancestor a finished subtree was
// merged into.
type UnionFind struct {
	parent []int // -1 at the root of a set
	size   []int // valid at set roots
	label  []int // valid at set roots
}

// NewUnionFind creates a UnionFind where each of the n nodes is its own set.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		label:  make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = -1
		uf.size[i] = 1
		uf.label[i] = i
	}
	return uf
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Union merges the set containing y into the set containing x. The merged
// set keeps the label of x's set, whichever root the size rule picks.
// Returns the new root.
func (uf *UnionFind) Union(x, y int) int {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return rootX
	}

	label := uf.label[rootX]
	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	uf.label[rootX] = label
	return rootX
}

// Label returns the label of the set containing x.
func (uf *UnionFind) Label(x int) int {
	return uf.label[uf.Find(x)]
}

// Size returns the number of nodes in the set containing x.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}

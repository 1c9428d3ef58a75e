package hierarchy

import (
	"math/rand"
	"testing"
)

// sampleTree is the 8-node tree used throughout the tests:
//
//	        7
//	      /   \
//	     5     6
//	    / \   /|\
//	   0   1 2 3 4
func sampleTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := NewTree([]int{5, 5, 6, 6, 6, 7, 7, 7})
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	return tree
}

// randomParents builds a random canonical parent array over numLeaves
// leaves by repeatedly merging 2 to 4 random active nodes into a new one.
func randomParents(rng *rand.Rand, numLeaves int) []int {
	active := make([]int, numLeaves)
	for i := range active {
		active[i] = i
	}
	parents := make([]int, numLeaves, 2*numLeaves)
	next := numLeaves
	for len(active) > 1 {
		k := 2 + rng.Intn(3)
		if k > len(active) {
			k = len(active)
		}
		rng.Shuffle(len(active), func(i, j int) { active[i], active[j] = active[j], active[i] })
		for _, c := range active[:k] {
			parents[c] = next
		}
		active = append(active[k:], next)
		parents = append(parents, 0)
		next++
	}
	root := len(parents) - 1
	parents[root] = root
	return parents
}

func randomTree(t testing.TB, rng *rand.Rand, numLeaves int) *Tree {
	t.Helper()
	tree, err := NewTree(randomParents(rng, numLeaves))
	if err != nil {
		t.Fatalf("NewTree on random parents: %v", err)
	}
	return tree
}

// naiveLCA walks both nodes up to the root.
func naiveLCA(tree *Tree, u, v int) int {
	seen := make(map[int]bool)
	for x := u; ; x = tree.Parent(x) {
		seen[x] = true
		if x == tree.Root() {
			break
		}
	}
	for x := v; ; x = tree.Parent(x) {
		if seen[x] {
			return x
		}
	}
}

// naiveLeafCounts counts, for every node, the leaves whose root path
// passes through it.
func naiveLeafCounts(tree *Tree) []int {
	counts := make([]int, tree.NumNodes())
	for leaf := 0; leaf < tree.NumLeaves(); leaf++ {
		for x := leaf; ; x = tree.Parent(x) {
			counts[x]++
			if x == tree.Root() {
				break
			}
		}
	}
	return counts
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// pathGraph returns vertices 0..n-1 with edge i joining i and i+1.
func pathGraph(n int) *UndirectedGraph {
	g := NewUndirectedGraph(n)
	for i := 0; i+1 < n; i++ {
		_, _ = g.AddEdge(i, i+1)
	}
	return g
}

package hierarchy

import "fmt"

// SimplifyTree removes the nodes v with deleted[v] set and returns the
// resulting tree with its node map: nodeMap[n] is the index in t of node n
// of the new tree. The children of a removed node are attached to its
// nearest surviving ancestor. The root is never removed.
//
// Leaves are only removed when processLeaves is set. An internal node
// whose whole subtree is removed then becomes a leaf of the new tree.
// Surviving nodes keep their relative order, leaves first, so the result
// is in canonical numbering.
func SimplifyTree(t *Tree, deleted []bool, processLeaves bool) (*Tree, []int, error) {
	if err := checkLen("deleted", len(deleted), t.NumNodes()); err != nil {
		return nil, nil, err
	}
	n := t.NumNodes()
	root := t.Root()

	removed := make([]bool, n)
	for v := range removed {
		removed[v] = deleted[v] && v != root && (processLeaves || !t.IsLeaf(v))
	}

	// survivor[v] is v itself when v is kept, otherwise its nearest kept
	// ancestor.
	input := make([]int, n)
	for v := range input {
		input[v] = v
	}
	survivor, err := PropagateSequential(t, input, removed)
	if err != nil {
		return nil, nil, err
	}

	keptChildren := make([]int, n)
	for v := 0; v < root; v++ {
		if !removed[v] {
			keptChildren[survivor[t.Parent(v)]]++
		}
	}

	// Relabel: new leaves first, then new internal nodes, each group in
	// increasing old index.
	relabel := make([]int, n)
	nodeMap := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !removed[v] && keptChildren[v] == 0 {
			relabel[v] = len(nodeMap)
			nodeMap = append(nodeMap, v)
		}
	}
	for v := 0; v < n; v++ {
		if !removed[v] && keptChildren[v] != 0 {
			relabel[v] = len(nodeMap)
			nodeMap = append(nodeMap, v)
		}
	}

	parents := make([]int, len(nodeMap))
	for i, v := range nodeMap {
		if v == root {
			parents[i] = i
			continue
		}
		parents[i] = relabel[survivor[t.Parent(v)]]
	}

	simplified, err := NewTree(parents)
	if err != nil {
		return nil, nil, fmt.Errorf("simplify: %w", err)
	}
	tracer().Debugf("simplify: %d nodes -> %d nodes", n, simplified.NumNodes())
	return simplified, nodeMap, nil
}

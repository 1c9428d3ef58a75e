package hierarchy

import "fmt"

// TreeFromLinkage converts a single-linkage dendrogram into a Tree and its
// node altitudes. dendrogram uses the scipy format: row i is
// [left, right, distance, mergedSize] and creates node n+i, where
// n = len(dendrogram)+1 is the number of points. Leaves have altitude 0;
// node n+i has altitude dendrogram[i][2].
func TreeFromLinkage(dendrogram [][4]float64) (*Tree, []float64, error) {
	n := len(dendrogram) + 1
	numNodes := 2*n - 1
	parents := make([]int, numNodes)
	for i := range parents {
		parents[i] = -1
	}
	altitudes := make([]float64, numNodes)

	for i, row := range dendrogram {
		node := n + i
		for _, x := range row[:2] {
			c := int(x)
			if float64(c) != x || c < 0 || c >= node {
				return nil, nil, fmt.Errorf("%w: dendrogram row %d merges %v, want an id in [0, %d)", ErrInvalidTree, i, x, node)
			}
			if parents[c] != -1 {
				return nil, nil, fmt.Errorf("%w: dendrogram row %d merges %d, already merged by row %d", ErrInvalidTree, i, c, parents[c]-n)
			}
			parents[c] = node
		}
		altitudes[node] = row[2]
	}
	parents[numNodes-1] = numNodes - 1

	t, err := NewTree(parents)
	if err != nil {
		return nil, nil, err
	}
	return t, altitudes, nil
}

// Linkage converts a binary tree and its node altitudes into a scipy
// format dendrogram, the inverse of TreeFromLinkage. Row i describes node
// NumLeaves()+i: [firstChild, secondChild, altitude, leafCount].
func Linkage(t *Tree, altitudes []float64) ([][4]float64, error) {
	if err := checkLen("altitudes", len(altitudes), t.NumNodes()); err != nil {
		return nil, err
	}
	ones := make([]int, t.NumLeaves())
	for i := range ones {
		ones[i] = 1
	}
	area, err := AccumulateSequential[int](t, ones, Sum)
	if err != nil {
		return nil, err
	}

	rows := make([][4]float64, 0, t.NumNodes()-t.NumLeaves())
	for v := t.NumLeaves(); v < t.NumNodes(); v++ {
		if t.NumChildren(v) != 2 {
			return nil, fmt.Errorf("%w: node %d has %d children, linkage needs a binary tree", ErrInvalidTree, v, t.NumChildren(v))
		}
		rows = append(rows, [4]float64{
			float64(t.Child(0, v)),
			float64(t.Child(1, v)),
			altitudes[v],
			float64(area[v]),
		})
	}
	return rows, nil
}

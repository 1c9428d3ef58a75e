package hierarchy

// unlabelled marks a vertex not reached yet by the flood fill.
const unlabelled = -1

// LabeliseCut labels the vertices of g by the connected components of its
// uncut edges. An edge with weight 0 joins its endpoints; any other weight
// is part of the cut. Labels start at 1 and are handed out in vertex
// order; only the partition they induce is meaningful. edgeWeights must
// have one value per edge.
func LabeliseCut[T Number](g Graph, edgeWeights []T) ([]int, error) {
	if err := checkLen("edge weights", len(edgeWeights), g.NumEdges()); err != nil {
		return nil, err
	}

	labels := make([]int, g.NumVertices())
	for i := range labels {
		labels[i] = unlabelled
	}

	var stack []int
	current := 0
	for v := range labels {
		if labels[v] != unlabelled {
			continue
		}
		current++
		labels[v] = current
		stack = append(stack[:0], v)
		for len(stack) > 0 {
			cv := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, e := range g.OutEdges(cv) {
				if edgeWeights[e] != 0 {
					continue
				}
				n := OtherVertex(g, e, cv)
				if labels[n] == unlabelled {
					labels[n] = current
					stack = append(stack, n)
				}
			}
		}
	}
	return labels, nil
}

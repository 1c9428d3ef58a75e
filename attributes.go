package hierarchy

import (
	"fmt"
	"math"
)

// Attributes computed on top of the reduction engine. Node attributes are
// float64 arrays indexed by node; graph attributes are indexed by vertex
// or edge of the leaf graph, whose vertices are the leaves of the tree.

func onesIfNil(values []float64, n int) []float64 {
	if values != nil {
		return values
	}
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	return ones
}

// Area returns, for every node, the sum of the areas of the leaves below
// it. A nil vertexArea gives every leaf an area of 1.
func Area(t *Tree, vertexArea []float64) ([]float64, error) {
	return AccumulateSequential[float64](t, onesIfNil(vertexArea, t.NumLeaves()), Sum)
}

// Volume returns the volume of every node, defined recursively as
//
//	V(n) = area(n) * |altitude(n) - altitude(parent(n))| + sum of V(c) over children c
func Volume(t *Tree, altitudes, area []float64) ([]float64, error) {
	if err := checkLen("altitudes", len(altitudes), t.NumNodes()); err != nil {
		return nil, err
	}
	if err := checkLen("area", len(area), t.NumNodes()); err != nil {
		return nil, err
	}
	height := make([]float64, t.NumNodes())
	for v := range height {
		height[v] = math.Abs(altitudes[t.Parent(v)]-altitudes[v]) * area[v]
	}
	return AccumulateAndAddSequential(t, height, height[:t.NumLeaves()], Sum)
}

// Sibling returns, for every node n that is the k-th of the N children of
// its parent p, the (k+skip) mod N-th child of p. The root is its own
// sibling. With skip 1 in a binary tree this is the only brother.
func Sibling(t *Tree, skip int) []int {
	out := make([]int, t.NumNodes())
	out[t.Root()] = t.Root()
	for p := t.NumLeaves(); p < t.NumNodes(); p++ {
		children := t.Children(p)
		n := len(children)
		for k, c := range children {
			out[c] = children[((k+skip)%n+n)%n]
		}
	}
	return out
}

// RegularAltitudes returns altitudes in [0, 1] decreasing with depth:
// 1 - depth/maxDepth for internal nodes, 0 for leaves.
func RegularAltitudes(t *Tree) []float64 {
	depth := t.Depths()
	maxDepth := 0
	for _, d := range depth {
		maxDepth = max(maxDepth, d)
	}
	out := make([]float64, t.NumNodes())
	if maxDepth == 0 {
		return out
	}
	for v := t.NumLeaves(); v < t.NumNodes(); v++ {
		out[v] = 1 - float64(depth[v])/float64(maxDepth)
	}
	return out
}

// LCAMap returns the lowest common ancestor of the endpoints of every edge
// of the leaf graph g.
func LCAMap(t *Tree, g Graph) ([]int, error) {
	return NewLCA(t).QueryGraph(g)
}

// Saliency returns the ultrametric distance between the endpoints of every
// edge of g: the altitude of their lowest common ancestor.
func Saliency(t *Tree, altitudes []float64, g Graph) ([]float64, error) {
	if err := checkLen("altitudes", len(altitudes), t.NumNodes()); err != nil {
		return nil, err
	}
	lcaMap, err := LCAMap(t, g)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(lcaMap))
	for e, n := range lcaMap {
		out[e] = altitudes[n]
	}
	return out, nil
}

// FrontierLength returns, for every node, the total length of the leaf
// graph edges whose endpoints are merged by that node, that is whose
// lowest common ancestor is the node. A nil edgeLength gives every edge a
// length of 1.
func FrontierLength(t *Tree, g Graph, edgeLength []float64) ([]float64, error) {
	edgeLength = onesIfNil(edgeLength, g.NumEdges())
	if err := checkLen("edge length", len(edgeLength), g.NumEdges()); err != nil {
		return nil, err
	}
	lcaMap, err := LCAMap(t, g)
	if err != nil {
		return nil, err
	}
	out := make([]float64, t.NumNodes())
	for e, n := range lcaMap {
		out[n] += edgeLength[e]
	}
	return out, nil
}

// FrontierStrength returns the mean edge weight along the frontier of
// every internal node. Internal nodes with an empty frontier get 0; leaves
// get the sum of the weights of their self-loops, if any.
func FrontierStrength(t *Tree, g Graph, edgeWeights []float64) ([]float64, error) {
	if err := checkLen("edge weights", len(edgeWeights), g.NumEdges()); err != nil {
		return nil, err
	}
	length, err := FrontierLength(t, g, nil)
	if err != nil {
		return nil, err
	}
	strength, err := FrontierLength(t, g, edgeWeights)
	if err != nil {
		return nil, err
	}
	for v := t.NumLeaves(); v < t.NumNodes(); v++ {
		if length[v] != 0 {
			strength[v] /= length[v]
		} else {
			strength[v] = 0
		}
	}
	return strength, nil
}

// VertexPerimeter returns, for every vertex of g, the total length of its
// incident edges. A nil edgeLength gives every edge a length of 1.
func VertexPerimeter(g Graph, edgeLength []float64) ([]float64, error) {
	edgeLength = onesIfNil(edgeLength, g.NumEdges())
	if err := checkLen("edge length", len(edgeLength), g.NumEdges()); err != nil {
		return nil, err
	}
	out := make([]float64, g.NumVertices())
	for v := range out {
		for _, e := range g.OutEdges(v) {
			out[v] += edgeLength[e]
		}
	}
	return out, nil
}

// ContourLength returns the perimeter of every node of a partition tree
// built on g. A node's perimeter is the sum of its children's perimeters
// minus twice the length of the frontier it removes. Nil vertexPerimeter
// and edgeLength are computed from g with unit edge lengths.
func ContourLength(t *Tree, g Graph, vertexPerimeter, edgeLength []float64) ([]float64, error) {
	var err error
	if vertexPerimeter == nil {
		vertexPerimeter, err = VertexPerimeter(g, edgeLength)
		if err != nil {
			return nil, err
		}
	}
	frontier, err := FrontierLength(t, g, edgeLength)
	if err != nil {
		return nil, err
	}
	for v := range frontier {
		frontier[v] *= -2
	}
	return AccumulateAndAddSequential(t, frontier, vertexPerimeter, Sum)
}

// ContourStrength returns the mean edge weight along the contour of every
// node of a partition tree built on g: the total weight of the contour
// edges divided by the contour length. A root with an empty contour is
// given a length of 1. Nil vertexPerimeter and edgeLength are computed
// from g with unit edge lengths.
func ContourStrength(t *Tree, g Graph, edgeWeights, vertexPerimeter, edgeLength []float64) ([]float64, error) {
	if err := checkLen("edge weights", len(edgeWeights), g.NumEdges()); err != nil {
		return nil, err
	}
	perimeter, err := ContourLength(t, g, vertexPerimeter, edgeLength)
	if err != nil {
		return nil, err
	}
	if perimeter[t.Root()] == 0 {
		perimeter[t.Root()] = 1
	}

	vertexWeightSum, err := VertexPerimeter(g, edgeWeights)
	if err != nil {
		return nil, err
	}
	strength, err := ContourLength(t, g, vertexWeightSum, edgeWeights)
	if err != nil {
		return nil, err
	}
	for v := range strength {
		strength[v] /= perimeter[v]
	}
	return strength, nil
}

// Compactness returns area / contourLength² for every node, divided by the
// largest compactness in the tree when normalize is set. NaN values are
// ignored when looking for the largest one; when there is no finite
// largest value the result is left unnormalized.
func Compactness(area, contourLength []float64, normalize bool) ([]float64, error) {
	if err := checkLen("contour length", len(contourLength), len(area)); err != nil {
		return nil, err
	}
	out := make([]float64, len(area))
	best := math.Inf(-1)
	for v := range area {
		out[v] = area[v] / (contourLength[v] * contourLength[v])
		if !math.IsNaN(out[v]) {
			best = max(best, out[v])
		}
	}
	if normalize && !math.IsInf(best, 0) {
		for v := range out {
			out[v] /= best
		}
	}
	return out, nil
}

// MeanWeights returns the mean vertex weight of the leaves inside every node.
func MeanWeights(t *Tree, vertexWeights, area []float64) ([]float64, error) {
	if err := checkLen("area", len(area), t.NumNodes()); err != nil {
		return nil, err
	}
	sum, err := AccumulateSequential[float64](t, vertexWeights, Sum)
	if err != nil {
		return nil, err
	}
	for v := range sum {
		sum[v] /= area[v]
	}
	return sum, nil
}

// GaussianRegionWeightsModel returns the mean and the biased variance of
// the vertex weights of the leaves inside every node.
func GaussianRegionWeightsModel(t *Tree, vertexWeights []float64) (mean, variance []float64, err error) {
	if err := checkLen("vertex weights", len(vertexWeights), t.NumLeaves()); err != nil {
		return nil, nil, err
	}
	area, err := Area(t, nil)
	if err != nil {
		return nil, nil, err
	}
	squares := make([]float64, len(vertexWeights))
	for i, w := range vertexWeights {
		squares[i] = w * w
	}
	if mean, err = MeanWeights(t, vertexWeights, area); err != nil {
		return nil, nil, err
	}
	if variance, err = MeanWeights(t, squares, area); err != nil {
		return nil, nil, err
	}
	for v := range variance {
		variance[v] -= mean[v] * mean[v]
	}
	return mean, variance, nil
}

// Height returns, for every internal node n, the altitude difference
// between the parent of n and the deepest internal node below n, n
// included. increasing tells whether altitudes grow from the leaves to
// the root; with decreasing altitudes the difference is taken the other
// way so that heights stay non-negative. Leaves have height 0.
func Height(t *Tree, altitudes []float64, increasing bool) ([]float64, error) {
	if err := checkLen("altitudes", len(altitudes), t.NumNodes()); err != nil {
		return nil, err
	}
	lowest, highest := limits[float64]()
	leaves := make([]float64, t.NumLeaves())
	var extrema []float64
	var err error
	if increasing {
		for i := range leaves {
			leaves[i] = highest
		}
		extrema, err = AccumulateAndMinSequential(t, altitudes, leaves, Min)
	} else {
		for i := range leaves {
			leaves[i] = lowest
		}
		extrema, err = AccumulateAndMaxSequential(t, altitudes, leaves, Max)
	}
	if err != nil {
		return nil, err
	}

	out := make([]float64, t.NumNodes())
	for v := t.NumLeaves(); v < t.NumNodes(); v++ {
		out[v] = altitudes[t.Parent(v)] - extrema[v]
		if !increasing {
			out[v] = -out[v]
		}
	}
	return out, nil
}

// VertexList returns the leaves inside every node, concatenated in child
// order. It uses quadratic space in the number of leaves and suits small trees
// and tests.
func VertexList(t *Tree) [][]int {
	out := make([][]int, t.NumNodes())
	for v := 0; v < t.NumLeaves(); v++ {
		out[v] = []int{v}
	}
	for v := t.NumLeaves(); v < t.NumNodes(); v++ {
		var list []int
		for _, c := range t.Children(v) {
			list = append(list, out[c]...)
		}
		out[v] = list
	}
	return out
}

// DendrogramPurity measures how well a tree agrees with a ground-truth
// labelling of its leaves. For every pair of distinct leaves sharing a
// label l, the purity of their lowest common ancestor n is the fraction of
// leaves under n labelled l; the result is the mean purity over all such
// pairs, or 0 when there are none. Labels must be non-negative.
func DendrogramPurity(t *Tree, leafLabels []int) (float64, error) {
	if err := checkLen("leaf labels", len(leafLabels), t.NumLeaves()); err != nil {
		return 0, err
	}
	numLabels := 0
	for i, l := range leafLabels {
		if l < 0 {
			return 0, fmt.Errorf("%w: leaf %d has label %d", ErrOutOfRange, i, l)
		}
		numLabels = max(numLabels, l+1)
	}
	area, err := Area(t, nil)
	if err != nil {
		return 0, err
	}

	indicator := make([]int, t.NumLeaves())
	var total, pairs float64
	for l := 0; l < numLabels; l++ {
		for i, li := range leafLabels {
			indicator[i] = 0
			if li == l {
				indicator[i] = 1
			}
		}
		histo, err := AccumulateSequential[int](t, indicator, Sum)
		if err != nil {
			return 0, err
		}
		for v := t.NumLeaves(); v < t.NumNodes(); v++ {
			// Pairs labelled l that are split between two children of v.
			inside := histo[v] * histo[v]
			for _, c := range t.Children(v) {
				inside -= histo[c] * histo[c]
			}
			p := float64(inside / 2)
			pairs += p
			total += p * float64(histo[v]) / area[v]
		}
	}
	if pairs == 0 {
		return 0, nil
	}
	return total / pairs, nil
}

// DasguptaCost returns the Dasgupta cost of the tree for the leaf graph g
// whose edge weights are dissimilarities: the sum over edges of the area
// of the lowest common ancestor of the endpoints divided by the edge weight.
func DasguptaCost(t *Tree, g Graph, edgeWeights []float64) (float64, error) {
	if err := checkLen("edge weights", len(edgeWeights), g.NumEdges()); err != nil {
		return 0, err
	}
	area, err := Area(t, nil)
	if err != nil {
		return 0, err
	}
	lcaMap, err := LCAMap(t, g)
	if err != nil {
		return 0, err
	}
	cost := 0.0
	for e, n := range lcaMap {
		cost += area[n] / edgeWeights[e]
	}
	return cost, nil
}

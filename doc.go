// Package hierarchy implements the query and reduction machinery shared by
// hierarchical representations of graphs, as used in hierarchical image
// segmentation and clustering.
//
// A hierarchy is a [Tree] in canonical numbering: the leaves (usually the
// vertices of a graph) come first, every node has a parent with a larger
// index, and the root is the last node. This ordering makes a plain
// increasing loop a bottom-up traversal and a decreasing loop a top-down one.
//
// Basic usage:
//
//	tree, err := hierarchy.NewTree([]int{5, 5, 6, 6, 6, 7, 7, 7})
//	// leaves 0..4, internal nodes 5, 6 and the root 7
//	area, err := hierarchy.AccumulateSequential[float64](tree, []float64{1, 1, 1, 1, 1}, hierarchy.Sum)
//	// area[7] == 5
//	lca := hierarchy.NewLCA(tree)
//	n, err := lca.Query(0, 3) // n == 7
//
// # Reductions
//
// Every [Accumulator] reduces the values of a node's children: min, max,
// mean, count, sum, prod, first and last. [AccumulateParallel] reduces the
// input values of direct children, [AccumulateSequential] folds leaf values
// all the way up, and [AccumulateAndCombineSequential] additionally folds in
// a per-node value. [PropagateParallel] and [PropagateSequential] are the
// top-down duals. Children are always visited in increasing index order,
// which makes First and Last deterministic.
//
// The output element type is chosen by the caller and the input type is
// inferred:
//
//	counts, err := hierarchy.AccumulateParallel[int32](tree, input, hierarchy.Count)
//	means, err := hierarchy.AccumulateSequential[float64](tree, leafData, hierarchy.Mean)
//
// # Concurrency
//
// Trees and LCA structures are immutable and safe for concurrent reads.
// The Concurrent variants of the reductions split each level of the tree
// across [Config].Workers goroutines and return the same values as their
// sequential counterparts.
//
// # Graphs
//
// [LabeliseCut] turns an edge cut of a [Graph] into vertex labels, and
// [LCA.QueryGraph] maps graph edges onto the tree. [UndirectedGraph] is a
// ready-made Graph; [FromGonum] and [ToGonum] convert from and to gonum
// graphs. The pink subpackage reads and writes the Pink text format.
package hierarchy

package hierarchy

import "fmt"

func checkLen(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has length %d, want %d", ErrShapeMismatch, name, got, want)
	}
	return nil
}

// AccumulateParallel reduces, for every node, the input values of its
// direct children. Leaves get the zero-child value of acc. input is
// indexed by node and must have length t.NumNodes().
//
// The output type R is given explicitly; T is inferred:
//
//	counts, err := hierarchy.AccumulateParallel[int64](tree, input, hierarchy.Count)
func AccumulateParallel[R, T Number](t *Tree, input []T, acc Accumulator) ([]R, error) {
	if err := checkTypes[R, T](acc); err != nil {
		return nil, err
	}
	if err := checkLen("input", len(input), t.NumNodes()); err != nil {
		return nil, err
	}
	seed, _ := NewFold[T](acc)
	out := make([]R, t.NumNodes())
	accumulateParallelRange(t, input, seed, out, 0, t.NumNodes())
	return out, nil
}

func accumulateParallelRange[R, T Number](t *Tree, input []T, seed Fold[T], out []R, start, end int) {
	for v := start; v < end; v++ {
		f := seed
		for _, c := range t.Children(v) {
			f.Push(input[c])
		}
		out[v] = FoldResult[R](f)
	}
}

// AccumulateSequential folds leaf values up the tree. Leaves output their
// leaf data converted to R; every internal node outputs the reduction of
// its children's outputs. leafData must have length t.NumLeaves().
func AccumulateSequential[R, T Number](t *Tree, leafData []T, acc Accumulator) ([]R, error) {
	if err := checkTypes[R, T](acc); err != nil {
		return nil, err
	}
	if err := checkLen("leaf data", len(leafData), t.NumLeaves()); err != nil {
		return nil, err
	}
	seed, _ := NewFold[R](acc)
	out := make([]R, t.NumNodes())
	for i, v := range leafData {
		out[i] = R(v)
	}
	for v := t.NumLeaves(); v < t.NumNodes(); v++ {
		out[v] = reduceChildren(t, out, seed, v)
	}
	return out, nil
}

func reduceChildren[R Number](t *Tree, out []R, seed Fold[R], v int) R {
	f := seed
	for _, c := range t.Children(v) {
		f.Push(out[c])
	}
	return FoldResult[R](f)
}

// AccumulateAndCombineSequential is AccumulateSequential where the result
// r of every internal node v is replaced by combine(r, nodeData[v]).
// Leaves output leafData unchanged, so callers that want leaves combined
// too must combine leafData beforehand. nodeData must have length
// t.NumNodes() and leafData length t.NumLeaves(). combine may be any
// binary operator, associative or not; AddOp, MulOp, MinOp and MaxOp
// cover the common cases.
func AccumulateAndCombineSequential[R, T Number](t *Tree, nodeData []R, leafData []T,
	acc Accumulator, combine func(R, R) R,
) ([]R, error) {
	if err := checkTypes[R, T](acc); err != nil {
		return nil, err
	}
	if err := checkLen("node data", len(nodeData), t.NumNodes()); err != nil {
		return nil, err
	}
	if err := checkLen("leaf data", len(leafData), t.NumLeaves()); err != nil {
		return nil, err
	}
	seed, _ := NewFold[R](acc)
	out := make([]R, t.NumNodes())
	for i, v := range leafData {
		out[i] = R(v)
	}
	for v := t.NumLeaves(); v < t.NumNodes(); v++ {
		out[v] = combine(reduceChildren(t, out, seed, v), nodeData[v])
	}
	return out, nil
}

// AccumulateAndAddSequential is AccumulateAndCombineSequential with addition.
func AccumulateAndAddSequential[R, T Number](t *Tree, nodeData []R, leafData []T, acc Accumulator) ([]R, error) {
	return AccumulateAndCombineSequential(t, nodeData, leafData, acc, AddOp[R])
}

// AccumulateAndMultiplySequential is AccumulateAndCombineSequential with multiplication.
func AccumulateAndMultiplySequential[R, T Number](t *Tree, nodeData []R, leafData []T, acc Accumulator) ([]R, error) {
	return AccumulateAndCombineSequential(t, nodeData, leafData, acc, MulOp[R])
}

// AccumulateAndMinSequential is AccumulateAndCombineSequential with minimum.
func AccumulateAndMinSequential[R, T Number](t *Tree, nodeData []R, leafData []T, acc Accumulator) ([]R, error) {
	return AccumulateAndCombineSequential(t, nodeData, leafData, acc, MinOp[R])
}

// AccumulateAndMaxSequential is AccumulateAndCombineSequential with maximum.
func AccumulateAndMaxSequential[R, T Number](t *Tree, nodeData []R, leafData []T, acc Accumulator) ([]R, error) {
	return AccumulateAndCombineSequential(t, nodeData, leafData, acc, MaxOp[R])
}

package hierarchy

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAccumulateParallel_Count(t *testing.T) {
	tree := sampleTree(t)
	input := make([]float64, tree.NumNodes())

	got, err := AccumulateParallel[int32](tree, input, Count)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int32{0, 0, 0, 0, 0, 2, 3, 2}
	if !equalSlices(got, want) {
		t.Errorf("count = %v, want %v", got, want)
	}
}

func TestAccumulateParallel_Kinds(t *testing.T) {
	tree := sampleTree(t)
	input := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	lowest := -math.MaxFloat64

	tests := []struct {
		acc  Accumulator
		want []float64
	}{
		{Sum, []float64{0, 0, 0, 0, 0, 3, 12, 13}},
		{Prod, []float64{1, 1, 1, 1, 1, 2, 60, 42}},
		{Max, []float64{lowest, lowest, lowest, lowest, lowest, 2, 5, 7}},
		{Mean, []float64{0, 0, 0, 0, 0, 1.5, 4, 6.5}},
		{First, []float64{0, 0, 0, 0, 0, 1, 3, 6}},
		{Last, []float64{0, 0, 0, 0, 0, 2, 5, 7}},
	}
	for _, tt := range tests {
		got, err := AccumulateParallel[float64](tree, input, tt.acc)
		if err != nil {
			t.Fatalf("%v: %v", tt.acc, err)
		}
		if !equalSlices(got, tt.want) {
			t.Errorf("%v = %v, want %v", tt.acc, got, tt.want)
		}
	}
}

func TestAccumulateSequential_LeafCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hierarchy")
	defer teardown()

	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 10; trial++ {
		tree := randomTree(t, rng, 1+rng.Intn(100))
		ones := make([]int, tree.NumLeaves())
		for i := range ones {
			ones[i] = 1
		}
		got, err := AccumulateSequential[int](tree, ones, Sum)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := naiveLeafCounts(tree); !equalSlices(got, want) {
			t.Fatalf("trial %d: sum of ones = %v, want %v", trial, got, want)
		}
	}
}

func TestAccumulateSequential_Sample(t *testing.T) {
	tree := sampleTree(t)
	leaves := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		acc  Accumulator
		want []float64
	}{
		{Sum, []float64{1, 2, 3, 4, 5, 3, 12, 15}},
		{Min, []float64{1, 2, 3, 4, 5, 1, 3, 1}},
		{Max, []float64{1, 2, 3, 4, 5, 2, 5, 5}},
		{Mean, []float64{1, 2, 3, 4, 5, 1.5, 4, 2.75}},
		{First, []float64{1, 2, 3, 4, 5, 1, 3, 1}},
		{Last, []float64{1, 2, 3, 4, 5, 2, 5, 5}},
	}
	for _, tt := range tests {
		got, err := AccumulateSequential[float64](tree, leaves, tt.acc)
		if err != nil {
			t.Fatalf("%v: %v", tt.acc, err)
		}
		if !equalSlices(got, tt.want) {
			t.Errorf("%v = %v, want %v", tt.acc, got, tt.want)
		}
	}

	counts, err := AccumulateSequential[int](tree, []int{9, 9, 9, 9, 9}, Count)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if want := []int{9, 9, 9, 9, 9, 2, 3, 2}; !equalSlices(counts, want) {
		t.Errorf("count = %v, want %v", counts, want)
	}
}

func TestAccumulateSequential_Uint8(t *testing.T) {
	tree := sampleTree(t)
	got, err := AccumulateSequential[uint8](tree, []uint8{200, 100, 7, 8, 9}, Max)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []uint8{200, 100, 7, 8, 9, 200, 9, 200}; !equalSlices(got, want) {
		t.Errorf("max = %v, want %v", got, want)
	}
}

func TestAccumulateAndCombineSequential(t *testing.T) {
	tree := sampleTree(t)
	leaves := []float64{1, 2, 3, 4, 5}
	node := []float64{10, 10, 10, 10, 10, 1, 2, 3}

	tests := []struct {
		name string
		fn   func() ([]float64, error)
		want []float64
	}{
		{"add", func() ([]float64, error) {
			return AccumulateAndAddSequential(tree, node, leaves, Sum)
		}, []float64{1, 2, 3, 4, 5, 4, 14, 21}},
		{"multiply", func() ([]float64, error) {
			return AccumulateAndMultiplySequential(tree, node, leaves, Max)
		}, []float64{1, 2, 3, 4, 5, 2, 10, 30}},
		{"min", func() ([]float64, error) {
			return AccumulateAndMinSequential(tree, node, leaves, Sum)
		}, []float64{1, 2, 3, 4, 5, 1, 2, 3}},
		{"max", func() ([]float64, error) {
			return AccumulateAndMaxSequential(tree, node, leaves, Min)
		}, []float64{1, 2, 3, 4, 5, 1, 3, 3}},
		{"custom", func() ([]float64, error) {
			return AccumulateAndCombineSequential(tree, node, leaves, Sum,
				func(r, n float64) float64 { return r - n })
		}, []float64{1, 2, 3, 4, 5, 2, 10, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !equalSlices(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccumulate_ShapeErrors(t *testing.T) {
	tree := sampleTree(t)
	if _, err := AccumulateParallel[float64](tree, []float64{1, 2}, Sum); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("AccumulateParallel error = %v, want ErrShapeMismatch", err)
	}
	if _, err := AccumulateSequential[float64](tree, make([]float64, 8), Sum); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("AccumulateSequential error = %v, want ErrShapeMismatch", err)
	}
	_, err := AccumulateAndAddSequential(tree, make([]float64, 5), make([]float64, 5), Sum)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("AccumulateAndAddSequential error = %v, want ErrShapeMismatch", err)
	}
	if _, err := AccumulateParallel[float32](tree, make([]float64, 8), Sum); !errors.Is(err, ErrElementType) {
		t.Errorf("AccumulateParallel float64 -> float32 error = %v, want ErrElementType", err)
	}
	if _, err := AccumulateSequential[float64](tree, make([]int, 5), Count); !errors.Is(err, ErrElementType) {
		t.Errorf("AccumulateSequential count into float64 error = %v, want ErrElementType", err)
	}
}

package hierarchy

import "fmt"

// Accumulator selects how a multiset of values is reduced to one value.
type Accumulator uint8

const (
	// Min keeps the smallest value. With no values it yields the highest
	// value representable by the element type.
	Min Accumulator = iota
	// Max keeps the largest value. With no values it yields the lowest
	// value representable by the element type.
	Max
	// Mean is the arithmetic mean, 0 for no values. Its output is floating point.
	Mean
	// Count is the number of values, ignoring them. Its output is an integer.
	Count
	// Sum adds the values, 0 for no values.
	Sum
	// Prod multiplies the values, 1 for no values.
	Prod
	// First keeps the first value pushed, 0 for no values.
	First
	// Last keeps the last value pushed, 0 for no values.
	Last

	numAccumulators
)

var accumulatorNames = [numAccumulators]string{
	Min:   "min",
	Max:   "max",
	Mean:  "mean",
	Count: "count",
	Sum:   "sum",
	Prod:  "prod",
	First: "first",
	Last:  "last",
}

// Accumulators returns every accumulator of the closed set.
func Accumulators() []Accumulator {
	out := make([]Accumulator, numAccumulators)
	for i := range out {
		out[i] = Accumulator(i)
	}
	return out
}

func (a Accumulator) String() string {
	if a.valid() {
		return accumulatorNames[a]
	}
	return fmt.Sprintf("Accumulator(%d)", uint8(a))
}

// ParseAccumulator returns the accumulator with the given name, as printed
// by String.
func ParseAccumulator(name string) (Accumulator, error) {
	for i, s := range accumulatorNames {
		if s == name {
			return Accumulator(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAccumulator, name)
}

func (a Accumulator) valid() bool { return a < numAccumulators }

// checkTypes verifies that a is known and can produce R from input T.
func checkTypes[R, T Number](a Accumulator) error {
	if !a.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAccumulator, uint8(a))
	}
	var r R
	var t T
	switch a {
	case Count:
		if !isInteger[R]() {
			return fmt.Errorf("%w: count needs an integer output, got %T", ErrElementType, r)
		}
	case Mean:
		if !isFloat[R]() {
			return fmt.Errorf("%w: mean needs a floating point output, got %T", ErrElementType, r)
		}
	default:
		if !sameType[R, T]() {
			return fmt.Errorf("%w: %s preserves the input type %T, got output %T", ErrElementType, a, t, r)
		}
	}
	return nil
}

// Fold is a streaming left-to-right reduction of values of type T.
// The zero Fold is not usable; create one with NewFold. Folds are
// values: copying a fresh Fold yields an independent reduction with the
// same seed.
type Fold[T Number] struct {
	acc   Accumulator
	value T
	sum   float64
	n     int
}

// NewFold returns an empty fold for the given accumulator.
func NewFold[T Number](acc Accumulator) (Fold[T], error) {
	if !acc.valid() {
		return Fold[T]{}, fmt.Errorf("%w: %d", ErrUnknownAccumulator, uint8(acc))
	}
	f := Fold[T]{acc: acc}
	switch acc {
	case Min:
		_, f.value = limits[T]()
	case Max:
		f.value, _ = limits[T]()
	case Prod:
		f.value = 1
	}
	return f, nil
}

// Accumulator returns the reduction kind of f.
func (f Fold[T]) Accumulator() Accumulator { return f.acc }

// Len returns the number of values pushed so far.
func (f Fold[T]) Len() int { return f.n }

// Push combines v into the running value.
func (f *Fold[T]) Push(v T) {
	switch f.acc {
	case Min:
		if v < f.value {
			f.value = v
		}
	case Max:
		if v > f.value {
			f.value = v
		}
	case Mean:
		f.sum += float64(v)
	case Count:
	case Sum:
		f.value += v
	case Prod:
		f.value *= v
	case First:
		if f.n == 0 {
			f.value = v
		}
	case Last:
		f.value = v
	}
	f.n++
}

// FoldResult converts the running value of f into the output type R.
// R must satisfy the element type rule of the accumulator; see Reduce.
func FoldResult[R, T Number](f Fold[T]) R {
	switch f.acc {
	case Count:
		return R(f.n)
	case Mean:
		if f.n == 0 {
			return 0
		}
		return R(f.sum / float64(f.n))
	default:
		return R(f.value)
	}
}

// Reduce folds values with acc and returns the result as R. Count needs
// an integer R, Mean a floating point R, and every other accumulator an
// R identical to T; other combinations fail with ErrElementType.
func Reduce[R, T Number](acc Accumulator, values []T) (R, error) {
	if err := checkTypes[R, T](acc); err != nil {
		return 0, err
	}
	f, err := NewFold[T](acc)
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		f.Push(v)
	}
	return FoldResult[R](f), nil
}

// AddOp returns a + b.
func AddOp[T Number](a, b T) T { return a + b }

// MulOp returns a * b.
func MulOp[T Number](a, b T) T { return a * b }

// MinOp returns the smaller of a and b.
func MinOp[T Number](a, b T) T { return min(a, b) }

// MaxOp returns the larger of a and b.
func MaxOp[T Number](a, b T) T { return max(a, b) }

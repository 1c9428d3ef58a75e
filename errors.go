package hierarchy

import "errors"

var (
	// ErrInvalidTree signals a parent array that breaks the canonical
	// numbering (parents strictly above children, a single root at N-1).
	ErrInvalidTree = errors.New("hierarchy: invalid tree")
	// ErrShapeMismatch signals an array whose length does not match the
	// node, leaf, vertex or edge count it is paired with.
	ErrShapeMismatch = errors.New("hierarchy: shape mismatch")
	// ErrOutOfRange signals a node or vertex index outside its domain.
	ErrOutOfRange = errors.New("hierarchy: index out of range")
	// ErrUnknownAccumulator signals an accumulator tag outside the closed set.
	ErrUnknownAccumulator = errors.New("hierarchy: unknown accumulator")
	// ErrElementType signals an output element type that the accumulator
	// cannot produce (Count needs integers, Mean needs floats, the others
	// preserve the input type).
	ErrElementType = errors.New("hierarchy: invalid element type")
	// ErrInvalidConfig signals an invalid Config.
	ErrInvalidConfig = errors.New("hierarchy: invalid configuration")
)

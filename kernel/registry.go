package kernel

import "sort"

// Constructor builds a Kernel over training set X with scale gamma.
type Constructor func(x [][]float64, gamma float64) (Kernel, error)

// Registry maps kernel Kinds to their constructors. It is an explicit
// value — estimators own (or are handed) a Registry; nothing is
// registered through package-global state, so lookups stay
// deterministic and testable.
//
// The zero Registry supports nothing; use NewRegistry for the
// built-ins.
type Registry struct {
	ctors map[Kind]Constructor
}

// NewRegistry returns a Registry preloaded with the built-in kernels:
// RBF, Linear, Poly and Sigmoid.
func NewRegistry() *Registry {
	r := &Registry{ctors: make(map[Kind]Constructor, 4)}
	r.ctors[RBF] = NewRBF
	r.ctors[Linear] = NewLinear
	r.ctors[Poly] = NewPoly
	r.ctors[Sigmoid] = NewSigmoid

	return r
}

// Register adds (or replaces) a constructor for kind.
// Returns ErrNilConstructor for a nil constructor or empty kind.
func (r *Registry) Register(kind Kind, ctor Constructor) error {
	if kind == "" || ctor == nil {
		return ErrNilConstructor
	}
	if r.ctors == nil {
		r.ctors = make(map[Kind]Constructor, 1)
	}
	r.ctors[kind] = ctor

	return nil
}

// Supports reports whether kind has a registered constructor.
func (r *Registry) Supports(kind Kind) bool {
	_, ok := r.ctors[kind]

	return ok
}

// Kinds returns the registered kinds in sorted order (deterministic,
// suitable for error messages and docs).
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.ctors))
	for k := range r.ctors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}

// New constructs a kernel of the requested kind over X with scale gamma.
// Returns ErrUnsupportedKernel when kind is not registered — this is
// the construction-time failure; a Kernel handed out by New never
// fails on kind again.
func (r *Registry) New(kind Kind, x [][]float64, gamma float64) (Kernel, error) {
	ctor, ok := r.ctors[kind]
	if !ok {
		return nil, ErrUnsupportedKernel
	}

	return ctor(x, gamma)
}

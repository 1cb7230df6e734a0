// Package estimator: functional configuration shared by all three
// façades. One Default* constant per knob (single source of truth),
// With* constructors with strong validation (panic on nonsensical
// values — programmer error), and a gather helper applying setters
// over the defaults. Hyperparameters are immutable after construction.

package estimator

import (
	"math"

	"github.com/kvasirml/kridge/augment"
	"github.com/kvasirml/kridge/hog"
	"github.com/kvasirml/kridge/kernel"
)

// Hyperparameter defaults.
const (
	// DefaultC is the ridge regularization constant; the diagonal shift
	// is C·N.
	DefaultC = 1.0

	// DefaultKernel selects the similarity function.
	DefaultKernel = kernel.RBF

	// DefaultGamma is the kernel scale parameter.
	DefaultGamma = 10.0
)

// Internal panic messages (no magic strings).
const (
	panicCInvalid     = "estimator: WithC: C must be finite and > 0"
	panicGammaInvalid = "estimator: WithGamma: gamma must be finite"
	panicNilRegistry  = "estimator: WithRegistry: registry must be non-nil"
	panicNilExtractor = "estimator: WithExtractor: extractor must be non-nil"
)

// Stage identifies a phase reported through ProgressFunc.
type Stage string

// Progress stages, in lifecycle order.
const (
	// StageKernelMatrix covers the O(N²·d) similarity-matrix build that
	// dominates fit cost.
	StageKernelMatrix Stage = "kernel_matrix"

	// StageSolve covers the regularized system solve(s).
	StageSolve Stage = "solve"

	// StagePredict covers the per-sample prediction loop.
	StagePredict Stage = "predict"
)

// ProgressFunc receives (stage, done, total) ticks. Purely
// observational: it must not (and cannot) alter results. A nil
// ProgressFunc disables reporting.
type ProgressFunc func(stage Stage, done, total int)

// fire reports a tick, tolerating a nil callback.
func (p ProgressFunc) fire(stage Stage, done, total int) {
	if p != nil {
		p(stage, done, total)
	}
}

// Option mutates internal options. Constructors panic only on
// nonsensical values; recoverable conditions (unknown kernel kind,
// singular system) surface as errors from New*/Fit instead.
type Option func(*options)

// options stores the effective configuration after applying setters.
// Unexported to prevent mutation after construction.
type options struct {
	c        float64
	kind     kernel.Kind
	gamma    float64
	registry *kernel.Registry
	progress ProgressFunc

	// augmented-classifier knobs
	flipRatio   float64
	rotReplicas int
	rotRatio    float64
	rotAngle    float64
	seed        int64
	extractor   *hog.Extractor
}

// WithC sets the regularization constant C (> 0, finite).
func WithC(c float64) Option {
	if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		panic(panicCInvalid)
	}

	return func(o *options) { o.c = c }
}

// WithKernel selects the kernel kind. Validity is checked against the
// registry at estimator construction, returning
// kernel.ErrUnsupportedKernel for unknown kinds.
func WithKernel(kind kernel.Kind) Option {
	return func(o *options) { o.kind = kind }
}

// WithGamma sets the kernel scale parameter (finite; per-kernel range
// rules apply at fit, e.g. rbf requires gamma > 0).
func WithGamma(gamma float64) Option {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		panic(panicGammaInvalid)
	}

	return func(o *options) { o.gamma = gamma }
}

// WithRegistry replaces the built-in kernel registry, e.g. to add
// custom kernels via kernel.Registry.Register.
func WithRegistry(r *kernel.Registry) Option {
	if r == nil {
		panic(panicNilRegistry)
	}

	return func(o *options) { o.registry = r }
}

// WithProgress installs a progress callback (nil disables reporting).
func WithProgress(p ProgressFunc) Option {
	return func(o *options) { o.progress = p }
}

// WithFlipRatio sets the augmented variant's horizontal-flip ratio.
// Range validation is delegated to the augment package's own option
// constructor at fit time.
func WithFlipRatio(ratio float64) Option {
	return func(o *options) { o.flipRatio = ratio }
}

// WithRotReplicas sets the augmented variant's rotated copies per
// selected sample.
func WithRotReplicas(replicas int) Option {
	return func(o *options) { o.rotReplicas = replicas }
}

// WithRotRatio sets the augmented variant's rotation selection ratio.
func WithRotRatio(ratio float64) Option {
	return func(o *options) { o.rotRatio = ratio }
}

// WithRotAngle bounds the augmented variant's rotation draw (degrees).
func WithRotAngle(angle float64) Option {
	return func(o *options) { o.rotAngle = angle }
}

// WithSeed fixes the augmentation random seed, making augmented fits
// reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithExtractor replaces the default HOG extractor of the augmented
// variant (e.g. different cell size or explicit image dimensions).
func WithExtractor(e *hog.Extractor) Option {
	if e == nil {
		panic(panicNilExtractor)
	}

	return func(o *options) { o.extractor = e }
}

// gatherOptions applies user setters over the documented defaults.
// Last-writer-wins; deterministic for a given setter sequence.
func gatherOptions(opts ...Option) options {
	o := options{
		c:        DefaultC,
		kind:     DefaultKernel,
		gamma:    DefaultGamma,
		registry: kernel.NewRegistry(),

		flipRatio:   augment.DefaultFlipRatio,
		rotReplicas: augment.DefaultRotReplicas,
		rotRatio:    augment.DefaultRotRatio,
		rotAngle:    augment.DefaultRotAngle,
		seed:        augment.DefaultSeed,
		extractor:   hog.New(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

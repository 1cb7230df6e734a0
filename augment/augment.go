package augment

import (
	"errors"
	"math"
	"math/rand"
)

// Augmentation defaults (single source of truth).
const (
	// DefaultFlipRatio is the fraction of samples given a mirrored copy.
	DefaultFlipRatio = 0.2

	// DefaultRotReplicas is the number of rotated copies per selected sample.
	DefaultRotReplicas = 1

	// DefaultRotRatio is the fraction of samples given rotated copies.
	DefaultRotRatio = 0.2

	// DefaultRotAngle bounds the rotation draw, in degrees: each replica
	// is rotated by an angle uniform in [-DefaultRotAngle, +DefaultRotAngle].
	DefaultRotAngle = 20.0

	// DefaultSeed feeds the random source when WithSeed is not given.
	DefaultSeed = 1
)

var (
	// ErrEmptyDataset indicates Augment received no samples.
	ErrEmptyDataset = errors.New("augment: empty dataset")

	// ErrSizeMismatch indicates len(X) != len(y).
	ErrSizeMismatch = errors.New("augment: samples and labels differ in length")

	// ErrBadShape indicates a sample length inconsistent with the
	// configured (or inferred square) image dimensions.
	ErrBadShape = errors.New("augment: sample does not match image shape")
)

// Internal panic messages for option constructors (programmer errors).
const (
	panicRatioInvalid    = "augment: ratio must be within [0, 1]"
	panicReplicasInvalid = "augment: WithRotReplicas: replicas must be >= 0"
	panicAngleInvalid    = "augment: WithRotAngle: angle must be finite and >= 0"
	panicImageInvalid    = "augment: WithImageSize: width and height must be > 0"
)

// Option mutates augmentation configuration.
type Option func(*config)

type config struct {
	flipRatio   float64
	rotReplicas int
	rotRatio    float64
	rotAngle    float64 // degrees
	seed        int64
	width       int // 0 ⇒ infer square side per sample
	height      int
}

// WithFlipRatio sets the fraction of samples that receive one
// horizontally mirrored copy. Must lie in [0, 1].
func WithFlipRatio(ratio float64) Option {
	if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
		panic(panicRatioInvalid)
	}

	return func(c *config) { c.flipRatio = ratio }
}

// WithRotReplicas sets how many rotated copies each selected sample gets.
func WithRotReplicas(replicas int) Option {
	if replicas < 0 {
		panic(panicReplicasInvalid)
	}

	return func(c *config) { c.rotReplicas = replicas }
}

// WithRotRatio sets the fraction of samples that receive rotated
// copies. Must lie in [0, 1].
func WithRotRatio(ratio float64) Option {
	if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
		panic(panicRatioInvalid)
	}

	return func(c *config) { c.rotRatio = ratio }
}

// WithRotAngle bounds the per-replica rotation draw to
// [-angle, +angle] degrees.
func WithRotAngle(angle float64) Option {
	if math.IsNaN(angle) || math.IsInf(angle, 0) || angle < 0 {
		panic(panicAngleInvalid)
	}

	return func(c *config) { c.rotAngle = angle }
}

// WithSeed fixes the random source. Identical seed + inputs ⇒
// identical output.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithImageSize fixes the image dimensions instead of inferring a
// square side from the sample length.
func WithImageSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic(panicImageInvalid)
	}

	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// Augment returns the dataset expanded with flipped and rotated
// replicas: originals first (in input order), then augmented copies in
// source order. Each copy carries its source sample's label.
//
// Per sample the draws happen in a fixed order — flip selection,
// rotation selection, then one angle per replica — so the output is a
// pure function of (X, y, options).
func Augment(x [][]float64, y []int, opts ...Option) ([][]float64, []int, error) {
	if len(x) == 0 {
		return nil, nil, ErrEmptyDataset
	}
	if len(x) != len(y) {
		return nil, nil, ErrSizeMismatch
	}

	c := config{
		flipRatio:   DefaultFlipRatio,
		rotReplicas: DefaultRotReplicas,
		rotRatio:    DefaultRotRatio,
		rotAngle:    DefaultRotAngle,
		seed:        DefaultSeed,
	}
	for _, opt := range opts {
		opt(&c)
	}

	rng := rand.New(rand.NewSource(c.seed))

	outX := make([][]float64, len(x), len(x)*(1+c.rotReplicas)+len(x)/2)
	outY := make([]int, len(y), cap(outX))
	copy(outX, x)
	copy(outY, y)

	for i, sample := range x {
		w, h, err := shape(&c, sample)
		if err != nil {
			return nil, nil, err
		}

		if rng.Float64() < c.flipRatio {
			outX = append(outX, flipHorizontal(sample, w, h))
			outY = append(outY, y[i])
		}
		if rng.Float64() < c.rotRatio {
			for r := 0; r < c.rotReplicas; r++ {
				degrees := (2*rng.Float64() - 1) * c.rotAngle
				outX = append(outX, rotate(sample, w, h, degrees))
				outY = append(outY, y[i])
			}
		}
	}

	return outX, outY, nil
}

// shape resolves the (width, height) of a sample.
func shape(c *config, sample []float64) (int, int, error) {
	if c.width > 0 {
		if len(sample) != c.width*c.height {
			return 0, 0, ErrBadShape
		}

		return c.width, c.height, nil
	}
	side := int(math.Round(math.Sqrt(float64(len(sample)))))
	if side == 0 || side*side != len(sample) {
		return 0, 0, ErrBadShape
	}

	return side, side, nil
}

// flipHorizontal mirrors each row of the flattened w×h image.
func flipHorizontal(sample []float64, w, h int) []float64 {
	out := make([]float64, len(sample))
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			out[row+x] = sample[row+w-1-x]
		}
	}

	return out
}

// rotate resamples the flattened w×h image rotated counter-clockwise
// by the given angle (degrees) about its center, nearest-neighbor,
// with out-of-bounds source pixels set to 0.
func rotate(sample []float64, w, h int, degrees float64) []float64 {
	theta := degrees * math.Pi / 180
	sin, cos := math.Sincos(theta)
	cx, cy := float64(w-1)/2, float64(h-1)/2

	out := make([]float64, len(sample))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Inverse mapping: destination pixel pulled from the source
			// rotated the opposite way.
			dx, dy := float64(x)-cx, float64(y)-cy
			sx := int(math.Round(cx + dx*cos + dy*sin))
			sy := int(math.Round(cy - dx*sin + dy*cos))
			if sx >= 0 && sx < w && sy >= 0 && sy < h {
				out[y*w+x] = sample[sy*w+sx]
			}
		}
	}

	return out
}

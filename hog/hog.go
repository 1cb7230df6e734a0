package hog

import (
	"errors"
	"math"
)

// Descriptor defaults (single source of truth).
const (
	// DefaultCellSize is the cell side length in pixels.
	DefaultCellSize = 8

	// DefaultBins is the number of unsigned orientation bins over 0–180°.
	DefaultBins = 9

	// DefaultBlockSize is the block side length in cells for L2
	// normalization.
	DefaultBlockSize = 2

	// normEps guards the L2 block normalization against zero-gradient blocks.
	normEps = 1e-10
)

var (
	// ErrEmptyInput indicates Transform received no samples.
	ErrEmptyInput = errors.New("hog: empty input")

	// ErrBadShape indicates a sample length inconsistent with the
	// configured (or inferred) image dimensions, or an image smaller
	// than one cell.
	ErrBadShape = errors.New("hog: sample does not match image shape")

	// ErrNotSquare indicates image dimensions were not configured and a
	// sample length is not a perfect square, so no shape can be inferred.
	ErrNotSquare = errors.New("hog: cannot infer square image side")
)

// Internal panic messages for option constructors (programmer errors).
const (
	panicCellInvalid  = "hog: WithCellSize: size must be > 0"
	panicBinsInvalid  = "hog: WithBins: bins must be > 0"
	panicBlockInvalid = "hog: WithBlockSize: size must be > 0"
	panicImageInvalid = "hog: WithImageSize: width and height must be > 0"
)

// Option mutates extractor configuration. Constructors panic only on
// nonsensical values (programmer error); data errors surface from
// Transform as sentinels.
type Option func(*Extractor)

// WithCellSize sets the cell side length in pixels.
func WithCellSize(size int) Option {
	if size <= 0 {
		panic(panicCellInvalid)
	}

	return func(e *Extractor) { e.cell = size }
}

// WithBins sets the number of orientation bins.
func WithBins(bins int) Option {
	if bins <= 0 {
		panic(panicBinsInvalid)
	}

	return func(e *Extractor) { e.bins = bins }
}

// WithBlockSize sets the normalization block side length in cells.
func WithBlockSize(size int) Option {
	if size <= 0 {
		panic(panicBlockInvalid)
	}

	return func(e *Extractor) { e.block = size }
}

// WithImageSize fixes the image dimensions instead of inferring a
// square side from the sample length.
func WithImageSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic(panicImageInvalid)
	}

	return func(e *Extractor) {
		e.width = width
		e.height = height
	}
}

// Extractor computes HOG descriptors. Construct with New; immutable
// afterwards and safe to reuse across fit and predict.
type Extractor struct {
	cell   int
	bins   int
	block  int
	width  int // 0 ⇒ infer square side per sample
	height int
}

// New returns an Extractor with documented defaults, overridden by opts.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		cell:  DefaultCellSize,
		bins:  DefaultBins,
		block: DefaultBlockSize,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Transform extracts one HOG descriptor per sample, preserving order.
// Every sample must match the configured image shape (or share one
// inferable square side).
func (e *Extractor) Transform(samples [][]float64) ([][]float64, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([][]float64, len(samples))
	for i, s := range samples {
		desc, err := e.describe(s)
		if err != nil {
			return nil, err
		}
		out[i] = desc
	}

	return out, nil
}

// shape resolves the (width, height) of a sample.
func (e *Extractor) shape(sample []float64) (int, int, error) {
	if e.width > 0 {
		if len(sample) != e.width*e.height {
			return 0, 0, ErrBadShape
		}

		return e.width, e.height, nil
	}
	side := int(math.Round(math.Sqrt(float64(len(sample)))))
	if side == 0 || side*side != len(sample) {
		return 0, 0, ErrNotSquare
	}

	return side, side, nil
}

// describe computes the descriptor of a single flattened image.
func (e *Extractor) describe(sample []float64) ([]float64, error) {
	w, h, err := e.shape(sample)
	if err != nil {
		return nil, err
	}
	cellsX, cellsY := w/e.cell, h/e.cell
	if cellsX < 1 || cellsY < 1 {
		return nil, ErrBadShape
	}

	// Per-cell orientation histograms, magnitude-weighted.
	hist := make([][]float64, cellsX*cellsY)
	for i := range hist {
		hist[i] = make([]float64, e.bins)
	}
	binWidth := math.Pi / float64(e.bins)
	at := func(y, x int) float64 { return sample[y*w+x] }
	for y := 0; y < cellsY*e.cell; y++ {
		for x := 0; x < cellsX*e.cell; x++ {
			// Central differences with clamped borders.
			x0, x1 := maxInt(x-1, 0), minInt(x+1, w-1)
			y0, y1 := maxInt(y-1, 0), minInt(y+1, h-1)
			gx := at(y, x1) - at(y, x0)
			gy := at(y1, x) - at(y0, x)
			magnitude := math.Hypot(gx, gy)
			if magnitude == 0 {
				continue
			}
			// Unsigned orientation in [0, π).
			angle := math.Atan2(gy, gx)
			if angle < 0 {
				angle += math.Pi
			}
			bin := int(angle / binWidth)
			if bin >= e.bins {
				bin = e.bins - 1
			}
			cell := (y/e.cell)*cellsX + x/e.cell
			hist[cell][bin] += magnitude
		}
	}

	return e.normalize(hist, cellsX, cellsY), nil
}

// normalize concatenates overlapping blockSize×blockSize cell groups
// (stride one cell) and L2-normalizes each. When the image has fewer
// cells than one block, the whole descriptor is normalized as a single
// block instead.
func (e *Extractor) normalize(hist [][]float64, cellsX, cellsY int) []float64 {
	blocksX, blocksY := cellsX-e.block+1, cellsY-e.block+1
	if blocksX < 1 || blocksY < 1 {
		flat := make([]float64, 0, len(hist)*e.bins)
		for _, cell := range hist {
			flat = append(flat, cell...)
		}

		return l2normalized(flat)
	}

	blockLen := e.block * e.block * e.bins
	desc := make([]float64, 0, blocksX*blocksY*blockLen)
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			block := make([]float64, 0, blockLen)
			for cy := by; cy < by+e.block; cy++ {
				for cx := bx; cx < bx+e.block; cx++ {
					block = append(block, hist[cy*cellsX+cx]...)
				}
			}
			desc = append(desc, l2normalized(block)...)
		}
	}

	return desc
}

// l2normalized scales v to unit L2 norm in place (eps-guarded).
func l2normalized(v []float64) []float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	norm := math.Sqrt(sum + normEps)
	for i := range v {
		v[i] /= norm
	}

	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

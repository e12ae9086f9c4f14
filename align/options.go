package align

// Supported dist methods for the univariate Aligner. On a single column
// every pointwise metric below reduces to |a−b|, which is the engine's
// native local cost; squared or multivariate metrics belong to
// DistAligner via a PairwiseTransformer.
const (
	DistEuclidean = "euclidean"
	DistCityblock = "cityblock"
	DistChebyshev = "chebyshev"
)

// Supported step patterns. The engine's single-cell recurrence does not
// double-weight diagonal steps, so symmetric1 and symmetric2 coincide;
// the symmetricP* family maps to a slope penalty added to every
// non-diagonal step.
const (
	StepSymmetric1   = "symmetric1"
	StepSymmetric2   = "symmetric2"
	StepSymmetricP05 = "symmetricP05"
	StepSymmetricP1  = "symmetricP1"
	StepSymmetricP2  = "symmetricP2"
)

// Supported window types. WindowSakoeChiba constrains the warp to the
// band |i−j| ≤ WindowSize; WindowNone leaves it unconstrained.
const (
	WindowNone       = "none"
	WindowSakoeChiba = "sakoechiba"
)

// windowUnset marks WindowSize as not configured. Zero is a valid
// Sakoe–Chiba radius (strict diagonal), so the sentinel must be negative.
const windowUnset = -1

// distMethods lists the accepted dist methods in error-message order.
var distMethods = []string{DistEuclidean, DistCityblock, DistChebyshev}

// stepPatterns lists the accepted step patterns in error-message order.
var stepPatterns = []string{
	StepSymmetric1,
	StepSymmetric2,
	StepSymmetricP05,
	StepSymmetricP1,
	StepSymmetricP2,
}

// windowTypes lists the accepted window types in error-message order.
var windowTypes = []string{WindowNone, WindowSakoeChiba}

// slopePenalties maps each step pattern to the penalty charged on
// non-diagonal warp steps.
var slopePenalties = map[string]float64{
	StepSymmetric1:   0,
	StepSymmetric2:   0,
	StepSymmetricP05: 0.5,
	StepSymmetricP1:  1,
	StepSymmetricP2:  2,
}

// Options configures an Aligner or DistAligner.
//
// DistMethod  – pointwise metric for the univariate variant (Aligner only).
// StepPattern – recurrence flavor; symmetricP* charge a slope penalty.
// WindowType  – warp constraint: WindowNone or WindowSakoeChiba.
// WindowSize  – Sakoe–Chiba band radius; required with WindowSakoeChiba.
// OpenBegin   – allow the second sequence to start unmatched (suffix
// alignment of its head).
// OpenEnd     – allow the second sequence to end unmatched (prefix
// alignment of its tail).
// Column      – column to align on (Aligner only); empty selects the
// first column of the first sequence.
type Options struct {
	DistMethod  string
	StepPattern string
	WindowType  string
	WindowSize  int
	OpenBegin   bool
	OpenEnd     bool
	Column      string
}

// Option represents a functional option for configuring alignment.
type Option func(*Options)

// WithDistMethod sets the pointwise metric used on the aligned column.
// Accepted values: euclidean, cityblock, chebyshev.
func WithDistMethod(method string) Option {
	return func(o *Options) {
		o.DistMethod = method
	}
}

// WithStepPattern sets the step pattern of the warping recurrence.
// Accepted values: symmetric1, symmetric2, symmetricP05, symmetricP1,
// symmetricP2.
func WithStepPattern(pattern string) Option {
	return func(o *Options) {
		o.StepPattern = pattern
	}
}

// WithWindowType sets the warp window constraint.
// Accepted values: none, sakoechiba.
func WithWindowType(typ string) Option {
	return func(o *Options) {
		o.WindowType = typ
	}
}

// WithWindowSize sets the Sakoe–Chiba band radius. Only meaningful with
// WithWindowType(WindowSakoeChiba); zero means a strict diagonal band.
func WithWindowSize(size int) Option {
	return func(o *Options) {
		o.WindowSize = size
	}
}

// WithOpenBegin allows the alignment to skip an unmatched head of the
// second sequence.
func WithOpenBegin() Option {
	return func(o *Options) {
		o.OpenBegin = true
	}
}

// WithOpenEnd allows the alignment to skip an unmatched tail of the
// second sequence.
func WithOpenEnd() Option {
	return func(o *Options) {
		o.OpenEnd = true
	}
}

// WithColumn selects the column to align on. The column must exist in
// both sequences. When unset, the first column of the first sequence is
// used.
func WithColumn(name string) Option {
	return func(o *Options) {
		o.Column = name
	}
}

// DefaultOptions returns the Options used when no functional options are
// given: euclidean pointwise metric, symmetric2 step pattern, no window,
// closed at both ends, first column of the first sequence.
func DefaultOptions() Options {
	return Options{
		DistMethod:  DistEuclidean,
		StepPattern: StepSymmetric2,
		WindowType:  WindowNone,
		WindowSize:  windowUnset,
	}
}

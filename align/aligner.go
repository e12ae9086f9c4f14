package align

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/go-gota/gota/dataframe"
	"github.com/katalvlaran/lvlath/dtw"
)

// Aligner is the univariate alignment adapter: it aligns two labeled
// sequences on one shared numeric column, delegating the warping search
// to the DTW engine (closed alignments) or to the warp grid (open-ended
// alignments).
//
// Aligner is fit-then-query and not safe for concurrent use; align each
// pair with its own instance.
type Aligner struct {
	opts Options
	fitState
}

// New constructs an Aligner with the given options. Option values are
// validated at Fit, not here.
func New(opts ...Option) *Aligner {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	return &Aligner{opts: cfg}
}

// Fit aligns x0 against x1 on the configured column and stores the
// result for the query methods.
//
// Stage 1: validate options.
// Stage 2: validate sequences (materialized, non-empty).
// Stage 3: resolve the alignment column (must exist in both sequences).
// Stage 4: extract the column vectors.
// Stage 5: delegate the search (engine for closed, warp grid for open).
// Stage 6: store the result.
//
// Complexity: O(n·m) closed, O(n·m·log(n·m)) open-ended.
func (a *Aligner) Fit(x0, x1 dataframe.DataFrame) error {
	var err error
	if err = validateOptions(a.opts); err != nil {
		return err
	}
	if err = validateSequences(x0, x1); err != nil {
		return err
	}
	col, err := resolveColumn(a.opts, x0, x1)
	if err != nil {
		return err
	}

	v0 := x0.Col(col).Float()
	v1 := x1.Col(col).Float()

	var (
		distance float64
		pairs    [][2]int
	)
	if a.opts.OpenBegin || a.opts.OpenEnd {
		distance, pairs, err = alignOpen(v0, v1, a.opts)
	} else {
		distance, pairs, err = alignClosed(v0, v1, a.opts)
	}
	if err != nil {
		return err
	}

	a.res = newResult(x0, x1, pairs, distance)

	return nil
}

// alignClosed delegates a closed-ended univariate alignment to the DTW
// engine and converts its path into index pairs.
func alignClosed(v0, v1 []float64, o Options) (float64, [][2]int, error) {
	opts := dtw.DefaultOptions()
	opts.Window = engineWindow(o)
	opts.SlopePenalty = slopePenalties[o.StepPattern]
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	distance, path, err := dtw.DTW(v0, v1, &opts)
	if err != nil {
		return 0, nil, errors.Wrap(err, "align: engine")
	}
	if math.IsInf(distance, 1) {
		// The window forbids every path; there is nothing to pair up.
		return distance, nil, nil
	}

	pairs := make([][2]int, len(path))
	var k int
	var c dtw.Coord
	for k, c = range path {
		pairs[k] = [2]int{c.I, c.J}
	}

	return distance, pairs, nil
}

// alignOpen solves an open-ended univariate alignment on the warp grid,
// using the pointwise local cost of the configured dist method.
func alignOpen(v0, v1 []float64, o Options) (float64, [][2]int, error) {
	cost := make([][]float64, len(v0))
	var (
		i, j int
		row  []float64
	)
	for i = 0; i < len(v0); i++ {
		row = make([]float64, len(v1))
		for j = 0; j < len(v1); j++ {
			row[j] = pointCost(v0[i], v1[j])
		}
		cost[i] = row
	}

	wg := warpGrid{
		cost:      cost,
		penalty:   slopePenalties[o.StepPattern],
		window:    engineWindow(o),
		openBegin: o.OpenBegin,
		openEnd:   o.OpenEnd,
	}

	return wg.solve()
}

// pointCost is the pointwise local cost |a−b|. On scalars euclidean,
// cityblock and chebyshev all reduce to it, which is also the engine's
// native local cost.
func pointCost(a, b float64) float64 {
	return math.Abs(a - b)
}

// engineWindow maps the window options onto the engine's Window field:
// the configured radius under sakoechiba, -1 (unconstrained) otherwise.
func engineWindow(o Options) int {
	if o.WindowType == WindowSakoeChiba {
		return o.WindowSize
	}

	return windowUnset
}

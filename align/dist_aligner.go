package align

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gota/gota/dataframe"
	"github.com/katalvlaran/lvlath/matrix"
)

// PairwiseTransformer computes a pairwise distance matrix between the
// rows of two frames: cell (i,j) of the result is the distance between
// row i of x and row j of y. It is the required collaborator of the
// matrix variant; package pairdist ships ready-made implementations.
type PairwiseTransformer interface {
	Transform(x, y dataframe.DataFrame) (*matrix.Dense, error)
}

// DistAligner is the matrix-variant adapter: instead of a pointwise
// metric on one column, it aligns two sequences through the pairwise
// cost surface produced by a PairwiseTransformer, which makes
// multivariate and non-standard metrics possible. The search runs on
// the warp grid.
//
// DistAligner is fit-then-query and not safe for concurrent use.
type DistAligner struct {
	trafo PairwiseTransformer
	opts  Options
	fitState
}

// NewDist constructs a DistAligner around the given transformer. The
// transformer is required: nil fails immediately with ErrNilTransformer.
// Option values are validated at Fit.
func NewDist(t PairwiseTransformer, opts ...Option) (*DistAligner, error) {
	if t == nil {
		return nil, ErrNilTransformer
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	return &DistAligner{trafo: t, opts: cfg}, nil
}

// Fit computes the pairwise cost surface between x0 and x1 via the
// transformer and solves the alignment on the warp grid.
//
// Stage 1: validate options.
// Stage 2: validate sequences (materialized, non-empty).
// Stage 3: run the transformer.
// Stage 4: validate the cost matrix (shape, NaN, negativity).
// Stage 5: solve on the warp grid.
// Stage 6: store the result.
//
// Complexity: O(n·m·log(n·m)) past the transformer's own cost.
func (a *DistAligner) Fit(x0, x1 dataframe.DataFrame) error {
	var err error
	if err = validateOptions(a.opts); err != nil {
		return err
	}
	if err = validateSequences(x0, x1); err != nil {
		return err
	}

	cost, err := a.trafo.Transform(x0, x1)
	if err != nil {
		return errors.Wrap(err, "align: pairwise transform")
	}
	if err = validateCostMatrix(cost); err != nil {
		return err
	}
	if cost.Rows() != x0.Nrow() || cost.Cols() != x1.Nrow() {
		return errors.Wrapf(ErrBadCostMatrix,
			"matrix is %dx%d for sequences of %d and %d observations",
			cost.Rows(), cost.Cols(), x0.Nrow(), x1.Nrow())
	}
	surface, err := denseRows(cost)
	if err != nil {
		return err
	}

	wg := warpGrid{
		cost:      surface,
		penalty:   slopePenalties[a.opts.StepPattern],
		window:    engineWindow(a.opts),
		openBegin: a.opts.OpenBegin,
		openEnd:   a.opts.OpenEnd,
	}
	distance, pairs, err := wg.solve()
	if err != nil {
		return err
	}

	a.res = newResult(x0, x1, pairs, distance)

	return nil
}

package align

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/katalvlaran/lvlath/matrix"
)

// Result is the outcome of a successful Fit: the warping path between
// the two fitted sequences and its cumulative cost. Both aligner
// variants produce the same Result shape, so every query below behaves
// identically regardless of how the alignment was computed.
type Result struct {
	x0, x1   dataframe.DataFrame
	idx0     []int
	idx1     []int
	distance float64
}

// newResult stores the fitted pair and splits the warping path into the
// two index columns the queries serve from.
func newResult(x0, x1 dataframe.DataFrame, pairs [][2]int, distance float64) *Result {
	idx0 := make([]int, len(pairs))
	idx1 := make([]int, len(pairs))
	var k int
	var p [2]int
	for k, p = range pairs {
		idx0[k] = p[0]
		idx1[k] = p[1]
	}

	return &Result{x0: x0, x1: x1, idx0: idx0, idx1: idx1, distance: distance}
}

// Alignment returns the warping path as a table with integer columns
// ind0 and ind1: row k states that row ind0[k] of the first sequence
// corresponds to row ind1[k] of the second. A +Inf distance (window
// admits no path) yields an empty table.
func (r *Result) Alignment() dataframe.DataFrame {
	return dataframe.New(
		series.New(r.idx0, series.Int, "ind0"),
		series.New(r.idx1, series.Int, "ind1"),
	)
}

// Distance returns the cumulative alignment cost, +Inf when the window
// admits no path.
func (r *Result) Distance() float64 {
	return r.distance
}

// DistanceMatrix returns the 2×2 distance matrix over the fitted pair:
// zero diagonal, alignment distance mirrored off-diagonal. The matrix
// holds finite values only; when the fitted distance is +Inf (window
// admits no path) the storage rejects it and the error surfaces here.
// Use Distance to detect the no-path outcome.
func (r *Result) DistanceMatrix() (*matrix.Dense, error) {
	d, err := matrix.NewDense(2, 2)
	if err != nil {
		return nil, errors.Wrap(err, "align: distance matrix")
	}
	if err = d.Set(0, 1, r.distance); err != nil {
		return nil, errors.Wrap(err, "align: distance matrix")
	}
	if err = d.Set(1, 0, r.distance); err != nil {
		return nil, errors.Wrap(err, "align: distance matrix")
	}

	return d, nil
}

// Pairs returns a copy of the warping path as (ind0, ind1) index pairs
// in step order.
func (r *Result) Pairs() [][2]int {
	pairs := make([][2]int, len(r.idx0))
	for k := range r.idx0 {
		pairs[k] = [2]int{r.idx0[k], r.idx1[k]}
	}

	return pairs
}

// AlignedPair returns both fitted sequences reindexed by the warping
// path: row k of each returned table is the row the path visits in the
// corresponding input, so the two tables always have equal length.
func (r *Result) AlignedPair() (dataframe.DataFrame, dataframe.DataFrame, error) {
	a0 := r.x0.Subset(r.idx0)
	if a0.Err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, errors.Wrap(a0.Err, "align: reindex sequence 0")
	}
	a1 := r.x1.Subset(r.idx1)
	if a1.Err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, errors.Wrap(a1.Err, "align: reindex sequence 1")
	}

	return a0, a1, nil
}

// fitState carries the post-fit query surface shared by both aligner
// variants. Every query answers from the stored Result and fails with
// ErrNotFitted until Fit has succeeded.
type fitState struct {
	res *Result
}

// Result returns the raw fit outcome, or ErrNotFitted before Fit.
func (f *fitState) Result() (*Result, error) {
	if f.res == nil {
		return nil, ErrNotFitted
	}

	return f.res, nil
}

// Alignment returns the fitted warping path as an (ind0, ind1) table,
// or ErrNotFitted before Fit.
func (f *fitState) Alignment() (dataframe.DataFrame, error) {
	if f.res == nil {
		return dataframe.DataFrame{}, ErrNotFitted
	}

	return f.res.Alignment(), nil
}

// Distance returns the fitted alignment cost, or ErrNotFitted before Fit.
func (f *fitState) Distance() (float64, error) {
	if f.res == nil {
		return 0, ErrNotFitted
	}

	return f.res.Distance(), nil
}

// DistanceMatrix returns the fitted 2×2 distance matrix, or ErrNotFitted
// before Fit.
func (f *fitState) DistanceMatrix() (*matrix.Dense, error) {
	if f.res == nil {
		return nil, ErrNotFitted
	}

	return f.res.DistanceMatrix()
}

// Pairs returns the fitted warping path as index pairs, or ErrNotFitted
// before Fit.
func (f *fitState) Pairs() ([][2]int, error) {
	if f.res == nil {
		return nil, ErrNotFitted
	}

	return f.res.Pairs(), nil
}

// AlignedPair returns the fitted sequences reindexed by the warping
// path, or ErrNotFitted before Fit.
func (f *fitState) AlignedPair() (dataframe.DataFrame, dataframe.DataFrame, error) {
	if f.res == nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, ErrNotFitted
	}

	return f.res.AlignedPair()
}

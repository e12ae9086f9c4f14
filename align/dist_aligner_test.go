package align_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/katalvlaran/lvlath/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsbench/align"
	"github.com/katalvlaran/tsbench/pairdist"
)

// seriesFloat builds a named float series; shorthand for multivariate frames.
func seriesFloat(name string, values ...float64) series.Series {
	return series.New(values, series.Float, name)
}

// fixedTransform returns a prebuilt matrix regardless of input; used to
// feed crafted cost surfaces into the matrix variant.
type fixedTransform struct {
	m *matrix.Dense
}

func (f fixedTransform) Transform(_, _ dataframe.DataFrame) (*matrix.Dense, error) {
	return f.m, nil
}

// failingTransform always errors; used to verify propagation.
type failingTransform struct {
	err error
}

func (f failingTransform) Transform(_, _ dataframe.DataFrame) (*matrix.Dense, error) {
	return nil, f.err
}

// denseOf builds an r×c Dense from row-major values.
func denseOf(t *testing.T, r, c int, values ...float64) *matrix.Dense {
	t.Helper()
	require.Len(t, values, r*c)
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, d.Set(i, j, values[i*c+j]))
		}
	}

	return d
}

// TestNewDist_NilTransformer verifies that the matrix variant cannot be
// constructed without its pairwise transformer.
func TestNewDist_NilTransformer(t *testing.T) {
	a, err := align.NewDist(nil)
	assert.ErrorIs(t, err, align.ErrNilTransformer)
	assert.Nil(t, a)
}

// TestDistAligner_MatchesUnivariate verifies that both variants agree on
// integer-valued data when the transformer computes the same pointwise
// metric the univariate variant uses.
func TestDistAligner_MatchesUnivariate(t *testing.T) {
	cases := []struct {
		name   string
		x0, x1 dataframe.DataFrame
	}{
		{"perfect stretch", seqFrame("v", 1, 2, 3), seqFrame("v", 1, 2, 2, 3)},
		{"one substitution", seqFrame("v", 1, 2, 3), seqFrame("v", 1, 2, 4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vec := align.New()
			require.NoError(t, vec.Fit(tc.x0, tc.x1))
			wantDist, err := vec.Distance()
			require.NoError(t, err)
			wantPairs, err := vec.Pairs()
			require.NoError(t, err)

			mat, err := align.NewDist(pairdist.Cityblock{})
			require.NoError(t, err)
			require.NoError(t, mat.Fit(tc.x0, tc.x1))

			gotDist, err := mat.Distance()
			require.NoError(t, err)
			assert.Equal(t, wantDist, gotDist, "variants must agree on distance")

			gotPairs, err := mat.Pairs()
			require.NoError(t, err)
			assert.Equal(t, wantPairs, gotPairs, "variants must agree on the warping path")
		})
	}
}

// TestDistAligner_SlopePenaltyOnGrid verifies the penalty is charged on
// the warp-grid path too.
func TestDistAligner_SlopePenaltyOnGrid(t *testing.T) {
	x0 := seqFrame("v", 1, 2, 3)
	x1 := seqFrame("v", 1, 1, 2, 3)

	cases := map[string]float64{
		align.StepSymmetricP05: 0.5,
		align.StepSymmetricP1:  1,
	}
	for pattern, want := range cases {
		a, err := align.NewDist(pairdist.Cityblock{}, align.WithStepPattern(pattern))
		require.NoError(t, err)
		require.NoError(t, a.Fit(x0, x1))

		dist, err := a.Distance()
		require.NoError(t, err)
		assert.Equal(t, want, dist, "pattern %s charges %v on the grid", pattern, want)
	}
}

// TestDistAligner_TransformerErrorPropagates verifies that a failing
// transformer surfaces its own error.
func TestDistAligner_TransformerErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	a, err := align.NewDist(failingTransform{err: boom})
	require.NoError(t, err)

	err = a.Fit(seqFrame("v", 1), seqFrame("v", 1))
	assert.ErrorIs(t, err, boom, "transformer failure must propagate")
}

// TestDistAligner_RejectsBadMatrix verifies the cost-matrix validation:
// nil matrices, negative cells and shape disagreements are all rejected.
func TestDistAligner_RejectsBadMatrix(t *testing.T) {
	x := seqFrame("v", 1, 2)

	a, err := align.NewDist(fixedTransform{m: nil})
	require.NoError(t, err)
	assert.ErrorIs(t, a.Fit(x, x), align.ErrBadCostMatrix, "nil matrix must be rejected")

	negative := denseOf(t, 2, 2, 0, -1, 1, 0)
	a, err = align.NewDist(fixedTransform{m: negative})
	require.NoError(t, err)
	assert.ErrorIs(t, a.Fit(x, x), align.ErrBadCostMatrix, "negative cell must be rejected")

	short := denseOf(t, 1, 2, 0, 1)
	a, err = align.NewDist(fixedTransform{m: short})
	require.NoError(t, err)
	assert.ErrorIs(t, a.Fit(x, x), align.ErrBadCostMatrix, "dimensions must match the sequences")
}

// TestDistAligner_ImpassableWall verifies that cells whose cost exceeds
// the representable weight range are treated as walls: when one blocks
// the mandatory end cell the distance is +Inf and the alignment is empty.
func TestDistAligner_ImpassableWall(t *testing.T) {
	x := seqFrame("v", 1, 2)
	wall := denseOf(t, 2, 2, 0, 5, 5, 1e15)

	a, err := align.NewDist(fixedTransform{m: wall})
	require.NoError(t, err)
	require.NoError(t, a.Fit(x, x))

	dist, err := a.Distance()
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1), "blocked end cell admits no closed path")

	pairs, err := a.Pairs()
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

// TestDistAligner_HugeCostImpassable verifies the degenerate 1×1 wall:
// when the only cell is impassable no path exists at all.
func TestDistAligner_HugeCostImpassable(t *testing.T) {
	x := seqFrame("v", 1)
	huge := denseOf(t, 1, 1, 1e15)

	a, err := align.NewDist(fixedTransform{m: huge})
	require.NoError(t, err)
	require.NoError(t, a.Fit(x, x))

	dist, err := a.Distance()
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1))
}

// TestDistAligner_OpenEndOnMatrix verifies open-end search over a
// crafted cost surface: the cheap prefix wins and the tail stays
// unmatched.
func TestDistAligner_OpenEndOnMatrix(t *testing.T) {
	x0 := seqFrame("v", 1, 2)
	x1 := seqFrame("v", 1, 2, 3, 4)
	cost := denseOf(t, 2, 4,
		0, 9, 9, 9,
		9, 0, 9, 9,
	)

	a, err := align.NewDist(fixedTransform{m: cost}, align.WithOpenEnd())
	require.NoError(t, err)
	require.NoError(t, a.Fit(x0, x1))

	dist, err := a.Distance()
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)

	pairs, err := a.Pairs()
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}}, pairs)
}

// TestDistAligner_EuclideanMultivariate verifies a genuinely
// multivariate alignment: both coordinates participate in the cost.
func TestDistAligner_EuclideanMultivariate(t *testing.T) {
	x0 := dataframe.New(
		seriesFloat("x", 0, 3),
		seriesFloat("y", 0, 4),
	)
	x1 := dataframe.New(
		seriesFloat("x", 0, 3),
		seriesFloat("y", 0, 4),
	)

	a, err := align.NewDist(pairdist.Euclidean{})
	require.NoError(t, err)
	require.NoError(t, a.Fit(x0, x1))

	dist, err := a.Distance()
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist, "identical point sets align for free")

	b, err := align.NewDist(pairdist.Euclidean{})
	require.NoError(t, err)
	x2 := dataframe.New(
		seriesFloat("x", 0, 0),
		seriesFloat("y", 0, 4),
	)
	require.NoError(t, b.Fit(x0, x2))
	dist, err = b.Distance()
	require.NoError(t, err)
	assert.Equal(t, 3.0, dist, "second point differs by (3,0): euclidean gap of 3")
}

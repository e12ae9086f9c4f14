package pairdist

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/go-gota/gota/dataframe"
	"github.com/katalvlaran/lvlath/matrix"
)

// Sentinel errors returned by the pairdist package.
var (
	// ErrEmptyFrame indicates that one of the input frames has no rows.
	ErrEmptyFrame = errors.New("pairdist: empty dataframe")

	// ErrColumnMismatch indicates that the two frames do not expose the
	// same column names.
	ErrColumnMismatch = errors.New("pairdist: column sets differ")
)

// Euclidean computes √Σ(pₖ−qₖ)² between row pairs.
type Euclidean struct{}

// Transform returns the rows(x) × rows(y) Euclidean distance matrix.
func (Euclidean) Transform(x, y dataframe.DataFrame) (*matrix.Dense, error) {
	return transform(x, y, func(p, q []float64) float64 {
		return math.Sqrt(sqSum(p, q))
	})
}

// SqEuclidean computes Σ(pₖ−qₖ)² between row pairs: the squared
// Euclidean distance, which skips the square root and weighs large gaps
// more heavily.
type SqEuclidean struct{}

// Transform returns the rows(x) × rows(y) squared-Euclidean distance matrix.
func (SqEuclidean) Transform(x, y dataframe.DataFrame) (*matrix.Dense, error) {
	return transform(x, y, sqSum)
}

// Cityblock computes Σ|pₖ−qₖ| between row pairs (Manhattan distance).
type Cityblock struct{}

// Transform returns the rows(x) × rows(y) cityblock distance matrix.
func (Cityblock) Transform(x, y dataframe.DataFrame) (*matrix.Dense, error) {
	return transform(x, y, func(p, q []float64) float64 {
		var sum float64
		for k := range p {
			sum += math.Abs(p[k] - q[k])
		}

		return sum
	})
}

// Chebyshev computes max|pₖ−qₖ| between row pairs.
type Chebyshev struct{}

// Transform returns the rows(x) × rows(y) Chebyshev distance matrix.
func (Chebyshev) Transform(x, y dataframe.DataFrame) (*matrix.Dense, error) {
	return transform(x, y, func(p, q []float64) float64 {
		var best float64
		var d float64
		for k := range p {
			if d = math.Abs(p[k] - q[k]); d > best {
				best = d
			}
		}

		return best
	})
}

// sqSum is the shared Σ(pₖ−qₖ)² kernel of the Euclidean family.
func sqSum(p, q []float64) float64 {
	var sum, d float64
	for k := range p {
		d = p[k] - q[k]
		sum += d * d
	}

	return sum
}

// transform validates the pair of frames, materializes their rows over
// the shared columns, and fills the distance matrix with the given
// row-pair metric.
//
// Stage 1: frames must be materialized and non-empty.
// Stage 2: both frames must expose the same column names; rows are read
// in the first frame's column order.
// Stage 3: fill the n×m matrix.
//
// Complexity: O(n·m·d) time, O(n·m) memory.
func transform(x, y dataframe.DataFrame, metric func(p, q []float64) float64) (*matrix.Dense, error) {
	// Stage 1: shape checks.
	if x.Err != nil {
		return nil, errors.Wrap(x.Err, "pairdist: first frame")
	}
	if y.Err != nil {
		return nil, errors.Wrap(y.Err, "pairdist: second frame")
	}
	if x.Nrow() == 0 {
		return nil, errors.Wrap(ErrEmptyFrame, "first frame")
	}
	if y.Nrow() == 0 {
		return nil, errors.Wrap(ErrEmptyFrame, "second frame")
	}

	// Stage 2: column agreement, order-insensitive on the second frame.
	cols := x.Names()
	if err := sameColumns(cols, y.Names()); err != nil {
		return nil, err
	}

	// Stage 3: materialize row points and fill the matrix.
	px := rowsOf(x, cols)
	py := rowsOf(y, cols)
	d, err := matrix.NewDense(len(px), len(py))
	if err != nil {
		return nil, errors.Wrap(err, "pairdist: allocate matrix")
	}
	var i, j int
	for i = 0; i < len(px); i++ {
		for j = 0; j < len(py); j++ {
			if err = d.Set(i, j, metric(px[i], py[j])); err != nil {
				return nil, errors.Wrap(err, "pairdist: fill matrix")
			}
		}
	}

	return d, nil
}

// sameColumns checks that want and got contain exactly the same names,
// ignoring order.
func sameColumns(want, got []string) error {
	if len(want) != len(got) {
		return errors.Wrapf(ErrColumnMismatch, "%v vs %v", want, got)
	}
	seen := make(map[string]struct{}, len(got))
	for _, name := range got {
		seen[name] = struct{}{}
	}
	for _, name := range want {
		if _, ok := seen[name]; !ok {
			return errors.Wrapf(ErrColumnMismatch, "%v vs %v", want, got)
		}
	}

	return nil
}

// rowsOf materializes df into row-major points over the given columns.
func rowsOf(df dataframe.DataFrame, cols []string) [][]float64 {
	n := df.Nrow()
	points := make([][]float64, n)
	var i int
	for i = 0; i < n; i++ {
		points[i] = make([]float64, len(cols))
	}
	var colVals []float64
	var k int
	var name string
	for k, name = range cols {
		colVals = df.Col(name).Float()
		for i = 0; i < n; i++ {
			points[i][k] = colVals[i]
		}
	}

	return points
}

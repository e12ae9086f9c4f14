// Package pairdist computes pairwise distance matrices between the rows
// of two dataframes.
//
// 🚀 What is pairdist?
//
//	The metric toolbox for the matrix-variant aligner: each transformer
//	takes two frames sharing a column set and produces the full
//	rows(x) × rows(y) distance surface as a *matrix.Dense, cell (i,j)
//	holding the distance between row i of x and row j of y.
//
// ✨ Shipped metrics:
//   - Euclidean    – √Σ(pₖ−qₖ)²
//   - SqEuclidean  – Σ(pₖ−qₖ)²  (no square root; emphasizes large gaps)
//   - Cityblock    – Σ|pₖ−qₖ|
//   - Chebyshev    – max|pₖ−qₖ|
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/tsbench/align"
//	  "github.com/katalvlaran/tsbench/pairdist"
//	)
//
//	a, err := align.NewDist(pairdist.Euclidean{})
//
// Both frames must expose the same column names; rows are compared over
// the columns in the first frame's order.
//
// Performance:
//
//   - Time:   O(n·m·d) for n×m row pairs over d columns
//   - Memory: O(n·m)
//
// See examples in example_test.go.
package pairdist

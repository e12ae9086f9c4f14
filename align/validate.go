// Package align - validation utilities shared by both aligner variants.
//
// This file contains small, deterministic helpers that:
//  1. Validate Options combinations (vocabularies, window ↔ size).
//  2. Validate input sequences (shape, aligned column presence).
//  3. Validate precomputed cost matrices (shape, negativity, NaN).
//
// Design principles:
//   - Side-effect free; no logging, no panics on user input - only
//     sentinel errors from errors.go, wrapped with the offending value.
//   - O(n·m) worst-case for matrix scans; O(n) for everything else.
package align

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/go-gota/gota/dataframe"
	"github.com/katalvlaran/lvlath/matrix"
)

// validateOptions checks vocabulary membership and internal consistency
// of Options. It does not touch input data.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	// Stage 1: dist method vocabulary.
	if !inVocab(o.DistMethod, distMethods) {
		return errors.Wrapf(ErrBadDistMethod, "%q not in %v", o.DistMethod, distMethods)
	}

	// Stage 2: step pattern vocabulary.
	if _, ok := slopePenalties[o.StepPattern]; !ok {
		return errors.Wrapf(ErrBadStepPattern, "%q not in %v", o.StepPattern, stepPatterns)
	}

	// Stage 3: window type vocabulary and window size consistency.
	switch o.WindowType {
	case WindowNone:
		if o.WindowSize != windowUnset {
			return errors.Wrapf(ErrBadWindowSize,
				"window size %d is only meaningful with window type %q", o.WindowSize, WindowSakoeChiba)
		}
	case WindowSakoeChiba:
		if o.WindowSize < 0 {
			return errors.Wrapf(ErrBadWindowSize,
				"window type %q requires a window size ≥ 0", WindowSakoeChiba)
		}
	default:
		return errors.Wrapf(ErrBadWindowType, "%q not in %v", o.WindowType, windowTypes)
	}

	return nil
}

// inVocab reports membership of v in vocab.
//
// Complexity: O(len(vocab)).
func inVocab(v string, vocab []string) bool {
	for _, candidate := range vocab {
		if candidate == v {
			return true
		}
	}

	return false
}

// validateSequences checks that both input frames are materialized and
// non-empty.
//
// Complexity: O(1).
func validateSequences(x0, x1 dataframe.DataFrame) error {
	// Stage 1: frames must not carry construction errors.
	if x0.Err != nil {
		return errors.Wrap(x0.Err, "align: sequence 0")
	}
	if x1.Err != nil {
		return errors.Wrap(x1.Err, "align: sequence 1")
	}

	// Stage 2: both frames must have at least one row.
	if x0.Nrow() == 0 {
		return errors.Wrap(ErrEmptySequence, "sequence 0")
	}
	if x1.Nrow() == 0 {
		return errors.Wrap(ErrEmptySequence, "sequence 1")
	}

	return nil
}

// resolveColumn picks the column to align on: an explicit Options.Column,
// or the first column of x0 when unset. The chosen column must exist in
// both sequences; the error names the sequence it is missing from.
//
// Complexity: O(cols).
func resolveColumn(o Options, x0, x1 dataframe.DataFrame) (string, error) {
	col := o.Column
	if col == "" {
		names := x0.Names()
		if len(names) == 0 {
			return "", errors.Wrap(ErrEmptySequence, "sequence 0 has no columns")
		}
		col = names[0]
	}

	if !hasColumn(x0, col) {
		return "", errors.Wrapf(ErrColumnMissing, "sequence 0 does not have column %q", col)
	}
	if !hasColumn(x1, col) {
		return "", errors.Wrapf(ErrColumnMissing, "sequence 1 does not have column %q", col)
	}

	return col, nil
}

// hasColumn reports whether df exposes a column named col.
//
// Complexity: O(cols).
func hasColumn(df dataframe.DataFrame, col string) bool {
	for _, name := range df.Names() {
		if name == col {
			return true
		}
	}

	return false
}

// validateCostMatrix performs full cost-matrix validation:
//   - non-nil with positive dimensions,
//   - no NaN cells,
//   - no negative cells; +Inf is allowed and marks an impassable cell.
//
// Complexity: O(n·m).
func validateCostMatrix(dist *matrix.Dense) error {
	// Stage 1: shape checks.
	if dist == nil {
		return errors.Wrap(ErrBadCostMatrix, "matrix is nil")
	}
	n, m := dist.Rows(), dist.Cols()
	if n <= 0 || m <= 0 {
		return errors.Wrapf(ErrBadCostMatrix, "matrix is %dx%d", n, m)
	}

	// Stage 2: cell scan for NaN and negativity.
	var (
		i, j int     // loop indices
		c    float64 // cell under inspection
		err  error
	)
	for i = 0; i < n; i++ { // rows
		for j = 0; j < m; j++ { // cols
			c, err = dist.At(i, j) // read cell
			if err != nil {
				return errors.Wrap(ErrBadCostMatrix, err.Error())
			}
			if math.IsNaN(c) {
				return errors.Wrapf(ErrBadCostMatrix, "NaN cost at (%d,%d)", i, j)
			}
			if c < 0 {
				return errors.Wrapf(ErrBadCostMatrix, "negative cost %g at (%d,%d)", c, i, j)
			}
		}
	}

	return nil
}

package align

import "github.com/cockroachdb/errors"

// Sentinel errors returned by the align package.
var (
	// ErrNilTransformer indicates that NewDist was called without a
	// pairwise transformer; the matrix variant cannot work without one.
	ErrNilTransformer = errors.New("align: pairwise transformer is nil")

	// ErrNotFitted indicates that a post-fit query was called before a
	// successful Fit.
	ErrNotFitted = errors.New("align: not fitted; call Fit first")

	// ErrEmptySequence indicates that one of the input sequences has no rows.
	ErrEmptySequence = errors.New("align: sequence is empty")

	// ErrColumnMissing indicates that the alignment column does not exist
	// in one of the input sequences.
	ErrColumnMissing = errors.New("align: alignment column not found")

	// ErrBadDistMethod indicates a distance method outside the supported set.
	ErrBadDistMethod = errors.New("align: unsupported dist method")

	// ErrBadStepPattern indicates a step pattern outside the supported set.
	ErrBadStepPattern = errors.New("align: unsupported step pattern")

	// ErrBadWindowType indicates a window type outside the supported set.
	ErrBadWindowType = errors.New("align: unsupported window type")

	// ErrBadWindowSize indicates a window size inconsistent with the
	// configured window type.
	ErrBadWindowSize = errors.New("align: invalid window size")

	// ErrBadCostMatrix indicates that a pairwise transformer produced a
	// matrix the warping search cannot consume (nil, empty, negative or
	// NaN cells).
	ErrBadCostMatrix = errors.New("align: invalid cost matrix")
)

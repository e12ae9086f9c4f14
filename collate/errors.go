package collate

import "github.com/cockroachdb/errors"

// Sentinel errors returned by the collate package.
var (
	// ErrUntrustedURL indicates a result URL outside the trusted domain.
	ErrUntrustedURL = errors.New("collate: url outside trusted domain")

	// ErrEmptyValue indicates a required parameter with no value.
	ErrEmptyValue = errors.New("collate: parameter value is empty")

	// ErrUnknownValue indicates a parameter value outside its valid set.
	ErrUnknownValue = errors.New("collate: parameter value not in valid set")

	// ErrResamples indicates a resample count outside the supported range.
	ErrResamples = errors.New("collate: resamples out of range")

	// ErrHTTPStatus indicates a non-OK HTTP response from the archive.
	ErrHTTPStatus = errors.New("collate: unexpected http status")

	// ErrEnumRecord indicates an enumeration record that lacks the
	// requested key or holds a non-scalar value under it.
	ErrEnumRecord = errors.New("collate: malformed enumeration record")
)

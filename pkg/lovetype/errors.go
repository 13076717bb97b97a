package lovetype

import (
	"errors"

	"github.com/hejijunhao/lovetype/internal/engine/classifier"
	"github.com/hejijunhao/lovetype/internal/engine/scorer"
	"github.com/hejijunhao/lovetype/internal/engine/taxonomy"
	"github.com/hejijunhao/lovetype/internal/refdata"
)

var (
	// ErrUnknownType is returned when a type name has no attribute row.
	ErrUnknownType = scorer.ErrUnknownType
	// ErrMissingMapping is returned when no micro type is mapped for the
	// resolved macro category and quadrant.
	ErrMissingMapping = taxonomy.ErrMissingMapping
	// ErrMissingData is returned when a required reference file is absent.
	ErrMissingData = refdata.ErrMissing
	// ErrInvalidData is returned when a reference file cannot be decoded or
	// parsed.
	ErrInvalidData = refdata.ErrInvalid
	// ErrTooFewCentroids is returned when fewer than two centroids exist.
	ErrTooFewCentroids = classifier.ErrTooFewCentroids
)

// IsUnavailable reports whether err means the reference data is absent, so
// the request may succeed once the files are in place.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrMissingData)
}

// IsClientError reports whether err stems from the request or from the
// content of the reference data, as opposed to its absence.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnknownType) ||
		errors.Is(err, ErrMissingMapping) ||
		errors.Is(err, ErrInvalidData) ||
		errors.Is(err, ErrTooFewCentroids)
}

package stickerservice

import "errors"

// Domain errors for the sticker service.
// Handlers treat these as handled outcomes (publish a failure event, ack the
// message) rather than retrying.
var (
	// ErrSeriesNotFound indicates the requested Series does not exist.
	ErrSeriesNotFound = errors.New("series not found")

	// ErrGradeNotFound indicates the Series points at a missing Grade.
	ErrGradeNotFound = errors.New("grade not found")

	// ErrResultsNotPublished indicates the Series results are not public yet.
	ErrResultsNotPublished = errors.New("series results not published")

	// ErrApplicationNotFound indicates the Application is not part of the Grade.
	ErrApplicationNotFound = errors.New("application not found")
)

package stickerdomain

import "errors"

var (
	// ErrUnknownApplication is returned by predicates asked about an
	// Application outside the current Grade.
	ErrUnknownApplication = errors.New("application not in current grade")

	// ErrInconsistentSnapshot means the loaded rows do not describe the target Series.
	ErrInconsistentSnapshot = errors.New("inconsistent grade snapshot")

	// ErrDuplicateSticker is returned when two rules share a sticker.
	ErrDuplicateSticker = errors.New("sticker registered twice")
)

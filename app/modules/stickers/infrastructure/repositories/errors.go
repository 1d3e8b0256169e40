package stickerdb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the requested record does not exist in the database.
	// The service layer decides which domain failure it maps to.
	ErrNotFound = errors.New("record not found")
)

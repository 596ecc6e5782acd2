package service

import "errors"

// Common service errors
var (
	// ErrNoIDs is returned by bulk operations given an empty ID list.
	ErrNoIDs = errors.New("no booking ids given")
)

package repositories

import "errors"

// ErrNotFound is returned (wrapped) by every repository when the requested
// record does not exist, so callers can distinguish absence from storage
// failure with errors.Is.
var ErrNotFound = errors.New("record not found")

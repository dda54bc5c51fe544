package repositories

import "errors"

// ErrNotFound is returned when a record does not exist or is owned by
// another user. Callers must not be able to tell the two cases apart.
var ErrNotFound = errors.New("record not found")

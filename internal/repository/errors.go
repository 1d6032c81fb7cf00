package repository

import "errors"

// ErrNotFound is returned by point lookups that match no row.
// Callers distinguish it with errors.Is; it is never a storage failure.
var ErrNotFound = errors.New("not found")

package repository

import "errors"

// ErrNotFound is returned by lookups that match no document. Handlers map it
// to 404; every other repository error surfaces as a storage failure.
var ErrNotFound = errors.New("not found")

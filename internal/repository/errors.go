package repository

import "errors"

// ErrNotFound is returned when a row does not exist. For ownership-scoped
// flight lookups it also covers rows owned by another user: the two cases
// must stay indistinguishable to callers.
var ErrNotFound = errors.New("not found")

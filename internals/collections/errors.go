package collections

import "errors"

// ErrNotFound is returned by Update/Delete when no document has the given id.
// There is no upsert: writes against a missing id fail.
var ErrNotFound = errors.New("collections: document not found")

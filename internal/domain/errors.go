package domain

import "errors"

// ErrNotFound is returned by repo functions when the requested row does not
// exist. The service maps it to a NotFound failure.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned by repo functions when a write collides with an
// existing row, e.g. an event id that was already appended.
var ErrConflict = errors.New("conflict")

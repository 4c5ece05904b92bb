package repository

import "errors"

// ErrNotFound is returned when a row does not exist or is owned by a
// different user; callers cannot tell the two apart.
var ErrNotFound = errors.New("not found")

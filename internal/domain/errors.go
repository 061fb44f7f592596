package domain

import "errors"

// ErrNotFound marks lookups of rows that do not exist.
var ErrNotFound = errors.New("not found")

package domain

import "errors"

// ErrValidation is the marker wrapped by every domain validation error.
// Callers categorize with errors.Is(err, domain.ErrValidation) to tell a
// rejected input apart from a missing row or a concurrency conflict.
var ErrValidation = errors.New("validation failed")

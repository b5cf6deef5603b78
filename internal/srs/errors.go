package srs

import "errors"

// ErrInvalidRating is returned for rating values outside hard/medium/easy.
// Check with errors.Is.
var ErrInvalidRating = errors.New("srs: invalid rating")

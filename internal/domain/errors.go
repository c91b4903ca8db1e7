package domain

import "errors"

// ErrInvalidInput is wrapped by every validation failure of a simulation input.
var ErrInvalidInput = errors.New("invalid input")

package lead

import "errors"

var (
	ErrNotFound          = errors.New("lead not found")
	ErrInvalidPhone      = errors.New("invalid contact number")
	ErrInvalidStatus     = errors.New("unknown lead status")
	ErrInvalidTransition = errors.New("lead status transition not allowed")
)

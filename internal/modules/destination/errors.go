package destination

import "errors"

var (
	ErrNotFound      = errors.New("destination not found")
	ErrSlugTaken     = errors.New("destination slug already exists")
	ErrInvalidInput  = errors.New("invalid destination payload")
	ErrEmptySlugName = errors.New("destination name produces an empty slug")
)

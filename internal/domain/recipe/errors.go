package recipe

import "errors"

var (
	ErrNotFound    = errors.New("recipe not found")
	ErrUnknownType = errors.New("unknown recipe type")
)

package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrSchema        = errors.New("schema violation")
	ErrValueType     = errors.New("unexpected value type")
	ErrIndex         = errors.New("sample index out of range")
	ErrNotLoaded     = errors.New("no samples loaded")
	ErrInvalidConfig = errors.New("invalid configuration")
)

package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrAnalyzer      = errors.New("morphological analyzer unavailable")
	ErrStopwordFetch = errors.New("stopword fetch failed")
)

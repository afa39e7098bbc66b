package stats

import "errors"

var (
	ErrEmptySample = errors.New("sample is empty")
	ErrOutOfRange  = errors.New("sample value out of range")
	ErrBadAnalyzer = errors.New("analyzer range must be non-empty and contain at least one value per bin")
)

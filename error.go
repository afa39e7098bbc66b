package prngbench

import "errors"

var (
	ErrNoConfig    = errors.New("no config provided")
	ErrNoGenerator = errors.New("no generator provided")
	ErrBadVolume   = errors.New("sample volume must be greater than zero")
)

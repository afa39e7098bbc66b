package generator

import "errors"

var (
	ErrBadBounds   = errors.New("max bound must be greater than min bound")
	ErrUnknownKind = errors.New("unknown generator kind")
	ErrNoSource    = errors.New("no random source provided")
)

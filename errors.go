package arena

import "errors"

var (
	ErrInvalidSize      = errors.New("arena: invalid allocation size")
	ErrInvalidAlignment = errors.New("arena: invalid alignment")
	ErrTooLarge         = errors.New("arena: allocation larger than max chunk size")
	ErrCapacityExceeded = errors.New("arena: capacity limit exceeded")
	ErrNotSupported     = errors.New("arena: reserver not supported on this platform")
)

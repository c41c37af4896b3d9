package patterns

import "errors"

var (
	ErrInvalidLength = errors.New("patterns: length must not be negative")
	ErrInvalidWidth  = errors.New("patterns: unsupported word width")
	ErrUnknownKind   = errors.New("patterns: unknown pattern kind")
)

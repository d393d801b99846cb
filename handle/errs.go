package handle

import "errors"

var (
	ErrNull    = errors.New("null handle")
	ErrInvalid = errors.New("invalid handle")
	ErrStale   = errors.New("stale handle")
	ErrKind    = errors.New("handle kind mismatch")
)

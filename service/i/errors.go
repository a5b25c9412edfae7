package i

import "errors"

var (
	ErrMazeNotFound = errors.New("maze not found")
	ErrCacheMiss    = errors.New("cache miss")
)

package i

import (
	"context"

	dmn "github.com/beka-birhanu/amazeing/domain"
)

// MazeCache remembers generated mazes by configuration key.
type MazeCache interface {
	// Get returns the cached maze for key, or an error wrapping a cache miss.
	Get(ctx context.Context, key string) (*dmn.MazeRecord, error)
	Set(ctx context.Context, key string, maze *dmn.MazeRecord) error
	Delete(ctx context.Context, key string) error

	// Lock serializes generation of one key across processes. The returned
	// func releases the lock.
	Lock(ctx context.Context, key string) (func(), error)
}

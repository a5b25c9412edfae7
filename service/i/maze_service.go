package i

import (
	"context"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/google/uuid"
)

// MazeService generates, stores and serves mazes.
type MazeService interface {
	Generate(ctx context.Context, opts maze.Options) (*dmn.MazeRecord, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

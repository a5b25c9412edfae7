package i

import (
	"context"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze in the repository.
	Save(ctx context.Context, maze *dmn.MazeRecord) error

	// ByID retrieves a maze by its unique ID.
	// Returns an error if the maze is not found or in case of an unexpected error.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Delete removes a maze. Deleting a missing maze is an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

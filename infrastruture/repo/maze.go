package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrMazeNotFound is returned when no maze has the requested ID.
var ErrMazeNotFound = i.ErrMazeNotFound

const (
	writeTimeout = time.Second
	readTimeout  = 2 * time.Second
)

// MazeRepo handles the persistence of generated mazes.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze in the repository.
func (m *MazeRepo) Save(ctx context.Context, maze *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	filter := bson.M{"_id": maze.ID}
	update := bson.M{"$set": mazeFields(maze)}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByID retrieves a maze by its ID.
// Returns ErrMazeNotFound if the maze does not exist.
func (m *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	var maze dmn.MazeRecord
	if err := m.collection.FindOne(ctx, filter).Decode(&maze); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMazeNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &maze, nil
}

// Delete removes a maze by its ID.
func (m *MazeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	res, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrMazeNotFound
	}
	return nil
}

func mazeFields(maze *dmn.MazeRecord) bson.M {
	return bson.M{
		"key":        maze.Key,
		"width":      maze.Width,
		"height":     maze.Height,
		"entry":      maze.Entry,
		"exit":       maze.Exit,
		"seed":       maze.Seed,
		"perfect":    maze.Perfect,
		"rows":       maze.Rows,
		"directions": maze.Directions,
		"openWalls":  maze.OpenWalls,
		"file":       maze.File,
		"createdAt":  maze.CreatedAt,
		"updatedAt":  time.Now(),
	}
}

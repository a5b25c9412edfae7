// Package domain holds the persisted shape of a generated maze.
package domain

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/google/uuid"
)

// MazeRecord is a generated maze as stored and served by the API.
type MazeRecord struct {
	ID         uuid.UUID `bson:"_id" json:"id"`
	Key        string    `bson:"key" json:"-"`
	Width      int       `bson:"width" json:"width"`
	Height     int       `bson:"height" json:"height"`
	Entry      string    `bson:"entry" json:"entry"`
	Exit       string    `bson:"exit" json:"exit"`
	Seed       int64     `bson:"seed" json:"seed"`
	Perfect    bool      `bson:"perfect" json:"perfect"`
	Rows       []string  `bson:"rows" json:"rows"`
	Directions string    `bson:"directions" json:"directions"`
	OpenWalls  int       `bson:"openWalls" json:"open_walls"`
	File       string    `bson:"file" json:"-"`
	CreatedAt  time.Time `bson:"createdAt" json:"created_at"`
}

// NewMazeRecord snapshots a generated maze. file is its encoded maze file.
func NewMazeRecord(id uuid.UUID, key string, g *maze.Generator, file string) *MazeRecord {
	opts := g.Options()
	rows := g.Grid().Rows()
	hexRows := make([]string, len(rows))
	for r, row := range rows {
		b := make([]byte, 0, len(row))
		for _, cell := range row {
			b = append(b, cell.String()...)
		}
		hexRows[r] = string(b)
	}

	return &MazeRecord{
		ID:         id,
		Key:        key,
		Width:      opts.Width,
		Height:     opts.Height,
		Entry:      opts.Entry.String(),
		Exit:       opts.Exit.String(),
		Seed:       opts.Seed,
		Perfect:    opts.Perfect,
		Rows:       hexRows,
		Directions: maze.FormatDirections(g.Directions()),
		OpenWalls:  g.Grid().OpenWallCount(),
		File:       file,
		CreatedAt:  time.Now().UTC(),
	}
}

// OptionsKey is the cache key of the maze produced by opts. Generation is
// deterministic, so equal keys yield equal mazes.
func OptionsKey(opts maze.Options) string {
	return fmt.Sprintf("maze:%dx%d:%s:%s:seed_%d:perfect_%t",
		opts.Width, opts.Height, opts.Entry, opts.Exit, opts.Seed, opts.Perfect)
}

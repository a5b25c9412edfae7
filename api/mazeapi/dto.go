package mazeapi

import (
	"github.com/beka-birhanu/amazeing/maze"
)

// Position is a cell coordinate in a request body.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GenerateRequest asks for a maze. Omitted fields take the maze file defaults.
type GenerateRequest struct {
	Width   *int      `json:"width"`
	Height  *int      `json:"height"`
	Entry   *Position `json:"entry"`
	Exit    *Position `json:"exit"`
	Seed    *int64    `json:"seed"`
	Perfect *bool     `json:"perfect"`
}

// Options applies the request on top of the defaults.
func (r *GenerateRequest) Options() maze.Options {
	opts := maze.DefaultOptions()
	if r.Width != nil {
		opts.Width = *r.Width
	}
	if r.Height != nil {
		opts.Height = *r.Height
	}
	if r.Entry != nil {
		opts.Entry = maze.Pt(r.Entry.X, r.Entry.Y)
	}
	if r.Exit != nil {
		opts.Exit = maze.Pt(r.Exit.X, r.Exit.Y)
	}
	if r.Seed != nil {
		opts.Seed = *r.Seed
	}
	if r.Perfect != nil {
		opts.Perfect = *r.Perfect
	}
	return opts
}

// FieldErrorResponse reports one rejected request field.
type FieldErrorResponse struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

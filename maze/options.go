package maze

import (
	"errors"
	"fmt"
)

const (
	MaxDimension = 42   // largest accepted width or height
	MaxSeed      = 1000 // largest accepted seed

	// FallbackSeed seeds generation when the configured seed is not positive.
	FallbackSeed int64 = 42

	// DefaultOutputFile is the maze file written when none is configured.
	DefaultOutputFile = "maze.txt"
)

// Options is the validated input of a Generator.
type Options struct {
	Width   int
	Height  int
	Entry   CellPosition
	Exit    CellPosition
	Seed    int64
	Perfect bool
}

// DefaultOptions mirrors the defaults of the maze configuration file.
func DefaultOptions() Options {
	return Options{
		Width:   20,
		Height:  15,
		Entry:   Pt(0, 0),
		Exit:    Pt(19, 14),
		Seed:    FallbackSeed,
		Perfect: true,
	}
}

// FieldError identifies the configuration field that failed validation.
type FieldError struct {
	Field  string // configuration key, e.g. "ENTRY"
	Value  any    // rejected value
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s (%v): %s", e.Field, e.Value, e.Reason)
}

// Validate checks every field and returns all failures joined together.
func (o Options) Validate() error {
	var errs []error
	fail := func(field string, value any, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)})
	}

	if o.Width < 1 || o.Width > MaxDimension {
		fail("WIDTH", o.Width, "must be between 1 and %d", MaxDimension)
	}
	if o.Height < 1 || o.Height > MaxDimension {
		fail("HEIGHT", o.Height, "must be between 1 and %d", MaxDimension)
	}
	if o.Seed < 0 || o.Seed > MaxSeed {
		fail("SEED", o.Seed, "must be between 0 and %d", MaxSeed)
	}

	bounds := &Grid{Width: o.Width, Height: o.Height}
	for _, ep := range []struct {
		field string
		pos   CellPosition
	}{{"ENTRY", o.Entry}, {"EXIT", o.Exit}} {
		switch {
		case !bounds.InBounds(ep.pos):
			fail(ep.field, ep.pos, "exceeds maze size %d,%d", o.Width, o.Height)
		case InLandmark(o.Width, o.Height, ep.pos):
			fail(ep.field, ep.pos, "lies inside the 42 landmark")
		}
	}
	if o.Entry == o.Exit {
		fail("EXIT", o.Exit, "overlaps ENTRY %s", o.Entry)
	}

	return errors.Join(errs...)
}

func (o Options) seed() int64 {
	if o.Seed > 0 {
		return o.Seed
	}
	return FallbackSeed
}

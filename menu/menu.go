// Package menu runs the interactive terminal loop around a maze generator.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/beka-birhanu/amazeing/logger"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/render"
)

const (
	choiceText = `=== A-Maze-ing ===
1. Re-generate a new maze
2. Show/Hide path from entry to exit
3. Rotate maze random colors
4. PERFECT flag switch
5. Quit`
	prompt       = "Choice? (1-5):"
	invalidInput = "Please select from 1-5"
	clearScreen  = "\x1b[H\x1b[2J"
)

// Menu actions.
const (
	ChoiceRegenerate = iota + 1
	ChoiceTogglePath
	ChoiceRotateColor
	ChoiceTogglePerfect
	ChoiceQuit
)

// SaveFunc persists a freshly generated maze, e.g. by rewriting the output
// file.
type SaveFunc func(*maze.Generator) error

// Config holds the collaborators of a Menu.
type Config struct {
	Generator *maze.Generator
	View      *render.ASCII
	In        io.Reader
	Out       io.Writer
	Save      SaveFunc
	Rand      *rand.Rand // source of new seeds and colours
	Logger    *logger.Logger
}

// Menu reads numbered choices and redraws the maze after each one.
type Menu struct {
	gen    *maze.Generator
	view   *render.ASCII
	in     *bufio.Scanner
	out    io.Writer
	save   SaveFunc
	rng    *rand.Rand
	logger *logger.Logger
}

// New creates a Menu. The generator must already hold a generated maze.
func New(c Config) (*Menu, error) {
	if c.Generator == nil || c.View == nil || c.In == nil || c.Out == nil || c.Rand == nil {
		return nil, fmt.Errorf("menu: generator, view, input, output and rand are required")
	}
	if c.Save == nil {
		c.Save = func(*maze.Generator) error { return nil }
	}
	if c.Logger == nil {
		c.Logger = logger.Discard()
	}
	return &Menu{
		gen:    c.Generator,
		view:   c.View,
		in:     bufio.NewScanner(c.In),
		out:    c.Out,
		save:   c.Save,
		rng:    c.Rand,
		logger: c.Logger,
	}, nil
}

// Run draws the maze and processes choices until Quit or end of input.
func (m *Menu) Run() error {
	if err := m.draw(false); err != nil {
		return err
	}
	for {
		fmt.Fprint(m.out, prompt)
		if !m.in.Scan() {
			fmt.Fprintln(m.out)
			return m.in.Err()
		}
		choice, err := strconv.Atoi(strings.TrimSpace(m.in.Text()))
		if err != nil {
			fmt.Fprintln(m.out, invalidInput)
			continue
		}

		switch choice {
		case ChoiceRegenerate:
			seed := int64(m.rng.Intn(maze.MaxSeed) + 1)
			if err := m.gen.SetSeed(seed); err != nil {
				return err
			}
			if err := m.regenerate(); err != nil {
				return err
			}
		case ChoiceTogglePath:
			m.view.TogglePath()
			if err := m.draw(true); err != nil {
				return err
			}
		case ChoiceRotateColor:
			m.view.SetWallColor(render.MinWallColor + m.rng.Intn(render.MaxWallColor-render.MinWallColor+1))
			if err := m.draw(true); err != nil {
				return err
			}
		case ChoiceTogglePerfect:
			m.gen.SetPerfect(!m.gen.Options().Perfect)
			if err := m.regenerate(); err != nil {
				return err
			}
		case ChoiceQuit:
			m.clear()
			return nil
		default:
			fmt.Fprintln(m.out, invalidInput)
		}
	}
}

func (m *Menu) regenerate() error {
	if err := m.gen.Generate(); err != nil {
		return fmt.Errorf("regenerating maze: %w", err)
	}
	opts := m.gen.Options()
	m.logger.Debug("maze regenerated", "seed", opts.Seed, "perfect", opts.Perfect)
	if err := m.save(m.gen); err != nil {
		// The maze is still usable on screen.
		m.logger.Error("saving maze", "error", err)
	}
	return m.draw(true)
}

func (m *Menu) draw(clear bool) error {
	if clear {
		m.clear()
	}
	if err := m.view.Render(m.out, m.gen); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "%s\n\n%s\n", m.gen.Report(), choiceText)
	return nil
}

func (m *Menu) clear() {
	if m.view.Color {
		fmt.Fprint(m.out, clearScreen)
	}
}

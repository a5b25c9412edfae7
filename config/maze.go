package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/joho/godotenv"
)

// Keys accepted in a maze configuration file.
const (
	KeyWidth      = "WIDTH"
	KeyHeight     = "HEIGHT"
	KeyEntry      = "ENTRY"
	KeyExit       = "EXIT"
	KeyOutputFile = "OUTPUT_FILE"
	KeyPerfect    = "PERFECT"
	KeySeed       = "SEED"

	outputExt = ".txt"
)

var knownKeys = []string{KeyWidth, KeyHeight, KeyEntry, KeyExit, KeyOutputFile, KeyPerfect, KeySeed}

// MazeConfig is a validated maze configuration file.
type MazeConfig struct {
	Options    maze.Options
	OutputFile string
	Explicit   []string // keys present in the file, in file order of knownKeys
}

// LoadMaze reads and validates the maze configuration at path.
func LoadMaze(path string) (*MazeConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening maze config: %w", err)
	}
	defer f.Close()
	return ParseMaze(f)
}

// ParseMaze reads KEY=VALUE lines from r. Blank lines and # comments are
// ignored, missing keys take their defaults and every invalid field is
// reported.
func ParseMaze(r io.Reader) (*MazeConfig, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing maze config: %w", err)
	}

	cfg := &MazeConfig{
		Options:    maze.DefaultOptions(),
		OutputFile: maze.DefaultOutputFile,
	}
	var errs []error
	fail := func(key, value, format string, args ...any) {
		errs = append(errs, &maze.FieldError{Field: key, Value: value, Reason: fmt.Sprintf(format, args...)})
	}

	var unknown []string
	for key := range values {
		if !isKnownKey(key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		fail(key, values[key], "unknown key, expected one of %s", strings.Join(knownKeys, ", "))
	}

	for _, key := range knownKeys {
		raw, ok := values[key]
		if !ok {
			continue
		}
		cfg.Explicit = append(cfg.Explicit, key)
		raw = strings.TrimSpace(raw)

		switch key {
		case KeyWidth, KeyHeight:
			n, err := strconv.Atoi(raw)
			if err != nil {
				fail(key, raw, "must be an integer")
				continue
			}
			if n < 0 || n > maze.MaxDimension {
				fail(key, raw, "must be between 0 and %d", maze.MaxDimension)
				continue
			}
			if key == KeyWidth {
				cfg.Options.Width = n
			} else {
				cfg.Options.Height = n
			}
		case KeyEntry, KeyExit:
			p, err := parsePosition(raw)
			if err != nil {
				fail(key, raw, "%v", err)
				continue
			}
			if key == KeyEntry {
				cfg.Options.Entry = p
			} else {
				cfg.Options.Exit = p
			}
		case KeySeed:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				fail(key, raw, "must be an integer")
				continue
			}
			cfg.Options.Seed = n
		case KeyPerfect:
			b, err := parseBool(raw)
			if err != nil {
				fail(key, raw, "%v", err)
				continue
			}
			cfg.Options.Perfect = b
		case KeyOutputFile:
			path, err := normalizeOutputFile(raw)
			if err != nil {
				fail(key, raw, "%v", err)
				continue
			}
			cfg.OutputFile = path
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := cfg.Options.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}

// parsePosition accepts "x,y", optionally wrapped in parentheses.
func parsePosition(raw string) (maze.CellPosition, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maze.CellPosition{}, errors.New("must be a coordinate pair x,y")
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return maze.CellPosition{}, errors.New("coordinates must be integers")
	}
	if x < 0 || y < 0 {
		return maze.CellPosition{}, errors.New("coordinates must not be negative")
	}
	return maze.Pt(x, y), nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, errors.New("must be True or False")
}

// normalizeOutputFile appends the .txt extension when missing and refuses
// paths naming an existing directory.
func normalizeOutputFile(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("must not be empty")
	}
	path := raw
	if ext := filepath.Ext(path); ext != outputExt {
		path = strings.TrimSuffix(path, ext) + outputExt
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return "", fmt.Errorf("a directory named %s already exists", filepath.Base(path))
	}
	return path, nil
}

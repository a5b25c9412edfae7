package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(err error) map[string]*maze.FieldError {
	out := map[string]*maze.FieldError{}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			var fe *maze.FieldError
			if errors.As(e, &fe) {
				out[fe.Field] = fe
			}
		}
	}
	return out
}

func TestParseMaze(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		input := `# maze settings
WIDTH=30
HEIGHT=25

ENTRY=(1, 2)
EXIT=28,24
OUTPUT_FILE=out/maze
PERFECT=False
SEED=7
`
		cfg, err := ParseMaze(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, 30, cfg.Options.Width)
		assert.Equal(t, 25, cfg.Options.Height)
		assert.Equal(t, maze.Pt(1, 2), cfg.Options.Entry)
		assert.Equal(t, maze.Pt(28, 24), cfg.Options.Exit)
		assert.Equal(t, int64(7), cfg.Options.Seed)
		assert.False(t, cfg.Options.Perfect)
		assert.Equal(t, filepath.Join("out", "maze.txt"), cfg.OutputFile)
		assert.Len(t, cfg.Explicit, 7)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := ParseMaze(strings.NewReader("SEED=3\n"))
		require.NoError(t, err)

		want := maze.DefaultOptions()
		want.Seed = 3
		assert.Equal(t, want, cfg.Options)
		assert.Equal(t, "maze.txt", cfg.OutputFile)
		assert.Equal(t, []string{KeySeed}, cfg.Explicit)
	})

	t.Run("reports every bad field", func(t *testing.T) {
		input := "WIDTH=abc\nENTRY=1\nPERFECT=maybe\nCOLOR=red\n"
		_, err := ParseMaze(strings.NewReader(input))
		require.Error(t, err)

		fields := fieldErrors(err)
		assert.Contains(t, fields, KeyWidth)
		assert.Contains(t, fields, KeyEntry)
		assert.Contains(t, fields, KeyPerfect)
		assert.Contains(t, fields, "COLOR")
	})

	t.Run("unknown keys are reported in sorted order", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			_, err := ParseMaze(strings.NewReader("ZETA=1\nALPHA=2\nMID=3\n"))
			var joined interface{ Unwrap() []error }
			require.True(t, errors.As(err, &joined))

			var got []string
			for _, e := range joined.Unwrap() {
				var fe *maze.FieldError
				require.True(t, errors.As(e, &fe))
				got = append(got, fe.Field)
			}
			assert.Equal(t, []string{"ALPHA", "MID", "ZETA"}, got)
		}
	})

	t.Run("range errors", func(t *testing.T) {
		_, err := ParseMaze(strings.NewReader("WIDTH=43\n"))
		assert.Contains(t, fieldErrors(err), KeyWidth)

		_, err = ParseMaze(strings.NewReader("ENTRY=-1,0\n"))
		assert.Contains(t, fieldErrors(err), KeyEntry)
	})

	t.Run("semantic errors come from the maze options", func(t *testing.T) {
		_, err := ParseMaze(strings.NewReader("ENTRY=19,14\nEXIT=19,14\nSEED=2000\n"))
		require.Error(t, err)
		fields := fieldErrors(err)
		assert.Contains(t, fields, KeyExit)
		assert.Contains(t, fields, KeySeed)
	})

	t.Run("entry inside the landmark", func(t *testing.T) {
		origin := maze.LandmarkOrigin(20, 15)
		_, err := ParseMaze(strings.NewReader("ENTRY=" + origin.String() + "\n"))
		require.Error(t, err)
		assert.Contains(t, fieldErrors(err)[KeyEntry].Reason, "landmark")
	})
}

func TestLoadMaze(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.txt")
	require.NoError(t, os.WriteFile(path, []byte("WIDTH=9\nHEIGHT=7\nEXIT=8,6\n"), 0o644))

	cfg, err := LoadMaze(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Options.Width)
	assert.Equal(t, maze.Pt(8, 6), cfg.Options.Exit)

	_, err = LoadMaze(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	t.Run("output file naming a directory", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(dir, "taken.txt"), 0o755))
		_, err := ParseMaze(strings.NewReader("OUTPUT_FILE=" + filepath.Join(dir, "taken") + "\n"))
		assert.Contains(t, fieldErrors(err), KeyOutputFile)
	})
}

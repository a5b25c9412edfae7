package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	expanded *maze.ExpandedGrid
	path     []maze.CellPosition
}

func (f *fakeSource) Expanded() *maze.ExpandedGrid { return f.expanded }
func (f *fakeSource) Path() []maze.CellPosition     { return f.path }

func corridor(t *testing.T) *fakeSource {
	t.Helper()
	g := maze.NewGrid(2, 1)
	require.NoError(t, g.OpenWall(maze.Pt(0, 0), maze.East))
	e := maze.Expand(g)
	path, err := maze.ShortestPath(e, maze.Pt(0, 0), maze.Pt(1, 0))
	require.NoError(t, err)
	return &fakeSource{expanded: e, path: path}
}

func TestASCII(t *testing.T) {
	src := corridor(t)
	a := &ASCII{WallColor: DefaultWallColor}

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, a.Render(&buf, src))
		assert.Equal(t, "┏━━━━━━━┓\n┃       ┃\n┗━━━━━━━┛\n", buf.String())
	})

	t.Run("path overlay", func(t *testing.T) {
		assert.True(t, a.TogglePath())
		defer a.TogglePath()

		var buf bytes.Buffer
		require.NoError(t, a.Render(&buf, src))
		assert.Equal(t, "┃ . . . ┃", strings.Split(buf.String(), "\n")[1])
	})

	t.Run("colour", func(t *testing.T) {
		colored := &ASCII{WallColor: 31, Color: true}
		var buf bytes.Buffer
		require.NoError(t, colored.Render(&buf, src))
		assert.Contains(t, buf.String(), "\x1b[31m┏\x1b[0m")
	})

	t.Run("ungenerated maze", func(t *testing.T) {
		assert.Error(t, a.Render(&bytes.Buffer{}, &fakeSource{}))
	})
}

func TestASCIIGenerated(t *testing.T) {
	g, err := maze.New(maze.Options{Width: 10, Height: 8, Entry: maze.Pt(0, 0), Exit: maze.Pt(9, 7), Seed: 4, Perfect: true})
	require.NoError(t, err)
	require.NoError(t, g.Generate())

	var buf bytes.Buffer
	require.NoError(t, (&ASCII{ShowPath: true}).Render(&buf, g))
	out := buf.String()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 17)
	assert.Contains(t, out, " S ")
	assert.Contains(t, out, " G ")
	assert.Contains(t, out, "###")
}

func TestSetWallColor(t *testing.T) {
	a := NewASCII(&bytes.Buffer{})
	assert.False(t, a.Color)

	a.SetWallColor(34)
	assert.Equal(t, 34, a.WallColor)
	a.SetWallColor(99)
	assert.Equal(t, MaxWallColor, a.WallColor)
	a.SetWallColor(0)
	assert.Equal(t, MinWallColor, a.WallColor)
}

func TestPNG(t *testing.T) {
	src := corridor(t)
	r := &PNG{TilePixels: 4, ShowPath: true}

	pic, err := r.Image(src)
	require.NoError(t, err)
	assert.Equal(t, 20, pic.Bounds().Dx())
	assert.Equal(t, 12, pic.Bounds().Dy())
	assert.Equal(t, wallColor, pic.RGBAAt(0, 0))

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf, src))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, pic.Bounds().Size(), decoded.Bounds().Size())

	t.Run("entry and exit markers", func(t *testing.T) {
		for _, p := range []maze.CellPosition{src.path[0], src.path[len(src.path)-1]} {
			origin := tileOrigin(p, 4)
			assert.NotEqual(t, pathColor, pic.RGBAAt(origin.X+2, origin.Y), "marker over %s", p)
		}
	})

	t.Run("border", func(t *testing.T) {
		framed := &PNG{TilePixels: 4, BorderWidth: 2}
		bordered, err := framed.Image(src)
		require.NoError(t, err)
		assert.Greater(t, bordered.Bounds().Dx(), 20)
		assert.Greater(t, bordered.Bounds().Dy(), 12)
		assert.Equal(t, image.Point{}, bordered.Bounds().Min)
		assert.Equal(t, wallColor, bordered.RGBAAt(0, 0))
	})

	_, err = r.Image(&fakeSource{})
	assert.Error(t, err)
}

func TestArrowImage(t *testing.T) {
	a := &arrowImage{fill: entryColor, side: 8}
	assert.Equal(t, entryColor, a.At(0, 0))
	assert.Equal(t, entryColor, a.At(4, 6))
	assert.Equal(t, color.Transparent, a.At(0, 7))
	assert.Equal(t, color.Transparent, a.At(8, 0))
}

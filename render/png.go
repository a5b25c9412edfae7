package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/yalue/image_utils"
)

// DefaultTilePixels is the side of one expanded tile in a PNG export.
const DefaultTilePixels = 8

var (
	wallColor     = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	passageColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pathColor     = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	landmarkColor = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	entryColor    = color.RGBA{R: 40, G: 180, B: 70, A: 255}
	exitColor     = color.RGBA{R: 100, G: 120, B: 255, A: 255}
)

// arrowPixels is the native side of a marker before it is scaled to a tile.
const arrowPixels = 16

// PNG exports a maze as an image, one square block per expanded tile, with
// arrows marking the entry and exit.
type PNG struct {
	TilePixels  int
	ShowPath    bool
	BorderWidth int // frame drawn in the wall colour, 0 for none
}

// tileImage is an image.Image view of an expanded grid.
type tileImage struct {
	grid   *maze.ExpandedGrid
	path   map[maze.CellPosition]bool
	pixels int
}

func (t *tileImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (t *tileImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.grid.Width*t.pixels, t.grid.Height*t.pixels)
}

func (t *tileImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(t.Bounds()) {
		return color.Transparent
	}
	p := maze.CellPosition{Row: y / t.pixels, Col: x / t.pixels}
	switch t.grid.At(p) {
	case maze.TileBlocked:
		return wallColor
	case maze.TileLandmark:
		return landmarkColor
	case maze.TileEntry:
		return entryColor
	case maze.TileExit:
		return exitColor
	}
	if t.path[p] {
		return pathColor
	}
	return passageColor
}

// arrowImage is a downward triangle on a transparent square.
type arrowImage struct {
	fill color.Color
	side int
}

func (a *arrowImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (a *arrowImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.side, a.side)
}

func (a *arrowImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(a.Bounds()) {
		return color.Transparent
	}
	// Row y is filled (side-y)/2 columns either side of the center.
	half := (a.side - y) / 2
	mid := a.side / 2
	if x >= mid-half && x < mid+half {
		return a.fill
	}
	return color.Transparent
}

// Image rasterizes src with its entry and exit arrows.
func (r *PNG) Image(src Source) (*image.RGBA, error) {
	e := src.Expanded()
	if e == nil {
		return nil, fmt.Errorf("maze has not been generated")
	}
	pixels := r.TilePixels
	if pixels <= 0 {
		pixels = DefaultTilePixels
	}
	tiles := &tileImage{grid: e, path: map[maze.CellPosition]bool{}, pixels: pixels}
	if r.ShowPath {
		for _, p := range src.Path() {
			tiles.path[p] = true
		}
	}

	pic := image.NewRGBA(tiles.Bounds())
	draw.Draw(pic, pic.Bounds(), tiles, image.Point{}, draw.Src)

	if path := src.Path(); len(path) > 0 {
		drawMarker(pic, entryColor, path[0], pixels)
		drawMarker(pic, exitColor, path[len(path)-1], pixels)
	}

	if r.BorderWidth <= 0 {
		return pic, nil
	}
	return toRGBA(image_utils.AddImageBorder(pic, wallColor, r.BorderWidth)), nil
}

// drawMarker scales an arrow to one tile and lays it over the tile at p.
func drawMarker(dst *image.RGBA, fill color.Color, p maze.CellPosition, pixels int) {
	arrow := image_utils.ResizeImage(&arrowImage{fill: fill, side: arrowPixels}, pixels, pixels)
	origin := tileOrigin(p, pixels)
	rect := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(pixels, pixels))}
	draw.Draw(dst, rect, arrow, arrow.Bounds().Min, draw.Over)
}

// toRGBA copies pic into an RGBA image anchored at the origin.
func toRGBA(pic image.Image) *image.RGBA {
	b := pic.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), pic, b.Min, draw.Src)
	return out
}

// Encode writes the PNG encoding of src to w.
func (r *PNG) Encode(w io.Writer, src Source) error {
	pic, err := r.Image(src)
	if err != nil {
		return err
	}
	return png.Encode(w, pic)
}

func tileOrigin(p maze.CellPosition, pixels int) image.Point {
	return image.Pt(p.Col*pixels, p.Row*pixels)
}

package sketch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazegrid/core"
)

// RasterOptions bundles the pixel renderer's configuration.
type RasterOptions struct {
	cellSize   int
	wall       color.Color
	background color.Color
}

// DefaultRasterOptions returns the defaults: 10 pixels per cell, black
// walls on a white background.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		cellSize:   10,
		wall:       color.Black,
		background: color.White,
	}
}

// RasterOption overrides one default.
type RasterOption func(*RasterOptions)

// WithCellSize sets the pixel pitch of the cell lattice; values below 3
// are clamped to 3 so every cell keeps an interior.
func WithCellSize(n int) RasterOption {
	return func(o *RasterOptions) {
		if n < 3 {
			n = 3
		}
		o.cellSize = n
	}
}

// WithWallColor sets the color of wall pixels.
func WithWallColor(c color.Color) RasterOption {
	return func(o *RasterOptions) { o.wall = c }
}

// WithBackground sets the color of passage and interior pixels; cells
// carrying a face color (Cell.SetColor) keep their own.
func WithBackground(c color.Color) RasterOption {
	return func(o *RasterOptions) { o.background = c }
}

// Raster is a lazy pixel view of a carved maze. It implements
// image.Image, computing each pixel on demand from the maze's links, so
// it can be composed or resized by image_utils without an intermediate
// buffer. Only mutual links open a wall; one-way passages stay drawn
// shut.
type Raster struct {
	grid *core.Grid
	opts RasterOptions
}

// NewRaster wraps the maze in an image.Image.
func NewRaster(m *core.Maze, opts ...RasterOption) (*Raster, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultRasterOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Raster{grid: m.Grid(), opts: o}, nil
}

// ColorModel implements image.Image.
func (r *Raster) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image. The picture is one lattice line wider
// and taller than cols×rows cells, so the outer boundary is drawn.
func (r *Raster) Bounds() image.Rectangle {
	cs := r.opts.cellSize
	return image.Rect(0, 0, r.grid.Cols()*cs+1, r.grid.Rows()*cs+1)
}

// At implements image.Image. Image y grows southward while grid rows
// grow northward, so row 0 is drawn at the bottom.
func (r *Raster) At(x, y int) color.Color {
	cs := r.opts.cellSize
	onV, onH := x%cs == 0, y%cs == 0

	switch {
	case onV && onH:
		return r.opts.wall
	case onH:
		if r.hGap(x/cs, y/cs) {
			return r.opts.background
		}
		return r.opts.wall
	case onV:
		if r.vGap(x/cs, y/cs) {
			return r.opts.background
		}
		return r.opts.wall
	}

	cell := r.grid.Cell(core.Index{Row: r.grid.Rows() - 1 - y/cs, Col: x / cs})
	if cell != nil {
		if face := cell.Color(); face != nil {
			return face
		}
	}
	return r.opts.background
}

// hGap reports whether the horizontal lattice line k is open above
// column j. Line k is the north wall of grid row rows-1-k; the bottom
// line is the south wall of row 0. On wrapped surfaces the two boundary
// lines show the same seam passage from both sides.
func (r *Raster) hGap(j, k int) bool {
	rows := r.grid.Rows()
	var c, nbr *core.Cell
	var ok bool
	if k < rows {
		c = r.grid.Cell(core.Index{Row: rows - 1 - k, Col: j})
		nbr, ok = c.Neighbor(core.North)
	} else {
		c = r.grid.Cell(core.Index{Row: 0, Col: j})
		nbr, ok = c.Neighbor(core.South)
	}
	return ok && c.Linked(nbr) && nbr.Linked(c)
}

// vGap reports whether the vertical lattice line j is open beside the
// display row k. Line j is the west wall of column j; the rightmost
// line is the east wall of the last column.
func (r *Raster) vGap(j, k int) bool {
	row := r.grid.Rows() - 1 - k
	var c, nbr *core.Cell
	var ok bool
	if j < r.grid.Cols() {
		c = r.grid.Cell(core.Index{Row: row, Col: j})
		nbr, ok = c.Neighbor(core.West)
	} else {
		c = r.grid.Cell(core.Index{Row: row, Col: j - 1})
		nbr, ok = c.Neighbor(core.East)
	}
	return ok && c.Linked(nbr) && nbr.Linked(c)
}

// Render composes the maze's Raster into a drawable RGBA image.
func Render(m *core.Maze, opts ...RasterOption) (*image.RGBA, error) {
	r, err := NewRaster(m, opts...)
	if err != nil {
		return nil, err
	}
	comp := image_utils.NewCompositeImage()
	if err := comp.AddImage(r, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("sketch: composing raster: %w", err)
	}
	return image_utils.ToRGBA(comp), nil
}

// SavePNG renders the maze and writes it to path as a PNG.
func SavePNG(m *core.Maze, path string, opts ...RasterOption) error {
	img, err := Render(m, opts...)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sketch: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("sketch: encoding %s: %w", path, err)
	}
	return nil
}

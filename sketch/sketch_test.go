package sketch_test

import (
	"image"
	stdcolor "image/color"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/core"
	"github.com/katalvlaran/mazegrid/sketch"
	"github.com/katalvlaran/mazegrid/wilson"
)

func newMaze(t *testing.T, build func(int, int, ...core.GridOption) (*core.Grid, error), rows, cols int) *core.Maze {
	t.Helper()
	g, err := build(rows, cols)
	require.NoError(t, err)
	m, err := core.NewMaze(g)
	require.NoError(t, err)
	return m
}

func TestTextNilMaze(t *testing.T) {
	assert.Equal(t, "", sketch.Text(nil))
}

func TestTextUncarvedPair(t *testing.T) {
	m := newMaze(t, core.NewGrid, 1, 2)
	want := strings.Join([]string{
		"+---+---+",
		"|   |   |",
		"+---+---+",
	}, "\n")
	assert.Equal(t, want, sketch.Text(m))
}

func TestTextMutualLinkOpensTheWall(t *testing.T) {
	m := newMaze(t, core.NewGrid, 1, 2)
	g := m.Grid()
	g.Cell(core.Index{Row: 0, Col: 0}).Link(g.Cell(core.Index{Row: 0, Col: 1}))
	want := strings.Join([]string{
		"+---+---+",
		"|       |",
		"+---+---+",
	}, "\n")
	assert.Equal(t, want, sketch.Text(m))
}

func TestTextOneWayPassageGetsAnArrow(t *testing.T) {
	m := newMaze(t, core.NewGrid, 1, 2)
	g := m.Grid()
	g.Cell(core.Index{Row: 0, Col: 0}).LinkTo(g.Cell(core.Index{Row: 0, Col: 1}), 1)
	assert.Equal(t, "|   >   |", strings.Split(sketch.Text(m), "\n")[1])
}

func TestTextVerticalOneWayArrowPointsNorth(t *testing.T) {
	m := newMaze(t, core.NewGrid, 2, 1)
	g := m.Grid()
	g.Cell(core.Index{Row: 0, Col: 0}).LinkTo(g.Cell(core.Index{Row: 1, Col: 0}), 1)
	want := strings.Join([]string{
		"+---+",
		"|   |",
		"+ ^ +",
		"|   |",
		"+---+",
	}, "\n")
	assert.Equal(t, want, sketch.Text(m))
}

func TestTextCellGlyph(t *testing.T) {
	m := newMaze(t, core.NewGrid, 1, 1)
	m.Grid().Cell(core.Index{Row: 0, Col: 0}).SetText("r")
	want := strings.Join([]string{
		"+---+",
		"| r |",
		"+---+",
	}, "\n")
	assert.Equal(t, want, sketch.Text(m))
}

func TestTextCylinderSeamMarkers(t *testing.T) {
	m := newMaze(t, core.NewCylinderGrid, 1, 2)
	lines := strings.Split(sketch.Text(m), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "A +---+---+ A", lines[0])
	assert.Equal(t, "  |   |   |", lines[1])
	assert.Equal(t, "B +---+---+ B", lines[2])
}

func TestTextTorusRails(t *testing.T) {
	m := newMaze(t, core.NewTorusGrid, 2, 2)
	lines := strings.Split(sketch.Text(m), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "    C   D", lines[0])
	assert.Equal(t, lines[0], lines[len(lines)-1])
	assert.True(t, strings.HasPrefix(lines[1], "A "))
	assert.True(t, strings.HasPrefix(lines[len(lines)-2], "B "))
}

func TestTextMoebiusMirroredRail(t *testing.T) {
	m := newMaze(t, core.NewMoebiusGrid, 2, 3)
	lines := strings.Split(sketch.Text(m), "\n")
	require.Len(t, lines, 5)

	// The letter rail counts boundaries up from the south on the left
	// and mirrored on the right.
	assert.True(t, strings.HasPrefix(lines[0], "C "))
	assert.True(t, strings.HasSuffix(lines[0], " A"))
	assert.True(t, strings.HasPrefix(lines[2], "B "))
	assert.True(t, strings.HasSuffix(lines[2], " B"))
	assert.True(t, strings.HasPrefix(lines[4], "A "))
	assert.True(t, strings.HasSuffix(lines[4], " C"))
}

func TestTextSeamPassageShowsOnBothSides(t *testing.T) {
	m := newMaze(t, core.NewCylinderGrid, 1, 3)
	g := m.Grid()
	// Carve across the vertical seam.
	g.Cell(core.Index{Row: 0, Col: 0}).Link(g.Cell(core.Index{Row: 0, Col: 2}))
	face := strings.Split(sketch.Text(m), "\n")[1]
	assert.Equal(t, "      |   |    ", face)
}

func TestColorTextNilPaletteMatchesText(t *testing.T) {
	m := newMaze(t, core.NewGrid, 2, 2)
	g := m.Grid()
	require.NoError(t, wilson.On(m, wilson.WithRand(rand.New(rand.NewSource(7)))))
	g.Cell(core.Index{Row: 0, Col: 0}).SetText("S")

	assert.Equal(t, sketch.Text(m), sketch.ColorText(m, nil))
}

func TestColorTextStylesOnlyTheGlyphs(t *testing.T) {
	m := newMaze(t, core.NewGrid, 1, 2)
	g := m.Grid()
	g.Cell(core.Index{Row: 0, Col: 0}).SetText("S")

	styled := sketch.ColorText(m, func(c *core.Cell) color.Style {
		if c.Text() != "" {
			return color.Style{color.FgRed, color.OpBold}
		}
		return nil
	})
	// Stripping the ANSI codes recovers the plain picture.
	assert.Equal(t, sketch.Text(m), color.ClearCode(styled))
}

func TestRasterNilMaze(t *testing.T) {
	_, err := sketch.NewRaster(nil)
	assert.ErrorIs(t, err, sketch.ErrNilMaze)

	_, err = sketch.Render(nil)
	assert.ErrorIs(t, err, sketch.ErrNilMaze)
}

func TestRasterBounds(t *testing.T) {
	m := newMaze(t, core.NewGrid, 2, 3)
	r, err := sketch.NewRaster(m)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 31, 21), r.Bounds())
	assert.Equal(t, stdcolor.RGBAModel, r.ColorModel())

	r, err = sketch.NewRaster(m, sketch.WithCellSize(1))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 7), r.Bounds(), "cell size clamps to 3")
}

func rgbaAt(img image.Image, x, y int) stdcolor.RGBA {
	return stdcolor.RGBAModel.Convert(img.At(x, y)).(stdcolor.RGBA)
}

func TestRasterWallsAndGaps(t *testing.T) {
	m := newMaze(t, core.NewGrid, 1, 2)
	g := m.Grid()
	g.Cell(core.Index{Row: 0, Col: 0}).Link(g.Cell(core.Index{Row: 0, Col: 1}))

	r, err := sketch.NewRaster(m)
	require.NoError(t, err)

	black := stdcolor.RGBA{A: 255}
	white := stdcolor.RGBA{R: 255, G: 255, B: 255, A: 255}

	assert.Equal(t, black, rgbaAt(r, 0, 0), "lattice corner")
	assert.Equal(t, black, rgbaAt(r, 0, 5), "west boundary")
	assert.Equal(t, black, rgbaAt(r, 5, 0), "north boundary")
	assert.Equal(t, white, rgbaAt(r, 10, 5), "carved shared wall")
	assert.Equal(t, white, rgbaAt(r, 5, 5), "cell interior")
}

func TestRasterOneWayPassageStaysWalled(t *testing.T) {
	m := newMaze(t, core.NewGrid, 1, 2)
	g := m.Grid()
	g.Cell(core.Index{Row: 0, Col: 0}).LinkTo(g.Cell(core.Index{Row: 0, Col: 1}), 1)

	r, err := sketch.NewRaster(m)
	require.NoError(t, err)
	assert.Equal(t, stdcolor.RGBA{A: 255}, rgbaAt(r, 10, 5))
}

func TestRasterFaceColor(t *testing.T) {
	m := newMaze(t, core.NewGrid, 2, 2)
	g := m.Grid()
	red := stdcolor.RGBA{R: 255, A: 255}
	// Grid row 1 draws on top, so its interior sits at small image y.
	g.Cell(core.Index{Row: 1, Col: 0}).SetColor(red)

	r, err := sketch.NewRaster(m)
	require.NoError(t, err)
	assert.Equal(t, red, rgbaAt(r, 5, 5))
	assert.NotEqual(t, red, rgbaAt(r, 5, 15))
}

func TestRasterSeamGapOnTorus(t *testing.T) {
	m := newMaze(t, core.NewTorusGrid, 2, 2)
	g := m.Grid()
	// Carve across the horizontal seam.
	g.Cell(core.Index{Row: 1, Col: 0}).Link(g.Cell(core.Index{Row: 0, Col: 0}))

	r, err := sketch.NewRaster(m)
	require.NoError(t, err)
	white := stdcolor.RGBA{R: 255, G: 255, B: 255, A: 255}
	assert.Equal(t, white, rgbaAt(r, 5, 0), "top boundary opens")
	assert.Equal(t, white, rgbaAt(r, 5, 20), "bottom boundary mirrors it")
	assert.Equal(t, white, rgbaAt(r, 5, 10), "interior wall between the pair")
}

func TestRasterCustomColors(t *testing.T) {
	m := newMaze(t, core.NewGrid, 1, 1)
	blue := stdcolor.RGBA{B: 255, A: 255}
	gray := stdcolor.RGBA{R: 40, G: 40, B: 40, A: 255}

	r, err := sketch.NewRaster(m,
		sketch.WithCellSize(4),
		sketch.WithWallColor(blue),
		sketch.WithBackground(gray))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 5), r.Bounds())
	assert.Equal(t, blue, rgbaAt(r, 0, 0))
	assert.Equal(t, gray, rgbaAt(r, 2, 2))
}

func TestRenderProducesRGBA(t *testing.T) {
	m := newMaze(t, core.NewGrid, 3, 3)
	require.NoError(t, wilson.On(m, wilson.WithRand(rand.New(rand.NewSource(11)))))

	img, err := sketch.Render(m)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 31, 31), img.Bounds())
	assert.Equal(t, stdcolor.RGBA{A: 255}, rgbaAt(img, 0, 0))
}

func TestSavePNG(t *testing.T) {
	m := newMaze(t, core.NewGrid, 3, 3)
	require.NoError(t, wilson.On(m, wilson.WithRand(rand.New(rand.NewSource(13)))))

	path := filepath.Join(t.TempDir(), "maze.png")
	require.NoError(t, sketch.SavePNG(m, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

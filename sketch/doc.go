// Package sketch renders carved mazes, as text and as images.
//
// Text draws the classic ASCII picture: nodes as '+', walls as '---'
// and '|', mutual passages as gaps. One-way passages get direction
// arrows (^ v < >), and identified surfaces get their seam markers: A/B
// side rails on a cylinder, A/B plus C/D rails on a torus, and a
// mirrored letter rail on a Möbius strip, so the reader can follow a
// passage off one edge and back in on the other.
//
// ColorText is the same picture with each cell's interior run through a
// caller-supplied palette of gookit/color styles; a distance table
// makes a heat-map palette in a few lines.
//
// Raster implements image.Image over the maze, one pixel lattice line
// per wall; Render composes it into a drawable RGBA and SavePNG writes
// it to disk. Cell face colors (Cell.SetColor) show up as filled
// interiors.
//
// Errors:
//
//	ErrNilMaze - nil *core.Maze passed to a renderer.
package sketch

package sketch

import (
	"errors"
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/mazegrid/core"
)

// ErrNilMaze indicates a nil *core.Maze was passed to a renderer.
var ErrNilMaze = errors.New("sketch: maze is nil")

// Palette styles a cell's interior for ColorText. Return an empty
// style to leave the cell unstyled.
type Palette func(*core.Cell) color.Style

// Text renders the maze as ASCII, rows from north to south, with seam
// markers matching the grid's surface. A nil maze renders as "".
func Text(m *core.Maze) string {
	return render(m, nil)
}

// ColorText renders like Text with each cell interior styled by the
// palette. ANSI codes go wherever gookit/color decides they are
// supported.
func ColorText(m *core.Maze, p Palette) string {
	return render(m, p)
}

func render(m *core.Maze, p Palette) string {
	if m == nil {
		return ""
	}
	g := m.Grid()

	// The raw picture: alternating wall and face lines, then the south
	// boundary.
	lines := make([]string, 0, 2*g.Rows()+1)
	for i := g.Rows() - 1; i >= 0; i-- {
		row := g.Row(i)
		lines = append(lines, wallLine(row, core.North, " v ", " ^ "))
		lines = append(lines, faceLine(row, p))
	}
	lines = append(lines, wallLine(g.Row(0), core.South, " ^ ", " v "))

	switch g.Surface() {
	case core.SurfaceCylinder:
		return sideRails(lines, "A", "B")
	case core.SurfaceTorus:
		rail := torusRail(g.Cols())
		return rail + "\n" + sideRails(lines, "A", "B") + "\n" + rail
	case core.SurfaceMoebius:
		return moebiusRails(lines, g.Rows())
	default:
		return strings.Join(lines, "\n")
	}
}

// wallLine draws one horizontal boundary of a cell row. The entry and
// exit glyphs mark one-way passages; which arrow means which flips
// between the north and south boundaries.
func wallLine(row []*core.Cell, d core.Direction, entry, exit string) string {
	var b strings.Builder
	b.WriteString("+")
	for _, c := range row {
		nbr, ok := c.Neighbor(d)
		switch {
		case !ok:
			b.WriteString("---")
		case c.Linked(nbr) && nbr.Linked(c):
			b.WriteString("   ")
		case c.Linked(nbr):
			b.WriteString(exit)
		case nbr.Linked(c):
			b.WriteString(entry)
		default:
			b.WriteString("---")
		}
		b.WriteString("+")
	}
	return b.String()
}

// faceLine draws one row of cell interiors and their west walls, plus
// the final east wall.
func faceLine(row []*core.Cell, p Palette) string {
	var b strings.Builder
	for _, c := range row {
		b.WriteString(sideGlyph(c, core.West, "<", ">"))

		face := "   "
		if t := c.Text(); t != "" {
			face = " " + string([]rune(t)[0]) + " "
		}
		if p != nil {
			if style := p(c); len(style) > 0 {
				face = style.Sprint(face)
			}
		}
		b.WriteString(face)
	}
	last := row[len(row)-1]
	b.WriteString(sideGlyph(last, core.East, ">", "<"))
	return b.String()
}

// sideGlyph picks the vertical wall character toward the given side.
func sideGlyph(c *core.Cell, d core.Direction, exit, entry string) string {
	nbr, ok := c.Neighbor(d)
	switch {
	case !ok:
		return "|"
	case c.Linked(nbr) && nbr.Linked(c):
		return " "
	case c.Linked(nbr):
		return exit
	case nbr.Linked(c):
		return entry
	default:
		return "|"
	}
}

// sideRails tags the top and bottom boundary lines with the cylinder's
// seam markers.
func sideRails(lines []string, top, bottom string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		switch i {
		case 0:
			out[i] = top + " " + l + " " + top
		case len(lines) - 1:
			out[i] = bottom + " " + l + " " + bottom
		default:
			out[i] = "  " + l
		}
	}
	return strings.Join(out, "\n")
}

func torusRail(cols int) string {
	pad := cols - 2
	if pad < 0 {
		pad = 0
	}
	return "    C  " + strings.Repeat("    ", pad) + " D"
}

// moebiusRails tags every wall line with a letter rail that reads
// forward on the left and mirrored on the right, exposing the half
// twist.
func moebiusRails(lines []string, rows int) string {
	markers := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for len(markers) < rows+1 {
		markers += markers
	}
	markers = markers[:rows+1]

	out := make([]string, len(lines))
	for i, l := range lines {
		if i%2 == 1 { // face line
			out[i] = "  " + l
			continue
		}
		// Wall line i sits above grid row rows-1-i/2; its marker index
		// counts boundaries from the south.
		k := rows - i/2
		out[i] = string(markers[k]) + " " + l + " " + string(markers[rows-k])
	}
	return strings.Join(out, "\n")
}

package core

// floorMod returns x mod m with the sign of m, so negative offsets wrap
// onto the far side instead of producing negative coordinates.
func floorMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// floorDiv returns floor(x/m); Go's integer division truncates toward
// zero, which is wrong for negative x here.
func floorDiv(x, m int) int {
	q := x / m
	if (x%m != 0) && ((x < 0) != (m < 0)) {
		q--
	}
	return q
}

// NewCylinderGrid builds a grid whose east and west sides are
// identified: the column coordinate wraps modulo cols.
//
// For an m×n cylinder (m rows, n cols) the Euler accounting gives
// v = (m+1)n, e = mn + (m+1)n, f = mn, k = 1 and so χ = -1.
func NewCylinderGrid(rows, cols int, opts ...GridOption) (*Grid, error) {
	t := func(x, y int) (int, int) {
		return floorMod(x, cols), y
	}
	opts = append(opts, withSurface(SurfaceCylinder, t))
	return NewGrid(rows, cols, opts...)
}

// NewTorusGrid builds a grid with both pairs of opposite sides
// identified: both coordinates wrap.
//
// For an m×n torus v = mn, e = 2mn, f = mn, k = 1 and so χ = -1.
func NewTorusGrid(rows, cols int, opts ...GridOption) (*Grid, error) {
	t := func(x, y int) (int, int) {
		return floorMod(x, cols), floorMod(y, rows)
	}
	opts = append(opts, withSurface(SurfaceTorus, t))
	return NewGrid(rows, cols, opts...)
}

// NewMoebiusGrid builds a grid whose east and west sides are identified
// with a half twist: the column wraps, and the row is mirrored on every
// odd wrap. Crossing the seam reverses orientation, so a passage that
// leaves row i eastward re-enters at row rows-1-i.
func NewMoebiusGrid(rows, cols int, opts ...GridOption) (*Grid, error) {
	t := func(x, y int) (int, int) {
		q := floorDiv(x, cols)
		xp := floorMod(x, cols)
		yp := y
		if floorMod(q, 2) != 0 {
			yp = rows - y - 1
		}
		return xp, yp
	}
	opts = append(opts, withSurface(SurfaceMoebius, t))
	return NewGrid(rows, cols, opts...)
}

// withSurface installs a transform while recording which named surface
// it implements, unlike WithTransform which marks SurfaceCustom.
func withSurface(s Surface, t Transform) GridOption {
	return func(g *Grid) {
		g.transform = t
		g.surface = s
	}
}

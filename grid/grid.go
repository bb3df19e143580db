package grid

// New returns an all-free Grid of the given dimensions.
// Returns ErrEmptyGrid when height or width is not positive.
// Complexity: O(W×H) time and memory.
func New(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]bool, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]bool, width)
	}

	return &Grid{height: height, width: width, cells: cells}, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice where
// true marks an obstacle. It deep-copies the input to ensure immutability
// of the caller's data.
// Returns ErrEmptyGrid if the field has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][]bool, h)
	for y := 0; y < h; y++ {
		cp[y] = make([]bool, w)
		copy(cp[y], cells[y])
	}

	return &Grid{height: h, width: w, cells: cp}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (y,x) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(y, x int) bool {
	return y >= 0 && y < g.height && x >= 0 && x < g.width
}

// IsObstacle reports whether cell (y,x) is occupied.
// Out-of-bounds cells are reported as obstacles, matching IsFree.
func (g *Grid) IsObstacle(y, x int) bool {
	return !g.IsFree(y, x)
}

// IsFree reports whether cell (y,x) is inside the grid and unoccupied.
// Complexity: O(1).
func (g *Grid) IsFree(y, x int) bool {
	if !g.InBounds(y, x) {
		return false
	}

	return !g.cells[y][x]
}

// SetObstacle marks or clears the obstacle state of cell (y,x).
// This mutates the receiver; editing layers call it on the base grid and
// re-derive the inflated grid afterwards.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) SetObstacle(y, x int, occupied bool) error {
	if !g.InBounds(y, x) {
		return ErrOutOfBounds
	}
	g.cells[y][x] = occupied

	return nil
}

// Clone returns a deep copy of the grid.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cp := make([][]bool, g.height)
	for y := 0; y < g.height; y++ {
		cp[y] = make([]bool, g.width)
		copy(cp[y], g.cells[y])
	}

	return &Grid{height: g.height, width: g.width, cells: cp}
}

// Obstacles returns the coordinates of every occupied cell in row-major order.
// Complexity: O(W×H).
func (g *Grid) Obstacles() []Coord {
	var out []Coord
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				out = append(out, Coord{Y: y, X: x})
			}
		}
	}

	return out
}

package sudoku

// Coord addresses one cell of the grid, row and column each in [0,8].
type Coord struct {
	Row, Col int
}

// Grid is a 9x9 sudoku grid in row-major order. Values are 0..9, with 0
// meaning an empty cell.
type Grid [9][9]int

// BoxCoordinates returns the coordinate lists of the nine 3x3 boxes. Boxes
// are enumerated by block origin in row-major order, (0,0), (0,3), (0,6),
// (3,0) and so on, and the cells within a box are row-major as well.
func BoxCoordinates() (boxes [9][9]Coord) {
	var b int
	for i := 0; i < 9; i += 3 {
		for j := 0; j < 9; j += 3 {
			var n int
			for m := 0; m < 3; m++ {
				for l := 0; l < 3; l++ {
					boxes[b][n] = Coord{Row: i + m, Col: j + l}
					n++
				}
			}
			b++
		}
	}
	return
}

// BoxIndex returns the index of the box containing (row, col) under the
// BoxCoordinates enumeration order.
func BoxIndex(row, col int) int {
	return (row/3)*3 + col/3
}

// Board owns the grid and the fixed-cell mask. Cells holding a nonzero value
// at construction are the puzzle's givens; writes to them are ignored, so
// only the mask protects them, not the type system.
type Board struct {
	grid  Grid
	fixed [9][9]bool
}

// NewBoard builds a board from an initial grid. The fixed mask is computed
// once here: every nonzero cell becomes a given.
func NewBoard(initial Grid) *Board {
	b := &Board{grid: initial}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.fixed[r][c] = initial[r][c] != 0
		}
	}
	return b
}

// NewEmptyBoard builds an all-blank board with no fixed cells.
func NewEmptyBoard() *Board {
	return NewBoard(Grid{})
}

func (b *Board) Value(row, col int) int {
	return b.grid[row][col]
}

// SetValue overwrites a cell unless it is fixed. Writes to fixed cells are
// silently dropped.
func (b *Board) SetValue(row, col, value int) {
	if !b.fixed[row][col] {
		b.grid[row][col] = value
	}
}

func (b *Board) IsCellFixed(row, col int) bool {
	return b.fixed[row][col]
}

// Rows returns the nine row groups. The views returned by Rows, Columns and
// Boxes are recomputed on every call; callers needing repeated access should
// hold on to one result.
func (b *Board) Rows() (rows [9][9]int) {
	rows = b.grid
	return
}

// Columns returns the nine column groups.
func (b *Board) Columns() (cols [9][9]int) {
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			cols[c][r] = b.grid[r][c]
		}
	}
	return
}

// Boxes returns the nine 3x3 box groups in BoxCoordinates order.
func (b *Board) Boxes() (boxes [9][9]int) {
	for i, box := range BoxCoordinates() {
		for j, coord := range box {
			boxes[i][j] = b.grid[coord.Row][coord.Col]
		}
	}
	return
}

// ModifiableCoordinates returns every non-fixed cell in row-major order.
func (b *Board) ModifiableCoordinates() (coords []Coord) {
	coords = make([]Coord, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !b.fixed[r][c] {
				coords = append(coords, Coord{Row: r, Col: c})
			}
		}
	}
	return
}

// Reset blanks every modifiable cell, leaving the givens in place.
func (b *Board) Reset() {
	for _, coord := range b.ModifiableCoordinates() {
		b.grid[coord.Row][coord.Col] = 0
	}
}

// IsValid reports whether no nonzero value repeats within any of the 27
// groups. Blank cells never count as duplicates.
func (b *Board) IsValid() bool {
	groups := make([][9]int, 0, 27)
	rows, cols, boxes := b.Rows(), b.Columns(), b.Boxes()
	groups = append(groups, rows[:]...)
	groups = append(groups, cols[:]...)
	groups = append(groups, boxes[:]...)
	for _, g := range groups {
		var seen int
		for _, v := range g {
			if v == 0 {
				continue
			}
			bit := 1 << v
			if seen&bit != 0 {
				return false
			}
			seen |= bit
		}
	}
	return true
}

// Swap exchanges the values at p and q. Each write goes through SetValue, so
// a fixed endpoint keeps its value. Applying Swap twice to the same pair of
// modifiable cells restores the original grid.
func (b *Board) Swap(p, q Coord) {
	vp, vq := b.grid[p.Row][p.Col], b.grid[q.Row][q.Col]
	b.SetValue(p.Row, p.Col, vq)
	b.SetValue(q.Row, q.Col, vp)
}

// Copy returns an independent board with the same grid values. The fixed
// mask is recomputed from the copied grid rather than duplicated, so any
// modifiable cell currently holding a nonzero value becomes fixed in the
// copy. Copying a partially filled board therefore freezes its fill.
func (b *Board) Copy() *Board {
	return NewBoard(b.grid)
}

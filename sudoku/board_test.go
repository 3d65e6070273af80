package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func solvedGrid() Grid {
	return Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
}

func puzzleGrid() Grid {
	return Grid{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
}

func TestBoxCoordinates(t *testing.T) {
	boxes := BoxCoordinates()
	// Block origins enumerate row-major: box 1 starts at (0,3), box 3 at (3,0)
	assert.Equal(t, Coord{Row: 0, Col: 3}, boxes[1][0])
	assert.Equal(t, Coord{Row: 3, Col: 0}, boxes[3][0])
	assert.Equal(t, Coord{Row: 8, Col: 8}, boxes[8][8])
	// The nine boxes partition the grid
	var seen [9][9]int
	for b, box := range boxes {
		for _, coord := range box {
			seen[coord.Row][coord.Col]++
			assert.Equal(t, b, BoxIndex(coord.Row, coord.Col))
		}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			assert.Equal(t, 1, seen[r][c])
		}
	}
}

func TestBoard(t *testing.T) {
	{ // Group extraction
		b := NewBoard(solvedGrid())
		rows, cols, boxes := b.Rows(), b.Columns(), b.Boxes()
		assert.Equal(t, [9]int{5, 3, 4, 6, 7, 8, 9, 1, 2}, rows[0])
		assert.Equal(t, [9]int{5, 6, 1, 8, 4, 7, 9, 2, 3}, cols[0])
		assert.Equal(t, [9]int{5, 3, 4, 6, 7, 2, 1, 9, 8}, boxes[0])
		assert.Equal(t, [9]int{6, 7, 8, 1, 9, 5, 3, 4, 2}, boxes[1])
	}
	{ // Fixed cells ignore writes, for any value
		b := NewBoard(puzzleGrid())
		assert.True(t, b.IsCellFixed(0, 0))
		b.SetValue(0, 0, 9)
		b.SetValue(0, 0, 0)
		assert.Equal(t, 5, b.Value(0, 0))
		assert.False(t, b.IsCellFixed(0, 2))
		b.SetValue(0, 2, 4)
		assert.Equal(t, 4, b.Value(0, 2))
	}
	{ // Modifiable coordinates come back row-major
		b := NewBoard(puzzleGrid())
		coords := b.ModifiableCoordinates()
		assert.Equal(t, 51, len(coords))
		assert.Equal(t, Coord{Row: 0, Col: 2}, coords[0])
		for i := 1; i < len(coords); i++ {
			prev, cur := coords[i-1], coords[i]
			assert.True(t, cur.Row > prev.Row || (cur.Row == prev.Row && cur.Col > prev.Col))
		}
		for _, c := range coords {
			assert.False(t, b.IsCellFixed(c.Row, c.Col))
		}
	}
	{ // Reset blanks only the modifiable cells
		b := NewBoard(puzzleGrid())
		b.SetValue(0, 2, 4)
		b.SetValue(8, 0, 3)
		b.Reset()
		assert.Equal(t, 0, b.Value(0, 2))
		assert.Equal(t, 0, b.Value(8, 0))
		assert.Equal(t, 5, b.Value(0, 0))
	}
	{ // Validity: zeros never count as duplicates
		assert.True(t, NewBoard(solvedGrid()).IsValid())
		assert.True(t, NewBoard(puzzleGrid()).IsValid())
		assert.True(t, NewEmptyBoard().IsValid())
		g := puzzleGrid()
		g[0][2] = 5 // duplicates the 5 already in row 0
		assert.False(t, NewBoard(g).IsValid())
	}
}

func TestSwap(t *testing.T) {
	b := NewBoard(puzzleGrid())
	b.SetValue(0, 2, 4)
	b.SetValue(0, 3, 8)
	p, q := Coord{Row: 0, Col: 2}, Coord{Row: 0, Col: 3}
	b.Swap(p, q)
	assert.Equal(t, 8, b.Value(0, 2))
	assert.Equal(t, 4, b.Value(0, 3))
	// Swap is its own inverse
	b.Swap(p, q)
	assert.Equal(t, 4, b.Value(0, 2))
	assert.Equal(t, 8, b.Value(0, 3))
	// A fixed endpoint keeps its value
	fixed := Coord{Row: 0, Col: 0}
	b.Swap(fixed, p)
	assert.Equal(t, 5, b.Value(0, 0))
	assert.Equal(t, 5, b.Value(0, 2))
}

func TestCopy(t *testing.T) {
	b := NewBoard(puzzleGrid())
	b.SetValue(0, 2, 4)
	cp := b.Copy()
	// Copies diverge independently
	cp.SetValue(8, 0, 3)
	assert.Equal(t, 0, b.Value(8, 0))
	// The mask is recomputed from the copied grid, so the filled-in 4 at
	// (0,2) becomes a given of the copy while still modifiable in b.
	assert.True(t, cp.IsCellFixed(0, 2))
	cp.SetValue(0, 2, 7)
	assert.Equal(t, 4, cp.Value(0, 2))
	assert.False(t, b.IsCellFixed(0, 2))
	// Cells blank at copy time stay modifiable
	assert.False(t, cp.IsCellFixed(0, 3))
}

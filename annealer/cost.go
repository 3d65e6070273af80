package annealer

import (
	"github.com/k-f-ng/sudoku-solver/sudoku"
)

// GroupCost scores one row, column or box. Every blank cell costs 1, and
// each nonzero value costs one per occurrence beyond the first. Penalizing
// all zeros, not just excess ones, pushes the search to fill blanks while
// tolerating exactly one occurrence of each digit.
func GroupCost(group [9]int) (cost int) {
	var counts [10]int
	for _, v := range group {
		counts[v]++
	}
	cost = counts[0]
	for v := 1; v <= 9; v++ {
		if counts[v] > 1 {
			cost += counts[v] - 1
		}
	}
	return
}

// TotalCost sums GroupCost over all 27 groups. The cost is 0 exactly when
// the board is completely filled with no duplicates, i.e. solved.
func TotalCost(b *sudoku.Board) (cost int) {
	rows, cols, boxes := b.Rows(), b.Columns(), b.Boxes()
	for i := 0; i < 9; i++ {
		cost += GroupCost(rows[i]) + GroupCost(cols[i]) + GroupCost(boxes[i])
	}
	return
}

// CellCost scores a single coordinate: a blank cell costs a flat 1,
// otherwise the cost is how many other cells in its row, column and box
// share its value. This local score only weights move selection; the cell
// costs do not need to sum to TotalCost.
func CellCost(b *sudoku.Board, row, col int) (cost int) {
	value := b.Value(row, col)
	if value == 0 {
		return 1
	}
	rows, cols, boxes := b.Rows(), b.Columns(), b.Boxes()
	for _, group := range [3][9]int{rows[row], cols[col], boxes[sudoku.BoxIndex(row, col)]} {
		for _, v := range group {
			if v == value {
				cost++
			}
		}
		cost-- // one occurrence per group is free
	}
	return
}

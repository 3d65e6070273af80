package annealer

import (
	"fmt"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/k-f-ng/sudoku-solver/sudoku"
)

type MoveStrategy uint8

const (
	// RowSwap exchanges two modifiable cells within one row. After the
	// per-row fill a row holds each digit exactly once, and a row-local swap
	// keeps it that way while perturbing column and box cost.
	RowSwap MoveStrategy = iota
	// AnyCell exchanges a weighted-drawn cell with any modifiable cell
	// holding a different value.
	AnyCell
)

func StrategyFromString(s string) (MoveStrategy, error) {
	switch s {
	case "", "RowSwap":
		return RowSwap, nil
	case "AnyCell":
		return AnyCell, nil
	}
	return RowSwap, fmt.Errorf("unknown move strategy %q, want RowSwap or AnyCell", s)
}

// selectPair picks the two swap candidates. coords and weights are parallel
// slices over the modifiable cells in row-major order; the first cell is
// drawn with probability proportional to its weight, the second according to
// the strategy. ok is false when the draw starves: either every weight is
// zero, or no drawable cell has a usable partner.
func (an *Annealer) selectPair(b *sudoku.Board, coords []sudoku.Coord, weights []float64) (c1, c2 sudoku.Coord, ok bool) {
	// Take removes a drawn index from the distribution, so the redraw loop
	// below cannot revisit a cell whose row has no other modifiable cell.
	w := sampleuv.NewWeighted(weights, an.src)
	for {
		idx, drawn := w.Take()
		if !drawn {
			return
		}
		c1 = coords[idx]
		switch an.Strategy {
		case AnyCell:
			if c2, ok = an.pickAnyCell(b, coords, c1); ok {
				return
			}
		default:
			if c2, ok = an.pickRowMate(coords, c1); ok {
				return
			}
		}
	}
}

// pickRowMate draws uniformly from the other modifiable cells of c1's row.
func (an *Annealer) pickRowMate(coords []sudoku.Coord, c1 sudoku.Coord) (c2 sudoku.Coord, ok bool) {
	mates := make([]sudoku.Coord, 0, 8)
	for _, c := range coords {
		if c.Row == c1.Row && c.Col != c1.Col {
			mates = append(mates, c)
		}
	}
	if len(mates) == 0 {
		return
	}
	return mates[an.rnd.IntN(len(mates))], true
}

// pickAnyCell draws uniformly from all modifiable cells until one holds a
// value different from c1's. Attempts are bounded so a degenerate board
// (every modifiable cell holding the same value) cannot spin forever.
func (an *Annealer) pickAnyCell(b *sudoku.Board, coords []sudoku.Coord, c1 sudoku.Coord) (c2 sudoku.Coord, ok bool) {
	v1 := b.Value(c1.Row, c1.Col)
	for attempt := 0; attempt < 4*len(coords); attempt++ {
		c2 = coords[an.rnd.IntN(len(coords))]
		if b.Value(c2.Row, c2.Col) != v1 {
			return c2, true
		}
	}
	return c2, false
}

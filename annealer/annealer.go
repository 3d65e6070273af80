package annealer

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/k-f-ng/sudoku-solver/InputParameters"
	"github.com/k-f-ng/sudoku-solver/sudoku"
)

// Annealer drives one board toward zero cost by simulated annealing. The
// random source is owned by the annealer and threaded through move selection
// and acceptance, so a fixed seed reproduces a run exactly.
type Annealer struct {
	Params   InputParameters.SolverParameters
	Strategy MoveStrategy
	// Outcome of the last Solve call
	Iterations int
	FinalCost  int
	src        rand.Source
	rnd        *rand.Rand
}

func NewAnnealer(ip *InputParameters.SolverParameters) (*Annealer, error) {
	strategy, err := StrategyFromString(ip.Strategy)
	if err != nil {
		return nil, err
	}
	seed := ip.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewPCG(seed, seed)
	return &Annealer{
		Params:   *ip,
		Strategy: strategy,
		src:      src,
		rnd:      rand.New(src),
	}, nil
}

// InitialiseBoard fills each row's blank cells with the digits 1..9 missing
// from that row, in shuffled order, so every row starts as a permutation of
// 1..9. Fails when a row has more blanks than missing digits, which can only
// happen when the givens already repeat.
func InitialiseBoard(b *sudoku.Board, rnd *rand.Rand) error {
	for r, row := range b.Rows() {
		var present [10]bool
		for _, v := range row {
			present[v] = true
		}
		missing := make([]int, 0, 9)
		for v := 1; v <= 9; v++ {
			if !present[v] {
				missing = append(missing, v)
			}
		}
		rnd.Shuffle(len(missing), func(i, j int) {
			missing[i], missing[j] = missing[j], missing[i]
		})
		for c := 0; c < 9; c++ {
			if b.Value(r, c) != 0 {
				continue
			}
			if len(missing) == 0 {
				return fmt.Errorf("invalid initial puzzle: row %d repeats a given digit", r)
			}
			b.SetValue(r, c, missing[0])
			missing = missing[1:]
		}
	}
	return nil
}

// Solve mutates b in place and reports whether it reached a zero-cost state
// within the iteration budget. The error return covers malformed input only;
// running out of iterations is the false result, not an error.
func (an *Annealer) Solve(b *sudoku.Board) (bool, error) {
	var (
		p = an.Params
		T = p.InitialTemperature
	)
	if !b.IsValid() {
		return false, fmt.Errorf("invalid initial puzzle: a given digit repeats within a row, column or box")
	}
	if err := InitialiseBoard(b, an.rnd); err != nil {
		return false, err
	}
	coords := b.ModifiableCoordinates()
	weights := make([]float64, len(coords))
	currentCost := TotalCost(b)
	minCost := currentCost
	var iterations, stagnation int

	for currentCost > 0 && iterations < p.MaxIterations {
		for i, c := range coords {
			weights[i] = float64(CellCost(b, c.Row, c.Col))
		}
		if floats.Sum(weights) == 0 {
			// No modifiable cell is implicated in a violation; the residual
			// cost is not reachable by any move.
			break
		}
		c1, c2, ok := an.selectPair(b, coords, weights)
		if !ok {
			break
		}
		b.Swap(c1, c2)
		newCost := TotalCost(b)
		delta := newCost - currentCost
		if delta < 0 || an.rnd.Float64() < math.Exp(-float64(delta)/T) {
			currentCost = newCost
		} else {
			b.Swap(c1, c2)
		}

		if currentCost < minCost {
			minCost = currentCost
			stagnation = 0
		} else {
			stagnation++
		}
		if stagnation >= p.MaxStagnation {
			// Reheat to escape the local minimum; no cooling this iteration
			T = p.InitialTemperature
			minCost = currentCost
			stagnation = 0
		} else {
			T *= p.Decay
		}
		iterations++
		if p.LogFrequency > 0 && iterations%p.LogFrequency == 0 {
			fmt.Printf("iteration = %8d, cost = %3d, min = %3d, T = %8.5f\n",
				iterations, currentCost, minCost, T)
		}
	}
	an.Iterations = iterations
	an.FinalCost = currentCost
	return currentCost == 0, nil
}

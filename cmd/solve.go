/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/k-f-ng/sudoku-solver/InputParameters"
	"github.com/k-f-ng/sudoku-solver/annealer"
	"github.com/k-f-ng/sudoku-solver/sudoku"
)

type ModelSolve struct {
	PuzzleFile string
	ParamsFile string
	Profile    bool
}

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a 9x9 sudoku puzzle by simulated annealing",
	Long: `Solve a 9x9 sudoku puzzle by simulated annealing, able to read puzzle
files and an optional YAML parameters file for the annealing schedule`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		ms := &ModelSolve{}
		if ms.PuzzleFile, err = cmd.Flags().GetString("puzzleFile"); err != nil {
			panic(err)
		}
		if ms.ParamsFile, err = cmd.Flags().GetString("parametersFile"); err != nil {
			panic(err)
		}
		ms.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processSolveInput(ms, cmd)
		RunSolve(ms, ip)
	},
}

func processSolveInput(ms *ModelSolve, cmd *cobra.Command) (ip *InputParameters.SolverParameters) {
	var (
		err error
	)
	if len(ms.PuzzleFile) == 0 {
		err = fmt.Errorf("must supply a puzzle file (-F, --puzzleFile)")
		fmt.Printf("error: %s\n", err.Error())
		examplePuzzle := `
5 3 . | . 7 . | . . .
6 . . | 1 9 5 | . . .
. 9 8 | . . . | . 6 .
------+-------+------
8 . . | . 6 . | . . 3
4 . . | 8 . 3 | . . 1
7 . . | . 2 . | . . 6
------+-------+------
. 6 . | . . . | 2 8 .
. . . | 4 1 9 | . . 5
. . . | . 8 . | . 7 9
`
		fmt.Printf("Example puzzle file:%s\n", examplePuzzle)
		os.Exit(1)
	}
	ip = InputParameters.NewSolverParameters()
	if len(ms.ParamsFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(ms.ParamsFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	// Flags set on the command line override the parameters file
	if cmd.Flags().Changed("T") {
		ip.InitialTemperature, _ = cmd.Flags().GetFloat64("T")
	}
	if cmd.Flags().Changed("decay") {
		ip.Decay, _ = cmd.Flags().GetFloat64("decay")
	}
	if cmd.Flags().Changed("maxIterations") {
		ip.MaxIterations, _ = cmd.Flags().GetInt("maxIterations")
	}
	if cmd.Flags().Changed("maxStagnation") {
		ip.MaxStagnation, _ = cmd.Flags().GetInt("maxStagnation")
	}
	if cmd.Flags().Changed("seed") {
		ip.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("strategy") {
		ip.Strategy, _ = cmd.Flags().GetString("strategy")
	}
	if cmd.Flags().Changed("logFrequency") {
		ip.LogFrequency, _ = cmd.Flags().GetInt("logFrequency")
	}
	return
}

func RunSolve(ms *ModelSolve, ip *InputParameters.SolverParameters) {
	grid, err := sudoku.ReadPuzzleFile(ms.PuzzleFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	b := sudoku.NewBoard(grid)
	fmt.Printf("Puzzle:\n%s\n", b)
	ip.Print()

	an, err := annealer.NewAnnealer(ip)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if ms.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	solved, err := an.Solve(b)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("\nBoard after %d iterations, final cost %d:\n%s\n",
		an.Iterations, an.FinalCost, b)
	if !solved {
		fmt.Println("no solution found within the iteration budget")
		os.Exit(1)
	}
	fmt.Println("solved")
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().StringP("puzzleFile", "F", "", "puzzle file: 9 rows of digits, '.' for blanks, dashed separator lines skipped")
	SolveCmd.Flags().StringP("parametersFile", "I", "", "YAML file for solver parameters like:\n\t- InitialTemperature\n\t- Decay\n\t- MaxIterations")
	SolveCmd.Flags().Float64("T", 2.0, "initial annealing temperature")
	SolveCmd.Flags().Float64("decay", 0.999, "temperature decay per iteration")
	SolveCmd.Flags().Int("maxIterations", 1_000_000, "iteration budget before giving up")
	SolveCmd.Flags().Int("maxStagnation", 1500, "iterations without a new best cost before reheating")
	SolveCmd.Flags().Uint64("seed", 0, "random seed, 0 seeds from the clock")
	SolveCmd.Flags().String("strategy", "RowSwap", "move strategy: RowSwap or AnyCell")
	SolveCmd.Flags().Int("logFrequency", 0, "print cost/temperature every N iterations, 0 disables")
	SolveCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the solve")
}

package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Solver parameters obtained from the YAML input file
type SolverParameters struct {
	Title              string  `yaml:"Title"`
	InitialTemperature float64 `yaml:"InitialTemperature"`
	Decay              float64 `yaml:"Decay"`
	MaxIterations      int     `yaml:"MaxIterations"`
	MaxStagnation      int     `yaml:"MaxStagnation"`
	Seed               uint64  `yaml:"Seed"` // 0 seeds from the clock
	Strategy           string  `yaml:"Strategy"`
	LogFrequency       int     `yaml:"LogFrequency"` // 0 disables progress output
}

// NewSolverParameters returns the reference annealing schedule.
func NewSolverParameters() *SolverParameters {
	return &SolverParameters{
		InitialTemperature: 2.0,
		Decay:              0.999,
		MaxIterations:      1_000_000,
		MaxStagnation:      1500,
		Strategy:           "RowSwap",
	}
}

func (sp *SolverParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SolverParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("%8.5f\t\t= InitialTemperature\n", sp.InitialTemperature)
	fmt.Printf("%8.5f\t\t= Decay\n", sp.Decay)
	fmt.Printf("%8d\t\t= MaxIterations\n", sp.MaxIterations)
	fmt.Printf("%8d\t\t= MaxStagnation\n", sp.MaxStagnation)
	fmt.Printf("%8d\t\t= Seed\n", sp.Seed)
	fmt.Printf("[%s]\t\t= Strategy\n", sp.Strategy)
	fmt.Printf("%8d\t\t= LogFrequency\n", sp.LogFrequency)
}

package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SimParameters struct {
	Title         string  `yaml:"Title"`
	Mode          string  `yaml:"Mode"` // collision, swdDensity, swdVelocity, couette, poiseuille, slidingLid
	Nx            int     `yaml:"Nx"`
	Ny            int     `yaml:"Ny"`
	Omega         float64 `yaml:"Omega"`
	Steps         int     `yaml:"Steps"`
	WallVelocity  float64 `yaml:"WallVelocity"`
	PressureDelta float64 `yaml:"PressureDelta"`
	Rho0          float64 `yaml:"Rho0"`
	Epsilon       float64 `yaml:"Epsilon"`
	Workers       int     `yaml:"Workers"`
	Density       bool    `yaml:"Density"`
	Flow          bool    `yaml:"Flow"`
	GIF           bool    `yaml:"GIF"`
	Amplitude     bool    `yaml:"Amplitude"`
	Cut           bool    `yaml:"Cut"`
}

func (sp *SimParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SimParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%s]\t\t= Mode\n", sp.Mode)
	fmt.Printf("[%dx%d]\t\t= Grid extents\n", sp.Nx, sp.Ny)
	fmt.Printf("%8.5f\t\t= Omega\n", sp.Omega)
	fmt.Printf("[%d]\t\t\t= Steps\n", sp.Steps)
	fmt.Printf("%8.5f\t\t= WallVelocity\n", sp.WallVelocity)
	fmt.Printf("%8.5f\t\t= PressureDelta\n", sp.PressureDelta)
	if sp.Workers > 1 {
		fmt.Printf("[%d]\t\t\t= Workers\n", sp.Workers)
	}
}

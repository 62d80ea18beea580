/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>

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
	"path/filepath"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/gofluids/golbm/InputParameters"
	"github.com/gofluids/golbm/lbm"
	"github.com/gofluids/golbm/model_problems"
	"github.com/gofluids/golbm/results"
)

type SerialModel struct {
	Params  InputParameters.SimParameters
	OutDir  string
	Graph   bool
	Delay   time.Duration
	Verbose bool
	Timed   bool
	Profile bool
}

// serialCmd represents the serial command
var serialCmd = &cobra.Command{
	Use:   "serial",
	Short: "Run a simulation mode in a single flow of control",
	Long: `
Runs one of the model problems serially: collision operator, shear wave
decay (density or velocity seeded), Couette flow, Poiseuille flow or the
lid driven cavity,

golbm serial -m couette -x 100 -y 100 -s 2000 -o 1.2`,
	Run: func(cmd *cobra.Command, args []string) {
		m := &SerialModel{}
		m.Params = paramsFromFlags(cmd)
		m.OutDir, _ = cmd.Flags().GetString("outDir")
		m.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		m.Delay = time.Duration(dr) * time.Millisecond
		m.Verbose, _ = cmd.Flags().GetBool("verbose")
		m.Timed, _ = cmd.Flags().GetBool("time")
		m.Profile, _ = cmd.Flags().GetBool("profile")
		validateParams(&m.Params)
		RunSerial(m)
	},
}

func init() {
	rootCmd.AddCommand(serialCmd)
	addSimFlags(serialCmd)
	serialCmd.Flags().BoolP("graph", "g", false, "display a live velocity profile while computing the solution")
	serialCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
}

func addSimFlags(c *cobra.Command) {
	c.Flags().StringP("mode", "m", "collision", "mode to run: collision, swdDensity, swdVelocity, couette, poiseuille, slidingLid")
	c.Flags().StringP("inputFile", "I", "", "YAML file with simulation parameters; flags override nothing when set")
	c.Flags().IntP("lenX", "x", 100, "length of the x dimension")
	c.Flags().IntP("lenY", "y", 100, "length of the y dimension")
	c.Flags().IntP("steps", "s", 1000, "number of steps to run")
	c.Flags().Float64P("omega", "o", 1, "relaxation parameter, strictly between 0 and 2")
	c.Flags().Float64("wallVelocity", 0.2, "tangential velocity of the moving wall")
	c.Flags().Float64("pressureDelta", 0.01, "pressure difference across the channel")
	c.Flags().String("outDir", "out", "output folder for plots and data")
	c.Flags().Bool("density", false, "render the density field each step")
	c.Flags().BoolP("flow", "f", false, "render the flow speed each step")
	c.Flags().Bool("gif", false, "assemble the rendered frames into a gif")
	c.Flags().BoolP("amplitude", "a", false, "save the amplitude for each timestep")
	c.Flags().BoolP("cut", "c", false, "save a cut through the middle of the domain for each timestep")
	c.Flags().BoolP("time", "t", false, "measure the calculation time")
	c.Flags().BoolP("verbose", "v", false, "print the current time step")
	c.Flags().Bool("profile", false, "write a CPU profile for the run")
}

func paramsFromFlags(cmd *cobra.Command) (sp InputParameters.SimParameters) {
	if file, _ := cmd.Flags().GetString("inputFile"); len(file) != 0 {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = sp.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		sp.Print()
		return
	}
	sp.Mode, _ = cmd.Flags().GetString("mode")
	sp.Nx, _ = cmd.Flags().GetInt("lenX")
	sp.Ny, _ = cmd.Flags().GetInt("lenY")
	sp.Steps, _ = cmd.Flags().GetInt("steps")
	sp.Omega, _ = cmd.Flags().GetFloat64("omega")
	sp.WallVelocity, _ = cmd.Flags().GetFloat64("wallVelocity")
	sp.PressureDelta, _ = cmd.Flags().GetFloat64("pressureDelta")
	sp.Rho0 = 1
	sp.Epsilon = 0.01
	sp.Density, _ = cmd.Flags().GetBool("density")
	sp.Flow, _ = cmd.Flags().GetBool("flow")
	sp.GIF, _ = cmd.Flags().GetBool("gif")
	sp.Amplitude, _ = cmd.Flags().GetBool("amplitude")
	sp.Cut, _ = cmd.Flags().GetBool("cut")
	return
}

func validateParams(sp *InputParameters.SimParameters) {
	var willExit bool
	if sp.Steps <= 0 || sp.Nx < lbm.MinExtent || sp.Ny < lbm.MinExtent {
		fmt.Printf("error: steps must be positive, x and y at least %d\n", lbm.MinExtent)
		willExit = true
	}
	if sp.Omega <= 0 || sp.Omega >= 2 {
		fmt.Println("error: omega must be strictly between 0 and 2")
		willExit = true
	}
	if sp.GIF && !(sp.Density || sp.Flow) {
		fmt.Println("error: a gif can only be created if density or flow is rendered")
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
}

func buildEngine(sp *InputParameters.SimParameters) (e *lbm.Engine, err error) {
	switch sp.Mode {
	case "collision":
		e, err = model_problems.NewCollisionOperator(sp.Nx, sp.Ny, sp.Omega, sp.Steps)
	case "swdDensity":
		e, err = model_problems.NewShearWaveDecay(sp.Nx, sp.Ny, sp.Omega, sp.Steps, sp.Rho0, sp.Epsilon, true)
	case "swdVelocity":
		e, err = model_problems.NewShearWaveDecay(sp.Nx, sp.Ny, sp.Omega, sp.Steps, sp.Rho0, sp.Epsilon, false)
	case "couette":
		e, err = model_problems.NewCouetteFlow(sp.Nx, sp.Ny, sp.Omega, sp.Steps, sp.WallVelocity)
	case "poiseuille":
		e, err = model_problems.NewPoiseuilleFlow(sp.Nx, sp.Ny, sp.Omega, sp.Steps, sp.PressureDelta)
	case "slidingLid":
		e, err = model_problems.NewSlidingLid(sp.Nx, sp.Ny, sp.Omega, sp.Steps, sp.WallVelocity)
	default:
		err = fmt.Errorf("unknown mode %q", sp.Mode)
	}
	return
}

func RunSerial(m *SerialModel) {
	if m.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	e, err := buildEngine(&m.Params)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	e.Verbose = m.Verbose
	e.Timed = m.Timed

	folder := filepath.Join(m.OutDir, e.Name)
	vis, err := results.NewVisualization(folder, e.Lat.Dry, results.VisConfig{
		Density: m.Params.Density,
		Flow:    m.Params.Flow,
		GIF:     m.Params.GIF,
	})
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	data, err := results.NewData(folder, dataConfig(&m.Params))
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	e.Observers = append(e.Observers, vis, data)
	if m.Graph {
		e.Observers = append(e.Observers, &results.LiveProfile{
			Enabled: true,
			Delay:   m.Delay,
			YMin:    -m.Params.WallVelocity,
			YMax:    m.Params.WallVelocity,
		})
	}
	e.Run()
}

// dataConfig maps the requested traces onto the mode's natural cut
// orientation and sample points.
func dataConfig(sp *InputParameters.SimParameters) (conf results.DataConfig) {
	switch sp.Mode {
	case "swdDensity":
		conf.AmplitudeDens = sp.Amplitude
		conf.PointDens = [2]int{sp.Nx / 4, sp.Ny / 2}
		conf.HorizontalDens = sp.Cut
	case "swdVelocity":
		conf.AmplitudeVel = sp.Amplitude
		conf.PointVel = [2]int{sp.Nx / 2, sp.Ny / 4}
		conf.VerticalVel = sp.Cut
	case "couette", "poiseuille", "slidingLid":
		conf.AmplitudeVel = sp.Amplitude
		conf.PointVel = [2]int{sp.Nx / 2, sp.Ny / 2}
		conf.VerticalVel = sp.Cut
	}
	return
}

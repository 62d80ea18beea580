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
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/gofluids/golbm/decomp"
	"github.com/gofluids/golbm/results"
)

// parallelCmd represents the parallel command
var parallelCmd = &cobra.Command{
	Use:   "parallel",
	Short: "Run the lid driven cavity decomposed across workers",
	Long: `
Partitions the lattice into a near-square grid of sub-lattices, one per
worker, and runs the sliding lid problem with per-step halo exchange,

golbm parallel -w 4 -x 300 -y 300 -s 10000`,
	Run: func(cmd *cobra.Command, args []string) {
		workers, _ := cmd.Flags().GetInt("workers")
		nx, _ := cmd.Flags().GetInt("lenX")
		ny, _ := cmd.Flags().GetInt("lenY")
		steps, _ := cmd.Flags().GetInt("steps")
		omega, _ := cmd.Flags().GetFloat64("omega")
		vel, _ := cmd.Flags().GetFloat64("wallVelocity")
		outDir, _ := cmd.Flags().GetString("outDir")
		flow, _ := cmd.Flags().GetBool("flow")
		verbose, _ := cmd.Flags().GetBool("verbose")
		timed, _ := cmd.Flags().GetBool("time")
		prof, _ := cmd.Flags().GetBool("profile")

		if steps <= 0 || nx < 10 || ny < 10 {
			fmt.Println("error: steps must be positive, x and y at least 10")
			os.Exit(1)
		}
		if omega <= 0 || omega >= 2 {
			fmt.Println("error: omega must be strictly between 0 and 2")
			os.Exit(1)
		}
		if prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}

		start := time.Now()
		global, err := decomp.RunSlidingLid(workers, nx, ny, omega, steps, vel, verbose)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if timed {
			elapsed := time.Since(start).Seconds()
			fmt.Printf("Total lattice update time: %.2f s\n", elapsed)
			fmt.Printf("MLUPS: %.2f\n", float64(nx*ny*steps)/elapsed/1.e6)
		}

		// the assembled global field is rendered once, at the end
		if flow {
			folder := filepath.Join(outDir, "sliding_lid_parallel")
			vis, err := results.NewVisualization(folder, false, results.VisConfig{Flow: true})
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			vis.Finish(global)
		}
	},
}

func init() {
	rootCmd.AddCommand(parallelCmd)
	parallelCmd.Flags().IntP("workers", "w", runtime.NumCPU(), "number of cooperating workers")
	parallelCmd.Flags().IntP("lenX", "x", 300, "length of the x dimension")
	parallelCmd.Flags().IntP("lenY", "y", 300, "length of the y dimension")
	parallelCmd.Flags().IntP("steps", "s", 10000, "number of steps to run")
	parallelCmd.Flags().Float64P("omega", "o", 1.2, "relaxation parameter, strictly between 0 and 2")
	parallelCmd.Flags().Float64("wallVelocity", 0.05, "tangential velocity of the sliding lid")
	parallelCmd.Flags().String("outDir", "out", "output folder for plots")
	parallelCmd.Flags().BoolP("flow", "f", false, "render the assembled flow speed at the end of the run")
	parallelCmd.Flags().BoolP("time", "t", false, "measure the calculation time")
	parallelCmd.Flags().BoolP("verbose", "v", false, "print the current time step")
	parallelCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}

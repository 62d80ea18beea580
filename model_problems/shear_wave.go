package model_problems

import (
	"github.com/gofluids/golbm/lbm"
)

// NewShearWaveDecay builds the periodic shear wave decay problem. With
// seedDensity set, the initial state carries a sinusoidal density
// perturbation rho0 + eps sin(2 pi x / Nx) at rest; otherwise a sinusoidal
// velocity profile eps sin(2 pi y / Ny) at density 1. The decay rate of the
// wave amplitude measures the lattice viscosity.
func NewShearWaveDecay(nx, ny int, omega float64, steps int, rho0, eps float64,
	seedDensity bool) (e *lbm.Engine, err error) {
	bcs := periodicBox([]lbm.Direction{lbm.East, lbm.West, lbm.North, lbm.South})
	if e, err = lbm.NewEngine(nx, ny, omega, steps, false, bcs); err != nil {
		return
	}
	if seedDensity {
		e.Name = "swd_dens"
		e.Init = func(lat *lbm.Lattice) { lat.SetShearWaveDensity(rho0, eps) }
	} else {
		e.Name = "swd_vel"
		e.Init = func(lat *lbm.Lattice) { lat.SetShearWaveVelocity(eps) }
	}
	return
}

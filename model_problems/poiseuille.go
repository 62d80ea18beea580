package model_problems

import (
	"github.com/gofluids/golbm/lbm"
)

// NewPoiseuilleFlow builds pressure-driven channel flow: stationary north
// and south walls and a pressure difference deltaP imposed across the
// west (inlet) and east (outlet) edges through the periodic-pressure
// condition. p = cs^2 corresponds to rho = 1.
func NewPoiseuilleFlow(nx, ny int, omega float64, steps int, deltaP float64) (e *lbm.Engine, err error) {
	var (
		north, south *lbm.BounceBack
		in, out      *lbm.PeriodicPressure
	)
	pIn := lbm.Cs2 + deltaP/2
	pOut := lbm.Cs2 - deltaP/2

	if north, err = lbm.NewBounceBack(lbm.North); err != nil {
		return
	}
	if south, err = lbm.NewBounceBack(lbm.South); err != nil {
		return
	}
	if in, err = lbm.NewPeriodicPressure(lbm.West, pIn); err != nil {
		return
	}
	if out, err = lbm.NewPeriodicPressure(lbm.East, pOut); err != nil {
		return
	}
	bcs := []lbm.BoundaryCondition{north, south, in, out}
	if e, err = lbm.NewEngine(nx, ny, omega, steps, true, bcs); err != nil {
		return
	}
	e.Name = "poiseuille"
	return
}

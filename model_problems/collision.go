// Package model_problems wires the solver engine into the canonical 2D
// incompressible test problems: a collision-operator check, shear wave
// decay, Couette flow, Poiseuille flow and the lid-driven cavity.
package model_problems

import (
	"github.com/gofluids/golbm/lbm"
)

func periodicBox(order []lbm.Direction) (bcs []lbm.BoundaryCondition) {
	for _, dir := range order {
		bc, err := lbm.NewPeriodic(dir)
		if err != nil {
			panic(err)
		}
		bcs = append(bcs, bc)
	}
	return
}

// NewCollisionOperator builds a fully periodic box with a uniform
// distribution of 1 and a spike of 100 at the center cell in every
// direction, the classic diffusive-spreading check of the collision
// operator.
func NewCollisionOperator(nx, ny int, omega float64, steps int) (e *lbm.Engine, err error) {
	bcs := periodicBox([]lbm.Direction{lbm.North, lbm.East, lbm.South, lbm.West})
	if e, err = lbm.NewEngine(nx, ny, omega, steps, false, bcs); err != nil {
		return
	}
	e.Name = "collision"
	e.Init = func(lat *lbm.Lattice) { lat.SetUniformWithSpike(1, 100) }
	return
}

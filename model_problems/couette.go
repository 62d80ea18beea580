package model_problems

import (
	"github.com/gofluids/golbm/lbm"
)

// NewCouetteFlow builds plane Couette flow: a moving north wall at the
// given tangential velocity, a stationary south wall, periodic east/west.
// The converged horizontal velocity profile between the walls is linear.
func NewCouetteFlow(nx, ny int, omega float64, steps int, vel float64) (e *lbm.Engine, err error) {
	var (
		north *lbm.MovingWall
		south *lbm.BounceBack
	)
	if north, err = lbm.NewMovingWall(lbm.North, vel); err != nil {
		return
	}
	if south, err = lbm.NewBounceBack(lbm.South); err != nil {
		return
	}
	east, _ := lbm.NewPeriodic(lbm.East)
	west, _ := lbm.NewPeriodic(lbm.West)
	bcs := []lbm.BoundaryCondition{north, south, east, west}
	if e, err = lbm.NewEngine(nx, ny, omega, steps, true, bcs); err != nil {
		return
	}
	e.Name = "couette"
	return
}

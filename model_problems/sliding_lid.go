package model_problems

import (
	"github.com/gofluids/golbm/lbm"
)

// NewSlidingLid builds the serial lid-driven cavity: a moving north wall
// and stationary no-slip walls on the other three edges. The decomposed
// variant of the same problem lives in the decomp package.
func NewSlidingLid(nx, ny int, omega float64, steps int, vel float64) (e *lbm.Engine, err error) {
	var (
		north             *lbm.MovingWall
		south, west, east *lbm.BounceBack
	)
	if north, err = lbm.NewMovingWall(lbm.North, vel); err != nil {
		return
	}
	if south, err = lbm.NewBounceBack(lbm.South); err != nil {
		return
	}
	if west, err = lbm.NewBounceBack(lbm.West); err != nil {
		return
	}
	if east, err = lbm.NewBounceBack(lbm.East); err != nil {
		return
	}
	bcs := []lbm.BoundaryCondition{north, south, west, east}
	if e, err = lbm.NewEngine(nx, ny, omega, steps, true, bcs); err != nil {
		return
	}
	e.Name = "sliding_lid"
	return
}

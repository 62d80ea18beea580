package lbm

import (
	"errors"
	"fmt"

	"github.com/gofluids/golbm/utils"
)

// Direction tags the domain edge a boundary condition acts on.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

func (d Direction) valid() bool {
	return d == North || d == South || d == East || d == West
}

var ErrUnsupportedDirection = errors.New("unsupported boundary direction")

// BoundaryCondition mutates the post-streaming distribution at one domain
// edge. Apply is called once per step in caller-supplied order; when corners
// are shared, later entries overwrite earlier corner corrections, so the
// ordering matters and must be preserved.
type BoundaryCondition interface {
	Apply(lat *Lattice)
	Direction() Direction
}

// Periodic is a no-op: periodicity is realized by the streaming step's
// wraparound. It exists to document intent in a boundary list.
type Periodic struct {
	direction Direction
}

func NewPeriodic(dir Direction) (*Periodic, error) {
	if !dir.valid() {
		return nil, fmt.Errorf("periodic: %w: %s", ErrUnsupportedDirection, dir)
	}
	return &Periodic{direction: dir}, nil
}

func (b *Periodic) Direction() Direction { return b.direction }

func (b *Periodic) Apply(lat *Lattice) {}

// BounceBack imposes a no-slip stationary wall by reflecting the three
// inbound distribution components back along their reversed directions. The
// diagonal components are shifted by one cell along the wall to preserve
// tangential alignment.
type BounceBack struct {
	direction Direction
}

func NewBounceBack(dir Direction) (*BounceBack, error) {
	if !dir.valid() {
		return nil, fmt.Errorf("bounce-back: %w: %s", ErrUnsupportedDirection, dir)
	}
	return &BounceBack{direction: dir}, nil
}

func (b *BounceBack) Direction() Direction { return b.direction }

func (b *BounceBack) Apply(lat *Lattice) {
	var (
		nx, ny = lat.Nx, lat.Ny
	)
	switch b.direction {
	case South:
		lat.F[2].SetCol(1, lat.F[4].Col(0))
		lat.F[5].SetCol(1, utils.RollF64(lat.F[7].Col(0), 1))
		lat.F[6].SetCol(1, utils.RollF64(lat.F[8].Col(0), -1))
	case North:
		lat.F[4].SetCol(ny-2, lat.F[2].Col(ny-1))
		lat.F[7].SetCol(ny-2, utils.RollF64(lat.F[5].Col(ny-1), -1))
		lat.F[8].SetCol(ny-2, utils.RollF64(lat.F[6].Col(ny-1), 1))
	case East:
		lat.F[3].SetRow(nx-2, lat.F[1].Row(nx-1))
		lat.F[6].SetRow(nx-2, utils.RollF64(lat.F[8].Row(nx-1), -1))
		lat.F[7].SetRow(nx-2, utils.RollF64(lat.F[5].Row(nx-1), 1))
	case West:
		lat.F[1].SetRow(1, lat.F[3].Row(0))
		lat.F[8].SetRow(1, utils.RollF64(lat.F[6].Row(0), 1))
		lat.F[5].SetRow(1, utils.RollF64(lat.F[7].Row(0), -1))
	}
}

// MovingWall imposes a prescribed tangential wall velocity (a velocity
// Dirichlet condition). Only the north edge is implemented.
type MovingWall struct {
	direction Direction
	V         float64
}

func NewMovingWall(dir Direction, velocity float64) (*MovingWall, error) {
	if dir != North {
		return nil, fmt.Errorf("moving wall: %w: %s", ErrUnsupportedDirection, dir)
	}
	return &MovingWall{direction: dir, V: velocity}, nil
}

func (b *MovingWall) Direction() Direction { return b.direction }

func (b *MovingWall) Apply(lat *Lattice) {
	var (
		j  = lat.Ny - 1
		nx = lat.Nx
	)
	lat.F[5].SetCol(j, utils.RollF64(lat.F[5].Col(j), 1))
	lat.F[6].SetCol(j, utils.RollF64(lat.F[6].Col(j), -1))

	f0, f1, f3 := lat.F[0].Col(j), lat.F[1].Col(j), lat.F[3].Col(j)
	f2, f5, f6 := lat.F[2].Col(j), lat.F[5].Col(j), lat.F[6].Col(j)

	f4 := make([]float64, nx)
	f7 := make([]float64, nx)
	f8 := make([]float64, nx)
	for i := 0; i < nx; i++ {
		// local density from the known post-streaming components
		rho := f0[i] + f1[i] + f3[i] + 2*(f2[i]+f5[i]+f6[i])
		f4[i] = f2[i]
		f7[i] = f5[i] + 0.5*(f1[i]-f3[i]) - 0.5*rho*b.V
		f8[i] = f6[i] - 0.5*(f1[i]-f3[i]) + 0.5*rho*b.V
	}
	lat.F[4].SetCol(j, f4)
	lat.F[7].SetCol(j, f7)
	lat.F[8].SetCol(j, f8)
}

// PeriodicPressure imposes a prescribed pressure at the west or east edge by
// non-equilibrium extrapolation: the boundary distribution is set to the
// equilibrium of the prescribed density plus the non-equilibrium part of the
// opposing interior cell.
type PeriodicPressure struct {
	direction Direction
	Rho       float64
}

func NewPeriodicPressure(dir Direction, pressure float64) (*PeriodicPressure, error) {
	if dir != West && dir != East {
		return nil, fmt.Errorf("periodic-pressure: %w: %s", ErrUnsupportedDirection, dir)
	}
	return &PeriodicPressure{direction: dir, Rho: pressure / Cs2}, nil
}

func (b *PeriodicPressure) Direction() Direction { return b.direction }

func (b *PeriodicPressure) Apply(lat *Lattice) {
	var (
		pos1, pos2 int
	)
	if b.direction == West {
		pos1, pos2 = 0, lat.Nx-2
	} else {
		pos1, pos2 = lat.Nx-1, 1
	}
	feq1 := lat.Equilibrium(utils.NewConstMatrix(lat.Nx, lat.Ny, b.Rho))
	feq2 := lat.EquilibriumTotal()
	for i := 0; i < lat.Nv; i++ {
		row := feq1[i].Row(pos1)
		f2 := lat.F[i].Row(pos2)
		eq2 := feq2[i].Row(pos2)
		for k := range row {
			row[k] += f2[k] - eq2[k]
		}
		lat.F[i].SetRow(pos1, row)
	}
}

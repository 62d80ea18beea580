package lbm

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidOmega  = errors.New("omega must be strictly between 0 and 2")
	ErrInvalidExtent = errors.New("grid extents must be at least 10 in each dimension")
	ErrInvalidSteps  = errors.New("step count must be positive")
)

// MinExtent is the smallest supported grid extent per dimension; streaming
// wraparound needs room for the stencil and the ghost ring.
const MinExtent = 10

// Observer is a read-only consumer of the lattice's density and velocity
// fields. Observe is called once before step 1 (step = 0), once after every
// step, and Finish once after the final step.
type Observer interface {
	Observe(step int, lat *Lattice)
	Finish(lat *Lattice)
}

// Engine runs the LBM update loop on one lattice: streaming, boundary
// application in list order, then BGK relaxation toward equilibrium.
type Engine struct {
	Lat        *Lattice
	Omega      float64
	Steps      int
	Boundaries []BoundaryCondition
	Observers  []Observer
	Init       func(lat *Lattice)
	Verbose    bool
	Timed      bool
	Name       string

	timeLattice time.Duration
	timeTotal   time.Duration
}

// NewEngine validates the run configuration and builds the engine and its
// lattice. All configuration errors surface here, before any step executes.
func NewEngine(nx, ny int, omega float64, steps int, dry bool,
	bcs []BoundaryCondition) (e *Engine, err error) {
	if nx < MinExtent || ny < MinExtent {
		return nil, fmt.Errorf("%w: got %d x %d", ErrInvalidExtent, nx, ny)
	}
	return NewSubgridEngine(nx, ny, omega, steps, dry, bcs)
}

// NewSubgridEngine is NewEngine without the global extent floor. It exists
// for decomposed runs, where a worker's local sub-grid may be smaller than
// MinExtent even though the global grid is not.
func NewSubgridEngine(nx, ny int, omega float64, steps int, dry bool,
	bcs []BoundaryCondition) (e *Engine, err error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("%w: got %d x %d", ErrInvalidExtent, nx, ny)
	}
	if omega <= 0 || omega >= 2 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidOmega, omega)
	}
	if steps <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	e = &Engine{
		Lat:        NewLattice(nx, ny, dry),
		Omega:      omega,
		Steps:      steps,
		Boundaries: bcs,
		Init:       (*Lattice).SetRestingFluid,
	}
	return
}

// Stream shifts each distribution slice by its direction's displacement
// vector, with wraparound at the domain edges.
func (e *Engine) Stream() {
	for i := 0; i < e.Lat.Nv; i++ {
		e.Lat.F[i] = e.Lat.F[i].Roll(C[i][0], C[i][1])
	}
}

// ApplyBoundaries invokes each boundary variant in list order.
func (e *Engine) ApplyBoundaries() {
	for _, b := range e.Boundaries {
		b.Apply(e.Lat)
	}
}

// Collide relaxes the distribution toward its local equilibrium,
// f += omega (feq - f). Mass and momentum are conserved by construction of
// the equilibrium.
func (e *Engine) Collide() {
	feq := e.Lat.EquilibriumTotal()
	for i := 0; i < e.Lat.Nv; i++ {
		e.Lat.F[i].Add(feq[i].Subtract(e.Lat.F[i]).Scale(e.Omega))
	}
}

// Step performs one update: streaming, boundary application, collision.
func (e *Engine) Step() {
	e.Stream()
	e.ApplyBoundaries()
	e.Collide()
}

func (e *Engine) observe(step int) {
	for _, o := range e.Observers {
		o.Observe(step, e.Lat)
	}
}

// Run initializes the distribution and performs Steps update steps,
// notifying observers before the first step, after every step and after the
// final one.
func (e *Engine) Run() {
	e.Init(e.Lat)
	totalStart := time.Now()
	e.timeLattice = 0

	e.observe(0)
	for i := 0; i < e.Steps; i++ {
		if e.Verbose {
			fmt.Printf("\r%s: %d/%d", e.Name, i+1, e.Steps)
		}
		stepStart := time.Now()
		e.Step()
		e.timeLattice += time.Since(stepStart)
		e.observe(i + 1)
	}
	if e.Verbose {
		fmt.Println()
	}
	for _, o := range e.Observers {
		o.Finish(e.Lat)
	}
	e.timeTotal = time.Since(totalStart)
	if e.Timed {
		e.printTiming()
	}
}

func (e *Engine) printTiming() {
	fmt.Printf("Total time: %.2f s\n", e.timeTotal.Seconds())
	fmt.Printf("Total lattice update time: %.2f s\n", e.timeLattice.Seconds())
	tpla := e.timeLattice.Seconds() / float64(e.Steps) * 1000
	fmt.Printf("Avg. time per lattice update: %.4f ms\n", tpla)
	mlups := float64(e.Lat.Nx*e.Lat.Ny*e.Steps) / e.timeLattice.Seconds() / 1.e6
	fmt.Printf("MLUPS: %.2f\n", mlups)
}

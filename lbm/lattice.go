package lbm

import (
	"fmt"
	"math"

	"github.com/gofluids/golbm/utils"
)

// Lattice holds the D2Q9 particle distribution F, one Nx x Ny matrix per
// discrete velocity direction, with rows indexed by x and columns by y.
// When Dry is set, the stored extents are the logical extents plus 2: a
// one-cell ghost ring used by the wall boundary conditions and by the
// decomposed halo exchange.
type Lattice struct {
	Nv, Nx, Ny int
	Dry        bool
	F          [9]utils.Matrix
}

func NewLattice(nx, ny int, dry bool) (lat *Lattice) {
	if nx <= 0 || ny <= 0 {
		panic(fmt.Errorf("lattice extents must be positive, got %d x %d", nx, ny))
	}
	if dry {
		nx += 2
		ny += 2
	}
	lat = &Lattice{
		Nv:  9,
		Nx:  nx,
		Ny:  ny,
		Dry: dry,
	}
	for i := 0; i < lat.Nv; i++ {
		lat.F[i] = utils.NewMatrix(nx, ny)
	}
	return
}

// Density returns the density field rho(x,y) = sum_v F[v](x,y).
func (lat *Lattice) Density() (rho utils.Matrix) {
	rho = lat.F[0].Copy()
	for i := 1; i < lat.Nv; i++ {
		rho.Add(lat.F[i])
	}
	return
}

// Velocity returns the momentum-normalized velocity field. Cells with zero
// density produce NaN/Inf; avoiding them is the caller's responsibility
// (uniform positive initial density).
func (lat *Lattice) Velocity() (ux, uy utils.Matrix) {
	var (
		rhoD = lat.Density().Data()
	)
	ux = utils.NewMatrix(lat.Nx, lat.Ny)
	uy = utils.NewMatrix(lat.Nx, lat.Ny)
	uxD, uyD := ux.Data(), uy.Data()
	for i := 0; i < lat.Nv; i++ {
		cx, cy := float64(C[i][0]), float64(C[i][1])
		fD := lat.F[i].Data()
		for k, val := range fD {
			uxD[k] += val * cx
			uyD[k] += val * cy
		}
	}
	for k := range uxD {
		uxD[k] /= rhoD[k]
		uyD[k] /= rhoD[k]
	}
	return
}

// Equilibrium returns the 9-direction equilibrium distribution for the given
// density field and the lattice's current velocity field, using the standard
// second order expansion
//
//	feq[v] = w[v] rho (1 + 3 c.u + 9/2 (c.u)^2 - 3/2 |u|^2)
func (lat *Lattice) Equilibrium(rho utils.Matrix) (feq [9]utils.Matrix) {
	var (
		ux, uy     = lat.Velocity()
		uxD, uyD   = ux.Data(), uy.Data()
		rhoD       = rho.Data()
		uSq        = make([]float64, len(uxD))
		cu         float64
		cx, cy, wI float64
	)
	for k := range uxD {
		uSq[k] = uxD[k]*uxD[k] + uyD[k]*uyD[k]
	}
	for i := 0; i < lat.Nv; i++ {
		feq[i] = utils.NewMatrix(lat.Nx, lat.Ny)
		feqD := feq[i].Data()
		cx, cy, wI = float64(C[i][0]), float64(C[i][1]), W[i]
		for k := range feqD {
			cu = cx*uxD[k] + cy*uyD[k]
			feqD[k] = wI * rhoD[k] * (1 + 3*cu + 4.5*cu*cu - 1.5*uSq[k])
		}
	}
	return
}

// EquilibriumTotal is the convenience form using the lattice's own density.
func (lat *Lattice) EquilibriumTotal() [9]utils.Matrix {
	return lat.Equilibrium(lat.Density())
}

// Mass returns the total mass sum(F) over all directions and cells.
func (lat *Lattice) Mass() (mass float64) {
	for i := 0; i < lat.Nv; i++ {
		mass += lat.F[i].Sum()
	}
	return
}

// SetRestingFluid initializes F for a fluid at rest with density 1.
func (lat *Lattice) SetRestingFluid() {
	for i := 0; i < lat.Nv; i++ {
		lat.F[i].Scale(0)
	}
	lat.F[0].AddScalar(1)
}

// SetUniformWithSpike sets F[v] = base everywhere and F[v] = spike at the
// central cell, in every direction.
func (lat *Lattice) SetUniformWithSpike(base, spike float64) {
	for i := 0; i < lat.Nv; i++ {
		data := lat.F[i].Data()
		for k := range data {
			data[k] = base
		}
		lat.F[i].Set(lat.Nx/2, lat.Ny/2, spike)
	}
}

// SetShearWaveDensity seeds rho(x) = rho0 + eps sin(2 pi x / Nx) at zero
// velocity.
func (lat *Lattice) SetShearWaveDensity(rho0, eps float64) {
	for i := 0; i < lat.Nv; i++ {
		lat.F[i].Scale(0)
	}
	for i := 0; i < lat.Nx; i++ {
		val := rho0 + eps*math.Sin(2*math.Pi*float64(i)/float64(lat.Nx))
		for j := 0; j < lat.Ny; j++ {
			lat.F[0].Set(i, j, val)
		}
	}
}

// SetShearWaveVelocity seeds ux(y) = eps sin(2 pi y / Ny) at density 1.
func (lat *Lattice) SetShearWaveVelocity(eps float64) {
	for i := 0; i < lat.Nv; i++ {
		lat.F[i].Scale(0)
	}
	for j := 0; j < lat.Ny; j++ {
		vel := eps * math.Sin(2*math.Pi*float64(j)/float64(lat.Ny))
		for i := 0; i < lat.Nx; i++ {
			if vel >= 0 {
				lat.F[1].Set(i, j, vel)
				lat.F[0].Set(i, j, 1-vel)
			} else {
				lat.F[3].Set(i, j, -vel)
				lat.F[0].Set(i, j, 1+vel)
			}
		}
	}
}

package decomp

import (
	"github.com/gofluids/golbm/lbm"
)

// Exchange tags, one per pass. The pass order is fixed: horizontal first,
// then vertical, on every worker, which guarantees every send has a matched
// receive without circular wait.
const (
	tagEast = iota
	tagWest
	tagNorth
	tagSouth
	numTags
)

func packRow(lat *lbm.Lattice, i int) (buf []float64) {
	buf = make([]float64, 0, lat.Nv*lat.Ny)
	for v := 0; v < lat.Nv; v++ {
		buf = append(buf, lat.F[v].Row(i)...)
	}
	return
}

func unpackRow(lat *lbm.Lattice, i int, buf []float64) {
	for v := 0; v < lat.Nv; v++ {
		lat.F[v].SetRow(i, buf[v*lat.Ny:(v+1)*lat.Ny])
	}
}

func packCol(lat *lbm.Lattice, j int) (buf []float64) {
	buf = make([]float64, 0, lat.Nv*lat.Nx)
	for v := 0; v < lat.Nv; v++ {
		buf = append(buf, lat.F[v].Col(j)...)
	}
	return
}

func unpackCol(lat *lbm.Lattice, j int, buf []float64) {
	for v := 0; v < lat.Nv; v++ {
		lat.F[v].SetCol(j, buf[v*lat.Nx:(v+1)*lat.Nx])
	}
}

// Exchange keeps the one-cell ghost halo consistent with the true neighbor
// interiors after a streaming step. Each pass sends the second-from-edge
// interior row or column (all 9 directions, corners included) to the
// Cartesian neighbor on that side and writes the received layer into the
// local edge ghost cells. The topology is periodic in both axes even when
// the global domain has hard walls; the boundary-condition list overrides
// ghost values on real physical edges afterwards.
func Exchange(t Transport, g *CartGrid, rank int, lat *lbm.Lattice) {
	var (
		west, east, south, north = g.Neighbors(rank)
		nx, ny                   = lat.Nx, lat.Ny
	)
	// horizontal: last interior row goes east, ghost row 0 comes from west
	unpackRow(lat, 0, t.Sendrecv(rank, east, west, tagEast, packRow(lat, nx-2)))
	// first interior row goes west, ghost row nx-1 comes from east
	unpackRow(lat, nx-1, t.Sendrecv(rank, west, east, tagWest, packRow(lat, 1)))
	// vertical: last interior column goes north, ghost column 0 from south
	unpackCol(lat, 0, t.Sendrecv(rank, north, south, tagNorth, packCol(lat, ny-2)))
	// first interior column goes south, ghost column ny-1 from north
	unpackCol(lat, ny-1, t.Sendrecv(rank, south, north, tagSouth, packCol(lat, 1)))
}

// Package decomp partitions a global lattice across cooperating workers
// arranged in a 2D Cartesian process grid, keeps their ghost layers
// consistent through a per-step halo exchange, and reassembles the local
// sub-lattices into one global field at the end of a run.
package decomp

import (
	"errors"
	"fmt"
)

var ErrBadDecomposition = errors.New("invalid domain decomposition")

// FindGrid returns the most-square factorization rows x cols = w, with
// rows <= cols on ties and for non-square factor pairs.
func FindGrid(w int) (rows, cols int) {
	rows, cols = 1, w
	best := w - 1
	for b := 2; b*b <= w; b++ {
		if w%b == 0 {
			if diff := w/b - b; diff < best {
				best = diff
				rows, cols = b, w/b
			}
		}
	}
	return
}

// CartGrid maps a linear worker rank to 2D Cartesian coordinates and local
// sub-grid extents. Coordinates are (cx, cy) with cx = rank % Cols and
// cy = rank / Cols; cy = 0 is the global south band, cy = Rows-1 the north.
// The topology is periodic in both axes. CartGrid is a pure description:
// it owns no transport state.
type CartGrid struct {
	Rows, Cols int
	Nx, Ny     int
}

func NewCartGrid(workers, nx, ny int) (g *CartGrid, err error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: worker count %d", ErrBadDecomposition, workers)
	}
	rows, cols := FindGrid(workers)
	g = &CartGrid{Rows: rows, Cols: cols, Nx: nx, Ny: ny}
	for rank := 0; rank < workers; rank++ {
		nxl, nyl := g.LocalExtent(rank)
		if nxl <= 0 || nyl <= 0 {
			return nil, fmt.Errorf("%w: %d x %d grid leaves rank %d with a %d x %d sub-grid",
				ErrBadDecomposition, rows, cols, rank, nxl, nyl)
		}
	}
	return
}

func (g *CartGrid) Size() int { return g.Rows * g.Cols }

func (g *CartGrid) Coords(rank int) (cx, cy int) {
	return rank % g.Cols, rank / g.Cols
}

// Rank wraps coordinates periodically in both axes.
func (g *CartGrid) Rank(cx, cy int) int {
	cx = ((cx % g.Cols) + g.Cols) % g.Cols
	cy = ((cy % g.Rows) + g.Rows) % g.Rows
	return cy*g.Cols + cx
}

// Neighbors returns the four periodic Cartesian neighbor ranks.
func (g *CartGrid) Neighbors(rank int) (west, east, south, north int) {
	cx, cy := g.Coords(rank)
	west = g.Rank(cx-1, cy)
	east = g.Rank(cx+1, cy)
	south = g.Rank(cx, cy-1)
	north = g.Rank(cx, cy+1)
	return
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// LocalExtent returns the worker's interior sub-grid extents, excluding the
// ghost halo. All columns but the last get ceil(Nx/Cols); the last column
// absorbs the remainder, and likewise for rows, so that the union of all
// local extents exactly tiles the global grid.
func (g *CartGrid) LocalExtent(rank int) (nx, ny int) {
	cx, cy := g.Coords(rank)
	bx, by := ceilDiv(g.Nx, g.Cols), ceilDiv(g.Ny, g.Rows)
	nx, ny = bx, by
	if cx == g.Cols-1 {
		nx = g.Nx - (g.Cols-1)*bx
	}
	if cy == g.Rows-1 {
		ny = g.Ny - (g.Rows-1)*by
	}
	return
}

// Offset returns the global coordinates of the worker's interior origin.
func (g *CartGrid) Offset(rank int) (x0, y0 int) {
	cx, cy := g.Coords(rank)
	bx, by := ceilDiv(g.Nx, g.Cols), ceilDiv(g.Ny, g.Rows)
	return cx * bx, cy * by
}

// OnEdge reports whether the worker's sub-grid touches a global physical
// edge: west, east, south, north.
func (g *CartGrid) OnEdge(rank int) (west, east, south, north bool) {
	cx, cy := g.Coords(rank)
	return cx == 0, cx == g.Cols-1, cy == 0, cy == g.Rows-1
}

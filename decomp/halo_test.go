package decomp

import (
	"sync"
	"testing"

	"github.com/gofluids/golbm/lbm"
	"github.com/stretchr/testify/assert"
)

// cellTag encodes (rank, direction, cell) so that ghost provenance is
// checkable after the exchange.
func cellTag(rank, v, i, j int) float64 {
	return float64(rank*100000 + v*10000 + i*100 + j)
}

func fillTagged(lat *lbm.Lattice, rank int) {
	for v := 0; v < lat.Nv; v++ {
		for i := 0; i < lat.Nx; i++ {
			for j := 0; j < lat.Ny; j++ {
				lat.F[v].Set(i, j, cellTag(rank, v, i, j))
			}
		}
	}
}

func TestExchangeTwoWorkers(t *testing.T) {
	// 1 x 2 process grid: horizontal neighbors are each other (twice, via
	// wraparound), vertical neighbors are self
	g, err := NewCartGrid(2, 8, 6)
	assert.NoError(t, err)
	assert.Equal(t, 1, g.Rows)
	assert.Equal(t, 2, g.Cols)

	lats := [2]*lbm.Lattice{}
	for rank := range lats {
		nxl, nyl := g.LocalExtent(rank)
		lats[rank] = lbm.NewLattice(nxl, nyl, true) // stored 6 x 8
		fillTagged(lats[rank], rank)
	}
	nx, ny := lats[0].Nx, lats[0].Ny

	tr := NewChannelTransport(2, numTags)
	var wg sync.WaitGroup
	for rank := 0; rank < 2; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			Exchange(tr, g, rank, lats[rank])
		}(rank)
	}
	wg.Wait()

	for v := 0; v < lats[0].Nv; v++ {
		// west ghost row holds the wrapped neighbor's last interior row
		assert.Equal(t, cellTag(1, v, nx-2, 3), lats[0].F[v].At(0, 3))
		// east ghost row holds that neighbor's first interior row
		assert.Equal(t, cellTag(1, v, 1, 3), lats[0].F[v].At(nx-1, 3))
		// vertical wrap to self: ghost columns mirror own interior columns
		assert.Equal(t, cellTag(0, v, 3, ny-2), lats[0].F[v].At(3, 0))
		assert.Equal(t, cellTag(0, v, 3, 1), lats[0].F[v].At(3, ny-1))
		// corner ghosts carry the diagonal provenance: the vertical pass
		// forwards ghost values freshly written by the horizontal pass
		assert.Equal(t, cellTag(1, v, nx-2, ny-2), lats[0].F[v].At(0, 0))
		assert.Equal(t, cellTag(1, v, 1, 1), lats[0].F[v].At(nx-1, ny-1))
		// interior cells untouched
		assert.Equal(t, cellTag(0, v, 2, 2), lats[0].F[v].At(2, 2))
	}
}

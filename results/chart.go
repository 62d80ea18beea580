package results

import (
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	graphics "github.com/notargets/avs/utils"

	"github.com/gofluids/golbm/lbm"
)

// LiveProfile displays the horizontal-velocity profile along the vertical
// centerline while the solver runs. The window stays open between steps;
// an optional delay slows the animation down.
type LiveProfile struct {
	Enabled bool
	Delay   time.Duration
	YMin    float64
	YMax    float64

	chart    *chart2d.Chart2D
	colorMap *graphics.ColorMap
	once     sync.Once
}

func (p *LiveProfile) Observe(step int, lat *lbm.Lattice) {
	if !p.Enabled {
		return
	}
	p.once.Do(func() {
		p.chart = chart2d.NewChart2D(1280, 1024, 0, float32(lat.Ny-1),
			float32(p.YMin), float32(p.YMax))
		p.colorMap = graphics.NewColorMap(-1, 1, 1)
		go p.chart.Plot()
	})
	ux, _ := lat.Velocity()
	x := make([]float64, lat.Ny)
	y := ux.Row(lat.Nx / 2)
	for j := range x {
		x[j] = float64(j)
	}
	if err := p.chart.AddSeries("u", x, y,
		chart2d.NoGlyph, chart2d.Solid, p.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if p.Delay != 0 {
		time.Sleep(p.Delay)
	}
}

func (p *LiveProfile) Finish(lat *lbm.Lattice) {}

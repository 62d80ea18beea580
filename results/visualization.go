// Package results holds the read-only consumers of the lattice's density
// and velocity fields: image and GIF rendering, tabular data extraction and
// an optional live profile chart. Nothing here feeds back into solver state.
package results

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/crazy3lf/colorconv"

	"github.com/gofluids/golbm/lbm"
	"github.com/gofluids/golbm/utils"
)

// VisConfig selects what gets rendered each step.
type VisConfig struct {
	Density bool
	Flow    bool
	GIF     bool
}

func (c VisConfig) Any() bool { return c.Density || c.Flow }

// Visualization renders per-step density or flow-speed heatmap frames as
// PNG files and optionally assembles them into an animated GIF at the end
// of the run. For dry lattices the ghost ring is trimmed before rendering.
type Visualization struct {
	Folder string
	Conf   VisConfig
	Dry    bool

	frames []*image.Paletted
	delays []int
}

func NewVisualization(folder string, dry bool, conf VisConfig) (v *Visualization, err error) {
	v = &Visualization{Folder: folder, Conf: conf, Dry: dry}
	if conf.Any() {
		if err = os.MkdirAll(filepath.Join(folder, "img"), 0755); err != nil {
			return nil, err
		}
	}
	return
}

func (v *Visualization) Observe(step int, lat *lbm.Lattice) {
	if !v.Conf.Any() {
		return
	}
	img := v.render(lat)
	name := filepath.Join(v.Folder, "img", fmt.Sprintf("%06d.png", step))
	if err := writePNG(name, img); err != nil {
		fmt.Printf("visualization: %s\n", err.Error())
		return
	}
	if v.Conf.GIF {
		v.frames = append(v.frames, img)
		v.delays = append(v.delays, 2)
	}
}

func (v *Visualization) Finish(lat *lbm.Lattice) {
	if !v.Conf.Any() {
		return
	}
	img := v.render(lat)
	name := filepath.Join(v.Folder, "img", "final.png")
	if err := writePNG(name, img); err != nil {
		fmt.Printf("visualization: %s\n", err.Error())
	}
	if v.Conf.GIF {
		if err := v.writeGIF(); err != nil {
			fmt.Printf("visualization: %s\n", err.Error())
		}
	}
}

// field returns the scalar to render, ghost ring trimmed for dry lattices.
func (v *Visualization) field(lat *lbm.Lattice) (field utils.Matrix) {
	if v.Conf.Density {
		field = lat.Density()
	} else {
		ux, uy := lat.Velocity()
		field = ux.ElMul(ux).Add(uy.ElMul(uy)).Apply(math.Sqrt)
	}
	if v.Dry {
		trimmed := utils.NewMatrix(lat.Nx-2, lat.Ny-2)
		for i := 1; i < lat.Nx-1; i++ {
			trimmed.SetRow(i-1, field.Row(i)[1:lat.Ny-1])
		}
		field = trimmed
	}
	return
}

func (v *Visualization) render(lat *lbm.Lattice) (img *image.Paletted) {
	var (
		field      = v.field(lat)
		nx, ny     = field.Dims()
		minV, maxV = field.Min(), field.Max()
	)
	img = image.NewPaletted(image.Rect(0, 0, nx, ny), heatPalette())
	span := maxV - minV
	if span == 0 {
		span = 1
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			val := (field.At(i, j) - minV) / span
			// image origin is top-left; lattice y grows upward
			img.Set(i, ny-1-j, heatColor(val))
		}
	}
	return
}

// heatColor maps [0,1] onto a blue-to-red HSV sweep.
func heatColor(val float64) color.Color {
	hue := 240 * (1 - val)
	r, g, b, _ := colorconv.HSVToRGB(hue, 1, 1)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func heatPalette() (p color.Palette) {
	const size = 256
	p = make(color.Palette, size)
	for i := 0; i < size; i++ {
		p[i] = heatColor(float64(i) / (size - 1))
	}
	return
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return
	}
	defer f.Close()
	return png.Encode(f, img)
}

func (v *Visualization) writeGIF() (err error) {
	name := filepath.Join(v.Folder, filepath.Base(v.Folder)+".gif")
	f, err := os.Create(name)
	if err != nil {
		return
	}
	defer f.Close()
	return gif.EncodeAll(f, &gif.GIF{
		Image: v.frames,
		Delay: v.delays,
	})
}

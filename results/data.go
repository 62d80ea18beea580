package results

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/gofluids/golbm/lbm"
)

// DataConfig selects which traces get appended each step. Points are
// global lattice coordinates.
type DataConfig struct {
	AmplitudeDens  bool
	PointDens      [2]int
	HorizontalDens bool
	VerticalDens   bool
	AmplitudeVel   bool
	PointVel       [2]int
	HorizontalVel  bool
	VerticalVel    bool
}

func (c DataConfig) Any() bool {
	return c.AmplitudeDens || c.HorizontalDens || c.VerticalDens ||
		c.AmplitudeVel || c.HorizontalVel || c.VerticalVel
}

// Data appends density and velocity cuts and point traces to CSV files, one
// record per step. Cuts run through the middle of the domain; signed
// velocity magnitudes carry the sign of the cut-normal component.
type Data struct {
	Folder string
	Conf   DataConfig
}

func NewData(folder string, conf DataConfig) (d *Data, err error) {
	d = &Data{Folder: folder, Conf: conf}
	if conf.Any() {
		if err = os.MkdirAll(filepath.Join(folder, "data"), 0755); err != nil {
			return nil, err
		}
	}
	return
}

func (d *Data) Observe(step int, lat *lbm.Lattice) {
	if d.Conf.AmplitudeDens {
		rho := lat.Density()
		d.appendRecord("density.csv", []float64{rho.At(d.Conf.PointDens[0], d.Conf.PointDens[1])})
	}
	if d.Conf.HorizontalDens {
		rho := lat.Density()
		rec := make([]float64, lat.Nx)
		for i := 0; i < lat.Nx; i++ {
			rec[i] = rho.At(i, lat.Ny/2)
		}
		d.appendRecord("density_h.csv", rec)
	}
	if d.Conf.VerticalDens {
		rho := lat.Density()
		var rec []float64
		for j := 0; j < lat.Ny; j += 2 {
			rec = append(rec, rho.At(lat.Nx/2, j))
		}
		d.appendRecord("density_v.csv", rec)
	}
	if d.Conf.AmplitudeVel {
		ux, uy := lat.Velocity()
		x, y := d.Conf.PointVel[0], d.Conf.PointVel[1]
		d.appendRecord("velocity.csv", []float64{math.Hypot(ux.At(x, y), uy.At(x, y))})
	}
	if d.Conf.HorizontalVel {
		ux, uy := lat.Velocity()
		rec := make([]float64, lat.Nx)
		for i := 0; i < lat.Nx; i++ {
			vel := math.Hypot(ux.At(i, lat.Ny/2), uy.At(i, lat.Ny/2))
			if uy.At(i, lat.Ny/2) < 0 {
				vel = -vel
			}
			rec[i] = vel
		}
		d.appendRecord("velocity_h.csv", rec)
	}
	if d.Conf.VerticalVel {
		ux, uy := lat.Velocity()
		rec := make([]float64, lat.Ny)
		for j := 0; j < lat.Ny; j++ {
			vel := math.Hypot(ux.At(lat.Nx/2, j), uy.At(lat.Nx/2, j))
			if ux.At(lat.Nx/2, j) < 0 {
				vel = -vel
			}
			rec[j] = vel
		}
		d.appendRecord("velocity_v.csv", rec)
	}
}

func (d *Data) Finish(lat *lbm.Lattice) {}

func (d *Data) appendRecord(file string, vals []float64) {
	f, err := os.OpenFile(filepath.Join(d.Folder, "data", file),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("data: %s\n", err.Error())
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	rec := make([]string, len(vals))
	for i, v := range vals {
		rec[i] = fmt.Sprintf("%g", v)
	}
	if err = w.Write(rec); err != nil {
		fmt.Printf("data: %s\n", err.Error())
		return
	}
	w.Flush()
}

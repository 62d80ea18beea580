package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense Nr x Nc matrix of float64, stored row-major. It wraps
// gonum's mat.Dense and adds the chainable in-place operations used by the
// solver hot loop.
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

func NewConstMatrix(nr, nc int, val float64) (R Matrix) {
	R = NewMatrix(nr, nc)
	data := R.Data()
	for i := range data {
		data[i] = val
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Set(i, j int, val float64) { m.M.Set(i, j, val) }

// Data exposes the backing row-major slice.
func (m Matrix) Data() []float64 { return m.M.RawMatrix().Data }

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		data   = m.Data()
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	var (
		dataM = m.Data()
		dataA = A.Data()
	)
	for i, val := range dataA {
		dataM[i] += val
	}
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix { // Changes receiver
	var (
		dataM = m.Data()
		dataA = A.Data()
	)
	for i, val := range dataA {
		dataM[i] -= val
	}
	return m
}

func (m Matrix) ElMul(A Matrix) Matrix { // Changes receiver
	var (
		dataM = m.Data()
		dataA = A.Data()
	)
	for i, val := range dataA {
		dataM[i] *= val
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	var (
		data = m.Data()
	)
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) AddScalar(a float64) Matrix { // Changes receiver
	var (
		data = m.Data()
	)
	for i := range data {
		data[i] += a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	var (
		data = m.Data()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

func (m Matrix) Max() (max float64) {
	var (
		data = m.Data()
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) Min() (min float64) {
	var (
		data = m.Data()
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Sum() (sum float64) {
	var (
		data = m.Data()
	)
	for _, val := range data {
		sum += val
	}
	return
}

// Row returns a copy of row i.
func (m Matrix) Row(i int) (r []float64) {
	var (
		_, nc = m.Dims()
		data  = m.Data()
	)
	r = make([]float64, nc)
	copy(r, data[i*nc:(i+1)*nc])
	return
}

// Col returns a copy of column j.
func (m Matrix) Col(j int) (c []float64) {
	var (
		nr, nc = m.Dims()
		data   = m.Data()
	)
	c = make([]float64, nr)
	for i := 0; i < nr; i++ {
		c[i] = data[i*nc+j]
	}
	return
}

func (m Matrix) SetRow(i int, vals []float64) Matrix { // Changes receiver
	var (
		_, nc = m.Dims()
		data  = m.Data()
	)
	if len(vals) != nc {
		panic(fmt.Errorf("SetRow: len(vals) = %d, nc = %d", len(vals), nc))
	}
	copy(data[i*nc:(i+1)*nc], vals)
	return m
}

func (m Matrix) SetCol(j int, vals []float64) Matrix { // Changes receiver
	var (
		nr, nc = m.Dims()
		data   = m.Data()
	)
	if len(vals) != nr {
		panic(fmt.Errorf("SetCol: len(vals) = %d, nr = %d", len(vals), nr))
	}
	for i := 0; i < nr; i++ {
		data[i*nc+j] = vals[i]
	}
	return m
}

// Roll returns a copy of m circularly shifted by di rows and dj columns,
// so that R[(i+di) mod nr, (j+dj) mod nc] = m[i, j].
func (m Matrix) Roll(di, dj int) (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.Data()
	)
	R = NewMatrix(nr, nc)
	dataR := R.Data()
	di = ((di % nr) + nr) % nr
	dj = ((dj % nc) + nc) % nc
	for i := 0; i < nr; i++ {
		iR := i + di
		if iR >= nr {
			iR -= nr
		}
		for j := 0; j < nc; j++ {
			jR := j + dj
			if jR >= nc {
				jR -= nc
			}
			dataR[iR*nc+jR] = data[i*nc+j]
		}
	}
	return
}

// RollF64 circularly shifts v by s places, so that R[(i+s) mod n] = v[i].
func RollF64(v []float64, s int) (r []float64) {
	var (
		n = len(v)
	)
	r = make([]float64, n)
	s = ((s % n) + n) % n
	for i, val := range v {
		ir := i + s
		if ir >= n {
			ir -= n
		}
		r[ir] = val
	}
	return
}

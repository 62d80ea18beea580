package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/gofluids/golbm/InputParameters"
)

func TestParseSimParameters(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
Mode: couette # collision, swdDensity, swdVelocity, couette, poiseuille, slidingLid
Nx: 120
Ny: 80
Omega: 1.2
Steps: 2000
WallVelocity: 0.1
PressureDelta: 0.005
Rho0: 1.0
Epsilon: 0.01
Flow: true
GIF: true
`)
	var input InputParameters.SimParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Mode, "couette")
	assert.Equal(t, input.Nx, 120)
	assert.Equal(t, input.Ny, 80)
	assert.Equal(t, input.Omega, 1.2)
	assert.Equal(t, input.WallVelocity, 0.1)
	assert.Equal(t, input.Flow, true)
	assert.Equal(t, input.Density, false)
	input.Print()
	assert.Equal(t, input.Steps, 2000)
}

func TestBuildEngine(t *testing.T) {
	sp := &InputParameters.SimParameters{
		Mode: "poiseuille", Nx: 30, Ny: 30, Omega: 1.2, Steps: 100,
		PressureDelta: 0.01, Rho0: 1, Epsilon: 0.01,
	}
	e, err := buildEngine(sp)
	if err != nil {
		panic(err)
	}
	assert.Equal(t, e.Name, "poiseuille")

	sp.Mode = "noSuchMode"
	_, err = buildEngine(sp)
	assert.Equal(t, err != nil, true)
}

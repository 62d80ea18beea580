package model_problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCouetteLinearProfile(t *testing.T) {
	// plane Couette converges to a linear profile between the stationary
	// bottom wall and the moving lid
	var (
		n     = 30
		vel   = 0.2
		omega = 0.5
		steps = 4000
	)
	e, err := NewCouetteFlow(n, n, omega, steps, vel)
	assert.NoError(t, err)
	e.Run()

	ux, _ := e.Lat.Velocity()
	// fluid cells sit at columns 1..n between the ghost walls
	profile := ux.Row(5)[1 : n+1]
	lo, hi := profile[0], profile[n-1]
	assert.Greater(t, hi, lo)
	assert.Less(t, hi, vel)
	for j := 0; j < n; j++ {
		want := lo + (hi-lo)*float64(j)/float64(n-1)
		assert.InDelta(t, want, profile[j], 5e-3, "j=%d", j)
	}
}

func TestCollisionOperatorConservesMass(t *testing.T) {
	e, err := NewCollisionOperator(20, 20, 1.0, 50)
	assert.NoError(t, err)
	e.Run()
	// SetUniformWithSpike(1, 100): base mass plus the extra spike mass
	want := float64(9*20*20) + 9*99
	assert.InDelta(t, want, e.Lat.Mass(), 1e-9)
}

func TestShearWaveEngines(t *testing.T) {
	// density seeding starts at rest, velocity seeding at unit density
	{
		e, err := NewShearWaveDecay(30, 30, 1.2, 10, 1, 0.01, true)
		assert.NoError(t, err)
		assert.Equal(t, "swd_dens", e.Name)
		e.Init(e.Lat)
		ux, uy := e.Lat.Velocity()
		assert.Equal(t, 0., ux.Max())
		assert.Equal(t, 0., uy.Max())
	}
	{
		e, err := NewShearWaveDecay(30, 30, 1.2, 10, 1, 0.1, false)
		assert.NoError(t, err)
		assert.Equal(t, "swd_vel", e.Name)
		e.Init(e.Lat)
		rho := e.Lat.Density()
		assert.InDelta(t, 1., rho.Min(), 1e-12)
		assert.InDelta(t, 1., rho.Max(), 1e-12)
	}
}

func TestPoiseuilleFlowDirection(t *testing.T) {
	// a positive pressure difference drives flow from inlet to outlet with
	// the maximum on the channel centerline
	e, err := NewPoiseuilleFlow(30, 30, 1.2, 2000, 0.002)
	assert.NoError(t, err)
	e.Run()

	ux, _ := e.Lat.Velocity()
	profile := ux.Row(e.Lat.Nx / 2)[1:31]
	mid, edge := profile[15], profile[0]
	assert.Greater(t, mid, 0.)
	assert.Greater(t, mid, edge)
	// profile symmetric about the centerline
	for j := 0; j < 15; j++ {
		assert.InDelta(t, profile[j], profile[29-j], 1e-3, "j=%d", j)
	}
}

func TestSlidingLidSetup(t *testing.T) {
	e, err := NewSlidingLid(30, 30, 1.2, 10, 0.1)
	assert.NoError(t, err)
	assert.Equal(t, "sliding_lid", e.Name)
	assert.Len(t, e.Boundaries, 4)
	assert.True(t, e.Lat.Dry)
	// ghost ring on both axes
	assert.Equal(t, 32, e.Lat.Nx)
	assert.Equal(t, 32, e.Lat.Ny)
}

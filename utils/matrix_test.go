package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Add, Subtract, Scale are in-place and chainable
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		A := NewConstMatrix(2, 3, 1)
		M.Add(A).Scale(2)
		assert.Equal(t, []float64{4, 6, 8, 10, 12, 14}, M.Data())
		M.Subtract(A)
		assert.Equal(t, []float64{3, 5, 7, 9, 11, 13}, M.Data())
	}
	// Copy does not alias
	{
		M := NewConstMatrix(2, 2, 1)
		C := M.Copy()
		C.Scale(3)
		assert.Equal(t, 4., M.Sum())
		assert.Equal(t, 12., C.Sum())
	}
	// Min, Max, Sum
	{
		M := NewMatrix(2, 2, []float64{-1, 2, 0.5, 7})
		assert.Equal(t, -1., M.Min())
		assert.Equal(t, 7., M.Max())
		assert.Equal(t, 8.5, M.Sum())
	}
	// Row / Col accessors
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1))
		assert.Equal(t, []float64{2, 5}, M.Col(1))
		M.SetCol(0, []float64{9, 9})
		assert.Equal(t, []float64{9, 2, 3, 9, 5, 6}, M.Data())
		M.SetRow(0, []float64{0, 0, 0})
		assert.Equal(t, []float64{0, 0, 0, 9, 5, 6}, M.Data())
	}
}

func TestRoll(t *testing.T) {
	// Row shift wraps the last row to the front
	{
		M := NewMatrix(3, 2, []float64{
			1, 2,
			3, 4,
			5, 6,
		})
		R := M.Roll(1, 0)
		assert.Equal(t, []float64{5, 6, 1, 2, 3, 4}, R.Data())
		// the receiver is untouched
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, M.Data())
	}
	// Negative and combined shifts
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		assert.Equal(t, []float64{2, 1, 4, 3}, M.Roll(0, -1).Data())
		assert.Equal(t, []float64{4, 3, 2, 1}, M.Roll(1, 1).Data())
		// full rotation is the identity
		assert.Equal(t, M.Data(), M.Roll(2, -2).Data())
	}
	// Vector roll
	{
		v := []float64{1, 2, 3, 4}
		assert.Equal(t, []float64{4, 1, 2, 3}, RollF64(v, 1))
		assert.Equal(t, []float64{2, 3, 4, 1}, RollF64(v, -1))
		assert.Equal(t, v, RollF64(v, 4))
	}
}

package tridiagonal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/hyper1d/utils"
)

func TestSolveIdentity(t *testing.T) {
	// sub=0, diag=1, super=0 must reproduce the right hand side
	n := 6
	d := utils.NewVector(n, []float64{3, 1, 4, 1, 5, 9})
	U, err := Solve(
		utils.NewVectorConstant(n, 0),
		utils.NewVectorConstant(n, 1),
		utils.NewVectorConstant(n, 0),
		d, d.Copy())
	assert.NoError(t, err)
	assert.Equal(t, d.RawVector().Data, U.RawVector().Data)
}

func TestSolveResidual(t *testing.T) {
	// Diagonally dominant system, verified against the row equations
	n := 7
	sub := utils.NewVectorConstant(n, -1)
	diag := utils.NewVectorConstant(n, 4)
	super := utils.NewVectorConstant(n, -1)
	d := utils.NewVector(n, []float64{0, 1, 2, 3, 2, 1, 0})
	u := utils.NewVectorConstant(n, 0)
	u.SetVec(0, 1)
	u.SetVec(n-1, -1)

	U, err := Solve(sub, diag, super, d, u)
	assert.NoError(t, err)

	// Boundary values come from the initial buffer
	assert.Equal(t, 1., U.AtVec(0))
	assert.Equal(t, -1., U.AtVec(n-1))
	for i := 1; i < n-1; i++ {
		res := -U.AtVec(i-1) + 4*U.AtVec(i) - U.AtVec(i+1) - d.AtVec(i)
		assert.True(t, math.Abs(res) < 1.e-12)
	}
}

func TestSolveInputsNotMutated(t *testing.T) {
	n := 5
	d := utils.NewVector(n, []float64{1, 2, 3, 4, 5})
	u := utils.NewVector(n, []float64{5, 4, 3, 2, 1})
	_, err := Solve(
		utils.NewVectorConstant(n, -1),
		utils.NewVectorConstant(n, 3),
		utils.NewVectorConstant(n, -1),
		d, u)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, d.RawVector().Data)
	assert.Equal(t, []float64{5, 4, 3, 2, 1}, u.RawVector().Data)
}

func TestSolveBadLengths(t *testing.T) {
	_, err := Solve(
		utils.NewVectorConstant(4, 0),
		utils.NewVectorConstant(5, 1),
		utils.NewVectorConstant(5, 0),
		utils.NewVectorConstant(5, 0),
		utils.NewVectorConstant(5, 0))
	assert.Error(t, err)

	_, err = Solve(
		utils.NewVectorConstant(2, 0),
		utils.NewVectorConstant(2, 1),
		utils.NewVectorConstant(2, 0),
		utils.NewVectorConstant(2, 0),
		utils.NewVectorConstant(2, 0))
	assert.Error(t, err)
}

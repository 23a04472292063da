package FD1D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/hyper1d/limiters"
	"github.com/notargets/hyper1d/utils"
)

func TestFirstOrderTVDReducesToUpwind(t *testing.T) {
	// With all-positive state values alpha > 0 everywhere and the
	// limiter terms reduce the update to backward flux differencing
	Uo := utils.NewVector(6, []float64{1, 2, 3, 4, 5, 6})
	U, err := FirstOrderTVD(InviscidBurgers, Uo, 0.1)
	assert.NoError(t, err)
	ref, err := ExplicitFirstUpwind(InviscidBurgers, Uo, 0.1, 0)
	assert.NoError(t, err)
	for i := 0; i < 6; i++ {
		assert.True(t, near(ref.AtVec(i), U.AtVec(i)), "node %d", i)
	}
}

func TestFirstOrderTVDModels(t *testing.T) {
	Uo := utils.NewVector(6, []float64{1, 2, 3, 4, 5, 6})
	_, err := FirstOrderTVD(LinearWave, Uo, 0.1)
	assert.ErrorIs(t, err, ErrUnsupportedModelForScheme)
	_, err = FirstOrderTVD(ViscousBurgers, Uo, 0.1)
	assert.NoError(t, err)
}

func TestFirstOrderTVDMonotone(t *testing.T) {
	// Monotone input stays monotone: no new extrema between the
	// pre-existing minimum and maximum
	Uo := utils.NewVector(8, []float64{0, 1, 2, 3, 4, 5, 6, 7})
	U, err := FirstOrderTVD(InviscidBurgers, Uo, 0.1)
	assert.NoError(t, err)
	for i := 1; i < U.Len(); i++ {
		assert.True(t, U.AtVec(i) >= U.AtVec(i-1)-1e-12, "node %d", i)
	}
	assert.True(t, U.Min() >= Uo.Min())
	assert.True(t, U.Max() <= Uo.Max())
}

func TestSecondOrderTVDLimiterValidation(t *testing.T) {
	Uo := utils.NewVector(8, []float64{0, 1, 2, 3, 4, 5, 6, 7})
	_, err := SecondOrderTVD(InviscidBurgers, Uo, 0.1, 0, "No-Such-Limiter", "G1", 0.1)
	assert.ErrorIs(t, err, ErrInvalidOption)
	_, err = SecondOrderTVD(InviscidBurgers, Uo, 0.1, 0, limiters.HartenYeeUpwind, "G9", 0.1)
	assert.ErrorIs(t, err, ErrInvalidOption)
	_, err = SecondOrderTVD(LinearWave, Uo, 0.1, 0, limiters.HartenYeeUpwind, "G1", 0.1)
	assert.ErrorIs(t, err, ErrUnsupportedModelForScheme)
}

func TestSecondOrderTVDInteriorBand(t *testing.T) {
	// The five node stencil leaves two untouched layers on each side
	Uo := utils.NewVector(8, []float64{0, 1, 2, 3, 4, 5, 6, 7})
	U, err := SecondOrderTVD(InviscidBurgers, Uo, 0.1, 0, limiters.HartenYeeUpwind, "G1", 1e-8)
	assert.NoError(t, err)
	assert.Equal(t, 0., U.AtVec(0))
	assert.Equal(t, 1., U.AtVec(1))
	assert.Equal(t, 6., U.AtVec(6))
	assert.Equal(t, 7., U.AtVec(7))
}

func TestSecondOrderTVDMonotone(t *testing.T) {
	Uo := utils.NewVector(8, []float64{0, 1, 2, 3, 4, 5, 6, 7})
	for _, fn := range limiters.FunctionOptions() {
		U, err := SecondOrderTVD(InviscidBurgers, Uo, 0.05, 0, fn, "G1", 1e-8)
		assert.NoError(t, err, fn)
		assert.True(t, U.Min() >= Uo.Min()-1e-12, fn)
		assert.True(t, U.Max() <= Uo.Max()+1e-12, fn)
	}
}

func TestTVDUniformStateInvariant(t *testing.T) {
	const k = 4.0
	Uo := utils.NewVectorConstant(9, k)
	U, err := FirstOrderTVD(InviscidBurgers, Uo, 0.5)
	assert.NoError(t, err)
	for i := 0; i < U.Len(); i++ {
		assert.True(t, near(k, U.AtVec(i)))
	}
	for _, fn := range limiters.FunctionOptions() {
		for _, lim := range limiters.LimiterOptions() {
			U, err = SecondOrderTVD(ViscousBurgers, Uo, 0.5, 0.1, fn, lim, 0.1)
			assert.NoError(t, err, fn+"/"+lim)
			for i := 0; i < U.Len(); i++ {
				assert.True(t, near(k, U.AtVec(i)), "%s/%s node %d", fn, lim, i)
			}
		}
	}
}

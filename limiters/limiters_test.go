package limiters

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/hyper1d/utils"
)

func burgersFlux(U utils.Vector) utils.Vector {
	return U.Copy().Apply(func(u float64) float64 { return 0.5 * u * u })
}

func TestOptionLists(t *testing.T) {
	assert.Contains(t, FunctionOptions(), HartenYeeUpwind)
	assert.Contains(t, FunctionOptions(), DavisYeeSymmetric)
	assert.Len(t, FunctionOptions(), 4)
	assert.Equal(t, []string{"G1", "G2", "G3", "G4", "G5"}, LimiterOptions())
}

func TestUnknownOptions(t *testing.T) {
	U := utils.NewVectorConstant(7, 1)
	E := burgersFlux(U)
	_, _, err := CalculateTVD(3, U, E, 0.1, 0.5, "G1", "No-Such-Function")
	assert.ErrorIs(t, err, ErrUnknownOption)
	_, _, err = CalculateTVD(3, U, E, 0.1, 0.5, "G9", HartenYeeUpwind)
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestUniformStateGivesZeroCorrection(t *testing.T) {
	// All face differences vanish, so every limiter family must
	// return a zero correction at every face.
	U := utils.NewVectorConstant(7, 2)
	E := burgersFlux(U)
	for _, fn := range FunctionOptions() {
		for _, lim := range LimiterOptions() {
			phiPlus, phiMinus, err := CalculateTVD(3, U, E, 0.1, 0.5, lim, fn)
			assert.NoError(t, err)
			assert.Equal(t, 0., phiPlus, fn+"/"+lim)
			assert.Equal(t, 0., phiMinus, fn+"/"+lim)
		}
	}
}

func TestMinmod(t *testing.T) {
	assert.Equal(t, 0., minmod(-1, 2))
	assert.Equal(t, 0., minmod(0, 2))
	assert.Equal(t, 1., minmod(1, 2))
	assert.Equal(t, -1., minmod(-1, -2))
	assert.Equal(t, 2., minmod(3, 2))
}

func TestEntropyCorrection(t *testing.T) {
	eps := 0.1
	assert.Equal(t, 2., psi(2, eps))
	assert.Equal(t, 2., psi(-2, eps))
	// Below the threshold psi is smoothed and positive
	assert.True(t, psi(0.01, eps) > 0)
	assert.InDelta(t, eps/2, psi(0, eps), 1e-14)
}

func TestHartenYeeSmoothMonotone(t *testing.T) {
	// On linear monotone data the minmod limiter keeps the face
	// correction equal to the pure upwind one: sigma*(2d) - psi(alpha)*d
	// with gamma = 0, so the term stays bounded by |alpha|*|d|.
	U := utils.NewVector(7, []float64{1, 2, 3, 4, 5, 6, 7})
	E := burgersFlux(U)
	phiPlus, phiMinus, err := CalculateTVD(3, U, E, 1e-8, 0.1, "G1", HartenYeeUpwind)
	assert.NoError(t, err)
	assert.True(t, math.Abs(phiPlus) <= 4.5+1e-12)  // alpha(i+1/2)=4.5, |d|=1
	assert.True(t, math.Abs(phiMinus) <= 3.5+1e-12) // alpha(i-1/2)=3.5
}

package FD1D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/hyper1d/utils"
)

func TestBTCSWave(t *testing.T) {
	Uo := utils.NewVector(5, []float64{0, 1, 2, 1, 0})
	U, err := EulersBTCS(LinearWave, Uo, 0.5, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0., U.AtVec(0))
	assert.Equal(t, 0., U.AtVec(4))
	// Interior rows satisfy cc*U[i-1] - U[i] - cc*U[i+1] = -Uo[i]
	cc := 0.25
	for i := 1; i < 4; i++ {
		res := cc*U.AtVec(i-1) - U.AtVec(i) - cc*U.AtVec(i+1) + Uo.AtVec(i)
		assert.True(t, near(0, res), "row %d residual %v", i, res)
	}
	// Input untouched
	assert.Equal(t, []float64{0, 1, 2, 1, 0}, Uo.RawVector().Data)
}

func TestBTCSModels(t *testing.T) {
	Uo := utils.NewVector(5, []float64{0, 1, 2, 1, 0})
	_, err := EulersBTCS(InviscidBurgers, Uo, 0.5, 0)
	assert.ErrorIs(t, err, ErrUnsupportedModelForScheme)
	_, err = EulersBTCS(ViscousBurgers, Uo, 0.5, 0.1)
	assert.NoError(t, err)
}

func TestCrankNicolsonWave(t *testing.T) {
	Uo := utils.NewVector(5, []float64{0, 1, 2, 1, 0})
	U, err := CrankNicolson(LinearWave, Uo, 0.5)
	assert.NoError(t, err)
	assert.Equal(t, 0., U.AtVec(0))
	assert.Equal(t, 0., U.AtVec(4))
	// Interior rows: cc*U[i-1] - U[i] - cc*U[i+1] = -Uo[i] + cc*(Uo[i+1]-Uo[i-1])
	cc := 0.125
	for i := 1; i < 4; i++ {
		lhs := cc*U.AtVec(i-1) - U.AtVec(i) - cc*U.AtVec(i+1)
		rhs := -Uo.AtVec(i) + cc*(Uo.AtVec(i+1)-Uo.AtVec(i-1))
		assert.True(t, near(lhs, rhs), "row %d", i)
	}

	_, err = CrankNicolson(InviscidBurgers, Uo, 0.5)
	assert.ErrorIs(t, err, ErrUnsupportedModelForScheme)
}

func TestBeamAndWarming(t *testing.T) {
	Uo := utils.NewVector(5, []float64{1, 2, 3, 2, 1})
	U, err := BeamAndWarming(InviscidBurgers, Uo, 0.4)
	assert.NoError(t, err)
	assert.Equal(t, 1., U.AtVec(0))
	assert.Equal(t, 1., U.AtVec(4))

	_, err = BeamAndWarming(LinearWave, Uo, 0.4)
	assert.ErrorIs(t, err, ErrUnsupportedModelForScheme)
}

func TestBTBCSAccuracyOrders(t *testing.T) {
	Uo := utils.NewVector(6, []float64{1, 2, 3, 3, 2, 1})
	var prev utils.Vector
	for _, acc := range []AccuracyOrder{FirstOrder, SecondOrder, ThirdOrder} {
		U, err := BTBCS(ViscousBurgers, Uo, 0.2, 0.1, acc)
		assert.NoError(t, err, acc.String())
		assert.Equal(t, 1., U.AtVec(0))
		assert.Equal(t, 1., U.AtVec(5))
		if prev.V != nil {
			// Different weight tables produce different interiors
			assert.False(t, near(prev.AtVec(2), U.AtVec(2)), acc.String())
		}
		prev = U
	}

	_, err := BTBCS(ViscousBurgers, Uo, 0.2, 0.1, AccuracyOrder(9))
	assert.ErrorIs(t, err, ErrInvalidOption)
	_, err = BTBCS(LinearWave, Uo, 0.2, 0.1, FirstOrder)
	assert.ErrorIs(t, err, ErrUnsupportedModelForScheme)
	_, err = BTBCS(InviscidBurgers, Uo, 0.2, 0.1, FirstOrder)
	assert.ErrorIs(t, err, ErrUnsupportedModelForScheme)
}

// A spatially uniform state is a fixed point of every implicit scheme.
func TestImplicitUniformStateInvariant(t *testing.T) {
	const k = 2.5
	Uo := utils.NewVectorConstant(8, k)
	cases := map[string]func() (utils.Vector, error){
		"btcs-wave":    func() (utils.Vector, error) { return EulersBTCS(LinearWave, Uo, 0.5, 0) },
		"btcs-viscous": func() (utils.Vector, error) { return EulersBTCS(ViscousBurgers, Uo, 0.5, 0.1) },
		"crank-nicolson": func() (utils.Vector, error) {
			return CrankNicolson(LinearWave, Uo, 0.5)
		},
		"beam-warming": func() (utils.Vector, error) { return BeamAndWarming(InviscidBurgers, Uo, 0.5) },
		"btbcs-first":  func() (utils.Vector, error) { return BTBCS(ViscousBurgers, Uo, 0.5, 0.1, FirstOrder) },
		"btbcs-second": func() (utils.Vector, error) { return BTBCS(ViscousBurgers, Uo, 0.5, 0.1, SecondOrder) },
		"btbcs-third":  func() (utils.Vector, error) { return BTBCS(ViscousBurgers, Uo, 0.5, 0.1, ThirdOrder) },
	}
	for name, f := range cases {
		U, err := f()
		assert.NoError(t, err, name)
		for i := 0; i < U.Len(); i++ {
			assert.True(t, near(k, U.AtVec(i)), "%s node %d: got %v", name, i, U.AtVec(i))
		}
	}
}

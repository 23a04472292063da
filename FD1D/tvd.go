package FD1D

import (
	"fmt"
	"math"

	"github.com/notargets/hyper1d/limiters"
	"github.com/notargets/hyper1d/utils"
)

// FirstOrderTVD advances the Burgers equation one time level with the
// first order total variation diminishing scheme of Hoffmann Vol. 1,
// equations 6-117 to 6-120. The local characteristic speeds alpha are
// flux differences over state differences, falling back to the nodal
// state where the state difference vanishes. Wave model unsupported.
func FirstOrderTVD(model ModelKind, Uo utils.Vector, courant float64) (utils.Vector, error) {
	const scheme = "FirstOrderTVD"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	if model != InviscidBurgers && model != ViscousBurgers {
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	var (
		n  = Uo.Len()
		uo = Uo.RawVector().Data
		U  = Uo.Copy()
		u  = U.RawVector().Data
		e  = Flux(Uo).RawVector().Data
	)
	for i := 1; i < n-1; i++ {
		var (
			dUPlus   = uo[i+1] - uo[i]
			dUMinus  = uo[i] - uo[i-1]
			alphaP   = faceJacobian(e[i+1], e[i], uo[i+1], uo[i], uo[i])
			alphaM   = faceJacobian(e[i], e[i-1], uo[i], uo[i-1], uo[i])
			phiPlus  = math.Abs(alphaP) * dUPlus
			phiMinus = math.Abs(alphaM) * dUMinus
		)
		utemp := uo[i] - 0.5*courant*(e[i+1]-e[i-1])
		u[i] = utemp + 0.5*courant*(phiPlus-phiMinus)
	}
	return U, nil
}

// SecondOrderTVD advances the Burgers equation one time level with a
// second order TVD scheme, delegating the face correction terms to the
// selected limiter function and strategy. Because the limiter stencil
// reaches two nodes each way, only nodes 2..N-3 are updated; the two
// outermost layers on each side are left to boundary handling. The
// viscous variant adds the central diffusion term scaled by diffX.
func SecondOrderTVD(model ModelKind, Uo utils.Vector, courant, diffX float64,
	limiterFunc, limiter string, eps float64) (utils.Vector, error) {
	const scheme = "SecondOrderTVD"
	if err := checkState(scheme, Uo, 5); err != nil {
		return utils.Vector{}, err
	}
	if model != InviscidBurgers && model != ViscousBurgers {
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	if !validLimiterFunc(limiterFunc) {
		return utils.Vector{}, fmt.Errorf("%s: limiter function %q is not one of %v: %w",
			scheme, limiterFunc, limiters.FunctionOptions(), ErrInvalidOption)
	}
	var (
		n  = Uo.Len()
		uo = Uo.RawVector().Data
		U  = Uo.Copy()
		u  = U.RawVector().Data
		E  = Flux(Uo)
		e  = E.RawVector().Data
	)
	for i := 2; i < n-2; i++ {
		phiPlus, phiMinus, err := limiters.CalculateTVD(i, Uo, E, eps, courant, limiter, limiterFunc)
		if err != nil {
			return utils.Vector{}, fmt.Errorf("%s: %s: %w", scheme, err, ErrInvalidOption)
		}
		// Face fluxes, equations 6-124 and 6-125
		hPlus := 0.5 * (e[i+1] + e[i] + phiPlus)
		hMinus := 0.5 * (e[i] + e[i-1] + phiMinus)
		var diffusion float64
		if model == ViscousBurgers {
			diffusion = diffX * (uo[i+1] - 2.0*uo[i] + uo[i-1])
		}
		u[i] = uo[i] - courant*(hPlus-hMinus) + diffusion
	}
	return U, nil
}

func validLimiterFunc(name string) bool {
	for _, opt := range limiters.FunctionOptions() {
		if name == opt {
			return true
		}
	}
	return false
}

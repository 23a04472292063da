package FD1D

import (
	"github.com/notargets/hyper1d/utils"
)

// ExplicitFirstUpwind advances Uo one time level with first order
// upwind differencing. For the wave model the stencil side follows the
// sign of the constant speed a through a blended expression, so there
// is no per-node branch; for inviscid Burgers the backward flux
// difference is used.
func ExplicitFirstUpwind(model ModelKind, Uo utils.Vector, courant, a float64) (utils.Vector, error) {
	const scheme = "ExplicitFirstUpwind"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	var (
		n  = Uo.Len()
		uo = Uo.RawVector().Data
		U  = Uo.Copy()
		u  = U.RawVector().Data
	)
	switch model {
	case LinearWave:
		positiveA := 1 + signum(a)
		negativeA := 1 - signum(a)
		for i := 1; i < n-1; i++ {
			u[i] = uo[i] -
				0.5*courant*positiveA*(uo[i]-uo[i-1]) -
				0.5*courant*negativeA*(uo[i+1]-uo[i])
		}
	case InviscidBurgers:
		e := Flux(Uo).RawVector().Data
		for i := 1; i < n-1; i++ {
			u[i] = uo[i] - courant*(e[i]-e[i-1])
		}
	default:
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	return U, nil
}

// Lax advances Uo one time level with the dissipative Lax method,
// replacing the nodal value by its neighbor average.
func Lax(model ModelKind, Uo utils.Vector, courant float64) (utils.Vector, error) {
	const scheme = "Lax"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	var (
		n  = Uo.Len()
		uo = Uo.RawVector().Data
		U  = Uo.Copy()
		u  = U.RawVector().Data
	)
	switch model {
	case LinearWave:
		for i := 1; i < n-1; i++ {
			u[i] = 0.5*(uo[i+1]+uo[i-1]) - 0.5*courant*(uo[i+1]-uo[i-1])
		}
	case InviscidBurgers:
		e := Flux(Uo).RawVector().Data
		for i := 1; i < n-1; i++ {
			u[i] = 0.5*(uo[i+1]+uo[i-1]) - 0.25*courant*(e[i+1]-e[i-1])
		}
	default:
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	return U, nil
}

// MidpointLeapfrog is reserved in this version: the formulation is not
// available for either supported model and every call fails.
func MidpointLeapfrog(model ModelKind, Uo utils.Vector, courant float64) (utils.Vector, error) {
	const scheme = "MidpointLeapfrog"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	return utils.Vector{}, unsupportedModel(scheme, model)
}

// LaxWendroff advances Uo one time level with the single step second
// order Lax-Wendroff method. The Burgers variant uses the flux based
// nonlinear analogue of the Courant^2 curvature correction.
func LaxWendroff(model ModelKind, Uo utils.Vector, courant float64) (utils.Vector, error) {
	const scheme = "LaxWendroff"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	var (
		n        = Uo.Len()
		uo       = Uo.RawVector().Data
		U        = Uo.Copy()
		u        = U.RawVector().Data
		courant2 = courant * courant
	)
	switch model {
	case LinearWave:
		for i := 1; i < n-1; i++ {
			u[i] = uo[i] - 0.5*courant*(uo[i+1]-uo[i-1]) +
				0.5*courant2*(uo[i+1]-2.0*uo[i]+uo[i-1])
		}
	case InviscidBurgers:
		e := Flux(Uo).RawVector().Data
		for i := 1; i < n-1; i++ {
			u[i] = uo[i] - 0.5*courant*(e[i+1]-e[i-1]) +
				0.25*courant2*((uo[i+1]+uo[i])*(e[i+1]-e[i])-
					(uo[i]+uo[i-1])*(e[i]-e[i-1]))
		}
	default:
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	return U, nil
}

// LaxWendroffMultiStep advances Uo one time level with the two step
// Lax-Wendroff method, computing half step face values first. Wave
// model only.
func LaxWendroffMultiStep(model ModelKind, Uo utils.Vector, courant float64) (utils.Vector, error) {
	const scheme = "LaxWendroffMultiStep"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	if model != LinearWave {
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	var (
		n     = Uo.Len()
		uo    = Uo.RawVector().Data
		U     = Uo.Copy()
		u     = U.RawVector().Data
		uhalf = Uo.Copy().RawVector().Data
	)
	for i := 1; i < n-1; i++ {
		uhalf[i] = 0.5*(uo[i+1]+uo[i]) - 0.5*courant*(uo[i+1]-uo[i])
		u[i] = uo[i] - courant*(uhalf[i]-uhalf[i-1])
	}
	return U, nil
}

// MacCormack advances Uo one time level with the predictor-corrector
// MacCormack method: forward differencing in the predictor, backward
// differencing on the predicted flux in the corrector. The viscous
// Burgers variant adds the central second difference diffusion term,
// scaled by diffX, inside both stages.
func MacCormack(model ModelKind, Uo utils.Vector, courant, diffX float64) (utils.Vector, error) {
	const scheme = "MacCormack"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	var (
		n  = Uo.Len()
		uo = Uo.RawVector().Data
		U  = Uo.Copy()
		u  = U.RawVector().Data
	)
	switch model {
	case LinearWave:
		utemp := Uo.Copy().RawVector().Data
		for i := 1; i < n-1; i++ {
			utemp[i] = uo[i] - courant*(uo[i+1]-uo[i]) // predictor
			u[i] = 0.5 * ((uo[i] + utemp[i]) -
				courant*(utemp[i]-utemp[i-1])) // corrector
		}
	case InviscidBurgers:
		var (
			e     = Flux(Uo).RawVector().Data
			utemp = Uo.Copy().RawVector().Data
			etemp = Flux(Uo).RawVector().Data
		)
		for i := 1; i < n-1; i++ {
			utemp[i] = uo[i] - courant*(e[i+1]-e[i]) // predictor
			etemp[i] = 0.5 * utemp[i] * utemp[i]
			u[i] = 0.5 * ((uo[i] + utemp[i]) -
				courant*(etemp[i]-etemp[i-1])) // corrector
		}
	case ViscousBurgers:
		var (
			e     = Flux(Uo).RawVector().Data
			utemp = Uo.Copy().RawVector().Data
			etemp = Flux(Uo).RawVector().Data
		)
		for i := 1; i < n-1; i++ {
			dUo := -courant*(e[i+1]-e[i]) +
				diffX*(uo[i+1]-2.0*uo[i]+uo[i-1])
			utemp[i] = uo[i] + dUo // predictor
			etemp[i] = 0.5 * utemp[i] * utemp[i]
			dUtemp := -courant*(etemp[i]-etemp[i-1]) +
				diffX*(utemp[i+1]-2.0*utemp[i]+utemp[i-1])
			u[i] = 0.5 * (uo[i] + utemp[i] + dUtemp) // corrector
		}
	default:
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	return U, nil
}

// FourthOrderRungeKutta advances Uo one time level with the classical
// four stage Runge-Kutta method, combining the stage flux differences
// with the Simpson weights 1/6, 1/3, 1/3, 1/6.
func FourthOrderRungeKutta(model ModelKind, Uo utils.Vector, courant float64) (utils.Vector, error) {
	const scheme = "FourthOrderRungeKutta"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	var (
		n  = Uo.Len()
		uo = Uo.RawVector().Data
		U  = Uo.Copy()
		u  = U.RawVector().Data
	)
	switch model {
	case LinearWave:
		var (
			u1 = Uo.Copy().RawVector().Data
			u2 = Uo.Copy().RawVector().Data
			u3 = Uo.Copy().RawVector().Data
		)
		for i := 1; i < n-1; i++ { // 1st stage
			u1[i] = uo[i] - 0.5*courant*(uo[i+1]-uo[i-1])/2.0
		}
		for i := 1; i < n-1; i++ { // 2nd stage
			u2[i] = uo[i] - 0.5*courant*(u1[i+1]-u1[i-1])/2.0
		}
		for i := 1; i < n-1; i++ { // 3rd stage
			u3[i] = uo[i] - courant*(u2[i+1]-u2[i-1])/2.0
		}
		for i := 1; i < n-1; i++ { // 4th stage
			u[i] = uo[i] - 0.5*courant*
				((1.0/6)*(uo[i+1]-uo[i-1])+
					(1.0/3)*(u1[i+1]-u1[i-1])+
					(1.0/3)*(u2[i+1]-u2[i-1])+
					(1.0/6)*(u3[i+1]-u3[i-1]))
		}
	case InviscidBurgers:
		var (
			u1 = Uo.Copy().RawVector().Data
			u2 = Uo.Copy().RawVector().Data
			u3 = Uo.Copy().RawVector().Data
			e1 = Flux(Uo).RawVector().Data
		)
		for i := 1; i < n-1; i++ { // 1st stage
			u1[i] = uo[i] - 0.5*courant*(e1[i+1]-e1[i-1])/2.0
		}
		e2 := fluxOf(u1)
		for i := 1; i < n-1; i++ { // 2nd stage
			u2[i] = uo[i] - 0.5*courant*(e2[i+1]-e2[i-1])/2.0
		}
		e3 := fluxOf(u2)
		for i := 1; i < n-1; i++ { // 3rd stage
			u3[i] = uo[i] - courant*(e3[i+1]-e3[i-1])/2.0
		}
		e4 := fluxOf(u3)
		for i := 1; i < n-1; i++ { // 4th stage
			u[i] = uo[i] - 0.5*courant*
				((1.0/6)*(e1[i+1]-e1[i-1])+
					(1.0/3)*(e2[i+1]-e2[i-1])+
					(1.0/3)*(e3[i+1]-e3[i-1])+
					(1.0/6)*(e4[i+1]-e4[i-1]))
		}
	default:
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	return U, nil
}

// ModifiedRungeKutta advances Uo one time level by re-evaluating the
// flux at reducing fractions 1/8, 1/6, 1/4, 1/2 of the step directly
// from the evolving state. When Neumann boundary conditions are in use
// the caller should reapply them between stages; with the fixed
// Dirichlet boundaries of this package the pass-through boundary nodes
// already satisfy that. The viscous Burgers variant adds the diffusion
// term after the final stage.
func ModifiedRungeKutta(model ModelKind, Uo utils.Vector, courant, diffX float64) (utils.Vector, error) {
	const scheme = "ModifiedRungeKutta"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	var (
		n  = Uo.Len()
		uo = Uo.RawVector().Data
		U  = Uo.Copy()
		u  = U.RawVector().Data
	)
	fractions := [4]float64{8.0, 6.0, 4.0, 2.0}
	switch model {
	case LinearWave:
		for _, f := range fractions {
			us := U.Copy().RawVector().Data
			for i := 1; i < n-1; i++ {
				u[i] = uo[i] - courant*(us[i+1]-us[i-1])/f
			}
		}
	case InviscidBurgers, ViscousBurgers:
		for _, f := range fractions {
			e := fluxOf(u)
			for i := 1; i < n-1; i++ {
				u[i] = uo[i] - courant*(e[i+1]-e[i-1])/f
			}
		}
		if model == ViscousBurgers {
			us := U.Copy().RawVector().Data
			for i := 1; i < n-1; i++ {
				u[i] += diffX * (us[i+1] - 2.0*us[i] + us[i-1])
			}
		}
	default:
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	return U, nil
}

// FTCS advances the viscous Burgers equation one time level with
// forward time, central space differencing of the quasi-linearized
// convective term plus explicit central diffusion.
func FTCS(model ModelKind, Uo utils.Vector, courant, diffX float64) (utils.Vector, error) {
	const scheme = "FTCS"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	if model != ViscousBurgers {
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	var (
		n  = Uo.Len()
		uo = Uo.RawVector().Data
		U  = Uo.Copy()
		u  = U.RawVector().Data
		a  = forwardFaceJacobian(Uo)
	)
	for i := 1; i < n-1; i++ {
		u[i] = uo[i] -
			0.5*0.5*courant*(a[i+1]+a[i-1])*(uo[i+1]-uo[i-1]) +
			diffX*(uo[i+1]-2.0*uo[i]+uo[i-1])
	}
	return U, nil
}

// FTBCS advances the viscous Burgers equation one time level like FTCS
// but with backward differencing of the convective term.
func FTBCS(model ModelKind, Uo utils.Vector, courant, diffX float64) (utils.Vector, error) {
	const scheme = "FTBCS"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	if model != ViscousBurgers {
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	var (
		n  = Uo.Len()
		uo = Uo.RawVector().Data
		U  = Uo.Copy()
		u  = U.RawVector().Data
		a  = forwardFaceJacobian(Uo)
	)
	for i := 1; i < n-1; i++ {
		u[i] = uo[i] -
			0.5*courant*(a[i+1]+a[i-1])*(uo[i]-uo[i-1]) +
			diffX*(uo[i+1]-2.0*uo[i]+uo[i-1])
	}
	return U, nil
}

// DuFortFrankel advances the viscous Burgers equation one time level
// with the unconditionally stable leapfrog-in-time method. Uo2 is the
// state from two time levels back, which the caller must retain. diffX
// is the same diffusion number d = nu dt/dx^2 that the other viscous
// schemes use.
func DuFortFrankel(model ModelKind, Uo, Uo2 utils.Vector, courant, diffX float64) (utils.Vector, error) {
	const scheme = "DuFortFrankel"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	if Uo2.V == nil || Uo2.Len() != Uo.Len() {
		return utils.Vector{}, badDimension(scheme, vecLen(Uo2), Uo.Len())
	}
	if model != ViscousBurgers {
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	var (
		n   = Uo.Len()
		uo  = Uo.RawVector().Data
		uo2 = Uo2.RawVector().Data
		U   = Uo.Copy()
		u   = U.RawVector().Data
		e   = Flux(Uo).RawVector().Data
		den = 1.0 + 2.0*diffX
	)
	for i := 1; i < n-1; i++ {
		a := faceJacobian(e[i+1], e[i], uo[i+1], uo[i], uo[i])
		c := a * courant
		u[i] = ((1.0-2.0*diffX)/den)*uo2[i] +
			((c+2.0*diffX)/den)*uo[i-1] -
			((c-2.0*diffX)/den)*uo[i+1]
	}
	return U, nil
}

// forwardFaceJacobian builds the nodewise A = dE/dU across the forward
// face, seeded with the state itself so the untouched boundary entries
// carry the nodal value.
func forwardFaceJacobian(Uo utils.Vector) []float64 {
	var (
		n  = Uo.Len()
		uo = Uo.RawVector().Data
		e  = Flux(Uo).RawVector().Data
		a  = Uo.Copy().RawVector().Data
	)
	for i := 1; i < n-1; i++ {
		a[i] = faceJacobian(e[i+1], e[i], uo[i+1], uo[i], uo[i])
	}
	return a
}

func fluxOf(u []float64) []float64 {
	e := make([]float64, len(u))
	for i, val := range u {
		e[i] = 0.5 * val * val
	}
	return e
}

func signum(a float64) float64 {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	}
	return 0
}

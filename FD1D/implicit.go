package FD1D

import (
	"fmt"

	"github.com/notargets/hyper1d/tridiagonal"
	"github.com/notargets/hyper1d/utils"
)

// EulersBTCS advances Uo one time level with the implicit backward
// time, central space Euler method. The wave model produces constant
// coefficients proportional to Courant/2; the viscous Burgers model
// combines the face averaged Jacobian with the diffusion number diffX.
// Inviscid Burgers has no formulation.
func EulersBTCS(model ModelKind, Uo utils.Vector, courant, diffX float64) (utils.Vector, error) {
	const scheme = "EulersBTCS"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	var (
		n = Uo.Len()
	)
	switch model {
	case LinearWave:
		cc := 0.5 * courant
		return tridiagonal.Solve(
			utils.NewVectorConstant(n, cc),
			utils.NewVectorConstant(n, -1),
			utils.NewVectorConstant(n, -cc),
			Uo.Copy().Scale(-1),
			Uo.Copy())
	case ViscousBurgers:
		var (
			cc   = 0.5 * courant
			a    = forwardFaceJacobian(Uo)
			sub  = utils.NewVector(n)
			diag = utils.NewVector(n)
			sup  = utils.NewVector(n)
		)
		for i := 0; i < n; i++ {
			sub.SetVec(i, -diffX-a[i]*cc)
			diag.SetVec(i, 1.0+2.0*diffX)
			sup.SetVec(i, -diffX+a[i]*cc)
		}
		return tridiagonal.Solve(sub, diag, sup, Uo.Copy(), Uo.Copy())
	}
	return utils.Vector{}, unsupportedModel(scheme, model)
}

// CrankNicolson advances the wave equation one time level with the
// time centered implicit method: the right hand side carries the
// quarter-Courant explicit half of the flux.
func CrankNicolson(model ModelKind, Uo utils.Vector, courant float64) (utils.Vector, error) {
	const scheme = "CrankNicolson"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	if model != LinearWave {
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	var (
		n  = Uo.Len()
		uo = Uo.RawVector().Data
		cc = 0.25 * courant
		d  = utils.NewVector(n)
	)
	for i := 1; i < n-1; i++ {
		d.SetVec(i, -uo[i]+cc*(uo[i+1]-uo[i-1]))
	}
	return tridiagonal.Solve(
		utils.NewVectorConstant(n, cc),
		utils.NewVectorConstant(n, -1),
		utils.NewVectorConstant(n, -cc),
		d,
		Uo.Copy())
}

// BeamAndWarming advances the inviscid Burgers equation one time level
// with the implicit Beam-Warming method, linearizing the nonlinear
// Jacobian with the lagged previous time level state.
func BeamAndWarming(model ModelKind, Uo utils.Vector, courant float64) (utils.Vector, error) {
	const scheme = "BeamAndWarming"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	if model != InviscidBurgers {
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	var (
		n    = Uo.Len()
		uo   = Uo.RawVector().Data
		e    = Flux(Uo).RawVector().Data
		cc   = 0.25 * courant
		sub  = utils.NewVector(n)
		diag = utils.NewVectorConstant(n, 1)
		sup  = utils.NewVector(n)
		d    = utils.NewVector(n)
	)
	for i := 1; i < n-1; i++ {
		sub.SetVec(i, -cc*uo[i-1])
		sup.SetVec(i, cc*uo[i+1])
		d.SetVec(i, uo[i]-0.5*courant*(e[i+1]-e[i-1])+
			cc*(uo[i+1]*uo[i+1]-uo[i-1]*uo[i-1]))
	}
	return tridiagonal.Solve(sub, diag, sup, d, Uo.Copy())
}

// btbcsWeights holds the theta tables selecting the spatial accuracy of
// the BTBCS convective differencing.
var btbcsWeights = map[AccuracyOrder][4]float64{
	FirstOrder:  {1.0, 1.0, 0.0, 0.0},
	SecondOrder: {2.0, 3.0 / 2, 0.0, -1.0 / 2},
	ThirdOrder:  {1.0, 1.0 / 2, 1.0 / 3, -1.0 / 6},
}

// BTBCS advances the viscous Burgers equation one time level with the
// implicit backward time method using backward differencing of the
// convective term, generalized over first to third order accuracy by
// the theta weight table. The theta4 term reaches two nodes upwind; at
// the first interior node it falls back to the left boundary value.
func BTBCS(model ModelKind, Uo utils.Vector, courant, diffX float64, accuracy AccuracyOrder) (utils.Vector, error) {
	const scheme = "BTBCS"
	if err := checkState(scheme, Uo, 3); err != nil {
		return utils.Vector{}, err
	}
	if model != ViscousBurgers {
		return utils.Vector{}, unsupportedModel(scheme, model)
	}
	th, ok := btbcsWeights[accuracy]
	if !ok {
		return utils.Vector{}, fmt.Errorf("%s: accuracy %s: %w", scheme, accuracy, ErrInvalidOption)
	}
	var (
		n    = Uo.Len()
		uo   = Uo.RawVector().Data
		e    = Flux(Uo).RawVector().Data
		sub  = utils.NewVector(n)
		diag = utils.NewVector(n)
		sup  = utils.NewVector(n)
		d    = utils.NewVector(n)
	)
	for i := 1; i < n-1; i++ {
		// Central face averaged Jacobian
		a := faceJacobian(e[i+1], e[i-1], uo[i+1], uo[i-1], uo[i])
		sub.SetVec(i, -diffX-th[0]*a*courant)
		diag.SetVec(i, 1.0+2.0*diffX+th[1]*a*courant)
		sup.SetVec(i, -diffX+th[2]*a*courant)
		um2 := uo[0]
		if i >= 2 {
			um2 = uo[i-2]
		}
		d.SetVec(i, uo[i]+th[3]*a*courant*um2)
	}
	return tridiagonal.Solve(sub, diag, sup, d, Uo.Copy())
}

// Package FD1D advances the discretized solution of one dimensional
// hyperbolic model equations by one time level. The schemes cover the
// linear wave equation
//
//	du/dt = -a du/dx
//
// and the inviscid / viscous Burgers equation
//
//	du/dt + dE/dx = nu d2u/dx2,  E = u^2/2
//
// with explicit, implicit (tridiagonal) and TVD formulations following
// Hoffmann, CFD Vol. 1. Every scheme is a pure transform: the input
// state is never mutated, the output has the same length, and the
// boundary nodes pass through unchanged. Boundary condition enforcement
// and time marching belong to the model_problems layer.
package FD1D

import (
	"github.com/notargets/hyper1d/utils"
)

// ModelKind selects the equation model a scheme discretizes.
type ModelKind uint8

const (
	LinearWave ModelKind = iota
	InviscidBurgers
	ViscousBurgers
)

func (m ModelKind) String() string {
	switch m {
	case LinearWave:
		return "LinearWave"
	case InviscidBurgers:
		return "InviscidBurgers"
	case ViscousBurgers:
		return "ViscousBurgers"
	}
	return "UnknownModel"
}

// AccuracyOrder selects the BTBCS weight table.
type AccuracyOrder uint8

const (
	FirstOrder AccuracyOrder = iota
	SecondOrder
	ThirdOrder
)

func (a AccuracyOrder) String() string {
	switch a {
	case FirstOrder:
		return "first-order"
	case SecondOrder:
		return "second-order"
	case ThirdOrder:
		return "third-order"
	}
	return "unknown-order"
}

// Flux returns E = u^2/2 nodewise for the Burgers models.
func Flux(Uo utils.Vector) utils.Vector {
	return Uo.Copy().Apply(func(u float64) float64 { return 0.5 * u * u })
}

// faceJacobian approximates A = dE/dU across the face between nodes l
// and r. When the state difference vanishes the nodal value u is used
// instead, the same fallback the TVD characteristic speeds use, so a
// uniform state stays a fixed point of every scheme.
func faceJacobian(eR, eL, uR, uL, u float64) float64 {
	if uR == uL {
		return u
	}
	return (eR - eL) / (uR - uL)
}

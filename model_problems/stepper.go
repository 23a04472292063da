package model_problems

import (
	"fmt"

	"github.com/notargets/hyper1d/FD1D"
	"github.com/notargets/hyper1d/InputParameters"
	"github.com/notargets/hyper1d/utils"
)

// Stepper advances the state one time level. Uo2 is the state from two
// time levels back, needed only by DuFortFrankel; every other scheme
// ignores it.
type Stepper func(Uo, Uo2 utils.Vector) (utils.Vector, error)

// NewStepper binds the configured scheme to its FD1D kernel, passing
// each scheme only the coefficients it needs.
func NewStepper(ip *InputParameters.InputParameters1D) (Stepper, error) {
	model, err := ip.ModelKind()
	if err != nil {
		return nil, err
	}
	var (
		courant = ip.Courant
		diffX   = ip.Diffusion
		a       = ip.ConvectionSpeed
	)
	switch ip.Scheme {
	case "ExplicitFirstUpwind":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.ExplicitFirstUpwind(model, Uo, courant, a)
		}, nil
	case "Lax":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.Lax(model, Uo, courant)
		}, nil
	case "MidpointLeapfrog":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.MidpointLeapfrog(model, Uo, courant)
		}, nil
	case "LaxWendroff":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.LaxWendroff(model, Uo, courant)
		}, nil
	case "LaxWendroffMultiStep":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.LaxWendroffMultiStep(model, Uo, courant)
		}, nil
	case "MacCormack":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.MacCormack(model, Uo, courant, diffX)
		}, nil
	case "FourthOrderRungeKutta":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.FourthOrderRungeKutta(model, Uo, courant)
		}, nil
	case "ModifiedRungeKutta":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.ModifiedRungeKutta(model, Uo, courant, diffX)
		}, nil
	case "FTCS":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.FTCS(model, Uo, courant, diffX)
		}, nil
	case "FTBCS":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.FTBCS(model, Uo, courant, diffX)
		}, nil
	case "DuFortFrankel":
		return func(Uo, Uo2 utils.Vector) (utils.Vector, error) {
			return FD1D.DuFortFrankel(model, Uo, Uo2, courant, diffX)
		}, nil
	case "EulersBTCS":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.EulersBTCS(model, Uo, courant, diffX)
		}, nil
	case "CrankNicolson":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.CrankNicolson(model, Uo, courant)
		}, nil
	case "BeamAndWarming":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.BeamAndWarming(model, Uo, courant)
		}, nil
	case "BTBCS":
		accuracy, err := ip.AccuracyOrder()
		if err != nil {
			return nil, err
		}
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.BTBCS(model, Uo, courant, diffX, accuracy)
		}, nil
	case "FirstOrderTVD":
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.FirstOrderTVD(model, Uo, courant)
		}, nil
	case "SecondOrderTVD":
		limiterFunc, limiter, eps := ip.LimiterFunction, ip.Limiter, ip.Eps
		if eps == 0 {
			eps = 0.1
		}
		return func(Uo, _ utils.Vector) (utils.Vector, error) {
			return FD1D.SecondOrderTVD(model, Uo, courant, diffX, limiterFunc, limiter, eps)
		}, nil
	}
	return nil, fmt.Errorf("no stepper for scheme %q", ip.Scheme)
}

package model_problems

import (
	"fmt"

	"github.com/notargets/hyper1d/FD1D"
	"github.com/notargets/hyper1d/InputParameters"
	"github.com/notargets/hyper1d/utils"
)

// Burgers1D marches the inviscid or viscous Burgers equation with the
// configured scheme, starting from a step profile that steepens into
// the classic moving shock.
type Burgers1D struct {
	// Input parameters
	Model              FD1D.ModelKind
	Courant, Diffusion float64
	Tolerance          float64
	MaxSteps           int
	BCLeft, BCRight    float64
	Step               Stepper
	U                  utils.Vector
	StepsTaken         int
}

func NewBurgers1D(ip *InputParameters.InputParameters1D) (c *Burgers1D, err error) {
	model, err := ip.ModelKind()
	if err != nil {
		return nil, err
	}
	if model == FD1D.LinearWave {
		return nil, fmt.Errorf("Burgers1D requires a Burgers model, have %q", ip.Model)
	}
	step, err := NewStepper(ip)
	if err != nil {
		return nil, err
	}
	c = &Burgers1D{
		Model:     model,
		Courant:   ip.Courant,
		Diffusion: ip.Diffusion,
		Tolerance: ip.Tolerance,
		MaxSteps:  ip.MaxSteps,
		BCLeft:    ip.BCLeft,
		BCRight:   ip.BCRight,
		Step:      step,
		U:         stepInitialProfile(ip.GridPoints, ip.BCLeft, ip.BCRight),
	}
	return
}

func (c *Burgers1D) Run() (err error) {
	fmt.Printf("Burgers1D: model = %s, Courant = %8.4f, d = %8.4f, MaxSteps = %d\n",
		c.Model, c.Courant, c.Diffusion, c.MaxSteps)
	c.U, c.StepsTaken, err = march(c.U, c.Step, c.MaxSteps, c.Tolerance, c.BCLeft, c.BCRight)
	return
}

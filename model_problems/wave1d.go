package model_problems

import (
	"fmt"

	"github.com/notargets/hyper1d/FD1D"
	"github.com/notargets/hyper1d/InputParameters"
	"github.com/notargets/hyper1d/utils"
)

// Wave1D marches the linear first order wave equation du/dt = -a du/dx
// with the configured scheme.
type Wave1D struct {
	// Input parameters
	A, Courant, Tolerance float64
	MaxSteps              int
	BCLeft, BCRight       float64
	Step                  Stepper
	U                     utils.Vector
	StepsTaken            int
}

func NewWave1D(ip *InputParameters.InputParameters1D) (c *Wave1D, err error) {
	if model, merr := ip.ModelKind(); merr != nil || model != FD1D.LinearWave {
		return nil, fmt.Errorf("Wave1D requires Model LinearWave, have %q", ip.Model)
	}
	step, err := NewStepper(ip)
	if err != nil {
		return nil, err
	}
	c = &Wave1D{
		A:         ip.ConvectionSpeed,
		Courant:   ip.Courant,
		Tolerance: ip.Tolerance,
		MaxSteps:  ip.MaxSteps,
		BCLeft:    ip.BCLeft,
		BCRight:   ip.BCRight,
		Step:      step,
		U:         stepInitialProfile(ip.GridPoints, ip.BCLeft, ip.BCRight),
	}
	return
}

func (c *Wave1D) Run() (err error) {
	fmt.Printf("Wave1D: a = %8.4f, Courant = %8.4f, MaxSteps = %d\n",
		c.A, c.Courant, c.MaxSteps)
	c.U, c.StepsTaken, err = march(c.U, c.Step, c.MaxSteps, c.Tolerance, c.BCLeft, c.BCRight)
	return
}

package model_problems

import (
	"fmt"

	"github.com/notargets/hyper1d/utils"
)

// stepInitialProfile builds the initial condition: a Riemann-style
// step from the left boundary value to the right boundary value at the
// domain midpoint.
func stepInitialProfile(n int, left, right float64) (U utils.Vector) {
	U = utils.NewVectorConstant(n, right)
	for i := 0; i < n/2; i++ {
		U.SetVec(i, left)
	}
	return
}

// march runs the outer time loop: advance one level, re-apply the
// Dirichlet boundary values, roll the two-level history, monitor the
// steady state residual. Returns the final state and the number of
// steps taken.
func march(U utils.Vector, step Stepper, maxSteps int, tol, bcLeft, bcRight float64) (utils.Vector, int, error) {
	var (
		logFrequency = 50
		n            = U.Len()
		Uo           = U.Copy()
		Uo2          = U.Copy()
		tstep        int
	)
	for tstep = 1; tstep <= maxSteps; tstep++ {
		Un, err := step(Uo, Uo2)
		if err != nil {
			return utils.Vector{}, tstep, err
		}
		// Boundary conditions, between calls
		Un.SetVec(0, bcLeft)
		Un.SetVec(n-1, bcRight)
		resid := Un.MaxAbsDiff(Uo)
		if tstep%logFrequency == 0 {
			fmt.Printf("step = %6d, resid = %10.3e, umin = %8.4f, umax = %8.4f\n",
				tstep, resid, Un.Min(), Un.Max())
		}
		Uo2, Uo = Uo, Un
		if tol > 0 && resid < tol {
			break
		}
	}
	if tstep > maxSteps {
		tstep = maxSteps
	}
	return Uo, tstep, nil
}

// Package limiters supplies the flux limiter functions used by the
// second order TVD schemes. A limiter function (Harten-Yee, Roe-Sweby,
// Davis-Yee families) combines a limiter strategy (G1..G5) with the
// local solution stencil to produce the anti-diffusive face correction
// terms phi(i+1/2) and phi(i-1/2) of Hoffmann Vol. 1, Chapter 6.
package limiters

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/hyper1d/utils"
)

const (
	HartenYeeUpwind         = "Harten-Yee-Upwind"
	ModifiedHartenYeeUpwind = "Modified-Harten-Yee-Upwind"
	RoeSwebyUpwind          = "Roe-Sweby-Upwind"
	DavisYeeSymmetric       = "Davis-Yee-Symmetric"
)

var ErrUnknownOption = errors.New("unknown limiter option")

// FunctionOptions lists the allowed limiter function names.
func FunctionOptions() []string {
	return []string{
		HartenYeeUpwind,
		ModifiedHartenYeeUpwind,
		RoeSwebyUpwind,
		DavisYeeSymmetric,
	}
}

// LimiterOptions lists the allowed limiter strategy names.
func LimiterOptions() []string {
	return []string{"G1", "G2", "G3", "G4", "G5"}
}

// CalculateTVD evaluates the face correction terms at node i from the
// solution Uo and flux E. The stencil reaches i-2..i+2, so i must lie in
// 2..N-3. Eps is the entropy correction threshold.
func CalculateTVD(i int, Uo, E utils.Vector, eps, courant float64,
	limiter, limiterFunc string) (phiPlus, phiMinus float64, err error) {
	var (
		g limiterFn
	)
	if g, err = limiterFor(limiter); err != nil {
		return
	}
	var (
		u = Uo.RawVector().Data
		e = E.RawVector().Data
		// Face differences over the five node stencil
		dUm3 = u[i-1] - u[i-2] // i-3/2
		dUm  = u[i] - u[i-1]   // i-1/2
		dUp  = u[i+1] - u[i]   // i+1/2
		dUp3 = u[i+2] - u[i+1] // i+3/2
		// Local characteristic speeds, falling back to the nodal
		// state where the face difference vanishes
		alphaP = faceSpeed(e[i+1]-e[i], dUp, u[i])
		alphaM = faceSpeed(e[i]-e[i-1], dUm, u[i])
	)
	switch limiterFunc {
	case HartenYeeUpwind:
		phiPlus = hartenYee(alphaP, dUm, dUp, dUp3, eps, courant, g, false)
		phiMinus = hartenYee(alphaM, dUm3, dUm, dUp, eps, courant, g, false)
	case ModifiedHartenYeeUpwind:
		phiPlus = hartenYee(alphaP, dUm, dUp, dUp3, eps, courant, g, true)
		phiMinus = hartenYee(alphaM, dUm3, dUm, dUp, eps, courant, g, true)
	case RoeSwebyUpwind:
		phiPlus = roeSweby(alphaP, dUm, dUp, dUp3, eps, courant, g)
		phiMinus = roeSweby(alphaM, dUm3, dUm, dUp, eps, courant, g)
	case DavisYeeSymmetric:
		phiPlus = davisYee(alphaP, dUm, dUp, dUp3, eps, courant, g)
		phiMinus = davisYee(alphaM, dUm3, dUm, dUp, eps, courant, g)
	default:
		err = fmt.Errorf("limiter function %q: %w", limiterFunc, ErrUnknownOption)
	}
	return
}

type limiterFn func(a, b float64) float64

func limiterFor(name string) (limiterFn, error) {
	switch name {
	case "G1": // minmod
		return minmod, nil
	case "G2": // van Leer
		return func(a, b float64) float64 {
			den := a + b
			if den == 0 {
				return 0
			}
			return (a*b + math.Abs(a*b)) / den
		}, nil
	case "G3": // van Albada
		return func(a, b float64) float64 {
			den := a*a + b*b
			if den == 0 {
				return 0
			}
			return a * b * (a + b) / den
		}, nil
	case "G4": // bounded central
		return func(a, b float64) float64 {
			return minmod(minmod(2*a, 2*b), 0.5*(a+b))
		}, nil
	case "G5": // superbee
		return func(a, b float64) float64 {
			s := sign(a)
			return s * math.Max(0, math.Max(
				math.Min(2*math.Abs(a), s*b),
				math.Min(math.Abs(a), 2*s*b)))
		}, nil
	}
	return nil, fmt.Errorf("limiter %q: %w", name, ErrUnknownOption)
}

func minmod(a, b float64) float64 {
	if a*b <= 0 {
		return 0
	}
	if math.Abs(a) < math.Abs(b) {
		return a
	}
	return b
}

func sign(a float64) float64 {
	if a < 0 {
		return -1
	}
	return 1
}

func faceSpeed(dE, dU, fallback float64) float64 {
	if dU == 0 {
		return fallback
	}
	return dE / dU
}

// psi is the entropy corrected |z| of Harten, equation 6-130.
func psi(z, eps float64) float64 {
	if math.Abs(z) >= eps {
		return math.Abs(z)
	}
	return (z*z + eps*eps) / (2 * eps)
}

// hartenYee evaluates the upwind Harten-Yee face term. The modified
// variant drops the Courant dependent part of the sigma coefficient.
func hartenYee(alpha, dm, d, dp, eps, courant float64, g limiterFn, modified bool) float64 {
	var (
		sig float64
	)
	if modified {
		sig = 0.5 * psi(alpha, eps)
	} else {
		sig = 0.5 * (psi(alpha, eps) - courant*alpha*alpha)
	}
	gi := g(dm, d)
	gi1 := g(d, dp)
	var gamma float64
	if d != 0 {
		gamma = sig * (gi1 - gi) / d
	}
	return sig*(gi+gi1) - psi(alpha+gamma, eps)*d
}

// roeSweby limits the anti-diffusive part of the Lax-Wendroff flux with
// the slope from the upwind side of the face.
func roeSweby(alpha, dm, d, dp, eps, courant float64, g limiterFn) float64 {
	var (
		b float64
	)
	if alpha >= 0 {
		b = dm
	} else {
		b = dp
	}
	return (courant*alpha*alpha - psi(alpha, eps)) * (d - g(d, b))
}

// davisYee is the symmetric TVD face term, limited over both
// neighboring faces.
func davisYee(alpha, dm, d, dp, eps, courant float64, g limiterFn) float64 {
	gsym := g(g(dm, d), dp)
	return -courant*alpha*alpha*gsym - psi(alpha, eps)*(d-gsym)
}

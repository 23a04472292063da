// Package tridiagonal solves the locally coupled linear systems produced
// by the implicit finite difference schemes using the Thomas algorithm.
package tridiagonal

import (
	"fmt"

	"github.com/notargets/hyper1d/utils"
)

// Solve returns U satisfying, for every interior row i in 1..N-2,
//
//	sub[i]*U[i-1] + diag[i]*U[i] + super[i]*U[i+1] = d[i]
//
// The boundary values U[0] and U[N-1] are taken unchanged from the
// initial buffer u; the boundary rows of the coefficient vectors are
// never read, which is equivalent to identity rows enforcing the fixed
// boundary values. A single forward elimination sweep normalizes the
// diagonal and eliminates the sub-diagonal, then a single backward
// sweep substitutes.
//
// Diagonal dominance is the caller's responsibility: no pivoting is
// performed and the result is undefined when a pivot degenerates. The
// inputs are not mutated.
func Solve(sub, diag, super, d, u utils.Vector) (utils.Vector, error) {
	var (
		n = u.Len()
	)
	if sub.Len() != n || diag.Len() != n || super.Len() != n || d.Len() != n {
		return utils.Vector{}, fmt.Errorf("tridiagonal: coefficient lengths [%d,%d,%d,%d] do not match state length %d",
			sub.Len(), diag.Len(), super.Len(), d.Len(), n)
	}
	if n < 3 {
		return utils.Vector{}, fmt.Errorf("tridiagonal: system of length %d has no interior rows", n)
	}
	var (
		U  = u.Copy()
		UU = U.RawVector().Data
		a  = sub.RawVector().Data
		b  = diag.RawVector().Data
		c  = super.RawVector().Data
		dd = d.RawVector().Data
		// Eliminated super-diagonal and right hand side
		h = make([]float64, n)
		g = make([]float64, n)
	)
	// Seeding g with the known left boundary value folds the
	// sub[1]*U[0] term into the first interior row.
	h[0] = 0.0
	g[0] = UU[0]
	for i := 1; i < n-1; i++ {
		den := b[i] - a[i]*h[i-1]
		h[i] = c[i] / den
		g[i] = (dd[i] - a[i]*g[i-1]) / den
	}
	for i := n - 2; i > 0; i-- {
		UU[i] = g[i] - h[i]*UU[i+1]
	}
	return U, nil
}

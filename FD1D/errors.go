package FD1D

import (
	"errors"
	"fmt"

	"github.com/notargets/hyper1d/utils"
)

// Sentinel errors for the scheme kernels. Every failure is deterministic
// and propagates synchronously; there is nothing to retry.
var (
	// ErrUnsupportedDimension indicates the supplied state is not a
	// usable one dimensional node vector.
	ErrUnsupportedDimension = errors.New("formulation is only available for a one dimensional state")

	// ErrUnsupportedModelForScheme indicates the scheme has no
	// formulation for the requested equation model.
	ErrUnsupportedModelForScheme = errors.New("formulation is not available for this model")

	// ErrInvalidOption indicates an unknown limiter or accuracy
	// selection.
	ErrInvalidOption = errors.New("invalid option")
)

func unsupportedModel(scheme string, model ModelKind) error {
	return fmt.Errorf("%s: model %s: %w", scheme, model, ErrUnsupportedModelForScheme)
}

func badDimension(scheme string, n, minNodes int) error {
	return fmt.Errorf("%s: state of %d nodes needs at least %d: %w",
		scheme, n, minNodes, ErrUnsupportedDimension)
}

// checkState validates that Uo is a proper 1D state with enough nodes
// for the scheme's stencil. minNodes counts the two boundary nodes plus
// the narrowest usable interior band.
func checkState(scheme string, Uo utils.Vector, minNodes int) error {
	if Uo.V == nil || Uo.Len() < minNodes {
		return badDimension(scheme, vecLen(Uo), minNodes)
	}
	return nil
}

func vecLen(v utils.Vector) int {
	if v.V == nil {
		return 0
	}
	return v.Len()
}

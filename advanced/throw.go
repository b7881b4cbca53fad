package advanced

import "github.com/pkg/errors"

// Threading errors through the recursion of the closest pair solver and the
// scan loops would clutter the algorithms. Instead, precondition failures
// panic with a geometryPanic, and the public API recovers to convert to an
// error.

var (
	// The caller passed fewer points or segments than the algorithm requires.
	ErrInsufficientInput = errors.New("insufficient input")
	// The input is valid in size but geometrically degenerate, e.g. a hull of
	// collinear points.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

type geometryPanic struct {
	err error
}

// Panic with a wrapped sentinel error.
func fatalf(cause error, format string, args ...interface{}) {
	panic(geometryPanic{errors.Wrapf(cause, format, args...)})
}

// Convert a recovered geometry panic back into an error. Any other panic
// value, including runtime errors, is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if gp, ok := r.(geometryPanic); ok {
			return gp.err
		}
		panic(r)
	}
	return nil
}

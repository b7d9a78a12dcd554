package symbolic

import (
	"errors"
	"fmt"
)

// Build and accessor errors.
var (
	// ErrUnsupportedGuardShape indicates a guard that is not a well-formed
	// axis-aligned box over the source mode's augmented space.
	ErrUnsupportedGuardShape = errors.New("symbolic: unsupported guard shape")

	// ErrInvalidInputID indicates a global input id outside the continuous
	// and switching ranges.
	ErrInvalidInputID = errors.New("symbolic: invalid global input id")

	// ErrUnknownAugmentedState indicates a reverse lookup on an augmented
	// state absent from the model.
	ErrUnknownAugmentedState = errors.New("symbolic: unknown augmented state")
)

// BuildError attaches the offending mode or transition to a construction
// failure. Transition is 0 when the failure is mode-local, Mode is 0 when
// it concerns a hybrid transition.
type BuildError struct {
	Mode       int
	Transition int
	Wrapped    error
}

func (e *BuildError) Error() string {
	switch {
	case e.Transition > 0:
		return fmt.Sprintf("transition %d: %v", e.Transition, e.Wrapped)
	case e.Mode > 0:
		return fmt.Sprintf("mode %d: %v", e.Mode, e.Wrapped)
	default:
		return e.Wrapped.Error()
	}
}

func (e *BuildError) Unwrap() error { return e.Wrapped }

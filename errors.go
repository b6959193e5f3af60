package rebuild

import (
	"errors"
	"fmt"
)

// Validation errors of the combinators. They signal programmer errors, so
// there is nothing to retry; callers usually propagate them. The returned
// error wraps one of these sentinels together with the combinator name and
// can be matched with errors.Is.
var (
	// ErrMissingArgument is returned when a combinator requiring at least
	// one argument received none.
	ErrMissingArgument = errors.New("missing argument")

	// ErrArgumentKind is returned when an argument has the wrong type,
	// for example plain text where a pattern is required.
	ErrArgumentKind = errors.New("wrong argument kind")

	// ErrArgumentCount is returned when a fixed-arity combinator received
	// a different number of arguments.
	ErrArgumentCount = errors.New("wrong argument count")

	// ErrUnexpectedArgument is returned when a combinator taking no
	// arguments received some.
	ErrUnexpectedArgument = errors.New("unexpected argument")

	// ErrInvalidRange is returned when the bounds of Repeat are
	// inconsistent.
	ErrInvalidRange = errors.New("invalid repeat range")
)

func missingArgument(name, what string) error {
	return fmt.Errorf("%s: %w: at least one %s argument required", name, ErrMissingArgument, what)
}

func invalidRange(reason string) error {
	return fmt.Errorf("repeat: %w: %s", ErrInvalidRange, reason)
}

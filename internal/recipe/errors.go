package recipe

import "errors"

var (
	// ErrBusy is returned when a submission is attempted while one is in flight.
	ErrBusy = errors.New("recipe: a request is already in flight")
	// ErrCancelled is returned by Submit when the request was cancelled.
	ErrCancelled = errors.New("recipe: request cancelled")
)

// ValidationError reports an empty (or whitespace-only) dish.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "recipe: " + e.Message
}

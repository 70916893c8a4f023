package closure

import "fmt"

// BudgetError is returned by a closure construction when the number of
// composite states it would need to create exceeds the configured Limits,
// per spec §5's "implementers SHOULD expose an optional step/state budget
// to bound work and fail cleanly when exceeded." Grounded in the teacher's
// dfa/lazy/error.go DFAError/ErrStateLimitExceeded shape: a typed sentinel
// with an Is method so callers can use errors.Is regardless of the
// specific limit value that triggered it.
type BudgetError struct {
	// Limit is the MaxStates budget that was exceeded.
	Limit int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("closure: construction exceeded the %d-state budget", e.Limit)
}

// Is makes errors.Is(err, &BudgetError{}) match any BudgetError regardless
// of its Limit field, mirroring dfa/lazy/error.go's DFAError.Is.
func (e *BudgetError) Is(target error) bool {
	_, ok := target.(*BudgetError)
	return ok
}

// ErrBudgetExceeded is a zero-value sentinel usable with errors.Is.
var ErrBudgetExceeded = &BudgetError{}

package order

import (
	"errors"
	"fmt"
)

var ErrDraftNotFound = errors.New("draft not found")

// ValidationError marks errors caused by a bad argument to a draft
// operation. The draft is left unchanged when one is returned.
type ValidationError interface {
	error
	Field() string
}

// UnknownExtraError is returned when an extra id is not part of the
// draft's food.
type UnknownExtraError struct {
	FoodID  int
	ExtraID int
}

func (e *UnknownExtraError) Error() string {
	return fmt.Sprintf("extra %d is not available for food %d", e.ExtraID, e.FoodID)
}

func (e *UnknownExtraError) Field() string { return "extraId" }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// SubmitError wraps a failure of the order sink. The draft stays usable so
// the user can retry.
type SubmitError struct {
	Err error
}

func (e *SubmitError) Error() string { return "submit order: " + e.Err.Error() }

func (e *SubmitError) Unwrap() error { return e.Err }

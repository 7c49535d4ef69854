package food

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("food not found")

// FetchError wraps a failure of a read collaborator (catalog or detail
// source). It is surfaced to the caller and never retried here.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsFetchError reports whether err carries a FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
